package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/compliance"
	complianceService "github.com/deltacloudassociates/optmark-crm-hub/internal/compliance/service"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/platform/middleware"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/transport/http/shared"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the compliance queries the dashboard needs.
type Service interface {
	ListDocuments(ctx context.Context, f compliance.Filter) ([]complianceService.DocumentView, error)
	Summary(ctx context.Context) (compliance.CountsByStatus, error)
	ActionRequired(ctx context.Context) ([]complianceService.DocumentView, error)
	ClientDocuments(ctx context.Context, subjectID domain.ClientID) ([]complianceService.DocumentView, error)
}

// Handler serves the KYC dashboard endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a compliance Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the compliance routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/kyc/documents", h.handleListDocuments)
	r.Get("/kyc/summary", h.handleSummary)
	r.Get("/kyc/action-required", h.handleActionRequired)
	r.Get("/kyc/clients/{clientID}/documents", h.handleClientDocuments)
}

func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := filterFromQuery(r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid document filter",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	views, err := h.service.ListDocuments(ctx, filter)
	if err != nil {
		h.serviceError(w, r, "failed to list documents", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toDocumentsResponse(views))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts, err := h.service.Summary(ctx)
	if err != nil {
		h.serviceError(w, r, "failed to summarize fleet", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toSummaryResponse(counts))
}

func (h *Handler) handleActionRequired(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	views, err := h.service.ActionRequired(ctx)
	if err != nil {
		h.serviceError(w, r, "failed to build renewal queue", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toDocumentsResponse(views))
}

func (h *Handler) handleClientDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := domain.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	views, err := h.service.ClientDocuments(ctx, clientID)
	if err != nil {
		h.serviceError(w, r, "failed to load client documents", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toDocumentsResponse(views))
}

func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	h.logger.ErrorContext(ctx, msg,
		"request_id", middleware.GetRequestID(ctx),
		"error", err.Error(),
	)
	shared.WriteError(w, dErrors.New(dErrors.CodeInternal, msg))
}

// filterFromQuery builds a compliance.Filter from query parameters:
// status, client_type, q. Missing parameters leave the filter open.
func filterFromQuery(r *http.Request) (compliance.Filter, error) {
	var filter compliance.Filter

	if raw := r.URL.Query().Get("status"); raw != "" && raw != "all" {
		status, err := compliance.ParseStatus(raw)
		if err != nil {
			return compliance.Filter{}, err
		}
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("client_type"); raw != "" && raw != "all" {
		kind, err := compliance.ParseSubjectKind(raw)
		if err != nil {
			return compliance.Filter{}, err
		}
		filter.SubjectKind = &kind
	}
	filter.Query = r.URL.Query().Get("q")
	return filter, nil
}

const dateLayout = "2006-01-02"

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
