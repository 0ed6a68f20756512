// Package activity serves the audit activity feed: what the engine did,
// per client and fleet-wide. On PostgreSQL the feed reads the materialized
// audit_events table the outbox worker maintains; in memory mode it reads
// the in-process audit store directly.
package activity

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/platform/middleware"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/transport/http/shared"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Reader

const (
	defaultFeedLimit = 50
	maxFeedLimit     = 200
)

// Reader lists recorded audit events, newest first.
type Reader interface {
	ListByClient(ctx context.Context, clientID domain.ClientID) ([]audit.Event, error)
	ListRecent(ctx context.Context, limit int) ([]audit.Event, error)
}

// Handler serves the activity feed endpoints.
type Handler struct {
	logger *slog.Logger
	reader Reader
}

// New creates an activity Handler.
func New(reader Reader, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, reader: reader}
}

// Register registers the activity routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/kyc/activity", h.handleRecent)
	r.Get("/kyc/clients/{clientID}/activity", h.handleClient)
}

func (h *Handler) handleRecent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := limitFromQuery(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	events, err := h.reader.ListRecent(ctx, limit)
	if err != nil {
		h.readError(w, r, "failed to list recent activity", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toEventsResponse(events))
}

func (h *Handler) handleClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := domain.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	events, err := h.reader.ListByClient(ctx, clientID)
	if err != nil {
		h.readError(w, r, "failed to list client activity", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toEventsResponse(events))
}

func (h *Handler) readError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	h.logger.ErrorContext(ctx, msg,
		"request_id", middleware.GetRequestID(ctx),
		"error", err.Error(),
	)
	shared.WriteError(w, dErrors.New(dErrors.CodeInternal, msg))
}

func limitFromQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultFeedLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "limit must be a positive integer")
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	return limit, nil
}
