package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/platform/middleware"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/transport/http/shared"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service performs company lookups.
type Service interface {
	Lookup(ctx context.Context, companyNumber string) (companyregistry.LookupResult, error)
}

// Handler serves the company lookup endpoint.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a registry Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the registry routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/registry/company-lookup", h.handleLookup)
}

type lookupRequest struct {
	CompanyNumber string `json:"company_number"`
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "malformed request body"))
		return
	}

	result, err := h.service.Lookup(ctx, req.CompanyNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "company lookup failed",
			"request_id", middleware.GetRequestID(ctx),
			"company_number", req.CompanyNumber,
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, result)
}
