package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/platform/middleware"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/reminder"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/transport/http/shared"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service runs the reminder workflow.
type Service interface {
	SendReminder(ctx context.Context, documentID domain.DocumentID) (reminder.Record, error)
	SendBulkReminders(ctx context.Context, documentIDs []domain.DocumentID) (reminder.BulkResult, error)
}

// Handler serves the reminder dispatch endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a reminder Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the reminder routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/kyc/reminders", h.handleSendReminder)
	r.Post("/kyc/reminders/bulk", h.handleSendBulk)
}

type sendReminderRequest struct {
	DocumentID string `json:"document_id"`
}

type sendBulkRequest struct {
	DocumentIDs []string `json:"document_ids"`
}

func (h *Handler) handleSendReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req sendReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "malformed request body"))
		return
	}
	documentID, err := domain.ParseDocumentID(req.DocumentID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	record, err := h.service.SendReminder(ctx, documentID)
	if err != nil {
		h.logger.WarnContext(ctx, "reminder dispatch rejected",
			"request_id", middleware.GetRequestID(ctx),
			"document_id", req.DocumentID,
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toRecordResponse(record))
}

func (h *Handler) handleSendBulk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req sendBulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "malformed request body"))
		return
	}

	documentIDs := make([]domain.DocumentID, 0, len(req.DocumentIDs))
	for _, raw := range req.DocumentIDs {
		documentID, err := domain.ParseDocumentID(raw)
		if err != nil {
			shared.WriteError(w, dErrors.Newf(dErrors.CodeInvalidInput, "invalid document id %q", raw))
			return
		}
		documentIDs = append(documentIDs, documentID)
	}

	result, err := h.service.SendBulkReminders(ctx, documentIDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "bulk reminder run aborted",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toBulkResponse(result))
}
