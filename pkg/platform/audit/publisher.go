package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/deltacloudassociates/optmark-crm-hub/pkg/requestcontext"
)

// Publisher is the write-side entry point for audit events. It stamps
// the event with request metadata and hands it to the store. A nil
// Publisher is safe to call and drops events, so callers never need
// nil checks.
type Publisher struct {
	store  Store
	logger *slog.Logger
}

func NewPublisher(store Store, logger *slog.Logger) *Publisher {
	return &Publisher{store: store, logger: logger}
}

// Emit records an audit event. Failures are logged, never returned:
// an audit write must not fail the business operation that produced it.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if p == nil || p.store == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.Category == "" {
		event.Category = AuditEvent(event.Action).Category()
	}
	if err := p.store.Append(ctx, event); err != nil && p.logger != nil {
		p.logger.ErrorContext(ctx, "audit append failed",
			"action", event.Action,
			"client_id", event.ClientID.String(),
			"error", err,
		)
	}
}
