package reminder

import (
	"context"
	"time"

	id "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
)

// Store persists reminder dispatch records.
type Store interface {
	Append(ctx context.Context, record Record) error
	ListByDocument(ctx context.Context, documentID id.DocumentID) ([]Record, error)
	// LastSentAt returns the time of the most recent successful dispatch
	// for the document, or nil when none exists.
	LastSentAt(ctx context.Context, documentID id.DocumentID) (*time.Time, error)
}
