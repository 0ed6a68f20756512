// Package notify delivers renewal reminder emails to clients.
//
// The Sender interface decouples reminder workflow logic from the delivery
// channel. Production uses SMTP; development and tests use the log sender.
package notify

import (
	"context"
	"time"
)

// Message is a renewal reminder to be delivered to a client.
type Message struct {
	ClientName     string
	RecipientEmail string
	DocumentType   string
	ExpiryDate     *time.Time
}

// Sender delivers a reminder message and returns the provider's message ID.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
