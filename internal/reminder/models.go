package reminder

import (
	"time"

	id "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
)

// Outcome records how a reminder dispatch ended.
type Outcome string

const (
	// OutcomeSent means the provider accepted the message.
	OutcomeSent Outcome = "sent"
	// OutcomeFailed means delivery was attempted and failed.
	OutcomeFailed Outcome = "failed"
	// OutcomeSkipped means the document was recently reminded and the
	// cooldown suppressed a duplicate send. Skipped dispatches are not
	// persisted as records.
	OutcomeSkipped Outcome = "skipped"
)

// Record is one reminder dispatch attempt against a document.
type Record struct {
	ID         id.ReminderID
	DocumentID id.DocumentID
	SentAt     time.Time
	Outcome    Outcome
	// Error holds the failure reason when Outcome is OutcomeFailed.
	Error string
	// MessageID is the provider's message identifier for sent reminders.
	MessageID string
}

// BulkFailure identifies one document that failed during a bulk send.
type BulkFailure struct {
	DocumentID id.DocumentID
	Reason     string
}

// BulkResult tallies a bulk reminder run. Sent + Failed + Skipped equals
// the number of requested documents unless the run was cancelled.
type BulkResult struct {
	Sent     int
	Failed   int
	Skipped  int
	Failures []BulkFailure
}
