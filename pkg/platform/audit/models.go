package audit

import (
	"time"

	id "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies, storage backends, and routing.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance.
	// Reminder dispatch falls here: AML reviews need proof a client was
	// notified. These require tamper-proof storage and long retention.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers events useful for debugging and operational
	// visibility. These can be sampled or aggregated with shorter retention.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	// ClientID is the subject client when the event concerns one.
	ClientID id.ClientID
	// DocumentID is the compliance document a reminder concerns, if any.
	DocumentID id.DocumentID
	// Subject is a human-readable description of the acted-on entity, e.g.
	// a document type or a company number.
	Subject  string
	Action   string
	Decision string
	Reason   string
	// Email is the recipient address for reminder events.
	Email string
	// RequestID is the correlation ID from the HTTP request context.
	RequestID string
}

// AuditEvent names every action this service records.
type AuditEvent string

const (
	// Renewal reminder events
	EventReminderSent   AuditEvent = "reminder_sent"
	EventReminderFailed AuditEvent = "reminder_failed"

	// Company registry events
	EventCompanyLookup AuditEvent = "company_lookup"
)

// Audit event decisions record the outcome of the action.
const (
	DecisionSent     = "sent"
	DecisionFailed   = "failed"
	DecisionFound    = "found"
	DecisionNotFound = "not_found"
	DecisionConflict = "already_onboarded"
)

// eventCategories maps each audit event to its category and is the source
// of truth for routing; stores derive the category from the action.
var eventCategories = map[AuditEvent]EventCategory{
	EventReminderSent:   CategoryCompliance,
	EventReminderFailed: CategoryCompliance,
	EventCompanyLookup:  CategoryOperations,
}

// Category returns the routing category for an event action. Unrecognized
// actions default to compliance: better to over-retain than lose evidence.
func (e AuditEvent) Category() EventCategory {
	if category, ok := eventCategories[e]; ok {
		return category
	}
	return CategoryCompliance
}
