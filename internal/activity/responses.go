package activity

import (
	"time"

	"github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit"
)

// EventResponse is the wire form of one audit event.
type EventResponse struct {
	Category   string `json:"category"`
	Timestamp  string `json:"timestamp"`
	ClientID   string `json:"client_id,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
	Subject    string `json:"subject"`
	Action     string `json:"action"`
	Decision   string `json:"decision,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Email      string `json:"email,omitempty"`
}

// EventsResponse wraps the feed with its length.
type EventsResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}

func toEventsResponse(events []audit.Event) EventsResponse {
	out := make([]EventResponse, 0, len(events))
	for _, event := range events {
		resp := EventResponse{
			Category:  string(event.Category),
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Subject:   event.Subject,
			Action:    event.Action,
			Decision:  event.Decision,
			Reason:    event.Reason,
			Email:     event.Email,
		}
		if !event.ClientID.IsNil() {
			resp.ClientID = event.ClientID.String()
		}
		if !event.DocumentID.IsNil() {
			resp.DocumentID = event.DocumentID.String()
		}
		out = append(out, resp)
	}
	return EventsResponse{Events: out, Total: len(out)}
}
