package handler

import (
	"time"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/reminder"
)

// RecordResponse is the JSON shape of one dispatch attempt.
type RecordResponse struct {
	ID         string `json:"id,omitempty"`
	DocumentID string `json:"document_id"`
	SentAt     string `json:"sent_at"`
	Outcome    string `json:"outcome"`
	Error      string `json:"error,omitempty"`
	MessageID  string `json:"message_id,omitempty"`
}

// BulkFailureResponse identifies one failed document in a bulk run.
type BulkFailureResponse struct {
	DocumentID string `json:"document_id"`
	Reason     string `json:"reason"`
}

// BulkResponse tallies a bulk reminder run.
type BulkResponse struct {
	Sent     int                   `json:"sent"`
	Failed   int                   `json:"failed"`
	Skipped  int                   `json:"skipped"`
	Failures []BulkFailureResponse `json:"failures"`
}

func toRecordResponse(record reminder.Record) RecordResponse {
	resp := RecordResponse{
		DocumentID: record.DocumentID.String(),
		SentAt:     record.SentAt.UTC().Format(time.RFC3339),
		Outcome:    string(record.Outcome),
		Error:      record.Error,
		MessageID:  record.MessageID,
	}
	if !record.ID.IsNil() {
		resp.ID = record.ID.String()
	}
	return resp
}

func toBulkResponse(result reminder.BulkResult) BulkResponse {
	resp := BulkResponse{
		Sent:     result.Sent,
		Failed:   result.Failed,
		Skipped:  result.Skipped,
		Failures: make([]BulkFailureResponse, 0, len(result.Failures)),
	}
	for _, failure := range result.Failures {
		resp.Failures = append(resp.Failures, BulkFailureResponse{
			DocumentID: failure.DocumentID.String(),
			Reason:     failure.Reason,
		})
	}
	return resp
}
