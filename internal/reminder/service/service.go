// Package service implements the renewal reminder workflow: resolving the
// document, dispatching the email, and recording the outcome. Bulk runs
// isolate failures so one bad address never aborts the batch.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/compliance"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/directory"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/notify"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/reminder"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/reminder/metrics"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/email"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Directory,Sender

// Directory resolves documents and client contacts for dispatch.
type Directory interface {
	GetDocument(ctx context.Context, documentID domain.DocumentID) (compliance.Document, error)
	GetContact(ctx context.Context, clientID domain.ClientID) (directory.Contact, error)
}

// Sender delivers the reminder email.
type Sender interface {
	Send(ctx context.Context, msg notify.Message) (string, error)
}

// TxRunner executes fn transactionally so the reminder record and its
// audit outbox row commit together. A nil runner executes fn directly,
// which is what the memory stores need.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// Service runs the reminder workflow.
type Service struct {
	directory Directory
	sender    Sender
	store     reminder.Store
	auditor   *audit.Publisher
	txRunner  TxRunner
	metrics   *metrics.Metrics
	logger    *slog.Logger
	// cooldown suppresses re-sends within the window; zero disables it.
	cooldown time.Duration
}

func New(directory Directory, sender Sender, store reminder.Store, auditor *audit.Publisher, txRunner TxRunner, m *metrics.Metrics, logger *slog.Logger, cooldown time.Duration) *Service {
	return &Service{
		directory: directory,
		sender:    sender,
		store:     store,
		auditor:   auditor,
		txRunner:  txRunner,
		metrics:   m,
		logger:    logger,
		cooldown:  cooldown,
	}
}

func (s *Service) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txRunner == nil {
		return fn(ctx)
	}
	return s.txRunner(ctx, fn)
}

// SendReminder dispatches a renewal reminder for one document. The returned
// record describes the attempt; on failure both the record and a non-nil
// error are returned so callers can persist context and surface the cause.
func (s *Service) SendReminder(ctx context.Context, documentID domain.DocumentID) (reminder.Record, error) {
	doc, err := s.directory.GetDocument(ctx, documentID)
	if err != nil {
		return reminder.Record{}, err
	}
	return s.dispatch(ctx, doc)
}

// SendBulkReminders dispatches reminders for each document in order. A
// failing document is tallied and the run continues; only context
// cancellation stops the batch early.
func (s *Service) SendBulkReminders(ctx context.Context, documentIDs []domain.DocumentID) (reminder.BulkResult, error) {
	if len(documentIDs) == 0 {
		return reminder.BulkResult{}, dErrors.New(dErrors.CodeInvalidInput, "no documents requested")
	}
	s.metrics.ObserveBulkSize(len(documentIDs))

	var result reminder.BulkResult
	for _, documentID := range documentIDs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		doc, err := s.directory.GetDocument(ctx, documentID)
		if err != nil {
			result.Failed++
			result.Failures = append(result.Failures, reminder.BulkFailure{
				DocumentID: documentID,
				Reason:     dErrors.MessageOf(err),
			})
			continue
		}

		record, err := s.dispatch(ctx, doc)
		switch {
		case err != nil:
			reason := record.Error
			if reason == "" {
				reason = dErrors.MessageOf(err)
			}
			result.Failed++
			result.Failures = append(result.Failures, reminder.BulkFailure{
				DocumentID: documentID,
				Reason:     reason,
			})
		case record.Outcome == reminder.OutcomeSkipped:
			result.Skipped++
		default:
			result.Sent++
		}
	}

	s.logger.InfoContext(ctx, "bulk reminder run finished",
		"request_id", requestcontext.RequestID(ctx),
		"requested", len(documentIDs),
		"sent", result.Sent,
		"failed", result.Failed,
		"skipped", result.Skipped,
	)
	return result, nil
}

// dispatch sends one reminder and records the attempt. Skipped dispatches
// are returned but never persisted.
func (s *Service) dispatch(ctx context.Context, doc compliance.Document) (reminder.Record, error) {
	now := requestcontext.Now(ctx)

	if s.cooldown > 0 {
		lastSent, err := s.store.LastSentAt(ctx, doc.ID)
		if err != nil {
			return reminder.Record{}, dErrors.Wrap(err, dErrors.CodeInternal, "check reminder history")
		}
		if lastSent != nil && now.Sub(*lastSent) < s.cooldown {
			s.metrics.RecordOutcome(string(reminder.OutcomeSkipped))
			return reminder.Record{
				DocumentID: doc.ID,
				SentAt:     now,
				Outcome:    reminder.OutcomeSkipped,
			}, nil
		}
	}

	// The directory is the system of record for contact details; the
	// fields joined onto the document row can lag behind an updated
	// address, so they only serve as a fallback.
	contact, err := s.directory.GetContact(ctx, doc.SubjectID)
	if err != nil {
		s.logger.WarnContext(ctx, "contact lookup failed, using document contact fields",
			"client_id", doc.SubjectID.String(),
			"error", err,
		)
		contact = directory.Contact{Name: doc.SubjectName, Email: doc.Email, Phone: doc.Phone}
	}

	if contact.Email == "" {
		return s.recordFailure(ctx, doc, now, dErrors.New(dErrors.CodeInvalidInput, "no contact email on file"))
	}

	// Records imported from the legacy system can miss the name; derive
	// one from the address so the salutation never reads "Dear ,".
	if contact.Name == "" {
		first, last := email.DeriveNameFromEmail(contact.Email)
		contact.Name = first + " " + last
	}

	start := time.Now()
	messageID, err := s.sender.Send(ctx, notify.Message{
		ClientName:     contact.Name,
		RecipientEmail: contact.Email,
		DocumentType:   doc.Type,
		ExpiryDate:     doc.ExpiryDate,
	})
	s.metrics.ObserveSendLatency(time.Since(start))
	if err != nil {
		return s.recordFailure(ctx, doc, now, err)
	}

	record := reminder.Record{
		ID:         domain.NewReminderID(),
		DocumentID: doc.ID,
		SentAt:     now,
		Outcome:    reminder.OutcomeSent,
		MessageID:  messageID,
	}
	err = s.run(ctx, func(ctx context.Context) error {
		if err := s.store.Append(ctx, record); err != nil {
			return err
		}
		s.auditor.Emit(ctx, audit.Event{
			ClientID:   doc.SubjectID,
			DocumentID: doc.ID,
			Subject:    doc.Type,
			Action:     string(audit.EventReminderSent),
			Decision:   audit.DecisionSent,
			Email:      contact.Email,
		})
		return nil
	})
	if err != nil {
		// Delivery succeeded, bookkeeping did not. The email is already
		// out, so the send still counts; only the record is missing.
		s.logger.ErrorContext(ctx, "reminder sent but not recorded",
			"document_id", doc.ID.String(),
			"error", err,
		)
	}

	s.metrics.RecordOutcome(string(reminder.OutcomeSent))
	return record, nil
}

func (s *Service) recordFailure(ctx context.Context, doc compliance.Document, now time.Time, cause error) (reminder.Record, error) {
	record := reminder.Record{
		ID:         domain.NewReminderID(),
		DocumentID: doc.ID,
		SentAt:     now,
		Outcome:    reminder.OutcomeFailed,
		Error:      dErrors.MessageOf(cause),
	}
	err := s.run(ctx, func(ctx context.Context) error {
		if err := s.store.Append(ctx, record); err != nil {
			return err
		}
		s.auditor.Emit(ctx, audit.Event{
			ClientID:   doc.SubjectID,
			DocumentID: doc.ID,
			Subject:    doc.Type,
			Action:     string(audit.EventReminderFailed),
			Decision:   audit.DecisionFailed,
			Reason:     dErrors.MessageOf(cause),
			Email:      doc.Email,
		})
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "reminder failure not recorded",
			"document_id", doc.ID.String(),
			"error", err,
		)
	}

	s.metrics.RecordOutcome(string(reminder.OutcomeFailed))
	s.logger.WarnContext(ctx, "reminder dispatch failed",
		"request_id", requestcontext.RequestID(ctx),
		"document_id", doc.ID.String(),
		"error", cause,
	)
	return record, cause
}
