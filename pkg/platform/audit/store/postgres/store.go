package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	id "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	audit "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit"
	txcontext "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/tx"

	"github.com/google/uuid"
)

// Store implements audit.Store using the transactional outbox pattern.
// Events are written to the outbox table in the same transaction as the
// business write and published to Kafka by the outbox worker. Kafka is
// the source of truth for audit events.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// outboxPayload is the JSON structure published to Kafka.
// Field names match audit.Event for proper deserialization by consumers.
type outboxPayload struct {
	ID         string `json:"ID"`
	Category   string `json:"Category"`
	Timestamp  string `json:"Timestamp"`
	ClientID   string `json:"ClientID,omitempty"`
	DocumentID string `json:"DocumentID,omitempty"`
	Subject    string `json:"Subject"`
	Action     string `json:"Action"`
	Decision   string `json:"Decision,omitempty"`
	Reason     string `json:"Reason,omitempty"`
	Email      string `json:"Email,omitempty"`
	RequestID  string `json:"RequestID,omitempty"`
}

// Append writes an audit event to the outbox table for Kafka publishing.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	eventID := uuid.New()

	// Always derive category from action, eventCategories is the source of truth.
	category := audit.AuditEvent(event.Action).Category()

	payload := outboxPayload{
		ID:        eventID.String(),
		Category:  string(category),
		Timestamp: event.Timestamp.Format(time.RFC3339Nano),
		Subject:   event.Subject,
		Action:    event.Action,
		Decision:  event.Decision,
		Reason:    event.Reason,
		Email:     event.Email,
		RequestID: event.RequestID,
	}
	if !event.ClientID.IsNil() {
		payload.ClientID = event.ClientID.String()
	}
	if !event.DocumentID.IsNil() {
		payload.DocumentID = event.DocumentID.String()
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}

	// Client-scoped events share an aggregate so Kafka partitioning keeps
	// a client's history ordered.
	aggregateType := "audit"
	aggregateID := eventID.String()
	if !event.ClientID.IsNil() {
		aggregateType = "client"
		aggregateID = event.ClientID.String()
	}

	// The row id is the event id so the outbox row, the Kafka payload,
	// and the materialized audit_events row share one identifier.
	query := `
		INSERT INTO outbox (id, aggregate_type, aggregate_id, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.execer(ctx).ExecContext(ctx, query,
		eventID,
		aggregateType,
		aggregateID,
		event.Action,
		payloadBytes,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert outbox entry: %w", err)
	}
	return nil
}

// OutboxEntry is an unpublished row awaiting delivery to Kafka.
type OutboxEntry struct {
	ID          uuid.UUID
	AggregateID string
	EventType   string
	Payload     []byte
}

// FetchUnpublished returns up to limit outbox rows that have not yet been
// published, oldest first. The worker runs as a single instance; delivery
// is at-least-once and consumers dedupe on the payload event ID.
func (s *Store) FetchUnpublished(ctx context.Context, limit int) ([]OutboxEntry, error) {
	query := `
		SELECT id, aggregate_id, event_type, payload
		FROM outbox
		WHERE published_at IS NULL
		ORDER BY created_at
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query outbox: %w", err)
	}
	defer rows.Close()

	var entries []OutboxEntry
	for rows.Next() {
		var entry OutboxEntry
		if err := rows.Scan(&entry.ID, &entry.AggregateID, &entry.EventType, &entry.Payload); err != nil {
			return nil, fmt.Errorf("scan outbox entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox: %w", err)
	}
	return entries, nil
}

// Materialize decodes an outbox entry's payload and inserts it into the
// queryable audit_events table. The worker calls it after a successful
// produce so the activity feed mirrors what was published.
func (s *Store) Materialize(ctx context.Context, entry OutboxEntry) error {
	var payload outboxPayload
	if err := json.Unmarshal(entry.Payload, &payload); err != nil {
		return fmt.Errorf("decode outbox payload: %w", err)
	}

	eventID, err := uuid.Parse(payload.ID)
	if err != nil {
		return fmt.Errorf("parse event id: %w", err)
	}
	timestamp, err := time.Parse(time.RFC3339Nano, payload.Timestamp)
	if err != nil {
		return fmt.Errorf("parse event timestamp: %w", err)
	}

	event := audit.Event{
		Category:  audit.EventCategory(payload.Category),
		Timestamp: timestamp,
		Subject:   payload.Subject,
		Action:    payload.Action,
		Decision:  payload.Decision,
		Reason:    payload.Reason,
		Email:     payload.Email,
		RequestID: payload.RequestID,
	}
	if payload.ClientID != "" {
		clientID, err := id.ParseClientID(payload.ClientID)
		if err != nil {
			return fmt.Errorf("parse event client id: %w", err)
		}
		event.ClientID = clientID
	}
	if payload.DocumentID != "" {
		documentID, err := id.ParseDocumentID(payload.DocumentID)
		if err != nil {
			return fmt.Errorf("parse event document id: %w", err)
		}
		event.DocumentID = documentID
	}

	return s.AppendMaterialized(ctx, eventID, event)
}

// MarkPublished stamps an outbox row after its Kafka produce succeeds.
func (s *Store) MarkPublished(ctx context.Context, entryID uuid.UUID) error {
	query := `UPDATE outbox SET published_at = $1 WHERE id = $2`
	if _, err := s.db.ExecContext(ctx, query, time.Now(), entryID); err != nil {
		return fmt.Errorf("mark outbox entry published: %w", err)
	}
	return nil
}

// AppendMaterialized inserts an audit event into the audit_events table
// for querying. Idempotent via ON CONFLICT DO NOTHING so replays are safe.
func (s *Store) AppendMaterialized(ctx context.Context, eventID uuid.UUID, event audit.Event) error {
	query := `
		INSERT INTO audit_events (
			id, category, timestamp, client_id, document_id, subject,
			action, decision, reason, email, request_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
	`

	var clientID *uuid.UUID
	if !event.ClientID.IsNil() {
		cid := uuid.UUID(event.ClientID)
		clientID = &cid
	}
	var documentID *uuid.UUID
	if !event.DocumentID.IsNil() {
		did := uuid.UUID(event.DocumentID)
		documentID = &did
	}

	_, err := s.db.ExecContext(ctx, query,
		eventID,
		string(event.Category),
		event.Timestamp,
		clientID,
		documentID,
		event.Subject,
		event.Action,
		event.Decision,
		event.Reason,
		event.Email,
		event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByClient returns materialized events for a specific client,
// most recent first.
func (s *Store) ListByClient(ctx context.Context, clientID id.ClientID) ([]audit.Event, error) {
	query := `
		SELECT category, timestamp, client_id, document_id, subject,
			   action, decision, reason, email, request_id
		FROM audit_events
		WHERE client_id = $1
		ORDER BY timestamp DESC
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(clientID))
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	return s.scanEvents(rows)
}

// ListRecent returns the N most recent materialized events.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]audit.Event, error) {
	query := `
		SELECT category, timestamp, client_id, document_id, subject,
			   action, decision, reason, email, request_id
		FROM audit_events
		ORDER BY timestamp DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	return s.scanEvents(rows)
}

func (s *Store) scanEvents(rows *sql.Rows) ([]audit.Event, error) {
	var events []audit.Event

	for rows.Next() {
		var (
			category           string
			event              audit.Event
			clientIDNullable   *uuid.UUID
			documentIDNullable *uuid.UUID
		)

		err := rows.Scan(
			&category,
			&event.Timestamp,
			&clientIDNullable,
			&documentIDNullable,
			&event.Subject,
			&event.Action,
			&event.Decision,
			&event.Reason,
			&event.Email,
			&event.RequestID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}

		event.Category = audit.EventCategory(category)
		if clientIDNullable != nil {
			event.ClientID = id.ClientID(*clientIDNullable)
		}
		if documentIDNullable != nil {
			event.DocumentID = id.DocumentID(*documentIDNullable)
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}

	return events, nil
}
