package reminder

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	id "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	txcontext "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/tx"
)

// PostgresStore persists reminder records in PostgreSQL.
// Pure I/O; cooldown checks and outcome decisions belong in the service.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) Append(ctx context.Context, record Record) error {
	query := `
		INSERT INTO reminder_records (id, document_id, sent_at, outcome, error, message_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(record.ID),
		uuid.UUID(record.DocumentID),
		record.SentAt,
		string(record.Outcome),
		record.Error,
		record.MessageID,
	)
	if err != nil {
		return fmt.Errorf("insert reminder record: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByDocument(ctx context.Context, documentID id.DocumentID) ([]Record, error) {
	query := `
		SELECT id, document_id, sent_at, outcome, error, message_id
		FROM reminder_records
		WHERE document_id = $1
		ORDER BY sent_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(documentID))
	if err != nil {
		return nil, fmt.Errorf("query reminder records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			record     Record
			recordID   uuid.UUID
			documentID uuid.UUID
			outcome    string
		)
		err := rows.Scan(&recordID, &documentID, &record.SentAt, &outcome, &record.Error, &record.MessageID)
		if err != nil {
			return nil, fmt.Errorf("scan reminder record: %w", err)
		}
		record.ID = id.ReminderID(recordID)
		record.DocumentID = id.DocumentID(documentID)
		record.Outcome = Outcome(outcome)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminder records: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) LastSentAt(ctx context.Context, documentID id.DocumentID) (*time.Time, error) {
	query := `
		SELECT sent_at
		FROM reminder_records
		WHERE document_id = $1 AND outcome = $2
		ORDER BY sent_at DESC
		LIMIT 1
	`
	var sentAt time.Time
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(documentID), string(OutcomeSent)).Scan(&sentAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last reminder: %w", err)
	}
	return &sentAt, nil
}
