package directory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/compliance"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
)

// PostgresStore reads the directory from PostgreSQL. Individuals and
// businesses live in separate tables; document rows carry the client kind
// so the join picks the right one. The latest successful reminder is
// joined in so the dashboard needs no second query.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const documentColumns = `
	d.id, d.client_id, d.client_kind,
	COALESCE(i.full_name, b.company_name, '') AS subject_name,
	COALESCE(i.email, b.email, '') AS email,
	COALESCE(i.phone, b.phone, '') AS phone,
	d.document_class, d.document_type, d.issue_date, d.expiry_date,
	r.last_sent_at
`

const documentJoins = `
	FROM kyc_documents d
	LEFT JOIN individual_clients i ON d.client_kind = 'individual' AND i.id = d.client_id
	LEFT JOIN business_clients b ON d.client_kind = 'business' AND b.id = d.client_id
	LEFT JOIN LATERAL (
		SELECT MAX(sent_at) AS last_sent_at
		FROM reminder_records
		WHERE document_id = d.id AND outcome = 'sent'
	) r ON TRUE
`

func (s *PostgresStore) ListAllDocuments(ctx context.Context) ([]compliance.Document, error) {
	query := `SELECT ` + documentColumns + documentJoins + ` ORDER BY d.created_at, d.id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (s *PostgresStore) GetClientDocuments(ctx context.Context, clientID domain.ClientID) ([]compliance.Document, error) {
	query := `SELECT ` + documentColumns + documentJoins + ` WHERE d.client_id = $1 ORDER BY d.created_at, d.id`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(clientID))
	if err != nil {
		return nil, fmt.Errorf("query client documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (s *PostgresStore) GetDocument(ctx context.Context, documentID domain.DocumentID) (compliance.Document, error) {
	query := `SELECT ` + documentColumns + documentJoins + ` WHERE d.id = $1`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(documentID))
	if err != nil {
		return compliance.Document{}, fmt.Errorf("query document: %w", err)
	}
	defer rows.Close()

	docs, err := scanDocuments(rows)
	if err != nil {
		return compliance.Document{}, err
	}
	if len(docs) == 0 {
		return compliance.Document{}, dErrors.New(dErrors.CodeNotFound, "document not found")
	}
	return docs[0], nil
}

func (s *PostgresStore) GetContact(ctx context.Context, clientID domain.ClientID) (Contact, error) {
	query := `
		SELECT full_name, email, phone FROM individual_clients WHERE id = $1
		UNION ALL
		SELECT company_name, email, phone FROM business_clients WHERE id = $1
	`
	var contact Contact
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(clientID)).
		Scan(&contact.Name, &contact.Email, &contact.Phone)
	if err == sql.ErrNoRows {
		return Contact{}, dErrors.New(dErrors.CodeNotFound, "client not found")
	}
	if err != nil {
		return Contact{}, fmt.Errorf("query client contact: %w", err)
	}
	return contact, nil
}

func (s *PostgresStore) FindBusinessByCompanyNumber(ctx context.Context, companyNumber string) (*companyregistry.ExistingClient, error) {
	query := `
		SELECT id, company_name, company_number
		FROM business_clients
		WHERE company_number = $1
	`
	var (
		clientID uuid.UUID
		existing companyregistry.ExistingClient
	)
	err := s.db.QueryRowContext(ctx, query, companyNumber).
		Scan(&clientID, &existing.CompanyName, &existing.CompanyNumber)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query business client: %w", err)
	}
	existing.ID = domain.ClientID(clientID)
	return &existing, nil
}

func scanDocuments(rows *sql.Rows) ([]compliance.Document, error) {
	var docs []compliance.Document

	for rows.Next() {
		var (
			doc        compliance.Document
			documentID uuid.UUID
			clientID   uuid.UUID
			clientKind string
			class      string
			issueDate  *time.Time
			expiryDate *time.Time
			lastSentAt *time.Time
		)

		err := rows.Scan(
			&documentID,
			&clientID,
			&clientKind,
			&doc.SubjectName,
			&doc.Email,
			&doc.Phone,
			&class,
			&doc.Type,
			&issueDate,
			&expiryDate,
			&lastSentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}

		doc.ID = domain.DocumentID(documentID)
		doc.SubjectID = domain.ClientID(clientID)
		doc.SubjectKind = compliance.SubjectKind(clientKind)
		doc.Class = compliance.DocumentClass(class)
		doc.IssueDate = issueDate
		doc.ExpiryDate = expiryDate
		doc.LastReminderSentAt = lastSentAt

		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return docs, nil
}
