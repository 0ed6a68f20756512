//go:build integration

package directory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/compliance"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/directory"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/testutil/containers"
)

type DirectoryPostgresSuite struct {
	suite.Suite

	ctx   context.Context
	pg    *containers.PostgresContainer
	store *directory.PostgresStore
}

func TestDirectoryPostgresSuite(t *testing.T) {
	suite.Run(t, new(DirectoryPostgresSuite))
}

func (s *DirectoryPostgresSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.GetManager().GetPostgres(s.T())
	s.store = directory.NewPostgresStore(s.pg.DB)
}

func (s *DirectoryPostgresSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx,
		"individual_clients", "business_clients", "kyc_documents", "reminder_records"))
}

func (s *DirectoryPostgresSuite) seedIndividual(name, email string) domain.ClientID {
	clientID := domain.NewClientID()
	_, err := s.pg.DB.ExecContext(s.ctx,
		`INSERT INTO individual_clients (id, full_name, email) VALUES ($1, $2, $3)`,
		uuid.UUID(clientID), name, email)
	s.Require().NoError(err)
	return clientID
}

func (s *DirectoryPostgresSuite) seedBusiness(name, number string) domain.ClientID {
	clientID := domain.NewClientID()
	_, err := s.pg.DB.ExecContext(s.ctx,
		`INSERT INTO business_clients (id, company_name, company_number, email) VALUES ($1, $2, $3, $4)`,
		uuid.UUID(clientID), name, number, "contact@"+number+".example.com")
	s.Require().NoError(err)
	return clientID
}

func (s *DirectoryPostgresSuite) seedDocument(clientID domain.ClientID, kind compliance.SubjectKind, class compliance.DocumentClass, docType string, issue, expiry *time.Time) domain.DocumentID {
	documentID := domain.NewDocumentID()
	_, err := s.pg.DB.ExecContext(s.ctx,
		`INSERT INTO kyc_documents (id, client_id, client_kind, document_class, document_type, issue_date, expiry_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.UUID(documentID), uuid.UUID(clientID), string(kind), string(class), docType, issue, expiry)
	s.Require().NoError(err)
	return documentID
}

func (s *DirectoryPostgresSuite) TestListAllDocumentsJoinsSubjects() {
	expiry := time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)
	individual := s.seedIndividual("Emma Williams", "emma.williams@email.com")
	business := s.seedBusiness("Tech Solutions Ltd", "09876543")

	s.seedDocument(individual, compliance.SubjectIndividual, compliance.ClassIdentity, "UK Passport", nil, &expiry)
	s.seedDocument(business, compliance.SubjectBusiness, compliance.ClassIdentity, "Director Passport (James Wilson)", nil, &expiry)

	docs, err := s.store.ListAllDocuments(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(docs, 2)

	byName := make(map[string]compliance.Document, len(docs))
	for _, doc := range docs {
		byName[doc.SubjectName] = doc
	}
	s.Require().Contains(byName, "Emma Williams")
	s.Equal("emma.williams@email.com", byName["Emma Williams"].Email)
	s.Equal(compliance.SubjectIndividual, byName["Emma Williams"].SubjectKind)
	s.Require().Contains(byName, "Tech Solutions Ltd")
	s.Equal(compliance.SubjectBusiness, byName["Tech Solutions Ltd"].SubjectKind)
}

func (s *DirectoryPostgresSuite) TestListAllDocumentsIncludesLastReminder() {
	expiry := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	clientID := s.seedIndividual("Sarah Johnson", "sarah.johnson@email.com")
	documentID := s.seedDocument(clientID, compliance.SubjectIndividual, compliance.ClassIdentity, "UK Passport", nil, &expiry)

	earlier := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	later := time.Date(2026, time.January, 14, 9, 0, 0, 0, time.UTC)
	for _, row := range []struct {
		sentAt  time.Time
		outcome string
	}{
		{earlier, "sent"},
		{later, "sent"},
		{later.Add(time.Hour), "failed"},
	} {
		_, err := s.pg.DB.ExecContext(s.ctx,
			`INSERT INTO reminder_records (id, document_id, sent_at, outcome) VALUES ($1, $2, $3, $4)`,
			uuid.New(), uuid.UUID(documentID), row.sentAt, row.outcome)
		s.Require().NoError(err)
	}

	docs, err := s.store.ListAllDocuments(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(docs, 1)
	s.Require().NotNil(docs[0].LastReminderSentAt)
	s.True(docs[0].LastReminderSentAt.Equal(later), "failed attempts must not advance the last reminder")
}

func (s *DirectoryPostgresSuite) TestGetClientDocuments() {
	expiry := time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)
	issue := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC)
	clientID := s.seedIndividual("Sarah Johnson", "sarah.johnson@email.com")
	other := s.seedIndividual("Michael Chen", "michael.chen@email.com")

	s.seedDocument(clientID, compliance.SubjectIndividual, compliance.ClassIdentity, "UK Passport", nil, &expiry)
	s.seedDocument(clientID, compliance.SubjectIndividual, compliance.ClassProofOfAddress, "Council Tax Bill", &issue, nil)
	s.seedDocument(other, compliance.SubjectIndividual, compliance.ClassIdentity, "UK Driving Licence", nil, &expiry)

	docs, err := s.store.GetClientDocuments(s.ctx, clientID)

	s.Require().NoError(err)
	s.Require().Len(docs, 2)

	byType := make(map[string]compliance.Document, len(docs))
	for _, doc := range docs {
		byType[doc.Type] = doc
	}
	s.Require().Contains(byType, "UK Passport")
	s.Require().Contains(byType, "Council Tax Bill")
	s.Require().NotNil(byType["Council Tax Bill"].IssueDate)
	s.Nil(byType["Council Tax Bill"].ExpiryDate)
}

func (s *DirectoryPostgresSuite) TestGetDocument() {
	expiry := time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)
	clientID := s.seedIndividual("David Thompson", "david.thompson@email.com")
	documentID := s.seedDocument(clientID, compliance.SubjectIndividual, compliance.ClassIdentity, "EU National ID", nil, &expiry)

	doc, err := s.store.GetDocument(s.ctx, documentID)

	s.Require().NoError(err)
	s.Equal(documentID, doc.ID)
	s.Equal("David Thompson", doc.SubjectName)
}

func (s *DirectoryPostgresSuite) TestGetDocumentNotFound() {
	_, err := s.store.GetDocument(s.ctx, domain.NewDocumentID())

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *DirectoryPostgresSuite) TestGetContactIndividual() {
	clientID := s.seedIndividual("Emma Williams", "emma.williams@email.com")

	contact, err := s.store.GetContact(s.ctx, clientID)

	s.Require().NoError(err)
	s.Equal("Emma Williams", contact.Name)
	s.Equal("emma.williams@email.com", contact.Email)
	s.Empty(contact.Phone)
}

func (s *DirectoryPostgresSuite) TestGetContactBusinessUsesCompanyName() {
	clientID := s.seedBusiness("Tech Solutions Ltd", "09876543")

	contact, err := s.store.GetContact(s.ctx, clientID)

	s.Require().NoError(err)
	s.Equal("Tech Solutions Ltd", contact.Name)
	s.Equal("contact@09876543.example.com", contact.Email)
}

func (s *DirectoryPostgresSuite) TestGetContactNotFound() {
	_, err := s.store.GetContact(s.ctx, domain.NewClientID())

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *DirectoryPostgresSuite) TestFindBusinessByCompanyNumber() {
	clientID := s.seedBusiness("Green Energy Corp", "11223344")

	existing, err := s.store.FindBusinessByCompanyNumber(s.ctx, "11223344")

	s.Require().NoError(err)
	s.Require().NotNil(existing)
	s.Equal(clientID, existing.ID)
	s.Equal("Green Energy Corp", existing.CompanyName)

	missing, err := s.store.FindBusinessByCompanyNumber(s.ctx, "99999999")
	s.Require().NoError(err)
	s.Nil(missing)
}
