// Package directory is the client directory: the system of record for
// clients and their KYC documents. Compliance classification reads from
// here; it never writes, so document status is always derived fresh.
package directory

import (
	"context"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/compliance"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
)

// Store is the directory read surface consumed by the compliance,
// reminder, and registry modules.
type Store interface {
	ListAllDocuments(ctx context.Context) ([]compliance.Document, error)
	GetClientDocuments(ctx context.Context, clientID domain.ClientID) ([]compliance.Document, error)
	// GetDocument returns the document or a not-found domain error.
	GetDocument(ctx context.Context, documentID domain.DocumentID) (compliance.Document, error)
	// GetContact returns the client's contact details or a not-found
	// domain error.
	GetContact(ctx context.Context, clientID domain.ClientID) (Contact, error)
	// FindBusinessByCompanyNumber returns nil when no business client
	// holds the company number. Numbers are stored uppercase.
	FindBusinessByCompanyNumber(ctx context.Context, companyNumber string) (*companyregistry.ExistingClient, error)
}

// Contact is who reminder emails address. For business clients the name
// is the company name.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// BusinessClient is a business client entry used for duplicate detection
// during onboarding.
type BusinessClient struct {
	ID            domain.ClientID
	CompanyName   string
	CompanyNumber string
}
