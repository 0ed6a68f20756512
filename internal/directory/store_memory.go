package directory

import (
	"context"
	"sync"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/compliance"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
)

// InMemoryStore holds the directory in memory. Used in development and
// tests; insertion order is preserved so listings are deterministic.
type InMemoryStore struct {
	mu         sync.RWMutex
	documents  []compliance.Document
	businesses []BusinessClient
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = nil
	s.businesses = nil
}

// SeedDocuments appends documents to the directory.
func (s *InMemoryStore) SeedDocuments(docs ...compliance.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, docs...)
}

// SeedBusinesses appends business clients to the directory.
func (s *InMemoryStore) SeedBusinesses(businesses ...BusinessClient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businesses = append(s.businesses, businesses...)
}

func (s *InMemoryStore) ListAllDocuments(_ context.Context) ([]compliance.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]compliance.Document{}, s.documents...), nil
}

func (s *InMemoryStore) GetClientDocuments(_ context.Context, clientID domain.ClientID) ([]compliance.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []compliance.Document
	for _, doc := range s.documents {
		if doc.SubjectID == clientID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (s *InMemoryStore) GetDocument(_ context.Context, documentID domain.DocumentID) (compliance.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.documents {
		if doc.ID == documentID {
			return doc, nil
		}
	}
	return compliance.Document{}, dErrors.New(dErrors.CodeNotFound, "document not found")
}

// GetContact derives contact details from the client's document rows,
// which carry the joined subject fields in memory mode.
func (s *InMemoryStore) GetContact(_ context.Context, clientID domain.ClientID) (Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.documents {
		if doc.SubjectID == clientID {
			return Contact{Name: doc.SubjectName, Email: doc.Email, Phone: doc.Phone}, nil
		}
	}
	return Contact{}, dErrors.New(dErrors.CodeNotFound, "client not found")
}

func (s *InMemoryStore) FindBusinessByCompanyNumber(_ context.Context, companyNumber string) (*companyregistry.ExistingClient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, business := range s.businesses {
		if business.CompanyNumber == companyNumber {
			return &companyregistry.ExistingClient{
				ID:            business.ID,
				CompanyName:   business.CompanyName,
				CompanyNumber: business.CompanyNumber,
			}, nil
		}
	}
	return nil, nil
}
