package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/compliance"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
)

func seededStore() *InMemoryStore {
	store := NewInMemoryStore()
	store.SeedDocuments(FixtureDocuments()...)
	store.SeedBusinesses(FixtureBusinesses()...)
	return store
}

func TestInMemoryStore_ListAllDocuments(t *testing.T) {
	store := seededStore()

	docs, err := store.ListAllDocuments(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, len(FixtureDocuments()))

	// Listing returns a copy; mutating it must not affect the store.
	docs[0].SubjectName = "mutated"
	again, err := store.ListAllDocuments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", again[0].SubjectName)
}

func TestInMemoryStore_GetClientDocuments(t *testing.T) {
	store := seededStore()

	// Sarah Johnson holds a passport and a proof of address.
	docs, err := store.GetClientDocuments(context.Background(), fixtureClientID(1))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, compliance.ClassIdentity, docs[0].Class)
	assert.Equal(t, compliance.ClassProofOfAddress, docs[1].Class)

	none, err := store.GetClientDocuments(context.Background(), domain.NewClientID())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInMemoryStore_GetDocument(t *testing.T) {
	store := seededStore()

	doc, err := store.GetDocument(context.Background(), fixtureDocumentID(2))
	require.NoError(t, err)
	assert.Equal(t, "Michael Chen", doc.SubjectName)
	assert.Equal(t, "UK Driving Licence", doc.Type)

	_, err = store.GetDocument(context.Background(), domain.NewDocumentID())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestInMemoryStore_GetContact(t *testing.T) {
	store := seededStore()

	contact, err := store.GetContact(context.Background(), fixtureClientID(1))
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", contact.Name)
	assert.Equal(t, "sarah.johnson@email.com", contact.Email)
	assert.Equal(t, "07700 900123", contact.Phone)

	_, err = store.GetContact(context.Background(), domain.NewClientID())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestInMemoryStore_FindBusinessByCompanyNumber(t *testing.T) {
	store := seededStore()

	existing, err := store.FindBusinessByCompanyNumber(context.Background(), "09876543")
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, "Tech Solutions Ltd", existing.CompanyName)

	missing, err := store.FindBusinessByCompanyNumber(context.Background(), "99999999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
