package audit_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	audit "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit"
	memory "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit/store/memory"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/requestcontext"
)

type failingStore struct{}

func (failingStore) Append(context.Context, audit.Event) error {
	return errors.New("store unavailable")
}

func TestEmitStampsMetadata(t *testing.T) {
	store := memory.NewInMemoryStore()
	publisher := audit.NewPublisher(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := requestcontext.WithRequestID(context.Background(), "req-42")

	clientID := id.NewClientID()
	publisher.Emit(ctx, audit.Event{
		ClientID: clientID,
		Subject:  "UK Passport",
		Action:   string(audit.EventReminderSent),
		Decision: audit.DecisionSent,
		Email:    "sarah.johnson@email.com",
	})

	events, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, "req-42", event.RequestID)
	assert.Equal(t, audit.CategoryCompliance, event.Category)
	assert.False(t, event.Timestamp.IsZero())
	assert.Equal(t, clientID, event.ClientID)
}

func TestEmitPreservesExplicitFields(t *testing.T) {
	store := memory.NewInMemoryStore()
	publisher := audit.NewPublisher(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := requestcontext.WithRequestID(context.Background(), "req-42")

	publisher.Emit(ctx, audit.Event{
		Category:  audit.CategoryOperations,
		Action:    string(audit.EventCompanyLookup),
		RequestID: "req-explicit",
	})

	events, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "req-explicit", events[0].RequestID)
	assert.Equal(t, audit.CategoryOperations, events[0].Category)
}

func TestEmitDerivesCategoryFromAction(t *testing.T) {
	store := memory.NewInMemoryStore()
	publisher := audit.NewPublisher(store, nil)

	publisher.Emit(context.Background(), audit.Event{Action: string(audit.EventCompanyLookup)})
	publisher.Emit(context.Background(), audit.Event{Action: "unrecognized_action"})

	events, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, audit.CategoryOperations, events[0].Category)
	assert.Equal(t, audit.CategoryCompliance, events[1].Category)
}

func TestEmitNilPublisherIsSafe(t *testing.T) {
	var publisher *audit.Publisher
	publisher.Emit(context.Background(), audit.Event{Action: string(audit.EventReminderSent)})
}

func TestEmitSwallowsStoreErrors(t *testing.T) {
	publisher := audit.NewPublisher(failingStore{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	publisher.Emit(context.Background(), audit.Event{Action: string(audit.EventReminderSent)})
}
