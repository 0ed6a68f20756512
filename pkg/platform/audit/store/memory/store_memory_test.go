package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	audit "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit"
	memory "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit/store/memory"
)

func TestListByClientNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := memory.NewInMemoryStore()
	clientID := id.NewClientID()
	other := id.NewClientID()

	require.NoError(t, store.Append(ctx, audit.Event{ClientID: clientID, Decision: audit.DecisionSent}))
	require.NoError(t, store.Append(ctx, audit.Event{ClientID: other, Decision: audit.DecisionSent}))
	require.NoError(t, store.Append(ctx, audit.Event{ClientID: clientID, Decision: audit.DecisionFailed}))

	events, err := store.ListByClient(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, audit.DecisionFailed, events[0].Decision)
	assert.Equal(t, audit.DecisionSent, events[1].Decision)
}

func TestListRecentHonorsLimit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewInMemoryStore()

	for range 5 {
		require.NoError(t, store.Append(ctx, audit.Event{Decision: audit.DecisionSent}))
	}
	require.NoError(t, store.Append(ctx, audit.Event{Decision: audit.DecisionFailed}))

	events, err := store.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, audit.DecisionFailed, events[0].Decision)
}
