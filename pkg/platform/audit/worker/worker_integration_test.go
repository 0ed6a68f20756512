//go:build integration

package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	id "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	audit "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit"
	auditpg "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit/store/postgres"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit/worker"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/testutil/containers"
)

type OutboxWorkerSuite struct {
	suite.Suite

	ctx      context.Context
	pg       *containers.PostgresContainer
	redpanda *containers.RedpandaContainer
	store    *auditpg.Store
}

func TestOutboxWorkerSuite(t *testing.T) {
	suite.Run(t, new(OutboxWorkerSuite))
}

func (s *OutboxWorkerSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.GetManager().GetPostgres(s.T())
	s.redpanda = containers.GetManager().GetRedpanda(s.T())
	s.store = auditpg.New(s.pg.DB)
}

func (s *OutboxWorkerSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx, "outbox", "audit_events"))
}

func (s *OutboxWorkerSuite) TestPublishesOutboxToKafka() {
	topic := fmt.Sprintf("audit-events-%d", time.Now().UnixNano())

	clientID := id.NewClientID()
	s.Require().NoError(s.store.Append(s.ctx, audit.Event{
		Timestamp: time.Now().UTC(),
		ClientID:  clientID,
		Subject:   "UK Passport",
		Action:    string(audit.EventReminderSent),
		Decision:  audit.DecisionSent,
	}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := worker.New(s.ctx, s.redpanda.Brokers, topic, s.store, logger,
		worker.WithPollInterval(100*time.Millisecond))
	s.Require().NoError(err)
	defer w.Close()

	runCtx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	go func() { done <- w.Run(runCtx) }()

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.redpanda.Brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetchCtx, fetchCancel := context.WithTimeout(s.ctx, 30*time.Second)
	defer fetchCancel()

	var record *kgo.Record
	for record == nil {
		fetches := consumer.PollFetches(fetchCtx)
		s.Require().NoError(fetchCtx.Err(), "timed out waiting for audit event")
		fetches.EachRecord(func(r *kgo.Record) {
			if record == nil {
				record = r
			}
		})
	}

	s.Equal(clientID.String(), string(record.Key), "partition key is the client aggregate")
	s.Require().Len(record.Headers, 1)
	s.Equal("event_type", record.Headers[0].Key)
	s.Equal(string(audit.EventReminderSent), string(record.Headers[0].Value))

	var payload map[string]any
	s.Require().NoError(json.Unmarshal(record.Value, &payload))
	s.Equal("compliance", payload["Category"])
	s.Equal("sent", payload["Decision"])

	// The published row must leave the backlog.
	s.Require().Eventually(func() bool {
		entries, err := s.store.FetchUnpublished(s.ctx, 10)
		return err == nil && len(entries) == 0
	}, 10*time.Second, 100*time.Millisecond)

	// Publishing also materializes the event for the activity feed.
	events, err := s.store.ListByClient(s.ctx, clientID)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(string(audit.EventReminderSent), events[0].Action)
	s.Equal(audit.CategoryCompliance, events[0].Category)

	cancel()
	err = <-done
	s.Require().True(errors.Is(err, context.Canceled))
}
