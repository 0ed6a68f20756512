// Package worker relays audit events from the Postgres outbox to Kafka.
//
// The outbox pattern guarantees an event is published if and only if the
// business transaction that produced it committed. The worker polls for
// unpublished rows, produces them, and stamps published_at on success.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	postgres "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit/store/postgres"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultBatchSize    = 100
)

// Worker polls the outbox and publishes entries to a Kafka topic.
type Worker struct {
	store        *postgres.Store
	client       *kgo.Client
	topic        string
	logger       *slog.Logger
	pollInterval time.Duration
	batchSize    int
}

type Option func(*Worker)

func WithPollInterval(d time.Duration) Option {
	return func(w *Worker) { w.pollInterval = d }
}

func WithBatchSize(n int) Option {
	return func(w *Worker) { w.batchSize = n }
}

// New connects to Kafka and ensures the audit topic exists. The returned
// worker owns the client; call Close when done.
func New(ctx context.Context, brokers []string, topic string, store *postgres.Store, logger *slog.Logger, opts ...Option) (*Worker, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, err
	}

	if err := ensureTopic(ctx, client, topic); err != nil {
		client.Close()
		return nil, err
	}

	w := &Worker{
		store:        store,
		client:       client,
		topic:        topic,
		logger:       logger,
		pollInterval: defaultPollInterval,
		batchSize:    defaultBatchSize,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// ensureTopic creates the audit topic if the cluster does not already
// have it. Already-exists responses are not errors.
func ensureTopic(ctx context.Context, client *kgo.Client, topic string) error {
	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopic(ctx, 1, -1, nil, topic)
	if err != nil {
		return err
	}
	if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
		return resp.Err
	}
	return nil
}

// Run polls until the context is cancelled. It returns ctx.Err() on
// shutdown; transient publish failures are logged and retried on the
// next tick, never fatal.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.drain(ctx); err != nil {
				w.logger.ErrorContext(ctx, "outbox drain failed", "error", err)
			}
		}
	}
}

// drain publishes one batch of unpublished entries.
func (w *Worker) drain(ctx context.Context) error {
	entries, err := w.store.FetchUnpublished(ctx, w.batchSize)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		record := &kgo.Record{
			Topic: w.topic,
			Key:   []byte(entry.AggregateID),
			Value: entry.Payload,
			Headers: []kgo.RecordHeader{
				{Key: "event_type", Value: []byte(entry.EventType)},
			},
		}
		// Synchronous produce keeps outbox ordering per aggregate and
		// makes MarkPublished safe to call immediately after.
		if err := w.client.ProduceSync(ctx, record).FirstErr(); err != nil {
			return err
		}
		// Materialize before stamping published_at: a failure here retries
		// the whole entry next tick, and both writes are idempotent.
		if err := w.store.Materialize(ctx, entry); err != nil {
			return err
		}
		if err := w.store.MarkPublished(ctx, entry.ID); err != nil {
			return err
		}
		w.logger.DebugContext(ctx, "audit event published",
			"event_type", entry.EventType,
			"aggregate_id", entry.AggregateID,
		)
	}
	return nil
}

func (w *Worker) Close() {
	w.client.Close()
}
