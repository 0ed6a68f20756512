// Package service composes the pure compliance rules with the Client
// Directory so transport stays thin. Status is always recomputed on read,
// never persisted, so it cannot go stale.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/compliance"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/compliance/metrics"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks DirectoryStore

// DirectoryStore is the read-side of the Client Directory collaborator.
type DirectoryStore interface {
	ListAllDocuments(ctx context.Context) ([]compliance.Document, error)
	GetClientDocuments(ctx context.Context, subjectID domain.ClientID) ([]compliance.Document, error)
}

// DocumentView is a document together with its classification at the
// request's reference time.
type DocumentView struct {
	compliance.Document
	compliance.Assessment
}

// Service serves dashboard queries over the document fleet.
type Service struct {
	directory DirectoryStore
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// New creates a compliance query service.
func New(directory DirectoryStore, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{directory: directory, metrics: m, logger: logger}
}

// ListDocuments returns the fleet filtered by f, each with its status.
func (s *Service) ListDocuments(ctx context.Context, f compliance.Filter) ([]DocumentView, error) {
	docs, asOf, err := s.fleet(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, f.Apply(docs, asOf), asOf), nil
}

// Summary returns fleet-wide counts per status. Counts always sum to the
// fleet size; malformed documents are counted as unknown and surfaced as a
// data-quality warning, never as a compliance pass.
func (s *Service) Summary(ctx context.Context) (compliance.CountsByStatus, error) {
	docs, asOf, err := s.fleet(ctx)
	if err != nil {
		return nil, err
	}

	counts := compliance.Summarize(docs, asOf)
	for status, n := range counts {
		s.metrics.SetStatusCount(status.String(), n)
	}
	if unknown := counts[compliance.StatusUnknown]; unknown > 0 {
		s.logger.WarnContext(ctx, "documents missing required dates",
			"request_id", requestcontext.RequestID(ctx),
			"count", unknown,
		)
	}
	return counts, nil
}

// ActionRequired returns the renewal queue: expired and expiring-soon
// documents in directory order.
func (s *Service) ActionRequired(ctx context.Context) ([]DocumentView, error) {
	docs, asOf, err := s.fleet(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, compliance.ActionRequired(docs, asOf), asOf), nil
}

// ClientDocuments returns one client's documents with their statuses.
func (s *Service) ClientDocuments(ctx context.Context, subjectID domain.ClientID) ([]DocumentView, error) {
	docs, err := s.directory.GetClientDocuments(ctx, subjectID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load client documents")
	}
	return s.views(ctx, docs, requestcontext.Now(ctx)), nil
}

func (s *Service) fleet(ctx context.Context) ([]compliance.Document, time.Time, error) {
	start := time.Now()
	docs, err := s.directory.ListAllDocuments(ctx)
	if err != nil {
		return nil, time.Time{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load document fleet")
	}
	s.metrics.ObserveListLatency(time.Since(start))
	return docs, requestcontext.Now(ctx), nil
}

func (s *Service) views(ctx context.Context, docs []compliance.Document, asOf time.Time) []DocumentView {
	views := make([]DocumentView, 0, len(docs))
	malformed := 0
	for _, doc := range docs {
		assessment := compliance.Classify(doc, asOf)
		if assessment.Status == compliance.StatusUnknown {
			malformed++
			s.logger.WarnContext(ctx, "document missing required date",
				"request_id", requestcontext.RequestID(ctx),
				"document_id", doc.ID.String(),
				"document_class", string(doc.Class),
			)
		}
		views = append(views, DocumentView{Document: doc, Assessment: assessment})
	}
	s.metrics.RecordMalformed(malformed)
	return views
}
