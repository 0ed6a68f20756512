// Package service implements the company lookup used during business
// client onboarding: duplicate check against the directory first, then the
// external register, with a cache and a circuit breaker in between.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry/metrics"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/circuit"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/sentinel"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Directory,Register,Cache

// Directory answers whether a company number is already onboarded.
type Directory interface {
	// FindBusinessByCompanyNumber returns nil when no client holds the
	// company number.
	FindBusinessByCompanyNumber(ctx context.Context, companyNumber string) (*companyregistry.ExistingClient, error)
}

// Register is the external company register.
type Register interface {
	CompanyProfile(ctx context.Context, companyNumber string) (companyregistry.Company, error)
	Officers(ctx context.Context, companyNumber string) ([]companyregistry.Officer, error)
}

// Cache stores prior register lookups. Get returns (nil, nil) on a miss.
type Cache interface {
	Get(ctx context.Context, companyNumber string) (*companyregistry.LookupResult, error)
	Set(ctx context.Context, companyNumber string, result companyregistry.LookupResult) error
}

// Service performs company lookups.
type Service struct {
	directory Directory
	register  Register
	cache     Cache
	breaker   *circuit.Breaker
	auditor   *audit.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func New(directory Directory, register Register, cache Cache, breaker *circuit.Breaker, auditor *audit.Publisher, m *metrics.Metrics, logger *slog.Logger) *Service {
	if breaker == nil {
		breaker = circuit.New("company-register")
	}
	return &Service{
		directory: directory,
		register:  register,
		cache:     cache,
		breaker:   breaker,
		auditor:   auditor,
		metrics:   m,
		logger:    logger,
	}
}

// Lookup resolves a company number. The directory duplicate check always
// runs fresh; only register data is cached. Company numbers are stored
// uppercase, so input is normalized before any comparison.
func (s *Service) Lookup(ctx context.Context, companyNumber string) (companyregistry.LookupResult, error) {
	number := strings.ToUpper(strings.TrimSpace(companyNumber))
	if number == "" {
		return companyregistry.LookupResult{}, dErrors.New(dErrors.CodeInvalidInput, "company number is required")
	}

	existing, err := s.directory.FindBusinessByCompanyNumber(ctx, number)
	if err != nil {
		return companyregistry.LookupResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "check for existing client")
	}
	if existing != nil {
		s.metrics.RecordLookup("already_onboarded")
		s.emit(ctx, number, audit.DecisionConflict, "")
		return companyregistry.LookupResult{Exists: true, ExistingClient: existing}, nil
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, number)
		if err != nil {
			s.logger.WarnContext(ctx, "lookup cache read failed", "error", err)
		}
		if cached != nil {
			s.metrics.RecordCache("hit")
			s.metrics.RecordLookup("found")
			s.emit(ctx, number, audit.DecisionFound, "cache")
			return *cached, nil
		}
		s.metrics.RecordCache("miss")
	}

	result, err := s.fetch(ctx, number)
	if err != nil {
		return companyregistry.LookupResult{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, number, result); err != nil {
			s.logger.WarnContext(ctx, "lookup cache write failed", "error", err)
		}
	}
	s.metrics.RecordLookup("found")
	s.emit(ctx, number, audit.DecisionFound, "")
	return result, nil
}

// fetch queries the external register and reports outcomes to the breaker.
// A 404 is a definitive answer from a healthy register, never a breaker
// failure.
func (s *Service) fetch(ctx context.Context, number string) (companyregistry.LookupResult, error) {
	if !s.breaker.Allow() {
		s.metrics.RecordLookup("short_circuited")
		return companyregistry.LookupResult{}, dErrors.New(dErrors.CodeUnavailable, "company register temporarily unavailable")
	}

	start := time.Now()
	company, err := s.register.CompanyProfile(ctx, number)
	s.metrics.ObserveRegistryLatency(time.Since(start))

	if errors.Is(err, sentinel.ErrNotFound) {
		s.recordSuccess(ctx)
		s.metrics.RecordLookup("not_found")
		s.emit(ctx, number, audit.DecisionNotFound, "")
		return companyregistry.LookupResult{}, dErrors.New(dErrors.CodeNotFound, "company not found")
	}
	if err != nil {
		s.recordFailure(ctx, err)
		s.metrics.RecordLookup("error")
		if s.breaker.IsOpen() {
			return companyregistry.LookupResult{}, dErrors.New(dErrors.CodeUnavailable, "company register temporarily unavailable")
		}
		return companyregistry.LookupResult{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "company register lookup failed")
	}
	s.recordSuccess(ctx)

	officers, err := s.register.Officers(ctx, number)
	if err != nil {
		// Officers are enrichment; onboarding proceeds without them.
		s.logger.WarnContext(ctx, "could not fetch officers",
			"company_number", number,
			"error", err,
		)
		officers = nil
	}

	return companyregistry.LookupResult{Company: &company, Officers: officers}, nil
}

func (s *Service) recordFailure(ctx context.Context, err error) {
	_, change := s.breaker.RecordFailure()
	if change.Opened {
		s.metrics.SetBreakerOpen(true)
		s.logger.WarnContext(ctx, "register circuit opened",
			"breaker", s.breaker.Name(),
			"error", err,
		)
	}
}

func (s *Service) recordSuccess(ctx context.Context) {
	_, change := s.breaker.RecordSuccess()
	if change.Closed {
		s.metrics.SetBreakerOpen(false)
		s.logger.InfoContext(ctx, "register circuit closed", "breaker", s.breaker.Name())
	}
}

func (s *Service) emit(ctx context.Context, number, decision, reason string) {
	s.auditor.Emit(ctx, audit.Event{
		Subject:   number,
		Action:    string(audit.EventCompanyLookup),
		Decision:  decision,
		Reason:    reason,
		RequestID: requestcontext.RequestID(ctx),
	})
}
