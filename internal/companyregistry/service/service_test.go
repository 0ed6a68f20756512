package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry/service/mocks"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit"
	auditmemory "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit/store/memory"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/circuit"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/sentinel"
)

type LookupSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *LookupSuite) SetupSuite() {
	s.ctx = context.Background()
}

func TestLookupSuite(t *testing.T) {
	suite.Run(t, new(LookupSuite))
}

type fixture struct {
	service    *Service
	directory  *mocks.MockDirectory
	register   *mocks.MockRegister
	cache      *mocks.MockCache
	breaker    *circuit.Breaker
	auditStore *auditmemory.InMemoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	directory := mocks.NewMockDirectory(ctrl)
	register := mocks.NewMockRegister(ctrl)
	cache := mocks.NewMockCache(ctrl)
	breaker := circuit.New("company-register", circuit.WithFailureThreshold(2))
	auditStore := auditmemory.NewInMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		service:    New(directory, register, cache, breaker, audit.NewPublisher(auditStore, logger), nil, logger),
		directory:  directory,
		register:   register,
		cache:      cache,
		breaker:    breaker,
		auditStore: auditStore,
	}
}

func techInnovations() companyregistry.Company {
	return companyregistry.Company{
		CompanyNumber:           "12345678",
		CompanyName:             "TECH INNOVATIONS LTD",
		CompanyType:             "ltd",
		CompanyStatus:           "active",
		IncorporationDate:       "2015-03-12",
		RegisteredOfficeAddress: "1 Example Street, London, EC1A 1AA, England",
	}
}

func (s *LookupSuite) TestLookup_NormalizesCompanyNumber() {
	f := newFixture(s.T())

	f.directory.EXPECT().FindBusinessByCompanyNumber(gomock.Any(), "AB123456").Return(nil, nil)
	f.cache.EXPECT().Get(gomock.Any(), "AB123456").Return(nil, nil)
	f.register.EXPECT().CompanyProfile(gomock.Any(), "AB123456").Return(techInnovations(), nil)
	f.register.EXPECT().Officers(gomock.Any(), "AB123456").Return(nil, nil)
	f.cache.EXPECT().Set(gomock.Any(), "AB123456", gomock.Any()).Return(nil)

	result, err := f.service.Lookup(s.ctx, "  ab123456 ")
	s.Require().NoError(err)
	s.False(result.Exists)
	s.Require().NotNil(result.Company)
	s.Equal("TECH INNOVATIONS LTD", result.Company.CompanyName)
}

func (s *LookupSuite) TestLookup_EmptyNumber() {
	f := newFixture(s.T())

	_, err := f.service.Lookup(s.ctx, "   ")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *LookupSuite) TestLookup_AlreadyOnboarded() {
	f := newFixture(s.T())
	existing := &companyregistry.ExistingClient{
		ID:            domain.NewClientID(),
		CompanyName:   "TECH INNOVATIONS LTD",
		CompanyNumber: "12345678",
	}

	f.directory.EXPECT().FindBusinessByCompanyNumber(gomock.Any(), "12345678").Return(existing, nil)
	// The register is never contacted for a duplicate.

	result, err := f.service.Lookup(s.ctx, "12345678")
	s.Require().NoError(err)
	s.True(result.Exists)
	s.Equal(existing, result.ExistingClient)
	s.Nil(result.Company)

	events, err := f.auditStore.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(audit.DecisionConflict, events[0].Decision)
}

func (s *LookupSuite) TestLookup_CacheHitSkipsRegister() {
	f := newFixture(s.T())
	cached := &companyregistry.LookupResult{Company: &companyregistry.Company{CompanyName: "CACHED LTD"}}

	f.directory.EXPECT().FindBusinessByCompanyNumber(gomock.Any(), "12345678").Return(nil, nil)
	f.cache.EXPECT().Get(gomock.Any(), "12345678").Return(cached, nil)

	result, err := f.service.Lookup(s.ctx, "12345678")
	s.Require().NoError(err)
	s.Equal("CACHED LTD", result.Company.CompanyName)
}

func (s *LookupSuite) TestLookup_NotFound() {
	f := newFixture(s.T())

	f.directory.EXPECT().FindBusinessByCompanyNumber(gomock.Any(), "00000000").Return(nil, nil)
	f.cache.EXPECT().Get(gomock.Any(), "00000000").Return(nil, nil)
	f.register.EXPECT().CompanyProfile(gomock.Any(), "00000000").
		Return(companyregistry.Company{}, sentinel.ErrNotFound)

	_, err := f.service.Lookup(s.ctx, "00000000")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	// A definitive 404 leaves the breaker closed.
	s.False(f.breaker.IsOpen())
}

func (s *LookupSuite) TestLookup_OfficerFailureIsNotFatal() {
	f := newFixture(s.T())

	f.directory.EXPECT().FindBusinessByCompanyNumber(gomock.Any(), "12345678").Return(nil, nil)
	f.cache.EXPECT().Get(gomock.Any(), "12345678").Return(nil, nil)
	f.register.EXPECT().CompanyProfile(gomock.Any(), "12345678").Return(techInnovations(), nil)
	f.register.EXPECT().Officers(gomock.Any(), "12345678").
		Return(nil, dErrors.New(dErrors.CodeUnavailable, "officers endpoint down"))
	f.cache.EXPECT().Set(gomock.Any(), "12345678", gomock.Any()).Return(nil)

	result, err := f.service.Lookup(s.ctx, "12345678")
	s.Require().NoError(err)
	s.NotNil(result.Company)
	s.Empty(result.Officers)
}

func (s *LookupSuite) TestLookup_RegisterOutageOpensBreaker() {
	f := newFixture(s.T())
	outage := dErrors.New(dErrors.CodeUnavailable, "registry unreachable")

	f.directory.EXPECT().FindBusinessByCompanyNumber(gomock.Any(), "12345678").Return(nil, nil).Times(2)
	f.cache.EXPECT().Get(gomock.Any(), "12345678").Return(nil, nil).Times(2)
	f.register.EXPECT().CompanyProfile(gomock.Any(), "12345678").
		Return(companyregistry.Company{}, outage).Times(2)

	_, err := f.service.Lookup(s.ctx, "12345678")
	s.Require().Error(err)
	s.False(f.breaker.IsOpen())

	_, err = f.service.Lookup(s.ctx, "12345678")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	s.True(f.breaker.IsOpen())
}

func (s *LookupSuite) TestLookup_OpenBreakerShortCircuits() {
	f := newFixture(s.T())
	outage := dErrors.New(dErrors.CodeUnavailable, "registry unreachable")

	f.directory.EXPECT().FindBusinessByCompanyNumber(gomock.Any(), "12345678").Return(nil, nil).Times(5)
	f.cache.EXPECT().Get(gomock.Any(), "12345678").Return(nil, nil).Times(5)
	// Exactly two upstream calls open the circuit; the controller fails
	// the test if a short-circuited lookup dials the register again.
	f.register.EXPECT().CompanyProfile(gomock.Any(), "12345678").
		Return(companyregistry.Company{}, outage).Times(2)

	for range 2 {
		_, err := f.service.Lookup(s.ctx, "12345678")
		s.Require().Error(err)
	}
	s.Require().True(f.breaker.IsOpen())

	for range 3 {
		_, err := f.service.Lookup(s.ctx, "12345678")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	}
}

func (s *LookupSuite) TestLookup_CacheErrorDegradesToMiss() {
	f := newFixture(s.T())

	f.directory.EXPECT().FindBusinessByCompanyNumber(gomock.Any(), "12345678").Return(nil, nil)
	f.cache.EXPECT().Get(gomock.Any(), "12345678").
		Return(nil, dErrors.New(dErrors.CodeUnavailable, "redis down"))
	f.register.EXPECT().CompanyProfile(gomock.Any(), "12345678").Return(techInnovations(), nil)
	f.register.EXPECT().Officers(gomock.Any(), "12345678").Return(nil, nil)
	f.cache.EXPECT().Set(gomock.Any(), "12345678", gomock.Any()).Return(nil)

	result, err := f.service.Lookup(s.ctx, "12345678")
	s.Require().NoError(err)
	s.NotNil(result.Company)
}
