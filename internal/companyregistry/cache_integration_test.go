//go:build integration

package companyregistry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite

	ctx   context.Context
	redis *containers.RedisContainer
	cache *companyregistry.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.ctx = context.Background()
	s.redis = containers.GetManager().GetRedis(s.T())
	s.cache = companyregistry.NewRedisCache(s.redis.Client, time.Hour)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
}

func (s *RedisCacheSuite) sampleResult() companyregistry.LookupResult {
	return companyregistry.LookupResult{
		Company: &companyregistry.Company{
			CompanyNumber:           "09876543",
			CompanyName:             "TECH SOLUTIONS LTD",
			CompanyType:             "ltd",
			CompanyStatus:           "active",
			IncorporationDate:       "2015-03-12",
			RegisteredOfficeAddress: "1 Example Street, London, EC1A 1AA, England",
		},
		Officers: []companyregistry.Officer{
			{OfficerName: "WILSON, James", OfficerRole: "director", IsPrimaryContact: true},
		},
	}
}

func (s *RedisCacheSuite) TestSetThenGet() {
	result := s.sampleResult()
	s.Require().NoError(s.cache.Set(s.ctx, "09876543", result))

	cached, err := s.cache.Get(s.ctx, "09876543")

	s.Require().NoError(err)
	s.Require().NotNil(cached)
	s.Require().NotNil(cached.Company)
	s.Equal("TECH SOLUTIONS LTD", cached.Company.CompanyName)
	s.Require().Len(cached.Officers, 1)
	s.True(cached.Officers[0].IsPrimaryContact)
}

func (s *RedisCacheSuite) TestGetMiss() {
	cached, err := s.cache.Get(s.ctx, "00000000")

	s.Require().NoError(err)
	s.Nil(cached)
}

func (s *RedisCacheSuite) TestCorruptEntryDegradesToMiss() {
	s.Require().NoError(s.redis.Client.Set(s.ctx, "registry:company:09876543", "{not json", time.Hour).Err())

	cached, err := s.cache.Get(s.ctx, "09876543")

	s.Require().NoError(err)
	s.Nil(cached)
}

func (s *RedisCacheSuite) TestEntriesExpire() {
	shortLived := companyregistry.NewRedisCache(s.redis.Client, 100*time.Millisecond)
	s.Require().NoError(shortLived.Set(s.ctx, "09876543", s.sampleResult()))

	s.Require().Eventually(func() bool {
		cached, err := shortLived.Get(s.ctx, "09876543")
		return err == nil && cached == nil
	}, 2*time.Second, 50*time.Millisecond)
}
