package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry/handler/mocks"
	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
)

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	New(mockService, logger).Register(r)
	return r, mockService
}

func postLookup(t *testing.T, router chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/registry/company-lookup", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleLookup_Found(t *testing.T) {
	router, mockService := newTestRouter(t)

	mockService.EXPECT().Lookup(gomock.Any(), "12345678").Return(companyregistry.LookupResult{
		Company: &companyregistry.Company{
			CompanyNumber: "12345678",
			CompanyName:   "TECH INNOVATIONS LTD",
		},
		Officers: []companyregistry.Officer{
			{OfficerName: "SMITH, Jane", OfficerRole: "director", IsPrimaryContact: true},
		},
	}, nil)

	rec := postLookup(t, router, `{"company_number": "12345678"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp companyregistry.LookupResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Exists)
	require.NotNil(t, resp.Company)
	assert.Equal(t, "TECH INNOVATIONS LTD", resp.Company.CompanyName)
	require.Len(t, resp.Officers, 1)
	assert.True(t, resp.Officers[0].IsPrimaryContact)
}

func TestHandleLookup_Duplicate(t *testing.T) {
	router, mockService := newTestRouter(t)

	mockService.EXPECT().Lookup(gomock.Any(), "12345678").Return(companyregistry.LookupResult{
		Exists: true,
		ExistingClient: &companyregistry.ExistingClient{
			CompanyName:   "TECH INNOVATIONS LTD",
			CompanyNumber: "12345678",
		},
	}, nil)

	rec := postLookup(t, router, `{"company_number": "12345678"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["exists"])
	assert.NotContains(t, resp, "company")
}

func TestHandleLookup_NotFound(t *testing.T) {
	router, mockService := newTestRouter(t)

	mockService.EXPECT().Lookup(gomock.Any(), "00000000").
		Return(companyregistry.LookupResult{}, dErrors.New(dErrors.CodeNotFound, "company not found"))

	rec := postLookup(t, router, `{"company_number": "00000000"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleLookup_MalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := postLookup(t, router, `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLookup_RegisterDown(t *testing.T) {
	router, mockService := newTestRouter(t)

	mockService.EXPECT().Lookup(gomock.Any(), "12345678").
		Return(companyregistry.LookupResult{}, dErrors.New(dErrors.CodeUnavailable, "company register temporarily unavailable"))

	rec := postLookup(t, router, `{"company_number": "12345678"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
