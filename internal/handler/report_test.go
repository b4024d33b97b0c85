// internal/handler/report_test.go
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AbuAli85/contract-management-backend/internal/middleware"
	"github.com/AbuAli85/contract-management-backend/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportBuilder struct {
	BuildReportFn func(ctx context.Context, userID uuid.UUID, email string) (*service.Report, error)
}

func (f *fakeReportBuilder) BuildReport(ctx context.Context, userID uuid.UUID, email string) (*service.Report, error) {
	return f.BuildReportFn(ctx, userID, email)
}

func TestCrossCompanyReportUnauthorized(t *testing.T) {
	h := NewReportHandler(&fakeReportBuilder{
		BuildReportFn: func(ctx context.Context, userID uuid.UUID, email string) (*service.Report, error) {
			t.Fatal("BuildReport must not be called without a session")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/company/cross-company-report", nil)
	rec := httptest.NewRecorder()
	h.CrossCompanyReport(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestCrossCompanyReportSuccess(t *testing.T) {
	userID := uuid.New()
	companyID := uuid.New()

	h := NewReportHandler(&fakeReportBuilder{
		BuildReportFn: func(ctx context.Context, uid uuid.UUID, email string) (*service.Report, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, "user@example.com", email)
			entry := service.CompanyWithStats{
				CompanyCandidate: service.CompanyCandidate{
					CompanyID: companyID,
					Name:      "Acme Trading",
					UserRole:  "owner",
					Source:    service.SourceMembership,
					IsPrimary: true,
				},
				Stats: service.CompanyStats{Employees: 4, ActiveContracts: 2},
			}
			return &service.Report{
				Companies: []service.CompanyWithStats{entry},
				Grouped:   map[string][]service.CompanyWithStats{"Standalone": {entry}},
				Summary:   service.Summary{TotalCompanies: 1, TotalEmployees: 4, TotalActiveContracts: 2},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/company/cross-company-report", nil)
	req = req.WithContext(middleware.ContextWithUser(req.Context(), userID, "user@example.com"))
	rec := httptest.NewRecorder()
	h.CrossCompanyReport(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success   bool                                  `json:"success"`
		Companies []service.CompanyWithStats            `json:"companies"`
		Grouped   map[string][]service.CompanyWithStats `json:"grouped"`
		Summary   service.Summary                       `json:"summary"`
		Error     string                                `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Companies, 1)
	assert.Equal(t, "Acme Trading", body.Companies[0].Name)
	assert.Equal(t, 4, body.Companies[0].Stats.Employees)
	assert.Len(t, body.Grouped["Standalone"], 1)
	assert.Equal(t, 1, body.Summary.TotalCompanies)
	assert.Empty(t, body.Error)
}

func TestCrossCompanyReportFailureKeepsShape(t *testing.T) {
	h := NewReportHandler(&fakeReportBuilder{
		BuildReportFn: func(ctx context.Context, userID uuid.UUID, email string) (*service.Report, error) {
			return nil, errors.New("resolver blew up")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/company/cross-company-report", nil)
	req = req.WithContext(middleware.ContextWithUser(req.Context(), uuid.New(), "user@example.com"))
	rec := httptest.NewRecorder()
	h.CrossCompanyReport(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Failure responses carry the same keys as success so clients never hit
	// a null where an array is expected.
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, "false", string(body["success"]))
	assert.JSONEq(t, "[]", string(body["companies"]))
	assert.JSONEq(t, "{}", string(body["grouped"]))
	assert.Contains(t, string(body["error"]), "failed to build cross-company report")
	// The internal error text must not leak to the client.
	assert.NotContains(t, rec.Body.String(), "resolver blew up")
}

func TestCrossCompanyReportZeroStateMessage(t *testing.T) {
	h := NewReportHandler(&fakeReportBuilder{
		BuildReportFn: func(ctx context.Context, userID uuid.UUID, email string) (*service.Report, error) {
			return &service.Report{
				Companies: []service.CompanyWithStats{},
				Grouped:   map[string][]service.CompanyWithStats{},
				Message:   "no companies configured for this user",
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/company/cross-company-report", nil)
	req = req.WithContext(middleware.ContextWithUser(req.Context(), uuid.New(), "user@example.com"))
	rec := httptest.NewRecorder()
	h.CrossCompanyReport(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success   bool                       `json:"success"`
		Companies []service.CompanyWithStats `json:"companies"`
		Message   string                     `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Companies)
	assert.Empty(t, body.Companies)
	assert.Equal(t, "no companies configured for this user", body.Message)
}
