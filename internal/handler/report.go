// internal/handler/report.go
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/AbuAli85/contract-management-backend/internal/middleware"
	"github.com/AbuAli85/contract-management-backend/internal/service"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// ReportBuilder is what the handler needs from the report service.
type ReportBuilder interface {
	BuildReport(ctx context.Context, userID uuid.UUID, email string) (*service.Report, error)
}

type ReportHandler struct {
	reports ReportBuilder
}

func NewReportHandler(reports ReportBuilder) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// reportResponse keeps the same shape on success and failure so clients can
// destructure without null checks; only the flag and error text differ.
type reportResponse struct {
	Success   bool                                  `json:"success"`
	Companies []service.CompanyWithStats            `json:"companies"`
	Grouped   map[string][]service.CompanyWithStats `json:"grouped"`
	Summary   service.Summary                       `json:"summary"`
	Message   string                                `json:"message,omitempty"`
	Error     string                                `json:"error,omitempty"`
}

func (h *ReportHandler) CrossCompanyReport(w http.ResponseWriter, r *http.Request) {
	userID, email, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	report, err := h.reports.BuildReport(r.Context(), userID, email)
	if err != nil {
		slog.ErrorContext(r.Context(), "cross-company report failed",
			"error", err,
			"user_id", userID,
			"requestID", chimw.GetReqID(r.Context()),
		)
		respondWithJSON(w, http.StatusInternalServerError, reportResponse{
			Success:   false,
			Companies: []service.CompanyWithStats{},
			Grouped:   map[string][]service.CompanyWithStats{},
			Error:     "failed to build cross-company report",
		})
		return
	}

	respondWithJSON(w, http.StatusOK, reportResponse{
		Success:   true,
		Companies: report.Companies,
		Grouped:   report.Grouped,
		Summary:   report.Summary,
		Message:   report.Message,
	})
}
