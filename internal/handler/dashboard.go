// internal/handler/dashboard.go
package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/AbuAli85/contract-management-backend/internal/middleware"
	"github.com/AbuAli85/contract-management-backend/internal/service"
)

type DashboardHandler struct {
	dashboards *service.DashboardService
}

func NewDashboardHandler(dashboards *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

type layoutResponse struct {
	Layout json.RawMessage `json:"layout"`
}

func (h *DashboardHandler) GetLayout(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	layout, err := h.dashboards.GetLayout(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, layoutResponse{Layout: layout})
}

func (h *DashboardHandler) SaveLayout(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body layoutResponse
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 128*1024))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Request body too large")
		return
	}
	defer r.Body.Close()
	if err := json.Unmarshal(raw, &body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.dashboards.SaveLayout(r.Context(), userID, body.Layout); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
