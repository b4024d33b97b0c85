// internal/handler/company.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AbuAli85/contract-management-backend/internal/middleware"
	"github.com/AbuAli85/contract-management-backend/internal/service"
)

type CompanyHandler struct {
	companies *service.CompanyService
}

func NewCompanyHandler(companies *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	companies, total, err := h.companies.List(r.Context(), offset, limit)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse{Items: companies, Total: total})
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}
	company, err := h.companies.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input service.CompanyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	company, err := h.companies.Create(r.Context(), userID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, company)
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}

	var input service.CompanyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	company, err := h.companies.Update(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}
	if err := h.companies.Deactivate(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
