// internal/handler/promoter.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AbuAli85/contract-management-backend/internal/service"
)

type PromoterHandler struct {
	promoters *service.PromoterService
}

func NewPromoterHandler(promoters *service.PromoterService) *PromoterHandler {
	return &PromoterHandler{promoters: promoters}
}

func (h *PromoterHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	promoters, total, err := h.promoters.List(r.Context(), offset, limit)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse{Items: promoters, Total: total})
}

func (h *PromoterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid promoter id")
		return
	}
	promoter, err := h.promoters.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, promoter)
}

func (h *PromoterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.PromoterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	promoter, err := h.promoters.Create(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, promoter)
}

func (h *PromoterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid promoter id")
		return
	}

	var input service.PromoterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	promoter, err := h.promoters.Update(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, promoter)
}
