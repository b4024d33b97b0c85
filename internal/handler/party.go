// internal/handler/party.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AbuAli85/contract-management-backend/internal/service"
)

type PartyHandler struct {
	parties *service.PartyService
}

func NewPartyHandler(parties *service.PartyService) *PartyHandler {
	return &PartyHandler{parties: parties}
}

func (h *PartyHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	parties, total, err := h.parties.List(r.Context(), offset, limit)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse{Items: parties, Total: total})
}

func (h *PartyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid party id")
		return
	}
	party, err := h.parties.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, party)
}

func (h *PartyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.PartyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	party, err := h.parties.Create(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, party)
}

func (h *PartyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid party id")
		return
	}

	var input service.PartyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	party, err := h.parties.Update(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, party)
}
