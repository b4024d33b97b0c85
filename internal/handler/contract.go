// internal/handler/contract.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AbuAli85/contract-management-backend/internal/service"
)

type ContractHandler struct {
	contracts *service.ContractService
}

func NewContractHandler(contracts *service.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	contracts, total, err := h.contracts.List(r.Context(), offset, limit)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse{Items: contracts, Total: total})
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}
	contract, err := h.contracts.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.ContractInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	contract, err := h.contracts.Create(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, contract)
}

func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}

	var input service.ContractInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	contract, err := h.contracts.Update(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, contract)
}
