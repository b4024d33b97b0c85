// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/AbuAli85/contract-management-backend/internal/auth"
	"github.com/AbuAli85/contract-management-backend/internal/domain"
	"github.com/AbuAli85/contract-management-backend/internal/middleware"
	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/AbuAli85/contract-management-backend/internal/service"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type AuthHandler struct {
	users  *service.UserService
	tokens *auth.TokenManager
}

func NewAuthHandler(users *service.UserService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type LoginResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.users.Login(r.Context(), input)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) && !errors.Is(err, domain.ErrInvalidInput) {
			slog.ErrorContext(r.Context(), "login error", "error", err, "requestID", chimw.GetReqID(r.Context()))
		}
		respondWithDomainError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    output.Token,
		Path:     "/",
		MaxAge:   int(h.tokens.SessionTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondWithJSON(w, http.StatusOK, LoginResponse{User: output.User, Token: output.Token})
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

type ProfileHandler struct {
	users *service.UserService
}

func NewProfileHandler(users *service.UserService) *ProfileHandler {
	return &ProfileHandler{users: users}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.users.Profile(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input service.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	profile, err := h.users.SaveProfile(r.Context(), userID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}
