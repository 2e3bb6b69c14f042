package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"flights-service/internal/domain/entity"
	"flights-service/internal/usecase"
	"flights-service/pkg/metrics"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	service *usecase.AuthService
	metrics *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *usecase.AuthService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{service: svc, metrics: m}
}

// HandleRegister handles POST /register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req entity.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, detailResponse("invalid request body"))
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameRequired),
			errors.Is(err, usecase.ErrPasswordRequired),
			errors.Is(err, usecase.ErrEmailDomain),
			errors.Is(err, usecase.ErrUsernameTaken),
			errors.Is(err, usecase.ErrEmailTaken):
			writeJSON(w, http.StatusBadRequest, detailResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, detailResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleLogin handles POST /login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req entity.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, detailResponse("invalid request body"))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials),
			errors.Is(err, usecase.ErrCodeRequired),
			errors.Is(err, usecase.ErrInvalidCode):
			h.metrics.AuthFailures.Inc()
			writeJSON(w, http.StatusUnauthorized, detailResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, detailResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
