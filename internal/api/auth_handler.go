package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/softsales/api/internal/entity"
)

const minPasswordLen = 8

type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Register creates an account
// @Summary Register
// @Tags auth
// @Accept json
// @Success 201
// @Failure 400 {object} ErrorResponse "Invalid credentials or login taken"
// @Failure 500 {object} ErrorResponse "Failed to register"
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	if req.Login == "" || len(req.Password) < minPasswordLen {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "Login is required and password must be at least 8 characters")
		return
	}

	role := req.Role
	if role == "" {
		role = entity.RoleUser
	}

	err = h.auth.Register(ctx, req.Login, req.Password, role)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Login is already taken or role is unknown")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to register")

		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Login exchanges credentials for a token pair
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} TokenPairResponse
// @Failure 401 {object} ErrorResponse "Invalid login or password"
// @Failure 500 {object} ErrorResponse "Failed to login"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	pair, err := h.auth.Login(ctx, req.Login, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrUnauthenticated) {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Invalid login or password")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to login")

		return
	}

	SendJSON(ctx, w, http.StatusOK, TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Refresh rotates a refresh token
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} TokenPairResponse
// @Failure 401 {object} ErrorResponse "Invalid or expired refresh token"
// @Failure 500 {object} ErrorResponse "Failed to refresh"
// @Router /auth/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RefreshRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	pair, err := h.auth.Refresh(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, entity.ErrUnauthenticated) {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Invalid or expired refresh token")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to refresh")

		return
	}

	SendJSON(ctx, w, http.StatusOK, TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
