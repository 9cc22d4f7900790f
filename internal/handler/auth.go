// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/openorg/orgfeed/internal/auth"
	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/service"
)

type AuthHandler struct {
	employees *service.EmployeeService
	tokens    *auth.TokenManager
}

func NewAuthHandler(employees *service.EmployeeService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{employees: employees, tokens: tokens}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	BaseResponse
	Employee *model.Employee `json:"employee"`
	Tokens   *auth.TokenPair `json:"tokens"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.employees.Authenticate(r.Context(), input.Email, input.Password)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			slog.ErrorContext(r.Context(), "login error",
				"error", err, "requestID", chmw.GetReqID(r.Context()))
		}
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		Employee:     output.Employee,
		Tokens:       output.Tokens,
	})
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var input RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	claims, err := h.tokens.Validate(input.RefreshToken)
	if err != nil || !claims.Refresh {
		respondWithError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	pair, err := h.tokens.GeneratePair(claims.EmployeeID, claims.Email)
	if err != nil {
		slog.ErrorContext(r.Context(), "token refresh error",
			"error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"tokens": pair,
	})
}
