/**
 * @description
 * This file defines the HTTP handlers for the account-service's API
 * endpoints. Handlers parse requests, call the service layer and map its
 * results onto the wire contract.
 *
 * Note on sign-in: credential failures are returned as HTTP 200 with an
 * `errors` field rather than a 4xx. Existing API consumers depend on this
 * convention, so it is kept as-is; only unexpected failures become a 500.
 */
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/inclufi/account-service/internal/app"
	"github.com/inclufi/account-service/internal/domain"
	"github.com/inclufi/account-service/internal/store"
)

// AuthHandler holds the dependencies for authentication endpoints.
type AuthHandler struct {
	service *app.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *app.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req domain.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Printf("Error during sign-in: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}

	if len(result.FieldErrors) > 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{"errors": result.FieldErrors})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Sign-in successful",
		"accessToken": result.AccessToken,
	})
}

// AdminHandler holds the dependencies for administrator endpoints.
type AdminHandler struct {
	service *app.Service
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *app.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// UpdateUserStatus handles PUT /admin/users/{id}/status. The body's free-text
// message decides the outcome: "accept" approves, anything else rejects.
func (h *AdminHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.DecisionRequest
	// A missing or malformed body falls through to the required-fields check.
	_ = json.NewDecoder(r.Body).Decode(&req)

	userID, parseErr := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if req.Message == "" || parseErr != nil || userID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "User ID and message are required."})
		return
	}

	result, err := h.service.DecideKyc(r.Context(), userID, req.Message)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found."})
			return
		}
		log.Printf("Error updating user status: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message": "Failed to update user status",
			"error":   err.Error(),
		})
		return
	}

	resp := map[string]interface{}{"message": result.Message}
	if result.User != nil {
		resp["user"] = result.User
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeJSON is a helper to write JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
