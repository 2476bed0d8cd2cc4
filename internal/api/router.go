/**
 * @description
 * This file sets up the HTTP router for the account-service using the
 * go-chi/chi router. It defines the API routes, applies middleware for
 * logging, CORS and recovery, and gates the admin routes behind the admin
 * JWT middleware.
 */
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new Chi router and registers the account-service routes.
func NewRouter(authHandler *AuthHandler, adminHandler *AdminHandler, adminSecret string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	r.Post("/auth/signin", authHandler.SignIn)

	// Admin routes require an admin-role JWT.
	r.Group(func(r chi.Router) {
		r.Use(AdminAuthMiddleware(adminSecret))

		r.Put("/admin/users/{id}/status", adminHandler.UpdateUserStatus)
	})

	return r
}
