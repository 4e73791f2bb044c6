/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Logger:     Structured request logging (zap)
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests for the front end

ROUTE GROUPS:
  /api/compliance-year         Compliance year resolution
  /api/registration/windows    Registration window queries
  /api/prns/*                  PRN acceptance windows
  /api/sessions/*              Session facts and task lists
  /health                      Liveness

SECURITY NOTE:
  No authentication middleware - auth and claims handling belong to the
  surrounding platform, not this engine.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/packlane/compliance-engine/logger"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, log *zap.Logger, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(logger.Middleware(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", h.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/compliance-year", h.GetComplianceYear)

		r.Route("/registration", func(r chi.Router) {
			r.Get("/windows", h.ListWindows)
		})

		r.Route("/prns", func(r chi.Router) {
			r.Get("/acceptance-years", h.GetAcceptanceYears)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.CreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetSession)
				r.Delete("/", h.DeleteSession)
				r.Put("/registration", h.UpdateRegistration)
				r.Get("/registration/task-list", h.GetRegistrationTaskList)
				r.Put("/resubmission", h.UpdateResubmission)
				r.Get("/resubmission/task-list", h.GetResubmissionTaskList)
			})
		})
	})

	return r
}
