package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterAuthRoutes registers the dev-mode login bypass, gated behind
// devMode exactly as the underlying handler is.
func RegisterAuthRoutes(r chi.Router, h *AuthHandler, devMode bool) {
	r.Route("/auth", func(r chi.Router) {
		if devMode {
			r.Get("/dev/login", h.DevLogin)
		}
	})
}

// RegisterServicesRoutes registers the service catalogue listing.
func RegisterServicesRoutes(r chi.Router, h *ServicesHandler) {
	r.Get("/services", h.List)
}

// RegisterStaffingRoutes registers the simulation-run endpoint and its
// three download endpoints behind authMiddleware (nil to leave them open,
// e.g. under a dev-mode bypass).
func RegisterStaffingRoutes(r chi.Router, h *StaffingHandler, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/simulations", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Post("/", h.Create)
		r.Get("/{id}/report.xlsx", h.Report)
		r.Get("/{id}/weekgrid.xlsx", h.WeekGrid)
		r.Get("/{id}/summary.pdf", h.Summary)
	})
}
