package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public portfolio reads, the login endpoints and the
// auth-gated admin mutations.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes: the portfolio pages and the login form
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.health())

		r.Get("/experiences", handlers.experienceHandler.getAllExperiences())
		r.Get("/certificates", handlers.certificateHandler.getAllCertificates())
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/images/{imageID}", handlers.uploadHandler.getImage())

		r.Post("/login", handlers.authHandler.login())
		r.Get("/session", handlers.authHandler.session())
	})

	// Admin routes: content mutations behind the credential gate
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/experience", handlers.experienceHandler.createExperience())
		r.Put("/experience/{experienceID}", handlers.experienceHandler.updateExperience())
		r.Delete("/experience/{experienceID}", handlers.experienceHandler.deleteExperience())

		r.Post("/certificate", handlers.certificateHandler.createCertificate())
		r.Put("/certificate/{certificateID}", handlers.certificateHandler.updateCertificate())
		r.Delete("/certificate/{certificateID}", handlers.certificateHandler.deleteCertificate())

		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/images", handlers.uploadHandler.uploadImages())

		r.Post("/logout", handlers.authHandler.logout())
	})
}
