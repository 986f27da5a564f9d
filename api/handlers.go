package api

import "time"

type routeHandlers struct {
	experienceHandler  experienceHandler
	certificateHandler certificateHandler
	projectHandler     projectHandler
	uploadHandler      uploadHandler
	authHandler        authHandler
	healthHandler      healthHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Deps, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		experienceHandler:  newExperienceHandler(deps.Store),
		certificateHandler: newCertificateHandler(deps.Store),
		projectHandler:     newProjectHandler(deps.Store),
		uploadHandler:      newUploadHandler(deps.Processor, deps.Registry),
		authHandler:        newAuthHandler(deps.Gate),
		healthHandler:      newHealthHandler(deps.Store, startupTime),
	}
}
