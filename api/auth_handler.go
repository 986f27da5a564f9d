package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raihanzaky/portfolio-backend/auth"
	"github.com/raihanzaky/portfolio-backend/errs"
	"github.com/raihanzaky/portfolio-backend/store"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	gate      *auth.Gate
}

func newAuthHandler(gate *auth.Gate) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gate:      gate,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login checks the submitted credentials and opens the admin session
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.gate.Login(req.Username, req.Password); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}

// logout closes the admin session
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.gate.Logout()
		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}

// session reports whether the admin session is active
func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]bool{
			"authenticated": h.gate.Authenticated(),
		})
	}
}

type healthHandler struct {
	responder   Responder
	store       *store.Store
	startupTime time.Time
}

func newHealthHandler(st *store.Store, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		store:       st,
		startupTime: startupTime,
	}
}

// health reports readiness, the selected backend mode and uptime
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"status": "ok",
			"ready":  h.store.Ready(),
			"mode":   h.store.Mode(),
			"uptime": time.Since(h.startupTime).String(),
		})
	}
}
