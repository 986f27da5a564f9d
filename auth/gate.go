// Package auth is the admin login gate: a single session flag backed by a
// durable marker. It is not a security boundary, only a doorway for the
// single-admin panel.
package auth

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raihanzaky/portfolio-backend/errs"
	"github.com/raihanzaky/portfolio-backend/localstore"
)

// Fixed admin credentials, compared in plaintext like the reference panel.
const (
	adminUsername = "admin"
	adminPassword = "admin123"

	markerValue = "authenticated"
)

// Marker is the durable medium holding the session flag between restarts.
type Marker interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

type Gate struct {
	mu            sync.Mutex
	marker        Marker
	authenticated bool
	logger        zerolog.Logger
}

// NewGate builds the gate, restoring the session flag from the durable
// marker when present.
func NewGate(marker Marker) *Gate {
	g := &Gate{
		marker: marker,
		logger: log.With().Str("component", "auth").Logger(),
	}

	value, ok, err := marker.Get(localstore.KeyAdminToken)
	if err != nil {
		g.logger.Warn().Err(err).Msg("could not read session marker, starting logged out")
		return g
	}
	g.authenticated = ok && value == markerValue
	return g
}

// Login compares the submitted pair against the fixed credentials. On match
// the session flag is set and durably marked.
func (g *Gate) Login(username, password string) error {
	if username != adminUsername || password != adminPassword {
		return errs.NewInvalidCredentialsError()
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.authenticated = true
	if err := g.marker.Set(localstore.KeyAdminToken, markerValue); err != nil {
		g.logger.Warn().Err(err).Msg("could not persist session marker")
	}
	return nil
}

// Logout clears the session flag and the durable marker.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.authenticated = false
	if err := g.marker.Delete(localstore.KeyAdminToken); err != nil {
		g.logger.Warn().Err(err).Msg("could not clear session marker")
	}
}

// Authenticated reports whether the admin session is active.
func (g *Gate) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.authenticated
}
