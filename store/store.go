// Package store is the unified data store the admin surface and the public
// pages consume. It holds the three content collections in memory, decides
// once at startup whether to run against the hosted backend or the local
// durable store, and exposes uniform CRUD with fallback-on-error semantics.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/raihanzaky/portfolio-backend/models"
)

// Mode identifies which backend the store selected at initialization.
type Mode string

const (
	ModeDatabase Mode = "database"
	ModeLocal    Mode = "local"
)

// DefaultRemoteTimeout bounds every hosted-backend call so a hung network
// connection cannot hang an admin action indefinitely.
const DefaultRemoteTimeout = 10 * time.Second

// ExperienceBackend is the remote CRUD surface for the experience collection.
type ExperienceBackend interface {
	FindAll(ctx context.Context) ([]models.Experience, error)
	Add(ctx context.Context, experience *models.Experience) error
	Update(ctx context.Context, id int64, patch models.ExperiencePatch) (*models.Experience, error)
	Delete(ctx context.Context, id int64) error
}

// CertificateBackend is the remote CRUD surface for the certificate collection.
type CertificateBackend interface {
	FindAll(ctx context.Context) ([]models.Certificate, error)
	Add(ctx context.Context, certificate *models.Certificate) error
	Update(ctx context.Context, id int64, patch models.CertificatePatch) (*models.Certificate, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectBackend is the remote CRUD surface for the project collection.
type ProjectBackend interface {
	FindAll(ctx context.Context) ([]models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}

// Remote groups the three collection backends of the hosted database.
type Remote struct {
	Experiences  ExperienceBackend
	Certificates CertificateBackend
	Projects     ProjectBackend
}

// Local is the durable fallback medium. Load must apply seed-or-saved
// semantics; Save overwrites the whole collection.
type Local interface {
	LoadExperiences() ([]models.Experience, error)
	SaveExperiences([]models.Experience) error
	LoadCertificates() ([]models.Certificate, error)
	SaveCertificates([]models.Certificate) error
	LoadProjects() ([]models.Project, error)
	SaveProjects([]models.Project) error
}

// Store is the facade. All operations are serialized by one mutex: there is
// exactly one admin session, so call order decides and last write wins.
type Store struct {
	mu     sync.Mutex
	mode   Mode
	ready  bool
	local  Local
	remote *Remote

	remoteTimeout time.Duration
	logger        zerolog.Logger

	experiences  []models.Experience
	certificates []models.Certificate
	projects     []models.Project

	// now is the identifier clock, overridable in tests
	now func() time.Time
}

type Option func(*Store)

func WithRemoteTimeout(timeout time.Duration) Option {
	return func(s *Store) {
		s.remoteTimeout = timeout
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New builds an uninitialized store. remote may be nil when the hosted
// backend is not configured; Init then goes straight to the local medium.
func New(local Local, remote *Remote, opts ...Option) *Store {
	s := &Store{
		local:         local,
		remote:        remote,
		remoteTimeout: DefaultRemoteTimeout,
		logger:        log.With().Str("component", "store").Logger(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads the three collections and fixes the operating mode for the
// session. With a configured remote it fetches all three collections
// concurrently; any fetch error abandons the remote entirely and falls back
// to the local load procedure. Empty remote collections are replaced by the
// seed datasets, which leaves a silently failed fetch that returned no rows
// indistinguishable from a genuinely empty table — only a fetch that
// reports its error triggers the fallback.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.remote != nil {
		if err := s.initFromRemote(ctx); err == nil {
			s.mode = ModeDatabase
			s.ready = true
			s.logger.Info().Msg("data loaded from remote backend")
			return nil
		} else {
			s.logger.Warn().Err(err).Msg("remote backend unavailable, falling back to durable storage")
		}
	}

	if err := s.loadLocal(); err != nil {
		return err
	}
	s.mode = ModeLocal
	s.ready = true
	s.logger.Info().Msg("data loaded from durable storage")
	return nil
}

func (s *Store) initFromRemote(ctx context.Context) error {
	var (
		experiences  []models.Experience
		certificates []models.Certificate
		projects     []models.Project
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rctx, cancel := context.WithTimeout(gctx, s.remoteTimeout)
		defer cancel()
		var err error
		experiences, err = s.remote.Experiences.FindAll(rctx)
		return err
	})
	g.Go(func() error {
		rctx, cancel := context.WithTimeout(gctx, s.remoteTimeout)
		defer cancel()
		var err error
		certificates, err = s.remote.Certificates.FindAll(rctx)
		return err
	})
	g.Go(func() error {
		rctx, cancel := context.WithTimeout(gctx, s.remoteTimeout)
		defer cancel()
		var err error
		projects, err = s.remote.Projects.FindAll(rctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if len(experiences) == 0 {
		experiences = models.DefaultExperiences()
	}
	if len(certificates) == 0 {
		certificates = models.DefaultCertificates()
	}
	if len(projects) == 0 {
		projects = models.DefaultProjects()
	}

	s.experiences = experiences
	s.certificates = certificates
	s.projects = projects
	return nil
}

func (s *Store) loadLocal() error {
	experiences, err := s.local.LoadExperiences()
	if err != nil {
		return err
	}
	certificates, err := s.local.LoadCertificates()
	if err != nil {
		return err
	}
	projects, err := s.local.LoadProjects()
	if err != nil {
		return err
	}

	s.experiences = experiences
	s.certificates = certificates
	s.projects = projects
	return nil
}

// remoteCtx derives the bounded context used for every hosted-backend call.
func (s *Store) remoteCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.remoteTimeout)
}

func (s *Store) nextID() int64 {
	return s.now().UnixMilli()
}

// Mode reports which backend the store selected at initialization.
func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Ready reports whether Init has completed.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Experiences returns a copy of the in-memory experience collection.
func (s *Store) Experiences() []models.Experience {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Experience, len(s.experiences))
	copy(out, s.experiences)
	return out
}

// Certificates returns a copy of the in-memory certificate collection.
func (s *Store) Certificates() []models.Certificate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Certificate, len(s.certificates))
	copy(out, s.certificates)
	return out
}

// Projects returns a copy of the in-memory project collection.
func (s *Store) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}
