// Package localstore is the durable fallback backend: a small key-value
// medium persisted to a local SQLite file, holding one JSON document per
// fixed key. It mirrors the durable storage the public site relies on when
// no hosted backend is configured.
package localstore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/raihanzaky/portfolio-backend/models"
)

// Fixed durable storage keys, one per collection plus the image registry
// and the credential marker.
const (
	KeyExperiences  = "portfolioExperiences"
	KeyCertificates = "portfolioCertificates"
	KeyProjects     = "portfolioProjects"
	KeyImages       = "portfolioImages"
	KeyAdminToken   = "adminToken"
)

type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Open opens (or creates) the durable store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening durable store: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing durable store: %w", err)
	}

	logger := log.With().Str("component", "localstore").Logger()
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get reads the raw value stored under key. The second return value is false
// when the key has never been written.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, true, nil
}

// Set overwrites the value stored under key.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// Delete removes key from the store. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

// load reads key into out, falling back to seed when the key has never been
// written or holds a value that no longer parses. A present-but-empty
// collection is kept as-is: an explicitly saved empty list must not be
// replaced by seed data.
func load[T any](s *Store, key string, out *[]T, seed func() []T) error {
	value, ok, err := s.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		*out = seed()
		return nil
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("corrupt durable value, falling back to seed data")
		*out = seed()
		return nil
	}
	if *out == nil {
		*out = []T{}
	}
	return nil
}

// save serializes the whole collection and overwrites key.
func save[T any](s *Store, key string, collection []T) error {
	if collection == nil {
		collection = []T{}
	}
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("serializing %q: %w", key, err)
	}
	return s.Set(key, string(data))
}

func (s *Store) LoadExperiences() ([]models.Experience, error) {
	var experiences []models.Experience
	err := load(s, KeyExperiences, &experiences, models.DefaultExperiences)
	return experiences, err
}

func (s *Store) SaveExperiences(experiences []models.Experience) error {
	return save(s, KeyExperiences, experiences)
}

func (s *Store) LoadCertificates() ([]models.Certificate, error) {
	var certificates []models.Certificate
	err := load(s, KeyCertificates, &certificates, models.DefaultCertificates)
	return certificates, err
}

func (s *Store) SaveCertificates(certificates []models.Certificate) error {
	return save(s, KeyCertificates, certificates)
}

func (s *Store) LoadProjects() ([]models.Project, error) {
	var projects []models.Project
	err := load(s, KeyProjects, &projects, models.DefaultProjects)
	return projects, err
}

func (s *Store) SaveProjects(projects []models.Project) error {
	return save(s, KeyProjects, projects)
}

// LoadImages reads the image registry. An absent or corrupt registry yields
// an empty map, never an error visible to upload flows.
func (s *Store) LoadImages() (map[string]models.ImageEntry, error) {
	value, ok, err := s.Get(KeyImages)
	if err != nil {
		return nil, err
	}
	images := map[string]models.ImageEntry{}
	if !ok {
		return images, nil
	}
	if err := json.Unmarshal([]byte(value), &images); err != nil {
		s.logger.Warn().Err(err).Str("key", KeyImages).Msg("corrupt image registry, starting empty")
		return map[string]models.ImageEntry{}, nil
	}
	return images, nil
}

func (s *Store) SaveImages(images map[string]models.ImageEntry) error {
	if images == nil {
		images = map[string]models.ImageEntry{}
	}
	data, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("serializing %q: %w", KeyImages, err)
	}
	return s.Set(KeyImages, string(data))
}
