package store

import (
	"context"

	"github.com/raihanzaky/portfolio-backend/models"
)

// AddExperience assigns a client-side identifier and inserts the record.
// Database mode inserts optimistically: on remote failure the record stays
// in memory only and is lost on restart. Local mode persists immediately.
func (s *Store) AddExperience(ctx context.Context, experience models.Experience) models.Experience {
	s.mu.Lock()
	defer s.mu.Unlock()

	experience.ID = s.nextID()

	if s.mode == ModeDatabase {
		stored := experience
		rctx, cancel := s.remoteCtx(ctx)
		err := s.remote.Experiences.Add(rctx, &stored)
		cancel()
		if err != nil {
			s.logger.Warn().Err(err).Int64("id", experience.ID).
				Msg("remote insert failed, experience kept in memory only until restart")
			s.experiences = append([]models.Experience{experience}, s.experiences...)
			return experience
		}
		s.experiences = append([]models.Experience{stored}, s.experiences...)
		return stored
	}

	s.experiences = append(s.experiences, experience)
	s.persistExperiences()
	return experience
}

// UpdateExperience merges the patch into the record with the given id. In
// database mode a failed remote update degrades to a local in-memory merge.
func (s *Store) UpdateExperience(ctx context.Context, id int64, patch models.ExperiencePatch) (models.Experience, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.experiences {
		if s.experiences[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Experience{}, false
	}

	if s.mode == ModeDatabase {
		rctx, cancel := s.remoteCtx(ctx)
		updated, err := s.remote.Experiences.Update(rctx, id, patch)
		cancel()
		if err == nil {
			s.experiences[idx] = *updated
			return *updated, true
		}
		s.logger.Warn().Err(err).Int64("id", id).
			Msg("remote update failed, merging experience patch in memory")
		patch.Apply(&s.experiences[idx])
		return s.experiences[idx], true
	}

	patch.Apply(&s.experiences[idx])
	s.persistExperiences()
	return s.experiences[idx], true
}

// DeleteExperience removes the record with the given id. In database mode
// the in-memory removal happens whether or not the remote delete succeeds.
func (s *Store) DeleteExperience(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeDatabase {
		rctx, cancel := s.remoteCtx(ctx)
		if err := s.remote.Experiences.Delete(rctx, id); err != nil {
			s.logger.Warn().Err(err).Int64("id", id).Msg("remote delete failed, removing experience locally anyway")
		}
		cancel()
	}

	found := false
	kept := s.experiences[:0]
	for _, experience := range s.experiences {
		if experience.ID == id {
			found = true
			continue
		}
		kept = append(kept, experience)
	}
	s.experiences = kept

	if s.mode == ModeLocal && found {
		s.persistExperiences()
	}
	return found
}

func (s *Store) persistExperiences() {
	if err := s.local.SaveExperiences(s.experiences); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist experiences to durable storage")
	}
}
