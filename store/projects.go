package store

import (
	"context"

	"github.com/raihanzaky/portfolio-backend/models"
)

// AddProject assigns a client-side identifier and inserts the record, with
// the same optimistic semantics as AddExperience.
func (s *Store) AddProject(ctx context.Context, project models.Project) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	project.ID = s.nextID()

	if s.mode == ModeDatabase {
		stored := project
		rctx, cancel := s.remoteCtx(ctx)
		err := s.remote.Projects.Add(rctx, &stored)
		cancel()
		if err != nil {
			s.logger.Warn().Err(err).Int64("id", project.ID).
				Msg("remote insert failed, project kept in memory only until restart")
			s.projects = append([]models.Project{project}, s.projects...)
			return project
		}
		s.projects = append([]models.Project{stored}, s.projects...)
		return stored
	}

	s.projects = append(s.projects, project)
	s.persistProjects()
	return project
}

// UpdateProject merges the patch into the record with the given id.
func (s *Store) UpdateProject(ctx context.Context, id int64, patch models.ProjectPatch) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.projects {
		if s.projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Project{}, false
	}

	if s.mode == ModeDatabase {
		rctx, cancel := s.remoteCtx(ctx)
		updated, err := s.remote.Projects.Update(rctx, id, patch)
		cancel()
		if err == nil {
			s.projects[idx] = *updated
			return *updated, true
		}
		s.logger.Warn().Err(err).Int64("id", id).
			Msg("remote update failed, merging project patch in memory")
		patch.Apply(&s.projects[idx])
		return s.projects[idx], true
	}

	patch.Apply(&s.projects[idx])
	s.persistProjects()
	return s.projects[idx], true
}

// DeleteProject removes the record with the given id, unconditionally for
// the in-memory collection.
func (s *Store) DeleteProject(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeDatabase {
		rctx, cancel := s.remoteCtx(ctx)
		if err := s.remote.Projects.Delete(rctx, id); err != nil {
			s.logger.Warn().Err(err).Int64("id", id).Msg("remote delete failed, removing project locally anyway")
		}
		cancel()
	}

	found := false
	kept := s.projects[:0]
	for _, project := range s.projects {
		if project.ID == id {
			found = true
			continue
		}
		kept = append(kept, project)
	}
	s.projects = kept

	if s.mode == ModeLocal && found {
		s.persistProjects()
	}
	return found
}

func (s *Store) persistProjects() {
	if err := s.local.SaveProjects(s.projects); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist projects to durable storage")
	}
}
