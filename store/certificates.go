package store

import (
	"context"

	"github.com/raihanzaky/portfolio-backend/models"
)

// AddCertificate assigns a client-side identifier and inserts the record,
// with the same optimistic semantics as AddExperience.
func (s *Store) AddCertificate(ctx context.Context, certificate models.Certificate) models.Certificate {
	s.mu.Lock()
	defer s.mu.Unlock()

	certificate.ID = s.nextID()

	if s.mode == ModeDatabase {
		stored := certificate
		rctx, cancel := s.remoteCtx(ctx)
		err := s.remote.Certificates.Add(rctx, &stored)
		cancel()
		if err != nil {
			s.logger.Warn().Err(err).Int64("id", certificate.ID).
				Msg("remote insert failed, certificate kept in memory only until restart")
			s.certificates = append([]models.Certificate{certificate}, s.certificates...)
			return certificate
		}
		s.certificates = append([]models.Certificate{stored}, s.certificates...)
		return stored
	}

	s.certificates = append(s.certificates, certificate)
	s.persistCertificates()
	return certificate
}

// UpdateCertificate merges the patch into the record with the given id.
func (s *Store) UpdateCertificate(ctx context.Context, id int64, patch models.CertificatePatch) (models.Certificate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.certificates {
		if s.certificates[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Certificate{}, false
	}

	if s.mode == ModeDatabase {
		rctx, cancel := s.remoteCtx(ctx)
		updated, err := s.remote.Certificates.Update(rctx, id, patch)
		cancel()
		if err == nil {
			s.certificates[idx] = *updated
			return *updated, true
		}
		s.logger.Warn().Err(err).Int64("id", id).
			Msg("remote update failed, merging certificate patch in memory")
		patch.Apply(&s.certificates[idx])
		return s.certificates[idx], true
	}

	patch.Apply(&s.certificates[idx])
	s.persistCertificates()
	return s.certificates[idx], true
}

// DeleteCertificate removes the record with the given id, unconditionally
// for the in-memory collection.
func (s *Store) DeleteCertificate(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeDatabase {
		rctx, cancel := s.remoteCtx(ctx)
		if err := s.remote.Certificates.Delete(rctx, id); err != nil {
			s.logger.Warn().Err(err).Int64("id", id).Msg("remote delete failed, removing certificate locally anyway")
		}
		cancel()
	}

	found := false
	kept := s.certificates[:0]
	for _, certificate := range s.certificates {
		if certificate.ID == id {
			found = true
			continue
		}
		kept = append(kept, certificate)
	}
	s.certificates = kept

	if s.mode == ModeLocal && found {
		s.persistCertificates()
	}
	return found
}

func (s *Store) persistCertificates() {
	if err := s.local.SaveCertificates(s.certificates); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist certificates to durable storage")
	}
}
