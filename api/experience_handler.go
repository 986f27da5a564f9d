package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raihanzaky/portfolio-backend/errs"
	"github.com/raihanzaky/portfolio-backend/models"
	"github.com/raihanzaky/portfolio-backend/store"
)

type experienceHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *store.Store
}

func newExperienceHandler(store *store.Store) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// ExperienceCollection is the list payload rendered by the timeline section.
type ExperienceCollection struct {
	Experiences []models.Experience `json:"experiences"`
	Total       int                 `json:"total"`
}

// getAllExperiences returns the in-memory experience collection
func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences := h.store.Experiences()
		h.responder.WriteJSON(w, ExperienceCollection{
			Experiences: experiences,
			Total:       len(experiences),
		})
	}
}

// createExperience adds a new experience through the unified store
func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var experience models.Experience
		if err := json.NewDecoder(r.Body).Decode(&experience); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode experience request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if experience.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}

		experience.Normalize()
		created := h.store.AddExperience(r.Context(), experience)

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateExperience applies a partial update by id
func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseRecordID(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.ExperiencePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode experience patch body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		patch.Normalize()
		updated, ok := h.store.UpdateExperience(r.Context(), id, patch)
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteExperience removes an experience by id
func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseRecordID(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.store.DeleteExperience(r.Context(), id)

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "experience deleted successfully",
		})
	}
}

// parseRecordID parses the numeric identifier shared by all three record kinds.
func parseRecordID(raw string) (int64, *errs.ApiErr) {
	if raw == "" {
		return 0, errs.NewBadRequestError("missing record id")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid record id")
	}
	return id, nil
}
