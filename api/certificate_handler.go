package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raihanzaky/portfolio-backend/errs"
	"github.com/raihanzaky/portfolio-backend/models"
	"github.com/raihanzaky/portfolio-backend/store"
)

type certificateHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *store.Store
}

func newCertificateHandler(store *store.Store) certificateHandler {
	logger := log.With().Str("handlerName", "certificateHandler").Logger()

	return certificateHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

type CertificateCollection struct {
	Certificates []models.Certificate `json:"certificates"`
	Total        int                  `json:"total"`
}

func (h certificateHandler) getAllCertificates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificates := h.store.Certificates()
		h.responder.WriteJSON(w, CertificateCollection{
			Certificates: certificates,
			Total:        len(certificates),
		})
	}
}

func (h certificateHandler) createCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var certificate models.Certificate
		if err := json.NewDecoder(r.Body).Decode(&certificate); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode certificate request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if certificate.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}

		certificate.Normalize()
		created := h.store.AddCertificate(r.Context(), certificate)

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

func (h certificateHandler) updateCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseRecordID(chi.URLParam(r, "certificateID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.CertificatePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode certificate patch body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		patch.Normalize()
		updated, ok := h.store.UpdateCertificate(r.Context(), id, patch)
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("certificate not found"))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h certificateHandler) deleteCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseRecordID(chi.URLParam(r, "certificateID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.store.DeleteCertificate(r.Context(), id)

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "certificate deleted successfully",
		})
	}
}
