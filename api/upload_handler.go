package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raihanzaky/portfolio-backend/errs"
	"github.com/raihanzaky/portfolio-backend/images"
	"github.com/raihanzaky/portfolio-backend/models"
)

// maxUploadMemory bounds the multipart parse buffer, not the per-file size
// gate, which the pipeline enforces on declared sizes.
const maxUploadMemory = 32 << 20

const defaultMaxFiles = 5

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	processor *images.Processor
	registry  *images.Registry
}

func newUploadHandler(processor *images.Processor, registry *images.Registry) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		processor: processor,
		registry:  registry,
	}
}

// UploadResult carries the embeddable references of a successful batch.
type UploadResult struct {
	Images []models.ImageRef `json:"images"`
}

// uploadImages ingests a multipart submission. Form fields: "images" holds
// the files, "multiple" enables multi-image mode, "maxFiles" overrides the
// multi-image bound.
func (h uploadHandler) uploadImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			h.logger.Error().Err(err).Msg("Failed to parse multipart form")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		files := r.MultipartForm.File["images"]
		if len(files) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("no images submitted"))
			return
		}

		multiple := r.FormValue("multiple") == "true"
		maxFiles := defaultMaxFiles
		if raw := r.FormValue("maxFiles"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid maxFiles value"))
				return
			}
			maxFiles = parsed
		}

		uploads := make([]images.Upload, 0, len(files))
		for _, header := range files {
			file, err := header.Open()
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("could not read uploaded file"))
				return
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("could not read uploaded file"))
				return
			}
			uploads = append(uploads, images.Upload{
				Name: header.Filename,
				Type: header.Header.Get("Content-Type"),
				Size: header.Size,
				Data: data,
			})
		}

		entries, err := h.processor.ProcessBatch(r.Context(), uploads, multiple, maxFiles)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		refs := make([]models.ImageRef, len(entries))
		for i, entry := range entries {
			refs[i] = entry.Ref()
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, UploadResult{Images: refs})
	}
}

// getImage looks up a registry entry by its generated identifier
func (h uploadHandler) getImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID := chi.URLParam(r, "imageID")
		if imageID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing imageID"))
			return
		}

		entry, ok := h.registry.Get(imageID)
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("image not found"))
			return
		}

		h.responder.WriteJSON(w, entry)
	}
}
