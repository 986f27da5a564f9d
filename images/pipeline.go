// Package images ingests uploaded image files: validate, downsize, encode
// into a self-contained data URI, assign an identifier and record the
// payload in the registry.
package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"math/rand"
	"strconv"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/raihanzaky/portfolio-backend/errs"
	"github.com/raihanzaky/portfolio-backend/models"
)

const (
	MaxFileSize = 5 * 1024 * 1024 // 5 MiB
	MaxWidth    = 800
	MaxHeight   = 600
	JPEGQuality = 80
)

var acceptedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// Upload is one raw file-like input as received from the admin form.
type Upload struct {
	Name string
	Type string // declared media type
	Size int64  // declared size in bytes
	Data []byte
}

// Processor runs the ingestion pipeline and writes successes through to the
// registry.
type Processor struct {
	registry *Registry
	now      func() time.Time
}

func NewProcessor(registry *Registry) *Processor {
	return &Processor{registry: registry, now: time.Now}
}

// Validate applies the type and size gates, in that order.
func Validate(upload Upload) *errs.ApiErr {
	if !acceptedTypes[upload.Type] {
		return errs.NewUnsupportedFileTypeError(upload.Type)
	}
	if upload.Size > MaxFileSize {
		return errs.NewFileTooLargeError(upload.Size, MaxFileSize)
	}
	return nil
}

// Process runs the full pipeline for one file. On success the encoded image
// is already recorded in the registry under the returned identifier.
func (p *Processor) Process(ctx context.Context, upload Upload) (models.ImageEntry, error) {
	if err := Validate(upload); err != nil {
		return models.ImageEntry{}, err
	}

	if err := ctx.Err(); err != nil {
		return models.ImageEntry{}, err
	}

	decoded, _, err := image.Decode(bytes.NewReader(upload.Data))
	if err != nil {
		return models.ImageEntry{}, errs.NewInvalidImageError(upload.Name, err)
	}

	// Landscape images clamp width, everything else clamps height; the
	// other dimension scales proportionally and may exceed its own bound.
	bounds := decoded.Bounds()
	if bounds.Dx() > bounds.Dy() {
		if bounds.Dx() > MaxWidth {
			decoded = imaging.Resize(decoded, MaxWidth, 0, imaging.Lanczos)
		}
	} else if bounds.Dy() > MaxHeight {
		decoded = imaging.Resize(decoded, 0, MaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, decoded, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return models.ImageEntry{}, errs.NewInvalidImageError(upload.Name, err)
	}

	entry := models.ImageEntry{
		ID:         p.generateID(),
		Data:       "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Name:       upload.Name,
		Size:       int64(buf.Len()),
		Type:       "image/jpeg",
		UploadedAt: p.now(),
	}

	if err := p.registry.Put(entry); err != nil {
		return models.ImageEntry{}, errs.NewStorageWriteError("portfolioImages", err)
	}
	return entry, nil
}

// ProcessBatch ingests a multi-file submission. The count gate runs before
// any file is touched; the files themselves are then processed concurrently.
// Order of the results matches the order of the uploads.
func (p *Processor) ProcessBatch(ctx context.Context, uploads []Upload, multiple bool, maxFiles int) ([]models.ImageEntry, error) {
	if !multiple && len(uploads) > 1 {
		return nil, errs.NewSingleFileError()
	}
	if multiple && len(uploads) > maxFiles {
		return nil, errs.NewTooManyFilesError(maxFiles)
	}

	entries := make([]models.ImageEntry, len(uploads))
	g, gctx := errgroup.WithContext(ctx)
	for i, upload := range uploads {
		i, upload := i, upload
		g.Go(func() error {
			entry, err := p.Process(gctx, upload)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// generateID builds an identifier unique with high probability: upload
// timestamp plus a random base36 suffix, the registry's naming scheme.
func (p *Processor) generateID() string {
	suffix := strconv.FormatUint(rand.Uint64(), 36)
	if len(suffix) > 9 {
		suffix = suffix[:9]
	}
	return fmt.Sprintf("img_%d_%s", p.now().UnixMilli(), suffix)
}
