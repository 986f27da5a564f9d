package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanzaky/portfolio-backend/errs"
	"github.com/raihanzaky/portfolio-backend/models"
)

// memoryRegistryStore keeps the registry in memory for tests.
type memoryRegistryStore struct {
	entries map[string]models.ImageEntry
}

func (m *memoryRegistryStore) LoadImages() (map[string]models.ImageEntry, error) {
	if m.entries == nil {
		m.entries = map[string]models.ImageEntry{}
	}
	return m.entries, nil
}

func (m *memoryRegistryStore) SaveImages(entries map[string]models.ImageEntry) error {
	m.entries = entries
	return nil
}

func newTestProcessor(t *testing.T) (*Processor, *Registry) {
	t.Helper()
	registry, err := NewRegistry(&memoryRegistryStore{})
	require.NoError(t, err)
	return NewProcessor(registry), registry
}

// pngUpload renders a solid-color PNG of the given dimensions.
func pngUpload(t *testing.T, name string, width, height int) Upload {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 90, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return Upload{
		Name: name,
		Type: "image/png",
		Size: int64(buf.Len()),
		Data: buf.Bytes(),
	}
}

func decodeDataURI(t *testing.T, dataURI string) image.Image {
	t.Helper()
	const prefix = "data:image/jpeg;base64,"
	require.True(t, strings.HasPrefix(dataURI, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, prefix))
	require.NoError(t, err)
	decoded, format, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	return decoded
}

func TestValidateRejectsUnsupportedType(t *testing.T) {
	err := Validate(Upload{Name: "notes.txt", Type: "text/plain", Size: 100})
	require.NotNil(t, err)
	assert.True(t, errs.IsUnsupportedFileTypeError(err))
}

func TestValidateRejectsOversizedFile(t *testing.T) {
	err := Validate(Upload{Name: "huge.png", Type: "image/png", Size: MaxFileSize + 1})
	require.NotNil(t, err)
	assert.True(t, errs.IsFileTooLargeError(err))
}

func TestValidateTypeGateRunsBeforeSizeGate(t *testing.T) {
	// an oversized file of an unsupported type reports the type problem
	err := Validate(Upload{Name: "huge.txt", Type: "text/plain", Size: MaxFileSize + 1})
	require.NotNil(t, err)
	assert.True(t, errs.IsUnsupportedFileTypeError(err))
}

func TestProcessSmallImagePassesThrough(t *testing.T) {
	processor, registry := newTestProcessor(t)

	entry, err := processor.Process(context.Background(), pngUpload(t, "photo.png", 400, 300))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(entry.ID, "img_"))
	assert.Equal(t, "photo.png", entry.Name)
	assert.Equal(t, "image/jpeg", entry.Type)
	assert.False(t, entry.UploadedAt.IsZero())

	// below both bounds, dimensions survive untouched
	decoded := decodeDataURI(t, entry.Data)
	assert.Equal(t, 400, decoded.Bounds().Dx())
	assert.Equal(t, 300, decoded.Bounds().Dy())

	stored, ok := registry.Get(entry.ID)
	require.True(t, ok)
	assert.Equal(t, entry.Data, stored.Data)
}

func TestProcessClampsLandscapeWidth(t *testing.T) {
	processor, _ := newTestProcessor(t)

	entry, err := processor.Process(context.Background(), pngUpload(t, "wide.png", 1600, 900))
	require.NoError(t, err)

	decoded := decodeDataURI(t, entry.Data)
	bounds := decoded.Bounds()
	assert.Equal(t, 800, bounds.Dx())
	assert.Equal(t, 450, bounds.Dy())
}

func TestProcessLandscapeHeightMayExceedItsBound(t *testing.T) {
	processor, _ := newTestProcessor(t)

	// only the larger dimension is clamped: a 1000x800 landscape scales
	// to 800 wide and its height follows the ratio past 600
	entry, err := processor.Process(context.Background(), pngUpload(t, "tall-landscape.png", 1000, 800))
	require.NoError(t, err)

	decoded := decodeDataURI(t, entry.Data)
	bounds := decoded.Bounds()
	assert.Equal(t, 800, bounds.Dx())
	assert.Equal(t, 640, bounds.Dy())
}

func TestProcessClampsPortraitHeight(t *testing.T) {
	processor, _ := newTestProcessor(t)

	entry, err := processor.Process(context.Background(), pngUpload(t, "portrait.png", 600, 1200))
	require.NoError(t, err)

	decoded := decodeDataURI(t, entry.Data)
	bounds := decoded.Bounds()
	assert.Equal(t, 300, bounds.Dx())
	assert.Equal(t, 600, bounds.Dy())
}

func TestProcessLandscapeWithinWidthBoundIsUntouched(t *testing.T) {
	processor, _ := newTestProcessor(t)

	// landscape never consults the height bound: 790x700 stays as is
	entry, err := processor.Process(context.Background(), pngUpload(t, "boxy.png", 790, 700))
	require.NoError(t, err)

	decoded := decodeDataURI(t, entry.Data)
	bounds := decoded.Bounds()
	assert.Equal(t, 790, bounds.Dx())
	assert.Equal(t, 700, bounds.Dy())
}

func TestProcessRejectsUndecodableData(t *testing.T) {
	processor, registry := newTestProcessor(t)

	_, err := processor.Process(context.Background(), Upload{
		Name: "broken.png",
		Type: "image/png",
		Size: 12,
		Data: []byte("not an image"),
	})
	require.Error(t, err)
	assert.True(t, errs.IsInvalidImageError(err))
	assert.Zero(t, registry.Len())
}

func TestProcessBatchRejectsMultipleInSingleMode(t *testing.T) {
	processor, registry := newTestProcessor(t)
	uploads := []Upload{
		pngUpload(t, "a.png", 100, 100),
		pngUpload(t, "b.png", 100, 100),
	}

	_, err := processor.ProcessBatch(context.Background(), uploads, false, 5)
	require.Error(t, err)
	assert.True(t, errs.IsTooManyFilesError(err))
	// the count gate runs before any file is processed
	assert.Zero(t, registry.Len())
}

func TestProcessBatchRejectsOverMaxFiles(t *testing.T) {
	processor, registry := newTestProcessor(t)
	uploads := make([]Upload, 6)
	for i := range uploads {
		uploads[i] = pngUpload(t, "img.png", 100, 100)
	}

	_, err := processor.ProcessBatch(context.Background(), uploads, true, 5)
	require.Error(t, err)
	assert.True(t, errs.IsTooManyFilesError(err))
	assert.Zero(t, registry.Len())
}

func TestProcessBatchKeepsSubmissionOrder(t *testing.T) {
	processor, registry := newTestProcessor(t)
	uploads := []Upload{
		pngUpload(t, "first.png", 100, 100),
		pngUpload(t, "second.png", 120, 80),
		pngUpload(t, "third.png", 90, 110),
	}

	entries, err := processor.ProcessBatch(context.Background(), uploads, true, 5)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "first.png", entries[0].Name)
	assert.Equal(t, "second.png", entries[1].Name)
	assert.Equal(t, "third.png", entries[2].Name)
	assert.Equal(t, 3, registry.Len())
}

func TestRegistryRemoveUnknownIsNoOp(t *testing.T) {
	_, registry := newTestProcessor(t)
	require.NoError(t, registry.Remove("img_missing"))
	assert.Zero(t, registry.Len())
}
