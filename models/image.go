package models

import (
	"strings"
	"time"
)

// ImageRef is the embeddable slice of an uploaded image carried by value
// inside a certificate or project record.
type ImageRef struct {
	ID   string `json:"id"`
	Data string `json:"data"`
	Name string `json:"name"`
}

// ImageEntry is the full registry record for an uploaded image, keyed by the
// generated identifier and persisted independently of the owning record.
type ImageEntry struct {
	ID         string    `json:"id"`
	Data       string    `json:"data"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Ref returns the embeddable view of the entry.
func (e ImageEntry) Ref() ImageRef {
	return ImageRef{ID: e.ID, Data: e.Data, Name: e.Name}
}

// FilterBlank returns items with whitespace-only entries removed.
func FilterBlank(items []string) []string {
	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
