package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project categories shown in the portfolio filter.
const (
	CategoryWebDev   = "Web Dev"
	CategoryUIUX     = "UI/UX"
	CategoryResearch = "Research"
	CategoryMobile   = "Mobile"
)

// ValidCategory reports whether category is one of the fixed set.
func ValidCategory(category string) bool {
	switch category {
	case CategoryWebDev, CategoryUIUX, CategoryResearch, CategoryMobile:
		return true
	}
	return false
}

// ProjectLinks holds the four optional named URLs of a project. Each link is
// either a URL string or explicitly absent; submission normalizes empty
// strings to absent.
type ProjectLinks struct {
	Live   *string `json:"live"`
	Github *string `json:"github"`
	Figma  *string `json:"figma"`
	Report *string `json:"report"`
}

// Normalized returns a copy with empty-string links replaced by nil.
func (l ProjectLinks) Normalized() ProjectLinks {
	norm := func(s *string) *string {
		if s == nil || *s == "" {
			return nil
		}
		return s
	}
	return ProjectLinks{
		Live:   norm(l.Live),
		Github: norm(l.Github),
		Figma:  norm(l.Figma),
		Report: norm(l.Report),
	}
}

// Project represents one portfolio project entry
type Project struct {
	ID           int64                            `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title        string                           `json:"title" gorm:"type:text;not null"`
	Category     string                           `json:"category" gorm:"type:text"`
	Description  string                           `json:"description" gorm:"type:text"`
	Images       datatypes.JSONSlice[ImageRef]    `json:"images" gorm:"type:jsonb"`
	Technologies datatypes.JSONSlice[string]      `json:"technologies" gorm:"type:jsonb"`
	Links        datatypes.JSONType[ProjectLinks] `json:"links" gorm:"type:jsonb"`
	Featured     bool                             `json:"featured"`
	Year         string                           `json:"year" gorm:"type:text"`
	CreatedAt    time.Time                        `json:"created_at,omitempty"`
}

type ProjectPatch struct {
	Title        *string       `json:"title,omitempty"`
	Category     *string       `json:"category,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Images       *[]ImageRef   `json:"images,omitempty"`
	Technologies *[]string     `json:"technologies,omitempty"`
	Links        *ProjectLinks `json:"links,omitempty"`
	Featured     *bool         `json:"featured,omitempty"`
	Year         *string       `json:"year,omitempty"`
}

func (p ProjectPatch) Apply(proj *Project) {
	if p.Title != nil {
		proj.Title = *p.Title
	}
	if p.Category != nil {
		proj.Category = *p.Category
	}
	if p.Description != nil {
		proj.Description = *p.Description
	}
	if p.Images != nil {
		proj.Images = datatypes.NewJSONSlice(*p.Images)
	}
	if p.Technologies != nil {
		proj.Technologies = datatypes.NewJSONSlice(*p.Technologies)
	}
	if p.Links != nil {
		proj.Links = datatypes.NewJSONType(p.Links.Normalized())
	}
	if p.Featured != nil {
		proj.Featured = *p.Featured
	}
	if p.Year != nil {
		proj.Year = *p.Year
	}
}

func (p ProjectPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Category != nil {
		changes["category"] = *p.Category
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Images != nil {
		changes["images"] = datatypes.NewJSONSlice(*p.Images)
	}
	if p.Technologies != nil {
		changes["technologies"] = datatypes.NewJSONSlice(*p.Technologies)
	}
	if p.Links != nil {
		changes["links"] = datatypes.NewJSONType(p.Links.Normalized())
	}
	if p.Featured != nil {
		changes["featured"] = *p.Featured
	}
	if p.Year != nil {
		changes["year"] = *p.Year
	}
	return changes
}

// Normalize cleans the fields the patch sets: blank technologies dropped,
// empty link strings collapsed to absent.
func (p *ProjectPatch) Normalize() {
	if p.Technologies != nil {
		filtered := FilterBlank(*p.Technologies)
		p.Technologies = &filtered
	}
	if p.Links != nil {
		normalized := p.Links.Normalized()
		p.Links = &normalized
	}
}

// Normalize drops blank technology entries and collapses empty link strings
// to absent, the same cleanup the admin form applies before submitting.
func (p *Project) Normalize() {
	p.Technologies = datatypes.NewJSONSlice(FilterBlank(p.Technologies))
	p.Links = datatypes.NewJSONType(p.Links.Data().Normalized())
}
