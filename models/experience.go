package models

import (
	"time"

	"gorm.io/datatypes"
)

// Experience represents one work, organizational or event entry on the timeline
type Experience struct {
	ID           int64                       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title        string                      `json:"title" gorm:"type:text;not null"`
	Company      string                      `json:"company" gorm:"type:text"`
	Location     string                      `json:"location" gorm:"type:text"`
	Period       string                      `json:"period" gorm:"type:text"`
	Type         string                      `json:"type" gorm:"type:text"`
	Description  string                      `json:"description" gorm:"type:text"`
	Achievements datatypes.JSONSlice[string] `json:"achievements" gorm:"type:jsonb"`
	Technologies datatypes.JSONSlice[string] `json:"technologies" gorm:"type:jsonb"`
	Color        string                      `json:"color" gorm:"type:text"`
	CreatedAt    time.Time                   `json:"created_at,omitempty"`
}

// ExperiencePatch carries a partial update; nil fields are left untouched
type ExperiencePatch struct {
	Title        *string   `json:"title,omitempty"`
	Company      *string   `json:"company,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Period       *string   `json:"period,omitempty"`
	Type         *string   `json:"type,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Achievements *[]string `json:"achievements,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	Color        *string   `json:"color,omitempty"`
}

// Apply merges the set fields of the patch into the experience in place.
func (p ExperiencePatch) Apply(e *Experience) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Company != nil {
		e.Company = *p.Company
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Period != nil {
		e.Period = *p.Period
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Achievements != nil {
		e.Achievements = datatypes.NewJSONSlice(*p.Achievements)
	}
	if p.Technologies != nil {
		e.Technologies = datatypes.NewJSONSlice(*p.Technologies)
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
}

// Changes returns the set fields as a column map for a partial database update.
func (p ExperiencePatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Company != nil {
		changes["company"] = *p.Company
	}
	if p.Location != nil {
		changes["location"] = *p.Location
	}
	if p.Period != nil {
		changes["period"] = *p.Period
	}
	if p.Type != nil {
		changes["type"] = *p.Type
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Achievements != nil {
		changes["achievements"] = datatypes.NewJSONSlice(*p.Achievements)
	}
	if p.Technologies != nil {
		changes["technologies"] = datatypes.NewJSONSlice(*p.Technologies)
	}
	if p.Color != nil {
		changes["color"] = *p.Color
	}
	return changes
}

// Normalize drops blank entries from the slice fields the patch sets.
func (p *ExperiencePatch) Normalize() {
	if p.Achievements != nil {
		filtered := FilterBlank(*p.Achievements)
		p.Achievements = &filtered
	}
	if p.Technologies != nil {
		filtered := FilterBlank(*p.Technologies)
		p.Technologies = &filtered
	}
}

// Normalize drops blank achievement and technology entries, the same
// filtering the admin form applies before submitting.
func (e *Experience) Normalize() {
	e.Achievements = datatypes.NewJSONSlice(FilterBlank(e.Achievements))
	e.Technologies = datatypes.NewJSONSlice(FilterBlank(e.Technologies))
}
