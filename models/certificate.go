package models

import (
	"time"

	"gorm.io/datatypes"
)

// Certificate represents one credential entry. At most one image is carried
// per certificate, embedded by value.
type Certificate struct {
	ID           int64                         `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title        string                        `json:"title" gorm:"type:text;not null"`
	Issuer       string                        `json:"issuer" gorm:"type:text"`
	Date         string                        `json:"date" gorm:"type:text"`
	Image        datatypes.JSONType[*ImageRef] `json:"image" gorm:"type:jsonb"`
	Description  string                        `json:"description" gorm:"type:text"`
	Skills       datatypes.JSONSlice[string]   `json:"skills" gorm:"type:jsonb"`
	CredentialID *string                       `json:"credentialId" gorm:"type:text"`
	VerifyURL    *string                       `json:"verifyUrl" gorm:"type:text"`
	CreatedAt    time.Time                     `json:"created_at,omitempty"`
}

type CertificatePatch struct {
	Title        *string    `json:"title,omitempty"`
	Issuer       *string    `json:"issuer,omitempty"`
	Date         *string    `json:"date,omitempty"`
	Image        **ImageRef `json:"image,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Skills       *[]string  `json:"skills,omitempty"`
	CredentialID **string   `json:"credentialId,omitempty"`
	VerifyURL    **string   `json:"verifyUrl,omitempty"`
}

func (p CertificatePatch) Apply(c *Certificate) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Issuer != nil {
		c.Issuer = *p.Issuer
	}
	if p.Date != nil {
		c.Date = *p.Date
	}
	if p.Image != nil {
		c.Image = datatypes.NewJSONType(*p.Image)
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Skills != nil {
		c.Skills = datatypes.NewJSONSlice(*p.Skills)
	}
	if p.CredentialID != nil {
		c.CredentialID = *p.CredentialID
	}
	if p.VerifyURL != nil {
		c.VerifyURL = *p.VerifyURL
	}
}

func (p CertificatePatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Issuer != nil {
		changes["issuer"] = *p.Issuer
	}
	if p.Date != nil {
		changes["date"] = *p.Date
	}
	if p.Image != nil {
		changes["image"] = datatypes.NewJSONType(*p.Image)
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Skills != nil {
		changes["skills"] = datatypes.NewJSONSlice(*p.Skills)
	}
	if p.CredentialID != nil {
		changes["credential_id"] = *p.CredentialID
	}
	if p.VerifyURL != nil {
		changes["verify_url"] = *p.VerifyURL
	}
	return changes
}

// Normalize drops blank skill entries when the patch sets them.
func (p *CertificatePatch) Normalize() {
	if p.Skills != nil {
		filtered := FilterBlank(*p.Skills)
		p.Skills = &filtered
	}
}

// Normalize drops blank skill entries before storage.
func (c *Certificate) Normalize() {
	c.Skills = datatypes.NewJSONSlice(FilterBlank(c.Skills))
}
