package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestFilterBlank(t *testing.T) {
	assert.Equal(t, []string{"Go", "React"}, FilterBlank([]string{"Go", "", "  ", "React"}))
	assert.Empty(t, FilterBlank([]string{"", "   "}))
	assert.Empty(t, FilterBlank(nil))
}

func TestExperiencePatchAppliesOnlySetFields(t *testing.T) {
	experience := Experience{
		ID:           42,
		Title:        "Asisten Praktikum",
		Company:      "Telkom University Jakarta",
		Location:     "Jakarta",
		Description:  "original description",
		Achievements: datatypes.NewJSONSlice([]string{"a", "b"}),
		Color:        "bg-green-500",
	}

	title := "Lead Assistant"
	patch := ExperiencePatch{Title: &title}
	patch.Apply(&experience)

	assert.Equal(t, "Lead Assistant", experience.Title)
	assert.Equal(t, "Telkom University Jakarta", experience.Company)
	assert.Equal(t, "Jakarta", experience.Location)
	assert.Equal(t, "original description", experience.Description)
	assert.Equal(t, []string{"a", "b"}, []string(experience.Achievements))
	assert.Equal(t, "bg-green-500", experience.Color)
	assert.EqualValues(t, 42, experience.ID)
}

func TestExperiencePatchChanges(t *testing.T) {
	title := "New Title"
	achievements := []string{"one", "two"}
	patch := ExperiencePatch{Title: &title, Achievements: &achievements}

	changes := patch.Changes()
	require.Len(t, changes, 2)
	assert.Equal(t, "New Title", changes["title"])
	assert.Contains(t, changes, "achievements")
}

func TestExperiencePatchNormalizeFiltersBlanks(t *testing.T) {
	achievements := []string{"kept", "", "  "}
	technologies := []string{"", "Go"}
	patch := ExperiencePatch{Achievements: &achievements, Technologies: &technologies}

	patch.Normalize()

	assert.Equal(t, []string{"kept"}, *patch.Achievements)
	assert.Equal(t, []string{"Go"}, *patch.Technologies)
}

func TestCertificatePatchImageAndCredential(t *testing.T) {
	certificate := Certificate{ID: 1, Title: "IT Essentials"}

	ref := &ImageRef{ID: "img_1_abc", Data: "data:image/jpeg;base64,xx", Name: "cert.jpg"}
	credential := "CRED-001"
	credentialPtr := &credential
	patch := CertificatePatch{Image: &ref, CredentialID: &credentialPtr}
	patch.Apply(&certificate)

	require.NotNil(t, certificate.Image.Data())
	assert.Equal(t, "img_1_abc", certificate.Image.Data().ID)
	require.NotNil(t, certificate.CredentialID)
	assert.Equal(t, "CRED-001", *certificate.CredentialID)
	assert.Equal(t, "IT Essentials", certificate.Title)

	// explicit clear: a set-to-nil image removes the embedded payload
	var cleared *ImageRef
	clearPatch := CertificatePatch{Image: &cleared}
	clearPatch.Apply(&certificate)
	assert.Nil(t, certificate.Image.Data())
}

func TestProjectLinksNormalized(t *testing.T) {
	empty := ""
	live := "https://example.com"
	links := ProjectLinks{Live: &live, Github: &empty, Figma: nil}

	normalized := links.Normalized()

	require.NotNil(t, normalized.Live)
	assert.Equal(t, "https://example.com", *normalized.Live)
	assert.Nil(t, normalized.Github)
	assert.Nil(t, normalized.Figma)
	assert.Nil(t, normalized.Report)
}

func TestProjectNormalize(t *testing.T) {
	empty := ""
	project := Project{
		Title:        "E-Commerce Dashboard",
		Category:     CategoryWebDev,
		Technologies: datatypes.NewJSONSlice([]string{"React.js", "", "Chart.js"}),
		Links:        datatypes.NewJSONType(ProjectLinks{Github: &empty}),
	}

	project.Normalize()

	assert.Equal(t, []string{"React.js", "Chart.js"}, []string(project.Technologies))
	assert.Nil(t, project.Links.Data().Github)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(CategoryWebDev))
	assert.True(t, ValidCategory(CategoryUIUX))
	assert.True(t, ValidCategory(CategoryResearch))
	assert.True(t, ValidCategory(CategoryMobile))
	assert.False(t, ValidCategory("Machine Learning"))
	assert.False(t, ValidCategory(""))
}

func TestSeedDataReturnsFreshCopies(t *testing.T) {
	first := DefaultExperiences()
	first[0].Title = "mutated"
	second := DefaultExperiences()
	assert.NotEqual(t, "mutated", second[0].Title)

	require.Len(t, DefaultCertificates(), 7)
	require.Len(t, DefaultProjects(), 2)
	require.Len(t, first, 7)
}

func TestCertificateJSONShape(t *testing.T) {
	certificates := DefaultCertificates()
	data, err := json.Marshal(certificates[0])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "credentialId")
	assert.Contains(t, decoded, "verifyUrl")

	image, ok := decoded["image"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "cert_it_essentials", image["id"])
}
