package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/raihanzaky/portfolio-backend/models"
)

// fakeLocal is an in-memory durable medium with the same seed-or-saved
// semantics as the sqlite store.
type fakeLocal struct {
	experiences  []models.Experience
	certificates []models.Certificate
	projects     []models.Project

	hasExperiences  bool
	hasCertificates bool
	hasProjects     bool

	saveCalls int
}

func (f *fakeLocal) LoadExperiences() ([]models.Experience, error) {
	if !f.hasExperiences {
		return models.DefaultExperiences(), nil
	}
	return append([]models.Experience{}, f.experiences...), nil
}

func (f *fakeLocal) SaveExperiences(experiences []models.Experience) error {
	f.experiences = append([]models.Experience{}, experiences...)
	f.hasExperiences = true
	f.saveCalls++
	return nil
}

func (f *fakeLocal) LoadCertificates() ([]models.Certificate, error) {
	if !f.hasCertificates {
		return models.DefaultCertificates(), nil
	}
	return append([]models.Certificate{}, f.certificates...), nil
}

func (f *fakeLocal) SaveCertificates(certificates []models.Certificate) error {
	f.certificates = append([]models.Certificate{}, certificates...)
	f.hasCertificates = true
	f.saveCalls++
	return nil
}

func (f *fakeLocal) LoadProjects() ([]models.Project, error) {
	if !f.hasProjects {
		return models.DefaultProjects(), nil
	}
	return append([]models.Project{}, f.projects...), nil
}

func (f *fakeLocal) SaveProjects(projects []models.Project) error {
	f.projects = append([]models.Project{}, projects...)
	f.hasProjects = true
	f.saveCalls++
	return nil
}

// MockExperienceBackend is a mock implementation of ExperienceBackend
type MockExperienceBackend struct {
	mock.Mock
}

func (m *MockExperienceBackend) FindAll(ctx context.Context) ([]models.Experience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Experience), args.Error(1)
}

func (m *MockExperienceBackend) Add(ctx context.Context, experience *models.Experience) error {
	args := m.Called(ctx, experience)
	return args.Error(0)
}

func (m *MockExperienceBackend) Update(ctx context.Context, id int64, patch models.ExperiencePatch) (*models.Experience, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Experience), args.Error(1)
}

func (m *MockExperienceBackend) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCertificateBackend is a mock implementation of CertificateBackend
type MockCertificateBackend struct {
	mock.Mock
}

func (m *MockCertificateBackend) FindAll(ctx context.Context) ([]models.Certificate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Certificate), args.Error(1)
}

func (m *MockCertificateBackend) Add(ctx context.Context, certificate *models.Certificate) error {
	args := m.Called(ctx, certificate)
	return args.Error(0)
}

func (m *MockCertificateBackend) Update(ctx context.Context, id int64, patch models.CertificatePatch) (*models.Certificate, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Certificate), args.Error(1)
}

func (m *MockCertificateBackend) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProjectBackend is a mock implementation of ProjectBackend
type MockProjectBackend struct {
	mock.Mock
}

func (m *MockProjectBackend) FindAll(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectBackend) Add(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectBackend) Update(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectBackend) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newMockedRemote() (*Remote, *MockExperienceBackend, *MockCertificateBackend, *MockProjectBackend) {
	experiences := new(MockExperienceBackend)
	certificates := new(MockCertificateBackend)
	projects := new(MockProjectBackend)
	return &Remote{
		Experiences:  experiences,
		Certificates: certificates,
		Projects:     projects,
	}, experiences, certificates, projects
}

func fixedClock() func() time.Time {
	t := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func TestInitLocalModeWhenRemoteNotConfigured(t *testing.T) {
	local := &fakeLocal{}
	s := New(local, nil)

	require.NoError(t, s.Init(context.Background()))

	assert.Equal(t, ModeLocal, s.Mode())
	assert.True(t, s.Ready())
	assert.Equal(t, models.DefaultExperiences(), s.Experiences())
	assert.Equal(t, models.DefaultCertificates(), s.Certificates())
	assert.Equal(t, models.DefaultProjects(), s.Projects())
}

func TestInitDatabaseModeUsesFetchedRows(t *testing.T) {
	remote, experiences, certificates, projects := newMockedRemote()
	fetched := []models.Experience{{ID: 99, Title: "Backend Engineer"}}
	experiences.On("FindAll", mock.Anything).Return(fetched, nil)
	certificates.On("FindAll", mock.Anything).Return([]models.Certificate{}, nil)
	projects.On("FindAll", mock.Anything).Return([]models.Project{{ID: 5, Title: "Remote Project"}}, nil)

	s := New(&fakeLocal{}, remote)
	require.NoError(t, s.Init(context.Background()))

	assert.Equal(t, ModeDatabase, s.Mode())
	assert.Equal(t, fetched, s.Experiences())
	// empty remote collection falls back to the seed dataset
	assert.Equal(t, models.DefaultCertificates(), s.Certificates())
	require.Len(t, s.Projects(), 1)
	assert.Equal(t, "Remote Project", s.Projects()[0].Title)
}

func TestInitFallsBackToLocalWhenAnyFetchFails(t *testing.T) {
	remote, experiences, certificates, projects := newMockedRemote()
	experiences.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))
	certificates.On("FindAll", mock.Anything).Return([]models.Certificate{}, nil).Maybe()
	projects.On("FindAll", mock.Anything).Return([]models.Project{}, nil).Maybe()

	local := &fakeLocal{hasProjects: true, projects: []models.Project{{ID: 7, Title: "Saved Project"}}}
	s := New(local, remote)
	require.NoError(t, s.Init(context.Background()))

	assert.Equal(t, ModeLocal, s.Mode())
	// collections equal exactly what the local load procedure produces
	assert.Equal(t, models.DefaultExperiences(), s.Experiences())
	require.Len(t, s.Projects(), 1)
	assert.Equal(t, "Saved Project", s.Projects()[0].Title)
}

func TestAddThenDeleteLeavesLengthUnchanged(t *testing.T) {
	local := &fakeLocal{}
	s := New(local, nil, WithClock(fixedClock()))
	require.NoError(t, s.Init(context.Background()))

	before := len(s.Experiences())
	created := s.AddExperience(context.Background(), models.Experience{Title: "New Role"})
	assert.Len(t, s.Experiences(), before+1)

	assert.True(t, s.DeleteExperience(context.Background(), created.ID))
	assert.Len(t, s.Experiences(), before)
}

func TestAddAssignsClientSideIdentifier(t *testing.T) {
	clock := fixedClock()
	s := New(&fakeLocal{}, nil, WithClock(clock))
	require.NoError(t, s.Init(context.Background()))

	created := s.AddProject(context.Background(), models.Project{Title: "Portfolio Site", Category: models.CategoryWebDev})
	assert.Equal(t, clock().UnixMilli(), created.ID)
}

func TestLocalAddAppendsToCollection(t *testing.T) {
	s := New(&fakeLocal{}, nil)
	require.NoError(t, s.Init(context.Background()))

	created := s.AddExperience(context.Background(), models.Experience{Title: "Latest Role"})

	experiences := s.Experiences()
	assert.Equal(t, created.ID, experiences[len(experiences)-1].ID)
	assert.NotEqual(t, created.ID, experiences[0].ID)
}

func TestLocalAddPersistsWholeCollection(t *testing.T) {
	local := &fakeLocal{hasCertificates: true}
	s := New(local, nil)
	require.NoError(t, s.Init(context.Background()))

	s.AddCertificate(context.Background(), models.Certificate{Title: "Go Certification"})

	require.Len(t, local.certificates, 1)
	assert.Equal(t, "Go Certification", local.certificates[0].Title)
}

func TestUpdateChangesOnlyNamedFieldAndRecord(t *testing.T) {
	local := &fakeLocal{}
	s := New(local, nil)
	require.NoError(t, s.Init(context.Background()))

	experiences := s.Experiences()
	require.True(t, len(experiences) >= 2)
	target := experiences[0]
	other := experiences[1]

	title := "Renamed Role"
	updated, ok := s.UpdateExperience(context.Background(), target.ID, models.ExperiencePatch{Title: &title})
	require.True(t, ok)

	assert.Equal(t, "Renamed Role", updated.Title)
	assert.Equal(t, target.Company, updated.Company)
	assert.Equal(t, target.Period, updated.Period)
	assert.Equal(t, []string(target.Achievements), []string(updated.Achievements))

	// every other record untouched
	after := s.Experiences()
	assert.Equal(t, other, after[1])
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	s := New(&fakeLocal{}, nil)
	require.NoError(t, s.Init(context.Background()))

	title := "ghost"
	_, ok := s.UpdateExperience(context.Background(), 123456789, models.ExperiencePatch{Title: &title})
	assert.False(t, ok)
}

func TestDatabaseAddReplacesOptimisticRecordWithBackendRow(t *testing.T) {
	remote, experiences, certificates, projects := newMockedRemote()
	experiences.On("FindAll", mock.Anything).Return([]models.Experience{{ID: 1, Title: "Existing"}}, nil)
	certificates.On("FindAll", mock.Anything).Return([]models.Certificate{{ID: 1}}, nil)
	projects.On("FindAll", mock.Anything).Return([]models.Project{{ID: 1}}, nil)

	// the backend rewrites the client-assigned identifier
	experiences.On("Add", mock.Anything, mock.AnythingOfType("*models.Experience")).
		Run(func(args mock.Arguments) {
			stored := args.Get(1).(*models.Experience)
			stored.ID = 777
		}).
		Return(nil)

	local := &fakeLocal{}
	s := New(local, remote, WithClock(fixedClock()))
	require.NoError(t, s.Init(context.Background()))

	created := s.AddExperience(context.Background(), models.Experience{Title: "New Role"})

	assert.EqualValues(t, 777, created.ID)
	require.Len(t, s.Experiences(), 2)
	assert.EqualValues(t, 777, s.Experiences()[0].ID)
	// database mode never mirrors into the durable store
	assert.Zero(t, local.saveCalls)
}

func TestDatabaseAddFailureKeepsRecordInMemoryOnly(t *testing.T) {
	remote, experiences, certificates, projects := newMockedRemote()
	experiences.On("FindAll", mock.Anything).Return([]models.Experience{{ID: 1, Title: "Existing"}}, nil)
	certificates.On("FindAll", mock.Anything).Return([]models.Certificate{{ID: 1}}, nil)
	projects.On("FindAll", mock.Anything).Return([]models.Project{{ID: 1}}, nil)
	experiences.On("Add", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	local := &fakeLocal{}
	clock := fixedClock()
	s := New(local, remote, WithClock(clock))
	require.NoError(t, s.Init(context.Background()))

	created := s.AddExperience(context.Background(), models.Experience{Title: "Doomed Role"})

	// the optimistic record keeps its client-side identifier and stays in memory
	assert.Equal(t, clock().UnixMilli(), created.ID)
	require.Len(t, s.Experiences(), 2)
	assert.Equal(t, "Doomed Role", s.Experiences()[0].Title)
	// nothing reached the durable store either: the record is lost on restart
	assert.Zero(t, local.saveCalls)
	assert.False(t, local.hasExperiences)
}

func TestDatabaseUpdateFailureMergesLocally(t *testing.T) {
	remote, experiences, certificates, projects := newMockedRemote()
	seeded := []models.Experience{{
		ID:           1,
		Title:        "Original",
		Company:      "Acme",
		Achievements: datatypes.NewJSONSlice([]string{"kept"}),
	}}
	experiences.On("FindAll", mock.Anything).Return(seeded, nil)
	certificates.On("FindAll", mock.Anything).Return([]models.Certificate{{ID: 1}}, nil)
	projects.On("FindAll", mock.Anything).Return([]models.Project{{ID: 1}}, nil)
	experiences.On("Update", mock.Anything, int64(1), mock.Anything).Return(nil, errors.New("update failed"))

	s := New(&fakeLocal{}, remote)
	require.NoError(t, s.Init(context.Background()))

	title := "Patched"
	updated, ok := s.UpdateExperience(context.Background(), 1, models.ExperiencePatch{Title: &title})

	require.True(t, ok)
	assert.Equal(t, "Patched", updated.Title)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, []string{"kept"}, []string(updated.Achievements))
}

func TestDatabaseUpdateSuccessUsesBackendRow(t *testing.T) {
	remote, experiences, certificates, projects := newMockedRemote()
	experiences.On("FindAll", mock.Anything).Return([]models.Experience{{ID: 1, Title: "Original"}}, nil)
	certificates.On("FindAll", mock.Anything).Return([]models.Certificate{{ID: 1}}, nil)
	projects.On("FindAll", mock.Anything).Return([]models.Project{{ID: 1}}, nil)

	backendRow := &models.Experience{ID: 1, Title: "Backend Truth", Company: "Backend Co"}
	experiences.On("Update", mock.Anything, int64(1), mock.Anything).Return(backendRow, nil)

	s := New(&fakeLocal{}, remote)
	require.NoError(t, s.Init(context.Background()))

	title := "Patched"
	updated, ok := s.UpdateExperience(context.Background(), 1, models.ExperiencePatch{Title: &title})

	require.True(t, ok)
	assert.Equal(t, "Backend Truth", updated.Title)
	assert.Equal(t, "Backend Co", s.Experiences()[0].Company)
}

func TestDatabaseDeleteIsUnconditionalLocally(t *testing.T) {
	remote, experiences, certificates, projects := newMockedRemote()
	experiences.On("FindAll", mock.Anything).Return([]models.Experience{{ID: 1}}, nil)
	certificates.On("FindAll", mock.Anything).Return([]models.Certificate{{ID: 1}}, nil)
	projects.On("FindAll", mock.Anything).Return([]models.Project{{ID: 3, Title: "To Delete"}}, nil)
	projects.On("Delete", mock.Anything, int64(3)).Return(errors.New("delete failed"))

	s := New(&fakeLocal{}, remote)
	require.NoError(t, s.Init(context.Background()))

	assert.True(t, s.DeleteProject(context.Background(), 3))
	assert.Empty(t, s.Projects())
	projects.AssertCalled(t, "Delete", mock.Anything, int64(3))
}

func TestLocalDeletePersists(t *testing.T) {
	local := &fakeLocal{hasProjects: true, projects: []models.Project{{ID: 3, Title: "Saved"}}}
	s := New(local, nil)
	require.NoError(t, s.Init(context.Background()))

	assert.True(t, s.DeleteProject(context.Background(), 3))
	assert.Empty(t, local.projects)
	assert.False(t, s.DeleteProject(context.Background(), 3))
}
