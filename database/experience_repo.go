package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/raihanzaky/portfolio-backend/models"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

// FindAll returns all experiences ordered by creation time, newest first
func (r *ExperienceRepo) FindAll(ctx context.Context) ([]models.Experience, error) {
	var experiences []models.Experience
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&experiences).Error
	if err != nil {
		return nil, err
	}
	return experiences, nil
}

// Add inserts a new experience. The backend may rewrite the identifier; the
// stored row is left in experience.
func (r *ExperienceRepo) Add(ctx context.Context, experience *models.Experience) error {
	return r.db.WithContext(ctx).Create(experience).Error
}

// Update applies a partial-field update by id and returns the updated row.
func (r *ExperienceRepo) Update(ctx context.Context, id int64, patch models.ExperiencePatch) (*models.Experience, error) {
	err := r.db.WithContext(ctx).
		Model(&models.Experience{}).
		Where("id = ?", id).
		Updates(patch.Changes()).Error
	if err != nil {
		return nil, err
	}

	var experience models.Experience
	if err := r.db.WithContext(ctx).First(&experience, id).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

// Delete removes an experience by id
func (r *ExperienceRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Experience{}, id).Error
}
