package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/raihanzaky/portfolio-backend/models"
)

type CertificateRepo struct {
	db *gorm.DB
}

func NewCertificateRepo(db *gorm.DB) *CertificateRepo {
	return &CertificateRepo{db}
}

// FindAll returns all certificates ordered by creation time, newest first
func (r *CertificateRepo) FindAll(ctx context.Context) ([]models.Certificate, error) {
	var certificates []models.Certificate
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&certificates).Error
	if err != nil {
		return nil, err
	}
	return certificates, nil
}

// Add inserts a new certificate and leaves the stored row in certificate.
func (r *CertificateRepo) Add(ctx context.Context, certificate *models.Certificate) error {
	return r.db.WithContext(ctx).Create(certificate).Error
}

// Update applies a partial-field update by id and returns the updated row.
func (r *CertificateRepo) Update(ctx context.Context, id int64, patch models.CertificatePatch) (*models.Certificate, error) {
	err := r.db.WithContext(ctx).
		Model(&models.Certificate{}).
		Where("id = ?", id).
		Updates(patch.Changes()).Error
	if err != nil {
		return nil, err
	}

	var certificate models.Certificate
	if err := r.db.WithContext(ctx).First(&certificate, id).Error; err != nil {
		return nil, err
	}
	return &certificate, nil
}

// Delete removes a certificate by id
func (r *CertificateRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Certificate{}, id).Error
}
