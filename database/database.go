package database

import (
	"fmt"
	stdlog "log"
	"net/url"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/raihanzaky/portfolio-backend/config"
	"github.com/raihanzaky/portfolio-backend/models"
)

// Database bundles the per-collection repositories sharing one GORM instance.
type Database struct {
	experienceRepo  *ExperienceRepo
	certificateRepo *CertificateRepo
	projectRepo     *ProjectRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		experienceRepo:  NewExperienceRepo(db),
		certificateRepo: NewCertificateRepo(db),
		projectRepo:     NewProjectRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) CertificateRepo() *CertificateRepo {
	return d.certificateRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

// Open connects to the hosted backend described by the remote config. The
// endpoint URL names the project host; the access key doubles as the
// database password, following the hosted-Postgres connection convention.
func Open(remote config.Remote) (Database, error) {
	host := remote.URL
	if parsed, err := url.Parse(remote.URL); err == nil && parsed.Host != "" {
		host = parsed.Host
	}

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		host, "postgres", remote.Key, "postgres", "5432")

	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return Database{}, fmt.Errorf("connecting to remote backend: %w", err)
	}

	if err := db.AutoMigrate(&models.Experience{}, &models.Certificate{}, &models.Project{}); err != nil {
		return Database{}, fmt.Errorf("migrating remote schema: %w", err)
	}

	return New(db), nil
}
