package infrastructure

import (
	"fmt"

	"github.com/yourusername/ytd-go/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteHistoryRepository stores download run history in SQLite
type SQLiteHistoryRepository struct {
	db *gorm.DB
}

// NewSQLiteHistoryRepository creates a new SQLite history repository
func NewSQLiteHistoryRepository(dbPath string) (*SQLiteHistoryRepository, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&domain.Download{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteHistoryRepository{db: db}, nil
}

// Create creates a new download record
func (r *SQLiteHistoryRepository) Create(download *domain.Download) error {
	return r.db.Create(download).Error
}

// Update updates an existing download record
func (r *SQLiteHistoryRepository) Update(download *domain.Download) error {
	return r.db.Save(download).Error
}

// FindByID finds a download record by ID
func (r *SQLiteHistoryRepository) FindByID(id string) (*domain.Download, error) {
	var download domain.Download
	err := r.db.First(&download, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &download, nil
}

// FindAll returns records ordered newest first, optionally filtered by status
func (r *SQLiteHistoryRepository) FindAll(status domain.DownloadStatus) ([]*domain.Download, error) {
	var downloads []*domain.Download
	query := r.db
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&downloads).Error
	return downloads, err
}

// CountByStatus returns the number of records by status
func (r *SQLiteHistoryRepository) CountByStatus(status domain.DownloadStatus) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Download{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Close closes the database connection
func (r *SQLiteHistoryRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
