package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/pranayh24/verdict-ventures/app/models"
)

// documentRepository implements the DocumentRepository interface
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository instance
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Create stores a new document in the database
func (r *documentRepository) Create(doc *models.Document) error {
	return r.db.Create(doc).Error
}

// GetByUUID retrieves a document by its UUID
func (r *documentRepository) GetByUUID(uuid string) (*models.Document, error) {
	var doc models.Document
	if err := r.db.Where("uuid = ?", uuid).First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetByContentHash retrieves the most recent document with the given content hash
func (r *documentRepository) GetByContentHash(hash string) (*models.Document, error) {
	var doc models.Document
	if err := r.db.Where("content_hash = ?", hash).Order("created_at DESC").First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// List retrieves documents ordered by creation time, newest first
func (r *documentRepository) List(offset, limit int) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&docs).Error
	return docs, err
}

// Count returns the total number of stored documents
func (r *documentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Document{}).Count(&count).Error
	return count, err
}

// CountCreatedSince returns how many documents were stored at or after the given time
func (r *documentRepository) CountCreatedSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Document{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
