package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/pranayh24/verdict-ventures/app/models"
)

// DocumentRepository defines the interface for document-related database operations
type DocumentRepository interface {
	Create(doc *models.Document) error
	GetByUUID(uuid string) (*models.Document, error)
	GetByContentHash(hash string) (*models.Document, error)
	List(offset, limit int) ([]models.Document, error)
	Count() (int64, error)
	CountCreatedSince(since time.Time) (int64, error)
}

// Repositories holds all repository instances
type Repositories struct {
	Document DocumentRepository
}

// NewRepositories creates all repositories with the given database connection
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Document: NewDocumentRepository(db),
	}
}
