package models

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pranayh24/verdict-ventures/internal/pkg/summarizer"
)

// Document is a legal document submitted for analysis, stored together
// with its extractive summary.
type Document struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UUID        string         `gorm:"type:varchar(36);uniqueIndex" json:"uuid"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=3,max=255"`
	Content     string         `gorm:"type:longtext;not null" json:"content" validate:"required"`
	Summary     string         `gorm:"type:text" json:"summary"`
	ContentHash string         `gorm:"type:char(64);index" json:"-"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Document) TableName() string {
	return "documents"
}

func (d *Document) Validate() error {
	v := validator.New()
	if err := v.Struct(d); err != nil {
		return err
	}
	if !contentHasSentence(d.Content) {
		return errors.New("document content must contain at least one sentence")
	}
	return nil
}

// contentHasSentence reports whether the content holds at least one
// sentence of three or more words, the minimum the summarizer can work
// with.
func contentHasSentence(content string) bool {
	for _, sentence := range summarizer.SplitSentences(content) {
		if len(strings.Fields(sentence)) >= 3 {
			return true
		}
	}
	return false
}

// BeforeCreate assigns a UUID if none is set yet
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.UUID == "" {
		d.UUID = uuid.New().String()
	}
	return nil
}
