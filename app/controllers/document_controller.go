package controllers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"gorm.io/gorm"

	"github.com/pranayh24/verdict-ventures/app/models"
	"github.com/pranayh24/verdict-ventures/app/repository"
	"github.com/pranayh24/verdict-ventures/internal/pkg/cache"
	"github.com/pranayh24/verdict-ventures/internal/pkg/statistics"
	"github.com/pranayh24/verdict-ventures/internal/pkg/summarizer"
)

const summaryCacheExpiration = 24 * time.Hour

var documentRepo repository.DocumentRepository

// InitializeDocumentController wires the document controller to the global
// repository factory
func InitializeDocumentController() {
	documentRepo = repository.GetGlobalFactory().GetDocumentRepository()
}

// HandleDocumentSubmit processes the submission form: validate, summarize,
// store, and render the analysis result.
func HandleDocumentSubmit(c *fiber.Ctx) error {
	doc := &models.Document{
		Title:   strings.TrimSpace(c.FormValue("title")),
		Content: strings.TrimSpace(c.FormValue("content")),
	}

	if err := doc.Validate(); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Please provide a title (at least 3 characters) and the document text.",
		}
		return flash.WithError(c, fm).Redirect("/form")
	}

	hash := sha256.Sum256([]byte(doc.Content))
	doc.ContentHash = hex.EncodeToString(hash[:])
	doc.Summary = summarizeWithCache(doc.ContentHash, doc.Content)

	if err := documentRepo.Create(doc); err != nil {
		log.Printf("Failed to store document: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to store document")
	}

	statistics.UpdateCacheIfNeeded()
	stats := statistics.GetStatistics()

	return c.Render("summary", fiber.Map{
		"Title":    "Analysis Result",
		"Flash":    flash.Get(c),
		"Document": doc,
		"Stats":    stats,
	}, "layouts/main")
}

// HandleDocumentList renders the most recent submissions
func HandleDocumentList(c *fiber.Ctx) error {
	docs, err := documentRepo.List(0, 20)
	if err != nil {
		log.Printf("Failed to list documents: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to list documents")
	}

	return c.Render("documents", fiber.Map{
		"Title":     "Recent Submissions",
		"Flash":     flash.Get(c),
		"Documents": docs,
	}, "layouts/main")
}

// HandleDocumentShow renders a stored document with its summary
func HandleDocumentShow(c *fiber.Ctx) error {
	doc, err := documentRepo.GetByUUID(c.Params("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Document not found")
		}
		log.Printf("Failed to load document: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load document")
	}

	return c.Render("document", fiber.Map{
		"Title":    doc.Title,
		"Flash":    flash.Get(c),
		"Document": doc,
	}, "layouts/main")
}

// summarizeWithCache returns the summary for identical content when one is
// already known, computing and caching it otherwise.
func summarizeWithCache(contentHash, content string) string {
	key := "document:summary:" + contentHash

	if cached, err := cache.Get(key); err == nil && cached != "" {
		return cached
	}

	// Cache cold: an identical document may already be stored.
	if existing, err := documentRepo.GetByContentHash(contentHash); err == nil && existing.Summary != "" {
		return existing.Summary
	}

	summary := summarizer.Summarize(content, summarizer.DefaultOptions())
	if err := cache.Set(key, summary, summaryCacheExpiration); err != nil {
		log.Printf("Failed to cache summary: %v", err)
	}
	return summary
}
