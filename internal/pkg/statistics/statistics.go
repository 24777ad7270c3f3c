package statistics

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/pranayh24/verdict-ventures/app/repository"
	"github.com/pranayh24/verdict-ventures/internal/pkg/cache"
)

const (
	CacheKeyDocumentsTotal = "statistics:documents:total"
	CacheKeyDocumentsDaily = "statistics:documents:daily:%s" // Format with date YYYY-MM-DD
	CacheExpiration        = 30 * time.Minute
)

// StatisticsData holds the submission counters shown after an analysis
type StatisticsData struct {
	TotalDocuments int
	TodayDocuments int
}

var (
	documentRepo        repository.DocumentRepository
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// Initialize wires the statistics package to the document repository
func Initialize(repo repository.DocumentRepository) {
	documentRepo = repo
}

// ShouldUpdateCache reports whether the counters are due for a refresh
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cached counters when the refresh
// interval has passed
func UpdateCacheIfNeeded() {
	if !ShouldUpdateCache() {
		return
	}

	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	if err := UpdateStatisticsCache(); err != nil {
		log.Printf("Failed to update statistics cache: %v", err)
		return
	}
	lastCacheUpdate = time.Now()
}

// UpdateStatisticsCache queries the repository and writes fresh counters
// to the cache
func UpdateStatisticsCache() error {
	if documentRepo == nil {
		return fmt.Errorf("statistics: repository not initialized")
	}

	total, err := documentRepo.Count()
	if err != nil {
		return fmt.Errorf("count documents: %w", err)
	}

	now := time.Now()
	today, err := documentRepo.CountCreatedSince(startOfDay(now))
	if err != nil {
		return fmt.Errorf("count today's documents: %w", err)
	}

	if err := cache.Set(CacheKeyDocumentsTotal, total, CacheExpiration); err != nil {
		return err
	}
	return cache.Set(dailyCacheKey(now), today, CacheExpiration)
}

// GetStatistics returns the cached counters, falling back to zero values
// when the cache is cold or unreachable
func GetStatistics() StatisticsData {
	var data StatisticsData

	if total, err := cache.GetInt(CacheKeyDocumentsTotal); err == nil {
		data.TotalDocuments = total
	}

	if today, err := cache.GetInt(dailyCacheKey(time.Now())); err == nil {
		data.TodayDocuments = today
	}

	return data
}

// dailyCacheKey derives the counter key for the calendar day of t. Writers
// and readers must use the same derivation or the counter reads as zero.
func dailyCacheKey(t time.Time) string {
	return fmt.Sprintf(CacheKeyDocumentsDaily, t.Format("2006-01-02"))
}

// startOfDay returns midnight of t's calendar day in t's location
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
