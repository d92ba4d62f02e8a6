package scraper

import (
	"time"

	"go-jobpulse-automation/internal/models"
)

// Assemble merges per-country results into the canonical document shape and
// stamps the generation time. Pure merge, no extraction logic: every result
// handed in appears in the output exactly once, keyed by country name.
func Assemble(results []models.CountryResult, generatedAt time.Time) models.ScrapeDocument {
	doc := models.ScrapeDocument{
		Countries:   make(map[string]models.CountryResult, len(results)),
		LastUpdated: models.Timestamp(generatedAt),
	}
	for _, result := range results {
		if result.JobListings == nil {
			result.JobListings = []models.JobListing{}
		}
		doc.Countries[result.Country] = result
	}
	return doc
}
