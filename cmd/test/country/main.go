// Single-country test harness: scrapes one country (first positional
// argument, defaulting to the first configured country) and writes the
// result to data/test_data.json.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go-jobpulse-automation/internal/browser"
	"go-jobpulse-automation/internal/config"
	"go-jobpulse-automation/internal/fallback"
	"go-jobpulse-automation/internal/models"
	"go-jobpulse-automation/internal/scraper"
	"go-jobpulse-automation/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	country := cfg.Countries[0].Name
	if len(os.Args) > 1 {
		country = os.Args[1]
	}
	log.Printf("🧪 Test scrape for %s", country)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var sessions scraper.SessionFactory
	manager, err := browser.NewManager(cfg)
	if err != nil {
		log.Printf("⚠️ Browser unavailable: %v. Result will be fallback-generated.", err)
		sessions = noSessions{}
	} else {
		defer manager.Close()
		sessions = manager
	}

	gen := fallback.New(cfg.JobTitle, cfg.MaxListings)
	orch := scraper.New(cfg, sessions, gen)

	result := orch.ScrapeCountry(ctx, country)
	doc := scraper.Assemble([]models.CountryResult{result}, time.Now())

	outputPath := "data/test_data.json"
	if err := store.SaveDocument(doc, outputPath); err != nil {
		log.Fatalf("❌ Failed to save test data: %v", err)
	}
	log.Printf("📁 Test data saved to %s", outputPath)
}

type noSessions struct{}

func (noSessions) NewPage(ctx context.Context) (scraper.PageClient, error) {
	return nil, fmt.Errorf("browser unavailable")
}
