package scraper

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go-jobpulse-automation/internal/challenge"
	"go-jobpulse-automation/internal/config"
	"go-jobpulse-automation/internal/extract"
	"go-jobpulse-automation/internal/fallback"
	"go-jobpulse-automation/internal/models"
	"go-jobpulse-automation/utils"
)

// countryState is the per-country extraction mode. It is threaded through
// the metric loop as a value, never shared between countries: every country
// starts Live and may flip to Fallback exactly once.
type countryState int

const (
	stateLive countryState = iota
	stateFallback
)

// Orchestrator drives the per-country, per-metric scrape sequence and
// guarantees a complete, schema-valid result for every configured country,
// whatever the live source does.
type Orchestrator struct {
	cfg      *config.Config
	sessions SessionFactory
	gen      *fallback.Generator
	listSel  extract.ListingSelectors
}

func New(cfg *config.Config, sessions SessionFactory, gen *fallback.Generator) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		sessions: sessions,
		gen:      gen,
		listSel:  extract.DefaultListingSelectors(),
	}
}

// Run processes every configured country and assembles the final document.
// Countries run independently; parallelism above 1 gives each worker its own
// isolated session, while metrics within a country stay sequential because
// the Fallback transition depends on the previous metric's outcome.
func (o *Orchestrator) Run(ctx context.Context) models.ScrapeDocument {
	results := make([]models.CountryResult, len(o.cfg.Countries))

	workers := o.cfg.Parallelism
	if workers > len(o.cfg.Countries) {
		workers = len(o.cfg.Countries)
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, country := range o.cfg.Countries {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = o.scrapeCountrySafe(ctx, name)
		}(i, country.Name)
	}
	wg.Wait()

	return Assemble(results, time.Now())
}

// scrapeCountrySafe never lets a country-level catastrophe escape: the
// assembler must receive a result for every country, so a panic degrades to
// an all-fallback result.
func (o *Orchestrator) scrapeCountrySafe(ctx context.Context, name string) (result models.CountryResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Unexpected failure scraping %s: %v. Substituting fallback data.", name, r)
			result = o.allFallbackResult(name)
		}
	}()
	return o.ScrapeCountry(ctx, name)
}

// ScrapeCountry runs the full metric sequence for one country: the three
// recency windows, the remote/on-site pair, then sample listings. A country
// outside the configured table is a caller error and yields a zeroed result
// rather than an error past this boundary.
func (o *Orchestrator) ScrapeCountry(ctx context.Context, name string) models.CountryResult {
	country, ok := o.cfg.CountryByName(name)
	if !ok {
		log.Printf("❌ No configuration found for country: %s", name)
		return models.CountryResult{
			Country:     name,
			Provenance:  models.ProvenanceSynthetic,
			JobListings: []models.JobListing{},
		}
	}

	log.Printf("🌍 Starting scrape for %s", name)

	result := models.CountryResult{Country: name, JobListings: []models.JobListing{}}
	state := stateLive
	liveMetrics, fallbackMetrics := 0, 0

	page, err := o.sessions.NewPage(ctx)
	if err != nil {
		log.Printf("⚠️ Could not open a session for %s: %v. Using fallback data.", name, err)
		state = stateFallback
	} else {
		defer page.Close()
	}

	//recency windows
	for _, window := range models.Windows() {
		if state == stateLive {
			outcome := o.fetchCount(ctx, page, config.QueryURL(country, window.Days()))
			if outcome.Kind == models.OutcomeCount {
				result.SetWindow(window, outcome.Count)
				liveMetrics++
				log.Printf("  ✅ %s %s: %d jobs (live)", name, window, outcome.Count)
				o.pace()
				continue
			}
			// Challenged and NotFound are the same signal here: the
			// session is burned, stop spending time on live attempts.
			log.Printf("  🛡️ %s %s: live extraction unavailable (%s), switching to fallback", name, window, outcomeLabel(outcome))
			state = stateFallback
		}
		count := o.gen.Count(country, window)
		result.SetWindow(window, count)
		fallbackMetrics++
		log.Printf("  🎲 %s %s: %d jobs (fallback)", name, window, count)
	}

	//remote vs on-site
	if state == stateLive {
		outcome := o.fetchCount(ctx, page, country.RemoteURL)
		if outcome.Kind == models.OutcomeCount {
			result.Remote = outcome.Count
			result.OnSite = maxInt(0, result.Last30d-result.Remote)
			liveMetrics += 2
			log.Printf("  ✅ %s remote/on-site: %d/%d (live)", name, result.Remote, result.OnSite)
			o.pace()
		} else {
			log.Printf("  🛡️ %s remote count unavailable (%s), switching to fallback", name, outcomeLabel(outcome))
			state = stateFallback
		}
	}
	if state == stateFallback && result.Remote == 0 && result.OnSite == 0 {
		// Split from whatever 30d total the run already holds so
		// remote + on_site == last_30d survives a mid-country flip.
		result.Remote, result.OnSite = o.gen.RemoteSplit(country, result.Last30d)
		fallbackMetrics += 2
		log.Printf("  🎲 %s remote/on-site: %d/%d (fallback)", name, result.Remote, result.OnSite)
	}

	//sample listings
	if state == stateLive {
		listings := o.liveListings(ctx, page, country)
		if len(listings) > 0 {
			result.JobListings = listings
			log.Printf("  ✅ %s: collected %d live listings", name, len(listings))
		} else {
			result.JobListings = o.gen.Listings(country)
			log.Printf("  🎲 %s: fabricated %d listings", name, len(result.JobListings))
		}
	} else {
		result.JobListings = o.gen.Listings(country)
		log.Printf("  🎲 %s: fabricated %d listings", name, len(result.JobListings))
	}

	switch {
	case fallbackMetrics == 0:
		result.Provenance = models.ProvenanceLive
	case liveMetrics == 0:
		result.Provenance = models.ProvenanceSynthetic
	default:
		result.Provenance = models.ProvenanceMixed
	}

	log.Printf("🏁 Completed %s: 24h=%d 7d=%d 30d=%d remote=%d on_site=%d (%s)",
		name, result.Last24h, result.Last7d, result.Last30d, result.Remote, result.OnSite, result.Provenance)
	return result
}

// fetchCount performs one metric fetch: navigate, settle the page, classify,
// extract. Transport failures and challenges collapse into non-Count
// outcomes; nothing is raised past this boundary.
func (o *Orchestrator) fetchCount(ctx context.Context, page PageClient, url string) models.ExtractionOutcome {
	if page == nil {
		return models.ChallengedOutcome()
	}

	navCtx, cancel := context.WithTimeout(ctx, time.Duration(o.cfg.NavigationTimeoutMs)*time.Millisecond)
	defer cancel()

	if err := page.Navigate(navCtx, url); err != nil {
		log.Printf("  ⚠️ Navigation failed for %s: %v", url, err)
		return models.ChallengedOutcome()
	}

	page.DismissOverlays()
	_ = page.ScrollTo(0.5)
	_ = page.ScrollTo(1.0)

	title, _ := page.Title()
	content, err := page.Content()
	if err != nil {
		log.Printf("  ⚠️ Could not read page content for %s: %v", url, err)
		return models.ChallengedOutcome()
	}

	if challenge.Classify(title, page.URL(), content) == challenge.Challenged {
		o.captureChallenge(page, url)
		return models.ChallengedOutcome()
	}

	// A zero count is trusted here: the page classified Clear, so zero
	// means "truly zero jobs" rather than a blocked result.
	return extract.Count(content, title, page, o.cfg.CountSelectors)
}

// liveListings harvests sample listings from the 30-day results page. Any
// failure simply yields no listings; the caller substitutes fabricated ones.
func (o *Orchestrator) liveListings(ctx context.Context, page PageClient, country config.Country) []models.JobListing {
	navCtx, cancel := context.WithTimeout(ctx, time.Duration(o.cfg.NavigationTimeoutMs)*time.Millisecond)
	defer cancel()

	url := config.QueryURL(country, models.Last30d.Days())
	if err := page.Navigate(navCtx, url); err != nil {
		log.Printf("  ⚠️ Listing navigation failed for %s: %v", country.Name, err)
		return nil
	}
	page.DismissOverlays()
	_ = page.ScrollTo(1.0)

	title, _ := page.Title()
	content, err := page.Content()
	if err != nil {
		return nil
	}
	if challenge.Classify(title, page.URL(), content) == challenge.Challenged {
		o.captureChallenge(page, url)
		return nil
	}

	listings, err := extract.Listings(content, o.listSel, o.cfg.MaxListings)
	if err != nil {
		log.Printf("  ⚠️ Listing extraction failed for %s: %v", country.Name, err)
		return nil
	}
	return listings
}

// allFallbackResult builds a complete synthetic result for a country, used
// when its processing failed catastrophically.
func (o *Orchestrator) allFallbackResult(name string) models.CountryResult {
	country, ok := o.cfg.CountryByName(name)
	if !ok {
		return models.CountryResult{
			Country:     name,
			Provenance:  models.ProvenanceSynthetic,
			JobListings: []models.JobListing{},
		}
	}
	result := models.CountryResult{Country: name, Provenance: models.ProvenanceSynthetic}
	for _, window := range models.Windows() {
		result.SetWindow(window, o.gen.Count(country, window))
	}
	result.Remote, result.OnSite = o.gen.RemoteSplit(country, result.Last30d)
	result.JobListings = o.gen.Listings(country)
	return result
}

func (o *Orchestrator) captureChallenge(page PageClient, url string) {
	log.Printf("  🛡️ Challenge detected at %s", url)
	if shooter, ok := page.(Screenshotter); ok {
		_ = shooter.Screenshot("challenge")
	}
}

// pace inserts a human think-time delay between live metric fetches.
func (o *Orchestrator) pace() {
	utils.RandomDelay(o.cfg.ThinkDelayMinMs, o.cfg.ThinkDelayMaxMs)
}

func outcomeLabel(outcome models.ExtractionOutcome) string {
	switch outcome.Kind {
	case models.OutcomeChallenged:
		return "challenged"
	case models.OutcomeNotFound:
		return "count not found"
	default:
		return fmt.Sprintf("count=%d", outcome.Count)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
