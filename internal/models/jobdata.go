package models

import "time"

// RecencyWindow is one of the fixed lookback periods used to bucket
// job postings by posting age. The value is the number of days.
type RecencyWindow int

const (
	Last24h RecencyWindow = 1
	Last7d  RecencyWindow = 7
	Last30d RecencyWindow = 30
)

// Windows returns the recency windows in processing order.
func Windows() []RecencyWindow {
	return []RecencyWindow{Last24h, Last7d, Last30d}
}

func (w RecencyWindow) Days() int {
	return int(w)
}

func (w RecencyWindow) String() string {
	switch w {
	case Last24h:
		return "last_24h"
	case Last7d:
		return "last_7d"
	case Last30d:
		return "last_30d"
	}
	return "unknown"
}

// Provenance tells consumers whether a value came from live extraction
// or from the fallback generator.
type Provenance string

const (
	ProvenanceLive      Provenance = "live"
	ProvenanceSynthetic Provenance = "synthetic"
	ProvenanceMixed     Provenance = "mixed"
)

// OutcomeKind tags the result of one count-extraction attempt.
type OutcomeKind int

const (
	OutcomeCount OutcomeKind = iota
	OutcomeChallenged
	OutcomeNotFound
)

// ExtractionOutcome is the tagged result of one extraction attempt.
// Count is only meaningful when Kind == OutcomeCount and is never negative.
type ExtractionOutcome struct {
	Kind  OutcomeKind
	Count int
}

func CountOf(n int) ExtractionOutcome {
	if n < 0 {
		n = 0
	}
	return ExtractionOutcome{Kind: OutcomeCount, Count: n}
}

func ChallengedOutcome() ExtractionOutcome {
	return ExtractionOutcome{Kind: OutcomeChallenged}
}

func NotFoundOutcome() ExtractionOutcome {
	return ExtractionOutcome{Kind: OutcomeNotFound}
}

type JobListing struct {
	Title            string     `json:"title"`
	Company          string     `json:"company"`
	Location         string     `json:"location"`
	Salary           string     `json:"salary"`
	PostedDate       string     `json:"posted_date"`
	Description      string     `json:"description"`
	Requirements     string     `json:"requirements"`
	Responsibilities string     `json:"responsibilities"`
	Skills           []string   `json:"skills"`
	Link             string     `json:"link"`
	Provenance       Provenance `json:"provenance"`
}

type CountryResult struct {
	Country     string       `json:"country"`
	Last24h     int          `json:"last_24h"`
	Last7d      int          `json:"last_7d"`
	Last30d     int          `json:"last_30d"`
	Remote      int          `json:"remote"`
	OnSite      int          `json:"on_site"`
	Provenance  Provenance   `json:"provenance"`
	JobListings []JobListing `json:"job_listings"`
}

// SetWindow stores a count under the matching recency field.
func (r *CountryResult) SetWindow(w RecencyWindow, count int) {
	switch w {
	case Last24h:
		r.Last24h = count
	case Last7d:
		r.Last7d = count
	case Last30d:
		r.Last30d = count
	}
}

// ScrapeDocument is the root persisted artifact: one entry per configured
// country plus a UTC timestamp, written atomically as a whole.
type ScrapeDocument struct {
	Countries   map[string]CountryResult `json:"countries"`
	LastUpdated string                   `json:"last_updated"`
}

// Timestamp formats t the way the document expects: UTC, ISO-8601,
// second precision.
func Timestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z")
}
