// Package fallback fabricates statistically plausible substitutes for live
// job-market data. When a country's session is blocked or challenged the
// orchestrator answers every remaining metric from here, so downstream
// consumers always see a complete document.
package fallback

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"go-jobpulse-automation/internal/config"
	"go-jobpulse-automation/internal/models"
)

// Generator derives synthetic values from a country's static priors plus
// bounded uniform noise. Each call is independently random; nothing is
// cached across metrics. Safe for concurrent use: rand.Rand is not, so the
// source sits behind a mutex.
type Generator struct {
	jobTitle     string
	listingCount int

	mu  sync.Mutex
	rng *rand.Rand
}

func New(jobTitle string, listingCount int) *Generator {
	return NewSeeded(jobTitle, listingCount, time.Now().UnixNano())
}

// NewSeeded fixes the random source, for property tests.
func NewSeeded(jobTitle string, listingCount int, seed int64) *Generator {
	if listingCount <= 0 {
		listingCount = 5
	}
	return &Generator{
		jobTitle:     jobTitle,
		listingCount: listingCount,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Count produces a plausible job count for one recency window:
// 24h ≈ 5% of the 30-day average ±5 (floor 1), 7d ≈ 25% ±15 (floor 5),
// 30d ≈ the average itself ±30 (floor 10).
func (g *Generator) Count(country config.Country, window models.RecencyWindow) int {
	avg := country.AverageMonthlyCount
	switch window {
	case models.Last24h:
		return atLeast(1, g.jitter(avg*5/100, 5))
	case models.Last7d:
		return atLeast(5, g.jitter(avg*25/100, 15))
	default:
		return atLeast(10, g.jitter(avg, 30))
	}
}

// RemoteSplit divides a 30-day total by the country's remote ratio. OnSite
// is total minus remote, never negative since the ratio is capped at 1.
func (g *Generator) RemoteSplit(country config.Country, total int) (remote, onSite int) {
	remote = int(math.Round(float64(total) * country.RemoteRatio))
	if remote > total {
		remote = total
	}
	return remote, total - remote
}

// jitter returns base shifted by a uniform value in [-band, band].
func (g *Generator) jitter(base, band int) int {
	return base - band + g.intn(2*band+1)
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

func atLeast(floor, n int) int {
	if n < floor {
		return floor
	}
	return n
}

// Per-country tables the fabricated listings draw from. Unknown countries
// fall back to the generic pools.
var companyPools = map[string][]string{
	"Canada":               {"Maple Analytics", "Northstar Insights", "TrueNorth Data Co", "Laurier Digital", "Pacific Ledger"},
	"Ireland":              {"Shamrock Data Labs", "Liffey Analytics", "Emerald Insights", "Hibernia Digital", "Claddagh Systems"},
	"Portugal":             {"Tejo Analytics", "Lusitania Data", "Atlantico Insights", "Porto Digital Works", "Fado Systems"},
	"United Arab Emirates": {"Falcon Analytics", "Oasis Data Group", "Marina Insights", "Desert Rose Digital", "Gulf Metrics"},
	"Germany":              {"Rhein Analytics", "Spree Data GmbH", "Alpen Insights", "Hansa Digital", "Schwarzwald Systems"},
}

var locationPools = map[string][]string{
	"Canada":               {"Toronto, ON", "Vancouver, BC", "Montreal, QC", "Calgary, AB", "Ottawa, ON"},
	"Ireland":              {"Dublin", "Cork", "Galway", "Limerick", "Waterford"},
	"Portugal":             {"Lisbon", "Porto", "Braga", "Coimbra", "Faro"},
	"United Arab Emirates": {"Dubai", "Abu Dhabi", "Sharjah", "Ajman", "Ras Al Khaimah"},
	"Germany":              {"Berlin", "Munich", "Hamburg", "Frankfurt", "Cologne"},
}

var salaryPools = map[string][]string{
	"Canada":               {"CA$60K - CA$80K", "CA$70K - CA$90K", "CA$55K - CA$75K", "CA$80K - CA$100K"},
	"Ireland":              {"€40K - €55K", "€45K - €60K", "€50K - €70K", "€38K - €52K"},
	"Portugal":             {"€25K - €35K", "€30K - €42K", "€28K - €38K", "€35K - €48K"},
	"United Arab Emirates": {"AED 12K - AED 18K /mo", "AED 15K - AED 22K /mo", "AED 10K - AED 16K /mo"},
	"Germany":              {"€50K - €65K", "€55K - €72K", "€48K - €62K", "€60K - €80K"},
}

var (
	genericCompanies = []string{"Insight Partners Group", "DataWorks International", "Metric Lane", "Clearview Analytics"}
	genericLocations = []string{"Head Office", "Remote"}
	genericSalaries  = []string{"Competitive", "Negotiable"}
	titlePrefixes    = []string{"", "Senior ", "Junior ", "Lead "}
)

// Listing fabricates one plausible listing for the country. The skill set
// stays empty: synthetic text never runs through the skill extractor, and
// the provenance tag is what tells consumers the listing is fabricated.
func (g *Generator) Listing(country config.Country) models.JobListing {
	companies := pool(companyPools, country.Name, genericCompanies)
	locations := pool(locationPools, country.Name, genericLocations)
	salaries := pool(salaryPools, country.Name, genericSalaries)

	title := titlePrefixes[g.intn(len(titlePrefixes))] + g.jobTitle
	ageDays := g.intn(14) + 1

	return models.JobListing{
		Title:       title,
		Company:     companies[g.intn(len(companies))],
		Location:    locations[g.intn(len(locations))],
		Salary:      salaries[g.intn(len(salaries))],
		PostedDate:  time.Now().AddDate(0, 0, -ageDays).Format("2006-01-02"),
		Description: fmt.Sprintf("We are looking for a %s to join our team in %s.", g.jobTitle, country.Name),
		Requirements: fmt.Sprintf("Proven experience as a %s or in a similar analytical role. "+
			"Strong command of SQL and at least one scripting language.", g.jobTitle),
		Responsibilities: "Collect, clean and analyze datasets; build reports and dashboards; " +
			"present findings to stakeholders.",
		Skills:     []string{},
		Link:       "",
		Provenance: models.ProvenanceSynthetic,
	}
}

// Listings fabricates the configured number of listings for the country.
func (g *Generator) Listings(country config.Country) []models.JobListing {
	listings := make([]models.JobListing, 0, g.listingCount)
	for i := 0; i < g.listingCount; i++ {
		listings = append(listings, g.Listing(country))
	}
	return listings
}

func pool(table map[string][]string, country string, generic []string) []string {
	if entries, ok := table[country]; ok {
		return entries
	}
	return generic
}
