package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-jobpulse-automation/internal/models"
)

// ListingSelectors is the ordered, data-driven selector configuration for
// harvesting listing cards from a results page. Card selectors are tried in
// order and the first one with matches wins; field selectors are cascadia
// comma lists probed inside each card.
type ListingSelectors struct {
	Cards       []string `yaml:"cards"`
	Title       string   `yaml:"title"`
	Company     string   `yaml:"company"`
	Location    string   `yaml:"location"`
	Salary      string   `yaml:"salary"`
	PostedDate  string   `yaml:"posted_date"`
	Description string   `yaml:"description"`
}

func DefaultListingSelectors() ListingSelectors {
	return ListingSelectors{
		Cards: []string{
			`[data-test="jobListing"]`,
			".JobCard_jobCardContainer__arQlW",
			".react-job-listing",
			"li.jl",
		},
		Title:       `[data-test="job-title"], .JobCard_jobTitle___7I6y, a.jobLink, h3 a, a.title`,
		Company:     `[data-test="employer-short-name"], .EmployerProfile_compactEmployerName__LE242, .jobEmpolyerName, .company-name`,
		Location:    `[data-test="emp-location"], .JobCard_location__rCz3x, .loc, .location`,
		Salary:      `[data-test="detailSalary"], .JobCard_salaryEstimate__QpbTW, .salaryEstimate, .salary`,
		PostedDate:  `[data-test="job-age"], .JobCard_listingAge__jJsuc, .job-age`,
		Description: `[data-test="descSnippet"], .JobCard_jobDescriptionSnippet__l1tnl, .jobDescriptionContent`,
	}
}

// Listings harvests up to limit listing cards from a results-page snapshot,
// running the skill extractor over each card's visible text. Cards without a
// title are skipped; duplicate links within the snapshot are collapsed.
func Listings(pageContent string, selectors ListingSelectors, limit int) ([]models.JobListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageContent))
	if err != nil {
		return nil, fmt.Errorf("parsing results page: %w", err)
	}

	var cards *goquery.Selection
	for _, cardSelector := range selectors.Cards {
		found := doc.Find(cardSelector)
		if found.Length() > 0 {
			cards = found
			break
		}
	}
	if cards == nil {
		return nil, nil
	}

	listings := make([]models.JobListing, 0, limit)
	seenLinks := make(map[string]bool)

	cards.EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if len(listings) >= limit {
			return false
		}

		titleEl := card.Find(selectors.Title).First()
		title := strings.TrimSpace(titleEl.Text())
		if title == "" {
			return true
		}

		link, _ := titleEl.Attr("href")
		if link == "" {
			link, _ = card.Find("a[href]").First().Attr("href")
		}
		if link != "" && seenLinks[link] {
			return true
		}
		if link != "" {
			seenLinks[link] = true
		}

		salary := strings.TrimSpace(card.Find(selectors.Salary).First().Text())
		if salary == "" {
			salary = "Negotiable"
		}

		description := strings.TrimSpace(card.Find(selectors.Description).First().Text())

		listing := models.JobListing{
			Title:       title,
			Company:     strings.TrimSpace(card.Find(selectors.Company).First().Text()),
			Location:    strings.TrimSpace(card.Find(selectors.Location).First().Text()),
			Salary:      salary,
			PostedDate:  strings.TrimSpace(card.Find(selectors.PostedDate).First().Text()),
			Description: description,
			Skills:      SortedSkills(Skills(title + " " + description)),
			Link:        link,
			Provenance:  models.ProvenanceLive,
		}

		listings = append(listings, listing)
		return true
	})

	return listings, nil
}
