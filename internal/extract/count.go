// Package extract derives structured values (job counts, skills, sample
// listings) from page snapshots. Every function here is read-only over the
// supplied snapshot.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"go-jobpulse-automation/internal/models"
)

// ElementProbe is the capability the count extractor needs to inspect
// structural elements: given a selector, return the visible text of every
// match. A live page adapter and the goquery snapshot probe both satisfy it.
type ElementProbe interface {
	QueryTexts(selector string) ([]string, error)
}

// Keyword patterns, in priority order. Digit groups may carry thousands
// separators which are stripped before parsing.
var countPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)showing\s+(\d[\d,.]*)\s+jobs`),
	regexp.MustCompile(`(?i)found\s+(\d[\d,.]*)\s+jobs`),
	regexp.MustCompile(`(?i)(\d[\d,.]*)\s+(?:[A-Za-z][A-Za-z&/ -]*?\s+)?jobs`),
}

var (
	digitGroupRegex   = regexp.MustCompile(`\d[\d,.]*`)
	leadingDigitRegex = regexp.MustCompile(`^\s*(\d[\d,.]*)`)
)

// DefaultCountSelectors is the ordered selector list probed when the raw
// text scan finds nothing. Earlier entries are more specific to the site's
// count badge; later ones are generic headers.
var DefaultCountSelectors = []string{
	`[data-test="jobCount"]`,
	".jobsCount",
	".count",
	"header h1",
	".job-search-key-1mn3ow8",
	".heading5",
	"h1",
}

// Count attempts to derive a single job count from a page snapshot.
// Strategies run in strict priority order and the first match wins, even if
// a later strategy would find a better number. All strategies failing is a
// valid outcome (NotFound), not an error.
func Count(pageContent, pageTitle string, probe ElementProbe, selectors []string) models.ExtractionOutcome {
	// 1. Keyword scan of the raw page text.
	for _, pattern := range countPatterns {
		if m := pattern.FindStringSubmatch(pageContent); m != nil {
			if n, ok := parseDigits(m[1]); ok {
				return models.CountOf(n)
			}
		}
	}

	// 2. Ordered structural selectors.
	if probe != nil {
		if len(selectors) == 0 {
			selectors = DefaultCountSelectors
		}
		for _, selector := range selectors {
			texts, err := probe.QueryTexts(selector)
			if err != nil {
				continue
			}
			for _, text := range texts {
				if group := digitGroupRegex.FindString(text); group != "" {
					if n, ok := parseDigits(group); ok {
						return models.CountOf(n)
					}
				}
			}
		}
	}

	// 3. Leading digits in the page title.
	if m := leadingDigitRegex.FindStringSubmatch(pageTitle); m != nil {
		if n, ok := parseDigits(m[1]); ok {
			return models.CountOf(n)
		}
	}

	return models.NotFoundOutcome()
}

// parseDigits strips thousands separators and parses the remainder.
func parseDigits(group string) (int, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, group)
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
