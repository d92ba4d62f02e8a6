// Package challenge classifies a fetched page as a real result or a
// bot-protection interstitial. Classification is a pure function of the
// page title, URL and body so it can be tested without a browser.
package challenge

import "strings"

type Classification int

const (
	Clear Classification = iota
	Challenged
)

func (c Classification) String() string {
	if c == Challenged {
		return "challenged"
	}
	return "clear"
}

// Marker tables are data, not logic: extend them when the protection vendor
// changes its interstitials. All entries are matched lowercase.
var (
	titleMarkers = []string{
		"just a moment",
		"attention required",
		"cloudflare",
		"access denied",
		"security check",
		"please wait",
		"verify you are a human",
	}

	urlMarkers = []string{
		"/cdn-cgi/challenge-platform",
		"__cf_chl",
		"/captcha",
		"/challenge",
	}

	bodyMarkers = []string{
		"cf-browser-verification",
		"cf_chl_opt",
		"cloudflare ray id",
		"verifying you are human",
		"g-recaptcha",
		"hcaptcha",
		"datadome",
		"perimeterx",
	}
)

// Classify inspects title, URL and page source for known interstitial
// markers. False negatives are tolerated: a missed challenge surfaces
// downstream as a NotFound count, which triggers the same fallback.
func Classify(pageTitle, pageURL, pageSource string) Classification {
	title := strings.ToLower(pageTitle)
	for _, marker := range titleMarkers {
		if strings.Contains(title, marker) {
			return Challenged
		}
	}

	url := strings.ToLower(pageURL)
	for _, marker := range urlMarkers {
		if strings.Contains(url, marker) {
			return Challenged
		}
	}

	source := strings.ToLower(pageSource)
	for _, marker := range bodyMarkers {
		if strings.Contains(source, marker) {
			return Challenged
		}
	}

	return Clear
}
