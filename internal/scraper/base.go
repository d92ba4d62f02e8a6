// Define the collaborator interfaces the orchestrator drives
// Ensure the browser backend stays swappable

package scraper

import "context"

// Element is one node returned by a selector query.
type Element interface {
	Text() (string, error)
	Click() error
}

// PageClient is a browsing session for one country: it can navigate, report
// what it sees and poke elements. Navigate returns an error on hard network
// failure; the orchestrator treats that as a fallback trigger, never as a
// reason to abort the run. Implementations may be blocked or challenged at
// any time.
type PageClient interface {
	Navigate(ctx context.Context, url string) error
	Title() (string, error)
	URL() string
	Content() (string, error)
	QueryTexts(selector string) ([]string, error)
	Query(selector string) ([]Element, error)
	ScrollTo(fraction float64) error
	// DismissOverlays closes cookie banners, signup modals and similar
	// noise. Best effort.
	DismissOverlays()
	Close() error
}

// Screenshotter is an optional PageClient capability used for challenge
// debugging.
type Screenshotter interface {
	Screenshot(name string) error
}

// SessionFactory hands out isolated browsing sessions. Each country gets a
// fresh one so challenge state and cookies never leak between countries.
type SessionFactory interface {
	NewPage(ctx context.Context) (PageClient, error)
}
