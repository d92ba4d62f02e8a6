package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-jobpulse-automation/internal/scraper"
	"go-jobpulse-automation/utils"
)

// Selectors for the popups and overlays the source throws over results
// pages. Tried in order, every match clicked, all best effort.
var overlaySelectors = []string{
	`button[aria-label="Close"]`,
	".modal-close",
	".close",
	`[data-test="modal-close"]`,
	".ReactModal__Close",
	".emailAlertPopup button",
	".UserAlert button",
	`button:has-text("Close")`,
	`button:has-text("Accept")`,
	`button:has-text("Accept All")`,
	`button:has-text("Reject")`,
	`button:has-text("Skip")`,
	`button:has-text("Continue")`,
	`button:has-text("No Thanks")`,
}

const probeTimeoutMs = 1000

// Page adapts a Playwright page to the orchestrator's PageClient contract.
type Page struct {
	page       playwright.Page
	browserCtx playwright.BrowserContext
	timeoutMs  float64
	shots      *utils.ScreenShotDebugger
}

// Navigate loads url and lets the page settle with human-looking pacing.
// The effective timeout is the configured navigation timeout, clipped by the
// caller's context deadline.
func (p *Page) Navigate(ctx context.Context, url string) error {
	timeout := p.timeoutMs
	if deadline, ok := ctx.Deadline(); ok {
		remaining := float64(time.Until(deadline).Milliseconds())
		if remaining <= 0 {
			return fmt.Errorf("navigate %s: %w", url, ctx.Err())
		}
		if remaining < timeout {
			timeout = remaining
		}
	}

	if _, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(timeout),
	}); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}

	utils.RandomDelay(1000, 3000)
	utils.MouseJiggle(p.page)
	return nil
}

func (p *Page) Title() (string, error) {
	return p.page.Title()
}

func (p *Page) URL() string {
	return p.page.URL()
}

func (p *Page) Content() (string, error) {
	return p.page.Content()
}

// QueryTexts returns the visible text of every element matching selector.
// Elements that refuse to yield text within the probe timeout are skipped.
func (p *Page) QueryTexts(selector string) ([]string, error) {
	locators, err := p.page.Locator(selector).All()
	if err != nil {
		return nil, err
	}
	var texts []string
	for _, loc := range locators {
		text, err := loc.InnerText(playwright.LocatorInnerTextOptions{
			Timeout: playwright.Float(probeTimeoutMs),
		})
		if err != nil {
			continue
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func (p *Page) Query(selector string) ([]scraper.Element, error) {
	locators, err := p.page.Locator(selector).All()
	if err != nil {
		return nil, err
	}
	elements := make([]scraper.Element, 0, len(locators))
	for _, loc := range locators {
		elements = append(elements, &element{loc: loc})
	}
	return elements, nil
}

func (p *Page) ScrollTo(fraction float64) error {
	if fraction >= 1.0 {
		// Bottom scrolls go the human way and trigger lazy loading.
		utils.SmoothScroll(p.page)
		return nil
	}
	_, err := p.page.Evaluate(fmt.Sprintf("window.scrollTo(0, document.body.scrollHeight * %v)", fraction))
	if err == nil {
		utils.RandomDelay(500, 1000)
	}
	return err
}

// DismissOverlays clicks away cookie banners, email-alert popups and signup
// modals. Nothing here is allowed to fail the fetch.
func (p *Page) DismissOverlays() {
	for _, selector := range overlaySelectors {
		locators, err := p.page.Locator(selector).All()
		if err != nil {
			continue
		}
		for _, loc := range locators {
			if err := loc.Click(playwright.LocatorClickOptions{
				Timeout: playwright.Float(probeTimeoutMs),
			}); err == nil {
				utils.RandomDelay(300, 600)
			}
		}
	}
}

func (p *Page) Screenshot(name string) error {
	return p.shots.CaptureAndLog(p.page, name, "🚨 Challenge interstitial captured")
}

func (p *Page) Close() error {
	if err := p.page.Close(); err != nil {
		return err
	}
	return p.browserCtx.Close()
}

type element struct {
	loc playwright.Locator
}

func (e *element) Text() (string, error) {
	return e.loc.InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(probeTimeoutMs),
	})
}

func (e *element) Click() error {
	return e.loc.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(probeTimeoutMs),
	})
}
