package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"go-jobpulse-automation/internal/config"
	"go-jobpulse-automation/internal/scraper"
	"go-jobpulse-automation/utils"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.4896.127 Safari/537.36"

// Manager owns the Playwright runtime and a single browser process. Pages
// are handed out one per country, each in its own browser context so cookie
// jars and challenge state stay isolated.
type Manager struct {
	cfg     *config.Config
	pw      *playwright.Playwright
	browser playwright.Browser
	shots   *utils.ScreenShotDebugger
}

func NewManager(cfg *config.Config) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		Args: []string{
			"--disable-dev-shm-usage",
			"--no-sandbox",
			"--disable-setuid-sandbox",
			"--disable-blink-features=AutomationControlled",
		},
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launching chromium: %w", err)
	}

	return &Manager{
		cfg:     cfg,
		pw:      pw,
		browser: browser,
		shots:   utils.NewScreenShotDebugger(),
	}, nil
}

// NewPage creates a fresh, isolated browsing session.
func (m *Manager) NewPage(ctx context.Context) (scraper.PageClient, error) {
	browserCtx, err := m.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport:          &playwright.Size{Width: 1280, Height: 800},
		UserAgent:         playwright.String(userAgent),
		Locale:            playwright.String("en-US"),
		TimezoneId:        playwright.String("America/New_York"),
		JavaScriptEnabled: playwright.Bool(true),
		HasTouch:          playwright.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("creating browser context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		_ = browserCtx.Close()
		return nil, fmt.Errorf("creating page: %w", err)
	}

	// Hide the automation flag before any site script runs.
	err = page.AddInitScript(playwright.Script{
		Content: playwright.String(`Object.defineProperty(navigator, 'webdriver', { get: () => false });`),
	})
	if err != nil {
		_ = browserCtx.Close()
		return nil, fmt.Errorf("installing stealth script: %w", err)
	}

	return &Page{
		page:       page,
		browserCtx: browserCtx,
		timeoutMs:  m.cfg.NavigationTimeoutMs,
		shots:      m.shots,
	}, nil
}

func (m *Manager) Close() error {
	if err := m.browser.Close(); err != nil {
		return err
	}
	return m.pw.Stop()
}
