package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobpulse-automation/internal/browser"
	"go-jobpulse-automation/internal/config"
	"go-jobpulse-automation/internal/database"
	"go-jobpulse-automation/internal/fallback"
	"go-jobpulse-automation/internal/models"
	"go-jobpulse-automation/internal/reporter"
	"go-jobpulse-automation/internal/scheduler"
	"go-jobpulse-automation/internal/scraper"
	"go-jobpulse-automation/internal/store"
)

func main() {
	//load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Printf("🔧 Config loaded. %d countries, job title: %q", len(cfg.Countries), cfg.JobTitle)

	//scheduled mode: keep re-running until interrupted
	if cfg.ScrapeIntervalHours > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sched := scheduler.New(cfg.ScrapeIntervalHours, func(runCtx context.Context) {
			runOnce(runCtx, cfg)
		})
		if err := sched.Start(ctx); err != nil {
			log.Fatalf("❌ Failed to start scheduler: %v", err)
		}
		<-ctx.Done()
		sched.Stop()
		return
	}

	//one-shot mode
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	runOnce(ctx, cfg)
}

// runOnce performs one complete scrape: every country, every metric, then
// persistence and the optional reporters. It never exits early: worst case
// the whole document is fallback-generated.
func runOnce(ctx context.Context, cfg *config.Config) {
	log.Println("🚀 Starting JobPulse scrape...")

	var sessions scraper.SessionFactory
	manager, err := browser.NewManager(cfg)
	if err != nil {
		log.Printf("⚠️ Browser unavailable: %v. All data will be fallback-generated.", err)
		sessions = noSessions{}
	} else {
		defer manager.Close()
		sessions = manager
	}

	gen := fallback.New(cfg.JobTitle, cfg.MaxListings)
	orch := scraper.New(cfg, sessions, gen)

	doc := orch.Run(ctx)
	log.Printf("📦 Scrape complete: %d countries", len(doc.Countries))

	if err := store.SaveDocument(doc, cfg.OutputPath); err != nil {
		log.Printf("❌ Failed to save document: %v", err)
	} else {
		log.Printf("📁 Results saved to %s", cfg.OutputPath)
	}

	//optional run summary to telegram
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		rep, err := reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Printf("⚠️ Failed to init Telegram reporter: %v", err)
		} else if err := rep.SendRunSummary(doc); err != nil {
			log.Printf("⚠️ Failed to send run summary: %v", err)
		}
	}

	//optional run history in postgres
	if cfg.DatabaseURL != "" {
		saveRunHistory(ctx, cfg.DatabaseURL, doc)
	}

	log.Println("🏁 Execution finished.")
}

func saveRunHistory(ctx context.Context, databaseURL string, doc models.ScrapeDocument) {
	repo, err := database.ConnectDB(ctx, databaseURL)
	if err != nil {
		log.Printf("⚠️ Run history unavailable: %v", err)
		return
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		log.Printf("⚠️ Failed to ensure run history schema: %v", err)
		return
	}
	if err := repo.SaveRun(ctx, doc); err != nil {
		log.Printf("⚠️ Failed to record run history: %v", err)
		return
	}
	log.Println("💾 Run recorded in history")
}

// noSessions is the degenerate session factory used when the browser could
// not start: every country immediately takes the fallback path.
type noSessions struct{}

func (noSessions) NewPage(ctx context.Context) (scraper.PageClient, error) {
	return nil, fmt.Errorf("browser unavailable")
}
