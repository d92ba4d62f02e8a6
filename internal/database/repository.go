// Package database keeps an optional history of scrape runs in Postgres so
// the dashboard can chart trends. The JSON document on disk stays the
// canonical artifact; this is additive and only active when DATABASE_URL is
// configured.
package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-jobpulse-automation/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// IMPORTANT: Supabase connection pooler (PgBouncer in Transaction mode)
	// does not support prepared statements easily. We MUST disable the statement cache.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

// EnsureSchema creates the run-history table when it is missing.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS scrape_runs (
			id          BIGSERIAL PRIMARY KEY,
			run_at      TIMESTAMPTZ NOT NULL,
			payload     JSONB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure scrape_runs schema: %w", err)
	}
	return nil
}

// SaveRun records one produced document as a history row.
func (r *Repository) SaveRun(ctx context.Context, doc models.ScrapeDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	runAt, err := time.Parse("2006-01-02T15:04:05Z", doc.LastUpdated)
	if err != nil {
		runAt = time.Now().UTC()
	}

	_, err = r.db.Exec(ctx,
		"INSERT INTO scrape_runs (run_at, payload) VALUES ($1, $2)",
		runAt, payload)
	if err != nil {
		return fmt.Errorf("failed to save scrape run: %w", err)
	}
	return nil
}

// LatestRun fetches the most recent recorded document, if any.
func (r *Repository) LatestRun(ctx context.Context) (*models.ScrapeDocument, error) {
	var payload []byte
	err := r.db.QueryRow(ctx,
		"SELECT payload FROM scrape_runs ORDER BY run_at DESC LIMIT 1").Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest run: %w", err)
	}

	var doc models.ScrapeDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse stored run: %w", err)
	}
	return &doc, nil
}
