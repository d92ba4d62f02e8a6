// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Country is one row of the static country table: query endpoints plus the
// statistical priors the fallback generator derives synthetic values from.
type Country struct {
	Name                string  `yaml:"name"`
	BaseURL             string  `yaml:"base_url"`
	RemoteURL           string  `yaml:"remote_url"`
	AverageMonthlyCount int     `yaml:"average_monthly_count"`
	RemoteRatio         float64 `yaml:"remote_ratio"`
}

type Config struct {
	JobTitle  string    `yaml:"job_title"`
	Countries []Country `yaml:"countries"`

	//Output
	OutputPath string `yaml:"output_path"`

	//Pacing
	NavigationTimeoutMs float64 `yaml:"navigation_timeout_ms"`
	ThinkDelayMinMs     int     `yaml:"think_delay_min_ms"`
	ThinkDelayMaxMs     int     `yaml:"think_delay_max_ms"`

	//Extraction
	CountSelectors []string `yaml:"count_selectors"`
	MaxListings    int      `yaml:"max_listings"`

	//Scheduling & concurrency
	Parallelism         int `yaml:"parallelism"`
	ScrapeIntervalHours int `yaml:"scrape_interval_hours"`

	//Browser
	Headless bool `yaml:"headless"`

	//Optional collaborators (env-only)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	DatabaseURL    string `yaml:"database_url" env:"DATABASE_URL"`
}

// DefaultCountries mirrors the production country table: Glassdoor search
// endpoints per country plus priors observed from past runs.
func DefaultCountries() []Country {
	return []Country{
		{
			Name:                "Canada",
			BaseURL:             "https://www.glassdoor.com/Job/canada-data-analyst-jobs-SRCH_IL.0,6_IN3_KO7,19.htm",
			RemoteURL:           "https://www.glassdoor.com/Job/canada-remote-data-analyst-jobs-SRCH_IL.0,6_IN3_KO7,27.htm",
			AverageMonthlyCount: 500,
			RemoteRatio:         0.35,
		},
		{
			Name:                "Ireland",
			BaseURL:             "https://www.glassdoor.com/Job/ireland-data-analyst-jobs-SRCH_IL.0,7_IN70_KO8,20.htm",
			RemoteURL:           "https://www.glassdoor.com/Job/ireland-remote-data-analyst-jobs-SRCH_IL.0,7_IN70_KO8,28.htm",
			AverageMonthlyCount: 150,
			RemoteRatio:         0.4,
		},
		{
			Name:                "Portugal",
			BaseURL:             "https://www.glassdoor.com/Job/portugal-data-analyst-jobs-SRCH_IL.0,8_IN195_KO9,21.htm",
			RemoteURL:           "https://www.glassdoor.com/Job/portugal-remote-data-analyst-jobs-SRCH_IL.0,8_IN195_KO9,29.htm",
			AverageMonthlyCount: 120,
			RemoteRatio:         0.45,
		},
		{
			Name:                "United Arab Emirates",
			BaseURL:             "https://www.glassdoor.com/Job/united-arab-emirates-data-analyst-jobs-SRCH_IL.0,20_IN6_KO21,33.htm",
			RemoteURL:           "https://www.glassdoor.com/Job/united-arab-emirates-remote-data-analyst-jobs-SRCH_IL.0,20_IN6_KO21,41.htm",
			AverageMonthlyCount: 200,
			RemoteRatio:         0.2,
		},
		{
			Name:                "Germany",
			BaseURL:             "https://www.glassdoor.com/Job/germany-data-analyst-jobs-SRCH_IL.0,7_IN96_KO8,20.htm",
			RemoteURL:           "https://www.glassdoor.com/Job/germany-remote-data-analyst-jobs-SRCH_IL.0,7_IN96_KO8,28.htm",
			AverageMonthlyCount: 700,
			RemoteRatio:         0.3,
		},
	}
}

// Load reads configs/config.yaml (or the path in JOBPULSE_CONFIG), applies
// env overrides and fills defaults. A missing file is not an error: the
// compiled-in table is used instead.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("JOBPULSE_CONFIG")
	if path == "" {
		path = "configs/config.yaml"
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}
	if hours := os.Getenv("SCRAPE_INTERVAL_HOURS"); hours != "" {
		h, err := strconv.Atoi(hours)
		if err != nil {
			return nil, fmt.Errorf("invalid SCRAPE_INTERVAL_HOURS: %w", err)
		}
		cfg.ScrapeIntervalHours = h
	}
	if out := os.Getenv("OUTPUT_PATH"); out != "" {
		cfg.OutputPath = out
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills every unset field with its default value.
func (c *Config) ApplyDefaults() {
	if c.JobTitle == "" {
		c.JobTitle = "Data Analyst"
	}
	if len(c.Countries) == 0 {
		c.Countries = DefaultCountries()
	}
	if c.OutputPath == "" {
		c.OutputPath = "data/data.json"
	}
	if c.NavigationTimeoutMs == 0 {
		c.NavigationTimeoutMs = 60000
	}
	if c.ThinkDelayMinMs == 0 && c.ThinkDelayMaxMs == 0 {
		c.ThinkDelayMinMs = 2000
		c.ThinkDelayMaxMs = 5000
	}
	if c.MaxListings == 0 {
		c.MaxListings = 5
	}
	if c.Parallelism <= 0 {
		c.Parallelism = 1
	}
}

// Validate enforces the startup contract on the country table.
func (c *Config) Validate() error {
	if len(c.Countries) == 0 {
		return fmt.Errorf("no countries configured")
	}
	seen := make(map[string]bool, len(c.Countries))
	for _, country := range c.Countries {
		if country.Name == "" {
			return fmt.Errorf("country with empty name")
		}
		if seen[country.Name] {
			return fmt.Errorf("duplicate country %q", country.Name)
		}
		seen[country.Name] = true
		if country.BaseURL == "" || country.RemoteURL == "" {
			return fmt.Errorf("country %q missing query endpoints", country.Name)
		}
		if country.RemoteRatio < 0 || country.RemoteRatio > 1 {
			return fmt.Errorf("country %q remote_ratio %v outside [0,1]", country.Name, country.RemoteRatio)
		}
		if country.AverageMonthlyCount <= 0 {
			return fmt.Errorf("country %q average_monthly_count must be positive", country.Name)
		}
	}
	if c.ThinkDelayMaxMs < c.ThinkDelayMinMs {
		return fmt.Errorf("think_delay_max_ms below think_delay_min_ms")
	}
	return nil
}

// CountryByName looks up a configured country. Country names are the only
// valid keys into the orchestrator.
func (c *Config) CountryByName(name string) (Country, bool) {
	for _, country := range c.Countries {
		if country.Name == name {
			return country, true
		}
	}
	return Country{}, false
}

// QueryURL appends the days-since-posted filter to the country's base
// search endpoint.
func QueryURL(country Country, days int) string {
	sep := "?"
	if strings.Contains(country.BaseURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%sfromAge=%d", country.BaseURL, sep, days)
}
