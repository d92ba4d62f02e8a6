package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCountry() Country {
	return Country{
		Name:                "Canada",
		BaseURL:             "https://example.com/jobs.htm",
		RemoteURL:           "https://example.com/remote-jobs.htm",
		AverageMonthlyCount: 500,
		RemoteRatio:         0.35,
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, "Data Analyst", cfg.JobTitle)
	assert.Len(t, cfg.Countries, 5)
	assert.Equal(t, "data/data.json", cfg.OutputPath)
	assert.Equal(t, float64(60000), cfg.NavigationTimeoutMs)
	assert.Equal(t, 2000, cfg.ThinkDelayMinMs)
	assert.Equal(t, 5000, cfg.ThinkDelayMaxMs)
	assert.Equal(t, 5, cfg.MaxListings)
	assert.Equal(t, 1, cfg.Parallelism)

	require.NoError(t, cfg.Validate())
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		JobTitle:    "Data Engineer",
		Countries:   []Country{validCountry()},
		MaxListings: 10,
		Parallelism: 3,
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "Data Engineer", cfg.JobTitle)
	assert.Len(t, cfg.Countries, 1)
	assert.Equal(t, 10, cfg.MaxListings)
	assert.Equal(t, 3, cfg.Parallelism)
}

func TestValidate(t *testing.T) {
	mutate := func(fn func(*Config)) *Config {
		cfg := &Config{Countries: []Country{validCountry()}}
		cfg.ApplyDefaults()
		fn(cfg)
		return cfg
	}

	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{
			name:    "valid",
			cfg:     mutate(func(c *Config) {}),
			wantErr: "",
		},
		{
			name:    "no countries",
			cfg:     &Config{},
			wantErr: "no countries",
		},
		{
			name: "empty country name",
			cfg: mutate(func(c *Config) {
				c.Countries[0].Name = ""
			}),
			wantErr: "empty name",
		},
		{
			name: "duplicate country",
			cfg: mutate(func(c *Config) {
				c.Countries = append(c.Countries, validCountry())
			}),
			wantErr: "duplicate country",
		},
		{
			name: "missing remote endpoint",
			cfg: mutate(func(c *Config) {
				c.Countries[0].RemoteURL = ""
			}),
			wantErr: "missing query endpoints",
		},
		{
			name: "remote ratio above one",
			cfg: mutate(func(c *Config) {
				c.Countries[0].RemoteRatio = 1.2
			}),
			wantErr: "remote_ratio",
		},
		{
			name: "remote ratio negative",
			cfg: mutate(func(c *Config) {
				c.Countries[0].RemoteRatio = -0.1
			}),
			wantErr: "remote_ratio",
		},
		{
			name: "non-positive average",
			cfg: mutate(func(c *Config) {
				c.Countries[0].AverageMonthlyCount = 0
			}),
			wantErr: "average_monthly_count",
		},
		{
			name: "inverted think delays",
			cfg: mutate(func(c *Config) {
				c.ThinkDelayMinMs = 5000
				c.ThinkDelayMaxMs = 1000
			}),
			wantErr: "think_delay_max_ms",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestCountryByName(t *testing.T) {
	cfg := &Config{Countries: DefaultCountries()}

	country, ok := cfg.CountryByName("Germany")
	require.True(t, ok)
	assert.Equal(t, 700, country.AverageMonthlyCount)

	_, ok = cfg.CountryByName("Narnia")
	assert.False(t, ok)
}

func TestQueryURL(t *testing.T) {
	country := validCountry()
	assert.Equal(t, "https://example.com/jobs.htm?fromAge=7", QueryURL(country, 7))

	country.BaseURL = "https://example.com/jobs.htm?q=data"
	assert.Equal(t, "https://example.com/jobs.htm?q=data&fromAge=30", QueryURL(country, 30))
}

func TestLoad_FromYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
job_title: "Data Analyst"
max_listings: 3
countries:
  - name: "Canada"
    base_url: "https://example.com/jobs.htm"
    remote_url: "https://example.com/remote-jobs.htm"
    average_monthly_count: 500
    remote_ratio: 0.35
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	t.Setenv("JOBPULSE_CONFIG", path)
	t.Setenv("OUTPUT_PATH", filepath.Join(dir, "out.json"))
	t.Setenv("SCRAPE_INTERVAL_HOURS", "6")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxListings)
	assert.Len(t, cfg.Countries, 1)
	assert.Equal(t, filepath.Join(dir, "out.json"), cfg.OutputPath)
	assert.Equal(t, 6, cfg.ScrapeIntervalHours)
	// defaults still fill what neither file nor env set
	assert.Equal(t, 1, cfg.Parallelism)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JOBPULSE_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("OUTPUT_PATH", "")
	t.Setenv("SCRAPE_INTERVAL_HOURS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Len(t, cfg.Countries, 5)
	assert.Equal(t, "Data Analyst", cfg.JobTitle)
}
