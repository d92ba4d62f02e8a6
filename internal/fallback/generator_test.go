package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobpulse-automation/internal/config"
	"go-jobpulse-automation/internal/models"
)

func canada() config.Country {
	return config.Country{
		Name:                "Canada",
		BaseURL:             "https://example.com/canada",
		RemoteURL:           "https://example.com/canada-remote",
		AverageMonthlyCount: 500,
		RemoteRatio:         0.35,
	}
}

// For an average of 500 the bands are fixed by design: 24h in [20,30],
// 7d in [110,140], 30d in [470,530]. They must not overlap.
func TestCount_Bands(t *testing.T) {
	gen := NewSeeded("Data Analyst", 5, 42)
	country := canada()

	for i := 0; i < 1000; i++ {
		c24 := gen.Count(country, models.Last24h)
		c7 := gen.Count(country, models.Last7d)
		c30 := gen.Count(country, models.Last30d)

		assert.GreaterOrEqual(t, c24, 20)
		assert.LessOrEqual(t, c24, 30)
		assert.GreaterOrEqual(t, c7, 110)
		assert.LessOrEqual(t, c7, 140)
		assert.GreaterOrEqual(t, c30, 470)
		assert.LessOrEqual(t, c30, 530)

		// a 24h sample must never exceed the 7d band, nor 7d the 30d band
		assert.Less(t, c24, c7)
		assert.Less(t, c7, c30)
	}
}

func TestCount_Floors(t *testing.T) {
	gen := NewSeeded("Data Analyst", 5, 7)
	tiny := config.Country{Name: "Tinyland", AverageMonthlyCount: 1, RemoteRatio: 0.5}

	for i := 0; i < 500; i++ {
		assert.GreaterOrEqual(t, gen.Count(tiny, models.Last24h), 1)
		assert.GreaterOrEqual(t, gen.Count(tiny, models.Last7d), 5)
		assert.GreaterOrEqual(t, gen.Count(tiny, models.Last30d), 10)
	}
}

func TestRemoteSplit(t *testing.T) {
	gen := NewSeeded("Data Analyst", 5, 1)

	tests := []struct {
		name           string
		ratio          float64
		total          int
		expectedRemote int
	}{
		{"canada ratio", 0.35, 500, 175},
		{"half", 0.5, 101, 51},
		{"all remote", 1.0, 40, 40},
		{"none remote", 0.0, 40, 0},
		{"zero total", 0.35, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			country := config.Country{Name: "X", AverageMonthlyCount: 100, RemoteRatio: tt.ratio}
			remote, onSite := gen.RemoteSplit(country, tt.total)

			assert.Equal(t, tt.expectedRemote, remote)
			assert.Equal(t, tt.total, remote+onSite)
			assert.GreaterOrEqual(t, onSite, 0)
		})
	}
}

func TestListings(t *testing.T) {
	gen := NewSeeded("Data Analyst", 5, 99)
	listings := gen.Listings(canada())

	require.Len(t, listings, 5)
	for _, l := range listings {
		assert.NotEmpty(t, l.Title)
		assert.NotEmpty(t, l.Company)
		assert.NotEmpty(t, l.Location)
		assert.NotEmpty(t, l.Salary)
		assert.NotEmpty(t, l.PostedDate)
		assert.NotEmpty(t, l.Description)
		assert.NotEmpty(t, l.Requirements)
		assert.NotEmpty(t, l.Responsibilities)
		assert.Equal(t, models.ProvenanceSynthetic, l.Provenance)
		// synthetic text never runs through the skill extractor
		assert.Empty(t, l.Skills)
		assert.NotNil(t, l.Skills)
	}
}

func TestListings_UnknownCountryUsesGenericPools(t *testing.T) {
	gen := NewSeeded("Data Analyst", 3, 5)
	listings := gen.Listings(config.Country{Name: "Atlantis", AverageMonthlyCount: 50, RemoteRatio: 0.5})

	require.Len(t, listings, 3)
	for _, l := range listings {
		assert.NotEmpty(t, l.Company)
		assert.NotEmpty(t, l.Location)
		assert.NotEmpty(t, l.Salary)
	}
}

// Every call draws fresh randomness: across many samples the values must
// not all collapse to a single number.
func TestCount_IndependentDraws(t *testing.T) {
	gen := NewSeeded("Data Analyst", 5, 11)
	country := canada()

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		seen[gen.Count(country, models.Last30d)] = true
	}
	assert.Greater(t, len(seen), 10)
}
