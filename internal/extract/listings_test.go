package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobpulse-automation/internal/models"
)

const resultsPage = `<html><body>
<ul>
	<li data-test="jobListing">
		<a data-test="job-title" href="/job/1">Data Analyst</a>
		<span data-test="employer-short-name">Acme Analytics</span>
		<span data-test="emp-location">Toronto, ON</span>
		<span data-test="detailSalary">CA$70K - CA$90K</span>
		<span data-test="job-age">3d</span>
		<p data-test="descSnippet">SQL and Python required, Tableau a plus.</p>
	</li>
	<li data-test="jobListing">
		<a data-test="job-title" href="/job/2">Senior Data Analyst</a>
		<span data-test="employer-short-name">Beta Corp</span>
		<span data-test="emp-location">Vancouver, BC</span>
		<span data-test="job-age">1d</span>
		<p data-test="descSnippet">Excel reporting and dashboards.</p>
	</li>
	<li data-test="jobListing">
		<a data-test="job-title" href="/job/2">Senior Data Analyst</a>
		<span data-test="employer-short-name">Beta Corp duplicate</span>
	</li>
	<li data-test="jobListing">
		<span data-test="employer-short-name">No Title Inc</span>
	</li>
</ul>
</body></html>`

func TestListings(t *testing.T) {
	listings, err := Listings(resultsPage, DefaultListingSelectors(), 5)
	require.NoError(t, err)
	require.Len(t, listings, 2, "duplicate link and title-less card must be skipped")

	first := listings[0]
	assert.Equal(t, "Data Analyst", first.Title)
	assert.Equal(t, "Acme Analytics", first.Company)
	assert.Equal(t, "Toronto, ON", first.Location)
	assert.Equal(t, "CA$70K - CA$90K", first.Salary)
	assert.Equal(t, "3d", first.PostedDate)
	assert.Equal(t, "/job/1", first.Link)
	assert.Equal(t, models.ProvenanceLive, first.Provenance)
	assert.Contains(t, first.Skills, "SQL")
	assert.Contains(t, first.Skills, "Python")
	assert.Contains(t, first.Skills, "Tableau")

	second := listings[1]
	assert.Equal(t, "Senior Data Analyst", second.Title)
	assert.Equal(t, "Negotiable", second.Salary, "missing salary defaults to Negotiable")
	assert.Contains(t, second.Skills, "Excel")
}

func TestListings_Limit(t *testing.T) {
	listings, err := Listings(resultsPage, DefaultListingSelectors(), 1)
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestListings_NoCards(t *testing.T) {
	listings, err := Listings("<html><body><p>Sign in</p></body></html>", DefaultListingSelectors(), 5)
	require.NoError(t, err)
	assert.Empty(t, listings)
}
