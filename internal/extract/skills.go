package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Three fixed vocabularies of recognized terms. The canonical casing here is
// what ends up in the result set, whatever casing the input used.
var (
	technicalSkills = []string{
		"SQL", "Python", "R", "Excel", "Tableau", "Power BI", "Looker",
		"SAS", "SPSS", "Java", "Scala", "AWS", "Azure", "GCP", "Snowflake",
		"BigQuery", "Redshift", "ETL", "Pandas", "NumPy", "Git", "Hadoop",
		"Spark", "Airflow", "dbt", "Machine Learning", "Statistics",
		"Data Visualization", "Data Modeling", "A/B Testing",
	}

	educationCredentials = []string{
		"Bachelor's Degree", "Master's Degree", "PhD", "MBA",
		"BSc", "MSc", "BA", "BS", "MS",
	}

	softSkills = []string{
		"Communication", "Teamwork", "Problem Solving", "Leadership",
		"Attention to Detail", "Time Management", "Critical Thinking",
		"Collaboration", "Stakeholder Management", "Presentation",
	}
)

type vocabMatcher struct {
	canonical string
	pattern   *regexp.Regexp
}

var vocabMatchers = buildVocabMatchers()

func buildVocabMatchers() []vocabMatcher {
	var matchers []vocabMatcher
	for _, vocab := range [][]string{technicalSkills, educationCredentials, softSkills} {
		for _, term := range vocab {
			matchers = append(matchers, vocabMatcher{
				canonical: term,
				pattern:   termPattern(term),
			})
		}
	}
	return matchers
}

// termPattern compiles a case-insensitive whole-word matcher for a
// vocabulary term; spaces in multi-word terms also match hyphens.
func termPattern(term string) *regexp.Regexp {
	words := strings.Fields(term)
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(escaped, `[\s-]+`) + `\b`)
}

// Degree-phrase variants not covered by plain vocabulary matching. Any novel
// match is added verbatim.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(bachelor(?:'s)?(?:\s+degree)?)\b`),
	regexp.MustCompile(`(?i)\b(master(?:'s)?(?:\s+degree)?)\b`),
	regexp.MustCompile(`(?i)\b(ph\.?d|b\.?sc|m\.?sc|mba)\b`),
	regexp.MustCompile(`(?i)\b(degree\s+in\s+[a-z][a-z ]{2,40}?)(?:[.,;]|\s+(?:or|and|preferred|required)\b|$)`),
}

// Skills extracts the set of recognized skill and requirement tokens from
// free-text job description content. Matching is case-insensitive and
// whole-word; repeated mentions collapse into one entry. Empty input yields
// an empty set.
func Skills(text string) mapset.Set[string] {
	result := mapset.NewSet[string]()
	if strings.TrimSpace(text) == "" {
		return result
	}

	folded := foldDiacritics(text)

	// lowercase view of everything already added, to keep degree variants
	// from duplicating vocabulary hits
	seen := make(map[string]bool)

	for _, m := range vocabMatchers {
		if m.pattern.MatchString(folded) {
			result.Add(m.canonical)
			seen[strings.ToLower(m.canonical)] = true
		}
	}

	for _, pattern := range degreePatterns {
		for _, match := range pattern.FindAllStringSubmatch(folded, -1) {
			phrase := strings.TrimSpace(match[1])
			if phrase == "" {
				continue
			}
			key := strings.ToLower(phrase)
			if seen[key] {
				continue
			}
			seen[key] = true
			result.Add(phrase)
		}
	}

	return result
}

// foldDiacritics strips combining marks so accented spellings still match
// the vocabularies.
func foldDiacritics(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, str)
	if err != nil {
		return str
	}
	return result
}

// SortedSkills flattens a skill set into a deterministic slice for the
// persisted document.
func SortedSkills(set mapset.Set[string]) []string {
	skills := set.ToSlice()
	sort.Strings(skills)
	return skills
}
