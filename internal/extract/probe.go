package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SnapshotProbe answers selector queries against a static HTML snapshot,
// so count extraction can run without holding a live page handle.
type SnapshotProbe struct {
	doc *goquery.Document
}

func NewSnapshotProbe(html string) (*SnapshotProbe, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &SnapshotProbe{doc: doc}, nil
}

func (p *SnapshotProbe) QueryTexts(selector string) ([]string, error) {
	var texts []string
	p.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			texts = append(texts, text)
		}
	})
	return texts, nil
}
