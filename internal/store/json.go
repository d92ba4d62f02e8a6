// Package store persists the scrape document. The document is written
// atomically as a whole: a half-written file must never be visible to the
// dashboard that polls it.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-jobpulse-automation/internal/models"
)

// SaveDocument writes doc to path as pretty-printed UTF-8 JSON via a temp
// file and rename.
func SaveDocument(doc models.ScrapeDocument, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// LoadDocument reads a previously persisted document.
func LoadDocument(path string) (models.ScrapeDocument, error) {
	var doc models.ScrapeDocument
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}
