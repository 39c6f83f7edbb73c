// Package catalog loads and validates the language catalog. The embedded
// catalog ships with the binary; an alternate catalog can be loaded from a
// JSON file with the same shape.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/langworld/langmatch/schema"
)

//go:embed data/languages.json
var dataFS embed.FS

// catalogFile mirrors the on-disk JSON document shape.
type catalogFile struct {
	Languages []schema.LanguageRecord `json:"languages"`
}

// Load returns the embedded language catalog, validated.
func Load() ([]schema.LanguageRecord, error) {
	raw, err := dataFS.ReadFile("data/languages.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog: %w", err)
	}
	return parse(raw)
}

// LoadFile loads and validates a catalog from an external JSON file.
func LoadFile(path string) ([]schema.LanguageRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %q: %w", path, err)
	}
	return parse(raw)
}

func parse(raw []byte) ([]schema.LanguageRecord, error) {
	var doc catalogFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	if err := Validate(doc.Languages); err != nil {
		return nil, err
	}
	return doc.Languages, nil
}

// Validate checks the catalog invariants: unique non-empty ids, difficulty
// within [1,5], non-negative speaker counts, and known categories.
func Validate(records []schema.LanguageRecord) error {
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			return fmt.Errorf("catalog entry %d has an empty id", i)
		}
		if _, dup := seen[rec.ID]; dup {
			return fmt.Errorf("catalog entry %q is duplicated", rec.ID)
		}
		seen[rec.ID] = struct{}{}

		if rec.Difficulty < 1 || rec.Difficulty > 5 {
			return fmt.Errorf("catalog entry %q has difficulty %d outside [1,5]", rec.ID, rec.Difficulty)
		}
		if rec.Speakers.Total < 0 || rec.Speakers.Native < 0 || rec.Speakers.Secondary < 0 {
			return fmt.Errorf("catalog entry %q has a negative speaker count", rec.ID)
		}
		if _, ok := schema.ValidCategories[rec.Category]; !ok {
			return fmt.Errorf("catalog entry %q has unknown category %q", rec.ID, rec.Category)
		}
	}
	return nil
}

// FindByID returns the record with the given id, or false if absent.
func FindByID(records []schema.LanguageRecord, id string) (schema.LanguageRecord, bool) {
	for _, rec := range records {
		if rec.ID == id {
			return rec, true
		}
	}
	return schema.LanguageRecord{}, false
}

// FamilyOf resolves a language id to its family through the catalog.
// Unknown ids yield an empty family, which never matches anything.
func FamilyOf(records []schema.LanguageRecord, id string) string {
	if rec, ok := FindByID(records, id); ok {
		return rec.Family
	}
	return ""
}
