package core

import (
	"context"
	"fmt"
	"time"

	"github.com/langworld/langmatch/internal/catalog"
	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/schema"
)

// ExecuteCatalogCheck validates the configured catalog for CI/CD gating and
// prints a concise summary. It returns an error if the catalog is unusable.
func ExecuteCatalogCheck(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	start := time.Now()

	source := "embedded"
	if cfg.CatalogPath != "" {
		source = cfg.CatalogPath
	}

	var (
		records []schema.LanguageRecord
		err     error
	)
	if cfg.CatalogPath != "" {
		records, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		records, err = catalog.Load()
	}
	if err != nil {
		fmt.Printf("❌ Catalog check failed: %v\n", err)
		return err
	}

	if err := catalog.Validate(records); err != nil {
		fmt.Printf("❌ Catalog check failed: %v\n", err)
		return err
	}

	printCheckSummary(source, records, time.Since(start))
	return nil
}

// printCheckSummary prints the success case output in a format suitable for CI/CD.
func printCheckSummary(source string, records []schema.LanguageRecord, duration time.Duration) {
	categories := make(map[schema.Category]int)
	families := make(map[string]struct{})
	resources := 0
	for _, rec := range records {
		categories[rec.Category]++
		families[rec.Family] = struct{}{}
		resources += len(rec.Resources)
	}

	fmt.Println("Catalog Check Results:")

	labels := []string{"Source:", "Languages:", "Families:", "Resources:"}
	values := []any{source, len(records), len(families), resources}

	maxLabelLen := 0
	for _, label := range labels {
		if len(label) > maxLabelLen {
			maxLabelLen = len(label)
		}
	}
	for i, label := range labels {
		fmt.Printf("  %-*s %v\n", maxLabelLen+1, label, values[i])
	}
	fmt.Println()

	fmt.Printf("✅ All %d entries passed validation in %v\n\n", len(records), duration)

	fmt.Println("Entries per category:")
	order := []schema.Category{
		schema.PopularCategory,
		schema.CulturalCategory,
		schema.BusinessCategory,
		schema.EmergingCategory,
		schema.NicheCategory,
	}
	for _, cat := range order {
		if n := categories[cat]; n > 0 {
			fmt.Printf("  %s: %d\n", cat, n)
		}
	}
}
