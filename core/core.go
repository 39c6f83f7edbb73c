// Package core has core logic for survey normalization, scoring and ranking.
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/langworld/langmatch/internal/catalog"
	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/internal/outwriter"
	"github.com/langworld/langmatch/schema"
)

// ExecutorFunc defines the function signature for executing different command modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// ExecuteRecommend runs the full recommendation pipeline and prints ranked
// results to stdout. It serves as the main entry point for the 'recommend' command.
func ExecuteRecommend(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()

	records, err := loadCatalogRecords(cfg)
	if err != nil {
		return err
	}

	answers, err := resolveSurveyAnswers(cfg, mgr)
	if err != nil {
		return err
	}

	pref, err := NormalizeSurvey(answers)
	if err != nil {
		return err
	}
	pref.DimensionWeights = cfg.ComputedWeights

	engine := NewEngine(records, cfg.Workers)
	recs, err := engine.GenerateTop(pref, cfg.ResultLimit)
	if err != nil {
		return err
	}

	recordRun(cfg, mgr, pref, recs)

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteRecommendations(recs, cfg, duration)
}

// ExecuteLanguages filters the catalog and prints matching entries to stdout.
// It serves as the main entry point for the 'languages' command.
func ExecuteLanguages(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	records, err := loadCatalogRecords(cfg)
	if err != nil {
		return err
	}

	filter := SearchFilter{
		Keyword:       cfg.Keyword,
		Category:      cfg.Category,
		MaxDifficulty: cfg.MaxDifficulty,
		MinSpeakers:   cfg.MinSpeakers,
		PopularOnly:   cfg.PopularOnly,
	}
	matched := SearchCatalog(records, filter)

	return outwriter.NewOutWriter().WriteLanguages(matched, cfg)
}

// ExecuteWeights prints the active dimension weight table to stdout.
func ExecuteWeights(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	weights := cfg.ComputedWeights
	if weights == nil {
		weights = schema.DefaultDimensionWeights
	}
	return outwriter.NewOutWriter().WriteWeights(weights, cfg)
}

// ExecuteHistory prints recently recorded runs to stdout.
func ExecuteHistory(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	store := mgr.GetHistoryStore()
	if store == nil {
		return schema.NewConfigurationError("history requires a store backend, got 'none'")
	}

	runs, err := store.ListRuns(cfg.HistoryLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	return outwriter.NewOutWriter().WriteHistory(runs, cfg)
}

// loadCatalogRecords loads and validates the language catalog, preferring an
// explicit file path over the embedded data.
func loadCatalogRecords(cfg *contract.Config) ([]schema.LanguageRecord, error) {
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
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if err := catalog.Validate(records); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	return records, nil
}

// resolveSurveyAnswers builds the effective answer set for one run.
// Precedence, lowest to highest: saved draft, survey file, --answer overrides.
func resolveSurveyAnswers(cfg *contract.Config, mgr contract.StoreManager) (map[string]string, error) {
	answers := make(map[string]string)

	if cfg.FromDraft {
		store := mgr.GetDraftStore()
		if store == nil {
			return nil, schema.NewConfigurationError("--from-draft requires a store backend, got 'none'")
		}
		saved, err := store.LoadDraft(cfg.DraftName)
		if err != nil {
			return nil, fmt.Errorf("failed to load draft %q: %w", cfg.DraftName, err)
		}
		for q, a := range saved {
			answers[q] = a
		}
	}

	if cfg.SurveyPath != "" {
		fromFile, err := loadSurveyFile(cfg.SurveyPath)
		if err != nil {
			return nil, err
		}
		for q, a := range fromFile {
			answers[q] = a
		}
	}

	for q, a := range cfg.AnswerOverrides {
		answers[q] = a
	}

	return answers, nil
}

// loadSurveyFile reads a survey submission from a JSON file of
// question id to answer pairs.
func loadSurveyFile(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read survey file: %w", err)
	}
	var answers map[string]string
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse survey file %s: %w", path, err)
	}
	return answers, nil
}

// recordRun persists a summary of the completed run. Recording is best
// effort: a store failure warns but never fails the recommendation itself.
func recordRun(cfg *contract.Config, mgr contract.StoreManager, pref schema.UserPreference, recs []schema.Recommendation) {
	if cfg.NoRecord {
		return
	}
	store := mgr.GetHistoryStore()
	if store == nil {
		return
	}

	prefJSON, err := json.Marshal(pref)
	if err != nil {
		contract.LogWarn("Failed to encode preference for run history", err)
		return
	}

	run := schema.RunRecord{
		RunID:       uuid.NewString(),
		CreatedAt:   time.Now(),
		Preference:  string(prefJSON),
		ResultCount: len(recs),
	}
	if len(recs) > 0 {
		run.TopLanguage = recs[0].Language.ID
		run.TopScore = recs[0].MatchScore
	}

	if err := store.RecordRun(run); err != nil {
		contract.LogWarn("Failed to record run history", err)
	}
}
