package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/schema"
)

// ExecuteDraftSave merges the --answer overrides into the named draft.
// Answers are validated before saving so a draft never holds a payload the
// normalizer would reject later.
func ExecuteDraftSave(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	if len(cfg.AnswerOverrides) == 0 {
		return schema.NewConfigurationError("draft save requires at least one --answer pair")
	}

	store, err := requireDraftStore(mgr)
	if err != nil {
		return err
	}

	if _, err := NormalizeSurvey(cfg.AnswerOverrides); err != nil {
		return err
	}

	if err := store.SaveDraft(cfg.DraftName, cfg.AnswerOverrides); err != nil {
		return fmt.Errorf("failed to save draft %q: %w", cfg.DraftName, err)
	}

	fmt.Printf("Saved %d answer(s) to draft %q\n", len(cfg.AnswerOverrides), cfg.DraftName)
	return nil
}

// ExecuteDraftShow prints the saved answers for the named draft.
func ExecuteDraftShow(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	store, err := requireDraftStore(mgr)
	if err != nil {
		return err
	}

	answers, err := store.LoadDraft(cfg.DraftName)
	if err != nil {
		return fmt.Errorf("failed to load draft %q: %w", cfg.DraftName, err)
	}
	if len(answers) == 0 {
		fmt.Printf("Draft %q is empty\n", cfg.DraftName)
		return nil
	}

	questions := make([]string, 0, len(answers))
	for q := range answers {
		questions = append(questions, q)
	}
	sort.Strings(questions)

	fmt.Printf("Draft %q:\n", cfg.DraftName)
	for _, q := range questions {
		fmt.Printf("  %s = %s\n", q, answers[q])
	}
	return nil
}

// ExecuteDraftList prints the names of all saved drafts.
func ExecuteDraftList(_ context.Context, _ *contract.Config, mgr contract.StoreManager) error {
	store, err := requireDraftStore(mgr)
	if err != nil {
		return err
	}

	names, err := store.ListDrafts()
	if err != nil {
		return fmt.Errorf("failed to list drafts: %w", err)
	}
	if len(names) == 0 {
		fmt.Println("No drafts saved")
		return nil
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

// ExecuteDraftClear removes the named draft.
func ExecuteDraftClear(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	store, err := requireDraftStore(mgr)
	if err != nil {
		return err
	}

	if err := store.ClearDraft(cfg.DraftName); err != nil {
		return fmt.Errorf("failed to clear draft %q: %w", cfg.DraftName, err)
	}

	fmt.Printf("Cleared draft %q\n", cfg.DraftName)
	return nil
}

func requireDraftStore(mgr contract.StoreManager) (contract.DraftStore, error) {
	store := mgr.GetDraftStore()
	if store == nil {
		return nil, schema.NewConfigurationError("drafts require a store backend, got 'none'")
	}
	return store, nil
}
