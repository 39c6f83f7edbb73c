package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/langworld/langmatch/core"
	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	engine  *core.Engine
}

// surveyAnswersFromRequest maps tool arguments onto survey answers. Absent
// arguments are left out so the normalizer applies its own defaults.
func surveyAnswersFromRequest(request mcp.CallToolRequest) map[string]string {
	answers := make(map[string]string)
	for _, q := range []string{
		"difficulty_preference",
		"cultural_interests",
		"practical_focus",
		"time_commitment",
		"known_languages",
	} {
		if v := request.GetString(q, ""); v != "" {
			answers[q] = v
		}
	}
	return answers
}

func (h *toolHandler) handleRecommendLanguages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	pref, err := core.NormalizeSurvey(surveyAnswersFromRequest(request))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid survey answers: %v", err)), nil
	}
	pref.DimensionWeights = cfg.ComputedWeights

	recs, err := h.engine.GenerateTop(pref, cfg.ResultLimit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recommendation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(recs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListLanguages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := core.SearchFilter{
		Keyword:       request.GetString("keyword", ""),
		Category:      schema.Category(request.GetString("category", "")),
		MaxDifficulty: request.GetInt("max_difficulty", 0),
		MinSpeakers:   int64(request.GetInt("min_speakers", 0)),
	}

	matched := core.SearchCatalog(h.engine.Catalog(), filter)
	jsonData, _ := json.MarshalIndent(matched, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleExplainLanguage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	languageID := request.GetString("language_id", "")
	if languageID == "" {
		return mcp.NewToolResultError("language_id is required"), nil
	}

	pref, err := core.NormalizeSurvey(surveyAnswersFromRequest(request))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid survey answers: %v", err)), nil
	}
	pref.DimensionWeights = h.baseCfg.ComputedWeights

	rec, found, err := h.engine.Details(languageID, pref)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("unknown language id: %s", languageID)), nil
	}

	jsonData, _ := json.MarshalIndent(rec, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
