// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/langworld/langmatch/core"
	"github.com/langworld/langmatch/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Langmatch MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, engine *core.Engine) *server.MCPServer {
	s := server.NewMCPServer(
		"Langmatch Recommendation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		engine:  engine,
	}

	// --- 1. Tool: recommend_languages ---
	s.AddTool(mcp.NewTool("recommend_languages",
		mcp.WithDescription("Score the language catalog against learner preferences and return ranked recommendations."),
		mcp.WithString("difficulty_preference", mcp.Description("Preferred difficulty (very_easy, easy, moderate, challenging, very_hard). Defaults to 'moderate'."), mcp.Enum("very_easy", "easy", "moderate", "challenging", "very_hard")),
		mcp.WithString("cultural_interests", mcp.Description("JSON array of cultural interests, e.g. [\"anime\", \"cuisine\"].")),
		mcp.WithString("practical_focus", mcp.Description("How career-driven the learner is (hobby, travel, balanced, business, career). Defaults to 'balanced'."), mcp.Enum("hobby", "travel", "balanced", "business", "career")),
		mcp.WithString("time_commitment", mcp.Description("Weekly study intensity (casual, regular, intensive). Defaults to 'regular'."), mcp.Enum("casual", "regular", "intensive")),
		mcp.WithString("known_languages", mcp.Description("JSON array of already-known language ids, e.g. [\"spanish\"].")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of recommendations returned.")),
	), h.handleRecommendLanguages)

	// --- 2. Tool: list_languages ---
	s.AddTool(mcp.NewTool("list_languages",
		mcp.WithDescription("Browse and filter the language catalog."),
		mcp.WithString("keyword", mcp.Description("Substring filter over id, name, family, regions and cultural tags.")),
		mcp.WithString("category", mcp.Description("Filter by category (popular, cultural, business, emerging, niche)."), mcp.Enum("popular", "cultural", "business", "emerging", "niche")),
		mcp.WithNumber("max_difficulty", mcp.Description("Only include languages at or below this difficulty (1-5).")),
		mcp.WithNumber("min_speakers", mcp.Description("Only include languages with at least this many total speakers.")),
	), h.handleListLanguages)

	// --- 3. Tool: explain_language ---
	s.AddTool(mcp.NewTool("explain_language",
		mcp.WithDescription("Score a single language for the given preferences, even if it would not rank in the top results."),
		mcp.WithString("language_id", mcp.Description("The catalog id of the language to explain."), mcp.Required()),
		mcp.WithString("difficulty_preference", mcp.Description("Preferred difficulty."), mcp.Enum("very_easy", "easy", "moderate", "challenging", "very_hard")),
		mcp.WithString("cultural_interests", mcp.Description("JSON array of cultural interests.")),
		mcp.WithString("practical_focus", mcp.Description("How career-driven the learner is."), mcp.Enum("hobby", "travel", "balanced", "business", "career")),
		mcp.WithString("time_commitment", mcp.Description("Weekly study intensity."), mcp.Enum("casual", "regular", "intensive")),
		mcp.WithString("known_languages", mcp.Description("JSON array of already-known language ids.")),
	), h.handleExplainLanguage)

	return s
}

// StartMCPServer starts the Langmatch MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, engine *core.Engine) error {
	s := NewMCPServer(baseCfg, engine)
	return server.ServeStdio(s)
}
