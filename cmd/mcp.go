package cmd

import (
	"github.com/langworld/langmatch/core"
	"github.com/langworld/langmatch/internal/catalog"
	"github.com/langworld/langmatch/internal/mcp"
	"github.com/langworld/langmatch/schema"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Langmatch MCP server",
	Long:  `Launch an MCP server that allows AI agents to generate language recommendations via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// stdio carries the protocol, so setup must stay quiet on stdout.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		records, err := loadMCPCatalog()
		if err != nil {
			return err
		}
		engine := core.NewEngine(records, cfg.Workers)
		return mcp.StartMCPServer(rootCtx, cfg, engine)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// loadMCPCatalog resolves the catalog source the same way the executors do.
func loadMCPCatalog() ([]schema.LanguageRecord, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}
	return catalog.Load()
}
