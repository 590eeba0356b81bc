package cmd

import (
	"github.com/khaledelg/portfolio/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the portfolio MCP server",
	Long:  `Launch an MCP server on stdio that lets AI agents read the portfolio projects, cache state and experience.`,
	// Logs go to stderr; stdio carries the protocol.
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		site, err := loadSite()
		if err != nil {
			return err
		}
		return mcp.StartMCPServer(rootCtx, cfg, newFetcher(), site)
	},
}
