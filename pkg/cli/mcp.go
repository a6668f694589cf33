package cli

import (
	"github.com/duynguyendang/plantcurator/pkg/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the recommender over MCP on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, rec, err := newRecommender(cfg.Watch)
		if err != nil {
			return err
		}
		defer mgr.Close()
		return mcp.Run(cmd.Context(), rec)
	},
}
