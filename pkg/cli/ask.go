package cli

import (
	"os"

	"github.com/duynguyendang/plantcurator/pkg/repl"
	"github.com/spf13/cobra"
)

var askColor string

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer the six questions interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, rec, err := newRecommender(false)
		if err != nil {
			return err
		}
		defer mgr.Close()

		rc := repl.DefaultConfig()
		rc.Mode = cfg.MatchMode()
		rc.Color = resolveColor(askColor, cmd.OutOrStdout() == os.Stdout)
		return repl.Run(cmd.Context(), rc, rec, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	askCmd.Flags().StringVar(&askColor, "color", "auto", "color output: auto, always, never")
}
