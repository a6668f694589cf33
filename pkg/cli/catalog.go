package cli

import (
	"fmt"
	"strings"

	"github.com/duynguyendang/plantcurator/pkg/vocab"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the six questions and their answer codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, q := range vocab.Questions() {
			fmt.Fprintf(out, "%s  [%s]\n", q.Title, q.Key)
			for _, o := range q.Options() {
				fmt.Fprintf(out, "  %-4s %s\n", o.Code, o.Label)
			}
		}
		return nil
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the catalog location and contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, rec, err := newRecommender(false)
		if err != nil {
			return err
		}
		defer mgr.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Catalog:  %s\n", cfg.CatalogPath())
		fmt.Fprintf(out, "Images:   %s\n", cfg.ImagesPath())
		fmt.Fprintf(out, "Mode:     %s\n", cfg.MatchMode())

		cat, err := rec.Catalog()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Plants:   %d (skipped %d)\n", cat.Len(), cat.Skipped())
		for _, r := range cat.Records() {
			attrs := r.Attributes()
			fmt.Fprintf(out, "  %s  %s\n", r.KoreanName, strings.Join(attrs[:], " / "))
		}
		return nil
	},
}
