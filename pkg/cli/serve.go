package cli

import (
	"log/slog"

	"github.com/duynguyendang/plantcurator/pkg/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web form and REST API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}
		watch := cfg.Watch || serveWatch

		mgr, rec, err := newRecommender(watch)
		if err != nil {
			return err
		}
		defer mgr.Close()

		// Warm the cache so a broken catalog shows up in the log at startup.
		if _, err := rec.Catalog(); err != nil {
			slog.Warn("starting without a catalog", "path", cfg.CatalogPath(), "error", err)
		}

		slog.Info("starting server", "addr", addr, "catalog", cfg.CatalogPath(), "mode", cfg.MatchMode(), "watch", watch)
		return server.NewServer(rec).Run(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the catalog when its file changes")
}
