package cli

import (
	"log/slog"
	"os"

	"github.com/duynguyendang/plantcurator/internal/manager"
	"github.com/duynguyendang/plantcurator/pkg/config"
	"github.com/duynguyendang/plantcurator/pkg/server"
	"github.com/duynguyendang/plantcurator/pkg/service"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	baseDirFlag string
	catalogFlag string
	imagesFlag  string
	modeFlag    string
	logLevel    string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "plantcurator",
	Short: "Indoor plant recommendations from six preference answers",
	Long:  "Recommends indoor plants from six preference answers: care, light, size, air purification, pet safety, growth speed.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		f := cmd.Flags()
		if f.Changed("base-dir") {
			loaded.BaseDir = baseDirFlag
			if err := loaded.Resolve(); err != nil {
				return err
			}
		}
		if f.Changed("catalog") {
			loaded.CatalogFile = catalogFlag
		}
		if f.Changed("images") {
			loaded.ImagesDir = imagesFlag
		}
		if f.Changed("mode") {
			loaded.Mode = modeFlag
		}
		if f.Changed("log-level") {
			loaded.LogLevel = logLevel
		}
		if err := loaded.Validate(); err != nil {
			return err
		}

		cfg = loaded
		slog.SetDefault(cfg.NewLogger(os.Stderr))
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")
	pf.StringVar(&baseDirFlag, "base-dir", "", "directory holding the catalog and images")
	pf.StringVar(&catalogFlag, "catalog", "", "catalog file, relative to base dir")
	pf.StringVar(&imagesFlag, "images", "", "image directory, relative to base dir")
	pf.StringVar(&modeFlag, "mode", "", "match mode: scored or exact")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(mcpCmd)
}

// newRecommender wires the catalog cache and recommender from cfg.
// The caller owns the returned manager and must Close it.
func newRecommender(watch bool) (*manager.CatalogManager, *service.Recommender, error) {
	mgr, err := manager.NewCatalogManager(cfg.CacheSize)
	if err != nil {
		return nil, nil, err
	}
	if watch {
		if err := mgr.Watch(); err != nil {
			mgr.Close()
			return nil, nil, err
		}
	}
	rec := service.NewRecommender(mgr, service.Options{
		CatalogPath:    cfg.CatalogPath(),
		ImagesDir:      cfg.ImagesPath(),
		ImageURLPrefix: server.ImagesRoute,
		DefaultMode:    cfg.MatchMode(),
	})
	return mgr, rec, nil
}
