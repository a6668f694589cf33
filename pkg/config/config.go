package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "github.com/duynguyendang/plantcurator/pkg/common/errors"
	"github.com/duynguyendang/plantcurator/pkg/matcher"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no config path is given.
const DefaultFile = "plantcurator.yaml"

// Config holds runtime configuration.
type Config struct {
	// BaseDir anchors relative catalog and image paths. Always absolute after Load.
	BaseDir string `yaml:"base_dir"`
	// CatalogFile is the plant catalog, JSON or YAML.
	CatalogFile string `yaml:"catalog_file"`
	// ImagesDir holds the files named by image_file.
	ImagesDir string `yaml:"images_dir"`
	// Mode is the default match mode, "scored" or "exact".
	Mode string `yaml:"mode"`
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`
	// Watch invalidates the cached catalog when its file changes.
	Watch bool `yaml:"watch"`
	// CacheSize bounds the number of catalogs held in memory.
	CacheSize int `yaml:"cache_size"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
}

// Default returns a default configuration.
func Default() Config {
	return Config{
		BaseDir:     "./data",
		CatalogFile: "plants_data.json",
		ImagesDir:   "images",
		Mode:        string(matcher.ModeScored),
		Addr:        ":8080",
		CacheSize:   8,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load builds a Config from defaults, the YAML file at path, and the environment, in
// increasing precedence. An empty path falls back to DefaultFile, which may be absent.
// When a file is read, a relative base_dir (including the default) is anchored at the
// file's directory; without a file, or when set from the environment, it is relative to
// the working directory.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		// Relative base_dir in a config file is relative to that file.
		if !filepath.IsAbs(cfg.BaseDir) {
			cfg.BaseDir = filepath.Join(filepath.Dir(path), cfg.BaseDir)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Resolve(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"PLANT_BASE_DIR":   &c.BaseDir,
		"PLANT_CATALOG":    &c.CatalogFile,
		"PLANT_IMAGES_DIR": &c.ImagesDir,
		"PLANT_MATCH_MODE": &c.Mode,
		"PLANT_LOG_LEVEL":  &c.LogLevel,
		"PLANT_LOG_FORMAT": &c.LogFormat,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	if v := os.Getenv("PLANT_WATCH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: PLANT_WATCH=%q: %v", apperrors.ErrInvalidInput, v, err)
		}
		c.Watch = b
	}
	return nil
}

// Resolve makes BaseDir absolute so nothing depends on the working directory later.
func (c *Config) Resolve() error {
	abs, err := filepath.Abs(c.BaseDir)
	if err != nil {
		return fmt.Errorf("failed to resolve base dir %s: %w", c.BaseDir, err)
	}
	c.BaseDir = abs
	return nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := matcher.ParseMode(c.Mode, matcher.ModeScored); err != nil {
		return err
	}
	if c.CatalogFile == "" {
		return fmt.Errorf("%w: catalog_file is empty", apperrors.ErrInvalidInput)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("%w: cache_size must be positive, got %d", apperrors.ErrInvalidInput, c.CacheSize)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log_format %q", apperrors.ErrInvalidInput, c.LogFormat)
	}
	return nil
}

// MatchMode returns the configured default mode.
func (c Config) MatchMode() matcher.Mode {
	m, err := matcher.ParseMode(c.Mode, matcher.ModeScored)
	if err != nil {
		return matcher.ModeScored
	}
	return m
}

// CatalogPath is the catalog file joined onto BaseDir unless already absolute.
func (c Config) CatalogPath() string {
	return c.join(c.CatalogFile)
}

// ImagesPath is the image directory joined onto BaseDir unless already absolute.
func (c Config) ImagesPath() string {
	return c.join(c.ImagesDir)
}

func (c Config) join(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}
