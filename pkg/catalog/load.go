package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/duynguyendang/plantcurator/pkg/common/errors"
	"github.com/duynguyendang/plantcurator/pkg/vocab"
	"gopkg.in/yaml.v3"
)

// Load reads a catalog file. Files ending in .yaml or .yml are parsed as YAML, anything else
// as JSON; both hold a top-level list of records in catalog order.
//
// Entries without a korean_name are skipped and counted in Skipped. Entries with codes that
// are not answer options are kept and logged. Any read or parse
// failure is returned wrapped in ErrCatalogUnavailable together with the path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", errors.ErrCatalogUnavailable, path, err)
	}

	var records []PlantRecord
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &records)
	default:
		err = json.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", errors.ErrCatalogUnavailable, path, err)
	}

	c := &Catalog{path: path, records: make([]PlantRecord, 0, len(records))}
	for i, r := range records {
		r.KoreanName = vocab.Normalize(r.KoreanName)
		if r.KoreanName == "" {
			slog.Warn("skipping catalog entry without korean_name", "path", path, "index", i)
			c.skipped++
			continue
		}
		if bad := r.UnknownAttributes(); len(bad) > 0 {
			slog.Warn("catalog entry has unknown attribute codes", "path", path, "name", r.KoreanName, "fields", bad)
		}
		c.records = append(c.records, r)
	}
	return c, nil
}

// ImagePath joins a record's image_file onto imagesDir.
// It reports false when the record has no image or names a path outside imagesDir.
func ImagePath(imagesDir, file string) (string, bool) {
	file = strings.TrimSpace(file)
	if file == "" || !filepath.IsLocal(file) {
		return "", false
	}
	return filepath.Join(imagesDir, file), true
}
