package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/duynguyendang/plantcurator/internal/manager"
	"github.com/duynguyendang/plantcurator/pkg/catalog"
	apperrors "github.com/duynguyendang/plantcurator/pkg/common/errors"
	"github.com/duynguyendang/plantcurator/pkg/matcher"
	"github.com/duynguyendang/plantcurator/pkg/render"
	"github.com/duynguyendang/plantcurator/pkg/vocab"
)

// Options configures a Recommender.
type Options struct {
	CatalogPath    string
	ImagesDir      string
	ImageURLPrefix string
	DefaultMode    matcher.Mode
}

// Recommender runs the load, resolve, match, render pipeline for one request.
// It keeps no per-request state; the only shared state is the catalog cache.
type Recommender struct {
	catalogs *manager.CatalogManager
	opts     Options
}

// NewRecommender creates a Recommender backed by the given catalog cache.
func NewRecommender(catalogs *manager.CatalogManager, opts Options) *Recommender {
	if opts.DefaultMode == "" {
		opts.DefaultMode = matcher.ModeScored
	}
	return &Recommender{catalogs: catalogs, opts: opts}
}

// Request is one submission of the form.
type Request struct {
	Answers matcher.Answers `json:"answers"`
	Mode    string          `json:"mode,omitempty"`
}

// Recommend builds the result view for req.
//
// Catalog failures, incomplete selections, no matches, and missing images are reported as
// messages inside the view. An error is returned only for input the form could not have
// produced: an unknown mode or an answer that is not an option of its question.
func (r *Recommender) Recommend(ctx context.Context, req Request) (*render.ResultView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode, err := matcher.ParseMode(req.Mode, r.opts.DefaultMode)
	if err != nil {
		return nil, err
	}
	sel, err := matcher.Resolve(req.Answers)
	if err != nil {
		return nil, err
	}

	view := &render.ResultView{Mode: mode, AllSelected: sel.AllSelected(), Plants: []render.PlantView{}}

	cat, catErr := r.Catalog()
	if catErr != nil {
		view.Add(render.LevelError, r.catalogMessage(catErr))
	}

	if !view.AllSelected {
		view.Add(render.LevelInfo, render.SelectAllPrompt)
		return view, nil
	}
	if catErr != nil {
		return view, nil
	}

	criteria, err := sel.Criteria()
	if err != nil {
		return nil, err
	}
	matches := matcher.Match(cat, criteria, mode)
	view.Ranked = true

	slog.Debug("recommendation computed", "mode", mode, "catalog", cat.Path(), "records", cat.Len(), "results", len(matches))

	switch {
	case len(matches) == 0 && mode == matcher.ModeExact:
		view.Add(render.LevelError, render.ExactNone())
	case len(matches) == 0:
		view.Add(render.LevelError, render.ScoredNone())
	case mode == matcher.ModeExact:
		view.Add(render.LevelSuccess, render.ExactFound(len(matches)))
	default:
		view.Add(render.LevelSuccess, render.ScoredFound(len(matches)))
	}

	for i, m := range matches {
		view.Plants = append(view.Plants, render.NewPlantView(i+1, m, mode, r.opts.ImagesDir, r.opts.ImageURLPrefix))
	}
	return view, nil
}

// Catalog returns the cached catalog, loading it if needed.
func (r *Recommender) Catalog() (*catalog.Catalog, error) {
	return r.catalogs.Get(r.opts.CatalogPath)
}

// Plant finds a catalog record by its Korean name.
func (r *Recommender) Plant(name string) (catalog.PlantRecord, error) {
	cat, err := r.Catalog()
	if err != nil {
		return catalog.PlantRecord{}, err
	}
	rec, ok := cat.Lookup(vocab.Normalize(name))
	if !ok {
		return catalog.PlantRecord{}, fmt.Errorf("%w: plant %q", apperrors.ErrNotFound, name)
	}
	return rec, nil
}

// Reload drops the cached catalog and loads it again.
func (r *Recommender) Reload() (*catalog.Catalog, error) {
	r.catalogs.Invalidate(r.opts.CatalogPath)
	return r.Catalog()
}

// Questions returns the form questions.
func (r *Recommender) Questions() []vocab.Question {
	return vocab.Questions()
}

// DefaultMode is the mode used when a request does not name one.
func (r *Recommender) DefaultMode() matcher.Mode {
	return r.opts.DefaultMode
}

// ImagesDir is the directory image files are served from.
func (r *Recommender) ImagesDir() string {
	return r.opts.ImagesDir
}

func (r *Recommender) catalogMessage(err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return render.CatalogMissing(r.opts.CatalogPath, filepath.Base(r.opts.CatalogPath))
	}
	return render.CatalogUnreadable(r.opts.CatalogPath, err)
}
