// Package app wires reading, generation and writing into the regenerate and check operations.
package app

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"
	"go.uber.org/zap"

	"ifacegen/internal/config"
	"ifacegen/internal/generation"
	"ifacegen/internal/metadata"
	"ifacegen/internal/resource"
	"ifacegen/internal/template"
	"ifacegen/internal/types"
)

// ErrStale is returned by Check when a generated file differs from what would be written.
var ErrStale = errors.New("generated files are out of date")

type App struct {
	config *config.Config
	loader *resource.Loader
	types  *types.Table
	logger *zap.SugaredLogger
}

// Result holds everything a run would write.
type Result struct {
	Records     int
	Output      string
	MarkerFound bool
	// Empty unless message bindings are configured.
	Messages string
}

// FileDiff is a unified diff of one stale file.
type FileDiff struct {
	Path string
	Diff string
}

func New(cfg *config.Config, loader *resource.Loader, logger *zap.SugaredLogger) *App {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &App{
		config: cfg,
		loader: loader,
		types:  types.NewTable(cfg.Aliases, cfg.Basic),
		logger: logger,
	}
}

// Render computes the output without touching the output files.
func (app *App) Render(ctx context.Context) (Result, error) {
	description, err := app.loader.Load(ctx, app.config.Input)
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to load interface description")
	}

	document, err := app.loader.Load(ctx, app.config.Template)
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to load template")
	}

	reader := metadata.NewReader(app.types, app.config.LineEnding, app.logger)
	records, err := reader.Read(description)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to parse %s", app.config.Input)
	}

	generator := generation.NewGenerator(app.types, app.config.LineEnding, app.config.Indent, app.logger)
	body := generator.Body(records)

	output, found := template.Splice(document, app.config.Marker, body)
	if !found {
		if app.config.Strict {
			return Result{}, errors.WithHintf(
				errors.Newf("marker %q not found in %s", app.config.Marker, app.config.Template),
				"add %s to the template where the methods belong", app.config.Marker)
		}
		app.logger.Warnw("marker not found, template copied unchanged", "marker", app.config.Marker, "template", app.config.Template)
	}

	result := Result{
		Records:     len(records),
		Output:      output,
		MarkerFound: found,
	}

	if app.config.MessagesOutput != "" {
		result.Messages, err = generation.RenderMessages(app.config.MessagesPackage, records)
		if err != nil {
			return Result{}, errors.Wrap(err, "failed to generate message bindings")
		}
	}

	return result, nil
}

// Generate renders and writes the output file, plus the message bindings when configured.
func (app *App) Generate(ctx context.Context) (Result, error) {
	result, err := app.Render(ctx)
	if err != nil {
		return Result{}, err
	}

	if err := app.loader.Save(app.config.Output, result.Output); err != nil {
		return Result{}, err
	}
	app.logger.Infow("generated", "output", app.config.Output, "methods", result.Records)

	if app.config.MessagesOutput != "" {
		if err := app.loader.Save(app.config.MessagesOutput, result.Messages); err != nil {
			return Result{}, err
		}
		app.logger.Infow("generated", "output", app.config.MessagesOutput)
	}

	return result, nil
}

// Check renders in memory and compares with the files on disk.
// It returns ErrStale together with the differing files.
func (app *App) Check(ctx context.Context) ([]FileDiff, error) {
	result, err := app.Render(ctx)
	if err != nil {
		return nil, err
	}

	expected := map[string]string{app.config.Output: result.Output}
	paths := []string{app.config.Output}
	if app.config.MessagesOutput != "" {
		expected[app.config.MessagesOutput] = result.Messages
		paths = append(paths, app.config.MessagesOutput)
	}

	diffs := make([]FileDiff, 0)
	for _, path := range paths {
		current := ""
		exists, err := app.loader.Exists(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to stat %s", path)
		}
		if exists {
			if current, err = app.loader.Load(ctx, path); err != nil {
				return nil, err
			}
		}

		if current == expected[path] {
			continue
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(current),
			B:        difflib.SplitLines(expected[path]),
			FromFile: path,
			ToFile:   path + " (generated)",
			Context:  1,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to diff %s", path)
		}
		diffs = append(diffs, FileDiff{Path: path, Diff: diff})
	}

	if len(diffs) > 0 {
		return diffs, ErrStale
	}
	return diffs, nil
}
