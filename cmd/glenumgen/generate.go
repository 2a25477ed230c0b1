package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/james4k/go-glenum/internal/codegen"
	"github.com/james4k/go-glenum/internal/config"
	"github.com/james4k/go-glenum/internal/table"
)

type options struct {
	config string
	apis   []string
	dryRun bool
}

func run(ctx context.Context, log *slog.Logger, opts options) error {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}

	apis := cfg.APIs
	if len(opts.apis) > 0 {
		apis = nil
		for _, name := range opts.apis {
			a, ok := cfg.Lookup(name)
			if !ok {
				return errors.Errorf("api %q is not configured in %s", name, opts.config)
			}
			apis = append(apis, a)
		}
	}

	for _, a := range apis {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := generate(log, cfg, a, opts.dryRun); err != nil {
			return errors.Wrapf(err, "api %s", a.Name)
		}
	}
	return nil
}

func generate(log *slog.Logger, cfg *config.Config, a config.API, dryRun bool) error {
	files, err := render(log, cfg, a)
	if err != nil {
		return err
	}

	out := cfg.Path(a.Output)
	if !dryRun {
		if err := os.MkdirAll(out, 0o755); err != nil {
			return errors.Wrap(err, "creating output directory")
		}
	}
	for _, f := range files {
		path := filepath.Join(out, f.Name)
		if dryRun {
			log.Info("would write", "file", path, "bytes", len(f.Content))
			continue
		}
		if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, f.Content) {
			log.Debug("unchanged", "file", path)
			continue
		}
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", f.Name)
		}
		log.Info("wrote", "file", path)
	}
	return nil
}

// render loads the tables of a and returns the generated files without
// writing them.
func render(log *slog.Logger, cfg *config.Config, a config.API) ([]codegen.File, error) {
	tables, err := table.LoadDir(cfg.Path(a.Tables))
	if err != nil {
		return nil, err
	}
	set, err := table.Merge(a.Name, a.Prefix, tables)
	if err != nil {
		return nil, err
	}
	log.Debug("tables loaded", "api", a.Name, "types", len(set.Tables), "constants", len(set.Constants))

	return codegen.Generate(codegen.Options{
		Package:   a.Package,
		Import:    cfg.Import,
		Source:    filepath.ToSlash(a.Tables),
		NamesTag:  cfg.NamesTag,
		RangesTag: cfg.RangesTag,
	}, set)
}
