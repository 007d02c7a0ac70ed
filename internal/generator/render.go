package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/calumari/buco/internal/config"
	"github.com/calumari/buco/internal/ctxlog"
)

// request is what one generated file is made from, after flags and the
// config file have been merged.
type request struct {
	Types   []string
	Strict  func(name string) bool // forced strict mode, in addition to directives
	Command string
	Version string
}

// run orchestrates loading, configuration, extraction, synthesis, and file emission.
func run(ctx context.Context, cfg Config) error {
	logger := ctxlog.FromContext(ctx)
	if cfg.Output == "" {
		return errors.New("no output file provided")
	}
	absDir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return err
	}
	outPath := filepath.Join(absDir, cfg.Output)
	pkg, err := loadDir(ctx, absDir, outPath)
	if err != nil {
		return err
	}
	logger.Debug("Loaded package.", "package", pkg.Path, "files", len(pkg.Files))

	var file *config.File
	if cfg.ConfigFile != "" {
		file, err = config.Load(cfg.ConfigFile, config.Vars{Package: pkg.Name, Dir: filepath.Base(absDir)})
		if err != nil {
			return err
		}
		if file.Output != "" && file.Output != cfg.Output {
			// the config names a different output file; reload so its stale
			// declarations are the ones ignored
			outPath = filepath.Join(absDir, file.Output)
			if pkg, err = loadDir(ctx, absDir, outPath); err != nil {
				return err
			}
		}
	}

	req := request{
		Types:   mergeTypes(cfg.Types, file.RecordNames()),
		Strict:  func(name string) bool { return cfg.Strict || file.StrictFor(name) },
		Command: cfg.Command,
		Version: cfg.Version,
	}
	if len(req.Types) == 0 {
		return errors.New("no types provided")
	}
	src, err := generate(ctx, pkg, req)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return err
	}
	logger.Info("Wrote builders.", "file", outPath, "types", strings.Join(req.Types, ","))
	return nil
}

// generate renders the builders of req.Types in pkg. Every record is
// extracted and synthesized before failing so all diagnostics are reported
// together.
func generate(ctx context.Context, pkg *sourcePackage, req request) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)
	if err := ensureTemplates(); err != nil {
		return nil, err
	}
	g := newGenerator(pkg)
	var (
		models []recordModel
		errs   []error
	)
	for _, name := range req.Types {
		rec, err := pkg.extractRecord(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if req.Strict != nil && req.Strict(name) {
			rec.Strict = true
		}
		m, err := g.synthesize(rec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		logger.Debug("Synthesized builder.", "record", rec.Name, "fields", len(rec.Fields), "optional", len(rec.optionalIndexes()), "strict", rec.Strict, "finalizers", len(m.Finalizers))
		models = append(models, *m)
	}
	for _, ref := range pkg.Undefined {
		if _, ok := g.claimed[ref.Name]; !ok {
			errs = append(errs, ref.Err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	data := fileModel{
		Package: pkg.Name,
		Source:  strings.Join(req.Types, ", "),
		Command: req.Command,
		Version: req.Version,
		Imports: g.resolver.imports(),
		Records: models,
	}
	var out bytes.Buffer
	if err := fileTmpl.ExecuteTemplate(&out, tmplFile, data); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	formatted, err := imports.Process(pkg.Output, out.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true})
	if err != nil {
		logger.Warn("Generated code could not be formatted; writing it unformatted.", "error", err)
		return out.Bytes(), nil
	}
	return formatted, nil
}

// mergeTypes joins flag and config type names, dropping duplicates and keeping
// first-seen order.
func mergeTypes(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		for _, name := range l {
			name = strings.TrimSpace(name)
			if name == "" || slices.Contains(out, name) {
				continue
			}
			out = append(out, name)
		}
	}
	return out
}
