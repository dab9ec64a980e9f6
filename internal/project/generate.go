package project

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/AbdelazizMoustafa10m/Stencil/internal/resources"
	"github.com/AbdelazizMoustafa10m/Stencil/internal/template"
)

// DefaultConcurrency is the number of assets rendered in parallel when
// Options.Concurrency is not set.
const DefaultConcurrency = 4

// Options controls Generate.
type Options struct {
	// Force overwrites files that already exist in the destination.
	Force bool
	// DryRun renders every asset but writes nothing.
	DryRun bool
	// Concurrency bounds parallel rendering; values < 1 use DefaultConcurrency.
	Concurrency int
	// Logger receives per-file progress. When nil Generate is silent.
	Logger *log.Logger
}

// Result lists the outcome of Generate. Paths are slash-separated and
// relative to the destination directory, sorted.
type Result struct {
	// Written holds files written, or that would be written on a dry run.
	Written []string
	// Skipped holds files left untouched because they already existed.
	Skipped []string
}

// rendered pairs an asset with its output.
type rendered struct {
	asset  Asset
	output string
}

// Generate renders every asset of d and writes the results below destDir.
//
// All assets are rendered before anything is written, so a render error
// leaves destDir untouched. Existing files are skipped unless opts.Force is
// set.
func Generate(ctx context.Context, d Description, destDir string, opts Options) (*Result, error) {
	assets, err := Plan(d)
	if err != nil {
		return nil, fmt.Errorf("planning project: %w", err)
	}

	outputs, err := renderAll(ctx, assets, opts.Concurrency)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	res := &Result{}
	for _, r := range outputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dest := filepath.Join(destDir, filepath.FromSlash(r.asset.Path))
		if _, statErr := os.Stat(dest); statErr == nil {
			if !opts.Force {
				logger.Info("skipping existing file", "path", dest)
				res.Skipped = append(res.Skipped, r.asset.Path)
				continue
			}
			logger.Warn("overwriting existing file", "path", dest)
		}

		if opts.DryRun {
			logger.Info("would create file", "path", dest)
			res.Written = append(res.Written, r.asset.Path)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", dest, err)
		}
		if err := os.WriteFile(dest, []byte(r.output), 0o644); err != nil {
			return nil, fmt.Errorf("writing file %s: %w", dest, err)
		}
		logger.Info("created file", "path", dest, "template", r.asset.Template)
		res.Written = append(res.Written, r.asset.Path)
	}

	sort.Strings(res.Written)
	sort.Strings(res.Skipped)
	return res, nil
}

// renderAll renders assets concurrently and returns the outputs in the
// order of assets. The first failure cancels the remaining work.
func renderAll(ctx context.Context, assets []Asset, concurrency int) ([]rendered, error) {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	out := make([]rendered, len(assets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, a := range assets {
		i, a := i, a // capture loop variables
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := RenderAsset(a)
			if err != nil {
				return err
			}
			out[i] = rendered{asset: a, output: text}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// RenderAsset renders a single asset from its bundled template.
func RenderAsset(a Asset) (string, error) {
	tmpl, err := resources.Load(a.Template)
	if err != nil {
		return "", fmt.Errorf("loading template for %s: %w", a.Path, err)
	}
	text, err := template.Render(tmpl, a.Context)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", a.Path, err)
	}
	return text, nil
}
