// Package generate runs one gen-remix invocation: it loads every configured
// package, scans its declarations, aggregates the exports and writes the
// rendered module. Every step runs sequentially in package order and any
// failure aborts the run before the output file is touched.
package generate

import (
	"io"
	"path/filepath"

	"github.com/arthur-debert/gen-remix/pkg/aggregate"
	"github.com/arthur-debert/gen-remix/pkg/clock"
	"github.com/arthur-debert/gen-remix/pkg/config"
	"github.com/arthur-debert/gen-remix/pkg/errors"
	"github.com/arthur-debert/gen-remix/pkg/filesystem"
	"github.com/arthur-debert/gen-remix/pkg/logging"
	"github.com/arthur-debert/gen-remix/pkg/packages"
	"github.com/arthur-debert/gen-remix/pkg/render"
	"github.com/arthur-debert/gen-remix/pkg/scanner"
	"github.com/arthur-debert/gen-remix/pkg/types"
)

// Progress receives human-facing progress events
type Progress interface {
	Start(output string)
	Package(name, version string)
	Collision(name, kept, dropped string)
	Writing(path string)
	Done()
}

// Options configures a run
type Options struct {
	FS       types.FS
	Clock    clock.Clock
	Progress Progress

	// DryRun writes the generated text to Stdout instead of the output file
	DryRun bool
	Stdout io.Writer
}

// Result describes a finished run
type Result struct {
	Path      string
	Content   string
	Packages  []types.PackageExportSet
	Aggregate *types.Output
	Written   bool
}

// Run generates the aggregation module described by cfg.
func Run(cfg *config.Config, opts Options) (*Result, error) {
	logger := logging.GetLogger("generate")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	if opts.Clock == nil {
		opts.Clock = &clock.RealClock{}
	}
	progress := opts.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	progress.Start(filepath.Base(cfg.Output))

	sets, err := ScanPackages(opts.FS, cfg.NodeModules, cfg.Exports, progress)
	if err != nil {
		return nil, err
	}

	out, err := aggregate.Aggregate(sets, cfg.Overrides)
	if err != nil {
		return nil, err
	}

	for _, c := range out.Collisions {
		logger.Warn().
			Str("name", c.Name).
			Str("kept", c.Kept).
			Str("dropped", c.Dropped).
			Msg("Export name already taken, dropping it")
		progress.Collision(c.Name, c.Kept, c.Dropped)
	}

	result := &Result{
		Path:      cfg.Output,
		Content:   render.Render(out, opts.Clock.Now()),
		Packages:  sets,
		Aggregate: out,
	}

	if opts.DryRun {
		if opts.Stdout != nil {
			if _, err := io.WriteString(opts.Stdout, result.Content+"\n"); err != nil {
				return nil, errors.Wrap(err, errors.ErrFileWrite, "cannot write generated module")
			}
		}
		logger.Info().Str("output", cfg.Output).Msg("Dry run, output not written")
		return result, nil
	}

	progress.Writing(cfg.Output)
	if err := filesystem.WriteFileAtomic(opts.FS, cfg.Output, []byte(result.Content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", cfg.Output).
			WithDetail("path", cfg.Output)
	}
	result.Written = true
	progress.Done()

	logger.Info().
		Str("output", cfg.Output).
		Int("packages", len(sets)).
		Int("collisions", len(out.Collisions)).
		Msg("Generated module")

	return result, nil
}

// ScanPackages loads and scans each named package, in order.
func ScanPackages(fs types.FS, nodeModules string, names []string, progress Progress) ([]types.PackageExportSet, error) {
	logger := logging.GetLogger("generate")
	if progress == nil {
		progress = nopProgress{}
	}

	resolver := packages.NewResolver(fs, nodeModules)
	sets := make([]types.PackageExportSet, 0, len(names))
	for _, name := range names {
		pkg, err := resolver.Load(name)
		if err != nil {
			return nil, err
		}
		progress.Package(pkg.Name, pkg.Version)

		scanned := scanner.Scan(pkg.Declarations)
		if scanned.IsEmpty() {
			logger.Info().
				Str("package", name).
				Str("typings", pkg.TypingsPath).
				Msg("No export clauses found")
		}
		logger.Debug().
			Str("package", name).
			Int("values", len(scanned.Values)).
			Int("types", len(scanned.Types)).
			Msg("Scanned declarations")

		sets = append(sets, types.PackageExportSet{
			Name:    pkg.Name,
			Version: pkg.Version,
			Values:  scanned.Values,
			Types:   scanned.Types,
		})
	}
	return sets, nil
}

type nopProgress struct{}

func (nopProgress) Start(string) {}
func (nopProgress) Package(string, string) {}
func (nopProgress) Collision(string, string, string) {}
func (nopProgress) Writing(string) {}
func (nopProgress) Done() {}
