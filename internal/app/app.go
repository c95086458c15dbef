// Package app implements the application layer for lockscan.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/lockscan/internal/adapters/detector"
	"go.trai.ch/lockscan/internal/core/domain"
	"go.trai.ch/lockscan/internal/core/ports"
	"go.trai.ch/lockscan/internal/engine/scan"
	"go.trai.ch/zerr"
)

// jsonLogger is implemented by loggers that can switch to structured output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// App wires configuration, the affected list, the scanner and the renderers together.
type App struct {
	configLoader ports.ConfigLoader
	source       ports.AffectedSource
	scanner      *scan.Scanner
	renderers    ports.RendererFactory
	logger       ports.Logger
	getwd        func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	source ports.AffectedSource,
	scanner *scan.Scanner,
	renderers ports.RendererFactory,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		source:       source,
		scanner:      scanner,
		renderers:    renderers,
		logger:       log,
		getwd:        os.Getwd,
	}
}

// WithWorkingDir makes configuration discovery start at dir instead of the process
// working directory.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// Options are the command-line overrides applied on top of the configuration file.
type Options struct {
	// ConfigPath is an explicit configuration file. Empty means discovery.
	ConfigPath string
	// Lists are extra list files, loaded after those named in the configuration.
	Lists []string
	// NoEmbedded disables the built-in list.
	NoEmbedded bool
	// Strict overrides the configured strictness when set.
	Strict *bool
	// Format overrides the configured output format when non-empty.
	Format string
}

// Check scans the lockfile at path and writes the summary to w.
// It returns domain.ErrAffectedPackagesFound when any installed package is affected.
func (a *App) Check(ctx context.Context, w io.Writer, path string, opts Options) error {
	cfg, renderer, err := a.prepare(opts)
	if err != nil {
		return err
	}

	set, err := a.loadAffected(cfg)
	if err != nil {
		return err
	}

	report, err := a.scanner.Scan(ctx, path, cfg.Lockfile, set)
	if err != nil {
		return err
	}

	summary := domain.ScanSummary{
		Report:          report,
		ListSize:        set.TotalCount(),
		ListFingerprint: set.Fingerprint(),
	}
	if err := renderer.RenderScan(w, summary); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}

	if !report.Clean() {
		return domain.ErrAffectedPackagesFound
	}
	return nil
}

// List writes the size, fingerprint and package names of the loaded affected list.
func (a *App) List(ctx context.Context, w io.Writer, opts Options) error {
	cfg, renderer, err := a.prepare(opts)
	if err != nil {
		return err
	}

	set, err := a.loadAffected(cfg)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "list cancelled")
	}

	summary := domain.ListSummary{
		Total:       set.TotalCount(),
		Fingerprint: set.Fingerprint(),
		Names:       set.AllPackageNames(),
	}
	if err := renderer.RenderList(w, summary); err != nil {
		return zerr.Wrap(err, "failed to write list")
	}
	return nil
}

// Lookup writes every listed version of the package name.
func (a *App) Lookup(ctx context.Context, w io.Writer, name string, opts Options) error {
	if !domain.ValidatePackageName(name) {
		return domain.Tag(domain.ErrInvalidPackageName, "name", name)
	}

	cfg, renderer, err := a.prepare(opts)
	if err != nil {
		return err
	}

	set, err := a.loadAffected(cfg)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "lookup cancelled")
	}

	summary := domain.LookupSummary{Name: name}
	for _, record := range set.PackagesByName(name) {
		summary.Versions = append(summary.Versions, record.Version)
	}
	if latest, ok := set.LatestVersion(name); ok {
		summary.Latest = latest.Version
	}

	if err := renderer.RenderLookup(w, summary); err != nil {
		return zerr.Wrap(err, "failed to write lookup")
	}
	return nil
}

// prepare loads the configuration, applies opts and selects the renderer.
func (a *App) prepare(opts Options) (*domain.Config, ports.Renderer, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	renderer, err := a.renderers.For(cfg.Format)
	if err != nil {
		return nil, nil, err
	}

	if jl, ok := a.logger.(jsonLogger); ok {
		jl.SetJSON(detector.ResolveFormat(cfg.Format) == domain.FormatJSON)
	}

	return cfg, renderer, nil
}

func (a *App) loadConfig(opts Options) (*domain.Config, error) {
	var (
		cfg *domain.Config
		err error
	)

	if opts.ConfigPath != "" {
		cfg, err = a.configLoader.LoadFile(opts.ConfigPath)
	} else {
		var cwd string
		cwd, err = a.getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		cfg, err = a.configLoader.Load(cwd)
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	cfg.Lists = append(cfg.Lists, opts.Lists...)
	if opts.NoEmbedded {
		embedded := false
		cfg.Embedded = &embedded
	}
	if opts.Strict != nil {
		cfg.Strict = opts.Strict
	}
	if opts.Format != "" {
		format, err := domain.ParseFormat(opts.Format)
		if err != nil {
			return nil, err
		}
		cfg.Format = format
	}

	return cfg, nil
}

// loadAffected builds the affected set from the embedded list followed by every list file.
// Entries that fail to load are reported as warnings and skipped.
func (a *App) loadAffected(cfg *domain.Config) (*domain.AffectedSet, error) {
	var entries []string
	if cfg.UseEmbedded() {
		entries = append(entries, a.source.Embedded()...)
	}

	for _, list := range cfg.Lists {
		listEntries, err := a.source.ReadList(list)
		if err != nil {
			return nil, err
		}
		entries = append(entries, listEntries...)
	}

	var setOpts []domain.AffectedSetOption
	if cfg.UseStrict() {
		setOpts = append(setOpts, domain.WithValidator(domain.ValidatePackageString))
	}

	set := domain.NewAffectedSet(entries, setOpts...)
	for _, skipped := range set.Skipped() {
		a.logger.Warn(fmt.Sprintf("skipping affected list entry %q: %s (%s)",
			skipped.Entry, skipped.Err, domain.KindOf(skipped.Err)))
	}
	if set.TotalCount() == 0 {
		a.logger.Warn("the affected list is empty, no package can match")
	}

	return set, nil
}
