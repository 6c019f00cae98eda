// Package app wires configuration, logging and the catalog client into
// either the interactive TUI or the plain text renderer.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/devnullvoid/shoptui/internal/config"
	"github.com/devnullvoid/shoptui/internal/logger"
	"github.com/devnullvoid/shoptui/internal/render"
	"github.com/devnullvoid/shoptui/internal/ui/components"
	"github.com/devnullvoid/shoptui/internal/ui/models"
	"github.com/devnullvoid/shoptui/internal/ui/theme"
	"github.com/devnullvoid/shoptui/internal/version"
	"github.com/devnullvoid/shoptui/pkg/catalog"
	"github.com/devnullvoid/shoptui/pkg/catalog/interfaces"
)

// Options configures Run.
type Options struct {
	// Plain forces the text renderer even on a terminal.
	Plain bool
	// Category is selected once the catalog is ready.
	Category string
	// Stdout receives plain output. Defaults to os.Stdout.
	Stdout io.Writer
}

// Run builds the catalog client and shows the product list.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if cfg.Debug {
		level = logger.LevelDebug
	}

	plain := opts.Plain || !isTerminal(opts.Stdout)

	mainLogger, err := newLogger(level, cfg.LogDir, plain)
	if err != nil {
		return err
	}
	logger.SetGlobalLogger(mainLogger)
	models.SetUILogger(mainLogger.Named("ui"))

	defer func() {
		models.SetUILogger(nil)
		logger.SetGlobalLogger(nil)
		_ = mainLogger.Close()
	}()

	client, err := catalog.NewClient(
		cfg.ProductsURL,
		catalog.WithLogger(mainLogger.Named("catalog")),
		catalog.WithUserAgent(version.UserAgent()),
	)
	if err != nil {
		return err
	}

	mainLogger.Debug("Starting %s (plain=%t, level=%s) against %s",
		version.GetVersionString(), plain, mainLogger.GetLevel(), client.Endpoint())

	if plain {
		return RunPlain(ctx, client, opts.Stdout, opts.Category, models.GetUILogger())
	}

	if err := theme.Apply(&cfg.Theme); err != nil {
		mainLogger.Error("Theme: %v", err)
	}

	tui := components.NewApp(ctx, client, cfg)
	tui.SetInitialCategory(opts.Category)

	return tui.Run()
}

// RunPlain fetches the catalog once, applies category and writes the
// resulting view to w.
func RunPlain(ctx context.Context, fetcher catalog.Fetcher, w io.Writer, category string, log interfaces.Logger) error {
	state := models.NewViewState(log)

	products, err := fetcher.FetchCatalog(ctx)
	state.Settle(products, err)

	if category != "" && state.Phase() == models.PhaseReady {
		if !state.SelectLabel(category) {
			log.Info("Ignoring unknown category %q", category)
		}
	}

	return render.Render(w, state)
}

// newLogger logs to a file under the TUI so the screen is not corrupted.
// Plain mode logs to stderr.
func newLogger(level logger.Level, logDir string, plain bool) (*logger.Logger, error) {
	if plain {
		return logger.NewSimpleLogger(level), nil
	}

	l, err := logger.NewInternalLogger(level, logDir)
	if err != nil {
		return nil, fmt.Errorf("open log in %s: %w", logDir, err)
	}

	return l, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
