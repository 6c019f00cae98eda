// Package bootstrap turns command-line options into a validated
// configuration and starts the application.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/devnullvoid/shoptui/internal/app"
	"github.com/devnullvoid/shoptui/internal/config"
	"github.com/devnullvoid/shoptui/internal/version"
	"github.com/devnullvoid/shoptui/pkg/catalog"
)

// BootstrapOptions contains all the options for bootstrapping the application.
type BootstrapOptions struct {
	ConfigPath string
	Version    bool
	Plain      bool
	Category   string

	// Flag values for config overrides. Empty or false means unset.
	FlagProductsURL string
	FlagDebug       bool
	FlagLogLevel    string
	FlagLogDir      string

	// Out receives version output. Defaults to os.Stdout.
	Out io.Writer
}

// BootstrapResult contains the result of the bootstrap process.
type BootstrapResult struct {
	Config     *config.Config
	ConfigPath string
	Plain      bool
	Category   string
}

// Bootstrap resolves configuration with precedence flags > environment >
// config file > defaults. A nil result with a nil error means there is
// nothing left to run (e.g. --version).
func Bootstrap(opts BootstrapOptions) (*BootstrapResult, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.Version {
		printVersion(opts.Out)
		return nil, nil
	}

	if opts.Category != "" && catalog.CategoryIndex(opts.Category) < 0 {
		return nil, fmt.Errorf("unknown category %q (available: %s)",
			opts.Category, strings.Join(catalog.Categories(), ", "))
	}

	cfg := config.NewConfig()

	configPath := ResolveConfigPath(opts.ConfigPath)
	if configPath != "" {
		if err := cfg.MergeWithFile(configPath); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	cfg.MergeEnv()
	applyFlagsToConfig(cfg, opts)

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &BootstrapResult{
		Config:     cfg,
		ConfigPath: configPath,
		Plain:      opts.Plain,
		Category:   opts.Category,
	}, nil
}

func applyFlagsToConfig(cfg *config.Config, opts BootstrapOptions) {
	if opts.FlagProductsURL != "" {
		cfg.ProductsURL = strings.TrimSpace(opts.FlagProductsURL)
	}
	if opts.FlagDebug {
		cfg.Debug = true
	}
	if opts.FlagLogLevel != "" {
		cfg.LogLevel = strings.TrimSpace(opts.FlagLogLevel)
	}
	if opts.FlagLogDir != "" {
		cfg.LogDir = opts.FlagLogDir
	}
}

// StartApplication runs the application until the user quits or the
// process is interrupted.
func StartApplication(result *BootstrapResult) error {
	if result == nil {
		return fmt.Errorf("bootstrap result is nil")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := app.Run(ctx, result.Config, app.Options{
		Plain:    result.Plain,
		Category: result.Category,
	})
	if err != nil {
		return handleStartupError(err, result.Config)
	}

	return nil
}

// ResolveConfigPath returns flagPath, else SHOPTUI_CONFIG, else the first
// config file found in the default locations, else "".
func ResolveConfigPath(flagPath string) string {
	if flagPath != "" {
		return config.ExpandHomePath(flagPath)
	}

	if envPath := os.Getenv(config.EnvPrefix + "_CONFIG"); envPath != "" {
		return config.ExpandHomePath(envPath)
	}

	if path, found := config.FindDefaultConfigPath(); found {
		return path
	}

	return ""
}

func handleStartupError(err error, cfg *config.Config) error {
	fmt.Fprintf(os.Stderr, "❌ %v\n", err)

	if !cfg.Debug {
		fmt.Fprintln(os.Stderr, "💡 Re-run with --debug for details in", cfg.LogDir)
	}

	return err
}

func printVersion(w io.Writer) {
	fmt.Fprintln(w, version.GetBuildInfo().String())
}
