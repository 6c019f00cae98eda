package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/devnullvoid/shoptui/internal/bootstrap"
	"github.com/devnullvoid/shoptui/internal/config"
	"github.com/devnullvoid/shoptui/internal/version"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = NewRootCmd(viper.GetViper())

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Flags are bound to v so that
// SHOPTUI_* variables fill any flag left unset.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shoptui",
		Short: "Browse a storefront product catalog in the terminal",
		Long: `shoptui fetches a product catalog once from an HTTP endpoint and lets you
filter it by category.

The endpoint comes from --products-url, SHOPTUI_PRODUCTS_URL (also read from a
.env file), or products_url in the config file. When stdout is not a terminal,
or with --plain, the list is printed as text instead.`,
		Version:       version.GetVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			return config.LoadDotEnv(envFile, config.DefaultEnvFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMainApplication(cmd, v)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate(version.GetBuildInfo().String() + "\n")

	addPersistentFlags(cmd, v)
	cmd.AddCommand(newConfigCmd(v))

	return cmd
}

func runMainApplication(cmd *cobra.Command, v *viper.Viper) error {
	opts := getBootstrapOptions(cmd, v)

	result, err := bootstrap.Bootstrap(opts)
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	// Nothing to run, e.g. --version.
	if result == nil {
		return nil
	}

	return bootstrap.StartApplication(result)
}

// getBootstrapOptions converts cobra flags and viper values to BootstrapOptions.
func getBootstrapOptions(cmd *cobra.Command, v *viper.Viper) bootstrap.BootstrapOptions {
	showVersion, _ := cmd.Flags().GetBool("version")
	plain, _ := cmd.Flags().GetBool("plain")
	category, _ := cmd.Flags().GetString("category")

	return bootstrap.BootstrapOptions{
		ConfigPath:      v.GetString("config"),
		Version:         showVersion,
		Plain:           plain,
		Category:        category,
		FlagProductsURL: v.GetString("products_url"),
		FlagDebug:       v.GetBool("debug"),
		FlagLogLevel:    v.GetString("log_level"),
		FlagLogDir:      v.GetString("log_dir"),
		Out:             cmd.OutOrStdout(),
	}
}

// addPersistentFlags adds all the persistent flags to the root command.
func addPersistentFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Path to YAML config file (env SHOPTUI_CONFIG)")
	flags.BoolP("version", "v", false, "Show version information")
	flags.String("env-file", "", "Additional .env file to load")
	flags.String("products-url", "", "Catalog endpoint (env SHOPTUI_PRODUCTS_URL)")
	flags.BoolP("debug", "d", false, "Enable debug logging (env SHOPTUI_DEBUG)")
	flags.String("log-level", "", "Log level: debug, info or error (env SHOPTUI_LOG_LEVEL)")
	flags.String("log-dir", "", "Directory for shoptui.log (env SHOPTUI_LOG_DIR)")
	flags.Bool("plain", false, "Print the product list as text instead of starting the TUI")
	flags.String("category", "", "Category to show once the catalog loads")

	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"config":       "config",
		"products_url": "products-url",
		"debug":        "debug",
		"log_level":    "log-level",
		"log_dir":      "log-dir",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", flag, err))
		}
	}
}
