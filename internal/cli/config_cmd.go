package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/devnullvoid/shoptui/internal/bootstrap"
	"github.com/devnullvoid/shoptui/internal/config"
)

func newConfigCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path in use",
		Long: `Print the configuration file shoptui would load: --config, then
SHOPTUI_CONFIG, then the default location if it exists. When none exists the
default location is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := bootstrap.ResolveConfigPath(v.GetString("config"))
			if path == "" {
				path = config.GetDefaultConfigPath()
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a commented configuration template",
		Long: `Write a commented configuration template to --config or the default
location. An existing file is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				path string
				err  error
			)
			if target := v.GetString("config"); target != "" {
				path, err = config.CreateDefaultConfigFileAt(config.ExpandHomePath(target))
			} else {
				path, err = config.CreateDefaultConfigFile()
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "✅ Configuration template at %s\n", path)
			return err
		},
	})

	return cmd
}
