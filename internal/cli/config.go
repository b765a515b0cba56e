package cli

import (
	"fmt"

	"github.com/arthur-debert/dp/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	var (
		format   string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration dp would use, after merging the embedded
defaults, the user config file, --config, DP_* environment variables
and command-line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			out, err := config.Marshal(cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Output format (toml, yaml)")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the embedded defaults instead")
	return cmd
}
