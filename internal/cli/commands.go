package cli

import (
	"fmt"
	"time"

	"github.com/arthur-debert/dp/internal/version"
	"github.com/arthur-debert/dp/pkg/config"
	"github.com/arthur-debert/dp/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options holds the flag values shared by all commands
type options struct {
	verbosity    int
	configFile   string
	noUserConfig bool
	fallThrough  bool
	wholePath    bool
	dryRun       bool
	printRules   bool
	output       string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(time.Now)
}

func newRootCmd(clock func() time.Time) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dp [files...]",
		Short: "Duplicate files under rule-generated names",
		Long: `dp copies each file to a new name produced by an ordered chain of
renaming rules. Date rules replace embedded dates with today's date,
the increment rule bumps the last number in the name.

The first rule that yields a name not already taken wins. With
--fallthrough, a name that is taken is passed on to the next rule
instead of failing the file.`,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDuplicate(cmd, args, opts, clock())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (toml or yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.noUserConfig, "no-user-config", false, "Ignore the user config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.fallThrough, "fallthrough", "f", false, "Fallthrough renaming patterns when a matched renaming rule fails")
	rootCmd.PersistentFlags().BoolVar(&opts.wholePath, "whole-path", false, "Apply rules to the full path instead of the filename")

	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Preview copies without executing them")
	rootCmd.Flags().BoolVarP(&opts.printRules, "rules", "r", false, "Print duplication rules")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "auto", "Output format (auto, term, text, json)")

	rootCmd.SetVersionTemplate(fmt.Sprintf("dp version %s\n  commit: %s\n  built:  %s\n",
		version.Version, version.Commit, version.Date))

	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig loads the configuration with flag overrides applied
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("fallthrough") {
		overrides["fallthrough"] = opts.fallThrough
	}
	if cmd.Flags().Changed("whole-path") {
		overrides["whole_path"] = opts.wholePath
	}

	return config.Load(config.LoadOptions{
		ConfigFile:     opts.configFile,
		SkipUserConfig: opts.noUserConfig,
		Overrides:      overrides,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version information for dp`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dp version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
