package cli

import (
	"time"

	"github.com/arthur-debert/dp/pkg/duplicator"
	"github.com/arthur-debert/dp/pkg/errors"
	"github.com/arthur-debert/dp/pkg/logging"
	"github.com/arthur-debert/dp/pkg/ui"
	"github.com/arthur-debert/dp/pkg/vfs"
	"github.com/spf13/cobra"
)

func runDuplicate(cmd *cobra.Command, files []string, opts *options, now time.Time) error {
	logger := logging.GetLogger("cli.duplicate")

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	var fs vfs.VFS = vfs.NewOS()
	if opts.dryRun {
		fs = vfs.NewDryRun(fs, logging.GetLogger("dryrun"))
	}

	chain, err := cfg.BuildRules(now, fs)
	if err != nil {
		return err
	}
	d := duplicator.New(chain, fs, duplicator.WithFallthrough(cfg.Fallthrough))

	if opts.printRules {
		d.PrintHelp(cmd.OutOrStdout())
		return nil
	}
	if len(files) == 0 {
		return errors.New(errors.ErrInvalidInput, "no input files")
	}

	format, err := ui.ParseFormat(opts.output)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	logger.Info().
		Bool("dryRun", opts.dryRun).
		Bool("fallthrough", cfg.Fallthrough).
		Strs("files", files).
		Msg("Starting duplication")

	report, err := d.DuplicateAll(files)
	if rerr := renderer.RenderReport(report, opts.dryRun); rerr != nil {
		logger.Warn().Err(rerr).Msg("Failed to render report")
	}
	if err != nil {
		return err
	}

	for _, res := range report.Results {
		if !res.Copied {
			logger.Error().
				Str("path", res.Path).
				Str("dir", fs.Parent(res.Path)).
				Msg("File duplication failed")
		}
	}
	if report.Failed > 0 {
		return errors.Newf(errors.ErrCopyFailed, "%d of %d files could not be duplicated",
			report.Failed, len(report.Results))
	}
	return nil
}
