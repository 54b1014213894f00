package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	internal "github.com/ZanzyTHEbar/line-word-count/lwc"
	"github.com/ZanzyTHEbar/line-word-count/lwc/aggregate"
	"github.com/ZanzyTHEbar/line-word-count/lwc/config"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/options"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"
	"github.com/ZanzyTHEbar/line-word-count/lwc/ports"
	"github.com/ZanzyTHEbar/line-word-count/lwc/telemetry"
	"github.com/ZanzyTHEbar/line-word-count/lwc/version"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	recursive  bool
	dirs       bool
	totalsOnly bool
	absolute   bool
	configPath string
	workers    int
	logLevel   string
	trace      bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "lwc [flags] [PATH...]",
		Short: "Count lines, words, chars and bytes, or directory elements",
		Long: `lwc counts the contents of files, or the elements of directories, in parallel.

With no PATH, standard input is counted. Per-item results are printed in the
order the paths were given (depth-first, lexical within a directory), followed
by a total when more than one item was counted.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&flags.recursive, "recursive", "r", false, "Recursively process directories and their contents")
	f.BoolVarP(&flags.dirs, "dirs", "d", false, "Count directory elements (subdirectories, files, symlinks, FIFOs, sockets, ...) instead of file contents")
	f.BoolVarP(&flags.totalsOnly, "total", "t", false, "Suppress per-item stats and display only the total")
	f.BoolVarP(&flags.absolute, "absolute-paths", "a", false, "Print paths as absolute paths")
	f.StringVar(&flags.configPath, "config", "", "Config file (default searches ./config.yaml and "+internal.DefaultGlobalConfig+")")
	f.IntVarP(&flags.workers, "workers", "w", 0, "Number of parallel workers (0 = one per CPU)")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	f.BoolVar(&flags.trace, "trace", false, "Export OpenTelemetry spans to stderr")

	return cmd
}

func run(cmd *cobra.Command, args []string, flags rootFlags) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Engine.Workers = flags.workers
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.trace {
		cfg.Trace.Enabled = true
	}

	logger := internal.GetLogger(cfg.Log.Level)

	shutdown, err := telemetry.Setup(cfg.Trace.Enabled, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Error shutting down tracer provider")
		}
	}()

	opts := options.FromConfig(cfg, logger)
	opts.AbsolutePaths = flags.absolute

	counter, err := filesystem.New(opts)
	if err != nil {
		return err
	}

	mode := types.RunMode{
		Recursive:         flags.recursive,
		DirectoryElements: flags.dirs,
		TotalsOnly:        flags.totalsOnly,
	}

	var out *aggregate.Outcome
	if len(args) == 0 {
		out, err = counter.RunReader(ctx, cmd.InOrStdin(), mode)
	} else {
		out, err = counter.Run(ctx, args, mode)
	}

	if out != nil {
		rep := NewTextReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode.TotalsOnly)
		if rerr := ports.Render(rep, out); rerr != nil {
			return rerr
		}
	}
	if err != nil {
		return err
	}
	if n := out.Total.Failures; n > 0 {
		return fmt.Errorf("%d of %d items could not be counted", n, n+out.Total.Items)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version.GetFullVersion())); err != nil {
		stop()
		os.Exit(1)
	}
}
