package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/glug"
	"github.com/five82/glug/internal/config"
)

// rootCmd flags shared by every demo.
type rootFlags struct {
	configPath string
	noSummary  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "glug",
		Short: "Demonstrate the glug terminal log display",
		Long: `glug draws a live log feed, a per-level histogram and a summary
on the terminal's standard error. Each subcommand drives the display with a
different workload; without one a single message per level is logged.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return flags.demo(nil, func(*glug.Logger) error {
				slog.Info("logged a message")
				slog.Log(cmd.Context(), glug.SlogLevelTrace, "logged a message")
				slog.Warn("logged a message")
				slog.Error("logged a message")
				slog.Debug("logged a message")
				return nil
			})
		},
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "options file (default ~/.config/glug/config.toml)")
	cmd.PersistentFlags().BoolVar(&flags.noSummary, "no-summary", false, "omit the summary panel when recording producers")

	cmd.AddCommand(
		newMessagesCmd(flags),
		newLongCmd(flags),
		newBurstCmd(flags),
		newThreadsCmd(flags),
		newFileCmd(flags),
	)
	return cmd
}

// demo loads the options file, applies adjust, registers the logger and runs
// body against it. The display is torn down before returning.
func (f *rootFlags) demo(adjust func(*glug.Options), body func(*glug.Logger) error) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts := cfg.Options()
	if adjust != nil {
		adjust(&opts)
	}
	if opts.RecordThreads != nil && f.noSummary {
		opts.RecordThreads.Summary = false
	}

	if opts.Output == nil && !term.IsTerminal(int(os.Stderr.Fd())) {
		return errors.New("standard error is not a terminal")
	}

	l := glug.Setup(opts)
	bodyErr := body(l)
	if err := l.Close(); err != nil {
		return err
	}
	return bodyErr
}
