// Package main is the entry point for the ayed editor.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/ayed/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "ayed [file]",
		Short: "A small modal text editor",
		Long: `ayed is a modal terminal text editor with vim-style Normal and Visual
modes over a fixed-capacity gap buffer.

Ctrl+S writes the file, Ctrl+Q quits.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.File = args[0]
			}
			return runEditor(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "",
		"path to the TOML configuration file (reloaded on change)")
	root.Flags().StringVar(&opts.LogLevel, "log-level", "",
		"log level: debug, info, warn or error")
	root.Flags().StringVar(&opts.LogFile, "log-file", "",
		"append logs to this file")
	root.Flags().BoolVar(&opts.Normal, "normal", false,
		"start in Normal mode")

	root.AddCommand(newConfigCmd(&opts), newKeysCmd(&opts))
	return root
}

func runEditor(ctx context.Context, opts app.Options) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	err = application.Run(ctx)
	switch {
	case err == nil, errors.Is(err, app.ErrQuit), errors.Is(err, context.Canceled):
		return nil
	default:
		return err
	}
}
