package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/mdwrap/pkg/config"
	"github.com/walteh/mdwrap/pkg/debug"
	"gitlab.com/tozd/go/errors"
)

// setupRuntime adds the global flags and, before any subcommand runs,
// resolves them against the environment and puts a logger and the runtime
// options in the command context.
func setupRuntime(rootCmd *cobra.Command) error {
	v := config.NewViper()

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", config.DefaultLogLevel, "log level: trace, debug, info, warn, error or disabled")
	flags.String("settings", "", "settings file with command definitions")
	flags.String("locale", "", "language for labels and notices, such as zh-CN")
	flags.Duration("debounce", config.DefaultDebounce, "quiet period before the toolbar comes back after scrolling")
	flags.Duration("throttle", config.DefaultThrottle, "minimum time between toolbar hides while scrolling")
	flags.StringSlice("globs", config.DefaultGlobs, "documents the language server offers commands for")

	if err := config.BindFlags(v, flags); err != nil {
		return err
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		rt, err := config.LoadRuntime(v)
		if err != nil {
			return errors.Errorf("reading options: %w", err)
		}

		level, err := zerolog.ParseLevel(rt.LogLevel)
		if err != nil {
			return errors.Errorf("parsing log level: %w", err)
		}

		logger := debug.NewConsoleLogger(os.Stderr, level, !color.NoColor)

		ctx := logger.WithContext(cmd.Context())
		ctx = config.WithRuntime(ctx, rt)
		cmd.SetContext(ctx)

		return nil
	}

	return nil
}
