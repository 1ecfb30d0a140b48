package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/mdwrap/cmd/mdwrap/apply"
	"github.com/walteh/mdwrap/cmd/mdwrap/list"
	serve_lsp "github.com/walteh/mdwrap/cmd/mdwrap/serve-lsp"
	"gitlab.com/tozd/go/errors"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	rootCmd, err := newRootCommand(afero.NewOsFs())
	if err != nil {
		return err
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}

func newRootCommand(afs afero.Fs) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:           "mdwrap",
		Short:         "Wrap and clear markup around text selections",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := setupRuntime(rootCmd); err != nil {
		return nil, err
	}

	rootCmd.AddCommand(serve_lsp.NewServeLSPCommand(afs))
	rootCmd.AddCommand(apply.NewApplyCommand(afs))
	rootCmd.AddCommand(list.NewListCommand(afs))

	return rootCmd, nil
}
