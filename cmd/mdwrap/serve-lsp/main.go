package serve_lsp

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/mdwrap/pkg/config"
	"github.com/walteh/mdwrap/pkg/lsp"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	fs        afero.Fs
	clientLog bool
}

func NewServeLSPCommand(afs afero.Fs) *cobra.Command {
	me := &Handler{fs: afs}

	cmd := &cobra.Command{
		Use:   "serve-lsp",
		Short: "start the language server on stdin and stdout",
	}

	cmd.Flags().BoolVar(&me.clientLog, "client-log", false, "send the log to the client as window/logMessage")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context(), cmd.Root().Version)
	}

	return cmd
}

func (me *Handler) options(rt *config.Runtime, version string) []lsp.Option {
	opts := []lsp.Option{
		lsp.WithFs(me.fs),
		lsp.WithGlobs(rt.Globs),
		lsp.WithLocale(rt.Locale),
		lsp.WithToolbarTiming(rt.Debounce, rt.Throttle),
		lsp.WithVersion(version),
	}
	if rt.Settings != "" {
		opts = append(opts, lsp.WithSettings(rt.Settings))
	}
	if me.clientLog {
		opts = append(opts, lsp.WithClientLogging())
	}
	return opts
}

func (me *Handler) Run(ctx context.Context, version string) error {
	rt, err := config.RuntimeFromContext(ctx)
	if err != nil {
		return err
	}

	server, err := lsp.NewServer(ctx, me.options(rt, version)...)
	if err != nil {
		return errors.Errorf("creating language server: %w", err)
	}

	zerolog.Ctx(ctx).Info().Str("server", server.ID()).Str("settings", rt.Settings).Msg("serving on stdio")

	if err := server.Run(ctx, os.Stdin, os.Stdout); err != nil {
		return errors.Errorf("error running language server: %w", err)
	}

	return nil
}
