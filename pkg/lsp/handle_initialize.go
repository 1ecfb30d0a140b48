package lsp

import (
	"context"

	"github.com/creachadair/jrpc2"
	"github.com/rs/zerolog"
)

func (me *Server) initialize(ctx context.Context, params *InitializeParams) (*InitializeResult, error) {
	logger := zerolog.Ctx(ctx)

	me.mu.Lock()
	me.clientLocale = params.Locale
	me.mu.Unlock()

	// the client locale may change the label language
	if params.Locale != "" {
		me.Reload(ctx, me.state.Load().settings)
	}

	ev := logger.Info().Str("root", string(params.RootURI)).Str("locale", params.Locale)
	if params.ClientInfo != nil {
		ev = ev.Str("client", params.ClientInfo.Name)
	}
	ev.Msg("initializing")

	commands := append(me.Registry().Keys(), CommandToggleToolbar)

	return &InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync:   SyncFull,
			CodeActionProvider: true,
			ExecuteCommandProvider: &ExecuteCommandOptions{
				Commands: commands,
			},
		},
		ServerInfo: &ServerInfo{
			Name:    "mdwrap",
			Version: me.version,
		},
	}, nil
}

func (me *Server) initialized(ctx context.Context) error {
	me.reportLoadErrors(ctx)
	return nil
}

func (me *Server) exit(ctx context.Context) error {
	zerolog.Ctx(ctx).Info().Msg("client asked to exit")

	if srv := jrpc2.ServerFromContext(ctx); srv != nil {
		// Stop waits for running handlers, this one included
		go srv.Stop()
	}
	return nil
}
