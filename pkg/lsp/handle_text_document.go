package lsp

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/walteh/mdwrap/pkg/command"
	"github.com/walteh/mdwrap/pkg/host"
	"github.com/walteh/mdwrap/pkg/l10n"
	"github.com/walteh/mdwrap/pkg/span"
	"gitlab.com/tozd/go/errors"
)

func (me *Server) didOpen(ctx context.Context, params *DidOpenTextDocumentParams) error {
	doc := params.TextDocument

	me.documents.Store(&Document{
		URI:        doc.URI,
		LanguageID: doc.LanguageID,
		Version:    doc.Version,
		Content:    doc.Text,
		Open:       true,
	})

	zerolog.Ctx(ctx).Debug().Str("uri", string(doc.URI)).Int32("version", doc.Version).Msg("document opened")
	return nil
}

func (me *Server) didChange(ctx context.Context, params *DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}

	// full sync: the last change is the whole document
	text := params.ContentChanges[len(params.ContentChanges)-1].Text

	if !me.documents.Update(params.TextDocument.URI, text, params.TextDocument.Version) {
		me.documents.Store(&Document{
			URI:     params.TextDocument.URI,
			Version: params.TextDocument.Version,
			Content: text,
			Open:    true,
		})
	}
	return nil
}

func (me *Server) didClose(ctx context.Context, params *DidCloseTextDocumentParams) error {
	uri := normalizeURI(params.TextDocument.URI)

	me.documents.SetOpen(uri, false)

	if id, _ := me.session.Input(); id == string(uri) {
		me.session.Forget(id)
		me.toolbar.Forget(ctx)
	}
	return nil
}

func (me *Server) codeAction(ctx context.Context, params *CodeActionParams) ([]CodeAction, error) {
	actions := []CodeAction{}

	doc, ok := me.documents.Get(params.TextDocument.URI)
	if !ok || !me.matches(doc.URI) {
		return actions, nil
	}

	sel, err := span.RangeOf(doc.Content, params.Range.span())
	if err != nil {
		return nil, errors.Errorf("resolving code action range: %w", err)
	}

	format := me.formatOf(doc.URI)

	env := command.Env{
		Format:    string(format),
		Language:  doc.LanguageID,
		Selection: sel.Selection,
		Empty:     sel.Empty(),
	}

	st := me.state.Load()
	args := []any{CommandArguments{URI: doc.URI, Range: params.Range}}

	for _, cmd := range st.registryFor(format).Available(ctx, env) {
		actions = append(actions, CodeAction{
			Title: cmd.Label,
			Kind:  CodeActionRefactorRewrite,
			Command: &Command{
				Title:     cmd.Label,
				Command:   cmd.Key,
				Arguments: args,
			},
		})
	}

	if st.settings.Toolbar {
		title := l10n.Translate(st.tag, l10n.MsgToggleToolbar)
		actions = append(actions, CodeAction{
			Title:   title,
			Command: &Command{Title: title, Command: CommandToggleToolbar},
		})
	}

	return actions, nil
}

// executeCommand runs a transform on the selection in its arguments, or on
// the last selection the client reported when there are none.
func (me *Server) executeCommand(ctx context.Context, params *ExecuteCommandParams) (*EditResult, error) {
	logger := zerolog.Ctx(ctx)

	if params.Command == CommandToggleToolbar {
		me.toolbar.Toggle(ctx)
		return nil, nil
	}

	st := me.state.Load()

	if len(params.Arguments) > 0 {
		var args CommandArguments
		if err := json.Unmarshal(params.Arguments[0], &args); err != nil {
			return nil, newParseError(err)
		}

		in, err := newDocumentInput(me, args.URI, args.Range)
		if err != nil {
			return nil, errors.Errorf("resolving command range: %w", err)
		}
		me.session.Track(string(in.uri), in)
	}

	registry := st.registry
	if id, _ := me.session.Input(); id != "" {
		registry = st.registryFor(me.formatOf(DocumentURI(id)))
	}

	cmd, ok := registry.Lookup(params.Command)
	if !ok {
		return nil, errors.Errorf("%w: %s", ErrUnknownCommand, params.Command)
	}

	edit, err := st.adapter.Apply(ctx, me.session, cmd.Transform())
	if errors.Is(err, host.ErrNoEditingContext) {
		// the user has been told
		return nil, nil
	}
	if err != nil {
		return nil, errors.Errorf("running %s: %w", cmd.Key, err)
	}

	logger.Info().Str("command", cmd.Key).Int("sel_start", edit.SelStart).Int("sel_end", edit.SelEnd).Msg("command applied")

	return &EditResult{SelStart: edit.SelStart, SelEnd: edit.SelEnd}, nil
}
