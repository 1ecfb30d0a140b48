package lsp

import (
	"context"

	"github.com/walteh/mdwrap/pkg/host"
	"github.com/walteh/mdwrap/pkg/span"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrUnknownDocument = errors.Base("unknown document")
	ErrEditRejected    = errors.Base("client rejected the edit")
	ErrNotShown        = errors.Base("client could not show the document")
	ErrNotConnected    = errors.Base("no client connected")
)

// blockStore is the editor block API on top of the client's documents.
type blockStore struct {
	server *Server
}

var _ host.BlockStore = (*blockStore)(nil)

func (me *blockStore) CurrentBlock(ctx context.Context) (*host.Block, error) {
	id, _ := me.server.session.Input()
	if id == "" {
		return nil, nil
	}

	doc, ok := me.server.documents.Get(DocumentURI(id))
	if !ok {
		return nil, nil
	}

	return &host.Block{UUID: string(doc.URI), Content: doc.Content}, nil
}

// UpdateBlock replaces the whole document through workspace/applyEdit.
func (me *blockStore) UpdateBlock(ctx context.Context, uuid string, content string) error {
	uri := DocumentURI(uuid)

	doc, ok := me.server.documents.Get(uri)
	if !ok {
		return errors.Errorf("%w: %s", ErrUnknownDocument, uuid)
	}

	rpc := me.server.rpc.Load()
	if rpc == nil {
		return ErrNotConnected
	}

	params := &ApplyWorkspaceEditParams{
		Label: "mdwrap",
		Edit: WorkspaceEdit{
			Changes: map[DocumentURI][]TextEdit{
				doc.URI: {{
					Range:   Range{End: fromSpanPosition(span.EndOf(doc.Content))},
					NewText: content,
				}},
			},
		},
	}

	var result ApplyWorkspaceEditResult
	if err := callback(ctx, rpc, "workspace/applyEdit", params, &result); err != nil {
		return errors.Errorf("applying edit: %w", err)
	}
	if !result.Applied {
		return errors.Errorf("%w: %s", ErrEditRejected, result.FailureReason)
	}

	// the client follows up with didChange; update now so the selection
	// restore sees the new text
	me.server.documents.Update(uri, content, 0)

	return nil
}

// EditBlock brings a closed document back into an editor.
func (me *blockStore) EditBlock(ctx context.Context, uuid string) (host.Input, error) {
	uri := DocumentURI(uuid)

	if _, ok := me.server.documents.Get(uri); !ok {
		return nil, errors.Errorf("%w: %s", ErrUnknownDocument, uuid)
	}

	if err := me.server.showDocument(ctx, &ShowDocumentParams{URI: uri, TakeFocus: true}); err != nil {
		return nil, err
	}

	me.server.documents.SetOpen(uri, true)

	return &documentInput{server: me.server, uri: uri}, nil
}

// documentInput is a text editor showing one document. Its selection is kept
// in UTF-16 offsets.
type documentInput struct {
	server     *Server
	uri        DocumentURI
	start, end int
}

var _ host.Input = (*documentInput)(nil)

// newDocumentInput resolves r against the document's current text. Unknown
// documents give an input with an empty selection; the adapter reports them
// as having no block.
func newDocumentInput(server *Server, uri DocumentURI, r Range) (*documentInput, error) {
	in := &documentInput{server: server, uri: normalizeURI(uri)}

	doc, ok := server.documents.Get(uri)
	if !ok {
		return in, nil
	}

	s, err := span.RangeOf(doc.Content, r.span())
	if err != nil {
		return nil, err
	}

	in.start, in.end = s.Start, s.End
	return in, nil
}

func (me *documentInput) Value() string {
	doc, _ := me.server.documents.Get(me.uri)
	return doc.Content
}

func (me *documentInput) Selection() (start, end int) {
	return me.start, me.end
}

func (me *documentInput) Attached() bool {
	doc, ok := me.server.documents.Get(me.uri)
	return ok && doc.Open
}

func (me *documentInput) Focus(ctx context.Context) error {
	return me.server.showDocument(ctx, &ShowDocumentParams{URI: me.uri, TakeFocus: true})
}

func (me *documentInput) SetSelectionRange(ctx context.Context, start, end int) error {
	value := me.Value()

	from, err := span.PositionOf(value, start)
	if err != nil {
		return err
	}
	to, err := span.PositionOf(value, end)
	if err != nil {
		return err
	}

	sel := Range{Start: fromSpanPosition(from), End: fromSpanPosition(to)}
	if err := me.server.showDocument(ctx, &ShowDocumentParams{URI: me.uri, TakeFocus: true, Selection: &sel}); err != nil {
		return err
	}

	me.start, me.end = start, end
	return nil
}

func (me *Server) showDocument(ctx context.Context, params *ShowDocumentParams) error {
	rpc := me.rpc.Load()
	if rpc == nil {
		return ErrNotConnected
	}

	var result ShowDocumentResult
	if err := callback(ctx, rpc, "window/showDocument", params, &result); err != nil {
		return errors.Errorf("showing %s: %w", params.URI, err)
	}
	if !result.Success {
		return errors.Errorf("%w: %s", ErrNotShown, params.URI)
	}
	return nil
}

// clientNotifier shows notices with window/showMessage.
type clientNotifier struct {
	server *Server
}

var _ host.Notifier = (*clientNotifier)(nil)

func (me *clientNotifier) Notify(ctx context.Context, level host.Level, message string) error {
	rpc := me.server.rpc.Load()
	if rpc == nil {
		return ErrNotConnected
	}

	return notify(ctx, rpc, "window/showMessage", &ShowMessageParams{
		Type:    messageTypeOf(level),
		Message: message,
	})
}

// cursorLocator answers with the caret the client sent with its last
// selection change.
type cursorLocator struct {
	server *Server
}

var _ host.CursorLocator = (*cursorLocator)(nil)

func (me *cursorLocator) EditingCursorPosition(ctx context.Context) (*host.CursorPosition, error) {
	return me.server.cursor.Load(), nil
}
