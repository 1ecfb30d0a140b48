package lsp

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/mdwrap/pkg/host"
	"github.com/walteh/mdwrap/pkg/span"
	"github.com/walteh/mdwrap/pkg/toolbar"
	"gitlab.com/tozd/go/errors"
)

// selectionChanged makes the reporting document the editing target and moves
// the toolbar.
func (me *Server) selectionChanged(ctx context.Context, params *SelectionChangedParams) error {
	in, err := newDocumentInput(me, params.URI, params.Range)
	if err != nil {
		return errors.Errorf("resolving selection: %w", err)
	}

	me.session.Track(string(in.uri), in)

	if params.Cursor != nil {
		me.cursor.Store(&host.CursorPosition{
			Top:  params.Cursor.Top,
			Left: params.Cursor.Left,
			Rect: host.Rect{X: params.Cursor.X, Y: params.Cursor.Y},
		})
	} else {
		me.cursor.Store(nil)
	}

	me.toolbar.SelectionChanged(ctx, toolbar.Selection{
		Start:    in.start,
		End:      in.end,
		Length:   span.Len(in.Value()),
		Focused:  params.Focused,
		Viewport: params.Viewport,
		Width:    params.Width,
	})

	return nil
}

func (me *Server) scroll(ctx context.Context, params *ScrollParams) error {
	me.toolbar.Scroll(ctx)
	return nil
}

func (me *Server) blur(ctx context.Context, params *BlurParams) error {
	uri := string(normalizeURI(params.URI))

	if id, _ := me.session.Input(); id != uri {
		zerolog.Ctx(ctx).Debug().Str("uri", uri).Str("tracked", id).Msg("ignoring blur of untracked document")
		return nil
	}

	me.toolbar.Blur(ctx, params.Focused)

	if !params.Focused {
		me.session.Forget(uri)
	}
	return nil
}

func (me *Server) keyDown(ctx context.Context, params *KeyDownParams) error {
	me.toolbar.KeyDown(ctx, params.Key)
	return nil
}

func (me *Server) transitionEnd(ctx context.Context, params *TransitionEndParams) error {
	me.toolbar.TransitionEnd(ctx)
	return nil
}
