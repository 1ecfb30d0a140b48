package host

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/mdwrap/pkg/l10n"
	"github.com/walteh/mdwrap/pkg/span"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/language"
)

// Adapter runs transforms against the editor.
type Adapter struct {
	store    BlockStore
	notifier Notifier
	tag      language.Tag
}

type AdapterOption func(*Adapter)

// WithLanguage localizes the notices the adapter shows.
func WithLanguage(tag language.Tag) AdapterOption {
	return func(a *Adapter) {
		a.tag = tag
	}
}

func NewAdapter(store BlockStore, notifier Notifier, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		store:    store,
		notifier: notifier,
		tag:      language.English,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Apply reads the tracked selection, runs transform over it, writes the
// block back and restores the selection the transform reports.
//
// Without a current block or a tracked input the user gets a notice and
// nothing is written.
func (me *Adapter) Apply(ctx context.Context, sess *Session, transform Transform) (span.Edit, error) {
	logger := zerolog.Ctx(ctx)

	block, err := me.store.CurrentBlock(ctx)
	if err != nil {
		return span.Edit{}, errors.Errorf("getting current block: %w", err)
	}

	_, input := sess.Input()

	if block == nil || input == nil {
		logger.Debug().Bool("has_block", block != nil).Bool("has_input", input != nil).Msg("no editing context")
		msg := l10n.Translate(me.tag, l10n.MsgNotEditing)
		if nerr := me.notifier.Notify(ctx, LevelError, msg); nerr != nil {
			logger.Error().Err(nerr).Msg("showing notice")
		}
		return span.Edit{}, ErrNoEditingContext
	}

	start, end := input.Selection()

	s, err := span.New(input.Value(), start, end)
	if err != nil {
		return span.Edit{}, errors.Errorf("reading selection of %s: %w", block.UUID, err)
	}

	edit := transform(s)

	logger.Debug().
		Str("block", block.UUID).
		Int("start", s.Start).
		Int("end", s.End).
		Int("sel_start", edit.SelStart).
		Int("sel_end", edit.SelEnd).
		Msg("applying edit")

	if err := me.store.UpdateBlock(ctx, block.UUID, edit.Text); err != nil {
		return span.Edit{}, errors.Errorf("updating block %s: %w", block.UUID, err)
	}

	if err := me.restore(ctx, sess, block.UUID, input, edit); err != nil {
		return edit, err
	}

	return edit, nil
}

func (me *Adapter) restore(ctx context.Context, sess *Session, uuid string, input Input, edit span.Edit) error {
	if input.Attached() {
		if err := input.Focus(ctx); err != nil {
			return errors.Errorf("focusing input: %w", err)
		}
		if err := input.SetSelectionRange(ctx, edit.SelStart, edit.SelEnd); err != nil {
			return errors.Errorf("restoring selection: %w", err)
		}
		return nil
	}

	// the update re-rendered the block and detached the old input
	fresh, err := me.store.EditBlock(ctx, uuid)
	if err != nil {
		return errors.Errorf("re-entering block %s: %w", uuid, err)
	}

	sess.Track(uuid, fresh)

	if err := fresh.SetSelectionRange(ctx, edit.SelStart, edit.SelEnd); err != nil {
		return errors.Errorf("restoring selection: %w", err)
	}

	return nil
}
