// Package host connects the text engines to an editor: it reads the live
// selection, writes the transformed block back and restores the selection.
package host

import (
	"context"

	"github.com/walteh/mdwrap/pkg/span"
	"gitlab.com/tozd/go/errors"
)

var ErrNoEditingContext = errors.Base("no block is being edited")

// Transform is a pure text operation over a selection.
type Transform func(span.Span) span.Edit

// Block is the unit of content the editor stores and edits.
type Block struct {
	UUID    string
	Content string
}

// BlockStore is the editor's block API.
type BlockStore interface {
	// CurrentBlock returns the block being edited, or nil when nothing is.
	CurrentBlock(ctx context.Context) (*Block, error)
	UpdateBlock(ctx context.Context, uuid string, content string) error
	// EditBlock re-enters edit mode on a block and returns its fresh input.
	EditBlock(ctx context.Context, uuid string) (Input, error)
}

// Input is a live text-input element.
type Input interface {
	Value() string
	Selection() (start, end int)
	// Attached reports whether the element is still part of the document.
	Attached() bool
	Focus(ctx context.Context) error
	SetSelectionRange(ctx context.Context, start, end int) error
}

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(ctx context.Context, level Level, message string) error
}

type Rect struct {
	X float64
	Y float64
}

// CursorPosition is the caret location inside the editing element plus the
// element's bounding rectangle.
type CursorPosition struct {
	Top  float64
	Left float64
	Rect Rect
}

type CursorLocator interface {
	// EditingCursorPosition returns nil when there is no caret.
	EditingCursorPosition(ctx context.Context) (*CursorPosition, error)
}
