// Package span partitions an editable text buffer around a selection.
//
// Offsets are UTF-16 code units, the unit text-input elements and LSP clients
// report selections in. Strings stay Go strings; the package converts between
// the two at the edges.
package span

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

var ErrInvalidRange = errors.Base("invalid selection range")

// Span is a selection inside a buffer.
// Before+Selection+After is always the full buffer and End-Start == Len(Selection).
type Span struct {
	Before    string
	Selection string
	After     string
	Start     int
	End       int
}

// Edit is what every transformation returns: the new full text and the
// selection to restore on the input.
type Edit struct {
	Text     string
	SelStart int
	SelEnd   int
}

func (e Edit) String() string {
	return fmt.Sprintf("%q[%d:%d]", e.Text, e.SelStart, e.SelEnd)
}

// New splits text at the UTF-16 offsets start and end.
func New(text string, start, end int) (Span, error) {
	if start < 0 || end < start {
		return Span{}, errors.Errorf("%w: start=%d end=%d", ErrInvalidRange, start, end)
	}

	startByte, err := ByteIndex(text, start)
	if err != nil {
		return Span{}, errors.Errorf("start: %w", err)
	}

	endByte, err := ByteIndex(text, end)
	if err != nil {
		return Span{}, errors.Errorf("end: %w", err)
	}

	return Span{
		Before:    text[:startByte],
		Selection: text[startByte:endByte],
		After:     text[endByte:],
		Start:     start,
		End:       end,
	}, nil
}

// Full reassembles the buffer.
func (s Span) Full() string {
	return s.Before + s.Selection + s.After
}

// Empty reports whether nothing is selected.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Len returns the length of str in UTF-16 code units.
func Len(str string) int {
	n := 0
	for _, r := range str {
		n += runeLen(r)
	}
	return n
}

// ByteIndex converts a UTF-16 offset into a byte index of text.
// An offset that lands inside a surrogate pair is rejected.
func ByteIndex(text string, offset int) (int, error) {
	if offset < 0 {
		return 0, errors.Errorf("%w: negative offset %d", ErrInvalidRange, offset)
	}

	units := 0
	for i, r := range text {
		if units == offset {
			return i, nil
		}
		units += runeLen(r)
		if units > offset {
			return 0, errors.Errorf("%w: offset %d splits a surrogate pair", ErrInvalidRange, offset)
		}
	}

	if units == offset {
		return len(text), nil
	}

	return 0, errors.Errorf("%w: offset %d beyond text length %d", ErrInvalidRange, offset, units)
}

func runeLen(r rune) int {
	if r == utf8.RuneError {
		return 1
	}
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
