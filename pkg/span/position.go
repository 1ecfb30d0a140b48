package span

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Position is a zero-based line/character location, characters counted in
// UTF-16 code units the way LSP clients count them.
type Position struct {
	Line      int
	Character int
}

type Range struct {
	Start Position
	End   Position
}

// OffsetOf converts a line/character position into a UTF-16 offset of text.
func OffsetOf(text string, pos Position) (int, error) {
	if pos.Line < 0 || pos.Character < 0 {
		return 0, errors.Errorf("%w: line=%d character=%d", ErrInvalidRange, pos.Line, pos.Character)
	}

	lines := strings.Split(text, "\n")
	if pos.Line >= len(lines) {
		return 0, errors.Errorf("%w: line %d beyond %d lines", ErrInvalidRange, pos.Line, len(lines))
	}

	offset := 0
	for i := 0; i < pos.Line; i++ {
		offset += Len(lines[i]) + 1
	}

	if pos.Character > Len(lines[pos.Line]) {
		return 0, errors.Errorf("%w: character %d beyond line %d", ErrInvalidRange, pos.Character, pos.Line)
	}

	return offset + pos.Character, nil
}

// PositionOf converts a UTF-16 offset of text into a line/character position.
func PositionOf(text string, offset int) (Position, error) {
	idx, err := ByteIndex(text, offset)
	if err != nil {
		return Position{}, err
	}

	head := text[:idx]
	line := strings.Count(head, "\n")
	lastNewline := strings.LastIndexByte(head, '\n')

	return Position{
		Line:      line,
		Character: Len(head[lastNewline+1:]),
	}, nil
}

// RangeOf returns the span of text selected by r.
func RangeOf(text string, r Range) (Span, error) {
	start, err := OffsetOf(text, r.Start)
	if err != nil {
		return Span{}, errors.Errorf("range start: %w", err)
	}

	end, err := OffsetOf(text, r.End)
	if err != nil {
		return Span{}, errors.Errorf("range end: %w", err)
	}

	return New(text, start, end)
}

// EndOf returns the position just past the last character of text.
func EndOf(text string) Position {
	pos, _ := PositionOf(text, Len(text))
	return pos
}
