package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/mdwrap/pkg/span"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		start, end  int
		want        span.Span
		expectError bool
	}{
		{
			name:  "middle_selection",
			text:  "hello world",
			start: 6,
			end:   11,
			want:  span.Span{Before: "hello ", Selection: "world", After: "", Start: 6, End: 11},
		},
		{
			name:  "empty_selection",
			text:  "ab",
			start: 1,
			end:   1,
			want:  span.Span{Before: "a", Selection: "", After: "b", Start: 1, End: 1},
		},
		{
			name:  "multibyte_counts_utf16_units",
			text:  "héllo",
			start: 1,
			end:   2,
			want:  span.Span{Before: "h", Selection: "é", After: "llo", Start: 1, End: 2},
		},
		{
			name:  "astral_rune_is_two_units",
			text:  "a😀b",
			start: 1,
			end:   3,
			want:  span.Span{Before: "a", Selection: "😀", After: "b", Start: 1, End: 3},
		},
		{
			name:        "splits_surrogate_pair",
			text:        "a😀b",
			start:       2,
			end:         3,
			expectError: true,
		},
		{
			name:        "inverted",
			text:        "abc",
			start:       2,
			end:         1,
			expectError: true,
		},
		{
			name:        "past_end",
			text:        "abc",
			start:       0,
			end:         4,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := span.New(tt.text, tt.start, tt.end)
			if tt.expectError {
				require.ErrorIs(t, err, span.ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, got.Full())
			assert.Equal(t, got.End-got.Start, span.Len(got.Selection))
		})
	}
}

func TestPositionRoundTrip(t *testing.T) {
	text := "first line\nsecond 😀 line\n\nlast"

	tests := []struct {
		name   string
		offset int
		want   span.Position
	}{
		{name: "start", offset: 0, want: span.Position{Line: 0, Character: 0}},
		{name: "end_of_first_line", offset: 10, want: span.Position{Line: 0, Character: 10}},
		{name: "start_of_second_line", offset: 11, want: span.Position{Line: 1, Character: 0}},
		{name: "after_emoji", offset: 20, want: span.Position{Line: 1, Character: 9}},
		{name: "empty_line", offset: 26, want: span.Position{Line: 2, Character: 0}},
		{name: "end", offset: span.Len(text), want: span.Position{Line: 3, Character: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := span.PositionOf(text, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pos)

			offset, err := span.OffsetOf(text, pos)
			require.NoError(t, err)
			assert.Equal(t, tt.offset, offset)
		})
	}

	assert.Equal(t, span.Position{Line: 3, Character: 4}, span.EndOf(text))
}

func TestRangeOf(t *testing.T) {
	text := "- one\n- **two** three"

	s, err := span.RangeOf(text, span.Range{
		Start: span.Position{Line: 1, Character: 2},
		End:   span.Position{Line: 1, Character: 9},
	})
	require.NoError(t, err)
	assert.Equal(t, "**two**", s.Selection)
	assert.Equal(t, "- one\n- ", s.Before)
	assert.Equal(t, 8, s.Start)
	assert.Equal(t, 15, s.End)

	_, err = span.RangeOf(text, span.Range{
		Start: span.Position{Line: 4, Character: 0},
		End:   span.Position{Line: 4, Character: 0},
	})
	require.ErrorIs(t, err, span.ErrInvalidRange)
}
