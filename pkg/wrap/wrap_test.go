package wrap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/mdwrap/pkg/span"
	"github.com/walteh/mdwrap/pkg/wrap"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want wrap.Template
	}{
		{name: "bold", raw: "**$^**", want: wrap.Template{Prefix: "**", Suffix: "**"}},
		{name: "formula", raw: "$$$^$$", want: wrap.Template{Prefix: "$$", Suffix: "$$"}},
		{name: "org_highlight", raw: "[[#red]]^^$^^^", want: wrap.Template{Prefix: "[[#red]]^^", Suffix: "^^"}},
		{name: "no_placeholder", raw: "abc", want: wrap.Template{Prefix: "abc", Bare: true}},
		{name: "placeholder_at_end", raw: "[[$^", want: wrap.Template{Prefix: "[["}},
		{name: "empty", raw: "", want: wrap.Template{Bare: true}},
		{name: "second_placeholder_is_text", raw: "<$^|$^>", want: wrap.Template{Prefix: "<", Suffix: "|$^>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrap.ParseTemplate(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestSplitTrailingSpace(t *testing.T) {
	tests := []struct {
		selection string
		core      string
		trailing  string
	}{
		{selection: "foo", core: "foo"},
		{selection: "foo  ", core: "foo", trailing: "  "},
		{selection: "foo \t\n", core: "foo", trailing: " \t\n"},
		{selection: "  foo", core: "  foo"},
		{selection: "   ", core: "", trailing: "   "},
		{selection: "", core: ""},
		{selection: "foo　", core: "foo", trailing: "　"},
		{selection: "foo\u00a0", core: "foo", trailing: "\u00a0"},
		{selection: "foo\ufeff", core: "foo", trailing: "\ufeff"},
		{selection: "foo\u2009\u2028", core: "foo", trailing: "\u2009\u2028"},
		{selection: "foo\u0085", core: "foo\u0085"},
		{selection: "foo\u200b", core: "foo\u200b"},
	}

	for _, tt := range tests {
		t.Run(tt.selection, func(t *testing.T) {
			core, trailing := wrap.SplitTrailingSpace(tt.selection)
			assert.Equal(t, tt.core, core)
			assert.Equal(t, tt.trailing, trailing)
			assert.Equal(t, tt.selection, core+trailing)
		})
	}
}

func TestWrapString(t *testing.T) {
	tests := []struct {
		name       string
		before     string
		selection  string
		after      string
		start, end int
		template   string
		want       span.Edit
	}{
		{
			name:      "whitespace_stays_outside",
			selection: "foo  ",
			start:     0,
			end:       5,
			template:  "**$^**",
			want:      span.Edit{Text: "**foo**  ", SelStart: 0, SelEnd: 7},
		},
		{
			name:     "empty_selection",
			before:   "a",
			after:    "b",
			start:    1,
			end:      1,
			template: "_$^_",
			want:     span.Edit{Text: "a__b", SelStart: 1, SelEnd: 2},
		},
		{
			name:      "no_placeholder_is_prefix",
			selection: "x",
			start:     0,
			end:       1,
			template:  "abc",
			want:      span.Edit{Text: "abcx", SelStart: 0, SelEnd: 4},
		},
		{
			name:      "surrounding_text",
			before:    "say ",
			selection: "hello ",
			after:     "world",
			start:     4,
			end:       10,
			template:  "[[$^]]",
			want:      span.Edit{Text: "say [[hello]] world", SelStart: 4, SelEnd: 13},
		},
		{
			name:      "cloze",
			selection: "answer",
			start:     0,
			end:       6,
			template:  " {{cloze $^}}",
			want:      span.Edit{Text: " {{cloze answer}}", SelStart: 0, SelEnd: 17},
		},
		{
			name:      "offsets_in_utf16_units",
			before:    "😀",
			selection: "é",
			start:     2,
			end:       3,
			template:  "==$^==",
			want:      span.Edit{Text: "😀==é==", SelStart: 2, SelEnd: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrap.WrapString(tt.before, tt.selection, tt.after, tt.start, tt.end, tt.template)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrapPreservesPassthrough(t *testing.T) {
	befores := []string{"", "a", "line one\n- ", "**already** "}
	selections := []string{"", "x", "two words ", "  padded  ", "multi\nline\n"}
	afters := []string{"", "b", " trailing\n", "~~end~~"}
	templates := []string{"**$^**", "_$^_", "[:u \"$^\"]", "abc", "$^", " {{cloze $^}}"}

	for _, before := range befores {
		for _, selection := range selections {
			for _, after := range afters {
				for _, tmpl := range templates {
					start := span.Len(before)
					s := span.Span{
						Before:    before,
						Selection: selection,
						After:     after,
						Start:     start,
						End:       start + span.Len(selection),
					}

					got := wrap.Wrap(s, wrap.ParseTemplate(tmpl))
					require.True(t, strings.HasPrefix(got.Text, before), "before lost for %q", tmpl)
					require.True(t, strings.HasSuffix(got.Text, after), "after lost for %q", tmpl)
					require.Equal(t, s.Start, got.SelStart)

					core, trailing := wrap.SplitTrailingSpace(selection)
					parsed := wrap.ParseTemplate(tmpl)
					require.Equal(t, before+parsed.Prefix+core+parsed.Suffix+trailing+after, got.Text)
				}
			}
		}
	}
}
