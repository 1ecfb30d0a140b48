// Package wrap inserts a template's prefix and suffix around a selection.
package wrap

import (
	"strings"

	"github.com/walteh/mdwrap/pkg/span"
)

// Placeholder marks where the selection goes inside a template string.
const Placeholder = "$^"

// Template is a template string split on its first Placeholder.
type Template struct {
	Prefix string
	Suffix string
	// Bare is set when the template had no Placeholder.
	Bare bool
}

// ParseTemplate splits raw on the first Placeholder. A template without a
// placeholder is all prefix.
func ParseTemplate(raw string) Template {
	prefix, suffix, found := strings.Cut(raw, Placeholder)
	return Template{Prefix: prefix, Suffix: suffix, Bare: !found}
}

// String gives back the template as it was written.
func (t Template) String() string {
	if t.Bare {
		return t.Prefix
	}
	return t.Prefix + Placeholder + t.Suffix
}

// IsSpace reports whether r is whitespace the way editors' scripting runtimes
// define it: line terminators, the Unicode space separators and the byte
// order mark, but not U+0085.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}

// SplitTrailingSpace separates the maximal run of trailing whitespace from a
// selection. core+trailing == selection.
func SplitTrailingSpace(selection string) (core, trailing string) {
	core = strings.TrimRightFunc(selection, IsSpace)
	return core, selection[len(core):]
}

// Wrap surrounds the selection of s with t. Trailing whitespace stays outside
// the markers, so "foo " wrapped in bold becomes "**foo** ".
func Wrap(s span.Span, t Template) span.Edit {
	core, trailing := SplitTrailingSpace(s.Selection)

	var b strings.Builder
	b.Grow(len(s.Before) + len(t.Prefix) + len(s.Selection) + len(t.Suffix) + len(s.After))
	b.WriteString(s.Before)
	b.WriteString(t.Prefix)
	b.WriteString(core)
	b.WriteString(t.Suffix)
	b.WriteString(trailing)
	b.WriteString(s.After)

	return span.Edit{
		Text:     b.String(),
		SelStart: s.Start,
		SelEnd:   s.End + span.Len(t.Prefix) - span.Len(trailing) + span.Len(t.Suffix),
	}
}

// WrapString is Wrap over the positional form hosts hand out.
func WrapString(before, selection, after string, start, end int, template string) span.Edit {
	return Wrap(span.Span{
		Before:    before,
		Selection: selection,
		After:     after,
		Start:     start,
		End:       end,
	}, ParseTemplate(template))
}
