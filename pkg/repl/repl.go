// Package repl strips markup from a selection with one ordered regex
// alternation, reassembling each match from its capture groups.
//
// Patterns use the ECMAScript dialect the settings files were written for:
// lookaround, backreferences and Unicode-wide \s all work.
package repl

import (
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/walteh/mdwrap/pkg/span"
	"gitlab.com/tozd/go/errors"
)

var ErrInvalidPattern = errors.Base("invalid clear pattern")

// MatchTimeout bounds a single pass over a selection. A pass that runs out
// leaves the selection unchanged.
var MatchTimeout = time.Second

// Table is a compiled alternation plus the reassembly applied to each match.
type Table struct {
	re         *regexp2.Regexp
	groups     int
	reassembly []segment
}

type segmentKind int

const (
	segLiteral segmentKind = iota
	segGroup
	// text of the scanned string before the match
	segBefore
	// text of the scanned string after the match
	segAfter
)

type segment struct {
	kind    segmentKind
	literal string
	group   int
}

// Compile joins alternatives, in priority order, into one alternation. Each
// match is replaced by the concatenation of every capture group.
func Compile(alternatives ...string) (*Table, error) {
	return CompileGroups(strings.Join(alternatives, "|"))
}

// CompileGroups compiles a ready-made alternation whose matches are replaced
// by all of their capture groups in order. Groups that did not take part in a
// match contribute nothing.
func CompileGroups(pattern string) (*Table, error) {
	t, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	for i := 1; i <= t.groups; i++ {
		t.reassembly = append(t.reassembly, segment{kind: segGroup, group: i})
	}

	return t, nil
}

// CompilePattern compiles a ready-made alternation with an explicit
// replacement in the "$1$2" form. An empty replacement deletes every match.
func CompilePattern(pattern, replacement string) (*Table, error) {
	t, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	t.reassembly = t.parseReassembly(replacement)

	return t, nil
}

func compile(pattern string) (*Table, error) {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, errors.Errorf("%w: %s", ErrInvalidPattern, err.Error())
	}
	re.MatchTimeout = MatchTimeout

	return &Table{re: re, groups: len(re.GetGroupNumbers()) - 1}, nil
}

// MustCompile is Compile for tables known at build time.
func MustCompile(alternatives ...string) *Table {
	t, err := Compile(alternatives...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) String() string {
	return t.re.String()
}

// Groups returns the number of capture groups in the alternation.
func (t *Table) Groups() int {
	return t.groups
}

// ReplaceString runs one global, non-overlapping pass over s.
func (t *Table) ReplaceString(s string) string {
	runes := []rune(s)

	m, err := t.re.FindRunesMatch(runes)
	if err != nil || m == nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	last := 0
	for m != nil {
		b.WriteString(string(runes[last:m.Index]))
		t.expand(&b, m, runes)
		last = m.Index + m.Length

		if m, err = t.re.FindNextMatch(m); err != nil {
			return s
		}
	}
	b.WriteString(string(runes[last:]))

	return b.String()
}

func (t *Table) expand(b *strings.Builder, m *regexp2.Match, runes []rune) {
	for _, seg := range t.reassembly {
		switch seg.kind {
		case segLiteral:
			b.WriteString(seg.literal)
		case segGroup:
			// groups that did not take part in this alternative have no captures
			if g := m.GroupByNumber(seg.group); g != nil && len(g.Captures) > 0 {
				b.WriteString(g.String())
			}
		case segBefore:
			b.WriteString(string(runes[:m.Index]))
		case segAfter:
			b.WriteString(string(runes[m.Index+m.Length:]))
		}
	}
}

// Replace clears the selection of s. Before and After are never scanned.
func (t *Table) Replace(s span.Span) span.Edit {
	replaced := t.ReplaceString(s.Selection)
	return span.Edit{
		Text:     s.Before + replaced + s.After,
		SelStart: s.Start,
		SelEnd:   s.Start + span.Len(replaced),
	}
}

// Repl is Replace over the positional form hosts hand out.
func Repl(before, selection, after string, start, end int, t *Table) span.Edit {
	return t.Replace(span.Span{
		Before:    before,
		Selection: selection,
		After:     after,
		Start:     start,
		End:       end,
	})
}

// parseReassembly understands $n, $nn, $&, $`, $', $<name> and $$. A $
// sequence that names no group of the pattern is kept as written.
func (t *Table) parseReassembly(replacement string) []segment {
	var (
		segs []segment
		lit  strings.Builder
	)

	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{kind: segLiteral, literal: lit.String()})
			lit.Reset()
		}
	}
	emit := func(seg segment) {
		flush()
		segs = append(segs, seg)
	}

	for i := 0; i < len(replacement); i++ {
		c := replacement[i]
		if c != '$' || i+1 >= len(replacement) {
			lit.WriteByte(c)
			continue
		}

		next := replacement[i+1]
		switch {
		case next == '$':
			lit.WriteByte('$')
			i++
		case next == '&':
			emit(segment{kind: segGroup, group: 0})
			i++
		case next == '`':
			emit(segment{kind: segBefore})
			i++
		case next == '\'':
			emit(segment{kind: segAfter})
			i++
		case isDigit(next):
			if i+2 < len(replacement) && isDigit(replacement[i+2]) {
				if n, _ := strconv.Atoi(replacement[i+1 : i+3]); n >= 1 && n <= t.groups {
					emit(segment{kind: segGroup, group: n})
					i += 2
					continue
				}
			}
			if n := int(next - '0'); n >= 1 && n <= t.groups {
				emit(segment{kind: segGroup, group: n})
				i++
				continue
			}
			lit.WriteByte('$')
		case next == '<':
			end := strings.IndexByte(replacement[i+2:], '>')
			if end < 0 || !t.hasNames() {
				lit.WriteByte('$')
				continue
			}
			name := replacement[i+2 : i+2+end]
			if n := t.re.GroupNumberFromName(name); n >= 0 {
				emit(segment{kind: segGroup, group: n})
			}
			i += 2 + end
		default:
			lit.WriteByte('$')
		}
	}
	flush()

	return segs
}

// hasNames reports whether the pattern declares any named group.
func (t *Table) hasNames() bool {
	for i := 1; i <= t.groups; i++ {
		if _, err := strconv.Atoi(t.re.GroupNameFromNumber(i)); err != nil {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
