// Package diff renders what a command did to a file.
package diff

import (
	"strings"

	"github.com/fatih/color"
	"github.com/kylelemons/godebug/diff"
)

var (
	added   = color.New(color.FgGreen)
	removed = color.New(color.FgRed)
)

// Lines returns a line diff turning before into after, or "" when they are
// equal. Only changed lines are kept, removals ahead of additions within each
// run of changes.
func Lines(before, after string) string {
	if before == after {
		return ""
	}

	var b strings.Builder
	var adds, dels []string

	flush := func() {
		for _, line := range dels {
			b.WriteString(removed.Sprint(line) + "\n")
		}
		for _, line := range adds {
			b.WriteString(added.Sprint(line) + "\n")
		}
		adds, dels = nil, nil
	}

	for _, line := range strings.Split(diff.Diff(before, after), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			adds = append(adds, line)
		case strings.HasPrefix(line, "-"):
			dels = append(dels, line)
		default:
			flush()
		}
	}
	flush()

	return b.String()
}
