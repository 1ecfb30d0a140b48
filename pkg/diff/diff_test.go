package diff_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/mdwrap/pkg/diff"
)

func TestLines(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name   string
		before string
		after  string
		want   string
	}{
		{
			name:   "equal",
			before: "say hi",
			after:  "say hi",
			want:   "",
		},
		{
			name:   "single_line",
			before: "say hi",
			after:  "say **hi**",
			want:   "-say hi\n+say **hi**\n",
		},
		{
			name:   "unchanged_lines_dropped",
			before: "one\ntwo\nthree",
			after:  "one\n_two_\nthree",
			want:   "-two\n+_two_\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, diff.Lines(tt.before, tt.after))
		})
	}
}
