package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhen(t *testing.T) {
	tests := []struct {
		name     string
		when     string
		env      Env
		expected bool
	}{
		{"empty_always_holds", "", Env{}, true},
		{"format", `format == "org"`, Env{Format: "org"}, true},
		{"format_mismatch", `format == "org"`, Env{Format: "markdown"}, false},
		{"selection_contains", `selection contains "**"`, Env{Selection: "**x**"}, true},
		{"language_prefix", `language startsWith "zh"`, Env{Language: "zh-CN"}, true},
		{"combined", `!empty && format != "org"`, Env{Format: "markdown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := compileWhen(tt.when)
			require.NoError(t, err)

			ok, err := runWhen(program, tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestWhenRejectsNonBool(t *testing.T) {
	_, err := compileWhen(`format`)
	require.Error(t, err)

	_, err = compileWhen(`unknownVar == 1`)
	require.Error(t, err)
}
