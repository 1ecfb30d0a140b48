package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, afs afero.Fs, args ...string) (string, error) {
	t.Helper()

	root, err := newRootCommand(afs)
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "disabled"}, args...))

	err = root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		args     []string
		expected string
		output   string
	}{
		{
			name:     "bold",
			file:     "/notes/a.md",
			content:  "make this bold please",
			args:     []string{"--command", "wrap-bold", "--start", "5", "--end", "15"},
			expected: "make **this bold** please",
			output:   "5 18\n",
		},
		{
			name:     "clear",
			file:     "/notes/b.md",
			content:  "**a** ~~b~~ [[c]]",
			args:     []string{"--command", "repl-clear", "--start", "0", "--end", "17"},
			expected: "a b c",
			output:   "0 5\n",
		},
		{
			name:     "org_highlight",
			file:     "/notes/c.org",
			content:  "hi",
			args:     []string{"--command", "wrap-red-hl", "--start", "0", "--end", "2"},
			expected: "[[#red]]^^hi^^",
			output:   "0 14\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			afs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(afs, tt.file, []byte(tt.content), 0o644))

			out, err := execute(t, afs, append(append([]string{"apply"}, tt.args...), tt.file)...)
			require.NoError(t, err)
			assert.Equal(t, tt.output, out)

			got, err := afero.ReadFile(afs, tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestApplyDryRun(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/notes/a.md", []byte("say hi"), 0o644))

	out, err := execute(t, afs, "apply", "--command", "wrap-italic", "--start", "4", "--end", "6", "--dry-run", "/notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "say _hi_", out)

	got, err := afero.ReadFile(afs, "/notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "say hi", string(got), "dry run leaves the file alone")
}

func TestApplyDiff(t *testing.T) {
	color.NoColor = true

	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/notes/a.md", []byte("# title\nsay hi\nbye"), 0o644))

	out, err := execute(t, afs, "apply", "--command", "wrap-bold", "--start", "12", "--end", "14", "--diff", "/notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "-say hi\n+say **hi**\n", out)

	got, err := afero.ReadFile(afs, "/notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "# title\nsay hi\nbye", string(got))
}

func TestApplyWithSettings(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/home/me/mdwrap.yaml", []byte(`
wrap-sup:
  label: Superscript
  template: '<sup>$^</sup>'
  when: '!empty'
`), 0o644))
	require.NoError(t, afero.WriteFile(afs, "/notes/a.md", []byte("x2"), 0o644))

	out, err := execute(t, afs, "--settings", "/home/me/mdwrap.yaml", "apply", "--command", "wrap-sup", "--start", "1", "--end", "2", "/notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "1 13\n", out)

	got, err := afero.ReadFile(afs, "/notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "x<sup>2</sup>", string(got))

	// the builtins are replaced by the file
	_, err = execute(t, afs, "--settings", "/home/me/mdwrap.yaml", "apply", "--command", "wrap-bold", "/notes/a.md")
	require.Error(t, err)

	// when condition rejects an empty selection
	_, err = execute(t, afs, "--settings", "/home/me/mdwrap.yaml", "apply", "--command", "wrap-sup", "--start", "1", "--end", "1", "/notes/a.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestApplyNextToBrokenSettingsEntry(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/home/me/mdwrap.yaml", []byte(`
wrap-broken: 5
wrap-em:
  label: Emphasis
  template: '<em>$^</em>'
repl-strip:
  label: Strip tags
  regex: '</?\w+>'
  replacement: ""
`), 0o644))
	require.NoError(t, afero.WriteFile(afs, "/notes/a.md", []byte("x <b>y</b>"), 0o644))

	out, err := execute(t, afs, "--settings", "/home/me/mdwrap.yaml", "apply", "--command", "repl-strip", "--start", "2", "--end", "10", "--dry-run", "/notes/a.md")
	require.NoError(t, err)
	assert.Equal(t, "x y", out)

	_, err = execute(t, afs, "--settings", "/home/me/mdwrap.yaml", "apply", "--command", "wrap-broken", "/notes/a.md")
	require.Error(t, err)
}

func TestApplyErrors(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/notes/a.md", []byte("short"), 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{"unknown_command", []string{"apply", "--command", "wrap-nope", "/notes/a.md"}},
		{"missing_file", []string{"apply", "--command", "wrap-bold", "/notes/missing.md"}},
		{"bad_range", []string{"apply", "--command", "wrap-bold", "--start", "3", "--end", "99", "/notes/a.md"}},
		{"no_command", []string{"apply", "/notes/a.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, afs, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestList(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "list")
	require.NoError(t, err)

	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "wrap-bold")
	assert.Contains(t, out, "group-style")
	assert.Contains(t, out, "mod+shift+x")
	assert.Contains(t, out, `[:mark {:class "#red"} "$^"]`)

	org, err := execute(t, afero.NewMemMapFs(), "list", "--format", "org")
	require.NoError(t, err)
	assert.Contains(t, org, "[[#red]]^^$^^^")

	_, err = execute(t, afero.NewMemMapFs(), "list", "--format", "html")
	require.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	root, err := newRootCommand(afero.NewMemMapFs())
	require.NoError(t, err)

	root.SetArgs([]string{"--log-level", "loud", "list"})
	root.SetOut(&bytes.Buffer{})
	require.Error(t, root.ExecuteContext(context.Background()))
}
