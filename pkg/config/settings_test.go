package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/mdwrap/pkg/command"
	"github.com/walteh/mdwrap/pkg/config"
)

func TestParseKeepsDefinitionOrder(t *testing.T) {
	data := []byte(`
toolbar: false
toolbarShortcut: mod+t
repl-clear:
  label: Clear
  regex: '\*\*(.*?)\*\*'
  replacement: $1
wrap-bold:
  label: Bold
  binding: mod+b
  template: '**$^**'
group-color:
  wrap-red:
    label: Red
    template: '[[#red]]==$^=='
  repl-red:
    label: Unred
    regex: '\[\[#red\]\]==(.*?)=='
wrap-italic:
  label: Italic
  template: _$^_
  when: format != "org"
`)

	s, err := config.Parse(data)
	require.NoError(t, err)

	assert.False(t, s.Toolbar)
	assert.Equal(t, "mod+t", s.ToolbarShortcut)
	assert.Equal(t, command.FormatMarkdown, s.PreferredFormat)
	assert.False(t, s.Builtin)

	keys := make([]string, len(s.Definitions))
	for i, d := range s.Definitions {
		keys[i] = d.DefinitionKey()
	}
	assert.Equal(t, []string{"repl-clear", "wrap-bold", "group-color", "wrap-italic"}, keys)

	group, ok := s.Definitions[2].(*command.Group)
	require.True(t, ok)
	require.Len(t, group.Items, 2)
	assert.Equal(t, "wrap-red", group.Items[0].DefinitionKey())
	assert.Equal(t, "repl-red", group.Items[1].DefinitionKey())

	bold, ok := s.Definitions[1].(*command.Wrap)
	require.True(t, ok)
	assert.Equal(t, &command.Wrap{Key: "wrap-bold", Label: "Bold", Binding: "mod+b", Template: "**$^**"}, bold)

	italic, ok := s.Definitions[3].(*command.Wrap)
	require.True(t, ok)
	assert.Equal(t, `format != "org"`, italic.When)
}

func TestParseJSON(t *testing.T) {
	s, err := config.Parse([]byte(`{"preferredFormat": "org", "wrap-a": {"label": "A", "template": "a$^a"}}`))
	require.NoError(t, err)

	assert.True(t, s.Toolbar)
	assert.Equal(t, command.FormatOrg, s.PreferredFormat)
	require.Len(t, s.Definitions, 1)
	assert.Equal(t, "wrap-a", s.Definitions[0].DefinitionKey())
}

func TestParseFallsBackToBuiltins(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format command.Format
	}{
		{"empty", "", command.FormatMarkdown},
		{"options_only", "toolbar: true\nlocale: zh-CN\n", command.FormatMarkdown},
		{"org", "preferredFormat: org\n", command.FormatOrg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := config.Parse([]byte(tt.data))
			require.NoError(t, err)

			assert.True(t, s.Builtin)
			assert.Equal(t, command.Builtins(tt.format), s.Definitions)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for name, data := range map[string]string{
		"not_yaml":     "wrap-a: [unclosed",
		"not_mapping":  "- a\n- b\n",
		"bad_format":   "preferredFormat: html\n",
		"bad_toolbar":  "toolbar: maybe\n",
		"bad_language": "locale: '!!'\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(data))
			require.ErrorIs(t, err, config.ErrInvalidSettings)
		})
	}
}

func TestParsedDefinitionsRegisterInIsolation(t *testing.T) {
	s, err := config.Parse([]byte(`
wrap-ok:
  label: OK
  template: '**$^**'
repl-broken:
  label: Broken
  regex: '(unclosed'
group-x:
  plain:
    label: Missing prefix
    template: '$^'
  wrap-inner:
    label: Inner
    template: '_$^_'
`))
	require.NoError(t, err)

	reg, err := command.NewRegistry(context.Background(), s.Definitions)
	require.ErrorIs(t, err, command.ErrInvalidDefinition)
	assert.Equal(t, []string{"wrap-ok", "wrap-inner"}, reg.Keys())
}

func TestParseKeepsGoodEntriesNextToBadOnes(t *testing.T) {
	s, err := config.Parse([]byte(`
wrap-bold:
  label: Bold
  template: '**$^**'
wrap-broken: 5
repl-list: [1, 2]
group-x: 3
group-y:
  group-z:
    wrap-a:
      label: A
      template: a$^a
  wrap-italic:
    label: Italic
    template: _$^_
repl-clear:
  label: Clear
  regex: '\*\*(.*?)\*\*'
`))
	require.NoError(t, err)
	assert.False(t, s.Builtin)

	keys := make([]string, len(s.Definitions))
	for i, d := range s.Definitions {
		keys[i] = d.DefinitionKey()
	}
	assert.Equal(t, []string{"wrap-bold", "wrap-broken", "repl-list", "group-x", "group-y", "repl-clear"}, keys)

	broken, ok := s.Definitions[1].(*command.Invalid)
	require.True(t, ok)
	assert.Contains(t, broken.Err.Error(), "line 5")

	reg, err := command.NewRegistry(context.Background(), s.Definitions)
	require.ErrorIs(t, err, command.ErrInvalidDefinition)
	assert.Equal(t, []string{"wrap-bold", "wrap-italic", "repl-clear"}, reg.Keys())

	for _, key := range []string{"wrap-broken", "repl-list", "group-x", "group-z"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestParseReplacementPresence(t *testing.T) {
	s, err := config.Parse([]byte(`
repl-absent:
  label: Absent
  regex: '(a)'
repl-empty:
  label: Empty
  regex: '(a)'
  replacement: ""
repl-set:
  label: Set
  regex: '(a)'
  replacement: '<$1>'
`))
	require.NoError(t, err)
	require.Len(t, s.Definitions, 3)

	absent := s.Definitions[0].(*command.Clear)
	assert.Nil(t, absent.Replacement)

	empty := s.Definitions[1].(*command.Clear)
	require.NotNil(t, empty.Replacement)
	assert.Equal(t, "", *empty.Replacement)

	set := s.Definitions[2].(*command.Clear)
	require.NotNil(t, set.Replacement)
	assert.Equal(t, "<$1>", *set.Replacement)
}

func TestLoad(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/home/me/settings.yaml", []byte("wrap-x:\n  label: X\n  template: x$^x\n"), 0o644))

	s, err := config.Load(afs, "/home/me/settings.yaml")
	require.NoError(t, err)
	require.Len(t, s.Definitions, 1)

	missing, err := config.Load(afs, "/home/me/missing.yaml")
	require.NoError(t, err)
	assert.True(t, missing.Builtin)
	assert.Equal(t, config.DefaultOptions(), missing.Options)
}

func TestLoadRuntime(t *testing.T) {
	t.Setenv("MDWRAP_LOG_LEVEL", "DEBUG")
	t.Setenv("MDWRAP_THROTTLE", "250ms")

	v := config.NewViper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("settings", "", "")
	require.NoError(t, flags.Parse([]string{"--settings", "/tmp/s.yaml"}))
	require.NoError(t, config.BindFlags(v, flags))

	rt, err := config.LoadRuntime(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", rt.LogLevel)
	assert.Equal(t, "/tmp/s.yaml", rt.Settings)
	assert.Equal(t, config.DefaultDebounce, rt.Debounce)
	assert.Equal(t, 250*time.Millisecond, rt.Throttle)
	assert.Equal(t, config.DefaultGlobs, rt.Globs)
}

func TestLoadRuntimeRejectsBadLevel(t *testing.T) {
	t.Setenv("MDWRAP_LOG_LEVEL", "loud")

	_, err := config.LoadRuntime(config.NewViper())
	require.ErrorIs(t, err, config.ErrInvalidSettings)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("toolbar: true\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *config.Settings, 8)
	done := make(chan error, 1)
	go func() {
		done <- config.Watch(ctx, afero.NewOsFs(), path, func(s *config.Settings, err error) {
			if err == nil {
				changes <- s
			}
		})
	}()

	// give the watcher a moment to register
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("toolbar: false\n"), 0o644)
		select {
		case s := <-changes:
			return !s.Toolbar
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestRuntimeFromContext(t *testing.T) {
	rt := &config.Runtime{LogLevel: "warn", Globs: []string{"*.md"}}

	got, err := config.RuntimeFromContext(config.WithRuntime(context.Background(), rt))
	require.NoError(t, err)
	assert.Same(t, rt, got)

	defaults, err := config.RuntimeFromContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLogLevel, defaults.LogLevel)
}

func TestDefinitionsFor(t *testing.T) {
	builtin, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, command.Builtins(command.FormatOrg), builtin.DefinitionsFor(command.FormatOrg))
	assert.Equal(t, command.Builtins(command.FormatMarkdown), builtin.DefinitionsFor(""))

	custom, err := config.Parse([]byte("wrap-a:\n  label: A\n  template: a$^a\n"))
	require.NoError(t, err)
	assert.Equal(t, custom.Definitions, custom.DefinitionsFor(command.FormatOrg))
}
