// Package config reads the user settings file: toolbar options plus the
// ordered command table.
package config

import (
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"github.com/walteh/mdwrap/pkg/command"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSettings = errors.Base("invalid settings")

// Options are the settings keys that are not command definitions.
type Options struct {
	Toolbar         bool           `yaml:"toolbar"`
	ToolbarShortcut string         `yaml:"toolbarShortcut"`
	PreferredFormat command.Format `yaml:"preferredFormat" validate:"omitempty,oneof=markdown org"`
	Locale          string         `yaml:"locale" validate:"omitempty,bcp47_language_tag"`
}

// Settings is a parsed settings file.
type Settings struct {
	Options

	// Definitions is the command table in file order.
	Definitions []command.Definition

	// Builtin is set when the file defined no commands and Definitions holds
	// command.Builtins.
	Builtin bool
}

func DefaultOptions() Options {
	return Options{
		Toolbar:         true,
		PreferredFormat: command.FormatMarkdown,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and parses the settings file at path. A missing file yields the
// defaults.
func Load(afs afero.Fs, path string) (*Settings, error) {
	data, err := afero.ReadFile(afs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Parse(nil)
		}
		return nil, errors.Errorf("reading settings %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, errors.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes YAML (or JSON) settings. Keys prefixed wrap-, repl- and
// group- become definitions in the order they appear; everything else is an
// option. Definition shapes are checked later, per command, by the registry,
// so one bad entry never hides the others.
func Parse(data []byte) (*Settings, error) {
	s := &Settings{Options: DefaultOptions()}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Errorf("%w: %s", ErrInvalidSettings, err.Error())
	}

	if len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind != yaml.MappingNode {
			return nil, errors.Errorf("%w: top level must be a mapping", ErrInvalidSettings)
		}

		if err := root.Decode(&s.Options); err != nil {
			return nil, errors.Errorf("%w: %s", ErrInvalidSettings, err.Error())
		}

		s.Definitions = decodeDefinitions(root, true)
	}

	if err := validate.Struct(&s.Options); err != nil {
		return nil, errors.Errorf("%w: %s", ErrInvalidSettings, err.Error())
	}

	if s.PreferredFormat == "" {
		s.PreferredFormat = command.FormatMarkdown
	}

	if len(s.Definitions) == 0 {
		s.Definitions = command.Builtins(s.PreferredFormat)
		s.Builtin = true
	}

	return s, nil
}

// DefinitionsFor returns the command table for a document written in format.
// The built-in table has per-format templates; a user table is the same for
// every format.
func (s *Settings) DefinitionsFor(format command.Format) []command.Definition {
	if s.Builtin && format != "" {
		return command.Builtins(format)
	}
	return s.Definitions
}

// decodeDefinitions reads the command entries of mapping in order. An entry
// that cannot be decoded becomes a command.Invalid so the registry reports it
// and still loads its neighbors.
func decodeDefinitions(mapping *yaml.Node, allowGroups bool) []command.Definition {
	var defs []command.Definition

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valueNode := mapping.Content[i], mapping.Content[i+1]
		key := keyNode.Value

		invalid := func(format string, args ...any) {
			defs = append(defs, &command.Invalid{
				Key: key,
				Err: errors.Errorf("line %d: "+format, append([]any{keyNode.Line}, args...)...),
			})
		}

		switch {
		case strings.HasPrefix(key, command.WrapPrefix):
			d := &command.Wrap{}
			if err := valueNode.Decode(d); err != nil {
				invalid("%s", err.Error())
				continue
			}
			d.Key = key
			defs = append(defs, d)
		case strings.HasPrefix(key, command.ClearPrefix):
			d := &command.Clear{}
			if err := valueNode.Decode(d); err != nil {
				invalid("%s", err.Error())
				continue
			}
			d.Key = key
			defs = append(defs, d)
		case strings.HasPrefix(key, command.GroupPrefix):
			if !allowGroups {
				invalid("groups cannot contain groups")
				continue
			}
			if valueNode.Kind != yaml.MappingNode {
				invalid("group must be a mapping")
				continue
			}
			defs = append(defs, &command.Group{Key: key, Items: decodeDefinitions(valueNode, false)})
		case !allowGroups:
			invalid("group items must start with %s or %s", command.WrapPrefix, command.ClearPrefix)
		}
	}

	return defs
}
