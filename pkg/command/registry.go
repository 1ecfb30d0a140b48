package command

import (
	"context"

	"github.com/expr-lang/expr/vm"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/walteh/mdwrap/pkg/l10n"
	"github.com/walteh/mdwrap/pkg/repl"
	"github.com/walteh/mdwrap/pkg/span"
	"github.com/walteh/mdwrap/pkg/wrap"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/language"
)

// Kind tells wrap commands from clear commands.
type Kind int

const (
	KindWrap Kind = iota + 1
	KindClear
)

func (k Kind) String() string {
	switch k {
	case KindWrap:
		return "wrap"
	case KindClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Command is a compiled, invocable definition.
type Command struct {
	Key   string
	Label string
	Chord Chord
	Group string
	Icon  string
	Kind  Kind

	template wrap.Template
	table    *repl.Table
	when     *vm.Program
}

// Apply runs the command's engine over s.
func (me *Command) Apply(s span.Span) span.Edit {
	if me.Kind == KindClear {
		return me.table.Replace(s)
	}
	return wrap.Wrap(s, me.template)
}

// Transform returns Apply as a value, the shape the host adapter runs.
func (me *Command) Transform() func(span.Span) span.Edit {
	return me.Apply
}

// Available evaluates the command's `when` condition.
func (me *Command) Available(env Env) (bool, error) {
	ok, err := runWhen(me.when, env)
	if err != nil {
		return false, errors.Errorf("%s: %w", me.Key, err)
	}
	return ok, nil
}

// Template returns the wrap template; zero for clear commands.
func (me *Command) Template() wrap.Template {
	return me.template
}

// Table returns the clear table; nil for wrap commands.
func (me *Command) Table() *repl.Table {
	return me.table
}

// Entry is one toolbar slot: a command or a named group of them.
type Entry struct {
	Key      string
	Commands []*Command
}

// Registry holds the commands that compiled, in definition order.
type Registry struct {
	commands []*Command
	entries  []Entry
	byKey    map[string]*Command
}

type options struct {
	tag language.Tag
}

type Option func(*options)

// WithLanguage translates built-in labels for tag.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.tag = tag
	}
}

// NewRegistry compiles every definition on its own. A definition that fails
// is left out and its error joins the returned error; the registry is always
// usable.
func NewRegistry(ctx context.Context, defs []Definition, opts ...Option) (*Registry, error) {
	o := &options{tag: language.English}
	for _, opt := range opts {
		opt(o)
	}

	logger := zerolog.Ctx(ctx)

	r := &Registry{byKey: map[string]*Command{}}

	var merr *multierror.Error
	for _, def := range defs {
		switch d := def.(type) {
		case *Group:
			if err := Validate(d); err != nil {
				merr = multierror.Append(merr, err)
				continue
			}
			entry := Entry{Key: d.Key}
			for _, item := range d.Items {
				cmd, err := r.add(item, d.Key, o)
				if err != nil {
					merr = multierror.Append(merr, err)
					continue
				}
				entry.Commands = append(entry.Commands, cmd)
			}
			if len(entry.Commands) > 0 {
				r.entries = append(r.entries, entry)
			}
		default:
			cmd, err := r.add(d, "", o)
			if err != nil {
				merr = multierror.Append(merr, err)
				continue
			}
			r.entries = append(r.entries, Entry{Key: cmd.Key, Commands: []*Command{cmd}})
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		logger.Warn().Err(err).Int("registered", len(r.commands)).Msg("some command definitions were skipped")
		return r, errors.Errorf("registering commands: %w", err)
	}

	logger.Debug().Int("registered", len(r.commands)).Msg("commands registered")

	return r, nil
}

func (r *Registry) add(def Definition, group string, o *options) (*Command, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}

	if _, dup := r.byKey[def.DefinitionKey()]; dup {
		return nil, errors.Errorf("%w: duplicate key %s", ErrInvalidDefinition, def.DefinitionKey())
	}

	cmd, err := compile(def, o)
	if err != nil {
		return nil, err
	}
	cmd.Group = group

	r.commands = append(r.commands, cmd)
	r.byKey[cmd.Key] = cmd

	return cmd, nil
}

func compile(def Definition, o *options) (*Command, error) {
	var (
		cmd           *Command
		binding, when string
		err           error
	)

	switch d := def.(type) {
	case *Wrap:
		cmd = &Command{
			Key:      d.Key,
			Label:    l10n.Translate(o.tag, d.Label),
			Icon:     d.Icon,
			Kind:     KindWrap,
			template: wrap.ParseTemplate(d.Template),
		}
		binding, when = d.Binding, d.When
	case *Clear:
		var table *repl.Table
		var cerr error
		if d.Replacement == nil {
			table, cerr = repl.CompileGroups(d.Regex)
		} else {
			table, cerr = repl.CompilePattern(d.Regex, *d.Replacement)
		}
		if cerr != nil {
			return nil, errors.Errorf("%w: %s: %s", ErrInvalidDefinition, d.Key, cerr.Error())
		}
		cmd = &Command{
			Key:   d.Key,
			Label: l10n.Translate(o.tag, d.Label),
			Icon:  d.Icon,
			Kind:  KindClear,
			table: table,
		}
		binding, when = d.Binding, d.When
	default:
		return nil, errors.Errorf("%w: %s: unexpected %T", ErrInvalidDefinition, def.DefinitionKey(), def)
	}

	if cmd.Chord, err = ParseChord(binding); err != nil {
		return nil, errors.Errorf("%w: %s: %s", ErrInvalidDefinition, cmd.Key, err.Error())
	}

	if cmd.when, err = compileWhen(when); err != nil {
		return nil, errors.Errorf("%w: %s: %s", ErrInvalidDefinition, cmd.Key, err.Error())
	}

	return cmd, nil
}

// Lookup finds a command by key.
func (r *Registry) Lookup(key string) (*Command, bool) {
	cmd, ok := r.byKey[key]
	return cmd, ok
}

// Commands returns every command, groups flattened, in definition order.
func (r *Registry) Commands() []*Command {
	return r.commands
}

// Groups returns the toolbar layout: top-level commands and groups.
func (r *Registry) Groups() []Entry {
	return r.entries
}

// Keys returns the command keys in order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.commands))
	for i, cmd := range r.commands {
		keys[i] = cmd.Key
	}
	return keys
}

// Available returns the commands whose `when` holds for env. Conditions that
// fail to evaluate hide their command.
func (r *Registry) Available(ctx context.Context, env Env) []*Command {
	out := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		ok, err := cmd.Available(env)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Str("command", cmd.Key).Msg("when condition failed")
			continue
		}
		if ok {
			out = append(out, cmd)
		}
	}
	return out
}
