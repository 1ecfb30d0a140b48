// Package command turns configured definitions into invocable wrap and
// clear commands.
package command

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"gitlab.com/tozd/go/errors"
)

const (
	WrapPrefix  = "wrap-"
	ClearPrefix = "repl-"
	GroupPrefix = "group-"
)

var ErrInvalidDefinition = errors.Base("invalid command definition")

// Format is the note markup a graph is written in.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatOrg      Format = "org"
)

// Definition is one entry of the ordered command table: a Wrap, a Clear or a
// Group of them.
type Definition interface {
	DefinitionKey() string
	isDefinition()
}

// Wrap inserts Template around the selection.
type Wrap struct {
	Key      string `json:"key" yaml:"key" validate:"required,startswith=wrap-"`
	Label    string `json:"label" yaml:"label" validate:"required"`
	Binding  string `json:"binding,omitempty" yaml:"binding,omitempty"`
	Template string `json:"template" yaml:"template" validate:"required"`
	When     string `json:"when,omitempty" yaml:"when,omitempty"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Clear replaces every Regex match in the selection with Replacement. With no
// Replacement a match becomes its capture groups; an empty one deletes it.
type Clear struct {
	Key         string  `json:"key" yaml:"key" validate:"required,startswith=repl-"`
	Label       string  `json:"label" yaml:"label" validate:"required"`
	Binding     string  `json:"binding,omitempty" yaml:"binding,omitempty"`
	Regex       string  `json:"regex" yaml:"regex" validate:"required"`
	Replacement *string `json:"replacement,omitempty" yaml:"replacement,omitempty"`
	When        string  `json:"when,omitempty" yaml:"when,omitempty"`
	Icon        string  `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Group bundles commands under one toolbar entry. Groups do not nest.
type Group struct {
	Key   string       `validate:"required,startswith=group-"`
	Items []Definition `validate:"required,min=1"`
}

// Invalid holds the place of an entry that could not be read, so the registry
// reports it without losing the entries around it.
type Invalid struct {
	Key string
	Err error
}

func (me *Wrap) DefinitionKey() string    { return me.Key }
func (me *Clear) DefinitionKey() string   { return me.Key }
func (me *Group) DefinitionKey() string   { return me.Key }
func (me *Invalid) DefinitionKey() string { return me.Key }

func (*Wrap) isDefinition()    {}
func (*Clear) isDefinition()   {}
func (*Group) isDefinition()   {}
func (*Invalid) isDefinition() {}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the shape of a definition without compiling anything.
func Validate(def Definition) error {
	if def == nil {
		return errors.Errorf("%w: nil definition", ErrInvalidDefinition)
	}

	if inv, ok := def.(*Invalid); ok {
		if inv.Err == nil {
			return errors.Errorf("%w: %s", ErrInvalidDefinition, inv.Key)
		}
		return errors.Errorf("%w: %s: %s", ErrInvalidDefinition, inv.Key, inv.Err.Error())
	}

	if err := validate.Struct(def); err != nil {
		return errors.Errorf("%w: %s: %s", ErrInvalidDefinition, def.DefinitionKey(), describe(err))
	}

	if g, ok := def.(*Group); ok {
		for _, item := range g.Items {
			if _, nested := item.(*Group); nested {
				return errors.Errorf("%w: %s: groups cannot contain groups", ErrInvalidDefinition, g.Key)
			}
		}
	}

	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, strings.ToLower(fe.Field())+" must satisfy "+fe.Tag()+"="+fe.Param())
		} else {
			parts = append(parts, strings.ToLower(fe.Field())+" is "+fe.Tag())
		}
	}
	return strings.Join(parts, ", ")
}

// KindOf reports what a key denotes from its prefix.
func KindOf(key string) (Kind, bool) {
	switch {
	case strings.HasPrefix(key, WrapPrefix):
		return KindWrap, true
	case strings.HasPrefix(key, ClearPrefix):
		return KindClear, true
	default:
		return 0, false
	}
}
