package command

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

var ErrInvalidChord = errors.Base("invalid key chord")

// Modifier is a bit set of chord modifiers.
type Modifier uint8

const (
	ModMod   Modifier = 1 << iota // ctrl on linux/windows, cmd on macOS
	ModCtrl                       // always ctrl
	ModMeta                       // cmd / super
	ModAlt                        // alt / option
	ModShift
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModMod, "mod"},
	{ModCtrl, "ctrl"},
	{ModMeta, "meta"},
	{ModAlt, "alt"},
	{ModShift, "shift"},
}

func modifierFromName(name string) (Modifier, bool) {
	switch name {
	case "mod":
		return ModMod, true
	case "ctrl", "control":
		return ModCtrl, true
	case "meta", "cmd", "command", "super", "win":
		return ModMeta, true
	case "alt", "option", "opt":
		return ModAlt, true
	case "shift":
		return ModShift, true
	}
	return 0, false
}

// Stroke is one key press with modifiers held.
type Stroke struct {
	Mods Modifier
	Key  string
}

func (s Stroke) String() string {
	var parts []string
	for _, m := range modifierNames {
		if s.Mods&m.mod != 0 {
			parts = append(parts, m.name)
		}
	}
	return strings.Join(append(parts, s.Key), "+")
}

// Chord is a sequence of strokes, "mod+shift+x" or "t w".
type Chord []Stroke

func (c Chord) String() string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// ParseChord normalizes a keybinding. The empty string is no binding.
func ParseChord(spec string) (Chord, error) {
	fields := strings.Fields(strings.ToLower(spec))
	if len(fields) == 0 {
		return nil, nil
	}

	chord := make(Chord, 0, len(fields))
	for _, field := range fields {
		stroke, err := parseStroke(field)
		if err != nil {
			return nil, errors.Errorf("%w %q: %s", ErrInvalidChord, spec, err.Error())
		}
		chord = append(chord, stroke)
	}

	return chord, nil
}

func parseStroke(field string) (Stroke, error) {
	parts := strings.Split(field, "+")

	// "mod++" binds the plus key itself
	if strings.HasSuffix(field, "++") {
		parts = append(strings.Split(strings.TrimSuffix(field, "++"), "+"), "+")
	}

	var stroke Stroke
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierFromName(p)
		if !ok {
			return Stroke{}, errors.Errorf("unknown modifier %q", p)
		}
		if stroke.Mods&mod != 0 {
			return Stroke{}, errors.Errorf("duplicate modifier %q", p)
		}
		stroke.Mods |= mod
	}

	stroke.Key = parts[len(parts)-1]
	if stroke.Key == "" {
		return Stroke{}, errors.New("missing key")
	}
	if _, isMod := modifierFromName(stroke.Key); isMod && len(parts) > 1 {
		return Stroke{}, errors.Errorf("chord ends in modifier %q", stroke.Key)
	}

	return stroke, nil
}
