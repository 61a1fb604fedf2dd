package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnresolvedChord is returned when a chord string names no key.
var ErrUnresolvedChord = errors.New("unresolved key chord")

// KeyEvent is a key press as delivered by the host toolkit.
type KeyEvent struct {
	Key       Key
	Modifiers Modifier
}

// Chord is a key plus the exact set of modifiers that must be held.
// The zero Chord is unset and never matches.
type Chord struct {
	Key       Key
	Modifiers Modifier
}

// ParseChord parses a "+"-joined chord such as "Ctrl+Shift+T".
// Tokens are case-insensitive and empty tokens are skipped. When several
// tokens name a key, the last one wins. Unknown tokens are ignored; a
// string without any key yields an unset chord.
func ParseChord(spec string) Chord {
	chord, _ := parseChord(spec)
	return chord
}

// ParseChordStrict is ParseChord but reports unknown tokens and a missing
// key as ErrUnresolvedChord. The returned chord is still the lenient parse.
func ParseChordStrict(spec string) (Chord, error) {
	chord, unknown := parseChord(spec)
	switch {
	case chord.Key == KeyNone:
		return Chord{}, fmt.Errorf("%w: %q has no key", ErrUnresolvedChord, spec)
	case len(unknown) > 0:
		return chord, fmt.Errorf("%w: %q has unknown tokens %s", ErrUnresolvedChord, spec, strings.Join(unknown, ", "))
	}
	return chord, nil
}

func parseChord(spec string) (Chord, []string) {
	var (
		chord   Chord
		unknown []string
	)
	for _, token := range strings.Split(spec, "+") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if mod, ok := ModifierFromName(token); ok {
			chord.Modifiers |= mod
			continue
		}
		if key, ok := KeyFromName(token); ok {
			chord.Key = key.Lower()
			continue
		}
		unknown = append(unknown, token)
	}
	if chord.Key == KeyNone {
		return Chord{}, unknown
	}
	return chord, unknown
}

// IsSet reports whether the chord names a key.
func (c Chord) IsSet() bool {
	return c.Key != KeyNone
}

// Matches reports whether ev triggers the chord: same key ignoring case,
// and exactly the same Ctrl/Shift/Alt/Super state. Lock keys are ignored.
func (c Chord) Matches(ev KeyEvent) bool {
	if !c.IsSet() {
		return false
	}
	return ev.Key.Lower() == c.Key.Lower() &&
		ev.Modifiers.Relevant() == c.Modifiers.Relevant()
}

// String renders the chord in canonical form, e.g. "Ctrl+Shift+T".
func (c Chord) String() string {
	if !c.IsSet() {
		return ""
	}
	mods := c.Modifiers.Relevant().String()
	if mods == "" {
		return c.Key.String()
	}
	return mods + "+" + c.Key.String()
}
