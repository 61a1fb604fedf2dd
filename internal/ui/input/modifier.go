package input

import "strings"

// Modifier is a bitset of modifier keys, laid out like the X11 state mask.
type Modifier uint32

const (
	ModNone    Modifier = 0
	ModShift   Modifier = 1 << 0
	ModLock    Modifier = 1 << 1
	ModCtrl    Modifier = 1 << 2
	ModAlt     Modifier = 1 << 3
	ModNumLock Modifier = 1 << 4
	ModSuper   Modifier = 1 << 26
	ModHyper   Modifier = 1 << 27
	ModMeta    Modifier = 1 << 28
)

// relevantModifiers are the only modifiers compared when matching.
// Caps Lock, Num Lock and the rest never affect a match.
const relevantModifiers = ModCtrl | ModShift | ModAlt | ModSuper

var modifierByName = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"option":  ModAlt,
	"super":   ModSuper,
	"meta":    ModSuper,
	"win":     ModSuper,
}

// ModifierFromName resolves a modifier token, case-insensitively.
func ModifierFromName(name string) (Modifier, bool) {
	m, ok := modifierByName[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// Relevant masks m down to Ctrl, Shift, Alt and Super.
func (m Modifier) Relevant() Modifier {
	return m & relevantModifiers
}

// Has reports whether all bits of other are set in m.
func (m Modifier) Has(other Modifier) bool {
	return m&other == other
}

// String renders the relevant modifiers in a fixed order, "+"-joined.
func (m Modifier) String() string {
	parts := make([]string, 0, 4)
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}
