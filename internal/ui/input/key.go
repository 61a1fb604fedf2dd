// Package input turns keyboard events into multiplexer commands.
package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key identifies a key by its X11 keysym. Printable characters outside
// Latin-1 use the 0x01000000 Unicode keysym range.
type Key uint32

// KeyNone is the zero key; a chord with KeyNone is unset.
const KeyNone Key = 0

const (
	KeyBackSpace Key = 0xff08
	KeyTab       Key = 0xff09
	KeyReturn    Key = 0xff0d
	KeyEscape    Key = 0xff1b
	KeyHome      Key = 0xff50
	KeyLeft      Key = 0xff51
	KeyUp        Key = 0xff52
	KeyRight     Key = 0xff53
	KeyDown      Key = 0xff54
	KeyPageUp    Key = 0xff55
	KeyPageDown  Key = 0xff56
	KeyEnd       Key = 0xff57
	KeyInsert    Key = 0xff63
	KeyF1        Key = 0xffbe
	KeyF2        Key = 0xffbf
	KeyF3        Key = 0xffc0
	KeyF4        Key = 0xffc1
	KeyF5        Key = 0xffc2
	KeyF6        Key = 0xffc3
	KeyF7        Key = 0xffc4
	KeyF8        Key = 0xffc5
	KeyF9        Key = 0xffc6
	KeyF10       Key = 0xffc7
	KeyF11       Key = 0xffc8
	KeyF12       Key = 0xffc9
	KeyDelete    Key = 0xffff

	KeySpace Key = 0x20
)

const unicodeKeysymBase = 0x01000000

// keyByName maps lowercase key names to keys. Single printable characters
// are resolved separately by KeyFromRune.
var keyByName = map[string]Key{
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"return":    KeyReturn,
	"enter":     KeyReturn,
	"tab":       KeyTab,
	"space":     KeySpace,
	"backspace": KeyBackSpace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"page_up":   KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"page_down": KeyPageDown,
	"pgdown":    KeyPageDown,

	"left":       KeyLeft,
	"arrowleft":  KeyLeft,
	"right":      KeyRight,
	"arrowright": KeyRight,
	"up":         KeyUp,
	"arrowup":    KeyUp,
	"down":       KeyDown,
	"arrowdown":  KeyDown,

	"f1":  KeyF1,
	"f2":  KeyF2,
	"f3":  KeyF3,
	"f4":  KeyF4,
	"f5":  KeyF5,
	"f6":  KeyF6,
	"f7":  KeyF7,
	"f8":  KeyF8,
	"f9":  KeyF9,
	"f10": KeyF10,
	"f11": KeyF11,
	"f12": KeyF12,

	"plus":         Key('+'),
	"minus":        Key('-'),
	"equal":        Key('='),
	"comma":        Key(','),
	"period":       Key('.'),
	"slash":        Key('/'),
	"backslash":    Key('\\'),
	"semicolon":    Key(';'),
	"apostrophe":   Key('\''),
	"grave":        Key('`'),
	"bracketleft":  Key('['),
	"bracketright": Key(']'),
}

// keyNames is the display name of each named key.
var keyNames = map[Key]string{
	KeyEscape:    "Escape",
	KeyReturn:    "Return",
	KeyTab:       "Tab",
	KeySpace:     "Space",
	KeyBackSpace: "BackSpace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "Page_Up",
	KeyPageDown:  "Page_Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	Key('+'):     "Plus",
}

// KeyFromRune returns the key producing r.
func KeyFromRune(r rune) Key {
	if r < 0x100 {
		return Key(r)
	}
	return Key(unicodeKeysymBase | uint32(r))
}

// KeyFromName resolves a key token such as "t", "left" or "f5".
// Matching is case-insensitive.
func KeyFromName(name string) (Key, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return KeyNone, false
	}
	if k, ok := keyByName[lower]; ok {
		return k, true
	}
	if utf8.RuneCountInString(lower) == 1 {
		r, _ := utf8.DecodeRuneInString(lower)
		if unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return KeyFromRune(r), true
		}
	}
	return KeyNone, false
}

// Rune returns the character a printable key produces.
func (k Key) Rune() (rune, bool) {
	switch {
	case k >= 0x20 && k < 0x7f, k >= 0xa0 && k < 0x100:
		return rune(k), true
	case k&unicodeKeysymBase != 0 && k < 0x02000000:
		return rune(k &^ unicodeKeysymBase), true
	default:
		return 0, false
	}
}

// Lower folds printable keys to lowercase; named keys are returned as is.
func (k Key) Lower() Key {
	r, ok := k.Rune()
	if !ok {
		return k
	}
	return KeyFromRune(unicode.ToLower(r))
}

// IsFunctionKey reports whether k is one of F1-F12.
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k.IsFunctionKey() {
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	if r, ok := k.Rune(); ok {
		return strings.ToUpper(string(r))
	}
	if k == KeyNone {
		return ""
	}
	return fmt.Sprintf("0x%x", uint32(k))
}
