package input

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// teaNamedKeys maps terminal key types to a key and the modifiers the
// terminal folded into the type.
var teaNamedKeys = map[tea.KeyType]KeyEvent{
	tea.KeyEnter:     {Key: KeyReturn},
	tea.KeyTab:       {Key: KeyTab},
	tea.KeyShiftTab:  {Key: KeyTab, Modifiers: ModShift},
	tea.KeyEsc:       {Key: KeyEscape},
	tea.KeyBackspace: {Key: KeyBackSpace},
	tea.KeySpace:     {Key: KeySpace},
	tea.KeyDelete:    {Key: KeyDelete},
	tea.KeyInsert:    {Key: KeyInsert},

	tea.KeyHome:       {Key: KeyHome},
	tea.KeyEnd:        {Key: KeyEnd},
	tea.KeyPgUp:       {Key: KeyPageUp},
	tea.KeyPgDown:     {Key: KeyPageDown},
	tea.KeyCtrlHome:   {Key: KeyHome, Modifiers: ModCtrl},
	tea.KeyCtrlEnd:    {Key: KeyEnd, Modifiers: ModCtrl},
	tea.KeyShiftHome:  {Key: KeyHome, Modifiers: ModShift},
	tea.KeyShiftEnd:   {Key: KeyEnd, Modifiers: ModShift},
	tea.KeyCtrlPgUp:   {Key: KeyPageUp, Modifiers: ModCtrl},
	tea.KeyCtrlPgDown: {Key: KeyPageDown, Modifiers: ModCtrl},

	tea.KeyUp:             {Key: KeyUp},
	tea.KeyDown:           {Key: KeyDown},
	tea.KeyLeft:           {Key: KeyLeft},
	tea.KeyRight:          {Key: KeyRight},
	tea.KeyShiftUp:        {Key: KeyUp, Modifiers: ModShift},
	tea.KeyShiftDown:      {Key: KeyDown, Modifiers: ModShift},
	tea.KeyShiftLeft:      {Key: KeyLeft, Modifiers: ModShift},
	tea.KeyShiftRight:     {Key: KeyRight, Modifiers: ModShift},
	tea.KeyCtrlUp:         {Key: KeyUp, Modifiers: ModCtrl},
	tea.KeyCtrlDown:       {Key: KeyDown, Modifiers: ModCtrl},
	tea.KeyCtrlLeft:       {Key: KeyLeft, Modifiers: ModCtrl},
	tea.KeyCtrlRight:      {Key: KeyRight, Modifiers: ModCtrl},
	tea.KeyCtrlShiftUp:    {Key: KeyUp, Modifiers: ModCtrl | ModShift},
	tea.KeyCtrlShiftDown:  {Key: KeyDown, Modifiers: ModCtrl | ModShift},
	tea.KeyCtrlShiftLeft:  {Key: KeyLeft, Modifiers: ModCtrl | ModShift},
	tea.KeyCtrlShiftRight: {Key: KeyRight, Modifiers: ModCtrl | ModShift},

	tea.KeyF1:  {Key: KeyF1},
	tea.KeyF2:  {Key: KeyF2},
	tea.KeyF3:  {Key: KeyF3},
	tea.KeyF4:  {Key: KeyF4},
	tea.KeyF5:  {Key: KeyF5},
	tea.KeyF6:  {Key: KeyF6},
	tea.KeyF7:  {Key: KeyF7},
	tea.KeyF8:  {Key: KeyF8},
	tea.KeyF9:  {Key: KeyF9},
	tea.KeyF10: {Key: KeyF10},
	tea.KeyF11: {Key: KeyF11},
	tea.KeyF12: {Key: KeyF12},
}

// FromTeaKey translates a terminal key message into a KeyEvent. Control
// codes become Ctrl plus the letter, upper-case runes add Shift and the
// Alt prefix adds Alt. ok is false for pastes and keys with no mapping.
func FromTeaKey(msg tea.KeyMsg) (KeyEvent, bool) {
	if msg.Paste {
		return KeyEvent{}, false
	}

	var ev KeyEvent
	switch {
	case msg.Type == tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return KeyEvent{}, false
		}
		r := msg.Runes[0]
		ev.Key = KeyFromRune(r)
		if unicode.IsUpper(r) {
			ev.Modifiers |= ModShift
		}
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ &&
		msg.Type != tea.KeyTab && msg.Type != tea.KeyEnter:
		ev.Key = KeyFromRune(rune('a' + int(msg.Type-tea.KeyCtrlA)))
		ev.Modifiers = ModCtrl
	default:
		named, ok := teaNamedKeys[msg.Type]
		if !ok {
			return KeyEvent{}, false
		}
		ev = named
	}

	if msg.Alt {
		ev.Modifiers |= ModAlt
	}
	return ev, true
}

// teaKeyBytes are the bytes a line-oriented shell expects for keys that
// have no printable form.
var teaKeyBytes = map[tea.KeyType]string{
	tea.KeyEnter:     "\n",
	tea.KeyTab:       "\t",
	tea.KeyBackspace: "\x7f",
	tea.KeySpace:     " ",
	tea.KeyEsc:       "\x1b",
	tea.KeyUp:        "\x1b[A",
	tea.KeyDown:      "\x1b[B",
	tea.KeyRight:     "\x1b[C",
	tea.KeyLeft:      "\x1b[D",
	tea.KeyHome:      "\x1b[H",
	tea.KeyEnd:       "\x1b[F",
	tea.KeyDelete:    "\x1b[3~",
}

// SessionBytes returns the input a key sends to a session. Pastes and
// runes pass through; control keys become their control code. Alt
// prefixes the sequence with ESC.
func SessionBytes(msg tea.KeyMsg) []byte {
	var out string
	switch {
	case msg.Type == tea.KeyRunes:
		out = string(msg.Runes)
	case msg.Type >= tea.KeyCtrlAt && msg.Type <= tea.KeyCtrlUnderscore &&
		msg.Type != tea.KeyTab && msg.Type != tea.KeyEnter && msg.Type != tea.KeyEsc && msg.Type != tea.KeyBackspace:
		out = string(rune(msg.Type))
	default:
		s, ok := teaKeyBytes[msg.Type]
		if !ok {
			return nil
		}
		out = s
	}
	if msg.Alt && !msg.Paste {
		out = "\x1b" + out
	}
	return []byte(out)
}
