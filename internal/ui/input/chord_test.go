package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Key
		wantOk bool
	}{
		{name: "escape", input: "escape", want: KeyEscape, wantOk: true},
		{name: "esc alias", input: "esc", want: KeyEscape, wantOk: true},
		{name: "enter alias", input: "Enter", want: KeyReturn, wantOk: true},
		{name: "space", input: "space", want: KeySpace, wantOk: true},
		{name: "page up underscore", input: "page_up", want: KeyPageUp, wantOk: true},
		{name: "arrow alias", input: "ArrowLeft", want: KeyLeft, wantOk: true},
		{name: "f12", input: "F12", want: KeyF12, wantOk: true},
		{name: "plus name", input: "plus", want: Key('+'), wantOk: true},
		{name: "letter", input: "t", want: Key('t'), wantOk: true},
		{name: "uppercase letter folds", input: "T", want: Key('t'), wantOk: true},
		{name: "digit", input: "7", want: Key('7'), wantOk: true},
		{name: "non latin", input: "é", want: Key('é'), wantOk: true},
		{name: "cyrillic", input: "ж", want: KeyFromRune('ж'), wantOk: true},
		{name: "empty", input: "", wantOk: false},
		{name: "unknown word", input: "banana", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyFromName(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestKey_NamedKeysDoNotCollideWithUnicode(t *testing.T) {
	// U+FF08 is a printable character whose code point equals a keysym.
	assert.NotEqual(t, KeyBackSpace, KeyFromRune('（'))
	r, ok := KeyBackSpace.Rune()
	assert.False(t, ok)
	assert.Zero(t, r)
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "T", Key('t').String())
	assert.Equal(t, "Left", KeyLeft.String())
	assert.Equal(t, "F5", KeyF5.String())
	assert.Equal(t, "Space", KeySpace.String())
	assert.Equal(t, "Plus", Key('+').String())
	assert.Equal(t, "", KeyNone.String())
}

func TestParseChord(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Chord
	}{
		{
			name:  "ctrl shift t",
			input: "Ctrl+Shift+T",
			want:  Chord{Key: Key('t'), Modifiers: ModCtrl | ModShift},
		},
		{
			name:  "control alias lowercase",
			input: "control+d",
			want:  Chord{Key: Key('d'), Modifiers: ModCtrl},
		},
		{
			name:  "option and win aliases",
			input: "option+win+x",
			want:  Chord{Key: Key('x'), Modifiers: ModAlt | ModSuper},
		},
		{
			name:  "meta is super",
			input: "meta+k",
			want:  Chord{Key: Key('k'), Modifiers: ModSuper},
		},
		{
			name:  "named key",
			input: "alt+left",
			want:  Chord{Key: KeyLeft, Modifiers: ModAlt},
		},
		{
			name:  "empty tokens skipped",
			input: "ctrl++shift+ +t",
			want:  Chord{Key: Key('t'), Modifiers: ModCtrl | ModShift},
		},
		{
			name:  "last key wins",
			input: "ctrl+a+b",
			want:  Chord{Key: Key('b'), Modifiers: ModCtrl},
		},
		{
			name:  "unknown token dropped",
			input: "hyperdrive+ctrl+q",
			want:  Chord{Key: Key('q'), Modifiers: ModCtrl},
		},
		{
			name:  "modifiers only is unset",
			input: "ctrl+shift",
			want:  Chord{},
		},
		{
			name:  "empty is unset",
			input: "",
			want:  Chord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseChord(tt.input))
		})
	}
}

func TestParseChordStrict(t *testing.T) {
	chord, err := ParseChordStrict("Alt+Shift+T")
	require.NoError(t, err)
	assert.Equal(t, Chord{Key: Key('t'), Modifiers: ModAlt | ModShift}, chord)

	chord, err = ParseChordStrict("ctrl+shift")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnresolvedChord))
	assert.False(t, chord.IsSet())

	chord, err = ParseChordStrict("ctrl+bogus+q")
	require.ErrorIs(t, err, ErrUnresolvedChord)
	assert.Contains(t, err.Error(), "bogus")
	assert.True(t, chord.IsSet(), "lenient parse is still returned")
}

func TestChord_MatchesExactModifiers(t *testing.T) {
	ctrlShiftT := ParseChord("ctrl+shift+t")
	ctrlT := ParseChord("ctrl+t")

	ev := KeyEvent{Key: Key('t'), Modifiers: ModCtrl}
	assert.True(t, ctrlT.Matches(ev))
	assert.False(t, ctrlShiftT.Matches(ev), "missing Shift must not match")

	ev = KeyEvent{Key: Key('T'), Modifiers: ModCtrl | ModShift}
	assert.True(t, ctrlShiftT.Matches(ev))
	assert.False(t, ctrlT.Matches(ev), "extra Shift must not match")
}

func TestChord_MatchIgnoresLockModifiers(t *testing.T) {
	chords := []string{"ctrl+d", "alt+shift+t", "alt+left", "alt+1", "super+f5"}
	locks := []Modifier{ModNone, ModLock, ModNumLock, ModLock | ModNumLock, ModHyper, ModMeta}

	for _, spec := range chords {
		chord := ParseChord(spec)
		require.True(t, chord.IsSet(), spec)
		for _, lock := range locks {
			ev := KeyEvent{Key: chord.Key, Modifiers: chord.Modifiers | lock}
			assert.True(t, chord.Matches(ev), "%s with lock bits %b", spec, lock)
		}
	}
}

func TestChord_KeyCaseInsensitive(t *testing.T) {
	chord := ParseChord("alt+shift+t")
	assert.True(t, chord.Matches(KeyEvent{Key: Key('T'), Modifiers: ModAlt | ModShift}))
	assert.True(t, chord.Matches(KeyEvent{Key: Key('t'), Modifiers: ModAlt | ModShift}))
}

func TestChord_UnsetNeverMatches(t *testing.T) {
	var chord Chord
	assert.False(t, chord.Matches(KeyEvent{}))
	assert.False(t, chord.Matches(KeyEvent{Key: Key('a')}))
}

func TestChord_String(t *testing.T) {
	assert.Equal(t, "Ctrl+Shift+T", ParseChord("shift+ctrl+t").String())
	assert.Equal(t, "Alt+Left", ParseChord("alt+arrowleft").String())
	assert.Equal(t, "Super+F5", ParseChord("win+f5").String())
	assert.Equal(t, "Q", ParseChord("q").String())
	assert.Equal(t, "", Chord{}.String())

	// Canonical form parses back to the same chord.
	for _, spec := range DefaultChords {
		chord := ParseChord(spec)
		assert.Equal(t, chord, ParseChord(chord.String()), spec)
	}
}
