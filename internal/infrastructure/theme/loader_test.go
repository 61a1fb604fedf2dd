package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/domain/entity"
)

func paletteTOML(n int) string {
	colors := make([]string, 0, n)
	for i := 0; i < n; i++ {
		colors = append(colors, fmt.Sprintf("%q", fmt.Sprintf("#%02x0000", i)))
	}
	return "palette = [" + strings.Join(colors, ", ") + "]\n"
}

func writeTheme(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const baseColors = `
background = "#282a36"
foreground = "#f8f8f2"
cursor = "f8f8f2"
`

func TestFileLoader_Load(t *testing.T) {
	path := writeTheme(t, "dracula.toml", baseColors+paletteTOML(16))

	theme, err := NewFileLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, theme.Validate())

	assert.Equal(t, "dracula", theme.Name, "name falls back to the file name")
	assert.Equal(t, entity.Color{R: 0x28, G: 0x2a, B: 0x36}, theme.Background)
	assert.Equal(t, entity.Color{R: 0xf8, G: 0xf8, B: 0xf2}, theme.Cursor)
	assert.Len(t, theme.Palette, entity.PaletteSize)
	assert.Equal(t, entity.Color{R: 0x0f}, theme.Palette[15])
	assert.Nil(t, theme.TabActiveBG)
}

func TestFileLoader_OptionalTabColors(t *testing.T) {
	body := "name = \"Custom\"\n" + baseColors + paletteTOML(16) + `
tab_active_bg = "#ff0000"
tab_inactive_fg = "#0f0"
`
	theme, err := NewFileLoader().Load(context.Background(), writeTheme(t, "x.toml", body))
	require.NoError(t, err)

	assert.Equal(t, "Custom", theme.Name)
	require.NotNil(t, theme.TabActiveBG)
	assert.Equal(t, entity.Color{R: 0xff}, *theme.TabActiveBG)
	require.NotNil(t, theme.TabInactiveFG)
	assert.Equal(t, entity.Color{G: 0xff}, *theme.TabInactiveFG)
	assert.Nil(t, theme.TabActiveFG)

	bg, fg := theme.ActiveTabColors()
	assert.Equal(t, entity.Color{R: 0xff}, bg)
	assert.Equal(t, theme.Background, fg)
}

func TestFileLoader_ShortPaletteRejectedByValidate(t *testing.T) {
	path := writeTheme(t, "short.toml", baseColors+paletteTOML(15))

	theme, err := NewFileLoader().Load(context.Background(), path)
	require.NoError(t, err, "decoding succeeds")
	assert.ErrorIs(t, theme.Validate(), entity.ErrInvalidPalette)
}

func TestFileLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bad toml", body: "background = \n", want: "line"},
		{name: "bad background", body: "background = \"#zzzzzz\"\n" + paletteTOML(16), want: "background"},
		{name: "bad palette entry", body: baseColors + "palette = [\"#000000\", \"red\"]\n", want: "palette[1]"},
		{name: "missing cursor", body: "background = \"#000000\"\nforeground = \"#ffffff\"\n", want: "cursor"},
		{name: "bad tab color", body: baseColors + paletteTOML(16) + "tab_active_fg = \"#12\"\n", want: "tab_active_fg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileLoader().Load(context.Background(), writeTheme(t, "bad.toml", tt.body))
			require.ErrorIs(t, err, ErrThemeParse)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFileLoader_MissingFile(t *testing.T) {
	_, err := NewFileLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrThemeParse)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input  string
		want   entity.Color
		wantOk bool
	}{
		{input: "#ffffff", want: entity.Color{R: 255, G: 255, B: 255}, wantOk: true},
		{input: "ABCDEF", want: entity.Color{R: 0xab, G: 0xcd, B: 0xef}, wantOk: true},
		{input: "#fff", want: entity.Color{R: 255, G: 255, B: 255}, wantOk: true},
		{input: "", wantOk: false},
		{input: "#gg0000", wantOk: false},
		{input: "#12345", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if !tt.wantOk {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_DefaultThemeDecodesBack(t *testing.T) {
	data, err := Encode(entity.DefaultTheme())
	require.NoError(t, err)

	theme, err := Decode(data, "")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultTheme(), theme)
}
