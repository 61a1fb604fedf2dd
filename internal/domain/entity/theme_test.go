package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTheme_Validate(t *testing.T) {
	theme := DefaultTheme()
	assert.NoError(t, theme.Validate())

	theme.Palette = theme.Palette[:15]
	assert.ErrorIs(t, theme.Validate(), ErrInvalidPalette)

	var nilTheme *Theme
	assert.ErrorIs(t, nilTheme.Validate(), ErrInvalidPalette)
}

func TestTheme_TabColors(t *testing.T) {
	theme := DefaultTheme()

	bg, fg := theme.ActiveTabColors()
	assert.Equal(t, theme.Foreground, bg)
	assert.Equal(t, theme.Background, fg)

	custom := Color{1, 2, 3}
	theme.TabInactiveBG = &custom
	bg, fg = theme.InactiveTabColors()
	assert.Equal(t, custom, bg)
	assert.Equal(t, theme.Foreground, fg)
}

func TestColor_Hex(t *testing.T) {
	assert.Equal(t, "#0a0b0c", Color{10, 11, 12}.Hex())
}
