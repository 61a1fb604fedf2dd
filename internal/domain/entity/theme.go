package entity

import "fmt"

// PaletteSize is the number of ANSI colors a theme must define.
const PaletteSize = 16

// Color is an opaque 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Theme holds the colors applied to every terminal session and the tab bar.
type Theme struct {
	Name       string
	Background Color
	Foreground Color
	Cursor     Color
	Palette    []Color

	// Optional tab bar colors; nil means derive from the base colors.
	TabActiveBG   *Color
	TabActiveFG   *Color
	TabInactiveBG *Color
	TabInactiveFG *Color
}

// Validate rejects themes that cannot be applied as a whole.
func (t *Theme) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: theme is nil", ErrInvalidPalette)
	}
	if len(t.Palette) != PaletteSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPalette, len(t.Palette))
	}
	return nil
}

// ActiveTabColors returns the active tab background and foreground.
func (t *Theme) ActiveTabColors() (bg, fg Color) {
	bg, fg = t.Foreground, t.Background
	if t.TabActiveBG != nil {
		bg = *t.TabActiveBG
	}
	if t.TabActiveFG != nil {
		fg = *t.TabActiveFG
	}
	return bg, fg
}

// InactiveTabColors returns the inactive tab background and foreground.
func (t *Theme) InactiveTabColors() (bg, fg Color) {
	bg, fg = t.Background, t.Foreground
	if t.TabInactiveBG != nil {
		bg = *t.TabInactiveBG
	}
	if t.TabInactiveFG != nil {
		fg = *t.TabInactiveFG
	}
	return bg, fg
}

// DefaultTheme returns the built-in dark theme used when no theme file is
// configured or the configured one is rejected.
func DefaultTheme() *Theme {
	return &Theme{
		Name:       "default",
		Background: Color{0x1e, 0x1e, 0x2e},
		Foreground: Color{0xcd, 0xd6, 0xf4},
		Cursor:     Color{0xf5, 0xe0, 0xdc},
		Palette: []Color{
			{0x45, 0x47, 0x5a}, {0xf3, 0x8b, 0xa8}, {0xa6, 0xe3, 0xa1}, {0xf9, 0xe2, 0xaf},
			{0x89, 0xb4, 0xfa}, {0xf5, 0xc2, 0xe7}, {0x94, 0xe2, 0xd5}, {0xba, 0xc2, 0xde},
			{0x58, 0x5b, 0x70}, {0xf3, 0x8b, 0xa8}, {0xa6, 0xe3, 0xa1}, {0xf9, 0xe2, 0xaf},
			{0x89, 0xb4, 0xfa}, {0xf5, 0xc2, 0xe7}, {0x94, 0xe2, 0xd5}, {0xa6, 0xad, 0xc8},
		},
	}
}
