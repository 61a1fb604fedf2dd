// Package theme reads terminal color themes from TOML files.
package theme

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/logging"
)

// ErrThemeParse is returned when a theme file cannot be read or decoded,
// or one of its colors is not a hex color.
var ErrThemeParse = errors.New("theme parse error")

// File is the on-disk layout of a theme.
type File struct {
	Name          string   `toml:"name"`
	Background    string   `toml:"background"`
	Foreground    string   `toml:"foreground"`
	Cursor        string   `toml:"cursor"`
	Palette       []string `toml:"palette"`
	TabActiveBG   string   `toml:"tab_active_bg,omitempty"`
	TabActiveFG   string   `toml:"tab_active_fg,omitempty"`
	TabInactiveBG string   `toml:"tab_inactive_bg,omitempty"`
	TabInactiveFG string   `toml:"tab_inactive_fg,omitempty"`
}

// FileLoader implements port.ThemeLoader for TOML files.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads and decodes the theme at path. The returned theme still has
// to pass entity.Theme.Validate.
func (l *FileLoader) Load(ctx context.Context, path string) (*entity.Theme, error) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrThemeParse, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	theme, err := Decode(data, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().Str("path", path).Str("theme", theme.Name).Int("palette", len(theme.Palette)).Msg("theme decoded")
	return theme, nil
}

// Decode parses a TOML theme. fallbackName is used when the file has no name.
func Decode(data []byte, fallbackName string) (*entity.Theme, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %v", ErrThemeParse, row, col, decodeErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrThemeParse, err)
	}
	return f.toEntity(fallbackName)
}

func (f File) toEntity(fallbackName string) (*entity.Theme, error) {
	theme := &entity.Theme{Name: strings.TrimSpace(f.Name)}
	if theme.Name == "" {
		theme.Name = fallbackName
	}

	var err error
	if theme.Background, err = parseField("background", f.Background); err != nil {
		return nil, err
	}
	if theme.Foreground, err = parseField("foreground", f.Foreground); err != nil {
		return nil, err
	}
	if theme.Cursor, err = parseField("cursor", f.Cursor); err != nil {
		return nil, err
	}

	theme.Palette = make([]entity.Color, 0, len(f.Palette))
	for i, hex := range f.Palette {
		c, err := parseField(fmt.Sprintf("palette[%d]", i), hex)
		if err != nil {
			return nil, err
		}
		theme.Palette = append(theme.Palette, c)
	}

	optional := []struct {
		field string
		value string
		dst   **entity.Color
	}{
		{"tab_active_bg", f.TabActiveBG, &theme.TabActiveBG},
		{"tab_active_fg", f.TabActiveFG, &theme.TabActiveFG},
		{"tab_inactive_bg", f.TabInactiveBG, &theme.TabInactiveBG},
		{"tab_inactive_fg", f.TabInactiveFG, &theme.TabInactiveFG},
	}
	for _, o := range optional {
		if strings.TrimSpace(o.value) == "" {
			continue
		}
		c, err := parseField(o.field, o.value)
		if err != nil {
			return nil, err
		}
		*o.dst = &c
	}

	return theme, nil
}

func parseField(field, value string) (entity.Color, error) {
	c, err := ParseColor(value)
	if err != nil {
		return entity.Color{}, fmt.Errorf("%w: %s: %v", ErrThemeParse, field, err)
	}
	return c, nil
}

// ParseColor parses "#rrggbb" or "#rgb"; the leading '#' is optional.
func ParseColor(s string) (entity.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return entity.Color{}, fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return entity.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return entity.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	r, g, b := c.RGB255()
	return entity.Color{R: r, G: g, B: b}, nil
}

// Encode renders a theme in the on-disk layout.
func Encode(theme *entity.Theme) ([]byte, error) {
	f := File{
		Name:       theme.Name,
		Background: theme.Background.Hex(),
		Foreground: theme.Foreground.Hex(),
		Cursor:     theme.Cursor.Hex(),
		Palette:    make([]string, 0, len(theme.Palette)),
	}
	for _, c := range theme.Palette {
		f.Palette = append(f.Palette, c.Hex())
	}
	hexOf := func(c *entity.Color) string {
		if c == nil {
			return ""
		}
		return c.Hex()
	}
	f.TabActiveBG = hexOf(theme.TabActiveBG)
	f.TabActiveFG = hexOf(theme.TabActiveFG)
	f.TabInactiveBG = hexOf(theme.TabInactiveBG)
	f.TabInactiveFG = hexOf(theme.TabInactiveFG)
	return toml.Marshal(f)
}

var _ port.ThemeLoader = (*FileLoader)(nil)
