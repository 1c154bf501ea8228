package renderer

import (
	"fmt"

	"github.com/dshills/xlsheet/internal/config"
	"github.com/dshills/xlsheet/internal/renderer/core"
)

// Theme holds the styles used to paint each kind of element.
type Theme struct {
	Base      core.Style
	Header    core.Style
	Button    core.Style
	Locked    core.Style
	Editing   core.Style
	Menu      core.Style
	MenuHover core.Style
	Label     core.Style
	Status    core.Style
}

// DefaultTheme returns the theme built from the default configuration.
func DefaultTheme() Theme {
	t, err := NewTheme(config.Default().Theme)
	if err != nil {
		// The defaults are constant and valid.
		panic(err)
	}
	return t
}

// NewTheme resolves the configured hex colors into styles.
// Empty colors fall back to the terminal default.
func NewTheme(cfg config.ThemeConfig) (Theme, error) {
	var fg, bg, header, locked, editing, menu, accent core.Color
	for _, c := range []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"foreground", cfg.Foreground, &fg},
		{"background", cfg.Background, &bg},
		{"header", cfg.Header, &header},
		{"locked", cfg.Locked, &locked},
		{"editing", cfg.Editing, &editing},
		{"menu", cfg.Menu, &menu},
		{"accent", cfg.Accent, &accent},
	} {
		color, err := parseColor(c.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme.%s: %w", c.name, err)
		}
		*c.dst = color
	}

	text := fg
	if text.IsDefault() {
		text = accent
	}

	base := core.DefaultStyle().WithForeground(fg).WithBackground(bg)
	t := Theme{
		Base:      base,
		Header:    base.WithBackground(header).WithForeground(accent).Bold(),
		Button:    base.WithBackground(header.Blend(accent, 0.2)).WithForeground(accent).Bold(),
		Locked:    base.WithBackground(locked).WithForeground(text),
		Editing:   base.WithBackground(editing).WithForeground(locked),
		Menu:      base.WithBackground(menu).WithForeground(accent),
		MenuHover: base.WithBackground(accent).WithForeground(menu).Bold(),
		Label:     base.WithForeground(text),
		Status:    base.WithForeground(text.Blend(bg, 0.4)).Dim(),
	}
	return t, nil
}

func parseColor(hex string) (core.Color, error) {
	if hex == "" {
		return core.ColorDefault, nil
	}
	return core.ColorFromHex(hex)
}
