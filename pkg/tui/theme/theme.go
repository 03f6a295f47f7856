package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Mode names accepted by Resolve.
const (
	ModeAuto  = "auto"
	ModeLight = "light"
	ModeDark  = "dark"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Name   string
	Dark   bool
	Header lipgloss.Style
	Grid   GridTheme
	Detail DetailTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// GridTheme styles the seven day tiles.
type GridTheme struct {
	Tile         lipgloss.Style
	TileSelected lipgloss.Style
	Title        lipgloss.Style
	Task         lipgloss.Style
	TaskDone     lipgloss.Style
	Overflow     lipgloss.Style
	Empty        lipgloss.Style
}

// DetailTheme styles the single day view.
type DetailTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Back     lipgloss.Style
	Input    lipgloss.Style
	Task     lipgloss.Style
	TaskDone lipgloss.Style
	Cursor   lipgloss.Style
	Delete   lipgloss.Style
	Empty    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help      lipgloss.Style
	Notice    lipgloss.Style
	Warning   lipgloss.Style
	Indicator lipgloss.Style
}

// ModalTheme styles centered overlays such as help.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
}

type palette struct {
	bg, fg, accent, warn string
}

var (
	lightPalette = palette{bg: "#f8f7f4", fg: "#1f2430", accent: "#2f6fd6", warn: "#c2410c"}
	darkPalette  = palette{bg: "#1b1e26", fg: "#e6e6e6", accent: "#7aa2f7", warn: "#f59e0b"}
)

// blend mixes two hex colors in Lab space; t=0 yields a, t=1 yields b.
func blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

// Light returns the light presentation.
func Light() Theme {
	return build(ModeLight, false, lightPalette)
}

// Dark returns the dark presentation.
func Dark() Theme {
	return build(ModeDark, true, darkPalette)
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Dark()
}

// Resolve picks a theme for a configured mode. Auto asks the terminal for
// its background color.
func Resolve(mode string) Theme {
	switch mode {
	case ModeLight:
		return Light()
	case ModeDark:
		return Dark()
	default:
		if termenv.HasDarkBackground() {
			return Dark()
		}
		return Light()
	}
}

// Toggle returns the opposite presentation.
func (t Theme) Toggle() Theme {
	if t.Dark {
		return Light()
	}
	return Dark()
}

func build(name string, dark bool, p palette) Theme {
	fg := lipgloss.Color(p.fg)
	accent := lipgloss.Color(p.accent)
	muted := lipgloss.Color(blend(p.fg, p.bg, 0.55))
	faint := lipgloss.Color(blend(p.fg, p.bg, 0.75))
	border := lipgloss.Color(blend(p.fg, p.bg, 0.6))
	selectedBg := lipgloss.Color(blend(p.accent, p.bg, 0.8))

	tile := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return Theme{
		Name: name,
		Dark: dark,
		Header: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1),
		Grid: GridTheme{
			Tile: tile,
			TileSelected: tile.
				BorderForeground(accent).
				Background(selectedBg),
			Title:    lipgloss.NewStyle().Foreground(accent).Bold(true),
			Task:     lipgloss.NewStyle().Foreground(fg),
			TaskDone: lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
			Overflow: lipgloss.NewStyle().Foreground(muted).Italic(true),
			Empty:    lipgloss.NewStyle().Foreground(faint),
		},
		Detail: DetailTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title:    lipgloss.NewStyle().Foreground(accent).Bold(true),
			Back:     lipgloss.NewStyle().Foreground(muted),
			Input:    lipgloss.NewStyle().Foreground(fg),
			Task:     lipgloss.NewStyle().Foreground(fg),
			TaskDone: lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
			Cursor:   lipgloss.NewStyle().Foreground(accent).Bold(true),
			Delete:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.warn)),
			Empty:    lipgloss.NewStyle().Foreground(faint).Italic(true),
		},
		Footer: FooterTheme{
			Help:      lipgloss.NewStyle().Foreground(muted),
			Notice:    lipgloss.NewStyle().Foreground(accent).Bold(true),
			Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.warn)),
			Indicator: lipgloss.NewStyle().Foreground(faint),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
		},
	}
}
