// Package theme holds the colors and lipgloss styles for the terminal
// screens. A Context is built once per session from the user's settings
// and passed to whatever renders.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/encore/internal/model"
)

// Accent is the brand green used for buttons, active items and borders.
const Accent = lipgloss.Color("#1DB954")

// Palette is the set of colors a theme draws with.
type Palette struct {
	Accent     lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Danger     lipgloss.Color
}

// Dark is the palette used when dark mode is on.
var Dark = Palette{
	Accent:     Accent,
	Background: lipgloss.Color("#000000"),
	Surface:    lipgloss.Color("#121212"),
	Text:       lipgloss.Color("#FFFFFF"),
	Muted:      lipgloss.Color("#AAAAAA"),
	Border:     lipgloss.Color("#333333"),
	Error:      lipgloss.Color("#FF4444"),
	Danger:     lipgloss.Color("#E53935"),
}

// Light is the default palette.
var Light = Palette{
	Accent:     Accent,
	Background: lipgloss.Color("#FFFFFF"),
	Surface:    lipgloss.Color("#F2F2F2"),
	Text:       lipgloss.Color("#111111"),
	Muted:      lipgloss.Color("#666666"),
	Border:     lipgloss.Color("#DDDDDD"),
	Error:      lipgloss.Color("#D32F2F"),
	Danger:     lipgloss.Color("#E53935"),
}

// Styles are the lipgloss styles derived from a Palette.
type Styles struct {
	// Title is used for screen titles.
	Title lipgloss.Style
	// Subtitle is used for secondary information.
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	// Song is used for song names in lists.
	Song lipgloss.Style
	// Selected is used for the highlighted row.
	Selected lipgloss.Style
	// Accent is used for counts, routes and active toggles.
	Accent  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	// Button is used for enabled actions in the help bar.
	Button lipgloss.Style
	// ButtonDisabled is used for undo/redo when there is nothing to do.
	ButtonDisabled lipgloss.Style
	Help           lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	// Box is used for bordered sections.
	Box lipgloss.Style
	// ActiveBox is used for the section that has focus.
	ActiveBox lipgloss.Style
	// Card is used for the live preview on the form screens.
	Card lipgloss.Style
}

// Context is the theme for one session.
type Context struct {
	Dark    bool
	Palette Palette
	Styles  Styles
}

// New returns the dark or light theme.
func New(dark bool) *Context {
	p := Light
	if dark {
		p = Dark
	}
	return &Context{Dark: dark, Palette: p, Styles: newStyles(p)}
}

// FromSettings returns the theme selected by the dark mode toggle. Nil
// settings give the default theme.
func FromSettings(s *model.Settings) *Context {
	if s == nil {
		s = model.DefaultSettings()
	}
	return New(s.DarkMode)
}

// Plain returns a theme whose styles render text unchanged.
func Plain() *Context {
	var s Styles
	plain := lipgloss.NewStyle()
	for _, st := range []*lipgloss.Style{
		&s.Title, &s.Subtitle, &s.Text, &s.Muted, &s.Song, &s.Selected,
		&s.Accent, &s.Success, &s.Warning, &s.Error, &s.Button,
		&s.ButtonDisabled, &s.Help, &s.HelpKey, &s.HelpDesc, &s.Box,
		&s.ActiveBox, &s.Card,
	} {
		*st = plain
	}
	return &Context{Palette: Light, Styles: s}
}

func newStyles(p Palette) Styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),
		Text: lipgloss.NewStyle().
			Foreground(p.Text),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Song: lipgloss.NewStyle().
			Foreground(p.Text),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Accent: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Success: lipgloss.NewStyle().
			Foreground(p.Accent),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")),
		Error: lipgloss.NewStyle().
			Foreground(p.Error),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.Accent).
			Padding(0, 1),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(p.Muted).
			Background(p.Surface).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Muted),
		Box:       box,
		ActiveBox: box.BorderForeground(p.Accent),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Background(p.Surface).
			Padding(1, 2),
	}
}

// Bar renders a fill bar of width cells for used out of total.
// A total of zero or less draws an empty bar.
func (c *Context) Bar(used, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		if used > total {
			used = total
		}
		if used > 0 {
			filled = width * used / total
		}
	}

	var b strings.Builder
	b.WriteString(c.Styles.Accent.Render(strings.Repeat("█", filled)))
	b.WriteString(c.Styles.Muted.Render(strings.Repeat("░", width-filled)))
	return b.String()
}

// Toggle renders an on/off switch.
func (c *Context) Toggle(on bool) string {
	if on {
		return c.Styles.Accent.Render("on")
	}
	return c.Styles.Muted.Render("off")
}
