package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/manav03panchal/encore/internal/output"
	"github.com/manav03panchal/encore/internal/playlist"
	"github.com/manav03panchal/encore/internal/theme"
	"github.com/manav03panchal/encore/internal/validate"
)

// SongsComponent displays the playlist with the selected row highlighted.
type SongsComponent struct {
	Songs    []playlist.Song
	Selected int
	Focused  bool
	Filter   string
	Width    int
	Now      time.Time
	Theme    *theme.Context
}

// View renders the songs component.
func (sc *SongsComponent) View() string {
	st := sc.Theme.Styles
	var content strings.Builder

	title := "Songs"
	if sc.Filter != "" {
		title = fmt.Sprintf("Songs matching %q", sc.Filter)
	}
	content.WriteString(st.Title.UnsetMarginBottom().Render(title))
	content.WriteString("\n")

	if len(sc.Songs) == 0 {
		if sc.Filter != "" {
			content.WriteString(st.Muted.Render("No matches"))
		} else {
			content.WriteString(st.Muted.Render("No songs yet. Press 'a' to add one."))
		}
	}

	for i, song := range sc.Songs {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(sc.renderSong(i, song))
	}

	box := st.Box
	if sc.Focused {
		box = st.ActiveBox
	}
	return box.Width(boxWidth(sc.Width)).Render(content.String())
}

func (sc *SongsComponent) renderSong(i int, song playlist.Song) string {
	st := sc.Theme.Styles

	label := song.Name
	if sc.Width > 0 {
		// Leave room for the cursor and the age column.
		label = validate.TruncateString(label, max(boxWidth(sc.Width)-24, 8))
	}

	cursor := "  "
	name := st.Song.Render(label)
	if sc.Focused && i == sc.Selected {
		cursor = st.Selected.Render("› ")
		name = st.Selected.Render(label)
	}

	line := cursor + name
	if at, ok := output.AddedAt(song.ID); ok {
		line += "  " + st.Muted.Render(output.FormatAge(at, sc.Now))
	}
	return line
}

// HistoryComponent displays the newest activity entries, newest first.
type HistoryComponent struct {
	History []string
	Limit   int
	Width   int
	Theme   *theme.Context
}

// View renders the history component.
func (hc *HistoryComponent) View() string {
	st := hc.Theme.Styles
	var content strings.Builder

	content.WriteString(st.Title.UnsetMarginBottom().Render("Activity"))
	content.WriteString("\n")

	if len(hc.History) == 0 {
		content.WriteString(st.Muted.Render("No activity yet"))
	}

	shown := 0
	for i := len(hc.History) - 1; i >= 0; i-- {
		if hc.Limit > 0 && shown == hc.Limit {
			break
		}
		if shown > 0 {
			content.WriteString("\n")
		}
		content.WriteString(st.Subtitle.Render(hc.History[i]))
		shown++
	}

	return st.Box.Width(boxWidth(hc.Width)).Render(content.String())
}

// Controls renders the undo and redo buttons, dimmed when unavailable.
func Controls(t *theme.Context, canUndo, canRedo bool) string {
	button := func(label string, enabled bool) string {
		if enabled {
			return t.Styles.Button.Render(label)
		}
		return t.Styles.ButtonDisabled.Render(label)
	}
	return button("Undo", canUndo) + " " + button("Redo", canRedo)
}

// HelpBar renders the key help for the current mode.
func HelpBar(t *theme.Context, mode Mode) string {
	type binding struct {
		key  string
		desc string
	}

	var keys []binding
	switch mode {
	case ModeAdd:
		keys = []binding{{"enter", "add"}, {"esc", "cancel"}}
	case ModeSearch:
		keys = []binding{{"enter", "keep filter"}, {"esc", "clear filter"}}
	default:
		keys = []binding{
			{"a", "add"},
			{"d", "remove"},
			{"u", "undo"},
			{"r", "redo"},
			{"c", "clear"},
			{"/", "search"},
			{"q", "quit"},
		}
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, t.Styles.HelpKey.Render(k.key)+" "+t.Styles.HelpDesc.Render(k.desc))
	}
	return t.Styles.Help.Render(strings.Join(parts, "  •  "))
}

func boxWidth(width int) int {
	if width-4 < 20 {
		return 20
	}
	return width - 4
}
