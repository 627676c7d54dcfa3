package output

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/encore/internal/form"
	"github.com/manav03panchal/encore/internal/model"
	"github.com/manav03panchal/encore/internal/nav"
	"github.com/manav03panchal/encore/internal/playlist"
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
	// Now is used for relative ages. Nil uses time.Now.
	Now func() time.Time
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f, Now: time.Now}
}

func (c *CLIFormatter) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.styles().Title.UnsetMarginBottom().Render(text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.styles().Success.Render("✓ " + text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.styles().Warning.Render("⚠ " + text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.styles().Error.Render("✗ " + text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.styles().Muted.Render(text))
}

// Accent formats text in the accent color.
func (c *CLIFormatter) Accent(text string) string {
	return c.styles().Accent.Render(text)
}

// SongName formats a song name.
func (c *CLIFormatter) SongName(name string) string {
	return c.styles().Song.Render(name)
}

// songAge returns "added 3 minutes ago" for clock-assigned ids.
func (c *CLIFormatter) songAge(id int64) string {
	at, ok := AddedAt(id)
	if !ok {
		return ""
	}
	return "added " + FormatAge(at, c.now())
}

// PrintSongs prints the playlist as a table.
func (c *CLIFormatter) PrintSongs(songs []playlist.Song) {
	if len(songs) == 0 {
		c.Muted("Your playlist is empty.")
		c.Muted("Use 'encore playlist add <song>' to add one.")
		return
	}

	rows := make([]TableRow, len(songs))
	for i, s := range songs {
		rows[i] = TableRow{Columns: []string{
			fmt.Sprintf("%d", i+1),
			s.Name,
			fmt.Sprintf("%d", s.ID),
			c.songAge(s.ID),
		}}
	}
	c.PrintTable([]string{"#", "SONG", "ID", "ADDED"}, rows)
	c.Println()
	c.Muted(FormatCount(len(songs), "song", "songs"))
}

// PrintMatches prints search results, best match first.
func (c *CLIFormatter) PrintMatches(query string, matches []playlist.Match) {
	if len(matches) == 0 {
		c.Muted(fmt.Sprintf("No songs match %q.", query))
		return
	}
	for _, m := range matches {
		c.Printf("  %s  %s\n", c.SongName(m.Song.Name), c.styles().Muted.Render(fmt.Sprintf("(id %d)", m.Song.ID)))
	}
}

// PrintHistory prints the activity log, newest entry last.
func (c *CLIFormatter) PrintHistory(history []string) {
	if len(history) == 0 {
		c.Muted("No activity yet.")
		return
	}
	for i, entry := range history {
		c.Printf("%s %s\n", c.styles().Muted.Render(fmt.Sprintf("%3d.", i+1)), entry)
	}
}

// ChangeMessage describes what an action did: the newest activity entry
// when one was logged, or "" when the action left no trace.
func ChangeMessage(before, after playlist.State) string {
	if len(after.History) > len(before.History) {
		return after.History[len(after.History)-1]
	}
	if len(after.Past) != len(before.Past) || len(after.Songs) != len(before.Songs) {
		return "Playlist updated"
	}
	return ""
}

// PrintPlaylistChange prints the outcome of a playlist action followed by
// the playlist size and undo/redo availability.
func (c *CLIFormatter) PrintPlaylistChange(message string, after playlist.State) {
	if message == "" {
		c.Muted("Nothing changed.")
	} else {
		c.Success(message)
	}
	c.Muted(fmt.Sprintf("%s, undo %s, redo %s",
		FormatCount(len(after.Songs), "song", "songs"),
		availability(after.CanUndo()),
		availability(after.CanRedo())))
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "unavailable"
}

// PrintFields prints a form draft, one field per line, with any error below
// its field.
func (c *CLIFormatter) PrintFields(title string, fields []form.FieldValue, errs map[string]string) {
	c.Title(title)
	st := c.styles()

	width := 0
	for _, f := range fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}

	shown := make(map[string]bool)
	for _, f := range fields {
		value := f.Value
		if value == "" {
			value = st.Muted.Render("-")
		}
		c.Printf("  %-*s  %s\n", width, f.Label, value)
		if f.Error != "" && !shown[f.Error] {
			c.Printf("  %-*s  %s\n", width, "", st.Error.Render(f.Error))
			shown[f.Error] = true
		}
	}

	for _, key := range sortedKeys(errs) {
		if !shown[errs[key]] {
			c.Printf("  %s\n", st.Error.Render(errs[key]))
		}
	}
}

// PrintPreview prints the live preview card.
func (c *CLIFormatter) PrintPreview(name, email, genre string) {
	st := c.styles()
	lines := []string{st.Accent.Render(name)}
	if email != "" {
		lines = append(lines, email)
	}
	if genre != "" {
		lines = append(lines, st.Muted.Render("Favorite genre: ")+genre)
	}
	c.Println(st.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

// PrintProfile prints a stored account.
func (c *CLIFormatter) PrintProfile(p *model.UserProfile) {
	c.Title(p.FullName)
	c.Printf("  Username:  %s\n", p.Username)
	c.Printf("  Email:     %s\n", p.Email)
	c.Printf("  Genre:     %s\n", p.Genre)
	if p.BirthDate != "" {
		c.Printf("  Born:      %s\n", p.BirthDate)
	}
	if !p.CreatedAt.IsZero() {
		c.Printf("  Joined:    %s\n", FormatAge(p.CreatedAt, c.now()))
	}
}

// PrintNav prints the navigation stack, current screen last.
func (c *CLIFormatter) PrintNav(stack []string) {
	for i, path := range stack {
		marker := "  "
		label := path
		if i == len(stack)-1 {
			marker = "→ "
			label = c.Accent(path)
		}
		if r, ok := nav.Lookup(path); ok {
			label += c.styles().Muted.Render("  " + r.Title)
		}
		c.Println(marker + label)
	}
}

// PrintRoutes prints every known screen.
func (c *CLIFormatter) PrintRoutes(routes []nav.Route) {
	rows := make([]TableRow, len(routes))
	for i, r := range routes {
		tab := ""
		if r.Tab {
			tab = "tab"
		}
		rows[i] = TableRow{Columns: []string{r.Path, r.Title, tab}}
	}
	c.PrintTable([]string{"ROUTE", "TITLE", ""}, rows)
}

// PrintSettings prints each toggle as on or off.
func (c *CLIFormatter) PrintSettings(values map[string]bool) {
	names := sortedKeys(values)
	width := 0
	for _, n := range names {
		if len(n) > width {
			width = len(n)
		}
	}
	for _, n := range names {
		state := "off"
		if values[n] {
			state = c.Accent("on")
		}
		c.Printf("  %-*s  %s\n", width, n, state)
	}
}

// PrintStatus prints the home summary.
func (c *CLIFormatter) PrintStatus(s Status) {
	st := c.styles()
	title := "Current screen"
	if r, ok := nav.Lookup(s.Route); ok {
		title = r.Title
	}
	c.Printf("%s %s\n", c.Accent(title), st.Muted.Render(s.Route))

	if s.Username != "" {
		c.Printf("  Signed in as %s\n", s.Username)
	} else {
		c.Printf("  %s\n", st.Muted.Render("Not signed in"))
	}

	c.Printf("  %s\n", FormatCount(s.Songs, "song", "songs"))
	if s.HistoryLimit > 0 {
		c.Printf("  Undo history %s %d/%d\n", c.activeTheme().Bar(s.Undo, s.HistoryLimit, 20), s.Undo, s.HistoryLimit)
	} else {
		c.Printf("  Undo history %d\n", s.Undo)
	}
	if s.Redo > 0 {
		c.Printf("  %s\n", FormatCount(s.Redo, "step to redo", "steps to redo"))
	}
}

// TableRow is one row of PrintTable.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && lipgloss.Width(col) > widths[i] {
				widths[i] = lipgloss.Width(col)
			}
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(pad(h, widths[i]) + "  ")
	}
	c.Println(strings.TrimRight(c.styles().Subtitle.Render(headerLine.String()), " "))

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(pad(col, widths[i]) + "  ")
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}

// pad right-pads s to width display cells.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
