package output

import (
	"time"

	"github.com/manav03panchal/encore/internal/form"
	"github.com/manav03panchal/encore/internal/model"
	"github.com/manav03panchal/encore/internal/nav"
	"github.com/manav03panchal/encore/internal/playlist"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// Status is the home summary.
type Status struct {
	Route        string `json:"route"`
	Username     string `json:"username,omitempty"`
	Songs        int    `json:"songs"`
	Undo         int    `json:"undo"`
	Redo         int    `json:"redo"`
	HistoryLimit int    `json:"history_limit"`
}

// SongOutput represents a song in JSON output.
type SongOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	AddedAt string `json:"added_at,omitempty"`
}

// NewSongOutput creates a SongOutput from a Song.
func NewSongOutput(s playlist.Song) SongOutput {
	out := SongOutput{ID: s.ID, Name: s.Name}
	if at, ok := AddedAt(s.ID); ok {
		out.AddedAt = at.UTC().Format(time.RFC3339)
	}
	return out
}

// PlaylistResponse represents the playlist in JSON.
type PlaylistResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	Songs   []SongOutput `json:"songs"`
	History []string     `json:"history"`
	CanUndo bool         `json:"can_undo"`
	CanRedo bool         `json:"can_redo"`
}

// NewPlaylistResponse creates a PlaylistResponse from a State.
func NewPlaylistResponse(status, message string, s playlist.State) *PlaylistResponse {
	songs := make([]SongOutput, len(s.Songs))
	for i, song := range s.Songs {
		songs[i] = NewSongOutput(song)
	}
	history := s.History
	if history == nil {
		history = []string{}
	}
	return &PlaylistResponse{
		Status:  status,
		Message: message,
		Songs:   songs,
		History: history,
		CanUndo: s.CanUndo(),
		CanRedo: s.CanRedo(),
	}
}

// MatchOutput represents a search result in JSON.
type MatchOutput struct {
	SongOutput
	Distance int `json:"distance"`
}

// SearchResponse represents search results in JSON.
type SearchResponse struct {
	Query   string        `json:"query"`
	Matches []MatchOutput `json:"matches"`
}

// FormResponse represents a form draft in JSON.
type FormResponse struct {
	Form   string            `json:"form"`
	Fields []form.FieldValue `json:"fields"`
	Errors map[string]string `json:"errors"`
	Valid  bool              `json:"valid"`
}

// ProfileOutput represents an account in JSON. It never carries the
// password hash.
type ProfileOutput struct {
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Genre     string `json:"genre"`
	BirthDate string `json:"birth_date,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// NewProfileOutput creates a ProfileOutput from a UserProfile.
func NewProfileOutput(p *model.UserProfile) *ProfileOutput {
	out := &ProfileOutput{
		UserID:    p.UserID,
		FullName:  p.FullName,
		Username:  p.Username,
		Email:     p.Email,
		Genre:     p.Genre,
		BirthDate: p.BirthDate,
	}
	if !p.CreatedAt.IsZero() {
		out.CreatedAt = p.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

// NavResponse represents the navigation stack in JSON.
type NavResponse struct {
	Current string   `json:"current"`
	Title   string   `json:"title,omitempty"`
	Stack   []string `json:"stack"`
	CanBack bool     `json:"can_back"`
}

// NewNavResponse creates a NavResponse from a stack.
func NewNavResponse(stack []string) *NavResponse {
	resp := &NavResponse{Stack: stack, CanBack: len(stack) > 1}
	if len(stack) > 0 {
		resp.Current = stack[len(stack)-1]
		if r, ok := nav.Lookup(resp.Current); ok {
			resp.Title = r.Title
		}
	}
	return resp
}

// ActionResponse represents a simple outcome in JSON.
type ActionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string            `json:"status"`
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// PrintStatus outputs the home summary in JSON format.
func (j *JSONFormatter) PrintStatus(s Status) error {
	return j.JSON(s)
}

// PrintPlaylist outputs the playlist in JSON format.
func (j *JSONFormatter) PrintPlaylist(status, message string, s playlist.State) error {
	return j.JSON(NewPlaylistResponse(status, message, s))
}

// PrintMatches outputs search results in JSON format.
func (j *JSONFormatter) PrintMatches(query string, matches []playlist.Match) error {
	out := make([]MatchOutput, len(matches))
	for i, m := range matches {
		out[i] = MatchOutput{SongOutput: NewSongOutput(m.Song), Distance: m.Distance}
	}
	return j.JSON(SearchResponse{Query: query, Matches: out})
}

// PrintForm outputs a form draft in JSON format.
func (j *JSONFormatter) PrintForm(name string, fields []form.FieldValue, errs map[string]string) error {
	if errs == nil {
		errs = map[string]string{}
	}
	return j.JSON(FormResponse{Form: name, Fields: fields, Errors: errs, Valid: len(errs) == 0})
}

// PrintProfile outputs an account in JSON format.
func (j *JSONFormatter) PrintProfile(p *model.UserProfile) error {
	return j.JSON(NewProfileOutput(p))
}

// PrintNav outputs the navigation stack in JSON format.
func (j *JSONFormatter) PrintNav(stack []string) error {
	return j.JSON(NewNavResponse(stack))
}

// PrintRoutes outputs every known screen in JSON format.
func (j *JSONFormatter) PrintRoutes(routes []nav.Route) error {
	return j.JSON(map[string][]nav.Route{"routes": routes})
}

// PrintSettings outputs the toggles in JSON format.
func (j *JSONFormatter) PrintSettings(values map[string]bool) error {
	return j.JSON(map[string]map[string]bool{"settings": values})
}

// PrintAction outputs a simple outcome in JSON format.
func (j *JSONFormatter) PrintAction(status, message string) error {
	return j.JSON(ActionResponse{Status: status, Message: message})
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string, fields map[string]string) error {
	return j.JSON(ErrorResponse{
		Status:  status,
		Error:   errMsg,
		Message: message,
		Fields:  fields,
	})
}
