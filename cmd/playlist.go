package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/logging"
	"github.com/manav03panchal/encore/internal/output"
	"github.com/manav03panchal/encore/internal/playlist"
	"github.com/manav03panchal/encore/internal/validate"
)

// playlistCmd represents the playlist command.
var playlistCmd = &cobra.Command{
	Use:     "playlist",
	Aliases: []string{"pl", "songs"},
	Short:   "Show and edit the playlist",
	Long: `Show and edit the playlist. Every change can be undone and redone.

Examples:
  encore playlist
  encore playlist add Chill Vibes
  encore playlist remove 1718450000000
  encore playlist remove "Chill Vibes"
  encore playlist undo
  encore playlist search chill
  encore playlist export mix.m3u`,
	Args: cobra.NoArgs,
	RunE: runPlaylistList,
}

var playlistListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the songs",
	Args:    cobra.NoArgs,
	RunE:    runPlaylistList,
}

var playlistAddCmd = &cobra.Command{
	Use:   "add SONG...",
	Short: "Add a song",
	Long: `Add a song to the end of the playlist. The words are joined with spaces
and surrounding whitespace is dropped.

Examples:
  encore playlist add Chill Vibes
  encore playlist add "Top 50 Global"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlaylistAdd,
}

var playlistRemoveCmd = &cobra.Command{
	Use:               "remove ID|NAME",
	Aliases:           []string{"rm", "delete"},
	Short:             "Remove a song by id or name",
	Args:              cobra.MinimumNArgs(1),
	RunE:              runPlaylistRemove,
	ValidArgsFunction: completeSongs,
}

var playlistClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every song",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(playlist.Clear{}, "")
	},
}

var playlistUndoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last playlist change",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

var playlistRedoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Redo the last undone playlist change",
	Args:  cobra.NoArgs,
	RunE:  runRedo,
}

var playlistHistoryCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"log"},
	Short:   "Show the activity log",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := ctx.Playlist.State()
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintPlaylist("ok", "", st)
		}
		ctx.CLIFormatter().PrintHistory(st.History)
		return nil
	},
}

var playlistSearchCmd = &cobra.Command{
	Use:     "search QUERY...",
	Aliases: []string{"find"},
	Short:   "Find songs by fuzzy name match",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		matches := playlist.Search(ctx.Playlist.State(), query)
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintMatches(query, matches)
		}
		ctx.CLIFormatter().PrintMatches(query, matches)
		return nil
	},
}

var playlistExportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Write the playlist as M3U",
	Long: `Write the playlist as an extended M3U file. Without FILE the playlist
is written to standard output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlaylistExport,
}

var playlistImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Add every entry of an M3U file",
	Long: `Add every entry of an M3U file, in file order. Each entry is one
undoable change.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlaylistImport,
}

func init() {
	playlistCmd.AddCommand(playlistListCmd)
	playlistCmd.AddCommand(playlistAddCmd)
	playlistCmd.AddCommand(playlistRemoveCmd)
	playlistCmd.AddCommand(playlistClearCmd)
	playlistCmd.AddCommand(playlistUndoCmd)
	playlistCmd.AddCommand(playlistRedoCmd)
	playlistCmd.AddCommand(playlistHistoryCmd)
	playlistCmd.AddCommand(playlistSearchCmd)
	playlistCmd.AddCommand(playlistExportCmd)
	playlistCmd.AddCommand(playlistImportCmd)
	rootCmd.AddCommand(playlistCmd)
}

func runPlaylistList(cmd *cobra.Command, args []string) error {
	st := ctx.Playlist.State()
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintPlaylist("ok", "", st)
	}
	ctx.CLIFormatter().PrintSongs(st.Songs)
	return nil
}

func runPlaylistAdd(cmd *cobra.Command, args []string) error {
	name := validate.SanitizeName(strings.Join(args, " "))
	if err := validate.SongName(name); err != nil {
		return err
	}
	return dispatch(playlist.Add{SongName: name}, "")
}

func runPlaylistRemove(cmd *cobra.Command, args []string) error {
	song, err := findSong(ctx.Playlist.State(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	return dispatch(playlist.Remove{ID: song.ID}, "")
}

// findSong resolves a song id, or failing that an exact name ignoring case.
func findSong(st playlist.State, ref string) (playlist.Song, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if song, ok := st.Find(id); ok {
			return song, nil
		}
	}
	for _, song := range st.Songs {
		if strings.EqualFold(song.Name, ref) {
			return song, nil
		}
	}

	suggestion := "Use 'encore playlist' to see song IDs."
	if matches := playlist.Search(st, ref); len(matches) > 0 {
		suggestion = "Did you mean '" + matches[0].Song.Name + "'?"
	}
	return playlist.Song{}, &errors.UserError{
		Message:    "Song not found",
		Field:      "song",
		Value:      ref,
		Suggestion: suggestion,
		Cause:      errors.ErrSongNotFound,
	}
}

func runUndo(cmd *cobra.Command, args []string) error {
	if !ctx.Playlist.CanUndo() {
		return nothingTo("undo")
	}
	return dispatch(playlist.Undo{}, "Undid last change")
}

func runRedo(cmd *cobra.Command, args []string) error {
	if !ctx.Playlist.CanRedo() {
		return nothingTo("redo")
	}
	return dispatch(playlist.Redo{}, "Redid last change")
}

func nothingTo(what string) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintAction("nothing_to_"+what, "Nothing to "+what)
	}
	ctx.CLIFormatter().Muted("Nothing to " + what)
	return nil
}

// dispatch applies a playlist action and reports the outcome. message
// overrides the description derived from the activity log.
func dispatch(a playlist.Action, message string) error {
	before := ctx.Playlist.State()
	after := ctx.Playlist.Dispatch(a)
	if message == "" {
		message = output.ChangeMessage(before, after)
	}
	ctx.Log.Debug("playlist action", logging.KeyOperation, a.Name(), logging.KeyCount, len(after.Songs))

	if ctx.IsJSON() {
		status := "ok"
		if message == "" {
			status = "unchanged"
		}
		return ctx.JSONFormatter().PrintPlaylist(status, message, after)
	}
	ctx.CLIFormatter().PrintPlaylistChange(message, after)
	return nil
}

func runPlaylistExport(cmd *cobra.Command, args []string) error {
	st := ctx.Playlist.State()
	if len(args) == 0 {
		return playlist.ExportM3U(os.Stdout, st)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return errors.Wrap(err, "failed to create playlist file")
	}
	defer f.Close()

	if err := playlist.ExportM3U(f, st); err != nil {
		return err
	}

	message := "Exported " + output.FormatCount(len(st.Songs), "song", "songs") + " to " + args[0]
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintAction("exported", message)
	}
	ctx.CLIFormatter().Success(message)
	return nil
}

func runPlaylistImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return errors.NewUserErrorWithField("file", args[0], "Cannot open playlist file", "Check the path and try again.")
	}
	defer f.Close()

	names, err := playlist.ImportM3U(f)
	if err != nil {
		return errors.NewUserErrorWithField("file", args[0], "Not a readable M3U playlist", "Export one with 'encore playlist export FILE'.")
	}

	added := 0
	for _, name := range names {
		if name = validate.SanitizeName(name); name == "" {
			continue
		}
		ctx.Playlist.Dispatch(playlist.Add{SongName: name})
		added++
	}
	st := ctx.Playlist.State()

	message := "Imported " + output.FormatCount(added, "song", "songs")
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintPlaylist("imported", message, st)
	}
	ctx.CLIFormatter().PrintPlaylistChange(message, st)
	return nil
}
