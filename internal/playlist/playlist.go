// Package playlist holds the playlist history store: an ordered song list,
// a human-readable action log, and undo/redo stacks of snapshots.
//
// All transitions are pure functions over State. Store wraps them with
// hydration from and fire-and-forget persistence to a key-value store.
package playlist

import (
	"fmt"
	"strings"
)

// Song is a single playlist entry. Songs are immutable once created.
type Song struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Snapshot is a copy of the songs and the action log taken immediately
// before a mutating action is applied.
type Snapshot struct {
	Songs   []Song   `json:"songs"`
	History []string `json:"history"`
}

// State is the whole playlist state.
//
// Past is a stack with the most recent snapshot last. Future is a stack with
// the most recent snapshot first.
type State struct {
	Songs   []Song     `json:"songs"`
	History []string   `json:"history"`
	Past    []Snapshot `json:"past"`
	Future  []Snapshot `json:"future"`
}

// NewState returns an empty state.
func NewState() State {
	return State{
		Songs:   []Song{},
		History: []string{},
		Past:    []Snapshot{},
		Future:  []Snapshot{},
	}
}

// CanUndo reports whether UNDO would change the state.
func (s State) CanUndo() bool { return len(s.Past) > 0 }

// CanRedo reports whether REDO would change the state.
func (s State) CanRedo() bool { return len(s.Future) > 0 }

// Find returns the song with the given id.
func (s State) Find(id int64) (Song, bool) {
	for _, song := range s.Songs {
		if song.ID == id {
			return song, true
		}
	}
	return Song{}, false
}

func (s State) snapshot() Snapshot {
	return Snapshot{Songs: s.Songs, History: s.History}
}

// Action is a playlist transition.
type Action interface {
	// Name identifies the action in logs.
	Name() string
}

// Add appends a song. ID is normally the creation time in milliseconds; it
// is raised above every existing id when it would collide.
type Add struct {
	SongName string
	ID       int64
}

// Remove deletes the song with the given id.
type Remove struct {
	ID int64
}

// Clear empties the playlist.
type Clear struct{}

// Undo restores the most recent snapshot.
type Undo struct{}

// Redo re-applies the most recently undone snapshot.
type Redo struct{}

// Load replaces the whole state. The incoming state is trusted as-is.
type Load struct {
	State State
}

func (Add) Name() string    { return "ADD" }
func (Remove) Name() string { return "REMOVE" }
func (Clear) Name() string  { return "CLEAR" }
func (Undo) Name() string   { return "UNDO" }
func (Redo) Name() string   { return "REDO" }
func (Load) Name() string   { return "LOAD" }

// Reducer applies actions to states. HistoryLimit bounds the undo and redo
// stacks; zero leaves them unbounded.
type Reducer struct {
	HistoryLimit int
}

// Reduce applies a with an unbounded history.
func Reduce(s State, a Action) State {
	return Reducer{}.Reduce(s, a)
}

// Reduce returns the state that results from applying a to s. It never
// modifies s.
func (r Reducer) Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Add:
		name := strings.TrimSpace(a.SongName)
		if name == "" {
			return s
		}
		song := Song{ID: nextID(s.Songs, a.ID), Name: name}
		return r.commit(s,
			append(cloneSongs(s.Songs), song),
			fmt.Sprintf("Added: %s", name))

	case Remove:
		songs := make([]Song, 0, len(s.Songs))
		var removed *Song
		for i := range s.Songs {
			if s.Songs[i].ID == a.ID {
				if removed == nil {
					removed = &s.Songs[i]
				}
				continue
			}
			songs = append(songs, s.Songs[i])
		}
		if removed == nil {
			// A missing id still opens a new branch.
			return r.commit(s, songs, "")
		}
		return r.commit(s, songs, fmt.Sprintf("Removed: %s", removed.Name))

	case Clear:
		return r.commit(s, []Song{}, "Cleared playlist")

	case Undo:
		if len(s.Past) == 0 {
			return s
		}
		last := len(s.Past) - 1
		prev := s.Past[last]
		future := make([]Snapshot, 0, len(s.Future)+1)
		future = append(future, s.snapshot())
		future = append(future, s.Future...)
		return State{
			Songs:   prev.Songs,
			History: prev.History,
			Past:    cloneSnapshots(s.Past[:last]),
			Future:  r.trimFuture(future),
		}

	case Redo:
		if len(s.Future) == 0 {
			return s
		}
		next := s.Future[0]
		return State{
			Songs:   next.Songs,
			History: next.History,
			Past:    r.trimPast(append(cloneSnapshots(s.Past), s.snapshot())),
			Future:  cloneSnapshots(s.Future[1:]),
		}

	case Load:
		return a.State

	default:
		return s
	}
}

// commit pushes the pre-action snapshot, installs songs, appends entry to the
// log when it is non-empty and drops the redo stack.
func (r Reducer) commit(s State, songs []Song, entry string) State {
	history := cloneStrings(s.History)
	if entry != "" {
		history = append(history, entry)
	}
	return State{
		Songs:   songs,
		History: history,
		Past:    r.trimPast(append(cloneSnapshots(s.Past), s.snapshot())),
		Future:  []Snapshot{},
	}
}

// trimPast drops the oldest snapshots beyond the limit.
func (r Reducer) trimPast(past []Snapshot) []Snapshot {
	if r.HistoryLimit <= 0 || len(past) <= r.HistoryLimit {
		return past
	}
	return past[len(past)-r.HistoryLimit:]
}

// trimFuture drops the snapshots furthest from the present.
func (r Reducer) trimFuture(future []Snapshot) []Snapshot {
	if r.HistoryLimit <= 0 || len(future) <= r.HistoryLimit {
		return future
	}
	return future[:r.HistoryLimit]
}

// nextID returns want unless it collides with or precedes an existing id,
// in which case it returns one above the largest id.
func nextID(songs []Song, want int64) int64 {
	var max int64
	for i, song := range songs {
		if i == 0 || song.ID > max {
			max = song.ID
		}
	}
	if len(songs) > 0 && want <= max {
		return max + 1
	}
	return want
}

func cloneSongs(in []Song) []Song {
	out := make([]Song, len(in), len(in)+1)
	copy(out, in)
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in), len(in)+1)
	copy(out, in)
	return out
}

func cloneSnapshots(in []Snapshot) []Snapshot {
	out := make([]Snapshot, len(in), len(in)+1)
	copy(out, in)
	return out
}
