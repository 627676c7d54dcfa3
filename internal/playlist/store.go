package playlist

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/manav03panchal/encore/internal/logging"
	"github.com/manav03panchal/encore/internal/storage"
)

// Options configures a Store.
type Options struct {
	// HistoryLimit bounds the undo stack. Zero keeps every snapshot.
	HistoryLimit int
	// Key overrides the storage key. Defaults to storage.KeyPlaylistState.
	Key string
	// Now supplies song creation times. Defaults to time.Now.
	Now func() time.Time
}

// Store holds the current playlist state and persists it after every
// transition.
//
// Persistence is fire-and-forget: Dispatch returns before the write lands and
// write failures are logged, never returned. A write is skipped when a newer
// state has already been written, so the last dispatched state wins.
type Store struct {
	kv      storage.KV
	key     string
	reducer Reducer
	now     func() time.Time

	mu    sync.Mutex
	state State
	seq   uint64

	writeMu sync.Mutex
	written uint64
	pending sync.WaitGroup
}

// NewStore creates a store with an empty state. Call Hydrate to load the
// persisted state.
func NewStore(kv storage.KV, opts Options) *Store {
	key := opts.Key
	if key == "" {
		key = storage.KeyPlaylistState
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		kv:      kv,
		key:     key,
		reducer: Reducer{HistoryLimit: opts.HistoryLimit},
		now:     now,
		state:   NewState(),
	}
}

// Hydrate loads the persisted state. A missing key leaves the state empty.
// Read and decode failures are logged and the state stays at its default.
func (s *Store) Hydrate() State {
	raw, ok, err := s.kv.GetItem(s.key)
	if err != nil {
		logging.Warn("failed to load playlist", logging.KeyKey, s.key, logging.KeyError, err)
		return s.State()
	}
	if !ok {
		return s.State()
	}

	loaded := NewState()
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		logging.Warn("failed to decode playlist", logging.KeyKey, s.key, logging.KeyError, err)
		return s.State()
	}

	s.mu.Lock()
	s.state = s.reducer.Reduce(s.state, Load{State: loaded})
	st := s.state
	s.mu.Unlock()

	logging.DebugLog("playlist hydrated", logging.KeyCount, len(st.Songs))
	return st
}

// Dispatch applies a and schedules the result to be persisted. Add actions
// without an id get the current time in milliseconds.
func (s *Store) Dispatch(a Action) State {
	if add, ok := a.(Add); ok && add.ID == 0 {
		add.ID = s.now().UnixMilli()
		a = add
	}

	s.mu.Lock()
	s.state = s.reducer.Reduce(s.state, a)
	s.seq++
	st, seq := s.state, s.seq
	s.mu.Unlock()

	logging.DebugLog("playlist action", logging.KeyOperation, a.Name(), logging.KeyCount, len(st.Songs))

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.persist(st, seq)
	}()

	return st
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CanUndo reports whether there is a snapshot to restore.
func (s *Store) CanUndo() bool { return s.State().CanUndo() }

// CanRedo reports whether there is an undone snapshot to re-apply.
func (s *Store) CanRedo() bool { return s.State().CanRedo() }

// Flush blocks until every scheduled write has finished. Only call it
// before the process exits.
func (s *Store) Flush() {
	s.pending.Wait()
}

func (s *Store) persist(st State, seq uint64) {
	data, err := json.Marshal(st)
	if err != nil {
		logging.Warn("failed to encode playlist", logging.KeyKey, s.key, logging.KeyError, err)
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if seq < s.written {
		return
	}
	if err := s.kv.SetItem(s.key, string(data)); err != nil {
		logging.Warn("failed to save playlist", logging.KeyKey, s.key, logging.KeyError, err)
		return
	}
	s.written = seq
}
