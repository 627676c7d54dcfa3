package playlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/encore/internal/storage"
)

// memKV is an in-memory storage.KV.
type memKV struct {
	mu    sync.Mutex
	items map[string]string
	sets  int
}

func newMemKV() *memKV {
	return &memKV{items: make(map[string]string)}
}

func (m *memKV) GetItem(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memKV) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	m.sets++
	return nil
}

func (m *memKV) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// failingKV fails every call.
type failingKV struct{}

var errUnavailable = errors.New("storage unavailable")

func (failingKV) GetItem(string) (string, bool, error) { return "", false, errUnavailable }
func (failingKV) SetItem(string, string) error         { return errUnavailable }
func (failingKV) RemoveItem(string) error              { return errUnavailable }

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func persisted(t *testing.T, kv *memKV) State {
	t.Helper()
	raw, ok, err := kv.GetItem(storage.KeyPlaylistState)
	require.NoError(t, err)
	require.True(t, ok, "playlist state was not persisted")

	var s State
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return s
}

func TestStoreDispatchPersists(t *testing.T) {
	kv := newMemKV()
	store := NewStore(kv, Options{Now: fixedClock(1000)})

	got := store.Dispatch(Add{SongName: "Song1"})
	store.Flush()

	require.Len(t, got.Songs, 1)
	assert.Equal(t, int64(1000), got.Songs[0].ID)
	if diff := deep.Equal(persisted(t, kv), got); diff != nil {
		t.Error(diff)
	}
}

func TestStoreLastDispatchWins(t *testing.T) {
	kv := newMemKV()
	store := NewStore(kv, Options{Now: fixedClock(1)})

	for i := 0; i < 50; i++ {
		store.Dispatch(Add{SongName: fmt.Sprintf("song %d", i)})
	}
	store.Dispatch(Undo{})
	store.Flush()

	final := store.State()
	assert.Len(t, final.Songs, 49)
	if diff := deep.Equal(persisted(t, kv), final); diff != nil {
		t.Error(diff)
	}
}

func TestStoreRejectedAddStillPersists(t *testing.T) {
	kv := newMemKV()
	store := NewStore(kv, Options{})

	store.Dispatch(Add{SongName: "   "})
	store.Flush()

	s := persisted(t, kv)
	assert.Empty(t, s.Songs)
	assert.Empty(t, s.Past)
}

func TestStoreHydrate(t *testing.T) {
	kv := newMemKV()
	first := NewStore(kv, Options{Now: fixedClock(10)})
	first.Dispatch(Add{SongName: "A"})
	first.Dispatch(Add{SongName: "B"})
	first.Dispatch(Undo{})
	first.Flush()

	second := NewStore(kv, Options{})
	got := second.Hydrate()

	if diff := deep.Equal(got, first.State()); diff != nil {
		t.Error(diff)
	}
	assert.True(t, second.CanUndo())
	assert.True(t, second.CanRedo())

	after := second.Dispatch(Redo{})
	assert.Equal(t, []string{"A", "B"}, names(after))
}

func TestStoreHydrateMissingKey(t *testing.T) {
	store := NewStore(newMemKV(), Options{})
	got := store.Hydrate()

	assert.Empty(t, got.Songs)
	assert.False(t, store.CanUndo())
	assert.False(t, store.CanRedo())
}

func TestStoreHydrateMalformedPayload(t *testing.T) {
	kv := newMemKV()
	require.NoError(t, kv.SetItem(storage.KeyPlaylistState, "{not json"))

	store := NewStore(kv, Options{})
	got := store.Hydrate()

	if diff := deep.Equal(got, NewState()); diff != nil {
		t.Error(diff)
	}
}

func TestStoreSurvivesFailingStorage(t *testing.T) {
	store := NewStore(failingKV{}, Options{Now: fixedClock(5)})

	assert.NotPanics(t, func() {
		store.Hydrate()
		store.Dispatch(Add{SongName: "A"})
		store.Dispatch(Add{SongName: "B"})
		store.Flush()
	})

	assert.Equal(t, []string{"A", "B"}, names(store.State()))
}

func TestStoreHistoryLimit(t *testing.T) {
	store := NewStore(newMemKV(), Options{HistoryLimit: 3, Now: fixedClock(1)})
	for i := 0; i < 10; i++ {
		store.Dispatch(Add{SongName: fmt.Sprintf("s%d", i)})
	}
	store.Flush()

	assert.Len(t, store.State().Past, 3)
}

func TestStoreCustomKey(t *testing.T) {
	kv := newMemKV()
	store := NewStore(kv, Options{Key: "otherPlaylist"})
	store.Dispatch(Clear{})
	store.Flush()

	_, ok, _ := kv.GetItem("otherPlaylist")
	assert.True(t, ok)
	_, ok, _ = kv.GetItem(storage.KeyPlaylistState)
	assert.False(t, ok)
}

func TestStoreWithBadger(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db, Options{Now: fixedClock(42)})
	store.Dispatch(Add{SongName: "Chill Vibes"})
	store.Flush()

	reloaded := NewStore(db, Options{}).Hydrate()
	require.Len(t, reloaded.Songs, 1)
	assert.Equal(t, Song{ID: 42, Name: "Chill Vibes"}, reloaded.Songs[0])
}
