package storage

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func openDisk(t *testing.T, path string) *DB {
	t.Helper()
	db, err := Open(Options{Path: path, MinFreeSpace: 1})
	require.NoError(t, err)
	return db
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db)
		err = db.Close()
		assert.NoError(t, err)
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.Equal(t, "", db.Path())
		db.Close()
	})

	t.Run("in_memory_wins_over_path", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "db")
		db, err := Open(Options{Path: dir, InMemory: true})
		require.NoError(t, err)
		defer db.Close()

		assert.Equal(t, "", db.Path())
		_, err = os.Stat(dir)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestOpenOnDiskPersists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "db")

	db := openDisk(t, dir)
	assert.Equal(t, dir, db.Path())
	require.NoError(t, db.SetItem(KeyPlaylistState, `{"songs":[]}`))
	require.NoError(t, db.Close())

	db = openDisk(t, dir)
	defer db.Close()
	value, ok, err := db.GetItem(KeyPlaylistState)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"songs":[]}`, value)
}

func TestOpenRefusesWithoutFreeSpace(t *testing.T) {
	_, err := Open(Options{Path: filepath.Join(t.TempDir(), "db"), MinFreeSpace: math.MaxUint64})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrDiskFull))
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "encore")
	assert.Equal(t, "db", filepath.Base(path))
}

// =============================================================================
// CRUD Tests
// =============================================================================

func TestSetAndGetModel(t *testing.T) {
	db := setupTestDB(t)

	settings := &model.Settings{Key: model.KeySettings, DarkMode: true}
	require.NoError(t, db.Set(settings))

	got := &model.Settings{}
	require.NoError(t, db.Get(model.KeySettings, got))
	assert.True(t, got.DarkMode)
	assert.Equal(t, model.KeySettings, got.Key)
}

func TestGetNotFound(t *testing.T) {
	db := setupTestDB(t)

	err := db.Get("missing", &model.Settings{})
	assert.True(t, IsErrKeyNotFound(err))

	_, err = db.GetBytes("missing")
	assert.True(t, IsErrKeyNotFound(err))
	assert.False(t, IsErrKeyNotFound(fmt.Errorf("other")))
}

func TestExistsAndDelete(t *testing.T) {
	db := setupTestDB(t)

	exists, err := db.Exists("k")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, db.SetBytes("k", []byte(`1`)))
	exists, err = db.Exists("k")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, db.Delete("k"))
	exists, err = db.Exists("k")
	require.NoError(t, err)
	assert.False(t, exists)
}

// =============================================================================
// KV Tests
// =============================================================================

func TestKV(t *testing.T) {
	var kv KV = setupTestDB(t)

	t.Run("missing_key", func(t *testing.T) {
		value, ok, err := kv.GetItem(KeyNavigation)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("set_replaces", func(t *testing.T) {
		require.NoError(t, kv.SetItem(KeySignupForm, `{"username":"a"}`))
		require.NoError(t, kv.SetItem(KeySignupForm, `{"username":"b"}`))

		value, ok, err := kv.GetItem(KeySignupForm)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"username":"b"}`, value)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, kv.SetItem(KeyProfileForm, `{}`))
		require.NoError(t, kv.RemoveItem(KeyProfileForm))

		_, ok, err := kv.GetItem(KeyProfileForm)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("remove_missing_is_not_an_error", func(t *testing.T) {
		assert.NoError(t, kv.RemoveItem("never-set"))
	})
}

// =============================================================================
// Repository Tests
// =============================================================================

func TestProfileRepo(t *testing.T) {
	repo := NewProfileRepo(setupTestDB(t))

	_, err := repo.Get()
	assert.True(t, IsErrKeyNotFound(err))

	profile := model.NewUserProfile("u1", "Ada", "Lovelace", "ada_l", "ada@example.com", "Classical")
	profile.Key = ""
	require.NoError(t, repo.Save(profile))
	assert.Equal(t, model.KeyUserProfile, profile.Key)

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Ada Lovelace", got.FullName)
	assert.True(t, profile.CreatedAt.Equal(got.CreatedAt))
}

func TestSessionRepo(t *testing.T) {
	repo := NewSessionRepo(setupTestDB(t))

	_, err := repo.Get()
	assert.True(t, IsErrKeyNotFound(err))

	profile := model.NewUserProfile("u1", "Ada", "Lovelace", "ada_l", "ada@example.com", "Classical")
	require.NoError(t, repo.Save(model.NewSession(profile)))

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "ada_l", got.Username)

	require.NoError(t, repo.Delete())
	_, err = repo.Get()
	assert.True(t, IsErrKeyNotFound(err))
	assert.NoError(t, repo.Delete(), "deleting when signed out")
}

func TestSettingsRepo(t *testing.T) {
	repo := NewSettingsRepo(setupTestDB(t))

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), got)

	got.DarkMode = true
	got.NotificationsEnabled = false
	require.NoError(t, repo.Save(got))

	again, err := repo.Get()
	require.NoError(t, err)
	assert.True(t, again.DarkMode)
	assert.False(t, again.NotificationsEnabled)
}

// =============================================================================
// Safety Tests
// =============================================================================

func TestDiskSpaceInfo(t *testing.T) {
	t.Run("free_percent_zero_total", func(t *testing.T) {
		info := &DiskSpaceInfo{TotalBytes: 0, FreeBytes: 100}
		assert.Equal(t, 0.0, info.FreePercent())
	})

	t.Run("free_percent_calculation", func(t *testing.T) {
		info := &DiskSpaceInfo{TotalBytes: 1000, FreeBytes: 250}
		assert.Equal(t, 25.0, info.FreePercent())
	})
}

func TestGetDiskSpace(t *testing.T) {
	t.Run("current_directory", func(t *testing.T) {
		info, err := GetDiskSpace(".")
		require.NoError(t, err)
		assert.Greater(t, info.TotalBytes, uint64(0))
	})

	t.Run("nonexistent_uses_parent", func(t *testing.T) {
		dir := t.TempDir()
		info, err := GetDiskSpace(filepath.Join(dir, "not", "yet"))
		require.NoError(t, err)
		assert.Equal(t, dir, info.Path)
	})
}

func TestCheckDiskSpace(t *testing.T) {
	assert.NoError(t, checkDiskSpace(".", 1))

	err := checkDiskSpace(".", math.MaxUint64)
	assert.True(t, stderrors.Is(err, errors.ErrDiskFull))
	assert.True(t, errors.IsSystemError(err))
}

func TestIsDiskFullError(t *testing.T) {
	assert.False(t, isDiskFullError(nil))
	assert.False(t, isDiskFullError(fmt.Errorf("some error")))
}

func TestWrapDiskFull(t *testing.T) {
	assert.NoError(t, wrapDiskFull(nil, "set"))

	other := fmt.Errorf("some error")
	assert.Equal(t, other, wrapDiskFull(other, "set"))
}

func TestEnsureDirectory(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "subdir", "nested")

	require.NoError(t, EnsureDirectory(testPath))

	info, err := os.Stat(testPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestNearestExisting(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, nearestExisting(filepath.Join(dir, "a", "b", "c")))
	assert.Equal(t, dir, nearestExisting(dir))
}

// =============================================================================
// Recovery Tests
// =============================================================================

func TestCheckDatabaseIntegrity(t *testing.T) {
	t.Run("nil_database", func(t *testing.T) {
		status := CheckDatabaseIntegrity(nil)
		assert.False(t, status.Healthy)
		assert.True(t, status.Corrupted)
	})

	t.Run("healthy_database", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.SetItem(KeyPlaylistState, `{"songs":[]}`))
		require.NoError(t, db.Set(model.DefaultSettings()))

		status := CheckDatabaseIntegrity(db)
		assert.True(t, status.Healthy)
		assert.False(t, status.Corrupted)
		assert.Equal(t, 2, status.KeysChecked)
	})

	t.Run("damaged_document", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.SetItem(KeyNavigation, `{"stack":[`))
		require.NoError(t, db.SetItem(KeyPlaylistState, `{}`))

		status := CheckDatabaseIntegrity(db)
		assert.False(t, status.Healthy)
		assert.True(t, status.Corrupted)
		assert.True(t, status.Recoverable)
		assert.Equal(t, 1, status.ErrorCount)
		require.Len(t, status.Errors, 1)
		assert.Contains(t, status.Errors[0], KeyNavigation)
	})
}

func TestIsDatabaseCorrupted(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil_error", nil, false},
		{"regular_error", fmt.Errorf("some error"), false},
		{"checksum_mismatch", fmt.Errorf("checksum mismatch detected"), true},
		{"corrupt_in_message", fmt.Errorf("data Corrupt"), true},
		{"truncated", fmt.Errorf("file truncated"), true},
		{"sentinel", fmt.Errorf("open: %w", errors.ErrDatabaseCorrupted), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDatabaseCorrupted(tt.err))
		})
	}
}

func TestCreateBackup(t *testing.T) {
	t.Run("empty_path", func(t *testing.T) {
		_, err := CreateBackup("")
		assert.Error(t, err)
	})

	t.Run("copies_database", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "db")
		db := openDisk(t, dir)
		require.NoError(t, db.SetItem(KeyPlaylistState, `{"songs":[]}`))
		require.NoError(t, db.Close())

		backup, err := CreateBackup(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(filepath.Dir(dir), "backups"), filepath.Dir(backup))

		restored := openDisk(t, backup)
		defer restored.Close()
		value, ok, err := restored.GetItem(KeyPlaylistState)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"songs":[]}`, value)
	})
}

func TestDump(t *testing.T) {
	t.Run("nil_database", func(t *testing.T) {
		_, err := Dump(nil, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("documents_and_raw_values", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.SetItem(KeyNavigation, `{"stack":["/(auth)/login"]}`))
		require.NoError(t, db.SetItem("broken", `not json`))

		var buf bytes.Buffer
		n, err := Dump(db, &buf)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		var out map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, "not json", out["broken"])
		assert.Equal(t, map[string]any{"stack": []any{"/(auth)/login"}}, out[KeyNavigation])
	})
}
