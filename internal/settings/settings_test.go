package settings

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/model"
	"github.com/manav03panchal/encore/internal/storage"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(db)
}

func TestParseName(t *testing.T) {
	tests := map[string]string{
		"dark-mode":     model.SettingDarkMode,
		"darkmode":      model.SettingDarkMode,
		"Dark_Mode":     model.SettingDarkMode,
		"dark mode":     model.SettingDarkMode,
		"theme":         model.SettingDarkMode,
		"notifications": model.SettingNotifications,
		"Notify":        model.SettingNotifications,
	}
	for in, want := range tests {
		got, err := ParseName(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseName("autoplay")
	assert.True(t, stderrors.Is(err, errors.ErrUnknownSetting))
	ue, ok := errors.AsUserError(err)
	require.True(t, ok)
	assert.Contains(t, ue.Suggestion, "dark-mode")
}

func TestParseBool(t *testing.T) {
	for _, in := range []string{"on", "TRUE", "yes", "1"} {
		v, err := ParseBool(in)
		assert.NoError(t, err, in)
		assert.True(t, v, in)
	}
	for _, in := range []string{"off", "false", "No", "0"} {
		v, err := ParseBool(in)
		assert.NoError(t, err, in)
		assert.False(t, v, in)
	}
	_, err := ParseBool("maybe")
	assert.True(t, errors.IsUserError(err))
}

func TestGetDefaults(t *testing.T) {
	s := setupService(t)

	got, err := s.Get()
	require.NoError(t, err)
	assert.True(t, got.NotificationsEnabled)
	assert.False(t, got.DarkMode)
}

func TestToggle(t *testing.T) {
	s := setupService(t)

	on, err := s.Toggle("dark-mode")
	require.NoError(t, err)
	assert.True(t, on)

	got, err := s.Get()
	require.NoError(t, err)
	assert.True(t, got.DarkMode)
	assert.True(t, got.NotificationsEnabled, "other toggles are untouched")

	on, err = s.Toggle("darkmode")
	require.NoError(t, err)
	assert.False(t, on)
}

func TestSet(t *testing.T) {
	s := setupService(t)

	require.NoError(t, s.Set("notifications", false))
	require.NoError(t, s.Set("notifications", false))

	got, err := s.Get()
	require.NoError(t, err)
	assert.False(t, got.NotificationsEnabled)

	err = s.Set("volume", true)
	assert.True(t, stderrors.Is(err, errors.ErrUnknownSetting))
}

func TestValues(t *testing.T) {
	assert.Equal(t, map[string]bool{
		model.SettingDarkMode:      false,
		model.SettingNotifications: true,
	}, Values(model.DefaultSettings()))
}
