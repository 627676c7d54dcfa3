package model

// Setting names accepted by the settings commands.
const (
	SettingNotifications = "notifications"
	SettingDarkMode      = "dark-mode"
)

// Settings holds the toggles from the settings drawer.
type Settings struct {
	Key                  string `json:"key"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	DarkMode             bool   `json:"dark_mode"`
}

// SetKey sets the database key for the settings.
func (s *Settings) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for the settings.
func (s *Settings) GetKey() string {
	return s.Key
}

// DefaultSettings returns the toggles as a fresh install shows them.
func DefaultSettings() *Settings {
	return &Settings{
		Key:                  KeySettings,
		NotificationsEnabled: true,
		DarkMode:             false,
	}
}

// Get returns the named toggle.
func (s *Settings) Get(name string) (bool, bool) {
	switch name {
	case SettingNotifications:
		return s.NotificationsEnabled, true
	case SettingDarkMode:
		return s.DarkMode, true
	}
	return false, false
}

// Set updates the named toggle. It reports false for unknown names.
func (s *Settings) Set(name string, value bool) bool {
	switch name {
	case SettingNotifications:
		s.NotificationsEnabled = value
	case SettingDarkMode:
		s.DarkMode = value
	default:
		return false
	}
	return true
}
