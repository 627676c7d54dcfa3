// Package settings manages the toggles shown in the settings drawer.
package settings

import (
	"strings"

	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/logging"
	"github.com/manav03panchal/encore/internal/model"
	"github.com/manav03panchal/encore/internal/storage"
)

// aliases maps normalized spellings to setting names.
var aliases = map[string]string{
	"notifications": model.SettingNotifications,
	"notification":  model.SettingNotifications,
	"notify":        model.SettingNotifications,
	"darkmode":      model.SettingDarkMode,
	"dark":          model.SettingDarkMode,
	"theme":         model.SettingDarkMode,
}

// Names returns the canonical setting names in sorted order.
func Names() []string {
	return []string{model.SettingDarkMode, model.SettingNotifications}
}

// ParseName resolves a user supplied setting name. Case, dashes,
// underscores and spaces are ignored.
func ParseName(input string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(input))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if name, ok := aliases[key]; ok {
		return name, nil
	}
	return "", &errors.UserError{
		Message:    "Unknown setting",
		Field:      "setting",
		Value:      input,
		Suggestion: "Available settings: " + strings.Join(Names(), ", "),
		Cause:      errors.ErrUnknownSetting,
	}
}

// ParseBool accepts the usual spellings of on and off.
func ParseBool(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "on", "true", "yes", "y", "1", "enable", "enabled":
		return true, nil
	case "off", "false", "no", "n", "0", "disable", "disabled":
		return false, nil
	}
	return false, errors.NewUserErrorWithField("value", input,
		"Expected on or off", "Use on/off, true/false or yes/no")
}

// Service reads and writes the settings record.
type Service struct {
	repo *storage.SettingsRepo
}

// NewService creates a settings service over db.
func NewService(db *storage.DB) *Service {
	return &Service{repo: storage.NewSettingsRepo(db)}
}

// Get returns the stored settings, or the defaults.
func (s *Service) Get() (*model.Settings, error) {
	return s.repo.Get()
}

// Set stores value for the named setting.
func (s *Service) Set(name string, value bool) error {
	canonical, err := ParseName(name)
	if err != nil {
		return err
	}

	current, err := s.repo.Get()
	if err != nil {
		return err
	}
	current.Set(canonical, value)
	if err := s.repo.Save(current); err != nil {
		return errors.Wrap(err, "failed to save settings")
	}

	logging.LogOperation("settings.set", logging.KeyField, canonical, "value", value)
	return nil
}

// Toggle flips the named setting and returns its new value.
func (s *Service) Toggle(name string) (bool, error) {
	canonical, err := ParseName(name)
	if err != nil {
		return false, err
	}

	current, err := s.repo.Get()
	if err != nil {
		return false, err
	}
	value, _ := current.Get(canonical)
	if err := s.Set(canonical, !value); err != nil {
		return false, err
	}
	return !value, nil
}

// Values returns every setting keyed by name.
func Values(s *model.Settings) map[string]bool {
	out := make(map[string]bool, 2)
	for _, name := range Names() {
		out[name], _ = s.Get(name)
	}
	return out
}
