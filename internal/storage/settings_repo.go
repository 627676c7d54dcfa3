package storage

import (
	"github.com/manav03panchal/encore/internal/model"
)

// SettingsRepo provides operations for the settings toggles.
type SettingsRepo struct {
	db *DB
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get retrieves the settings, or the defaults if none were saved.
func (r *SettingsRepo) Get() (*model.Settings, error) {
	settings := model.DefaultSettings()
	if err := r.db.Get(model.KeySettings, settings); err != nil {
		if IsErrKeyNotFound(err) {
			return model.DefaultSettings(), nil
		}
		return nil, err
	}
	return settings, nil
}

// Save stores the settings.
func (r *SettingsRepo) Save(settings *model.Settings) error {
	settings.Key = model.KeySettings
	return r.db.Set(settings)
}
