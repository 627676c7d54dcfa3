package storage

import (
	"github.com/manav03panchal/encore/internal/model"
)

// ProfileRepo provides operations for the device's UserProfile.
type ProfileRepo struct {
	db *DB
}

// NewProfileRepo creates a new profile repository.
func NewProfileRepo(db *DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Get retrieves the stored profile.
func (r *ProfileRepo) Get() (*model.UserProfile, error) {
	profile := &model.UserProfile{}
	if err := r.db.Get(model.KeyUserProfile, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Save creates or replaces the stored profile.
func (r *ProfileRepo) Save(profile *model.UserProfile) error {
	profile.Key = model.KeyUserProfile
	return r.db.Set(profile)
}
