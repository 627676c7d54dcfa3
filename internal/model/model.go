// Package model defines the persisted records for encore.
package model

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// Singleton keys for records stored through the model layer.
const (
	KeyUserProfile = "userProfile"
	KeySession     = "session"
	KeySettings    = "settings"
)
