package storage

// Fixed keys for whole-document state. They match the keys the mobile
// app writes to its local storage so exported data lines up.
const (
	KeyPlaylistState = "playlistState"
	KeyProfileForm   = "profileFormData"
	KeySignupForm    = "signupFormData"
	KeyNavigation    = "navigation"
)

// KV is a string key-value store holding JSON documents.
type KV interface {
	// GetItem returns the stored value and whether it was present.
	GetItem(key string) (string, bool, error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(key, value string) error
	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(key string) error
}

var _ KV = (*DB)(nil)

// GetItem implements KV.
func (d *DB) GetItem(key string) (string, bool, error) {
	data, err := d.GetBytes(key)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

// SetItem implements KV.
func (d *DB) SetItem(key, value string) error {
	return d.SetBytes(key, []byte(value))
}

// RemoveItem implements KV.
func (d *DB) RemoveItem(key string) error {
	return d.Delete(key)
}
