package storage

import (
	"github.com/manav03panchal/encore/internal/model"
)

// SessionRepo provides operations for the signed-in Session.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Get retrieves the current session.
func (r *SessionRepo) Get() (*model.Session, error) {
	session := &model.Session{}
	if err := r.db.Get(model.KeySession, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Save starts or replaces the current session.
func (r *SessionRepo) Save(session *model.Session) error {
	session.Key = model.KeySession
	return r.db.Set(session)
}

// Delete ends the current session. Deleting when signed out is not an error.
func (r *SessionRepo) Delete() error {
	return r.db.Delete(model.KeySession)
}
