// Package account manages the device's single user account: registration
// from the signup form, password checks, and the signed-in session.
package account

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/logging"
	"github.com/manav03panchal/encore/internal/model"
	"github.com/manav03panchal/encore/internal/nav"
	"github.com/manav03panchal/encore/internal/storage"
)

// Navigator is the part of nav.Navigator the account flow drives.
type Navigator interface {
	Push(route string) error
	Replace(route string) error
}

// Registration is a validated signup.
type Registration struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Genre     string
	Password  string
	BirthDate time.Time
}

// Service handles registration, sign in and sign out.
type Service struct {
	profiles *storage.ProfileRepo
	sessions *storage.SessionRepo
	nav      Navigator
	cost     int
}

// NewService creates an account service. A cost outside bcrypt's range uses
// bcrypt.DefaultCost.
func NewService(db *storage.DB, navigator Navigator, cost int) *Service {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Service{
		profiles: storage.NewProfileRepo(db),
		sessions: storage.NewSessionRepo(db),
		nav:      navigator,
		cost:     cost,
	}
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register stores a new profile, replacing any previous one on this device.
func (s *Service) Register(r Registration) (*model.UserProfile, error) {
	hash, err := HashPassword(r.Password, s.cost)
	if err != nil {
		return nil, err
	}

	profile := model.NewUserProfile(uuid.NewString(), r.FirstName, r.LastName, r.Username, r.Email, r.Genre)
	profile.PasswordHash = hash
	if !r.BirthDate.IsZero() {
		profile.BirthDate = r.BirthDate.Format("2006-01-02")
	}

	if err := s.profiles.Save(profile); err != nil {
		return nil, errors.Wrap(err, "save profile")
	}

	logging.LogOperation("register", "username", profile.Username)
	return profile, nil
}

// Profile returns the registered profile.
func (s *Service) Profile() (*model.UserProfile, error) {
	profile, err := s.profiles.Get()
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return nil, errors.ErrNotSignedUp
		}
		return nil, errors.Wrap(err, "load profile")
	}
	return profile, nil
}

// Login signs in with a username or email and opens the playlist.
func (s *Service) Login(identifier, password string) (*model.Session, error) {
	profile, err := s.Profile()
	if err != nil {
		return nil, err
	}

	if !profile.Matches(identifier) || !CheckPassword(profile.PasswordHash, password) {
		logging.Warn("sign in rejected", logging.KeyField, "identifier")
		return nil, errors.ErrInvalidCredentials
	}

	session := model.NewSession(profile)
	if err := s.sessions.Save(session); err != nil {
		return nil, errors.Wrap(err, "save session")
	}

	logging.Info("signed in", "username", profile.Username)
	if err := s.nav.Push(nav.RoutePlaylist); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout ends the session and returns to the login screen with no way
// back.
func (s *Service) Logout() error {
	if err := s.sessions.Delete(); err != nil {
		return errors.Wrap(err, "delete session")
	}
	logging.Info("signed out")
	return s.nav.Replace(nav.RouteLogin)
}

// Current returns the signed-in session and its profile.
func (s *Service) Current() (*model.Session, *model.UserProfile, error) {
	session, err := s.sessions.Get()
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return nil, nil, errors.ErrNotSignedIn
		}
		return nil, nil, errors.Wrap(err, "load session")
	}

	profile, err := s.Profile()
	if err != nil {
		return nil, nil, err
	}
	if profile.UserID != session.UserID {
		// The account was replaced by a new signup.
		return nil, nil, errors.ErrNotSignedIn
	}
	return session, profile, nil
}
