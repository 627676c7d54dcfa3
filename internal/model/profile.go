package model

import (
	"strings"
	"time"
)

// UserProfile is the account created by a successful signup.
type UserProfile struct {
	Key          string    `json:"key"`
	UserID       string    `json:"user_id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Genre        string    `json:"genre"`
	FullName     string    `json:"fullName"`
	BirthDate    string    `json:"birthDate,omitempty"`
	PasswordHash string    `json:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SetKey sets the database key for this profile.
func (p *UserProfile) SetKey(key string) {
	p.Key = key
}

// GetKey returns the database key for this profile.
func (p *UserProfile) GetKey() string {
	return p.Key
}

// NewUserProfile creates a profile and derives its full name.
func NewUserProfile(userID, firstName, lastName, username, email, genre string) *UserProfile {
	return &UserProfile{
		Key:       KeyUserProfile,
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Email:     email,
		Genre:     genre,
		FullName:  strings.TrimSpace(firstName + " " + lastName),
		CreatedAt: time.Now(),
	}
}

// Matches reports whether identifier names this account. Usernames compare
// exactly, emails case-insensitively.
func (p *UserProfile) Matches(identifier string) bool {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return false
	}
	return identifier == p.Username || strings.EqualFold(identifier, p.Email)
}

// Session records who is signed in on this device.
type Session struct {
	Key        string    `json:"key"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	SignedInAt time.Time `json:"signed_in_at"`
}

// SetKey sets the database key for this session.
func (s *Session) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for this session.
func (s *Session) GetKey() string {
	return s.Key
}

// NewSession starts a session for the given profile.
func NewSession(p *UserProfile) *Session {
	return &Session{
		Key:        KeySession,
		UserID:     p.UserID,
		Username:   p.Username,
		SignedInAt: time.Now(),
	}
}
