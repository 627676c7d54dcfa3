package form

import (
	"encoding/json"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/manav03panchal/encore/internal/account"
	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/model"
	"github.com/manav03panchal/encore/internal/nav"
	"github.com/manav03panchal/encore/internal/storage"
)

// memKV is an in-memory storage.KV.
type memKV struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemKV() *memKV { return &memKV{items: make(map[string]string)} }

func (m *memKV) GetItem(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memKV) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *memKV) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

type failingKV struct{}

func (failingKV) GetItem(string) (string, bool, error) { return "", false, stderrors.New("down") }
func (failingKV) SetItem(string, string) error         { return stderrors.New("down") }
func (failingKV) RemoveItem(string) error              { return stderrors.New("down") }

var refNow = func() time.Time { return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC) }

// =============================================================================
// Profile Draft Tests
// =============================================================================

func TestProfileSetValidatesAndCaches(t *testing.T) {
	kv := newMemKV()
	d := NewProfileDraft(kv)

	msg, err := d.Set("username", "ab")
	require.NoError(t, err)
	assert.Equal(t, "Username must be 3-20 characters", msg)
	assert.Equal(t, "Username must be 3-20 characters", d.Errors()["username"])

	msg, err = d.Set("username", "neo_99")
	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.NotContains(t, d.Errors(), "username")

	raw, ok, _ := kv.GetItem(storage.KeyProfileForm)
	require.True(t, ok)
	var cached ProfileForm
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, ProfileForm{Username: "neo_99"}, cached)
}

func TestProfileLoadResumesDraft(t *testing.T) {
	kv := newMemKV()
	first := NewProfileDraft(kv)
	_, _ = first.Set("email", "neo@example.com")
	_, _ = first.Set("genre", "Jazz")

	second := NewProfileDraft(kv)
	got := second.Load()
	assert.Equal(t, ProfileForm{Email: "neo@example.com", Genre: "Jazz"}, got)
	assert.True(t, got.ShowPreview())
}

func TestLoadIgnoresBadCache(t *testing.T) {
	kv := newMemKV()
	require.NoError(t, kv.SetItem(storage.KeyProfileForm, "{broken"))

	d := NewProfileDraft(kv)
	assert.Equal(t, ProfileForm{}, d.Load())
	assert.False(t, d.Data().ShowPreview())
}

func TestDraftSurvivesFailingStorage(t *testing.T) {
	d := NewProfileDraft(failingKV{})

	assert.NotPanics(t, func() {
		d.Load()
		_, err := d.Set("username", "neo_99")
		assert.NoError(t, err)
		d.Clear()
	})
}

func TestSetUnknownField(t *testing.T) {
	d := NewProfileDraft(newMemKV())
	_, err := d.Set("favoriteColor", "green")
	assert.True(t, stderrors.Is(err, errors.ErrUnknownField))
}

func TestSubmitProfile(t *testing.T) {
	t.Run("invalid_keeps_draft", func(t *testing.T) {
		kv := newMemKV()
		d := NewProfileDraft(kv)
		_, _ = d.Set("username", "neo_99")

		_, err := SubmitProfile(d)
		fe, ok := errors.AsFieldErrors(err)
		require.True(t, ok)
		assert.Equal(t, "Email is required", fe["email"])
		assert.Equal(t, "Please select a favorite genre", fe["genre"])
		assert.NotContains(t, fe, "username")

		_, cached, _ := kv.GetItem(storage.KeyProfileForm)
		assert.True(t, cached)
	})

	t.Run("valid_clears_draft", func(t *testing.T) {
		kv := newMemKV()
		d := NewProfileDraft(kv)
		_, _ = d.Set("username", "neo_99")
		_, _ = d.Set("email", "neo@example.com")
		_, _ = d.Set("genre", "Rock")

		got, err := SubmitProfile(d)
		require.NoError(t, err)
		assert.Equal(t, ProfileForm{Username: "neo_99", Email: "neo@example.com", Genre: "Rock"}, got)
		assert.Equal(t, ProfileForm{}, d.Data())
		assert.Empty(t, d.Errors())

		_, cached, _ := kv.GetItem(storage.KeyProfileForm)
		assert.False(t, cached)
	})
}

// =============================================================================
// Signup Draft Tests
// =============================================================================

func TestSignupFieldAliases(t *testing.T) {
	d := NewSignupDraft(newMemKV(), refNow)

	_, err := d.Set("first-name", "Ada")
	require.NoError(t, err)
	_, err = d.Set("last_name", "Lovelace")
	require.NoError(t, err)

	assert.Equal(t, "Ada", d.Data().FirstName)
	assert.Equal(t, "Lovelace", d.Data().LastName)
}

func TestSignupBirthDateParts(t *testing.T) {
	d := NewSignupDraft(newMemKV(), refNow)

	msg, err := d.Set("month", "March")
	require.NoError(t, err)
	assert.Equal(t, "Please select your complete birth date", msg)
	assert.Equal(t, "03", d.Data().Month)

	_, err = d.Set("day", "3")
	require.NoError(t, err)
	msg, err = d.Set("year", "1999")
	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.NotContains(t, d.Errors(), "birthDate")

	_, err = d.Set("year", "1800")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidBirthDate))
	assert.Equal(t, "1999", d.Data().Year, "rejected value leaves the draft unchanged")

	msg, err = d.Set("day", "31")
	require.NoError(t, err)
	msg2, _ := d.Set("month", "February")
	assert.Empty(t, msg)
	assert.Equal(t, "Please select a valid birth date", msg2)
}

func TestSignupBirthDateNaturalLanguage(t *testing.T) {
	d := NewSignupDraft(newMemKV(), refNow)

	msg, err := d.Set("birthDate", "March 3 1999")
	require.NoError(t, err)
	assert.Empty(t, msg)

	f := d.Data()
	assert.Equal(t, "03", f.Month)
	assert.Equal(t, "3", f.Day)
	assert.Equal(t, "1999", f.Year)
}

func TestSignupFieldsMaskPassword(t *testing.T) {
	d := NewSignupDraft(newMemKV(), refNow)
	_, _ = d.Set("password", "hunter22")

	for _, fv := range d.Fields() {
		if fv.Name == "password" {
			assert.NotContains(t, fv.Value, "hunter22")
			assert.Equal(t, "********", fv.Value)
		}
		assert.NotEqual(t, "birthDate", fv.Name, "virtual field is not listed")
	}
}

func TestSignupFieldLookup(t *testing.T) {
	d := NewSignupDraft(newMemKV(), refNow)

	assert.True(t, d.Sensitive("password"))
	assert.True(t, d.Sensitive("Password"))
	assert.False(t, d.Sensitive("username"))
	assert.False(t, d.Sensitive("nope"))

	assert.Equal(t, "Favorite Genre", d.Label("genre"))
	assert.Equal(t, "First Name", d.Label("first_name"))
	assert.Equal(t, "nope", d.Label("nope"))
}

func TestSignupDisplayName(t *testing.T) {
	assert.Equal(t, "Your Name", SignupForm{}.DisplayName())
	assert.Equal(t, "Ada", SignupForm{FirstName: "Ada"}.DisplayName())
	assert.Equal(t, "ada_l", SignupForm{FirstName: "Ada", Username: "ada_l"}.DisplayName())
}

func fillSignup(t *testing.T, d *SignupDraft) {
	t.Helper()
	for _, kv := range [][2]string{
		{"firstName", "Ada"},
		{"lastName", "Lovelace"},
		{"password", "engine1"},
		{"birthDate", "March 3 1999"},
		{"username", "ada_l"},
		{"email", "ada@example.com"},
		{"genre", "Classical"},
	} {
		msg, err := d.Set(kv[0], kv[1])
		require.NoError(t, err, kv[0])
		require.Empty(t, msg, kv[0])
	}
}

func TestSubmitSignup(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	defer db.Close()

	navigator := nav.NewNavigator(db)
	accounts := account.NewService(db, navigator, bcrypt.MinCost)
	d := NewSignupDraft(db, refNow)

	t.Run("invalid", func(t *testing.T) {
		_, err := SubmitSignup(d, accounts, navigator)
		fe, ok := errors.AsFieldErrors(err)
		require.True(t, ok)
		assert.Equal(t, map[string]string{
			"firstName": "First name is required",
			"lastName":  "Last name is required",
			"password":  "Password is required",
			"birthDate": "Please select your complete birth date",
			"username":  "Username is required",
			"email":     "Email is required",
			"genre":     "Please select your favorite genre",
		}, map[string]string(fe))
		assert.Equal(t, nav.RouteLogin, navigator.Current())
	})

	t.Run("valid", func(t *testing.T) {
		fillSignup(t, d)

		profile, err := SubmitSignup(d, accounts, navigator)
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", profile.FullName)
		assert.Equal(t, "1999-03-03", profile.BirthDate)
		assert.Equal(t, nav.RoutePlaylist, navigator.Current())

		exists, err := db.Exists(storage.KeySignupForm)
		require.NoError(t, err)
		assert.False(t, exists, "signup draft is cleared")

		stored, err := accounts.Profile()
		require.NoError(t, err)
		assert.Equal(t, profile.UserID, stored.UserID)
		assert.True(t, account.CheckPassword(stored.PasswordHash, "engine1"))
	})
}

type failingRegistrar struct{}

func (failingRegistrar) Register(account.Registration) (*model.UserProfile, error) {
	return nil, errors.ErrDiskFull
}

func TestSubmitSignupKeepsDraftOnSaveFailure(t *testing.T) {
	kv := newMemKV()
	d := NewSignupDraft(kv, refNow)
	fillSignup(t, d)
	navigator := nav.NewNavigator(kv)

	_, err := SubmitSignup(d, failingRegistrar{}, navigator)
	assert.True(t, stderrors.Is(err, errors.ErrDiskFull))
	assert.Equal(t, "ada_l", d.Data().Username)
	assert.Equal(t, nav.RouteLogin, navigator.Current())
}
