package form

import (
	"strings"
	"time"

	"github.com/manav03panchal/encore/internal/account"
	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/logging"
	"github.com/manav03panchal/encore/internal/model"
	"github.com/manav03panchal/encore/internal/nav"
	"github.com/manav03panchal/encore/internal/parser"
	"github.com/manav03panchal/encore/internal/storage"
	"github.com/manav03panchal/encore/internal/validate"
)

// SignupForm is the signup form. The birth date is kept as the three picker
// values.
type SignupForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	Month     string `json:"month"`
	Day       string `json:"day"`
	Year      string `json:"year"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Genre     string `json:"genre"`
}

// SignupDraft is a signup form in progress.
type SignupDraft = Draft[SignupForm]

// BirthDate returns the picked birth date parts.
func (f SignupForm) BirthDate() parser.BirthDate {
	return parser.BirthDate{Month: f.Month, Day: f.Day, Year: f.Year}
}

// DisplayName is the name shown on the preview card.
func (f SignupForm) DisplayName() string {
	if f.Username != "" {
		return f.Username
	}
	if name := strings.TrimSpace(f.FirstName + " " + f.LastName); name != "" {
		return name
	}
	return "Your Name"
}

// ShowPreview reports whether the live preview card has anything to show.
func (f SignupForm) ShowPreview() bool {
	return f.Username != "" || f.Email != "" || f.Genre != ""
}

func validateBirthDate(f *SignupForm) error {
	if err := validate.BirthDate(f.Month, f.Day, f.Year); err != nil {
		return err
	}
	if _, err := f.BirthDate().Time(); err != nil {
		return &errors.UserError{
			Message: "Please select a valid birth date",
			Field:   "birthDate",
			Cause:   errors.ErrInvalidBirthDate,
		}
	}
	return nil
}

// datePart builds the setter for one birth date picker. An empty value
// clears the part.
func datePart(set func(*SignupForm, string), parse func(string) (string, error)) func(*SignupForm, string) error {
	return func(f *SignupForm, v string) error {
		if strings.TrimSpace(v) == "" {
			set(f, "")
			return nil
		}
		parsed, err := parse(v)
		if err != nil {
			return err
		}
		set(f, parsed)
		return nil
	}
}

func signupFields(now func() time.Time) []Field[SignupForm] {
	return []Field[SignupForm]{
		{
			Name:     "firstName",
			Label:    "First Name",
			Get:      func(f *SignupForm) string { return f.FirstName },
			Set:      func(f *SignupForm, v string) error { f.FirstName = v; return nil },
			Validate: func(f *SignupForm) error { return validate.FirstName(f.FirstName) },
		},
		{
			Name:     "lastName",
			Label:    "Last Name",
			Get:      func(f *SignupForm) string { return f.LastName },
			Set:      func(f *SignupForm, v string) error { f.LastName = v; return nil },
			Validate: func(f *SignupForm) error { return validate.LastName(f.LastName) },
		},
		{
			Name:      "password",
			Label:     "Password",
			Sensitive: true,
			Get:       func(f *SignupForm) string { return f.Password },
			Set:       func(f *SignupForm, v string) error { f.Password = v; return nil },
			Validate:  func(f *SignupForm) error { return validate.Password(f.Password) },
		},
		{
			Name:     "birthDate",
			Label:    "Birth Date",
			Virtual:  true,
			Get:      func(f *SignupForm) string { return f.BirthDate().String() },
			Validate: validateBirthDate,
			Set: func(f *SignupForm, v string) error {
				bd, err := parser.ParseBirthDate(v, now())
				if err != nil {
					return err
				}
				f.Month, f.Day, f.Year = bd.Month, bd.Day, bd.Year
				return nil
			},
		},
		{
			Name:     "month",
			Label:    "Month",
			ErrorKey: "birthDate",
			Get:      func(f *SignupForm) string { return f.Month },
			Set:      datePart(func(f *SignupForm, v string) { f.Month = v }, parser.ParseMonth),
			Validate: validateBirthDate,
		},
		{
			Name:     "day",
			Label:    "Day",
			ErrorKey: "birthDate",
			Get:      func(f *SignupForm) string { return f.Day },
			Set:      datePart(func(f *SignupForm, v string) { f.Day = v }, parser.ParseDay),
			Validate: validateBirthDate,
		},
		{
			Name:     "year",
			Label:    "Year",
			ErrorKey: "birthDate",
			Get:      func(f *SignupForm) string { return f.Year },
			Set: datePart(func(f *SignupForm, v string) { f.Year = v }, func(v string) (string, error) {
				return parser.ParseYear(v, now())
			}),
			Validate: validateBirthDate,
		},
		{
			Name:     "username",
			Label:    "Username",
			Get:      func(f *SignupForm) string { return f.Username },
			Set:      func(f *SignupForm, v string) error { f.Username = v; return nil },
			Validate: func(f *SignupForm) error { return validate.Username(f.Username) },
		},
		{
			Name:     "email",
			Label:    "Email",
			Get:      func(f *SignupForm) string { return f.Email },
			Set:      func(f *SignupForm, v string) error { f.Email = v; return nil },
			Validate: func(f *SignupForm) error { return validate.Email(f.Email) },
		},
		{
			Name:     "genre",
			Label:    "Favorite Genre",
			Get:      func(f *SignupForm) string { return f.Genre },
			Set:      func(f *SignupForm, v string) error { f.Genre = v; return nil },
			Validate: func(f *SignupForm) error { return validate.FavoriteGenre(f.Genre) },
		},
	}
}

// NewSignupDraft returns an empty signup draft cached under
// storage.KeySignupForm. now bounds the selectable birth years; nil uses
// time.Now. Call Load to resume a cached draft.
func NewSignupDraft(kv storage.KV, now func() time.Time) *SignupDraft {
	if now == nil {
		now = time.Now
	}
	return newDraft(kv, storage.KeySignupForm, "signup", signupFields(now))
}

// Registrar stores a new account.
type Registrar interface {
	Register(account.Registration) (*model.UserProfile, error)
}

// Pusher opens a screen.
type Pusher interface {
	Push(route string) error
}

// SubmitSignup validates every field and registers the account. On success
// the draft is cleared and the playlist screen is opened. On failure the
// field errors, or the storage error, are returned and the draft is kept.
func SubmitSignup(d *SignupDraft, accounts Registrar, navigator Pusher) (*model.UserProfile, error) {
	if fe := d.Validate(); fe != nil {
		return nil, fe
	}

	f := d.Data()
	birth, _ := f.BirthDate().Time()

	profile, err := accounts.Register(account.Registration{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Username:  f.Username,
		Email:     f.Email,
		Genre:     f.Genre,
		Password:  f.Password,
		BirthDate: birth,
	})
	if err != nil {
		logging.Error("failed to save user profile", logging.KeyForm, d.Name(), logging.KeyError, err)
		return nil, err
	}

	d.Clear()
	if err := navigator.Push(nav.RoutePlaylist); err != nil {
		return profile, err
	}
	return profile, nil
}
