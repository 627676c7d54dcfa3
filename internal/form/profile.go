package form

import (
	"github.com/manav03panchal/encore/internal/logging"
	"github.com/manav03panchal/encore/internal/storage"
	"github.com/manav03panchal/encore/internal/validate"
)

// ProfileForm is the profile form.
type ProfileForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Genre    string `json:"genre"`
}

// ProfileDraft is a profile form in progress.
type ProfileDraft = Draft[ProfileForm]

var profileFields = []Field[ProfileForm]{
	{
		Name:     "username",
		Label:    "Username",
		Get:      func(f *ProfileForm) string { return f.Username },
		Set:      func(f *ProfileForm, v string) error { f.Username = v; return nil },
		Validate: func(f *ProfileForm) error { return validate.Username(f.Username) },
	},
	{
		Name:     "email",
		Label:    "Email",
		Get:      func(f *ProfileForm) string { return f.Email },
		Set:      func(f *ProfileForm, v string) error { f.Email = v; return nil },
		Validate: func(f *ProfileForm) error { return validate.Email(f.Email) },
	},
	{
		Name:     "genre",
		Label:    "Favorite Genre",
		Get:      func(f *ProfileForm) string { return f.Genre },
		Set:      func(f *ProfileForm, v string) error { f.Genre = v; return nil },
		Validate: func(f *ProfileForm) error { return validate.Genre(f.Genre) },
	},
}

// NewProfileDraft returns an empty profile draft cached under
// storage.KeyProfileForm. Call Load to resume a cached draft.
func NewProfileDraft(kv storage.KV) *ProfileDraft {
	return newDraft(kv, storage.KeyProfileForm, "profile", profileFields)
}

// SubmitProfile validates every field. On success the draft is cleared and
// the submitted values are returned. On failure the field errors are
// returned and the draft is kept.
func SubmitProfile(d *ProfileDraft) (ProfileForm, error) {
	if fe := d.Validate(); fe != nil {
		return ProfileForm{}, fe
	}

	submitted := d.Data()
	d.Clear()
	logging.Info("profile submitted", logging.KeyForm, d.Name())
	return submitted, nil
}

// ShowPreview reports whether the live preview card has anything to show.
func (f ProfileForm) ShowPreview() bool {
	return f.Username != "" || f.Email != "" || f.Genre != ""
}
