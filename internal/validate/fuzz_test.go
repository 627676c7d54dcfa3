package validate

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

// FuzzSanitizeName checks sanitized names carry no control characters or
// surrounding whitespace.
// Run with: go test ./internal/validate -fuzz=FuzzSanitizeName -fuzztime=30s
func FuzzSanitizeName(f *testing.F) {
	seeds := []string{
		"Blue in Green",
		"hello\x00world",
		"test\x1b[31mred",
		"café résumé",
		"日本語テスト",
		"emoji 😀🎉",
		string(make([]byte, 10000)),
		"",
		"   ",
		"\t\n\r",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		got := SanitizeName(input)
		if strings.IndexFunc(got, unicode.IsControl) >= 0 {
			t.Errorf("SanitizeName(%q) = %q keeps a control character", input, got)
		}
		if utf8.ValidString(input) && got != strings.TrimSpace(got) {
			t.Errorf("SanitizeName(%q) = %q keeps surrounding space", input, got)
		}
	})
}

// FuzzValidators checks the field validators never panic.
// Run with: go test ./internal/validate -fuzz=FuzzValidators -fuzztime=30s
func FuzzValidators(f *testing.F) {
	f.Add("ada_l")
	f.Add("ada@example.com")
	f.Add("")
	f.Add(strings.Repeat("a", 300))
	f.Add("'; DROP TABLE users;--")

	f.Fuzz(func(t *testing.T, input string) {
		_ = Username(input)
		_ = Email(input)
		_ = Genre(input)
		_ = FavoriteGenre(input)
		_ = FirstName(input)
		_ = Password(input)
		_ = SongName(input)
		_ = BirthDate(input, input, input)
	})
}

// FuzzTruncateString checks truncation respects the rune limit.
func FuzzTruncateString(f *testing.F) {
	f.Add("Hello World", 8)
	f.Add("日本語テスト", 4)

	f.Fuzz(func(t *testing.T, input string, maxLen int) {
		if maxLen < 0 || maxLen > 1000 {
			return
		}
		got := TruncateString(input, maxLen)
		if utf8.RuneCountInString(got) > maxLen && utf8.RuneCountInString(input) > maxLen {
			t.Errorf("TruncateString(%q, %d) = %q", input, maxLen, got)
		}
	})
}
