package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// BirthYears is how many years back the year picker reaches, counting the
// current year.
const BirthYears = 100

// BirthDate holds the three picker values of a birth date in their stored
// form: two-digit month ("01".."12"), day without padding ("1".."31") and
// four-digit year. Empty parts are unset.
type BirthDate struct {
	Month string
	Day   string
	Year  string
}

// Complete reports whether every part is set.
func (b BirthDate) Complete() bool {
	return b.Month != "" && b.Day != "" && b.Year != ""
}

// Time returns the date at midnight UTC. It fails when a part is unset or
// the parts do not form a real calendar date.
func (b BirthDate) Time() (time.Time, error) {
	if !b.Complete() {
		return time.Time{}, NewBirthDateError(b.String())
	}
	m, _ := strconv.Atoi(b.Month)
	d, _ := strconv.Atoi(b.Day)
	y, _ := strconv.Atoi(b.Year)
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || int(t.Month()) != m {
		return time.Time{}, NewParseError("birth date", b.String(), "no such day in that month", BirthDateExamples...)
	}
	return t, nil
}

func (b BirthDate) String() string {
	return fmt.Sprintf("%s-%s-%s", b.Year, b.Month, b.Day)
}

// ParseBirthDate parses a natural language date such as "March 3 1999" into
// picker values. The year must fall within the last BirthYears years
// relative to now, and the date must not be in the future.
func ParseBirthDate(input string, now time.Time) (BirthDate, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return BirthDate{}, NewBirthDateError(input)
	}

	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dateparser.Past,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return BirthDate{}, NewBirthDateError(input)
	}

	t := result.Time
	if t.After(now) {
		return BirthDate{}, NewParseError("birth date", input, "date is in the future", BirthDateExamples...)
	}

	year, err := ParseYear(strconv.Itoa(t.Year()), now)
	if err != nil {
		return BirthDate{}, err
	}

	return BirthDate{
		Month: fmt.Sprintf("%02d", int(t.Month())),
		Day:   strconv.Itoa(t.Day()),
		Year:  year,
	}, nil
}

// ParseMonth accepts a month number (1-12, optionally zero padded) or an
// English month name or abbreviation and returns the two-digit form.
func ParseMonth(input string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return "", NewMonthError(input)
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return "", NewMonthError(input)
		}
		return fmt.Sprintf("%02d", n), nil
	}

	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return fmt.Sprintf("%02d", int(m)), nil
		}
	}
	return "", NewMonthError(input)
}

// ParseDay accepts a day of month from 1 to 31 and returns it unpadded.
func ParseDay(input string) (string, error) {
	s := strings.TrimSpace(input)
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 31 {
		return "", NewParseError("day", input, "day must be between 1 and 31")
	}
	return strconv.Itoa(n), nil
}

// ParseYear accepts a four-digit year within the last BirthYears years.
func ParseYear(input string, now time.Time) (string, error) {
	s := strings.TrimSpace(input)
	n, err := strconv.Atoi(s)
	newest := now.Year()
	oldest := newest - BirthYears + 1
	if err != nil || n < oldest || n > newest {
		return "", NewParseError("year", input,
			fmt.Sprintf("year must be between %d and %d", oldest, newest))
	}
	return strconv.Itoa(n), nil
}
