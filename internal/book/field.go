package book

import (
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/rolo/internal/shared"
)

// BirthdayLayout is the wire and display format for birthdays.
const BirthdayLayout = "2006-01-02"

// Name is a contact's display name. The original casing is preserved for
// display and persistence; identity is the lowercased [Name.Key].
type Name struct {
	value string
}

// NewName validates and wraps a contact name. Empty names are rejected.
func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, shared.ErrInvalidName
	}
	return Name{value: raw}, nil
}

func (n Name) String() string { return n.value }

// Key returns the case-insensitive identity key for this name.
func (n Name) Key() string { return strings.ToLower(n.value) }

// Phone is a validated phone number: exactly ten ASCII digits.
type Phone struct {
	value string
}

// NewPhone validates and wraps a phone number. Construction is atomic: on
// failure the zero value is returned and no partial state exists.
func NewPhone(raw string) (Phone, error) {
	if len(raw) != 10 {
		return Phone{}, fmt.Errorf("%w: %q", shared.ErrInvalidPhone, raw)
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return Phone{}, fmt.Errorf("%w: %q", shared.ErrInvalidPhone, raw)
		}
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }

// Birthday is a validated calendar date parsed from YYYY-MM-DD.
type Birthday struct {
	date time.Time
}

// NewBirthday parses a YYYY-MM-DD string into a Birthday. Impossible
// calendar dates (2023-02-30) are rejected along with malformed input.
func NewBirthday(raw string) (Birthday, error) {
	date, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", shared.ErrInvalidBirthday, raw)
	}
	return Birthday{date: date}, nil
}

func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }

// Date returns the underlying calendar date.
func (b Birthday) Date() time.Time { return b.date }
