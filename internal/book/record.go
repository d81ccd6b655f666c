package book

import (
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/rolo/internal/shared"
)

// Record holds one contact: a name, an optional birthday, and an ordered
// list of phone numbers. Duplicate phones are allowed and tracked
// independently. Name and birthday are fixed once the record is created;
// only the phone list mutates.
type Record struct {
	name     Name
	birthday *Birthday
	phones   []Phone
}

// NewRecord creates a record with the given name and optional birthday.
// Pass an empty birthday string for contacts without one.
func NewRecord(name, birthday string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	r := &Record{name: n}
	if birthday != "" {
		bd, err := NewBirthday(birthday)
		if err != nil {
			return nil, err
		}
		r.birthday = &bd
	}

	return r, nil
}

// Name returns the contact's name.
func (r *Record) Name() Name { return r.name }

// Birthday returns the contact's birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates raw and appends it to the phone list. Duplicates are
// not collapsed.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes every phone whose text equals raw. Removing a number
// that is not present is a no-op.
func (r *Record) RemovePhone(raw string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.String() != raw {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// FindPhone returns the first phone whose text equals raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, p := range r.phones {
		if p.String() == raw {
			return p, true
		}
	}
	return Phone{}, false
}

// EditPhone replaces the first phone equal to oldRaw with a validated
// newRaw. When no phone matches, the record is left untouched and
// [shared.ErrPhoneNotFound] is returned; a newRaw that fails validation
// likewise leaves the list unchanged.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	for i, p := range r.phones {
		if p.String() == oldRaw {
			replacement, err := NewPhone(newRaw)
			if err != nil {
				return err
			}
			r.phones[i] = replacement
			return nil
		}
	}
	return fmt.Errorf("%w: %q", shared.ErrPhoneNotFound, oldRaw)
}

// DaysToBirthday returns the whole-day count from now (date only, time of
// day ignored) to the next occurrence of the birthday's month and day. A
// birthday falling on today's date returns 0. Feb-29 birthdays resolve to
// Mar-1 in non-leap years, which is what time.Date normalization yields.
// The second return is false when no birthday is set.
func (r *Record) DaysToBirthday(now time.Time) (int, bool) {
	if r.birthday == nil {
		return 0, false
	}

	// UTC midnights keep the subtraction an exact multiple of 24h.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	bd := r.birthday.date

	next := time.Date(today.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	if today.After(next) {
		next = time.Date(today.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	}

	return int(next.Sub(today).Hours() / 24), true
}

// String renders the record in the fixed human-readable form used by show
// and search output.
func (r *Record) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Contact name: %s, phones: %s", r.name, joinPhones(r.phones))
	if r.birthday != nil {
		fmt.Fprintf(&sb, ", birthday: %s", r.birthday)
	}
	return sb.String()
}

// Snapshot is the persistable form of a [Record].
type Snapshot struct {
	Name     string   `json:"name"`
	Birthday *string  `json:"birthday"`
	Phones   []string `json:"phones"`
}

// Snapshot returns a side-effect-free persistable copy of the record.
func (r *Record) Snapshot() Snapshot {
	s := Snapshot{Name: r.name.String(), Phones: make([]string, len(r.phones))}
	for i, p := range r.phones {
		s.Phones[i] = p.String()
	}
	if r.birthday != nil {
		text := r.birthday.String()
		s.Birthday = &text
	}
	return s
}

func joinPhones(phones []Phone) string {
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}
