package book

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveFile writes every record (insertion order) as a JSON array to path,
// replacing the file wholesale.
func SaveFile(b *AddressBook, path string) error {
	snapshots := make([]Snapshot, 0, b.Len())
	for _, r := range b.Records() {
		snapshots = append(snapshots, r.Snapshot())
	}

	data, err := json.Marshal(snapshots)
	if err != nil {
		return fmt.Errorf("failed to marshal address book: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write address book: %w", err)
	}

	return nil
}

// LoadFile reads a JSON array of contact snapshots from path and rebuilds
// the book, re-validating every field on the way in. A missing file
// surfaces as an error satisfying errors.Is(err, fs.ErrNotExist) so
// callers can treat it as "start empty"; any parse or validation failure
// is returned as-is.
func LoadFile(path string) (*AddressBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read address book: %w", err)
	}

	var snapshots []Snapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to parse address book: %w", err)
	}

	b := NewAddressBook()
	for _, s := range snapshots {
		birthday := ""
		if s.Birthday != nil {
			birthday = *s.Birthday
		}

		r, err := NewRecord(s.Name, birthday)
		if err != nil {
			return nil, fmt.Errorf("invalid record %q: %w", s.Name, err)
		}
		for _, phone := range s.Phones {
			if err := r.AddPhone(phone); err != nil {
				return nil, fmt.Errorf("invalid record %q: %w", s.Name, err)
			}
		}

		b.AddRecord(r)
	}

	return b, nil
}
