package book

import (
	"fmt"
	"strings"

	"github.com/desertthunder/rolo/internal/shared"
)

// DefaultPageSize is the number of records per page for listing.
const DefaultPageSize = 5

// AddressBook is an insertion-ordered collection of records keyed
// case-insensitively by contact name. At most one record exists per
// case-insensitive name; the casing of the first insert is preserved.
//
// The zero value is not usable; construct with [NewAddressBook].
type AddressBook struct {
	records  map[string]*Record // keyed by Name.Key()
	order    []string           // keys in insertion order
	pageSize int
}

// NewAddressBook creates an empty book with [DefaultPageSize].
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records:  make(map[string]*Record),
		pageSize: DefaultPageSize,
	}
}

// Len returns the number of records in the book.
func (b *AddressBook) Len() int { return len(b.order) }

// PageSize returns the current page size for [AddressBook.Page].
func (b *AddressBook) PageSize() int { return b.pageSize }

// SetPageSize overrides the page size. Values below 1 are ignored.
func (b *AddressBook) SetPageSize(n int) {
	if n >= 1 {
		b.pageSize = n
	}
}

// AddRecord inserts r, or merges it into an existing record with the same
// case-insensitive name. Merging appends r's phones to the existing list
// (duplicates retained) and never touches the existing birthday; a
// birthday carried by r is dropped.
func (b *AddressBook) AddRecord(r *Record) {
	key := r.Name().Key()
	if existing, ok := b.records[key]; ok {
		existing.phones = append(existing.phones, r.phones...)
		return
	}
	b.records[key] = r
	b.order = append(b.order, key)
}

// Find returns the record matching name case-insensitively.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[strings.ToLower(name)]
	return r, ok
}

// Delete removes the record matching name case-insensitively. Deleting an
// absent contact is a no-op.
func (b *AddressBook) Delete(name string) {
	key := strings.ToLower(name)
	if _, ok := b.records[key]; !ok {
		return
	}
	delete(b.records, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// ChangePhone replaces oldRaw with newRaw on the named contact. Returns
// [shared.ErrContactNotFound] when the contact is absent; otherwise the
// result of [Record.EditPhone] is propagated unchanged.
func (b *AddressBook) ChangePhone(name, oldRaw, newRaw string) error {
	r, ok := b.Find(name)
	if !ok {
		return fmt.Errorf("%w: %q", shared.ErrContactNotFound, name)
	}
	return r.EditPhone(oldRaw, newRaw)
}

// Search returns the display strings of every record whose name or any
// phone contains query case-insensitively, in insertion order.
func (b *AddressBook) Search(query string) []string {
	query = strings.ToLower(query)
	var results []string
	for _, r := range b.Records() {
		if strings.Contains(r.Name().Key(), query) {
			results = append(results, r.String())
			continue
		}
		for _, p := range r.phones {
			if strings.Contains(p.String(), query) {
				results = append(results, r.String())
				break
			}
		}
	}
	return results
}

// Page returns the page-th slice (1-based) of records in insertion order,
// sized by the book's page size. Pages past the end are empty, never an
// error.
func (b *AddressBook) Page(page int) []*Record {
	records := b.Records()
	start := (page - 1) * b.pageSize
	if start < 0 || start >= len(records) {
		return nil
	}
	end := start + b.pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// FirstN returns the display strings of the first n records, fewer when
// the book is smaller.
func (b *AddressBook) FirstN(n int) []string {
	var results []string
	for i, key := range b.order {
		if i >= n {
			break
		}
		results = append(results, b.records[key].String())
	}
	return results
}

// Records returns the records in insertion order. The slice is a copy;
// the records are shared.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, len(b.order))
	for i, key := range b.order {
		out[i] = b.records[key]
	}
	return out
}
