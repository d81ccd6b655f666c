package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/desertthunder/rolo/internal/book"
	"github.com/desertthunder/rolo/internal/shared"
)

// Snapshot describes one stored snapshot of the address book.
type Snapshot struct {
	ID           string
	Sequence     int
	Label        string
	ContactCount int
	CreatedAt    time.Time
}

// Repository persists book snapshots to SQLite.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new [Repository] with the given database connection
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// nextSequence atomically increments and returns the next snapshot
// sequence number. Sequence numbers provide human-readable ordering
// (snapshot #1, #2, ...) alongside the uuid identity.
func nextSequence(db *sql.DB) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE snapshots_sequence SET value = value + 1 WHERE id = 1"); err != nil {
		return 0, fmt.Errorf("failed to increment sequence: %w", err)
	}

	var sequence int
	if err := tx.QueryRow("SELECT value FROM snapshots_sequence WHERE id = 1").Scan(&sequence); err != nil {
		return 0, fmt.Errorf("failed to get sequence value: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit sequence transaction: %w", err)
	}

	return sequence, nil
}

// Save stores the whole book as a new snapshot and returns its metadata.
// An empty book is a valid (zero-contact) snapshot.
func (r *Repository) Save(b *book.AddressBook, label string) (*Snapshot, error) {
	sequence, err := nextSequence(r.db)
	if err != nil {
		return nil, fmt.Errorf("failed to generate sequence: %w", err)
	}

	snap := &Snapshot{
		ID:           shared.GenerateID(),
		Sequence:     sequence,
		Label:        label,
		ContactCount: b.Len(),
		CreatedAt:    time.Now(),
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO snapshots (id, sequence, label, contact_count, created_at) VALUES (?, ?, ?, ?, ?)
	`
	if _, err := tx.Exec(query, snap.ID, snap.Sequence, snap.Label, snap.ContactCount, snap.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	for i, rec := range b.Records() {
		s := rec.Snapshot()

		phones, err := json.Marshal(s.Phones)
		if err != nil {
			return nil, fmt.Errorf("failed to encode phones: %w", err)
		}

		var birthday sql.NullString
		if s.Birthday != nil {
			birthday = sql.NullString{String: *s.Birthday, Valid: true}
		}

		query := `
			INSERT INTO snapshot_contacts (id, snapshot_id, position, name, birthday, phones) VALUES (?, ?, ?, ?, ?, ?)
		`
		if _, err := tx.Exec(query, shared.GenerateID(), snap.ID, i, s.Name, birthday, string(phones)); err != nil {
			return nil, fmt.Errorf("failed to insert contact %q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return snap, nil
}

// List returns all snapshots, newest first.
func (r *Repository) List() ([]Snapshot, error) {
	query := `
		SELECT id, sequence, label, contact_count, created_at
		FROM snapshots
		ORDER BY sequence DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.Sequence, &s.Label, &s.ContactCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}

	return snapshots, nil
}

// Restore rebuilds an address book from the snapshot with the given id.
// Every field passes through the book package's validation again.
func (r *Repository) Restore(id string) (*book.AddressBook, error) {
	var exists bool
	if err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM snapshots WHERE id = ?)", id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check snapshot: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("snapshot not found: %s", id)
	}

	query := `
		SELECT name, birthday, phones
		FROM snapshot_contacts
		WHERE snapshot_id = ?
		ORDER BY position
	`

	rows, err := r.db.Query(query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	b := book.NewAddressBook()
	for rows.Next() {
		var (
			name     string
			birthday sql.NullString
			phones   string
		)
		if err := rows.Scan(&name, &birthday, &phones); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}

		rec, err := book.NewRecord(name, birthday.String)
		if err != nil {
			return nil, fmt.Errorf("invalid archived contact %q: %w", name, err)
		}

		var numbers []string
		if err := json.Unmarshal([]byte(phones), &numbers); err != nil {
			return nil, fmt.Errorf("failed to decode phones for %q: %w", name, err)
		}
		for _, raw := range numbers {
			if err := rec.AddPhone(raw); err != nil {
				return nil, fmt.Errorf("invalid archived contact %q: %w", name, err)
			}
		}

		b.AddRecord(rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return b, nil
}
