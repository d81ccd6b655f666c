// Package book implements the in-memory contact store: validated field
// types ([Name], [Phone], [Birthday]), the per-contact [Record], and the
// insertion-ordered [AddressBook] with case-insensitive identity, substring
// search, and fixed-size pagination.
//
// The package never prints and never logs; all failures surface as wrapped
// sentinel errors from internal/shared and leave the receiver unchanged.
// Persistence is a plain JSON array written wholesale (see [SaveFile]); a
// crash mid-write can truncate the file, which callers accept as a known
// limitation of the format.
package book
