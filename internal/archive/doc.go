// Package archive persists point-in-time snapshots of the address book to
// a local SQLite database.
//
// The JSON book file remains the store of record; the archive is history.
// Each snapshot row carries a uuid, a monotonically increasing sequence
// number for human-readable ordering, and its contacts as child rows in
// book order.
package archive
