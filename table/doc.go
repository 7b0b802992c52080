// Package table implements a log-structured, single-writer key-value store:
// an append-only on-disk file of (key, value-or-tombstone) records plus an
// in-memory sorted index rebuilt from the log on open. Mutations append to
// the log before updating the in-memory index; Compact rewrites the log to
// hold only the live state. Insert and Remove issue no Sync: a mutation's
// point of commit is the return of os.File.Write, which hands the bytes to
// the OS.
package table
