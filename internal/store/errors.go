package store

import "fmt"

// NotFoundError indicates an unknown resume, job or match identifier. It is
// surfaced to the caller and never retried.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// StoreConflictError indicates a race on the unique content-hash insert:
// another writer persisted the same document between our existence check and
// insert. Callers should retry the upsert once and treat the now-visible
// existing row as success; UpsertDocument already does this internally.
type StoreConflictError struct {
	Hash  string
	Cause error
}

func (e *StoreConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("conflicting insert for content hash %s: %v", e.Hash, e.Cause)
	}
	return fmt.Sprintf("conflicting insert for content hash %s", e.Hash)
}

func (e *StoreConflictError) Unwrap() error {
	return e.Cause
}
