package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested record does not exist on disk.
var ErrNotFound = errors.New("not found")

// StorageError wraps storage failures with operation and entity context.
// Use errors.As() to extract it:
//
//	var storErr *storage.StorageError
//	if errors.As(err, &storErr) {
//		fmt.Printf("failed to %s %s %s: %v\n", storErr.Op, storErr.Entity, storErr.ID, storErr.Err)
//	}
type StorageError struct {
	// Op is the operation that failed ("read", "write", "delete", "list").
	Op string
	// Entity is the entity type ("artists", "songs", "video", "videos_list").
	Entity string
	// ID is the entity ID if applicable.
	ID string
	// Err is the underlying error.
	Err error
}

func (e *StorageError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("storage: %s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Entity, e.Err)
}

// Unwrap returns the underlying error for errors.Is() and errors.As().
func (e *StorageError) Unwrap() error { return e.Err }
