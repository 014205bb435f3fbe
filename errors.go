package setlist

import (
	"setlist/config"
	"setlist/storage"
	"setlist/timestamp"
	"setlist/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, setlist.ErrVideoNotFound) {
//		fmt.Println("Video not found")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var storageErr *setlist.StorageError
//	if errors.As(err, &storageErr) {
//		fmt.Printf("%s %s failed: %v\n", storageErr.Op, storageErr.Entity, storageErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// StorageError wraps errors during storage operations.
	StorageError = storage.StorageError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrInvalidFormat indicates a timestamp string could not be parsed.
	ErrInvalidFormat = timestamp.ErrInvalidFormat

	// ErrVideoNotFound indicates the YouTube video does not exist.
	ErrVideoNotFound = youtube.ErrVideoNotFound
	// ErrChannelNotFound indicates the YouTube channel does not exist.
	ErrChannelNotFound = youtube.ErrChannelNotFound

	// ErrNotFound indicates an entity was not found in storage.
	ErrNotFound = storage.ErrNotFound

	// ErrMissingAPIKey indicates no YouTube API key was configured.
	ErrMissingAPIKey = config.ErrMissingAPIKey
)
