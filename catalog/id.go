package catalog

import (
	"encoding/base64"
	"slices"

	"github.com/google/uuid"
)

// IDFunc generates an identifier distinct from every id in existing.
// Resolution takes one so tests can inject deterministic ids.
type IDFunc func(existing []string) string

// NewID returns an 11-character id over the alphabet [A-Za-z0-9_-] that does
// not collide with any existing id. Randomness comes from a v4 UUID encoded
// as base64url and truncated; 66 bits is plenty for catalogs this size, and
// the collision loop covers the rest.
func NewID(existing []string) string {
	for {
		u := uuid.New()
		id := base64.RawURLEncoding.EncodeToString(u[:])[:11]
		if !slices.Contains(existing, id) {
			return id
		}
	}
}

func artistIDs(artists []*Artist) []string {
	ids := make([]string, 0, len(artists))
	for _, a := range artists {
		ids = append(ids, a.ArtistID)
	}
	return ids
}

func songIDs(songs []*Song) []string {
	ids := make([]string, 0, len(songs))
	for _, s := range songs {
		ids = append(ids, s.SongID)
	}
	return ids
}
