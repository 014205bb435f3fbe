// Package catalog holds the shared artist and song collections and the
// find-or-create resolution logic that maps parsed names onto them.
//
// Both catalogs are ordered sequences: when several entries match the same
// normalized name, the first one in catalog order wins. That tie-break is
// load-bearing, so the collections are slices, never maps.
package catalog

// Artist is a catalog entry for a performer or original artist. Identity is
// the normalized name or any normalized alias.
type Artist struct {
	ArtistID string   `json:"artist_id"`
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases,omitempty"`
}

// Song is a catalog entry for a performed song. Identity is the normalized
// title (or any normalized alternate title) combined with artist overlap;
// two different artists can share a title. ArtistIDs never contains
// duplicates.
type Song struct {
	SongID          string   `json:"song_id"`
	Title           string   `json:"title"`
	ArtistIDs       []string `json:"artist_ids"`
	AlternateTitles []string `json:"alternate_titles,omitempty"`
}

// Artists is the persisted artist catalog.
type Artists struct {
	Artists []*Artist `json:"artists"`
}

// Songs is the persisted song catalog.
type Songs struct {
	Songs []*Song `json:"songs"`
}
