package catalog

import (
	"slices"
	"strings"
)

// SongLink groups song titles under one artist for bulk linking.
type SongLink struct {
	Artist string   `json:"artist"`
	Songs  []string `json:"songs"`
}

// LinkSongArtist associates a song title with an artist, creating either
// record as needed. Linking is stricter than ResolveSong: it never attaches
// the artist to an existing record, a title already present without this
// artist gets a brand-new Song so that manual links cannot merge two
// artists' songs. Returns false when the pairing already exists or either
// name is blank.
func LinkSongArtist(songTitle, artistName string, songs *Songs, artists *Artists, newID IDFunc) bool {
	if strings.TrimSpace(songTitle) == "" || strings.TrimSpace(artistName) == "" {
		return false
	}

	res := ResolveArtist(artistName, artists.Artists, newID)

	want := Normalize(songTitle)
	for _, s := range songs.Songs {
		if Normalize(s.Title) == want && slices.Contains(s.ArtistIDs, res.ArtistID) {
			return false
		}
	}

	songs.Songs = append(songs.Songs, &Song{
		SongID:    newID(songIDs(songs.Songs)),
		Title:     songTitle,
		ArtistIDs: []string{res.ArtistID},
	})
	if res.IsNew {
		artists.Artists = append(artists.Artists, &Artist{ArtistID: res.ArtistID, Name: artistName})
	}
	return true
}

// LinkAll applies a list of artist-to-songs mappings and returns how many
// pairs changed the catalogs.
func LinkAll(links []SongLink, songs *Songs, artists *Artists, newID IDFunc) int {
	changed := 0
	for _, link := range links {
		for _, title := range link.Songs {
			if LinkSongArtist(title, link.Artist, songs, artists, newID) {
				changed++
			}
		}
	}
	return changed
}
