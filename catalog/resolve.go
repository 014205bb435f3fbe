package catalog

import "slices"

// ArtistResolution is the outcome of ResolveArtist.
type ArtistResolution struct {
	ArtistID string
	IsNew    bool
}

// SongResolution is the outcome of ResolveSong.
type SongResolution struct {
	SongID string
	IsNew  bool
	// ArtistsAdded is true when the lookup attached previously-missing
	// artist ids to an existing record, so the caller knows the catalog
	// needs saving even though nothing was created.
	ArtistsAdded bool
}

// ResolveArtist looks name up in the catalog by normalized name or alias,
// first match in catalog order winning. On a miss a fresh id is drawn from
// newID; the caller is responsible for appending the new Artist record, the
// resolver never mutates the catalog.
func ResolveArtist(name string, artists []*Artist, newID IDFunc) ArtistResolution {
	want := Normalize(name)
	for _, a := range artists {
		if Normalize(a.Name) == want {
			return ArtistResolution{ArtistID: a.ArtistID}
		}
		for _, alias := range a.Aliases {
			if Normalize(alias) == want {
				return ArtistResolution{ArtistID: a.ArtistID}
			}
		}
	}
	return ArtistResolution{ArtistID: newID(artistIDs(artists)), IsNew: true}
}

// ResolveSong looks title up in the catalog by normalized title or alternate
// title, then applies the artist-overlap rule: when either side has no
// artists the title alone decides, otherwise the artist sets must intersect.
// A matching title with disjoint non-empty artist sets is not a match — a
// different artist's song merely shares the name.
//
// On a match the incoming artist ids are unioned into the matched record in
// place. On a miss a fresh id is drawn from newID and the caller appends the
// new Song record.
func ResolveSong(title string, artistIDs []string, songs []*Song, newID IDFunc) SongResolution {
	want := Normalize(title)
	for _, s := range songs {
		if !titleMatches(s, want) {
			continue
		}
		if !artistsOverlap(s.ArtistIDs, artistIDs) {
			continue
		}
		before := len(s.ArtistIDs)
		s.ArtistIDs = unionIDs(s.ArtistIDs, artistIDs)
		return SongResolution{SongID: s.SongID, ArtistsAdded: len(s.ArtistIDs) > before}
	}
	return SongResolution{SongID: newID(songIDs(songs)), IsNew: true}
}

func titleMatches(s *Song, normalized string) bool {
	if Normalize(s.Title) == normalized {
		return true
	}
	for _, alt := range s.AlternateTitles {
		if Normalize(alt) == normalized {
			return true
		}
	}
	return false
}

func artistsOverlap(have, want []string) bool {
	if len(have) == 0 || len(want) == 0 {
		return true
	}
	for _, id := range want {
		if slices.Contains(have, id) {
			return true
		}
	}
	return false
}

func unionIDs(dst, add []string) []string {
	for _, id := range add {
		if !slices.Contains(dst, id) {
			dst = append(dst, id)
		}
	}
	return dst
}
