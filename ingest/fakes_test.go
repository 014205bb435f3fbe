package ingest

import (
	"context"
	"fmt"

	"setlist/catalog"
	"setlist/storage"
	"setlist/youtube"
)

// fakeFetcher serves canned metadata and comments, counting comment fetches
// so tests can assert laziness.
type fakeFetcher struct {
	meta         map[string]*youtube.VideoMetadata
	comments     map[string][]youtube.Comment
	commentCalls int
}

func (f *fakeFetcher) VideoMetadata(_ context.Context, videoID string) (*youtube.VideoMetadata, error) {
	m, ok := f.meta[videoID]
	if !ok {
		return nil, youtube.ErrVideoNotFound
	}
	return m, nil
}

func (f *fakeFetcher) VideoComments(_ context.Context, videoID string) ([]youtube.Comment, error) {
	f.commentCalls++
	return f.comments[videoID], nil
}

// fakeStore is an in-memory Store/VideoIndex recording which collections
// were saved.
type fakeStore struct {
	artists *catalog.Artists
	songs   *catalog.Songs
	videos  map[string]*storage.Video

	artistsSaved int
	songsSaved   int

	listErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		artists: &catalog.Artists{Artists: []*catalog.Artist{}},
		songs:   &catalog.Songs{Songs: []*catalog.Song{}},
		videos:  map[string]*storage.Video{},
	}
}

func (s *fakeStore) LoadArtists() (*catalog.Artists, error) { return s.artists, nil }
func (s *fakeStore) LoadSongs() (*catalog.Songs, error)     { return s.songs, nil }

func (s *fakeStore) SaveArtists(a *catalog.Artists) error {
	s.artists = a
	s.artistsSaved++
	return nil
}

func (s *fakeStore) SaveSongs(songs *catalog.Songs) error {
	s.songs = songs
	s.songsSaved++
	return nil
}

func (s *fakeStore) SaveVideo(v *storage.Video) error {
	s.videos[v.VideoID] = v
	return nil
}

func (s *fakeStore) VideoExists(videoID string) bool {
	_, ok := s.videos[videoID]
	return ok
}

func (s *fakeStore) ListVideoIDs() ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	ids := make([]string, 0, len(s.videos))
	for id := range s.videos {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *fakeStore) DeleteVideo(videoID string) error {
	delete(s.videos, videoID)
	return nil
}

func (s *fakeStore) WriteVideosList(string) error { return nil }

// fakeLister serves canned channel listings.
type fakeLister struct {
	streams     []youtube.StreamInfo
	uploads     []youtube.StreamInfo
	unavailable map[string]bool
}

func (l *fakeLister) ListCompletedStreams(context.Context, string) ([]youtube.StreamInfo, error) {
	return l.streams, nil
}

func (l *fakeLister) ListUploads(context.Context, string) ([]youtube.StreamInfo, error) {
	return l.uploads, nil
}

func (l *fakeLister) IsVideoAvailable(_ context.Context, videoID string) (bool, error) {
	return !l.unavailable[videoID], nil
}

// seqIDs returns an IDFunc handing out prefix1, prefix2, ... padded to the
// catalog's 11-character shape.
func seqIDs(prefix string) catalog.IDFunc {
	n := 0
	return func([]string) string {
		n++
		id := fmt.Sprintf("%s%d", prefix, n)
		for len(id) < 11 {
			id += "_"
		}
		return id
	}
}
