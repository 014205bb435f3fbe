package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"setlist/catalog"
)

// JSONStore reads and writes the data directory layout the front-end viewer
// is built against:
//
//	<dir>/artists.json
//	<dir>/songs.json
//	<dir>/videos/<video_id>.json
//	<dir>/api/videos-list.json
type JSONStore struct {
	dir string
}

// NewJSONStore creates a store rooted at dir. Directories are created lazily
// on first write.
func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: dir}
}

func (s *JSONStore) artistsPath() string    { return filepath.Join(s.dir, "artists.json") }
func (s *JSONStore) songsPath() string      { return filepath.Join(s.dir, "songs.json") }
func (s *JSONStore) videosDir() string      { return filepath.Join(s.dir, "videos") }
func (s *JSONStore) videosListPath() string { return filepath.Join(s.dir, "api", "videos-list.json") }

func (s *JSONStore) videoPath(videoID string) string {
	return filepath.Join(s.videosDir(), videoID+".json")
}

// LoadArtists reads the artist catalog, returning an empty catalog if the
// file does not exist yet.
func (s *JSONStore) LoadArtists() (*catalog.Artists, error) {
	out := &catalog.Artists{}
	if err := s.readJSON(s.artistsPath(), "artists", out); err != nil {
		return nil, err
	}
	if out.Artists == nil {
		out.Artists = []*catalog.Artist{}
	}
	return out, nil
}

// LoadSongs reads the song catalog, returning an empty catalog if the file
// does not exist yet.
func (s *JSONStore) LoadSongs() (*catalog.Songs, error) {
	out := &catalog.Songs{}
	if err := s.readJSON(s.songsPath(), "songs", out); err != nil {
		return nil, err
	}
	if out.Songs == nil {
		out.Songs = []*catalog.Song{}
	}
	return out, nil
}

// SaveArtists rewrites the artist catalog in full.
func (s *JSONStore) SaveArtists(artists *catalog.Artists) error {
	return s.writeJSON(s.artistsPath(), "artists", "", artists)
}

// SaveSongs rewrites the song catalog in full.
func (s *JSONStore) SaveSongs(songs *catalog.Songs) error {
	return s.writeJSON(s.songsPath(), "songs", "", songs)
}

// SaveVideo rewrites one video record in full.
func (s *JSONStore) SaveVideo(video *Video) error {
	return s.writeJSON(s.videoPath(video.VideoID), "video", video.VideoID, video)
}

// LoadVideo reads one stored video record.
func (s *JSONStore) LoadVideo(videoID string) (*Video, error) {
	data, err := os.ReadFile(s.videoPath(videoID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &StorageError{Op: "read", Entity: "video", ID: videoID, Err: ErrNotFound}
		}
		return nil, &StorageError{Op: "read", Entity: "video", ID: videoID, Err: err}
	}
	video := &Video{}
	if err := json.Unmarshal(data, video); err != nil {
		return nil, &StorageError{Op: "read", Entity: "video", ID: videoID, Err: err}
	}
	return video, nil
}

// VideoExists reports whether a record for videoID is already stored.
func (s *JSONStore) VideoExists(videoID string) bool {
	_, err := os.Stat(s.videoPath(videoID))
	return err == nil
}

// DeleteVideo removes a stored video record. Deleting a record that does not
// exist is not an error.
func (s *JSONStore) DeleteVideo(videoID string) error {
	err := os.Remove(s.videoPath(videoID))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return &StorageError{Op: "delete", Entity: "video", ID: videoID, Err: err}
	}
	return nil
}

// ListVideoIDs returns the ids of all stored videos, sorted.
func (s *JSONStore) ListVideoIDs() ([]string, error) {
	entries, err := os.ReadDir(s.videosDir())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &StorageError{Op: "list", Entity: "video", Err: err}
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// WriteVideosList regenerates api/videos-list.json from the stored videos.
func (s *JSONStore) WriteVideosList(channelID string) error {
	ids, err := s.ListVideoIDs()
	if err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}
	list := &VideosList{
		Videos:      ids,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		ChannelID:   channelID,
	}
	return s.writeJSON(s.videosListPath(), "videos_list", "", list)
}

func (s *JSONStore) readJSON(path, entity string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &StorageError{Op: "read", Entity: entity, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &StorageError{Op: "read", Entity: entity, Err: err}
	}
	return nil
}

func (s *JSONStore) writeJSON(path, entity, id string, v any) error {
	writer, err := NewAtomicWriter(path)
	if err != nil {
		return &StorageError{Op: "write", Entity: entity, ID: id, Err: err}
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		writer.Abort()
		return &StorageError{Op: "write", Entity: entity, ID: id, Err: err}
	}
	if err := writer.Commit(); err != nil {
		return &StorageError{Op: "write", Entity: entity, ID: id, Err: err}
	}
	return nil
}
