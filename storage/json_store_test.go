package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"setlist/catalog"
)

func TestJSONStore_LoadArtists_MissingFile(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	artists, err := store.LoadArtists()
	if err != nil {
		t.Fatalf("LoadArtists() error = %v", err)
	}
	if artists.Artists == nil {
		t.Error("LoadArtists() Artists = nil, want empty slice")
	}
	if len(artists.Artists) != 0 {
		t.Errorf("LoadArtists() len = %d, want 0", len(artists.Artists))
	}
}

func TestJSONStore_ArtistsRoundTrip(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	in := &catalog.Artists{Artists: []*catalog.Artist{
		{ArtistID: "artist00001", Name: "米津玄師", Aliases: []string{"ハチ"}},
		{ArtistID: "artist00002", Name: "YOASOBI"},
	}}
	if err := store.SaveArtists(in); err != nil {
		t.Fatalf("SaveArtists() error = %v", err)
	}

	out, err := store.LoadArtists()
	if err != nil {
		t.Fatalf("LoadArtists() error = %v", err)
	}
	if len(out.Artists) != 2 {
		t.Fatalf("LoadArtists() len = %d, want 2", len(out.Artists))
	}
	if out.Artists[0].Name != "米津玄師" || out.Artists[0].Aliases[0] != "ハチ" {
		t.Errorf("loaded artist = %+v, want 米津玄師 with alias ハチ", out.Artists[0])
	}
}

func TestJSONStore_SongsRoundTrip(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	in := &catalog.Songs{Songs: []*catalog.Song{
		{
			SongID:          "song0000001",
			Title:           "夜に駆ける",
			ArtistIDs:       []string{"artist00001"},
			AlternateTitles: []string{"Yoru ni Kakeru"},
		},
	}}
	if err := store.SaveSongs(in); err != nil {
		t.Fatalf("SaveSongs() error = %v", err)
	}

	out, err := store.LoadSongs()
	if err != nil {
		t.Fatalf("LoadSongs() error = %v", err)
	}
	if len(out.Songs) != 1 {
		t.Fatalf("LoadSongs() len = %d, want 1", len(out.Songs))
	}
	got := out.Songs[0]
	if got.Title != "夜に駆ける" || got.ArtistIDs[0] != "artist00001" {
		t.Errorf("loaded song = %+v", got)
	}
}

func TestJSONStore_VideoRoundTrip(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	video := &Video{
		VideoID:       "dQw4w9WgXcQ",
		Title:         "【歌枠】夜の歌枠",
		StartDatetime: "2024-03-01T12:00:00Z",
		ThumbnailURL:  "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		Timestamps: []VideoTimestamp{
			{Time: 325, OriginalTime: "5:25", SongID: "song0000001", CommentSource: "description"},
		},
	}
	if err := store.SaveVideo(video); err != nil {
		t.Fatalf("SaveVideo() error = %v", err)
	}

	if !store.VideoExists("dQw4w9WgXcQ") {
		t.Error("VideoExists() = false after save")
	}

	loaded, err := store.LoadVideo("dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("LoadVideo() error = %v", err)
	}
	if loaded.Title != video.Title || len(loaded.Timestamps) != 1 {
		t.Errorf("LoadVideo() = %+v", loaded)
	}
	if loaded.Timestamps[0].CommentSource != "description" {
		t.Errorf("CommentSource = %q, want %q", loaded.Timestamps[0].CommentSource, "description")
	}
}

func TestJSONStore_LoadVideo_NotFound(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	_, err := store.LoadVideo("missing00001")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadVideo() error = %v, want ErrNotFound", err)
	}

	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("LoadVideo() error type = %T, want *StorageError", err)
	}
	if storageErr.Entity != "video" || storageErr.ID != "missing00001" {
		t.Errorf("StorageError = %+v", storageErr)
	}
}

func TestJSONStore_DeleteVideo(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	video := &Video{VideoID: "abc12345678", Title: "test"}
	if err := store.SaveVideo(video); err != nil {
		t.Fatalf("SaveVideo() error = %v", err)
	}
	if err := store.DeleteVideo("abc12345678"); err != nil {
		t.Fatalf("DeleteVideo() error = %v", err)
	}
	if store.VideoExists("abc12345678") {
		t.Error("VideoExists() = true after delete")
	}

	// Deleting again is not an error.
	if err := store.DeleteVideo("abc12345678"); err != nil {
		t.Errorf("DeleteVideo() second call error = %v", err)
	}
}

func TestJSONStore_ListVideoIDs(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	ids, err := store.ListVideoIDs()
	if err != nil {
		t.Fatalf("ListVideoIDs() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ListVideoIDs() on empty store = %v, want none", ids)
	}

	for _, id := range []string{"video000002", "video000001", "video000003"} {
		if err := store.SaveVideo(&Video{VideoID: id}); err != nil {
			t.Fatalf("SaveVideo(%s) error = %v", id, err)
		}
	}

	ids, err = store.ListVideoIDs()
	if err != nil {
		t.Fatalf("ListVideoIDs() error = %v", err)
	}
	want := []string{"video000001", "video000002", "video000003"}
	if len(ids) != 3 {
		t.Fatalf("ListVideoIDs() len = %d, want 3", len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ListVideoIDs()[%d] = %q, want %q (sorted)", i, ids[i], want[i])
		}
	}
}

func TestJSONStore_WriteVideosList(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(dir)

	if err := store.SaveVideo(&Video{VideoID: "video000001"}); err != nil {
		t.Fatalf("SaveVideo() error = %v", err)
	}
	if err := store.WriteVideosList("UCtestchannel"); err != nil {
		t.Fatalf("WriteVideosList() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "api", "videos-list.json"))
	if err != nil {
		t.Fatalf("read videos-list.json: %v", err)
	}

	var list VideosList
	if err := json.Unmarshal(data, &list); err != nil {
		t.Fatalf("parse videos-list.json: %v", err)
	}
	if len(list.Videos) != 1 || list.Videos[0] != "video000001" {
		t.Errorf("Videos = %v, want [video000001]", list.Videos)
	}
	if list.ChannelID != "UCtestchannel" {
		t.Errorf("ChannelID = %q, want %q", list.ChannelID, "UCtestchannel")
	}
	if list.GeneratedAt == "" {
		t.Error("GeneratedAt is empty")
	}
}

func TestJSONStore_OutputFormat(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(dir)

	in := &catalog.Songs{Songs: []*catalog.Song{
		{SongID: "song0000001", Title: "<title> & more", ArtistIDs: []string{}},
	}}
	if err := store.SaveSongs(in); err != nil {
		t.Fatalf("SaveSongs() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "songs.json"))
	if err != nil {
		t.Fatalf("read songs.json: %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "\n  \"songs\"") {
		t.Error("songs.json is not two-space indented")
	}
	// HTML escaping is off so titles stay human-readable.
	if !strings.Contains(text, "<title> & more") {
		t.Errorf("songs.json escaped HTML characters:\n%s", text)
	}
}
