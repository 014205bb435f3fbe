// Package setlist extracts karaoke setlists from YouTube streams.
//
// It parses timestamped song lists from video descriptions and viewer
// comments, resolves song and artist identities against a persistent
// catalog, and stores the results as JSON data files.
//
// Overview
//
// The pipeline is split across sub-packages:
//
//   - timestamp: Parse timestamp lines into song records
//   - catalog: Resolve songs and artists against the catalog with
//     normalization, aliases, and alternate titles
//   - youtube: YouTube Data API access (metadata, comments, channel videos)
//   - storage: JSON persistence for videos, songs, and artists
//   - ingest: Orchestration of fetching, source selection, and resolution
//   - config: Configuration management
//
// Quick Start
//
// Process a single video:
//
//	ctx := context.Background()
//	client, err := youtube.NewClient(ctx, apiKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//	store := storage.NewJSONStore("public")
//	proc := ingest.NewProcessor(client, store)
//	result, err := proc.ProcessVideo(ctx, "dQw4w9WgXcQ", ingest.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d timestamps from %s\n", len(result.Video.Timestamps), result.Source)
//
// Configuration
//
// setlist loads settings from multiple sources:
//
//   1. Environment variables (highest priority)
//   2. Config file (setlist.json or ~/.config/setlist/setlist.json)
//   3. Default values (lowest priority)
//
// Environment variables:
//
//   - YOUTUBE_API_KEY: YouTube Data API key (required)
//   - YOUTUBE_CHANNEL_ID: Channel whose streams are ingested
//   - SETLIST_DATA_DIR: Root directory for JSON data files
//   - SETLIST_KARAOKE_KEYWORD: Title keyword identifying karaoke streams
//   - SETLIST_VIDEO_DELAY: Pause between videos in batch runs
//
// A .env file in the working directory is loaded if present.
//
// Error Handling
//
// All operations return errors that implement standard Go error handling:
//
//	if errors.Is(err, setlist.ErrVideoNotFound) {
//		fmt.Println("Video not found")
//	}
//
//	var storageErr *setlist.StorageError
//	if errors.As(err, &storageErr) {
//		fmt.Printf("%s %s failed: %v\n", storageErr.Op, storageErr.Entity, storageErr.Err)
//	}
//
package setlist
