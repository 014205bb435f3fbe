package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"setlist/catalog"
	"setlist/config"
	"setlist/ingest"
	"setlist/storage"
	"setlist/youtube"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "update":
		cmdUpdate(args)
	case "sync":
		cmdSync(args)
	case "backfill":
		cmdBackfill(args)
	case "link":
		cmdLink(args)
	case "list":
		cmdList(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `setlist - karaoke stream setlist extractor

Usage:
  setlist update [flags] <video-id>   Extract the setlist for one video
  setlist sync                        Ingest new karaoke streams and prune removed ones
  setlist backfill [flags]            Walk the channel's full upload history
  setlist link [flags]                Manually link songs to an artist
  setlist list                        List stored videos
  setlist help                        Show this help message

Examples:
  setlist update dQw4w9WgXcQ                       # Parse description or comments
  setlist update dQw4w9WgXcQ --user-comment        # Force viewer comments
  setlist sync                                     # Pick up new streams
  setlist backfill --batch-size 20 --batch-start 40 # Resume a historical run
  setlist link --artist "YOASOBI" --song "夜に駆ける"
  setlist link --file links.json                   # Bulk link from a JSON file

For help on specific command: setlist <command> -h
`)
}

// loadPipeline wires up the API client, store, and processor shared by most
// commands.
func loadPipeline(ctx context.Context) (*config.Config, *youtube.Client, *storage.JSONStore, *ingest.Processor) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client, err := youtube.NewClient(ctx, cfg.APIKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating YouTube client: %v\n", err)
		os.Exit(1)
	}

	store := storage.NewJSONStore(cfg.DataDir)
	return cfg, client, store, ingest.NewProcessor(client, store)
}

func cmdUpdate(args []string) {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	userComment := fs.Bool("user-comment", false, "Take timestamps from viewer comments even if the description has them")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: setlist update [flags] <video-id>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing video-id\n")
		fs.Usage()
		os.Exit(1)
	}

	videoID := argv[0]

	ctx := context.Background()
	_, _, _, proc := loadPipeline(ctx)

	fmt.Fprintf(os.Stderr, "Processing %s...\n", videoID)
	result, err := proc.ProcessVideo(ctx, videoID, ingest.Options{ForceUserComments: *userComment})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing video: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Video:      %s\n", result.Video.Title)
	fmt.Printf("Source:     %s\n", result.Source)
	fmt.Printf("Timestamps: %d\n", len(result.Video.Timestamps))
	fmt.Printf("New songs:  %d\n", result.NewSongs)
	fmt.Printf("New artists: %d\n", result.NewArtists)
}

func cmdSync(args []string) {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: setlist sync\n")
	}
	fs.Parse(args)

	ctx := context.Background()
	cfg, client, store, proc := loadPipeline(ctx)
	if cfg.ChannelID == "" {
		fmt.Fprintf(os.Stderr, "Error: YOUTUBE_CHANNEL_ID is not set\n")
		os.Exit(1)
	}

	runner := ingest.NewRunner(client, proc, store, cfg.KaraokeKeyword, cfg.VideoDelay)

	fmt.Fprintf(os.Stderr, "Syncing channel %s...\n", cfg.ChannelID)
	result, err := runner.SyncNew(ctx, cfg.ChannelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error syncing: %v\n", err)
		os.Exit(1)
	}

	printBatchResult(result)
}

func cmdBackfill(args []string) {
	fs := flag.NewFlagSet("backfill", flag.ExitOnError)
	batchSize := fs.Int("batch-size", 0, "Videos per run (0 = all)")
	batchStart := fs.Int("batch-start", 0, "Matching streams to skip before processing")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: setlist backfill [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	ctx := context.Background()
	cfg, client, store, proc := loadPipeline(ctx)
	if cfg.ChannelID == "" {
		fmt.Fprintf(os.Stderr, "Error: YOUTUBE_CHANNEL_ID is not set\n")
		os.Exit(1)
	}

	runner := ingest.NewRunner(client, proc, store, cfg.KaraokeKeyword, cfg.VideoDelay)

	fmt.Fprintf(os.Stderr, "Backfilling channel %s...\n", cfg.ChannelID)
	result, err := runner.Backfill(ctx, cfg.ChannelID, ingest.BackfillOptions{
		BatchSize:  *batchSize,
		BatchStart: *batchStart,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error backfilling: %v\n", err)
		os.Exit(1)
	}

	printBatchResult(result)
}

func cmdLink(args []string) {
	fs := flag.NewFlagSet("link", flag.ExitOnError)
	artist := fs.String("artist", "", "Artist name")
	song := fs.String("song", "", "Song title to link to --artist")
	file := fs.String("file", "", `JSON file with [{"artist": ..., "songs": [...]}] entries`)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: setlist link [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	var links []catalog.SongLink
	switch {
	case *file != "":
		data, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *file, err)
			os.Exit(1)
		}
		if err := json.Unmarshal(data, &links); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", *file, err)
			os.Exit(1)
		}
	case *artist != "" && *song != "":
		links = []catalog.SongLink{{Artist: *artist, Songs: []string{*song}}}
	default:
		fmt.Fprintf(os.Stderr, "Error: provide --file, or both --artist and --song\n")
		fs.Usage()
		os.Exit(1)
	}

	// Linking is storage-only, no API key needed.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	store := storage.NewJSONStore(cfg.DataDir)

	artists, err := store.LoadArtists()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading artists: %v\n", err)
		os.Exit(1)
	}
	songs, err := store.LoadSongs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading songs: %v\n", err)
		os.Exit(1)
	}

	changed := catalog.LinkAll(links, songs, artists, catalog.NewID)
	if changed == 0 {
		fmt.Println("Nothing to do, all pairings already exist.")
		return
	}

	if err := store.SaveSongs(songs); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving songs: %v\n", err)
		os.Exit(1)
	}
	if err := store.SaveArtists(artists); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving artists: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Linked %d song(s).\n", changed)
}

func cmdList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: setlist list\n")
	}
	fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	store := storage.NewJSONStore(cfg.DataDir)

	ids, err := store.ListVideoIDs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing videos: %v\n", err)
		os.Exit(1)
	}

	if len(ids) == 0 {
		fmt.Println("No videos stored.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VIDEO ID\tDATE\tSONGS\tTITLE")

	for _, id := range ids {
		video, err := store.LoadVideo(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load %s: %v\n", id, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			video.VideoID,
			truncate(video.StartDatetime, 10),
			len(video.Timestamps),
			truncate(video.Title, 50),
		)
	}
	w.Flush()

	fmt.Fprintf(os.Stderr, "\nTotal: %d videos\n", len(ids))
}

func printBatchResult(r *ingest.BatchResult) {
	fmt.Printf("Processed: %d\n", r.Processed)
	fmt.Printf("Skipped:   %d\n", r.Skipped)
	fmt.Printf("Failed:    %d\n", r.Failed)
	if r.Pruned > 0 {
		fmt.Printf("Pruned:    %d\n", r.Pruned)
	}
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
