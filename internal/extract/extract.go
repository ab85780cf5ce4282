package extract

// Package extract adapts the ytdlp library into the Extractor contract the
// orchestrator consumes: resolve a URL to playable media, stream it to disk
// under a title-derived filename, and report byte progress.

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ytget/ytdlp/v2"
	"github.com/ytget/ytdlp/v2/downloader"
	"github.com/ytget/ytdlp/v2/types"

	"github.com/Momossini/DeoDer/internal/sanitize"
)

// URL templates
const (
	watchURLTemplate = "https://www.youtube.com/watch?v=%s"
	playlistURLParam = "list"
	maxPlaylistItems = 1000
)

// ProgressFunc receives byte-level progress for the transfer in flight.
// A zero or negative total means the total size is unknown.
type ProgressFunc func(done, total int64)

// Result describes a completed extraction.
type Result struct {
	Title      string
	OutputPath string // path of the last file written
	Items      int    // number of media files written (playlists yield several)
}

// YTDLP downloads media via the ytdlp library. It supports single videos and
// playlists; playlist entries are downloaded sequentially.
type YTDLP struct {
	outputDir string
	log       *slog.Logger
}

// NewYTDLP creates an extractor writing media files into outputDir
func NewYTDLP(outputDir string) *YTDLP {
	return &YTDLP{
		outputDir: outputDir,
		log:       slog.Default(),
	}
}

// Download resolves rawURL and streams the media to disk, invoking fn with
// byte progress. Playlist URLs are expanded and every entry is downloaded.
func (e *YTDLP) Download(ctx context.Context, rawURL string, fn ProgressFunc) (*Result, error) {
	if id := playlistID(rawURL); id != "" {
		return e.downloadPlaylist(ctx, id, fn)
	}
	return e.downloadOne(ctx, rawURL, fn)
}

func (e *YTDLP) downloadOne(ctx context.Context, rawURL string, fn ProgressFunc) (*Result, error) {
	d := ytdlp.New()
	finalURL, info, err := d.ResolveURL(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("resolve failed: %w", err)
	}

	name := sanitize.ToSafeFilename(info.Title, extForURL(finalURL, info.Formats))
	outputPath := filepath.Join(e.outputDir, name)

	dl := downloader.New(nil, func(p downloader.Progress) {
		if fn != nil {
			fn(p.DownloadedSize, p.TotalSize)
		}
	}, 0)

	if err := dl.Download(ctx, finalURL, outputPath); err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}

	e.log.Info("download complete", "url", rawURL, "output", outputPath)
	return &Result{Title: info.Title, OutputPath: outputPath, Items: 1}, nil
}

func (e *YTDLP) downloadPlaylist(ctx context.Context, id string, fn ProgressFunc) (*Result, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, id, maxPlaylistItems)
	if err != nil {
		return nil, fmt.Errorf("playlist expansion failed: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("playlist %s has no items", id)
	}

	e.log.Info("expanding playlist", "playlist", id, "items", len(items))

	result := &Result{Title: items[0].Title}
	for _, item := range items {
		one, err := e.downloadOne(ctx, watchURL(item.VideoID), fn)
		if err != nil {
			return nil, fmt.Errorf("playlist item %d (%s): %w", item.Index, item.VideoID, err)
		}
		result.OutputPath = one.OutputPath
		result.Items++
	}
	return result, nil
}

// playlistID extracts the playlist ID from a URL, or "" if it is not one
func playlistID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get(playlistURLParam)
}

// watchURL builds a canonical video URL from a playlist item's video ID
func watchURL(videoID string) string {
	return fmt.Sprintf(watchURLTemplate, videoID)
}

// extForURL infers the native file extension for the resolved media URL from
// the format whose itag appears in it, falling back to the first format.
func extForURL(finalURL string, formats []types.Format) string {
	var chosen types.Format
	if len(formats) > 0 {
		chosen = formats[0]
		for _, f := range formats {
			if strings.Contains(finalURL, strconv.Itoa(f.Itag)) {
				chosen = f
				break
			}
		}
	}
	return extFromMime(chosen.MimeType)
}

// extFromMime maps a MIME type (possibly with codec parameters) to a file
// extension without the dot.
func extFromMime(mimeType string) string {
	mt := mimeType
	if idx := strings.Index(mt, ";"); idx >= 0 {
		mt = mt[:idx]
	}
	mt = strings.TrimSpace(strings.ToLower(mt))

	switch mt {
	case "video/mp4":
		return "mp4"
	case "video/webm":
		return "webm"
	case "video/3gpp":
		return "3gp"
	case "audio/mp4":
		return "m4a"
	case "audio/webm":
		return "weba"
	default:
		return sanitize.DefaultExt
	}
}
