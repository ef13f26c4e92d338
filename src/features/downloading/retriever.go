package downloading

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Syntox32/Soundloader/src/features/config"
	"github.com/Syntox32/Soundloader/src/music"
)

// StreamSource locates and fetches raw audio streams.
type StreamSource interface {
	StreamInfo(ctx context.Context, trackID string) (music.StreamLocation, error)
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Retriever downloads a single track to disk under its sanitized name.
type Retriever struct {
	source        StreamSource
	configManager *config.Manager
}

// NewRetriever creates a new retriever.
func NewRetriever(source StreamSource, cfgManager *config.Manager) *Retriever {
	return &Retriever{
		source:        source,
		configManager: cfgManager,
	}
}

// DestinationPath returns where the track would be written: the save
// folder joined with the sanitized filename, or the filename alone when
// no folder is configured.
func (r *Retriever) DestinationPath(track music.Track) string {
	filename := TrackFilename(track.Title, track.Uploader)
	if folder := r.configManager.Get().SaveFolder; folder != "" {
		return filepath.Join(folder, filename)
	}
	return filename
}

// Retrieve downloads one track. The existence check runs before the
// stream lookup so a skipped file costs no API call. The error carries
// the cause when the outcome is TransportFailed and is nil otherwise.
func (r *Retriever) Retrieve(ctx context.Context, track music.Track) (Outcome, error) {
	cfg := r.configManager.Get()
	path := r.DestinationPath(track)
	name := DisplayName(filepath.Base(path))

	if _, err := os.Stat(path); err == nil && !cfg.Overwrite {
		slog.Info("File already exists, skipping", "file", name)
		return SkippedExists, nil
	}

	location, err := r.source.StreamInfo(ctx, track.ID)
	if err != nil {
		return TransportFailed, err
	}
	if !location.Available {
		slog.Warn("No HTTP stream for track", "id", track.ID, "file", name)
		return NoStream, nil
	}

	slog.Info("Downloading track", "file", name)
	data, err := r.source.Fetch(ctx, location.URL)
	if err != nil {
		return TransportFailed, err
	}
	if len(data) == 0 {
		return TransportFailed, fmt.Errorf("empty stream body for track %s", track.ID)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return TransportFailed, fmt.Errorf("failed to write %s: %w", path, err)
	}
	slog.Info("Track download completed", "file", name, "bytes", len(data))
	return Success, nil
}
