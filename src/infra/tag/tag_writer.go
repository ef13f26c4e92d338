// Package tag embeds basic ID3v2 metadata into downloaded mp3 files.
package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bogem/id3v2/v2"

	"github.com/Syntox32/Soundloader/src/features/downloading"
	"github.com/Syntox32/Soundloader/src/music"
)

// TagWriter implements writing tags into mp3 files.
type TagWriter struct{}

// NewTagWriter creates a new TagWriter.
func NewTagWriter() downloading.TagWriter {
	return &TagWriter{}
}

// WriteFileTags writes the track title and uploader into the file's
// ID3v2 header. The audio data itself is never touched.
func (t *TagWriter) WriteFileTags(ctx context.Context, filePath string, track music.Track) error {
	file, err := id3v2.Open(filePath, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open %s for tagging: %w", filePath, err)
	}
	defer file.Close()

	file.SetDefaultEncoding(id3v2.EncodingUTF8)
	file.SetTitle(track.Title)
	file.SetArtist(track.Uploader)

	if err := file.Save(); err != nil {
		return fmt.Errorf("failed to save tags to %s: %w", filePath, err)
	}
	slog.Debug("Tagged file", "path", filePath, "title", track.Title, "artist", track.Uploader)
	return nil
}
