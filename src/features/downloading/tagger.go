package downloading

import (
	"context"

	"github.com/Syntox32/Soundloader/src/music"
)

// TagWriter defines the interface for writing metadata tags to music files.
// Tagging sits outside the retrieval pipeline; with tagging disabled the
// file on disk stays byte-identical to the fetched stream.
type TagWriter interface {
	WriteFileTags(ctx context.Context, filePath string, track music.Track) error
}
