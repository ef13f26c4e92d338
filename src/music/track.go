package music

// Track is the metadata needed to retrieve a single track: the opaque
// service id plus the title and uploader used to derive a filename.
// The id may arrive from the API as a JSON number or a string; it is
// kept as text and never interpreted.
type Track struct {
	ID       string
	Title    string
	Uploader string
}

// Like is one entry of a user's likes list, in the reverse-chronological
// order the API returns. Track is nil when the like points at deleted or
// unavailable content.
type Like struct {
	Track *Track
}

// StreamLocation is the outcome of a stream lookup for a track.
// Available is false when the service offers no progressive-download
// stream for it (adaptive-only tracks); that is an expected condition,
// not an error.
type StreamLocation struct {
	URL       string
	Available bool
}
