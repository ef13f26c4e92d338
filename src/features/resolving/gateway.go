package resolving

import "context"

// Gateway is the remote API surface the resolver needs. Implementations
// decode responses into Documents with every field optional: the
// service answers well-formed but partial documents for private or
// deleted content, and telling those apart from transport failures is
// the resolver's job.
type Gateway interface {
	Resolve(ctx context.Context, reference string) (*Document, error)
	Likes(ctx context.Context, userID string, limit int) ([]LikeEntry, error)
}

// Document is a decoded resolve response. The resolve endpoint is
// overloaded: it answers track URLs, set URLs and profile URLs with one
// shape, so any field here may be empty. Set responses carry their
// member tracks as nested documents.
type Document struct {
	ID       string
	Title    string
	Uploader string
	Tracks   []Document
}

// LikeEntry is one element of a likes collection. Track is nil when the
// like points at content that no longer exists.
type LikeEntry struct {
	Track *Document
}
