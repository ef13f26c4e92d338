package resolving

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Syntox32/Soundloader/src/music"
)

var (
	// ErrNoTrackData is returned when a resolve response carries no id,
	// which is what the service answers for private, deleted or
	// mistyped tracks.
	ErrNoTrackData = errors.New("could not retrieve track data")

	// ErrSetNotPublic is returned when a set resolves without a track
	// list. The common cause is a private playlist, so the message
	// stays distinct from the generic track failure.
	ErrSetNotPublic = errors.New("could not retrieve set data, the playlist may not be public")

	// ErrNoUserID is returned when a profile lookup yields no id.
	ErrNoUserID = errors.New("could not resolve username to a user id")
)

// Service turns user-supplied references into track metadata.
type Service struct {
	gateway Gateway
	prefix  string
}

// NewService creates a new resolving service. The scheme matches the
// one the gateway was built with so constructed profile URLs resolve
// over the same transport.
func NewService(gateway Gateway, https bool) *Service {
	prefix := "http://"
	if https {
		prefix = "https://"
	}
	return &Service{gateway: gateway, prefix: prefix}
}

// ResolveTrack maps a track reference to its metadata.
func (s *Service) ResolveTrack(ctx context.Context, reference string) (music.Track, error) {
	doc, err := s.gateway.Resolve(ctx, reference)
	if err != nil {
		return music.Track{}, err
	}
	if doc == nil || doc.ID == "" {
		return music.Track{}, ErrNoTrackData
	}
	return trackFromDocument(*doc), nil
}

// ResolveSet maps a set reference to the ordered metadata of its
// tracks. An empty or absent track list is reported as ErrSetNotPublic.
func (s *Service) ResolveSet(ctx context.Context, reference string) ([]music.Track, error) {
	doc, err := s.gateway.Resolve(ctx, reference)
	if err != nil {
		return nil, err
	}
	if doc == nil || len(doc.Tracks) == 0 {
		return nil, ErrSetNotPublic
	}
	tracks := make([]music.Track, 0, len(doc.Tracks))
	for _, entry := range doc.Tracks {
		tracks = append(tracks, trackFromDocument(entry))
	}
	slog.Debug("Resolved set", "tracks", len(tracks))
	return tracks, nil
}

// ResolveUserID maps a username to the opaque user id the likes
// endpoint is keyed by.
func (s *Service) ResolveUserID(ctx context.Context, username string) (string, error) {
	doc, err := s.gateway.Resolve(ctx, s.prefix+"soundcloud.com/"+username)
	if err != nil {
		return "", err
	}
	if doc == nil || doc.ID == "" {
		return "", fmt.Errorf("%w: %s", ErrNoUserID, username)
	}
	return doc.ID, nil
}

// ResolveLikes fetches a user's likes in the order the API returns
// them, keeping nil entries so callers can tell deleted content apart
// from the rest of the list.
func (s *Service) ResolveLikes(ctx context.Context, username string, limit int) ([]music.Like, error) {
	userID, err := s.ResolveUserID(ctx, username)
	if err != nil {
		return nil, err
	}
	entries, err := s.gateway.Likes(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	likes := make([]music.Like, 0, len(entries))
	for _, entry := range entries {
		if entry.Track == nil {
			likes = append(likes, music.Like{})
			continue
		}
		track := trackFromDocument(*entry.Track)
		likes = append(likes, music.Like{Track: &track})
	}
	return likes, nil
}

func trackFromDocument(doc Document) music.Track {
	return music.Track{
		ID:       doc.ID,
		Title:    doc.Title,
		Uploader: doc.Uploader,
	}
}
