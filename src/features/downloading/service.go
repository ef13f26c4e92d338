package downloading

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Syntox32/Soundloader/src/features/config"
	"github.com/Syntox32/Soundloader/src/music"
)

// Resolver turns user-supplied references into track metadata.
type Resolver interface {
	ResolveTrack(ctx context.Context, reference string) (music.Track, error)
	ResolveSet(ctx context.Context, reference string) ([]music.Track, error)
	ResolveLikes(ctx context.Context, username string, limit int) ([]music.Like, error)
}

// Service drives the retrieval pipeline across whole references: a
// single track, a set, or a user's likes list.
type Service struct {
	configManager *config.Manager
	resolver      Resolver
	retriever     *Retriever
	tagWriter     TagWriter
}

// NewService creates a new downloading service. tagWriter may be nil.
func NewService(cfgManager *config.Manager, resolver Resolver, retriever *Retriever, tagWriter TagWriter) *Service {
	return &Service{
		configManager: cfgManager,
		resolver:      resolver,
		retriever:     retriever,
		tagWriter:     tagWriter,
	}
}

// DownloadTrack resolves and retrieves a single track reference.
func (s *Service) DownloadTrack(ctx context.Context, reference string) (RunStatistics, error) {
	track, err := s.resolver.ResolveTrack(ctx, reference)
	if err != nil {
		return RunStatistics{}, err
	}
	return s.RunBatch(ctx, []*music.Track{&track}, 0), nil
}

// DownloadSet resolves a set and retrieves up to limit of its tracks in
// list order. A limit of zero or less means the whole set.
func (s *Service) DownloadSet(ctx context.Context, reference string, limit int) (RunStatistics, error) {
	tracks, err := s.resolver.ResolveSet(ctx, reference)
	if err != nil {
		return RunStatistics{}, err
	}
	items := make([]*music.Track, len(tracks))
	for i := range tracks {
		items[i] = &tracks[i]
	}
	return s.RunBatch(ctx, items, limit), nil
}

// DownloadLikes retrieves up to limit of a user's liked tracks, newest
// first as the API serves them. A limit of zero or less falls back to
// the configured default; the likes endpoint always takes a bound.
func (s *Service) DownloadLikes(ctx context.Context, username string, limit int) (RunStatistics, error) {
	if limit <= 0 {
		limit = s.configManager.Get().LikesLimit
	}
	likes, err := s.resolver.ResolveLikes(ctx, username, limit)
	if err != nil {
		return RunStatistics{}, err
	}
	items := make([]*music.Track, len(likes))
	for i, like := range likes {
		items[i] = like.Track
	}
	return s.RunBatch(ctx, items, limit), nil
}

// RunBatch retrieves items strictly in the order given, one at a time.
// A limit above zero bounds attempted retrievals; nil items (likes of
// deleted tracks) are skipped without consuming it.
func (s *Service) RunBatch(ctx context.Context, items []*music.Track, limit int) RunStatistics {
	log := slog.With("run", uuid.New().String())

	var stats RunStatistics
	for _, track := range items {
		if limit > 0 && stats.Attempted >= limit {
			break
		}
		if track == nil {
			log.Debug("Skipping like of unavailable track")
			continue
		}
		stats.Attempted++
		outcome, err := s.retriever.Retrieve(ctx, *track)
		if err != nil {
			log.Error("Failed to retrieve track", "id", track.ID, "outcome", outcome, "error", err)
		}
		stats.record(outcome)
		if outcome == Success {
			s.tagDownloaded(ctx, *track)
		}
	}

	log.Info("Batch finished",
		"attempted", stats.Attempted,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed(),
		"noStream", stats.FailedNoStream,
	)
	return stats
}

func (s *Service) tagDownloaded(ctx context.Context, track music.Track) {
	if s.tagWriter == nil || !s.configManager.Get().Tag.Enabled {
		return
	}
	path := s.retriever.DestinationPath(track)
	if err := s.tagWriter.WriteFileTags(ctx, path, track); err != nil {
		slog.Warn("Failed to tag file", "id", track.ID, "path", path, "error", err)
	}
}
