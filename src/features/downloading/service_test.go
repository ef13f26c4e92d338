package downloading

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Syntox32/Soundloader/src/music"
)

// fakeResolver is a scripted Resolver that records the limits it is
// asked for.
type fakeResolver struct {
	track      music.Track
	trackErr   error
	set        []music.Track
	setErr     error
	likes      []music.Like
	likesErr   error
	likesLimit int
}

func (f *fakeResolver) ResolveTrack(ctx context.Context, reference string) (music.Track, error) {
	return f.track, f.trackErr
}

func (f *fakeResolver) ResolveSet(ctx context.Context, reference string) ([]music.Track, error) {
	return f.set, f.setErr
}

func (f *fakeResolver) ResolveLikes(ctx context.Context, username string, limit int) ([]music.Like, error) {
	f.likesLimit = limit
	return f.likes, f.likesErr
}

func newTestService(dir string, resolver Resolver, source StreamSource) *Service {
	manager := newTestManager(dir, false)
	return NewService(manager, resolver, NewRetriever(source, manager), nil)
}

func tracks(ids ...string) []*music.Track {
	out := make([]*music.Track, len(ids))
	for i, id := range ids {
		out[i] = &music.Track{ID: id, Title: "Track " + id, Uploader: "Artist"}
	}
	return out
}

func TestRunBatchHonorsLimit(t *testing.T) {
	source := &fakeSource{
		location: music.StreamLocation{URL: "http://cdn.example/x.mp3", Available: true},
		body:     []byte("audio"),
	}
	service := newTestService(t.TempDir(), nil, source)

	stats := service.RunBatch(context.Background(), tracks("1", "2", "3", "4", "5"), 2)
	if stats.Attempted != 2 {
		t.Fatalf("expected 2 attempts, got %d", stats.Attempted)
	}
	if len(source.requestedIDs) != 2 || source.requestedIDs[0] != "1" || source.requestedIDs[1] != "2" {
		t.Errorf("expected the first two items in order, got %v", source.requestedIDs)
	}
}

func TestRunBatchZeroLimitMeansUnbounded(t *testing.T) {
	source := &fakeSource{
		location: music.StreamLocation{URL: "http://cdn.example/x.mp3", Available: true},
		body:     []byte("audio"),
	}
	service := newTestService(t.TempDir(), nil, source)

	stats := service.RunBatch(context.Background(), tracks("1", "2", "3", "4", "5"), 0)
	if stats.Attempted != 5 || stats.Succeeded != 5 {
		t.Fatalf("expected all 5 attempted and succeeded, got %+v", stats)
	}
}

// A nil item is a like pointing at deleted content; it must not consume
// the limit. Three entries with the middle one nil and a limit of two
// should attempt the first and the third.
func TestRunBatchSkipsNilItemsWithoutConsumingLimit(t *testing.T) {
	source := &fakeSource{
		location: music.StreamLocation{URL: "http://cdn.example/x.mp3", Available: true},
		body:     []byte("audio"),
	}
	service := newTestService(t.TempDir(), nil, source)

	items := tracks("1", "2", "3")
	items[1] = nil
	stats := service.RunBatch(context.Background(), items, 2)
	if stats.Attempted != 2 {
		t.Fatalf("expected 2 attempts, got %d", stats.Attempted)
	}
	if len(source.requestedIDs) != 2 || source.requestedIDs[0] != "1" || source.requestedIDs[1] != "3" {
		t.Errorf("expected items 1 and 3, got %v", source.requestedIDs)
	}
}

func TestRunBatchTalliesNoStreamAndGenericSeparately(t *testing.T) {
	dir := t.TempDir()
	manager := newTestManager(dir, false)

	noStream := &fakeSource{location: music.StreamLocation{Available: false}}
	service := NewService(manager, nil, NewRetriever(noStream, manager), nil)
	stats := service.RunBatch(context.Background(), tracks("1"), 0)
	if stats.FailedNoStream != 1 || stats.FailedGeneric != 0 {
		t.Errorf("expected a lone no-stream tally, got %+v", stats)
	}

	broken := &fakeSource{locationErr: errors.New("connection reset")}
	service = NewService(manager, nil, NewRetriever(broken, manager), nil)
	stats = service.RunBatch(context.Background(), tracks("1"), 0)
	if stats.FailedGeneric != 1 || stats.FailedNoStream != 0 {
		t.Errorf("expected a lone generic tally, got %+v", stats)
	}
}

func TestRunBatchCountsSkippedExistingAsSucceeded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Artist - Track 1.mp3")
	if err := os.WriteFile(path, []byte("present"), 0644); err != nil {
		t.Fatal(err)
	}
	source := &fakeSource{}
	service := newTestService(dir, nil, source)

	stats := service.RunBatch(context.Background(), tracks("1"), 0)
	if stats.Succeeded != 1 || stats.Failed() != 0 {
		t.Fatalf("expected the existing file to count as success, got %+v", stats)
	}
	if source.infoCalls != 0 {
		t.Errorf("expected zero transport calls for the skipped item, got %d", source.infoCalls)
	}
}

func TestDownloadTrackEndToEnd(t *testing.T) {
	dir := t.TempDir()
	resolver := &fakeResolver{
		track: music.Track{ID: "42", Title: "Song", Uploader: "Band"},
	}
	source := &fakeSource{
		location: music.StreamLocation{URL: "http://cdn.example/42.mp3", Available: true},
		body:     []byte("audio"),
	}
	service := newTestService(dir, resolver, source)

	stats, err := service.DownloadTrack(context.Background(), "https://soundcloud.com/band/song")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.Attempted != 1 || stats.Succeeded != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(dir, "Band - Song.mp3")); err != nil {
		t.Errorf("expected the file to exist: %v", err)
	}
}

func TestDownloadTrackSurfacesResolutionFailure(t *testing.T) {
	resolver := &fakeResolver{trackErr: errors.New("could not retrieve track data")}
	service := newTestService(t.TempDir(), resolver, &fakeSource{})

	_, err := service.DownloadTrack(context.Background(), "https://soundcloud.com/nope")
	if err == nil {
		t.Fatal("expected the resolution failure to surface")
	}
}

func TestDownloadLikesDefaultsLimitFromConfig(t *testing.T) {
	resolver := &fakeResolver{}
	service := newTestService(t.TempDir(), resolver, &fakeSource{})

	if _, err := service.DownloadLikes(context.Background(), "someone", 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resolver.likesLimit != 10 {
		t.Errorf("expected the configured default of 10, got %d", resolver.likesLimit)
	}
}

func TestDownloadSetRunsWholeSetWithoutLimit(t *testing.T) {
	dir := t.TempDir()
	resolver := &fakeResolver{
		set: []music.Track{
			{ID: "1", Title: "One", Uploader: "Band"},
			{ID: "2", Title: "Two", Uploader: "Band"},
			{ID: "3", Title: "Three", Uploader: "Band"},
		},
	}
	source := &fakeSource{
		location: music.StreamLocation{URL: "http://cdn.example/x.mp3", Available: true},
		body:     []byte("audio"),
	}
	service := newTestService(dir, resolver, source)

	stats, err := service.DownloadSet(context.Background(), "https://soundcloud.com/band/sets/x", 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.Attempted != 3 || stats.Succeeded != 3 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
