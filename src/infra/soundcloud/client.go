// Package soundcloud implements the gateway to the SoundCloud public
// API: endpoint templating, transport execution, JSON decoding and
// failure classification.
package soundcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Syntox32/Soundloader/src/features/resolving"
	"github.com/Syntox32/Soundloader/src/music"
)

const (
	resolveEndpoint = "%s://api.soundcloud.com/resolve.json?url=%s&client_id=%s"
	likesEndpoint   = "%s://api-v2.soundcloud.com/users/%s/track_likes?client_id=%s&limit=%d"
	streamsEndpoint = "%s://api.soundcloud.com/i1/tracks/%s/streams?client_id=%s"
)

// Doer executes a single HTTP request. *http.Client satisfies it; tests
// substitute fakes so no request leaves the process.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the SoundCloud API. The scheme is chosen once at
// construction and used for every endpoint within a run.
type Client struct {
	clientID string
	scheme   string
	http     Doer
}

// NewClient creates a new API client with the given credential. A nil
// doer falls back to http.DefaultClient.
func NewClient(clientID string, https bool, doer Doer) *Client {
	scheme := "http"
	if https {
		scheme = "https"
	}
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{
		clientID: clientID,
		scheme:   scheme,
		http:     doer,
	}
}

// opaqueID decodes the API's id field, which shows up both as a JSON
// number and as a string depending on the endpoint, into text.
type opaqueID string

func (id *opaqueID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = opaqueID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = opaqueID(n.String())
	return nil
}

// Wire shapes, one per endpoint. Every field is optional; the API
// answers partial documents for private or deleted content.
type userDocument struct {
	Username string `json:"username"`
}

type resolveDocument struct {
	ID     opaqueID          `json:"id"`
	Title  string            `json:"title"`
	User   *userDocument     `json:"user"`
	Tracks []resolveDocument `json:"tracks"`
}

type likesDocument struct {
	Collection []likeDocument `json:"collection"`
}

type likeDocument struct {
	Track *resolveDocument `json:"track"`
}

type streamsDocument struct {
	HTTPMP3URL string `json:"http_mp3_128_url"`
}

// Resolve maps a public-facing reference (track URL, set URL, profile
// URL) to its canonical document.
func (c *Client) Resolve(ctx context.Context, reference string) (*resolving.Document, error) {
	endpoint := fmt.Sprintf(resolveEndpoint, c.scheme, url.QueryEscape(reference), c.clientID)
	var doc resolveDocument
	if err := c.getJSON(ctx, endpoint, &doc); err != nil {
		return nil, err
	}
	return documentOf(doc), nil
}

// Likes returns the collection of a user's likes, newest first, bounded
// by limit on the API side.
func (c *Client) Likes(ctx context.Context, userID string, limit int) ([]resolving.LikeEntry, error) {
	endpoint := fmt.Sprintf(likesEndpoint, c.scheme, url.PathEscape(userID), c.clientID, limit)
	var doc likesDocument
	if err := c.getJSON(ctx, endpoint, &doc); err != nil {
		return nil, err
	}
	entries := make([]resolving.LikeEntry, 0, len(doc.Collection))
	for _, like := range doc.Collection {
		var entry resolving.LikeEntry
		if like.Track != nil {
			entry.Track = documentOf(*like.Track)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// StreamInfo looks up the stream candidates for a track id. A response
// without a progressive-download URL is reported through Available, not
// as an error; adaptive-only tracks are an expected outcome.
func (c *Client) StreamInfo(ctx context.Context, trackID string) (music.StreamLocation, error) {
	endpoint := fmt.Sprintf(streamsEndpoint, c.scheme, url.PathEscape(trackID), c.clientID)
	var doc streamsDocument
	if err := c.getJSON(ctx, endpoint, &doc); err != nil {
		return music.StreamLocation{}, err
	}
	return music.StreamLocation{
		URL:       doc.HTTPMP3URL,
		Available: doc.HTTPMP3URL != "",
	}, nil
}

// Fetch downloads the raw bytes behind streamURL.
func (c *Client) Fetch(ctx context.Context, streamURL string) ([]byte, error) {
	return c.get(ctx, streamURL)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func documentOf(doc resolveDocument) *resolving.Document {
	out := &resolving.Document{
		ID:    string(doc.ID),
		Title: doc.Title,
	}
	if doc.User != nil {
		out.Uploader = doc.User.Username
	}
	for _, track := range doc.Tracks {
		out.Tracks = append(out.Tracks, *documentOf(track))
	}
	return out
}
