// YouTube Music [Enricher] implementation
//
// Communicates with the FastAPI proxy server wrapping the ytmusicapi Python
// library. Only the search endpoint is used; lookups are best-effort.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/desertthunder/songday/internal/shared"
)

const defaultYTBaseURL string = "http://localhost:8080"

// watchURLBase is the public link prefix built from a search result's video ID.
const watchURLBase = "https://music.youtube.com/watch?v="

// YouTubeArtist represents an artist in YouTube Music responses.
type YouTubeArtist struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// YouTubeTrack represents a track/video in YouTube Music search responses.
type YouTubeTrack struct {
	VideoID    string          `json:"videoId"`
	Title      string          `json:"title"`
	Artists    []YouTubeArtist `json:"artists"`
	Duration   string          `json:"duration"`
	ResultType string          `json:"resultType"`
}

// YouTubeService implements the Enricher interface for YouTube Music via proxy.
type YouTubeService struct {
	baseURL    string
	httpClient *http.Client
}

// NewYouTubeService creates a new YouTube Music service instance.
//
// Requests carry a 10 second timeout so a slow proxy degrades a single lookup
// instead of stalling the run.
func NewYouTubeService(baseURL string) *YouTubeService {
	if baseURL == "" {
		baseURL = defaultYTBaseURL
	}

	return &YouTubeService{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Name returns the service name.
func (y *YouTubeService) Name() string {
	return "YouTube Music"
}

func (y *YouTubeService) doRequest(ctx context.Context, endpoint string, result any) error {
	apiURL := y.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// FindVideoLink searches the proxy for a track and returns a watch URL for the
// first song result.
//
// Returns [shared.ErrVideoNotFound] when the search yields nothing usable;
// callers treat any error as an absent link.
func (y *YouTubeService) FindVideoLink(ctx context.Context, title, artist string) (string, error) {
	query := strings.TrimSpace(title + " " + artist)
	if query == "" {
		return "", fmt.Errorf("%w: empty query", shared.ErrInvalidInput)
	}

	endpoint := fmt.Sprintf("/api/search?query=%s&filter=songs", url.QueryEscape(query))

	var results []YouTubeTrack
	if err := y.doRequest(ctx, endpoint, &results); err != nil {
		return "", err
	}

	for _, result := range results {
		if result.VideoID != "" {
			return watchURLBase + result.VideoID, nil
		}
	}

	return "", fmt.Errorf("%w: %s", shared.ErrVideoNotFound, query)
}
