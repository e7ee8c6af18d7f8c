package services

import (
	"context"

	"github.com/desertthunder/songday/internal/models"
)

// Catalog defines the source of candidate tracks for scheduling.
type Catalog interface {
	// Authenticate performs service authentication.
	// Returns an error if authentication fails.
	Authenticate(ctx context.Context) error

	// PlaylistTracks retrieves every track of a playlist in playlist order.
	PlaylistTracks(ctx context.Context, playlistID string) ([]models.Track, error)

	// Name returns the name of the service (e.g., "Spotify")
	Name() string
}

// Enricher looks up an auxiliary video link for a track.
//
// Implementations are best-effort: callers treat any error as "no link".
type Enricher interface {
	// FindVideoLink searches for a watch URL by title and artist.
	FindVideoLink(ctx context.Context, title, artist string) (string, error)

	// Name returns the name of the service (e.g., "YouTube Music")
	Name() string
}
