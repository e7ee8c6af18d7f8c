// Package services defines the [Catalog] and [Enricher] interfaces for the
// external collaborators of a reconciliation run and implements them for
// Spotify and YouTube Music.
//
// # Catalog
//
// [SpotifyService] fetches the source playlist using the OAuth2
// client-credentials flow (the playlist is public, so no user context is
// required). Tracks are returned in playlist order, which is the order the
// scheduler assigns days in. A catalog failure is fatal to the run.
//
// # Enricher
//
// [YouTubeService] looks up a watch link for a track against the FastAPI
// proxy server wrapping ytmusicapi. Lookups are best-effort: any failure
// degrades to an absent link and never aborts a run.
package services
