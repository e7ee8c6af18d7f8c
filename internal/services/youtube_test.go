package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/songday/internal/shared"
)

func TestNewYouTubeService(t *testing.T) {
	t.Run("Empty Base URL Uses Default", func(t *testing.T) {
		svc := NewYouTubeService("")
		if svc.baseURL != defaultYTBaseURL {
			t.Errorf("expected default base url, got %s", svc.baseURL)
		}
	})

	t.Run("Name", func(t *testing.T) {
		if got := NewYouTubeService("").Name(); got != "YouTube Music" {
			t.Errorf("expected YouTube Music, got %s", got)
		}
	})
}

func TestFindVideoLink(t *testing.T) {
	t.Run("Returns Watch URL For First Song", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/search" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("filter"); got != "songs" {
				t.Errorf("expected songs filter, got %s", got)
			}
			if got := r.URL.Query().Get("query"); got != "Title Artist" {
				t.Errorf("unexpected query %q", got)
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"videoId": "", "title": "ad", "resultType": "video"},
				{"videoId": "abc123", "title": "Title", "resultType": "song"}
			]`))
		}))
		defer server.Close()

		svc := NewYouTubeService(server.URL)
		link, err := svc.FindVideoLink(context.Background(), "Title", "Artist")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link != "https://music.youtube.com/watch?v=abc123" {
			t.Errorf("unexpected link %s", link)
		}
	})

	t.Run("No Results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		svc := NewYouTubeService(server.URL)
		if _, err := svc.FindVideoLink(context.Background(), "Title", "Artist"); !errors.Is(err, shared.ErrVideoNotFound) {
			t.Errorf("expected ErrVideoNotFound, got %v", err)
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		svc := NewYouTubeService(server.URL)
		if _, err := svc.FindVideoLink(context.Background(), "Title", "Artist"); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("Unreachable Proxy", func(t *testing.T) {
		svc := NewYouTubeService("http://127.0.0.1:1")
		if _, err := svc.FindVideoLink(context.Background(), "Title", "Artist"); !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})

	t.Run("Empty Query", func(t *testing.T) {
		svc := NewYouTubeService("")
		if _, err := svc.FindVideoLink(context.Background(), "", "  "); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}
