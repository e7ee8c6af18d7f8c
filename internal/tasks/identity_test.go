package tasks

import (
	"strings"
	"testing"

	"github.com/desertthunder/songday/internal/models"
)

func TestDeriveIdentity(t *testing.T) {
	t.Run("URL Used Verbatim", func(t *testing.T) {
		track := models.Track{
			Title:  "X",
			Artist: "Y",
			URL:    "https://open.spotify.com/track/abc123",
		}

		if got := DeriveIdentity(track); got != track.URL {
			t.Errorf("expected identity %q, got %q", track.URL, got)
		}
	})

	t.Run("No Normalization Of URLs", func(t *testing.T) {
		a := models.Track{URL: "https://open.spotify.com/track/abc123"}
		b := models.Track{URL: "https://open.spotify.com/track/abc123/"}

		if DeriveIdentity(a) == DeriveIdentity(b) {
			t.Error("expected distinct identities for distinct URL strings")
		}
	})

	t.Run("Hash Fallback", func(t *testing.T) {
		// md5("A - B") computed independently
		want := "missing-3d3c0bb422b55003c65dc2e7d55e4e82"

		got := DeriveIdentity(models.Track{Title: "A", Artist: "B"})
		if got != want {
			t.Errorf("expected identity %q, got %q", want, got)
		}
	})

	t.Run("Hash Is Deterministic", func(t *testing.T) {
		track := models.Track{Title: "Song Title", Artist: "Artist Name"}

		first := DeriveIdentity(track)
		second := DeriveIdentity(track)

		if first != second {
			t.Errorf("expected stable identity, got %q and %q", first, second)
		}
		if first != "missing-240f30ec29cef09d41cec90ba5143ee5" {
			t.Errorf("unexpected digest %q", first)
		}
	})

	t.Run("Prefix Marks Hash Identities", func(t *testing.T) {
		got := DeriveIdentity(models.Track{Title: "X", Artist: "Y"})
		if !strings.HasPrefix(got, missingPrefix) {
			t.Errorf("expected %q prefix, got %q", missingPrefix, got)
		}
	})

	t.Run("Title Change Yields New Identity", func(t *testing.T) {
		a := DeriveIdentity(models.Track{Title: "A", Artist: "B"})
		b := DeriveIdentity(models.Track{Title: "A2", Artist: "B"})

		if a == b {
			t.Error("expected renamed track to derive a different identity")
		}
	})
}
