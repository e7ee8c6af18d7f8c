package tasks

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/desertthunder/songday/internal/models"
)

// missingPrefix marks hash-derived identities so they live in a namespace a
// real track URL can never collide with.
const missingPrefix = "missing-"

// DeriveIdentity computes the stable deduplication key for a track.
//
// A track with a canonical URL uses the URL verbatim, with no normalization.
// Otherwise the key is the hex md5 digest of "{title} - {artist}" prefixed
// with "missing-". The digest is reproducible byte-for-byte across runs, so
// re-fetching an unlinked track never schedules it twice. Renaming a track's
// title or artist upstream yields a new identity.
func DeriveIdentity(track models.Track) string {
	if track.URL != "" {
		return track.URL
	}

	sum := md5.Sum([]byte(fmt.Sprintf("%s - %s", track.Title, track.Artist)))
	return missingPrefix + hex.EncodeToString(sum[:])
}
