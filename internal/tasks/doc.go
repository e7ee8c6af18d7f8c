// Package tasks implements the scheduling engine that merges playlist tracks
// into the persisted song-of-the-day schedule, with real-time progress
// reporting.
//
// # Core Operation
//
// [Reconciler.Run] performs one full reconciliation:
//   - Fetches the source playlist from Spotify (fatal on failure)
//   - Loads the persisted schedule
//   - Derives a deduplication identity per track ([DeriveIdentity])
//   - Assigns each previously unseen track to the next free calendar day
//     ([NextFreeDay]), preserving playlist order
//   - Looks up a YouTube link per new track (best-effort, rate limited)
//   - Appends the new entries in a single transaction
//
// Runs are idempotent: already-scheduled identities are skipped, existing
// entries are never modified, and re-running with the same playlist adds
// nothing. A track scheduled under a hash identity that later gains a real
// URL is treated as a new track, matching the append-only rule.
//
// [Reconcile] itself is a pure single pass over in-memory data; all I/O sits
// in Run so the invariants are testable without services or a database.
package tasks
