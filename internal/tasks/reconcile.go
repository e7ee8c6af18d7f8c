package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/songday/internal/models"
	"github.com/desertthunder/songday/internal/services"
	"github.com/desertthunder/songday/internal/shared"
	"golang.org/x/time/rate"
)

// sentinelDisplay is rendered when the source omitted a display field.
const sentinelDisplay = "Missing"

// enrichRate bounds video link lookups per second against the proxy.
const enrichRate = 4

// EnrichFunc supplies a secondary link for a track about to be scheduled.
//
// A nil function or an empty result leaves the link absent. Enrichment runs
// only for tracks that are actually new; duplicates never trigger a lookup.
type EnrichFunc func(track models.Track) string

// ScheduleStore abstracts schedule persistence for the engine.
//
// Append must be all-or-nothing: a failed or interrupted run leaves the
// previously persisted schedule untouched.
type ScheduleStore interface {
	// All loads the full schedule ordered by day. An empty schedule is not an error.
	All() (models.Schedule, error)

	// Append inserts the given entries in a single transaction, assigning
	// their IDs, sequences and timestamps in place.
	Append(entries []models.Entry) error
}

// RunResult contains all data from one reconciliation run.
type RunResult struct {
	Candidates   int             // Tracks fetched from the source playlist
	Added        int             // New entries appended to the schedule
	Skipped      int             // Candidates already scheduled
	EnrichMisses int             // New entries left without a video link
	NewEntries   []models.Entry  // The appended entries, in assignment order
	Schedule     models.Schedule // The full schedule after the run
}

// Reconciler defines the reconciliation run operation.
type Reconciler interface {
	// Run fetches the source playlist, merges it into the persisted schedule
	// and appends any new entries.
	Run(ctx context.Context, progress chan<- ProgressUpdate, playlistID string, start time.Time) (*RunResult, error)
}

// ScheduleEngine implements Reconciler.
// Contains dependencies on the track catalog, the link enricher and the schedule store.
type ScheduleEngine struct {
	catalog  services.Catalog
	enricher services.Enricher
	store    ScheduleStore
	limiter  *rate.Limiter
}

// NewScheduleEngine creates a new ScheduleEngine with the provided collaborators.
func NewScheduleEngine(catalog services.Catalog, enricher services.Enricher, store ScheduleStore) *ScheduleEngine {
	return &ScheduleEngine{
		catalog:  catalog,
		enricher: enricher,
		store:    store,
		limiter:  rate.NewLimiter(rate.Limit(enrichRate), 1),
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *ScheduleEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// Reconcile merges candidate tracks into the schedule, assigning each
// previously unseen track to the next free day at or after start.
//
// The pass is pure and single-threaded: it walks candidates in order, skips
// identities already present, and advances a single day cursor that is never
// reset between items, so consecutive new tracks land on consecutive free
// days. Existing entries are returned unchanged; the second return value is
// the schedule extended with the new entries appended.
func Reconcile(candidates []models.Track, schedule models.Schedule, start time.Time, enrich EnrichFunc) ([]models.Entry, models.Schedule) {
	existing := schedule.Identities()
	occupied := schedule.OccupiedDays()

	var newEntries []models.Entry
	d := models.Day(start)

	for _, track := range candidates {
		identity := DeriveIdentity(track)
		if _, seen := existing[identity]; seen {
			continue
		}

		d = NextFreeDay(d, occupied)

		title := track.Title
		if title == "" {
			title = sentinelDisplay
		}
		subtitle := track.Artist
		if subtitle == "" {
			subtitle = sentinelDisplay
		}

		var secondary string
		if enrich != nil {
			secondary = enrich(track)
		}

		newEntries = append(newEntries, models.Entry{
			Identity:      identity,
			Day:           d,
			Title:         title,
			Subtitle:      subtitle,
			PrimaryLink:   track.URL,
			SecondaryLink: secondary,
		})

		existing[identity] = struct{}{}
		occupied[models.FormatDay(d)] = struct{}{}
	}

	return newEntries, schedule.Extend(newEntries)
}

// Run performs one full reconciliation of the playlist against the schedule.
func (e *ScheduleEngine) Run(ctx context.Context, progress chan<- ProgressUpdate, playlistID string, start time.Time) (*RunResult, error) {
	if e.catalog == nil {
		return nil, fmt.Errorf("%w: catalog not initialized", shared.ErrServiceUnavailable)
	}
	if e.store == nil {
		return nil, fmt.Errorf("%w: schedule store not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, fetchingSourceUpdate(1, 1))

	if err := e.catalog.Authenticate(ctx); err != nil {
		return nil, fmt.Errorf("catalog authentication failed: %w", err)
	}

	candidates, err := e.catalog.PlaylistTracks(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch playlist tracks: %w", err)
	}

	e.sendProgress(progress, fetchedTracksUpdate(len(candidates)))

	schedule, err := e.store.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	e.sendProgress(progress, loadScheduleUpdate(len(schedule.Entries)))

	result := &RunResult{Candidates: len(candidates)}

	lookups := 0
	enrich := func(track models.Track) string {
		if e.enricher == nil {
			return ""
		}

		lookups++
		e.sendProgress(progress, enrichTrackUpdate(lookups, len(candidates), track.Title))

		if err := e.limiter.Wait(ctx); err != nil {
			result.EnrichMisses++
			return ""
		}

		link, err := e.enricher.FindVideoLink(ctx, track.Title, track.Artist)
		if err != nil {
			result.EnrichMisses++
			e.sendProgress(progress, enrichMissUpdate(lookups, len(candidates), track.Title))
			return ""
		}
		return link
	}

	newEntries, _ := Reconcile(candidates, schedule, start, enrich)
	result.NewEntries = newEntries
	result.Added = len(newEntries)
	result.Skipped = len(candidates) - len(newEntries)

	e.sendProgress(progress, assignDaysUpdate(result.Added))

	if len(newEntries) > 0 {
		e.sendProgress(progress, persistUpdate(result.Added))
		if err := e.store.Append(newEntries); err != nil {
			return nil, fmt.Errorf("failed to persist new entries: %w", err)
		}
	}

	// Extend after Append so the in-memory schedule carries assigned IDs.
	result.Schedule = schedule.Extend(newEntries)
	return result, nil
}
