package tasks

import "fmt"

// ProgressUpdate represents a progress event during a reconciliation run.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchSource Phase = iota
	LoadSchedule
	EnrichTracks
	AssignDays
	Persist
)

func (p Phase) String() string {
	switch p {
	case FetchSource:
		return "fetch_source"
	case LoadSchedule:
		return "load_schedule"
	case EnrichTracks:
		return "enrich_tracks"
	case AssignDays:
		return "assign_days"
	case Persist:
		return "persist"
	default:
		return ""
	}
}

func fetchingSourceUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchSource,
		Step:    step,
		Total:   total,
		Message: "Fetching source playlist from Spotify...",
	}
}

func fetchedTracksUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchSource,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Fetched %d candidate tracks", count),
	}
}

func loadScheduleUpdate(entries int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LoadSchedule,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Loaded schedule with %d entries", entries),
	}
}

func enrichTrackUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   EnrichTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Looking up video link for %q...", title),
	}
}

func enrichMissUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   EnrichTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("No video link found for %q", title),
	}
}

func assignDaysUpdate(added int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AssignDays,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Assigned %d new tracks to days", added),
	}
}

func persistUpdate(added int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Persist,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Persisting %d new entries...", added),
	}
}
