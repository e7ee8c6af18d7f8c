package models

import (
	"fmt"
	"time"
)

// DayFormat is the canonical YYYY-MM-DD layout used for calendar days everywhere:
// in SQLite, in map keys, and in iCalendar DTSTART values.
const DayFormat = "2006-01-02"

// Track is a candidate song from the source playlist.
//
// URL is the canonical Spotify link when the source resolves one; it is empty
// for local files and other tracks the catalog could not link.
type Track struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	URL    string `json:"url,omitempty"`
}

// Entry is one scheduled song occupying exactly one calendar day.
//
// Identity is the deduplication key (the track URL, or a hash-derived marker)
// and is persisted as a first-class field.
type Entry struct {
	ID            string    `json:"id"`
	Sequence      int       `json:"sequence"`
	Identity      string    `json:"identity"`
	Day           time.Time `json:"day"`
	Title         string    `json:"title"`
	Subtitle      string    `json:"subtitle"`
	PrimaryLink   string    `json:"primary_link,omitempty"`
	SecondaryLink string    `json:"secondary_link,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// DayKey returns the entry's day formatted as YYYY-MM-DD.
func (e Entry) DayKey() string {
	return FormatDay(e.Day)
}

// Schedule is the append-only collection of entries ordered by day.
type Schedule struct {
	Entries []Entry `json:"entries"`
}

// Identities returns the set of deduplication keys already present in the schedule.
func (s *Schedule) Identities() map[string]struct{} {
	set := make(map[string]struct{}, len(s.Entries))
	for _, e := range s.Entries {
		set[e.Identity] = struct{}{}
	}
	return set
}

// OccupiedDays returns the set of calendar days (as YYYY-MM-DD keys) already assigned.
func (s *Schedule) OccupiedDays() map[string]struct{} {
	set := make(map[string]struct{}, len(s.Entries))
	for _, e := range s.Entries {
		set[e.DayKey()] = struct{}{}
	}
	return set
}

// Extend returns a copy of the schedule with the given entries appended.
// Existing entries are never modified.
func (s *Schedule) Extend(entries []Entry) Schedule {
	combined := make([]Entry, 0, len(s.Entries)+len(entries))
	combined = append(combined, s.Entries...)
	combined = append(combined, entries...)
	return Schedule{Entries: combined}
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDay renders a calendar day as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD string into a midnight-UTC day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return t, nil
}
