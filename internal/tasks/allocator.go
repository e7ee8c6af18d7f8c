package tasks

import (
	"time"

	"github.com/desertthunder/songday/internal/models"
)

// NextFreeDay returns the earliest calendar day d >= start that is not in
// occupied, advancing one day at a time.
//
// occupied is keyed by YYYY-MM-DD ([models.FormatDay]). The function is pure;
// callers must insert the returned day into occupied before the next call so
// two allocations in the same batch never collide.
func NextFreeDay(start time.Time, occupied map[string]struct{}) time.Time {
	d := models.Day(start)
	for {
		if _, taken := occupied[models.FormatDay(d)]; !taken {
			return d
		}
		d = d.AddDate(0, 0, 1)
	}
}
