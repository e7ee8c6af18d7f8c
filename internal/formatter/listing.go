package formatter

import (
	"bytes"
	"fmt"

	"github.com/desertthunder/songday/internal/models"
)

// ExportToMarkdown converts a schedule to a Markdown table ordered by day.
func ExportToMarkdown(schedule *models.Schedule, calendarName string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", calendarName))
	buf.WriteString(fmt.Sprintf("**Entries**: %d\n\n", len(schedule.Entries)))

	buf.WriteString("| Day | Song | Artist | Link |\n")
	buf.WriteString("|-----|------|--------|------|\n")
	for _, entry := range schedule.Entries {
		link := entry.PrimaryLink
		if link == "" {
			link = entry.SecondaryLink
		}
		buf.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", entry.DayKey(), entry.Title, entry.Subtitle, link))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a schedule to plain text, one entry per line.
func ExportToText(schedule *models.Schedule) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Entries: %d\n\n", len(schedule.Entries)))
	for _, entry := range schedule.Entries {
		buf.WriteString(fmt.Sprintf("%s  %s - %s\n", entry.DayKey(), entry.Subtitle, entry.Title))
	}

	return buf.Bytes(), nil
}
