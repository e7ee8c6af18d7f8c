// package formatter renders the schedule to output formats (iCalendar, Markdown, plain text)
package formatter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/desertthunder/songday/internal/models"
	"github.com/desertthunder/songday/internal/shared"
)

const (
	icsProdID = "-//Song of the Day Calendar//songday//"

	// icsStampFormat is the RFC 5545 UTC date-time layout for DTSTAMP.
	icsStampFormat = "20060102T150405Z"

	// icsDayFormat is the RFC 5545 all-day DATE layout.
	icsDayFormat = "20060102"
)

// ExportToICS renders the schedule as an iCalendar feed with one all-day
// VEVENT per entry.
//
// Output is deterministic for persisted entries: UIDs derive from entry IDs
// and DTSTAMP from creation timestamps, so re-exporting an unchanged schedule
// produces identical bytes.
func ExportToICS(schedule *models.Schedule, calendarName string) ([]byte, error) {
	return exportToICSAt(schedule, calendarName, time.Now().UTC())
}

// exportToICSAt is ExportToICS with an injectable fallback timestamp for
// entries that have not been persisted yet.
func exportToICSAt(schedule *models.Schedule, calendarName string, fallback time.Time) ([]byte, error) {
	if calendarName == "" {
		calendarName = "Song of the Day"
	}

	var buf bytes.Buffer
	writeLine := func(line string) {
		buf.WriteString(line)
		buf.WriteString("\r\n")
	}

	writeLine("BEGIN:VCALENDAR")
	writeLine("VERSION:2.0")
	writeLine("PRODID:" + icsProdID)
	writeLine("X-WR-CALNAME:" + escapeICSText(calendarName))

	for _, entry := range schedule.Entries {
		uid := entry.ID
		if uid == "" {
			uid = shared.GenerateID()
		}

		stamp := entry.CreatedAt
		if stamp.IsZero() {
			stamp = fallback
		}

		writeLine("BEGIN:VEVENT")
		writeLine(fmt.Sprintf("UID:%s@songday", uid))
		writeLine("DTSTAMP:" + stamp.UTC().Format(icsStampFormat))
		writeLine("DTSTART;VALUE=DATE:" + entry.Day.Format(icsDayFormat))
		writeLine("DTEND;VALUE=DATE:" + entry.Day.AddDate(0, 0, 1).Format(icsDayFormat))
		writeLine("SUMMARY:" + escapeICSText("Song - "+entry.Title))

		description := fmt.Sprintf("%s — %s", entry.Subtitle, entry.PrimaryLink)
		if entry.SecondaryLink != "" {
			description += "\nYouTube: " + entry.SecondaryLink
		}
		writeLine("DESCRIPTION:" + escapeICSText(description))

		if entry.PrimaryLink != "" {
			writeLine("URL:" + entry.PrimaryLink)
		}
		writeLine("END:VEVENT")
	}

	writeLine("END:VCALENDAR")
	return buf.Bytes(), nil
}

// WriteICSExport writes the schedule's iCalendar feed to path.
//
// The write is atomic: content lands in a temp file in the target directory
// and is renamed into place, so an interrupted run never leaves a truncated
// calendar behind.
func WriteICSExport(schedule *models.Schedule, calendarName, path string) error {
	if path == "" {
		return fmt.Errorf("empty output path")
	}

	data, err := ExportToICS(schedule, calendarName)
	if err != nil {
		return fmt.Errorf("failed to generate calendar: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".songday-*.ics")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace calendar file: %w", err)
	}

	return nil
}

// escapeICSText escapes text per RFC 5545: backslash, semicolon, comma and newline.
func escapeICSText(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return replacer.Replace(s)
}
