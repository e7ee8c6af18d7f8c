package formatter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/songday/internal/models"
)

func sampleSchedule(t *testing.T) *models.Schedule {
	t.Helper()

	day, err := models.ParseDay("2022-08-06")
	if err != nil {
		t.Fatalf("bad day: %v", err)
	}
	created := time.Date(2022, 8, 6, 12, 0, 0, 0, time.UTC)

	return &models.Schedule{Entries: []models.Entry{
		{
			ID:            "id-1",
			Identity:      "https://open.spotify.com/track/abc",
			Day:           day,
			Title:         "First Song",
			Subtitle:      "First Artist",
			PrimaryLink:   "https://open.spotify.com/track/abc",
			SecondaryLink: "https://music.youtube.com/watch?v=xyz",
			CreatedAt:     created,
		},
		{
			ID:        "id-2",
			Identity:  "missing-abc",
			Day:       day.AddDate(0, 0, 1),
			Title:     "Second Song",
			Subtitle:  "Second Artist",
			CreatedAt: created,
		},
	}}
}

func TestExportToICS(t *testing.T) {
	t.Run("Renders All Day Events", func(t *testing.T) {
		data, err := ExportToICS(sampleSchedule(t), "Song of the Day")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := string(data)
		for _, want := range []string{
			"BEGIN:VCALENDAR",
			"X-WR-CALNAME:Song of the Day",
			"UID:id-1@songday",
			"DTSTAMP:20220806T120000Z",
			"DTSTART;VALUE=DATE:20220806",
			"DTEND;VALUE=DATE:20220807",
			"SUMMARY:Song - First Song",
			"URL:https://open.spotify.com/track/abc",
			"DTSTART;VALUE=DATE:20220807",
			"END:VCALENDAR",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("Uses CRLF Line Endings", func(t *testing.T) {
		data, err := ExportToICS(sampleSchedule(t), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !bytes.HasPrefix(data, []byte("BEGIN:VCALENDAR\r\n")) {
			t.Error("expected CRLF after first line")
		}
		if bytes.Contains(bytes.ReplaceAll(data, []byte("\r\n"), nil), []byte("\n")) {
			t.Error("found bare newline outside CRLF pairs")
		}
	})

	t.Run("Deterministic For Persisted Entries", func(t *testing.T) {
		first, err := ExportToICS(sampleSchedule(t), "Song of the Day")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := ExportToICS(sampleSchedule(t), "Song of the Day")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !bytes.Equal(first, second) {
			t.Error("expected identical bytes across exports")
		}
	})

	t.Run("Secondary Link In Description", func(t *testing.T) {
		data, err := ExportToICS(sampleSchedule(t), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(string(data), `\nYouTube: https://music.youtube.com/watch?v=xyz`) {
			t.Error("expected escaped YouTube line in description")
		}
	})

	t.Run("Empty Calendar Name Falls Back", func(t *testing.T) {
		data, err := ExportToICS(&models.Schedule{}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(string(data), "X-WR-CALNAME:Song of the Day") {
			t.Error("expected default calendar name")
		}
	})
}

func TestEscapeICSText(t *testing.T) {
	tc := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a,b;c", `a\,b\;c`},
		{`back\slash`, `back\\slash`},
		{"line\nbreak", `line\nbreak`},
	}

	for _, tt := range tc {
		if got := escapeICSText(tt.in); got != tt.want {
			t.Errorf("escapeICSText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteICSExport(t *testing.T) {
	t.Run("Writes File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "docs", "calendar.ics")

		if err := WriteICSExport(sampleSchedule(t), "Song of the Day", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected output file: %v", err)
		}
		if !strings.Contains(string(data), "UID:id-1@songday") {
			t.Error("expected calendar content in output file")
		}
	})

	t.Run("Replaces Existing File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "calendar.ics")
		if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		if err := WriteICSExport(sampleSchedule(t), "", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected output file: %v", err)
		}
		if strings.Contains(string(data), "stale") {
			t.Error("expected stale content to be replaced")
		}
	})

	t.Run("Empty Path Fails", func(t *testing.T) {
		if err := WriteICSExport(sampleSchedule(t), "", ""); err == nil {
			t.Error("expected error for empty path")
		}
	})
}

func TestExportToMarkdown(t *testing.T) {
	data, err := ExportToMarkdown(sampleSchedule(t), "Song of the Day")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		"# Song of the Day",
		"**Entries**: 2",
		"| Day | Song | Artist | Link |",
		"| 2022-08-06 | First Song | First Artist | https://open.spotify.com/track/abc |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(sampleSchedule(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "Entries: 2") {
		t.Error("expected entry count header")
	}
	if !strings.Contains(out, "2022-08-06  First Artist - First Song") {
		t.Errorf("expected entry line, got %q", out)
	}
}
