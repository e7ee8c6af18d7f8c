package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/desertthunder/songday/internal/shared"
)

func TestNewRunner(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		r := NewRunner(RunnerOpts{})

		if r.config == nil {
			t.Error("expected default config")
		}
		if r.logger == nil {
			t.Error("expected default logger")
		}
		if r.output != os.Stdout {
			t.Error("expected stdout output")
		}
		if r.catalog != nil {
			t.Error("expected nil catalog when none provided")
		}
	})

	t.Run("Provided Options Win", func(t *testing.T) {
		var buf bytes.Buffer
		config := shared.DefaultConfig()
		config.Schedule.PlaylistID = "custom"

		r := NewRunner(RunnerOpts{Config: config, Output: &buf})

		if r.config.Schedule.PlaylistID != "custom" {
			t.Errorf("expected custom playlist, got %s", r.config.Schedule.PlaylistID)
		}
		if r.output != &buf {
			t.Error("expected provided output writer")
		}
	})
}

func TestRegister(t *testing.T) {
	r := NewRunner(RunnerOpts{})
	commands := r.register()

	if len(commands) != 3 {
		t.Fatalf("expected 3 top-level commands, got %d", len(commands))
	}

	names := make(map[string]bool)
	for _, cmd := range commands {
		names[cmd.Name] = true
	}
	for _, want := range []string{"setup", "run", "schedule"} {
		if !names[want] {
			t.Errorf("missing command %s", want)
		}
	}
}

func TestCommandDefinitions(t *testing.T) {
	r := NewRunner(RunnerOpts{})

	t.Run("Run Has Override Flags", func(t *testing.T) {
		cmd := runCommand(r)

		flags := make(map[string]bool)
		for _, f := range cmd.Flags {
			for _, name := range f.Names() {
				flags[name] = true
			}
		}
		for _, want := range []string{"config", "playlist", "start", "output", "no-export"} {
			if !flags[want] {
				t.Errorf("missing flag %s", want)
			}
		}
	})

	t.Run("Schedule Has Subcommands", func(t *testing.T) {
		cmd := scheduleCommand(r)

		if len(cmd.Commands) != 3 {
			t.Fatalf("expected 3 subcommands, got %d", len(cmd.Commands))
		}
		for i, want := range []string{"list", "export", "tui"} {
			if cmd.Commands[i].Name != want {
				t.Errorf("expected subcommand %s, got %s", want, cmd.Commands[i].Name)
			}
		}
	})

	t.Run("Setup Has Subcommands", func(t *testing.T) {
		cmd := setupCommand(r)

		if len(cmd.Commands) != 2 {
			t.Fatalf("expected 2 subcommands, got %d", len(cmd.Commands))
		}
	})
}

func TestOutputHelpers(t *testing.T) {
	t.Run("writePlainln", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRunner(RunnerOpts{Output: &buf})

		if err := r.writePlainln("added %d songs", 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "added 3 songs\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("writeJSON Compact", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRunner(RunnerOpts{Output: &buf})

		if err := r.writeJSON(map[string]int{"added": 3}, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != `{"added":3}`+"\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("writeJSON Pretty", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRunner(RunnerOpts{Output: &buf})

		if err := r.writeJSON(map[string]int{"added": 3}, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"added\": 3\n") {
			t.Errorf("expected indented output, got %q", buf.String())
		}
	})

	t.Run("writeBytes", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRunner(RunnerOpts{Output: &buf})

		if err := r.writeBytes([]byte("raw")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "raw" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})
}
