// Package ui implements an interactive terminal schedule browser using
// bubbletea's Elm architecture.
//
// The TUI provides two views:
//  1. [ScheduleListView] : Browse scheduled songs by day, with filtering
//  2. [DetailView] : Inspect one entry (identity, links, timestamps)
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern. The schedule is loaded before the program starts; the browser is
// read-only, matching the append-only nature of the schedule itself.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
