package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/songday/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ScheduleListView ViewState = iota
	DetailView
)

// Model represents the TUI application state.
type Model struct {
	view     ViewState
	name     string
	entries  list.Model
	selected *models.Entry
	width    int
	height   int
	help     help.Model
	keys     keyMap
}

// NewModel creates the schedule browser model for the given schedule.
func NewModel(schedule models.Schedule, calendarName string) Model {
	items := make([]list.Item, 0, len(schedule.Entries))
	for _, entry := range schedule.Entries {
		items = append(items, entryItem{entry: entry})
	}

	delegate := list.NewDefaultDelegate()
	entries := list.New(items, delegate, 0, 0)
	entries.Title = calendarName
	entries.SetShowHelp(false)

	return Model{
		view:    ScheduleListView,
		name:    calendarName,
		entries: entries,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.entries.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Let the list's filter input swallow keys while active.
		if m.view == ScheduleListView && m.entries.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.enter):
			if m.view == ScheduleListView {
				if item, ok := m.entries.SelectedItem().(entryItem); ok {
					entry := item.entry
					m.selected = &entry
					m.view = DetailView
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.back):
			if m.view == DetailView {
				m.view = ScheduleListView
				m.selected = nil
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.view == ScheduleListView {
		m.entries, cmd = m.entries.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	switch m.view {
	case DetailView:
		return m.detailView()
	default:
		return m.listView()
	}
}

func (m Model) listView() string {
	var b strings.Builder
	b.WriteString(m.entries.View())
	b.WriteString("\n")
	b.WriteString(styles.help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) detailView() string {
	if m.selected == nil {
		return styles.err.Render("no entry selected")
	}

	entry := m.selected

	var b strings.Builder
	b.WriteString(styles.title.Render(fmt.Sprintf("%s — %s", entry.DayKey(), entry.Title)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Artist:    %s\n", entry.Subtitle))
	b.WriteString(fmt.Sprintf("Identity:  %s\n", entry.Identity))

	if entry.PrimaryLink != "" {
		b.WriteString(fmt.Sprintf("Spotify:   %s\n", entry.PrimaryLink))
	} else {
		b.WriteString(styles.warn.Render("Spotify:   (none)") + "\n")
	}

	if entry.SecondaryLink != "" {
		b.WriteString(fmt.Sprintf("YouTube:   %s\n", entry.SecondaryLink))
	}

	if !entry.CreatedAt.IsZero() {
		b.WriteString(fmt.Sprintf("Added:     %s\n", entry.CreatedAt.Format("2006-01-02 15:04:05")))
	}

	b.WriteString("\n")
	b.WriteString(styles.help.Render("esc back • q quit"))
	return b.String()
}

// Run launches the schedule browser and blocks until the user quits.
func Run(schedule models.Schedule, calendarName string) error {
	program := tea.NewProgram(NewModel(schedule, calendarName), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
