package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/songday/internal/models"
)

var _ list.Item = entryItem{}

// entryItem wraps [models.Entry] to implement [list.Item].
type entryItem struct {
	entry models.Entry
}

func (i entryItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", i.entry.DayKey(), i.entry.Title, i.entry.Subtitle)
}

func (i entryItem) Title() string {
	return fmt.Sprintf("%s  %s", i.entry.DayKey(), i.entry.Title)
}

func (i entryItem) Description() string {
	desc := i.entry.Subtitle
	if i.entry.PrimaryLink == "" {
		desc = fmt.Sprintf("%s • no source link", desc)
	}
	return desc
}
