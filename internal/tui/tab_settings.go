package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifetrack/internal/tui/components"
	"github.com/theirongolddev/lifetrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settingsState tracks the theme picker cursor.
type settingsState struct {
	cursor int // index into theme.All
}

func newSettingsState(current string) settingsState {
	for i, th := range theme.All {
		if th.Name == current {
			return settingsState{cursor: i}
		}
	}
	return settingsState{}
}

func (a App) updateSettings(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.settings.cursor < len(theme.All)-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "enter", " ":
		th := theme.All[a.settings.cursor]

		ctx, cancel := a.ctx()
		defer cancel()
		if err := a.tr.SetTheme(ctx, th.Name); err != nil {
			return a, a.fail("theme", err)
		}
		theme.SetActive(th.Name)
		return a, a.setStatus("Theme: "+th.Title, false)
	}
	return a, nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var list strings.Builder
	for i, th := range theme.All {
		marker := "  "
		nameStyle := value
		if i == a.settings.cursor {
			marker = "▸ "
			nameStyle = accent
		}
		check := "  "
		if th.Name == a.tr.Theme() {
			check = " ✓"
		}

		swatch := ""
		for _, c := range []lipgloss.Color{th.Accent, th.AccentDeep, th.Surface, th.TextPrimary} {
			swatch += lipgloss.NewStyle().Background(c).Render("  ")
		}

		list.WriteString(accent.Render(marker))
		list.WriteString(nameStyle.Render(fmt.Sprintf("%-14s", th.Title)))
		list.WriteString(blank.Render(" "))
		list.WriteString(swatch)
		list.WriteString(accent.Render(check))
		if i < len(theme.All)-1 {
			list.WriteString("\n")
		}
	}
	themes := components.ContentCard("Theme", list.String(), cw, true)

	habits, moods := len(a.tr.Habits()), len(a.tr.Moods())
	backend := a.opts.Backend
	if backend == "" {
		backend = "sqlite"
	}
	info := muted.Render("Storage  ") + value.Render(backend) + "\n" +
		muted.Render("Habits   ") + value.Render(fmt.Sprintf("%d", habits)) + "\n" +
		muted.Render("Moods    ") + value.Render(fmt.Sprintf("%d days", moods)) + "\n\n" +
		lipgloss.NewStyle().Foreground(t.Delete).Background(t.Surface).Render("X  clear all data")
	data := components.ContentCard("Data", info, cw, false)

	return lipgloss.JoinVertical(lipgloss.Left, themes, data)
}
