// Package tui provides the interactive Bubble Tea dashboard for lifetrack.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	applog "github.com/theirongolddev/lifetrack/internal/log"
	"github.com/theirongolddev/lifetrack/internal/tracker"
	"github.com/theirongolddev/lifetrack/internal/tui/components"
	"github.com/theirongolddev/lifetrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabHabits = iota
	tabMood
	tabSettings
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	minContentHeight = 5

	statusTTL = 3 * time.Second
	opTimeout = 5 * time.Second
)

// Options configures the dashboard.
type Options struct {
	WeekDays int
	MoodDays int
	Backend  string // shown on the settings tab
	Logger   *slog.Logger
}

// clearStatusMsg expires a status message.
type clearStatusMsg struct{ id int }

// App is the root Bubble Tea model.
type App struct {
	tr     *tracker.Tracker
	opts   Options
	logger *slog.Logger

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	habits   habitsState
	mood     moodState
	settings settingsState

	// Clear-all confirmation (huh form)
	resetForm   *huh.Form
	resetChoice *bool

	// Transient status line message
	status    string
	statusErr bool
	statusID  int
}

// NewApp creates a new TUI app model over an opened tracker.
func NewApp(tr *tracker.Tracker, opts Options) App {
	if opts.WeekDays < 1 {
		opts.WeekDays = 7
	}
	if opts.MoodDays < 1 {
		opts.MoodDays = 30
	}
	logger := opts.Logger
	if logger == nil {
		logger = applog.Discard()
	}

	theme.SetActive(tr.Theme())

	return App{
		tr:       tr,
		opts:     opts,
		logger:   logger,
		habits:   newHabitsState(opts.WeekDays),
		settings: newSettingsState(tr.Theme()),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.resetForm != nil {
			a.resetForm = a.resetForm.WithWidth(min(msg.Width, 60))
		}
		return a, nil

	case clearStatusMsg:
		if msg.id == a.statusID {
			a.status = ""
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.resetForm != nil {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Confirmation form intercepts all keys
		if a.resetForm != nil {
			if key == "esc" {
				return a.finishReset(false)
			}
			return a.updateResetForm(msg)
		}

		// Text input intercepts all keys while adding a habit
		if a.habits.adding {
			return a.updateHabitInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		case "X":
			return a.openReset()
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		switch a.activeTab {
		case tabHabits:
			return a.updateHabits(key)
		case tabMood:
			return a.updateMood(key)
		case tabSettings:
			return a.updateSettings(key)
		}
		return a, nil
	}

	// Forward anything else (cursor blinks) to the active input
	if a.resetForm != nil {
		return a.updateResetForm(msg)
	}
	if a.habits.adding {
		var cmd tea.Cmd
		a.habits.input, cmd = a.habits.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// ctx bounds one store operation.
func (a App) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}

// setStatus shows msg in the status bar for a few seconds.
func (a *App) setStatus(msg string, isErr bool) tea.Cmd {
	a.statusID++
	a.status = msg
	a.statusErr = isErr
	id := a.statusID
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{id: id} })
}

// fail logs err and reports it in the status bar.
func (a *App) fail(op string, err error) tea.Cmd {
	a.logger.Error("operation failed", applog.FieldOperation, op, applog.FieldError, err)
	return a.setStatus(fmt.Sprintf("%s failed: %v", op, err), true)
}

// ─── Clear all data ─────────────────────────────────────────────

func (a App) openReset() (tea.Model, tea.Cmd) {
	choice := false
	a.resetChoice = &choice
	a.resetForm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear all data?").
				Description("Every habit, completion and mood entry will be deleted. Your theme is kept.").
				Affirmative("Delete everything").
				Negative("Cancel").
				Value(a.resetChoice),
		),
	).WithShowHelp(false).WithWidth(min(max(a.width, 40), 60))
	return a, a.resetForm.Init()
}

func (a App) updateResetForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.resetForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.resetForm = f
	}

	switch a.resetForm.State {
	case huh.StateCompleted:
		return a.finishReset(*a.resetChoice)
	case huh.StateAborted:
		return a.finishReset(false)
	}
	return a, cmd
}

func (a App) finishReset(confirmed bool) (tea.Model, tea.Cmd) {
	a.resetForm = nil
	a.resetChoice = nil
	if !confirmed {
		return a, a.setStatus("Nothing deleted", false)
	}

	ctx, cancel := a.ctx()
	defer cancel()
	if err := a.tr.ClearAllData(ctx); err != nil {
		return a, a.fail("clear", err)
	}
	a.habits.clamp(0)
	return a, a.setStatus("All data cleared", false)
}

// ─── Views ──────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.resetForm != nil {
		return a.viewReset()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  lifetrack needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewReset() string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Delete).
		Padding(1, 2).
		Render(a.resetForm.View())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.AccentDeep).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"h m s", "Jump to tab"},
			{"tab", "Next tab"},
			{"↑ ↓ j k", "Move between habits / themes"},
			{"← →", "Move between days"},
		}},
		{"Habits", []struct{ key, desc string }{
			{"a", "Add habit"},
			{"space", "Toggle selected day"},
			{"d", "Delete habit"},
		}},
		{"Mood", []struct{ key, desc string }{
			{"1-5", "Rate the selected day"},
			{"t", "Back to today"},
		}},
		{"General", []struct{ key, desc string }{
			{"X", "Clear all data"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	right := a.tr.TodayKey()
	if a.status != "" {
		style := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Background)
		if a.statusErr {
			style = style.Foreground(t.Delete)
		}
		right = style.Render(a.status)
	}
	statusBar := components.RenderStatusBar(w, a.hints(), right)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabHabits:
		content = a.renderHabitsTab(cw)
	case tabMood:
		content = a.renderMoodTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) hints() string {
	switch {
	case a.habits.adding:
		return "[enter]save  [esc]cancel"
	case a.activeTab == tabHabits:
		return "[a]dd  [space]toggle  [d]elete  [?]help  [q]uit"
	case a.activeTab == tabMood:
		return "[1-5]rate  [←→]day  [t]oday  [?]help  [q]uit"
	default:
		return "[↑↓]choose  [enter]apply  [X]clear data  [q]uit"
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow RenderTabBar: a leading space, then tabs separated by one column.
func (a App) tabAtX(x int) int {
	pos := 1
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1
	}
	return -1
}
