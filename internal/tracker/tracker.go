// Package tracker owns the habit, mood and theme state and keeps it in sync
// with a store.KV. Every mutation validates, writes the KV, and only then
// replaces the in-memory state, so a failed write leaves memory unchanged.
//
// A Tracker is not safe for concurrent use; the CLI command or the TUI
// update loop is its only caller.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/theirongolddev/lifetrack/internal/dates"
	applog "github.com/theirongolddev/lifetrack/internal/log"
	"github.com/theirongolddev/lifetrack/internal/model"
	"github.com/theirongolddev/lifetrack/internal/pipeline"
	"github.com/theirongolddev/lifetrack/internal/store"
	"github.com/theirongolddev/lifetrack/internal/tui/theme"
)

var (
	// ErrHabitNotFound is returned by FindHabit when nothing matches.
	ErrHabitNotFound = errors.New("habit not found")
	// ErrAmbiguousHabit is returned by FindHabit when a name matches several habits.
	ErrAmbiguousHabit = errors.New("habit name is ambiguous, use the id")
)

// Tracker is the persisted habit and mood state.
type Tracker struct {
	kv     store.KV
	clock  dates.Clock
	logger *slog.Logger
	newID  func() string

	defaultTheme string

	habits model.Habits
	moods  model.Moods
	theme  string
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the source of "today".
func WithClock(c dates.Clock) Option {
	return func(t *Tracker) { t.clock = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// WithIDs overrides habit id generation.
func WithIDs(f func() string) Option {
	return func(t *Tracker) { t.newID = f }
}

// WithDefaultTheme sets the theme used until one is persisted. Unknown
// names fall back to theme.Default.
func WithDefaultTheme(name string) Option {
	return func(t *Tracker) { t.defaultTheme = name }
}

// Open builds a Tracker over kv and hydrates it. Only read errors from kv
// are returned; malformed payloads are logged and recovered as empty state.
func Open(ctx context.Context, kv store.KV, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		kv:     kv,
		clock:  dates.SystemClock,
		logger: applog.Discard(),
		newID:  model.NewID,
	}
	for _, o := range opts {
		o(t)
	}
	t.logger = applog.WithComponent(t.logger, applog.ComponentTracker)
	if !theme.Valid(t.defaultTheme) {
		t.defaultTheme = theme.Default.Name
	}

	if err := t.Load(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Load replaces the in-memory state with what the KV holds.
func (t *Tracker) Load(ctx context.Context) error {
	habits := model.Habits{}
	raw, ok, err := t.kv.Load(ctx, store.KeyHabits)
	if err != nil {
		return fmt.Errorf("loading habits: %w", err)
	}
	if ok {
		hs, dropped, err := DecodeHabits(raw)
		switch {
		case err != nil:
			t.logger.Warn("discarding unreadable habits", applog.FieldKey, store.KeyHabits, applog.FieldError, err)
		default:
			habits = hs
			if dropped > 0 {
				t.logger.Warn("dropped invalid habit entries", applog.FieldKey, store.KeyHabits, applog.FieldDropped, dropped)
			}
		}
	}

	moods := model.Moods{}
	raw, ok, err = t.kv.Load(ctx, store.KeyMoods)
	if err != nil {
		return fmt.Errorf("loading moods: %w", err)
	}
	if ok {
		m, dropped, err := DecodeMoods(raw)
		switch {
		case err != nil:
			t.logger.Warn("discarding unreadable moods", applog.FieldKey, store.KeyMoods, applog.FieldError, err)
		default:
			moods = m
			if dropped > 0 {
				t.logger.Warn("dropped invalid mood entries", applog.FieldKey, store.KeyMoods, applog.FieldDropped, dropped)
			}
		}
	}

	themeName := t.defaultTheme
	raw, ok, err = t.kv.Load(ctx, store.KeyTheme)
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}
	if ok {
		if th, err := theme.Lookup(raw); err == nil {
			themeName = th.Name
		} else {
			t.logger.Warn("ignoring unknown persisted theme", applog.FieldKey, store.KeyTheme, applog.FieldError, err)
		}
	}

	t.habits, t.moods, t.theme = habits, moods, themeName
	t.logger.Debug("state loaded", "habits", len(habits), "moods", len(moods), "theme", themeName)
	return nil
}

// Close closes the underlying store.
func (t *Tracker) Close() error {
	return t.kv.Close()
}

// Today returns the clock's current time.
func (t *Tracker) Today() time.Time {
	return t.clock()
}

// TodayKey returns today's date key.
func (t *Tracker) TodayKey() string {
	return dates.Key(t.clock())
}

// Habits returns a copy of the habits in display order.
func (t *Tracker) Habits() model.Habits {
	return t.habits.Clone()
}

// FindHabit resolves ref to a habit: an exact id match wins, then a
// case-insensitive name match that must be unique.
func (t *Tracker) FindHabit(ref string) (model.Habit, error) {
	ref = strings.TrimSpace(ref)
	if i := t.habits.Index(ref); i >= 0 {
		return t.habits[i].Clone(), nil
	}

	var found []model.Habit
	for _, h := range t.habits {
		if strings.EqualFold(h.Name, ref) {
			found = append(found, h)
		}
	}
	switch len(found) {
	case 0:
		return model.Habit{}, fmt.Errorf("%w: %q", ErrHabitNotFound, ref)
	case 1:
		return found[0].Clone(), nil
	default:
		return model.Habit{}, fmt.Errorf("%w: %q matches %d habits", ErrAmbiguousHabit, ref, len(found))
	}
}

// AddHabit appends a habit. A blank name reports ok=false and changes nothing.
func (t *Tracker) AddHabit(ctx context.Context, name string) (model.Habit, bool, error) {
	next, ok := model.AddHabit(t.habits, name, t.newID)
	if !ok {
		return model.Habit{}, false, nil
	}
	if err := t.saveHabits(ctx, next); err != nil {
		return model.Habit{}, false, err
	}
	t.habits = next
	added := next[len(next)-1]
	t.logger.Debug("habit added", "id", added.ID, "name", added.Name)
	return added.Clone(), true, nil
}

// DeleteHabit removes the habit with id. Unknown ids report ok=false.
func (t *Tracker) DeleteHabit(ctx context.Context, id string) (bool, error) {
	next, ok := model.DeleteHabit(t.habits, id)
	if !ok {
		return false, nil
	}
	if err := t.saveHabits(ctx, next); err != nil {
		return false, err
	}
	t.habits = next
	t.logger.Debug("habit deleted", "id", id)
	return true, nil
}

// ToggleCompletion flips the habit's flag for dateKey. Unknown ids report
// ok=false; a malformed dateKey is an error wrapping dates.ErrInvalidKey.
func (t *Tracker) ToggleCompletion(ctx context.Context, id, dateKey string) (bool, error) {
	if !dates.Valid(dateKey) {
		return false, fmt.Errorf("%w: %q", dates.ErrInvalidKey, dateKey)
	}
	next, ok := model.ToggleCompletion(t.habits, id, dateKey)
	if !ok {
		return false, nil
	}
	if err := t.saveHabits(ctx, next); err != nil {
		return false, err
	}
	t.habits = next
	t.logger.Debug("completion toggled", "id", id, "date", dateKey)
	return true, nil
}

// Moods returns a copy of all recorded moods.
func (t *Tracker) Moods() model.Moods {
	return t.moods.Clone()
}

// GetMood returns the score recorded for dateKey.
func (t *Tracker) GetMood(dateKey string) (model.Score, bool) {
	return t.moods.Get(dateKey)
}

// SetMood records score for dateKey, replacing any previous score.
// Errors wrap model.ErrInvalidScore or dates.ErrInvalidKey for bad input.
func (t *Tracker) SetMood(ctx context.Context, dateKey string, score model.Score) error {
	next, err := model.SetMood(t.moods, dateKey, score)
	if err != nil {
		return err
	}
	if err := t.saveMoods(ctx, next); err != nil {
		return err
	}
	t.moods = next
	t.logger.Debug("mood set", "date", dateKey, "score", int(score))
	return nil
}

// ClearMoods removes every recorded mood.
func (t *Tracker) ClearMoods(ctx context.Context) error {
	next := model.Moods{}
	if err := t.saveMoods(ctx, next); err != nil {
		return err
	}
	t.moods = next
	return nil
}

// ClearAllData removes all habits and moods from the store and memory.
// The theme is kept. Memory is only cleared once both keys are removed.
func (t *Tracker) ClearAllData(ctx context.Context) error {
	if err := t.kv.Remove(ctx, store.KeyHabits); err != nil {
		return fmt.Errorf("removing habits: %w", err)
	}
	if err := t.kv.Remove(ctx, store.KeyMoods); err != nil {
		return fmt.Errorf("removing moods: %w", err)
	}
	t.habits = model.Habits{}
	t.moods = model.Moods{}
	t.logger.Info("all data cleared")
	return nil
}

// Theme returns the selected theme name.
func (t *Tracker) Theme() string {
	return t.theme
}

// SetTheme selects and persists a theme. Unknown names wrap theme.ErrUnknownTheme.
func (t *Tracker) SetTheme(ctx context.Context, name string) error {
	th, err := theme.Lookup(name)
	if err != nil {
		return err
	}
	if err := t.kv.Save(ctx, store.KeyTheme, th.Name); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	t.theme = th.Name
	return nil
}

// HabitGrid builds the habit grid for the days ending today.
func (t *Tracker) HabitGrid(days int) pipeline.HabitGrid {
	return pipeline.BuildHabitGrid(t.habits, t.clock(), days)
}

// MoodSeries builds the mood series for the days ending today.
func (t *Tracker) MoodSeries(days int) []pipeline.MoodPoint {
	return pipeline.BuildMoodSeries(t.moods, t.clock(), days)
}

// Summary rolls up both windows ending today.
func (t *Tracker) Summary(habitDays, moodDays int) pipeline.Summary {
	return pipeline.Summarize(t.habits, t.moods, t.clock(), habitDays, moodDays)
}

func (t *Tracker) saveHabits(ctx context.Context, hs model.Habits) error {
	payload, err := EncodeHabits(hs)
	if err != nil {
		return err
	}
	if err := t.kv.Save(ctx, store.KeyHabits, payload); err != nil {
		return fmt.Errorf("saving habits: %w", err)
	}
	return nil
}

func (t *Tracker) saveMoods(ctx context.Context, m model.Moods) error {
	payload, err := EncodeMoods(m)
	if err != nil {
		return err
	}
	if err := t.kv.Save(ctx, store.KeyMoods, payload); err != nil {
		return fmt.Errorf("saving moods: %w", err)
	}
	return nil
}
