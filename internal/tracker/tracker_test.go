package tracker

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/lifetrack/internal/dates"
	"github.com/theirongolddev/lifetrack/internal/model"
	"github.com/theirongolddev/lifetrack/internal/store"
	"github.com/theirongolddev/lifetrack/internal/tui/theme"
)

func fixedClock(t *testing.T, key string) dates.Clock {
	t.Helper()
	d, err := dates.Parse(key)
	require.NoError(t, err)
	d = d.Add(10 * time.Hour)
	return func() time.Time { return d }
}

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("h%d", n)
	}
}

func openMemory(t *testing.T, kv store.KV) *Tracker {
	t.Helper()
	tr, err := Open(context.Background(), kv, WithClock(fixedClock(t, "2024-01-02")), WithIDs(counterIDs()))
	require.NoError(t, err)
	return tr
}

func TestOpenEmptyStore(t *testing.T) {
	tr := openMemory(t, store.NewMemory())
	assert.Empty(t, tr.Habits())
	assert.Empty(t, tr.Moods())
	assert.Equal(t, theme.Default.Name, tr.Theme())
	assert.Equal(t, "2024-01-02", tr.TodayKey())
}

func TestAddHabit(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	tr := openMemory(t, kv)

	for _, blank := range []string{"", "   "} {
		_, ok, err := tr.AddHabit(ctx, blank)
		require.NoError(t, err)
		assert.False(t, ok, "blank name %q", blank)
	}
	_, saved, _ := kv.Load(ctx, store.KeyHabits)
	assert.False(t, saved, "no-op adds must not write")

	h, ok, err := tr.AddHabit(ctx, "  Read ")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Read", h.Name)
	assert.Equal(t, "h1", h.ID)
	require.Len(t, tr.Habits(), 1)
}

func TestToggleIsInvolution(t *testing.T) {
	ctx := context.Background()
	tr := openMemory(t, store.NewMemory())
	h, _, err := tr.AddHabit(ctx, "Walk")
	require.NoError(t, err)

	ok, err := tr.ToggleCompletion(ctx, h.ID, "2024-01-01")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, tr.Habits()[0].Done("2024-01-01"))

	_, err = tr.ToggleCompletion(ctx, h.ID, "2024-01-01")
	require.NoError(t, err)
	assert.False(t, tr.Habits()[0].Done("2024-01-01"))

	ok, err = tr.ToggleCompletion(ctx, "missing", "2024-01-01")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = tr.ToggleCompletion(ctx, h.ID, "2024-1-1")
	assert.ErrorIs(t, err, dates.ErrInvalidKey)
}

func TestDeleteHabit(t *testing.T) {
	ctx := context.Background()
	tr := openMemory(t, store.NewMemory())
	a, _, _ := tr.AddHabit(ctx, "A")
	b, _, _ := tr.AddHabit(ctx, "B")

	ok, err := tr.DeleteHabit(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, tr.Habits(), 1)
	assert.Equal(t, b.ID, tr.Habits()[0].ID)

	ok, err = tr.DeleteHabit(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindHabit(t *testing.T) {
	ctx := context.Background()
	tr := openMemory(t, store.NewMemory())
	read, _, _ := tr.AddHabit(ctx, "Read")
	tr.AddHabit(ctx, "Walk")
	tr.AddHabit(ctx, "walk")

	got, err := tr.FindHabit(read.ID)
	require.NoError(t, err)
	assert.Equal(t, "Read", got.Name)

	got, err = tr.FindHabit("READ")
	require.NoError(t, err)
	assert.Equal(t, read.ID, got.ID)

	_, err = tr.FindHabit("WALK")
	assert.ErrorIs(t, err, ErrAmbiguousHabit)

	_, err = tr.FindHabit("Swim")
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestSetMood(t *testing.T) {
	ctx := context.Background()
	tr := openMemory(t, store.NewMemory())
	d := "2024-01-02"

	for _, bad := range []model.Score{0, 6} {
		err := tr.SetMood(ctx, d, bad)
		assert.ErrorIs(t, err, model.ErrInvalidScore)
		_, ok := tr.GetMood(d)
		assert.False(t, ok, "rejected score %d must not be stored", bad)
	}

	require.NoError(t, tr.SetMood(ctx, d, 3))
	got, ok := tr.GetMood(d)
	require.True(t, ok)
	assert.Equal(t, model.Score(3), got)

	require.NoError(t, tr.SetMood(ctx, d, 5))
	got, _ = tr.GetMood(d)
	assert.Equal(t, model.Score(5), got, "setting again replaces")

	assert.ErrorIs(t, tr.SetMood(ctx, "yesterday", 3), dates.ErrInvalidKey)
}

func TestWriteFailureLeavesMemoryUnchanged(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	tr := openMemory(t, kv)
	h, _, err := tr.AddHabit(ctx, "Read")
	require.NoError(t, err)
	require.NoError(t, tr.SetMood(ctx, "2024-01-01", 4))

	boom := errors.New("disk full")
	kv.FailSave = boom

	_, ok, err := tr.AddHabit(ctx, "Walk")
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)
	assert.Len(t, tr.Habits(), 1)

	_, err = tr.ToggleCompletion(ctx, h.ID, "2024-01-02")
	assert.ErrorIs(t, err, boom)
	assert.False(t, tr.Habits()[0].Done("2024-01-02"))

	_, err = tr.DeleteHabit(ctx, h.ID)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, tr.Habits(), 1)

	assert.ErrorIs(t, tr.SetMood(ctx, "2024-01-01", 1), boom)
	got, _ := tr.GetMood("2024-01-01")
	assert.Equal(t, model.Score(4), got)

	assert.ErrorIs(t, tr.ClearMoods(ctx), boom)
	assert.Len(t, tr.Moods(), 1)

	assert.ErrorIs(t, tr.SetTheme(ctx, "gold"), boom)
	assert.Equal(t, theme.Default.Name, tr.Theme())
}

func TestClearAllData(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	tr := openMemory(t, kv)
	h, _, _ := tr.AddHabit(ctx, "Read")
	_, err := tr.ToggleCompletion(ctx, h.ID, "2024-01-02")
	require.NoError(t, err)
	require.NoError(t, tr.SetMood(ctx, "2024-01-02", 2))
	require.NoError(t, tr.SetTheme(ctx, "purple"))

	require.NoError(t, tr.ClearAllData(ctx))
	assert.Empty(t, tr.Habits())
	assert.Empty(t, tr.Moods())
	assert.Equal(t, "purple", tr.Theme(), "theme survives a reset")

	reloaded := openMemory(t, kv)
	assert.Empty(t, reloaded.Habits())
	assert.Empty(t, reloaded.Moods())
	assert.Equal(t, "purple", reloaded.Theme())
}

func TestClearAllDataRemoveFailure(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	tr := openMemory(t, kv)
	tr.AddHabit(ctx, "Read")

	kv.FailRemove = errors.New("locked")
	err := tr.ClearAllData(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "removing habits")
	assert.Len(t, tr.Habits(), 1)
}

func TestSetTheme(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	tr := openMemory(t, kv)

	assert.ErrorIs(t, tr.SetTheme(ctx, "neon"), theme.ErrUnknownTheme)
	require.NoError(t, tr.SetTheme(ctx, " Green "))
	assert.Equal(t, "green", tr.Theme())

	raw, ok, _ := kv.Load(ctx, store.KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "green", raw, "theme is stored as the bare name")
}

func TestDefaultThemeOption(t *testing.T) {
	kv := store.NewMemory()
	tr, err := Open(context.Background(), kv, WithDefaultTheme("mono"))
	require.NoError(t, err)
	assert.Equal(t, "mono", tr.Theme())

	tr, err = Open(context.Background(), kv, WithDefaultTheme("nope"))
	require.NoError(t, err)
	assert.Equal(t, theme.Default.Name, tr.Theme())
}

func TestReloadRoundTripSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lifetrack.db")

	kv, err := store.OpenSQLite(path)
	require.NoError(t, err)
	tr := openMemory(t, kv)
	a, _, _ := tr.AddHabit(ctx, "Read")
	tr.AddHabit(ctx, "Stretch")
	_, err = tr.ToggleCompletion(ctx, a.ID, "2024-01-01")
	require.NoError(t, err)
	_, err = tr.ToggleCompletion(ctx, a.ID, "2024-01-02")
	require.NoError(t, err)
	_, err = tr.ToggleCompletion(ctx, a.ID, "2024-01-02")
	require.NoError(t, err)
	require.NoError(t, tr.SetMood(ctx, "2023-12-31", 5))
	require.NoError(t, tr.SetTheme(ctx, "blue"))
	wantHabits, wantMoods := tr.Habits(), tr.Moods()
	require.NoError(t, tr.Close())

	kv, err = store.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	again := openMemory(t, kv)

	assert.Equal(t, wantHabits, again.Habits())
	assert.Equal(t, wantMoods, again.Moods())
	assert.Equal(t, "blue", again.Theme())
	assert.Equal(t, tr.HabitGrid(7), again.HabitGrid(7))
}

func TestMalformedPayloadsRecoverEmpty(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Save(ctx, store.KeyHabits, "{not json"))
	require.NoError(t, kv.Save(ctx, store.KeyMoods, `{"2024-01-01": 9, "2024-01-02": 3}`))
	require.NoError(t, kv.Save(ctx, store.KeyTheme, "flexoki"))

	tr := openMemory(t, kv)
	assert.Empty(t, tr.Habits())
	assert.Equal(t, model.Moods{"2024-01-02": 3}, tr.Moods())
	assert.Equal(t, theme.Default.Name, tr.Theme())
}

func TestViews(t *testing.T) {
	ctx := context.Background()
	tr := openMemory(t, store.NewMemory())
	h, _, _ := tr.AddHabit(ctx, "Read")
	_, err := tr.ToggleCompletion(ctx, h.ID, "2024-01-02")
	require.NoError(t, err)
	require.NoError(t, tr.SetMood(ctx, "2023-12-20", 4))

	grid := tr.HabitGrid(7)
	require.Len(t, grid.Rows, 1)
	assert.True(t, grid.Rows[0].Cells[6].Done)

	series := tr.MoodSeries(30)
	require.Len(t, series, 30)
	recorded := 0
	for _, p := range series {
		if !p.Gap {
			recorded++
			assert.Equal(t, "12/20", p.Label)
		}
	}
	assert.Equal(t, 1, recorded)

	s := tr.Summary(7, 30)
	assert.Equal(t, 1, s.DoneToday)
	assert.Equal(t, 1, s.Mood.Recorded)
}
