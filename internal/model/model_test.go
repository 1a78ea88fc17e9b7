package model_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/lifetrack/internal/dates"
	"github.com/theirongolddev/lifetrack/internal/model"
)

func seqIDs(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func TestAddHabit(t *testing.T) {
	t.Run("Empty and blank names are rejected", func(t *testing.T) {
		var hs model.Habits
		for _, name := range []string{"", "   ", "\t\n"} {
			out, ok := model.AddHabit(hs, name, nil)
			assert.False(t, ok, "name %q", name)
			assert.Empty(t, out)
		}
	})

	t.Run("Appends trimmed habit with empty completions", func(t *testing.T) {
		hs := model.Habits{{ID: "a", Name: "Walk", Completions: map[string]bool{}}}
		out, ok := model.AddHabit(hs, "  Read ", seqIDs("b"))

		require.True(t, ok)
		require.Len(t, out, 2)
		assert.Equal(t, "Walk", out[0].Name)
		assert.Equal(t, "b", out[1].ID)
		assert.Equal(t, "Read", out[1].Name)
		assert.NotNil(t, out[1].Completions)
		assert.Empty(t, out[1].Completions)
		assert.Len(t, hs, 1, "input collection must not change")
	})

	t.Run("Colliding ids are regenerated", func(t *testing.T) {
		hs := model.Habits{{ID: "dup", Name: "Walk"}}
		out, ok := model.AddHabit(hs, "Read", seqIDs("dup", "", "fresh"))
		require.True(t, ok)
		assert.Equal(t, "fresh", out[1].ID)
	})

	t.Run("Default generator yields unique ids", func(t *testing.T) {
		var hs model.Habits
		for i := 0; i < 50; i++ {
			hs, _ = model.AddHabit(hs, fmt.Sprintf("habit %d", i), nil)
		}
		seen := map[string]bool{}
		for _, h := range hs {
			assert.False(t, seen[h.ID], "duplicate id %s", h.ID)
			seen[h.ID] = true
		}
	})
}

func TestDeleteHabit(t *testing.T) {
	hs := model.Habits{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}}

	out, ok := model.DeleteHabit(hs, "b")
	require.True(t, ok)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "c", out[1].ID)
	assert.Len(t, hs, 3)

	same, ok := model.DeleteHabit(out, "missing")
	assert.False(t, ok)
	assert.Equal(t, out, same)
}

func TestToggleCompletion(t *testing.T) {
	hs := model.Habits{{ID: "a", Name: "A", Completions: map[string]bool{}}}
	day := "2024-01-02"

	once, ok := model.ToggleCompletion(hs, "a", day)
	require.True(t, ok)
	assert.True(t, once[0].Done(day))
	assert.False(t, hs[0].Done(day), "input habit must not change")

	twice, ok := model.ToggleCompletion(once, "a", day)
	require.True(t, ok)
	assert.False(t, twice[0].Done(day))
	assert.True(t, once[0].Done(day))

	_, ok = model.ToggleCompletion(hs, "missing", day)
	assert.False(t, ok)
}

func TestSetMood(t *testing.T) {
	day := "2024-03-10"
	base := model.Moods{day: 4}

	for _, bad := range []model.Score{0, 6, -1} {
		out, err := model.SetMood(base, day, bad)
		assert.ErrorIs(t, err, model.ErrInvalidScore)
		got, ok := out.Get(day)
		assert.True(t, ok)
		assert.Equal(t, model.Score(4), got)
	}

	_, err := model.SetMood(base, "03/10/2024", 3)
	assert.ErrorIs(t, err, dates.ErrInvalidKey)

	out, err := model.SetMood(base, day, 3)
	require.NoError(t, err)
	got, ok := out.Get(day)
	assert.True(t, ok)
	assert.Equal(t, model.Score(3), got)
	assert.Equal(t, model.Score(4), base[day], "input map must not change")

	_, ok = out.Get("2024-03-11")
	assert.False(t, ok)
}

func TestScoreLabels(t *testing.T) {
	assert.Equal(t, "Amazing", model.Score(5).Label())
	assert.Equal(t, "Awful", model.Score(1).Label())
	assert.Equal(t, "", model.Score(0).Label())
	assert.Equal(t, []model.Score{5, 4, 3, 2, 1}, model.Scores())
}
