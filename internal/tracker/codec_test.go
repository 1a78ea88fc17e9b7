package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/lifetrack/internal/model"
)

func TestHabitsRoundTrip(t *testing.T) {
	hs := model.Habits{
		{ID: "a", Name: "Read", Completions: map[string]bool{"2024-01-01": true, "2024-01-02": false}},
		{ID: "b", Name: "Walk", Completions: map[string]bool{}},
	}
	s, err := EncodeHabits(hs)
	require.NoError(t, err)

	got, dropped, err := DecodeHabits(s)
	require.NoError(t, err)
	assert.Zero(t, dropped)
	assert.Equal(t, hs, got)
}

func TestEncodeEmpty(t *testing.T) {
	s, err := EncodeHabits(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", s)

	s, err = EncodeMoods(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", s)
}

func TestDecodeHabitsDropsBadEntries(t *testing.T) {
	payload := `[
		{"id": 1712345678901, "name": "Read", "completions": {"2024-04-05": true, "April 5": true}},
		{"id": "", "name": "No id"},
		{"id": "x", "name": "   "},
		{"id": "y", "name": "Walk"},
		{"id": "y", "name": "Walk again"}
	]`
	got, dropped, err := DecodeHabits(payload)
	require.NoError(t, err)
	assert.Equal(t, 4, dropped)
	require.Len(t, got, 2)
	assert.Equal(t, "1712345678901", got[0].ID, "numeric ids are kept as their decimal text")
	assert.Equal(t, map[string]bool{"2024-04-05": true}, got[0].Completions)
	assert.Equal(t, "y", got[1].ID)
	assert.NotNil(t, got[1].Completions)
}

func TestDecodeHabitsSyntaxError(t *testing.T) {
	_, _, err := DecodeHabits(`[{"id":`)
	assert.Error(t, err)
	_, _, err = DecodeHabits(`{"id": "a"}`)
	assert.Error(t, err, "an object is not a habit list")
}

func TestDecodeMoods(t *testing.T) {
	got, dropped, err := DecodeMoods(`{"2024-01-01": 3, "2024-01-02": 0, "2024-01-03": 6, "2024-01-04": 2.5, "bad": 4, "2024-01-05": 5.0}`)
	require.NoError(t, err)
	assert.Equal(t, 4, dropped)
	assert.Equal(t, model.Moods{"2024-01-01": 3, "2024-01-05": 5}, got)

	_, _, err = DecodeMoods(`[3, 4]`)
	assert.Error(t, err)
}

func TestMoodsRoundTrip(t *testing.T) {
	m := model.Moods{"2024-02-29": 1, "2024-03-01": 5}
	s, err := EncodeMoods(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2024-02-29":1,"2024-03-01":5}`, s)

	got, _, err := DecodeMoods(s)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}
