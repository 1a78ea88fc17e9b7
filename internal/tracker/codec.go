package tracker

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/lifetrack/internal/dates"
	"github.com/theirongolddev/lifetrack/internal/model"
)

// EncodeHabits serializes habits as a JSON array. A nil slice encodes as [].
func EncodeHabits(hs model.Habits) (string, error) {
	if hs == nil {
		hs = model.Habits{}
	}
	b, err := json.Marshal(hs)
	if err != nil {
		return "", fmt.Errorf("encoding habits: %w", err)
	}
	return string(b), nil
}

// storedHabit accepts ids written either as strings or as bare numbers
// (millisecond timestamps in payloads exported from the browser widget).
type storedHabit struct {
	ID          json.RawMessage `json:"id"`
	Name        string          `json:"name"`
	Completions map[string]bool `json:"completions"`
}

func (sh storedHabit) id() string {
	var s string
	if err := json.Unmarshal(sh.ID, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(sh.ID, &n); err == nil {
		return n.String()
	}
	return ""
}

// DecodeHabits parses a habits payload. A syntax error fails the whole
// payload. Otherwise entries without an id or name, repeated ids, and
// completion flags under malformed date keys are dropped and counted.
func DecodeHabits(s string) (model.Habits, int, error) {
	var raw []storedHabit
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, 0, fmt.Errorf("decoding habits: %w", err)
	}

	out := make(model.Habits, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	dropped := 0
	for _, sh := range raw {
		h := model.Habit{ID: sh.id(), Name: strings.TrimSpace(sh.Name)}
		if h.ID == "" || h.Name == "" || seen[h.ID] {
			dropped++
			continue
		}
		seen[h.ID] = true

		completions := make(map[string]bool, len(sh.Completions))
		for k, v := range sh.Completions {
			if !dates.Valid(k) {
				dropped++
				continue
			}
			completions[k] = v
		}
		h.Completions = completions
		out = append(out, h)
	}
	return out, dropped, nil
}

// EncodeMoods serializes moods as a JSON object keyed by date.
func EncodeMoods(m model.Moods) (string, error) {
	if m == nil {
		m = model.Moods{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding moods: %w", err)
	}
	return string(b), nil
}

// DecodeMoods parses a moods payload. A syntax error fails the whole
// payload. Entries under malformed date keys or with a non-integral or
// out-of-range score are dropped and counted.
func DecodeMoods(s string) (model.Moods, int, error) {
	var raw map[string]float64
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, 0, fmt.Errorf("decoding moods: %w", err)
	}

	out := make(model.Moods, len(raw))
	dropped := 0
	for k, v := range raw {
		score := model.Score(v)
		if !dates.Valid(k) || v != math.Trunc(v) || !score.Valid() {
			dropped++
			continue
		}
		out[k] = score
	}
	return out, dropped, nil
}
