package model

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/lifetrack/internal/dates"
)

// ErrInvalidScore is returned for mood scores outside MinScore..MaxScore.
var ErrInvalidScore = errors.New("invalid mood score (must be 1-5)")

const (
	MinScore = 1
	MaxScore = 5
)

// Score is a daily mood rating. Zero is never a recorded value.
type Score int

// Valid reports whether s is within MinScore..MaxScore.
func (s Score) Valid() bool {
	return s >= MinScore && s <= MaxScore
}

// Label returns the human name of a score.
func (s Score) Label() string {
	switch s {
	case 5:
		return "Amazing"
	case 4:
		return "Good"
	case 3:
		return "Okay"
	case 2:
		return "Bad"
	case 1:
		return "Awful"
	default:
		return ""
	}
}

// Face returns a small text face for a score, used where images are not available.
func (s Score) Face() string {
	switch s {
	case 5:
		return "(^o^)"
	case 4:
		return "(^_^)"
	case 3:
		return "(-_-)"
	case 2:
		return "(._.)"
	case 1:
		return "(T_T)"
	default:
		return "( · )"
	}
}

// Scores lists every legal score, best first, in the order the picker shows them.
func Scores() []Score {
	return []Score{5, 4, 3, 2, 1}
}

// Moods maps a date key to the score recorded for that day.
type Moods map[string]Score

// Get returns the score for dateKey and whether one is recorded.
func (m Moods) Get(dateKey string) (Score, bool) {
	s, ok := m[dateKey]
	return s, ok
}

// Clone returns a copy of m. A nil map clones to an empty one.
func (m Moods) Clone() Moods {
	out := make(Moods, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// SetMood returns a copy of m with dateKey set to score. Invalid input
// returns m unchanged and an error.
//
// dateKey is expected to be no later than today. That is the caller's
// precondition and is not checked here.
func SetMood(m Moods, dateKey string, score Score) (Moods, error) {
	if !score.Valid() {
		return m, fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}
	if !dates.Valid(dateKey) {
		return m, fmt.Errorf("%w: %q", dates.ErrInvalidKey, dateKey)
	}
	out := m.Clone()
	out[dateKey] = score
	return out, nil
}
