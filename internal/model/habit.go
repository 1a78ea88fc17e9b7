// Package model defines the tracker's domain types and the pure reducers
// that transform them. Reducers never mutate their inputs.
package model

import (
	"strings"

	"github.com/google/uuid"
)

// Habit is a named daily habit with per-date completion flags.
// A missing date in Completions means "not done".
type Habit struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Completions map[string]bool `json:"completions"`
}

// Done reports whether the habit was completed on dateKey.
func (h Habit) Done(dateKey string) bool {
	return h.Completions[dateKey]
}

// Clone returns a deep copy of h.
func (h Habit) Clone() Habit {
	c := Habit{ID: h.ID, Name: h.Name, Completions: make(map[string]bool, len(h.Completions))}
	for k, v := range h.Completions {
		c.Completions[k] = v
	}
	return c
}

// Habits is the ordered habit collection.
type Habits []Habit

// Clone returns a deep copy of hs. A nil collection clones to an empty one.
func (hs Habits) Clone() Habits {
	out := make(Habits, len(hs))
	for i, h := range hs {
		out[i] = h.Clone()
	}
	return out
}

// Index returns the position of the habit with id, or -1.
func (hs Habits) Index(id string) int {
	for i, h := range hs {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// NewID generates a fresh habit id.
func NewID() string {
	return uuid.NewString()
}

// AddHabit appends a habit named strings.TrimSpace(name) with an id from
// newID. It reports false and returns hs unchanged when the trimmed name is
// empty. newID is retried until it yields an id not already in hs.
func AddHabit(hs Habits, name string, newID func() string) (Habits, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return hs, false
	}
	if newID == nil {
		newID = NewID
	}
	id := newID()
	for id == "" || hs.Index(id) >= 0 {
		id = newID()
	}

	out := make(Habits, len(hs), len(hs)+1)
	copy(out, hs)
	out = append(out, Habit{ID: id, Name: trimmed, Completions: map[string]bool{}})
	return out, true
}

// DeleteHabit removes the habit with id. Unknown ids report false.
func DeleteHabit(hs Habits, id string) (Habits, bool) {
	idx := hs.Index(id)
	if idx < 0 {
		return hs, false
	}
	out := make(Habits, 0, len(hs)-1)
	out = append(out, hs[:idx]...)
	out = append(out, hs[idx+1:]...)
	return out, true
}

// ToggleCompletion flips the flag at dateKey for the habit with id.
// Unknown ids report false.
func ToggleCompletion(hs Habits, id, dateKey string) (Habits, bool) {
	idx := hs.Index(id)
	if idx < 0 {
		return hs, false
	}
	out := make(Habits, len(hs))
	copy(out, hs)

	h := hs[idx].Clone()
	h.Completions[dateKey] = !h.Completions[dateKey]
	out[idx] = h
	return out, true
}
