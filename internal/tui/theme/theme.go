// Package theme defines the color themes shared by the CLI and TUI.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownTheme is returned when a theme name is not in All.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme defines the color roles used throughout the UI.
type Theme struct {
	Name         string // persisted identifier
	Title        string // display name
	Background   lipgloss.Color
	Surface      lipgloss.Color // Card/panel backgrounds
	Border       lipgloss.Color // Subtle borders, inactive day rings
	BorderAccent lipgloss.Color // Focused card borders
	TextPrimary  lipgloss.Color
	TextMuted    lipgloss.Color // Secondary text (labels, weekday names)
	TextDim      lipgloss.Color // Lowest contrast text (hints, axes)
	Accent       lipgloss.Color // Primary accent (active tab, done days)
	AccentDeep   lipgloss.Color // Secondary accent
	Chart        lipgloss.Color // Mood line color
	Delete       lipgloss.Color
}

// Pink is the default theme.
var Pink = Theme{
	Name:         "pink",
	Title:        "Pink Panda",
	Background:   lipgloss.Color("#0A0A0A"),
	Surface:      lipgloss.Color("#1A1A1A"),
	Border:       lipgloss.Color("#333333"),
	BorderAccent: lipgloss.Color("#FF69B4"),
	TextPrimary:  lipgloss.Color("#E0E0E0"),
	TextMuted:    lipgloss.Color("#999999"),
	TextDim:      lipgloss.Color("#666666"),
	Accent:       lipgloss.Color("#FF69B4"),
	AccentDeep:   lipgloss.Color("#FF1493"),
	Chart:        lipgloss.Color("#FF69B4"),
	Delete:       lipgloss.Color("#FF6B9D"),
}

// Blue is a cool ocean palette.
var Blue = Theme{
	Name:         "blue",
	Title:        "Ocean Blue",
	Background:   lipgloss.Color("#0A0E1A"),
	Surface:      lipgloss.Color("#0F172A"),
	Border:       lipgloss.Color("#334155"),
	BorderAccent: lipgloss.Color("#60A5FA"),
	TextPrimary:  lipgloss.Color("#E0E7FF"),
	TextMuted:    lipgloss.Color("#94A3B8"),
	TextDim:      lipgloss.Color("#64748B"),
	Accent:       lipgloss.Color("#60A5FA"),
	AccentDeep:   lipgloss.Color("#3B82F6"),
	Chart:        lipgloss.Color("#60A5FA"),
	Delete:       lipgloss.Color("#F87171"),
}

// Mono uses greys only.
var Mono = Theme{
	Name:         "mono",
	Title:        "Monochrome",
	Background:   lipgloss.Color("#0A0A0A"),
	Surface:      lipgloss.Color("#171717"),
	Border:       lipgloss.Color("#404040"),
	BorderAccent: lipgloss.Color("#D4D4D4"),
	TextPrimary:  lipgloss.Color("#FAFAFA"),
	TextMuted:    lipgloss.Color("#A3A3A3"),
	TextDim:      lipgloss.Color("#737373"),
	Accent:       lipgloss.Color("#D4D4D4"),
	AccentDeep:   lipgloss.Color("#A3A3A3"),
	Chart:        lipgloss.Color("#D4D4D4"),
	Delete:       lipgloss.Color("#A3A3A3"),
}

// Purple is a violet palette.
var Purple = Theme{
	Name:         "purple",
	Title:        "Royal Purple",
	Background:   lipgloss.Color("#0F0A1A"),
	Surface:      lipgloss.Color("#180F2A"),
	Border:       lipgloss.Color("#4C1D95"),
	BorderAccent: lipgloss.Color("#C084FC"),
	TextPrimary:  lipgloss.Color("#F3E8FF"),
	TextMuted:    lipgloss.Color("#C4B5FD"),
	TextDim:      lipgloss.Color("#7C3AED"),
	Accent:       lipgloss.Color("#C084FC"),
	AccentDeep:   lipgloss.Color("#A855F7"),
	Chart:        lipgloss.Color("#C084FC"),
	Delete:       lipgloss.Color("#F87171"),
}

// Gold is a warm yellow palette.
var Gold = Theme{
	Name:         "gold",
	Title:        "Golden Luxury",
	Background:   lipgloss.Color("#0A0A0A"),
	Surface:      lipgloss.Color("#1A1814"),
	Border:       lipgloss.Color("#44403C"),
	BorderAccent: lipgloss.Color("#FCD34D"),
	TextPrimary:  lipgloss.Color("#FEF3C7"),
	TextMuted:    lipgloss.Color("#FDE047"),
	TextDim:      lipgloss.Color("#CA8A04"),
	Accent:       lipgloss.Color("#FCD34D"),
	AccentDeep:   lipgloss.Color("#EAB308"),
	Chart:        lipgloss.Color("#FCD34D"),
	Delete:       lipgloss.Color("#F59E0B"),
}

// Green is a forest palette.
var Green = Theme{
	Name:         "green",
	Title:        "Forest Green",
	Background:   lipgloss.Color("#0A120A"),
	Surface:      lipgloss.Color("#141E14"),
	Border:       lipgloss.Color("#2D4A2D"),
	BorderAccent: lipgloss.Color("#4ADE80"),
	TextPrimary:  lipgloss.Color("#D1FAE5"),
	TextMuted:    lipgloss.Color("#86EFAC"),
	TextDim:      lipgloss.Color("#15803D"),
	Accent:       lipgloss.Color("#4ADE80"),
	AccentDeep:   lipgloss.Color("#22C55E"),
	Chart:        lipgloss.Color("#4ADE80"),
	Delete:       lipgloss.Color("#F87171"),
}

// All available themes, in menu order.
var All = []Theme{Pink, Blue, Mono, Purple, Gold, Green}

// Default is used when nothing valid is configured or persisted.
var Default = Pink

// Active is the currently selected theme.
var Active = Default

// Lookup returns the theme with name. Matching ignores case and surrounding space.
func Lookup(name string) (Theme, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, t := range All {
		if t.Name == n {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknownTheme, name, strings.Join(Names(), ", "))
}

// ByName returns a theme by its name, defaulting to Default.
func ByName(name string) Theme {
	t, err := Lookup(name)
	if err != nil {
		return Default
	}
	return t
}

// Valid reports whether name is a known theme.
func Valid(name string) bool {
	_, err := Lookup(name)
	return err == nil
}

// Names lists every theme name in menu order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
