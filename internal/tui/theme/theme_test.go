package theme

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"pink", "blue", "mono", "purple", "gold", "green", " Gold "} {
		if _, err := Lookup(name); err != nil {
			t.Fatalf("Lookup(%q) error = %v", name, err)
		}
	}
	_, err := Lookup("flexoki-dark")
	if !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("Lookup(unknown) error = %v, want ErrUnknownTheme", err)
	}
}

func TestByNameFallsBackToDefault(t *testing.T) {
	if got := ByName("nope"); got.Name != Default.Name {
		t.Fatalf("ByName(nope) = %q, want %q", got.Name, Default.Name)
	}
	if got := ByName("purple"); got.Title != "Royal Purple" {
		t.Fatalf("ByName(purple).Title = %q", got.Title)
	}
}

func TestSetActive(t *testing.T) {
	orig := Active
	defer func() { Active = orig }()

	SetActive("blue")
	if Active.Name != "blue" {
		t.Fatalf("Active = %q after SetActive(blue)", Active.Name)
	}
	SetActive("")
	if Active.Name != Default.Name {
		t.Fatalf("Active = %q after SetActive(empty)", Active.Name)
	}
}

func TestNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, n := range Names() {
		if seen[n] {
			t.Fatalf("duplicate theme name %q", n)
		}
		seen[n] = true
	}
	if len(seen) != len(All) {
		t.Fatalf("Names() len = %d, want %d", len(seen), len(All))
	}
}
