package domain

import "testing"

func TestCombinedText(t *testing.T) {
	b := Book{
		Title:       "1984",
		Author:      "George Orwell",
		Genre:       "Dystopian Fiction",
		Description: "A dystopian novel about totalitarian control",
	}
	want := "1984 George Orwell Dystopian Fiction A dystopian novel about totalitarian control"
	if got := b.CombinedText(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCombinedText_EmptyFields(t *testing.T) {
	// Missing fields collapse to empty strings, never null; the
	// separator spaces are kept so field order stays fixed.
	b := Book{Title: "Untitled"}
	want := "Untitled   "
	if got := b.CombinedText(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
