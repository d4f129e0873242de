package theme

import (
	"testing"

	"merchdesk/models"
)

func TestResolveFallsBackToDefault(t *testing.T) {
	if got := Resolve("unknown").Key; got != models.DefaultTheme {
		t.Fatalf("expected fallback to %s, got %s", models.DefaultTheme, got)
	}
	if got := Resolve(" Slate ").Key; got != models.ThemeSlate {
		t.Fatalf("expected slate theme, got %s", got)
	}
}

func TestLookupRejectsUnknownThemes(t *testing.T) {
	if _, ok := Lookup("galaxy"); ok {
		t.Fatal("expected unknown theme to be rejected")
	}
	if def, ok := Lookup("HARBOR"); !ok || def.Key != models.ThemeHarbor {
		t.Fatalf("expected harbor theme, got %+v (ok=%t)", def, ok)
	}
}

func TestOptionsAreSortedByLabel(t *testing.T) {
	options := Options()
	if len(options) != 3 {
		t.Fatalf("expected three theme options, got %d", len(options))
	}
	for i := 1; i < len(options); i++ {
		if options[i-1].Label > options[i].Label {
			t.Fatalf("expected options to be sorted alphabetically by label: %v", options)
		}
	}
}
