package farm

import (
	"testing"
)

func TestCatalog_Lookup(t *testing.T) {
	catalog := NewCatalog([]PriceRecord{
		rec("Exalted Orb", 1, "Exalted Orb"),
		rec("Divine Orb", 150, "Exalted Orb"),
	})

	testCases := []struct {
		name  string
		query string
		found bool
	}{
		{"exact name", "Divine Orb", true},
		{"upper case", "DIVINE ORB", true},
		{"surrounding spaces", "  divine orb ", true},
		{"unknown item", "Mirror of Kalandra", false},
		{"empty query", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recFound, ok := catalog.Lookup(tc.query)
			if ok != tc.found {
				t.Fatalf("Lookup(%q) found=%v, want %v", tc.query, ok, tc.found)
			}
			if ok && recFound.Name != "Divine Orb" {
				t.Errorf("Lookup(%q) = %q, want Divine Orb", tc.query, recFound.Name)
			}
		})
	}
}

func TestCatalog_DuplicateNamesLastWins(t *testing.T) {
	catalog := NewCatalog([]PriceRecord{
		rec("Exalted Orb", 1, "Exalted Orb"),
		rec("Divine Orb", 100, "Exalted Orb"),
		rec("divine orb", 150, "Exalted Orb"),
	})

	found, ok := catalog.Lookup("Divine Orb")
	if !ok {
		t.Fatal("Lookup(Divine Orb) not found")
	}
	if got := found.ExaltedValue.String(); got != "150" {
		t.Errorf("duplicate resolution kept value %s, want 150 (last seen)", got)
	}
	// the record list itself is untouched
	if catalog.Len() != 3 {
		t.Errorf("Len() = %d, want 3", catalog.Len())
	}
}

func TestCatalog_SectionsAndDefaults(t *testing.T) {
	a := rec("Exalted Orb", 1, "Exalted Orb")
	b := rec("An Audience with the King", 30, "Exalted Orb")
	b.Section = "fragments"

	catalog := NewCatalog([]PriceRecord{a, b})

	sections := catalog.Sections()
	if len(sections) != 2 || sections[0] != DefaultSection || sections[1] != "fragments" {
		t.Fatalf("Sections() = %v, want [%s fragments]", sections, DefaultSection)
	}
	if got := len(catalog.Section("fragments")); got != 1 {
		t.Errorf("Section(fragments) has %d records, want 1", got)
	}
	if got := len(catalog.Section(DefaultSection)); got != 1 {
		t.Errorf("Section(%s) has %d records, want 1", DefaultSection, got)
	}
}

func TestNewCatalog_Empty(t *testing.T) {
	catalog := NewCatalog(nil)
	if catalog.Len() != 0 {
		t.Errorf("Len() = %d, want 0", catalog.Len())
	}
	if _, ok := catalog.Lookup("anything"); ok {
		t.Error("Lookup on empty catalog should not match")
	}
	if catalog.Rates().ExaltedPerDivine != nil || catalog.Rates().ExaltedPerChaos != nil {
		t.Error("empty catalog should have nil rates")
	}
}
