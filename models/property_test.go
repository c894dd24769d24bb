package models

import "testing"

func TestFlagRegistry(t *testing.T) {
	flags := PropertyFlags{HasElevator: true, NearMetro: true}
	p := Property{PropertyFlags: flags}

	if !p.Flag("has_elevator") {
		t.Error("has_elevator should be set")
	}
	if !p.Flag("near_metro") {
		t.Error("near_metro should be set")
	}
	if p.Flag("has_balcony") {
		t.Error("has_balcony should be unset")
	}
	// Unknown names never match
	if p.Flag("no_such_flag") {
		t.Error("unknown flag name must report false")
	}
}

func TestKnownFlag(t *testing.T) {
	if !KnownFlag("has_natural_gas") {
		t.Error("has_natural_gas should be known")
	}
	if KnownFlag("HasNaturalGas") {
		t.Error("Go field names are not wire names")
	}
}

func TestFlagNamesCoverRegistry(t *testing.T) {
	names := FlagNames()
	if len(names) == 0 {
		t.Fatal("expected flag names")
	}
	for _, name := range names {
		if !KnownFlag(name) {
			t.Errorf("FlagNames returned unknown flag %q", name)
		}
	}
}

func TestIsValidCategorical(t *testing.T) {
	if !IsValidCategorical("", Conditions) {
		t.Error("empty value means not set and is always allowed")
	}
	if !IsValidCategorical("renovated", Conditions) {
		t.Error("renovated is a valid condition")
	}
	if IsValidCategorical("haunted", Conditions) {
		t.Error("haunted is not a valid condition")
	}
}

func TestCategoryLabels(t *testing.T) {
	lists := CategoryLists{
		CategoryAmenities: {"balcony", "fireplace"},
	}
	if got := lists.Labels(CategoryAmenities); len(got) != 2 {
		t.Errorf("labels = %v, want 2 entries", got)
	}
	if got := lists.Labels(CategorySecurity); len(got) != 0 {
		t.Errorf("missing category should yield empty, got %v", got)
	}
	var nilLists CategoryLists
	if got := nilLists.Labels(CategoryAmenities); got == nil || len(got) != 0 {
		t.Errorf("nil map should yield empty slice, got %v", got)
	}
}
