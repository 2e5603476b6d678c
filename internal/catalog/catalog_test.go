package catalog

import "testing"

func TestCatalogIntegrity(t *testing.T) {
	if Count() != 48 {
		t.Fatalf("expected 48 policies, got %d", Count())
	}

	seen := make(map[string]bool)
	for _, def := range All() {
		if seen[def.ID] {
			t.Errorf("duplicate policy id %q", def.ID)
		}
		seen[def.ID] = true

		if def.Tier < 1 || def.Tier > 3 {
			t.Errorf("%s: tier %d out of range", def.ID, def.Tier)
		}
		if def.MaxLevel < 1 {
			t.Errorf("%s: max level %d", def.ID, def.MaxLevel)
		}
		if def.BaseCost <= 0 {
			t.Errorf("%s: base cost %d", def.ID, def.BaseCost)
		}
		for _, req := range def.Prereqs {
			if _, ok := ByID(req); !ok {
				t.Errorf("%s: prerequisite %q not in catalog", def.ID, req)
			}
		}
	}

	for _, p := range Pillars() {
		if got := len(ByPillar(p)); got != 12 {
			t.Errorf("pillar %s: expected 12 policies, got %d", p, got)
		}
	}
}

func TestCostLadder(t *testing.T) {
	def := PolicyDefinition{BaseCost: 15, MaxLevel: 3}

	tests := []struct {
		level int
		want  int
	}{
		{1, 15},
		{2, 17}, // round(15 × 1.1)
		{3, 18}, // round(15 × 1.2)
	}
	for _, tt := range tests {
		if got := CostAtLevel(def, tt.level); got != tt.want {
			t.Errorf("CostAtLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}

	// 15 + 16.5 + 18 = 49.5, rounded once at the end.
	if got := CumulativeCost(def, 3); got != 50 {
		t.Errorf("CumulativeCost(3) = %d, want 50", got)
	}
	if got := CostAtLevel(def, 0); got != 0 {
		t.Errorf("CostAtLevel(0) = %d, want 0", got)
	}
}

func TestAvailabilityGating(t *testing.T) {
	def := PolicyDefinition{
		ID:         "test_policy",
		UnlockYear: 2030,
		Prereqs:    []string{"dep_policy"},
	}

	tests := []struct {
		name   string
		year   int
		active map[string]bool
		want   bool
	}{
		{"prereq active but before unlock year", 2025, map[string]bool{"dep_policy": true}, false},
		{"unlock year reached, prereq missing", 2030, map[string]bool{}, false},
		{"unlock year reached and prereq active", 2030, map[string]bool{"dep_policy": true}, true},
		{"past unlock year and prereq active", 2035, map[string]bool{"dep_policy": true}, true},
	}
	for _, tt := range tests {
		if got := IsAvailable(def, tt.year, tt.active); got != tt.want {
			t.Errorf("%s: IsAvailable = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAvailablePrereqsAreANDCombined(t *testing.T) {
	// gov_osh_ministry requires both gov_osh_framework_law and
	// gov_tripartite_council.
	def, ok := ByID("gov_osh_ministry")
	if !ok {
		t.Fatal("gov_osh_ministry missing from catalog")
	}
	year := def.UnlockYear

	if IsAvailable(def, year, map[string]bool{"gov_osh_framework_law": true}) {
		t.Error("available with only one of two prerequisites")
	}
	if !IsAvailable(def, year, map[string]bool{
		"gov_osh_framework_law":  true,
		"gov_tripartite_council": true,
	}) {
		t.Error("not available with all prerequisites active")
	}
}

func TestPresentationFallsBackToPillar(t *testing.T) {
	p, ok := PresentationFor("gov_penalty_reform")
	if !ok {
		t.Fatal("expected presentation for gov_penalty_reform")
	}
	if p.Icon != "scale" {
		t.Errorf("expected pillar default icon, got %q", p.Icon)
	}

	p, _ = PresentationFor("haz_ppe_standards")
	if p.Icon != "hard-hat" {
		t.Errorf("expected policy-specific icon, got %q", p.Icon)
	}

	if _, ok := PresentationFor("nope"); ok {
		t.Error("expected no presentation for unknown id")
	}
}
