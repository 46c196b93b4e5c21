package taxonomy

import "testing"

func TestAllPatterns_Count(t *testing.T) {
	all := AllPatterns()
	if len(all) != 14 {
		t.Errorf("got %d patterns, want 14", len(all))
	}
}

func TestGetPattern_Found(t *testing.T) {
	p := GetPattern("proc-step-skip")
	if p == nil {
		t.Fatal("GetPattern(proc-step-skip) returned nil")
	}
	if p.Category != CategoryMisconception {
		t.Errorf("category = %q, want %q", p.Category, CategoryMisconception)
	}
	if p.Label == "" {
		t.Error("label is empty")
	}
	if p.Description == "" {
		t.Error("description is empty")
	}
}

func TestGetPattern_NotFound(t *testing.T) {
	p := GetPattern("nonexistent")
	if p != nil {
		t.Errorf("GetPattern(nonexistent) = %v, want nil", p)
	}
}

func TestPatternsByCategory(t *testing.T) {
	tests := []struct {
		cat  Category
		want int
	}{
		{CategoryMisconception, 8},
		{CategorySpeedRush, 1},
		{CategoryCareless, 1},
		{CategoryGuessing, 2},
		{CategoryHintReliance, 2},
	}

	for _, tt := range tests {
		ps := PatternsByCategory(tt.cat)
		if len(ps) != tt.want {
			t.Errorf("PatternsByCategory(%s) = %d entries, want %d", tt.cat, len(ps), tt.want)
		}
	}
}

func TestValidPair(t *testing.T) {
	tests := []struct {
		name      string
		cat       Category
		patternID string
		want      bool
	}{
		{"misconception with registered ID", CategoryMisconception, "proc-step-skip", true},
		{"misconception with empty ID", CategoryMisconception, "", false},
		{"misconception with foreign ID", CategoryMisconception, "pace-rush", false},
		{"careless with empty ID", CategoryCareless, "", true},
		{"careless with matching ID", CategoryCareless, "pace-careless-streak", true},
		{"careless with unknown ID", CategoryCareless, "nonexistent", false},
		{"unknown category", Category("bogus"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPair(tt.cat, tt.patternID); got != tt.want {
				t.Errorf("ValidPair(%s, %q) = %v, want %v", tt.cat, tt.patternID, got, tt.want)
			}
		})
	}
}

func TestSeedData_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range seedPatterns {
		if seen[p.ID] {
			t.Errorf("duplicate pattern ID: %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestSeedData_AllFieldsPopulated(t *testing.T) {
	for _, p := range seedPatterns {
		if p.ID == "" {
			t.Error("pattern with empty ID")
		}
		if !ValidCategory(p.Category) {
			t.Errorf("pattern %s has invalid category %q", p.ID, p.Category)
		}
		if p.Strand == "" {
			t.Errorf("pattern %s has empty strand", p.ID)
		}
		if p.Label == "" {
			t.Errorf("pattern %s has empty label", p.ID)
		}
		if p.Description == "" {
			t.Errorf("pattern %s has empty description", p.ID)
		}
	}
}
