package catalog

import "testing"

func TestParseGenerationTag(t *testing.T) {
	tests := []struct {
		in      string
		want    GenerationTag
		wantErr bool
	}{
		{"generation-i", GenerationI, false},
		{"Generation-IV", GenerationIV, false},
		{"iv", GenerationIV, false},
		{"4", GenerationIV, false},
		{"sinnoh", GenerationIV, false},
		{"ix", GenerationIX, false},
		{"paldea", GenerationIX, false},
		{"10", "", true},
		{"generation-x", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGenerationTag(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGenerationTag(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseGenerationTag(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerationTag_Metadata(t *testing.T) {
	gens := AllGenerations()
	if len(gens) != 9 {
		t.Fatalf("AllGenerations() = %d entries, want 9", len(gens))
	}

	for i, g := range gens {
		if g.Number() != i+1 {
			t.Errorf("%s.Number() = %d, want %d", g, g.Number(), i+1)
		}
		if g.Region() == "" {
			t.Errorf("%s has no region", g)
		}
	}

	if got := GenerationIII.Label(); got != "Generation III" {
		t.Errorf("Label() = %q, want %q", got, "Generation III")
	}
	if GenerationTag("generation-x").Valid() {
		t.Error("generation-x should not be valid")
	}
}
