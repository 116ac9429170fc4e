package tips

import "testing"

func TestAll(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("All() returned no tips")
	}

	// The returned slice is a copy; mutating it must not corrupt the source.
	all[0] = "mutated"
	if All()[0] == "mutated" {
		t.Error("mutating All()'s result changed the tip list")
	}
}

func TestRandom(t *testing.T) {
	known := map[string]bool{}
	for _, tip := range All() {
		known[tip] = true
	}

	for i := 0; i < 50; i++ {
		if tip := Random(); !known[tip] {
			t.Fatalf("Random() = %q, not in the tip list", tip)
		}
	}
}
