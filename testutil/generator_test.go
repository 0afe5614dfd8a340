package testutil

import (
	"math/rand"
	"strings"
	"testing"
)

func TestGenerateSettings(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	settings := GenerateSettings(rng, 3, 5)

	if len(settings) != 15 {
		t.Fatalf("GenerateSettings() = %d settings, want 15", len(settings))
	}

	seen := make(map[string]bool)
	for _, s := range settings {
		id := s.Category() + "\x00" + s.Key()
		if seen[id] {
			t.Errorf("duplicate setting %s/%s", s.Category(), s.Key())
		}
		seen[id] = true

		for _, field := range []string{s.Category(), s.Key(), s.String()} {
			if strings.ContainsAny(field, "=[]\r\n") {
				t.Errorf("field %q contains format characters", field)
			}
		}
	}
}

func TestWordLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 16} {
		if got := Word(rng, n); len(got) != n {
			t.Errorf("Word(%d) has length %d", n, len(got))
		}
	}
}
