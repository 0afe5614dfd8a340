// Package testutil provides generators for catconf settings tests.
package testutil

import (
	"fmt"
	"math/rand"

	"catconf/internal/setting"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-."

// GenerateSettings creates perCategory settings in each of categories
// categories. Names and values use a format-safe alphabet so every generated
// setting survives an encode/decode round trip unchanged.
func GenerateSettings(rng *rand.Rand, categories, perCategory int) []*setting.Setting {
	out := make([]*setting.Setting, 0, categories*perCategory)
	for c := 0; c < categories; c++ {
		category := fmt.Sprintf("category-%d-%s", c, Word(rng, 4))
		for k := 0; k < perCategory; k++ {
			key := fmt.Sprintf("key-%d-%s", k, Word(rng, 6))
			out = append(out, setting.New(category, key, Value(rng)))
		}
	}
	return out
}

// Value returns a random value: an integer, a bool, a float or a word.
func Value(rng *rand.Rand) any {
	switch rng.Intn(4) {
	case 0:
		return rng.Int63n(1_000_000) - 500_000
	case 1:
		return rng.Intn(2) == 0
	case 2:
		return float64(rng.Intn(10_000)) / 8
	default:
		return Word(rng, 1+rng.Intn(12))
	}
}

// Word returns n random characters from the format-safe alphabet.
func Word(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}
