// Package dice parses tabletop dice notation (e.g. "2d6+5") and evaluates it
// by rolling the requested dice and applying the modifier.
//
// Evaluation is driven by a Source, the randomness provider. The package
// ships two: a crypto/rand-backed source for ordinary rolls, and a
// seed-derived source whose output is fully reproducible from a 32-byte seed.
package dice

import (
	"fmt"
	"strings"
)

// RollResult holds the outcome of a single dice roll evaluation.
//
// Postcondition: Total == sum(Dice) + Modifier. Dice holds the individual
// die results in generation order.
type RollResult struct {
	Total    int   // sum of all dice plus the modifier
	Dice     []int // individual die results before modifier
	Modifier int   // flat modifier (may be negative)
}

// String renders the result as a bracketed die list, the modifier when one
// is present, and the total:
//
//	"[4, 2] + 5 = 9"
//	"[1, 7, 3] - 2 = 9"
//	"[18] = 18"
func (r RollResult) String() string {
	parts := make([]string, len(r.Dice))
	for i, d := range r.Dice {
		parts[i] = fmt.Sprintf("%d", d)
	}
	dice := "[" + strings.Join(parts, ", ") + "]"

	switch {
	case r.Modifier > 0:
		return fmt.Sprintf("%s + %d = %d", dice, r.Modifier, r.Total)
	case r.Modifier < 0:
		return fmt.Sprintf("%s - %d = %d", dice, -r.Modifier, r.Total)
	default:
		return fmt.Sprintf("%s = %d", dice, r.Total)
	}
}

// Source is the randomness provider for dice rolls.
//
// The crypto source returned by NewCryptoSource is safe for concurrent use.
// Seeded sources are stateful stream readers and must not be shared across
// goroutines; construct one per evaluation.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
