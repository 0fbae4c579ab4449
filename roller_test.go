package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dice"
)

// stubSource replays a fixed script of Intn results.
type stubSource struct {
	script []int
	pos    int
}

func (s *stubSource) Intn(n int) int {
	v := s.script[s.pos%len(s.script)]
	s.pos++
	return v % n
}

// TestEvaluate_UsesSourceInOrder verifies that dice are generated in source
// order and summed with the modifier.
func TestEvaluate_UsesSourceInOrder(t *testing.T) {
	src := &stubSource{script: []int{3, 1, 5}}
	result := dice.Evaluate(dice.Request{Quantity: 3, Sides: 6, Modifier: 2}, src)

	assert.Equal(t, []int{4, 2, 6}, result.Dice, "dice must appear in generation order")
	assert.Equal(t, 2, result.Modifier)
	assert.Equal(t, 14, result.Total, "Total must equal sum(Dice)+Modifier")
}

// TestEvaluate_Invariants_Property verifies length, range, and total
// arithmetic for arbitrary in-policy requests.
func TestEvaluate_Invariants_Property(t *testing.T) {
	src := dice.NewCryptoSource()
	rapid.Check(t, func(rt *rapid.T) {
		req := dice.Request{
			Quantity: rapid.IntRange(1, 100).Draw(rt, "quantity"),
			Sides:    rapid.IntRange(1, 100).Draw(rt, "sides"),
			Modifier: rapid.IntRange(-50, 50).Draw(rt, "modifier"),
		}

		result := dice.Evaluate(req, src)

		require.Len(rt, result.Dice, req.Quantity, "one die result per requested die")
		sum := req.Modifier
		for _, d := range result.Dice {
			assert.GreaterOrEqual(rt, d, 1, "each die must be at least 1")
			assert.LessOrEqual(rt, d, req.Sides, "each die must be at most Sides")
			sum += d
		}
		assert.Equal(rt, sum, result.Total, "Total must equal sum(Dice)+Modifier")
	})
}

// TestRoll_EndToEnd verifies the parse-validate-evaluate pipeline with
// ambient entropy.
func TestRoll_EndToEnd(t *testing.T) {
	result, err := dice.Roll("2d6+3")
	require.NoError(t, err)

	require.Len(t, result.Dice, 2)
	for _, d := range result.Dice {
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, 6)
	}
	assert.Equal(t, 3, result.Modifier)
	assert.Equal(t, result.Dice[0]+result.Dice[1]+3, result.Total)
}

// TestRoll_ShortCircuitsOnBadInput verifies each documented failure is
// surfaced as its error kind and that evaluation never runs.
func TestRoll_ShortCircuitsOnBadInput(t *testing.T) {
	cases := []struct {
		expr string
		want error
	}{
		{"2d", dice.ErrInvalidFormat},
		{"6", dice.ErrInvalidFormat},
		{"0d6", dice.ErrInvalidQuantity},
		{"2d0", dice.ErrInvalidDieSize},
		{"1001d6", dice.ErrQuantityLimitExceeded},
		{"99999999999999999999d6", dice.ErrParse},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			result, err := dice.Roll(tc.expr)
			require.Error(t, err, "Roll(%q) must fail", tc.expr)
			assert.ErrorIs(t, err, tc.want, "Roll(%q) must surface its documented error kind", tc.expr)
			assert.Empty(t, result.Dice, "no dice may be rolled on failure")
		})
	}
}
