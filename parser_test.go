package dice_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dice"
)

// TestParse_CanonicalForms verifies the documented round-trips for the
// supported notation shapes.
func TestParse_CanonicalForms(t *testing.T) {
	cases := []struct {
		expr string
		want dice.Request
	}{
		{"d6", dice.Request{Quantity: 1, Sides: 6, Modifier: 0}},
		{"2d6", dice.Request{Quantity: 2, Sides: 6, Modifier: 0}},
		{"2d6+5", dice.Request{Quantity: 2, Sides: 6, Modifier: 5}},
		{"2d6-5", dice.Request{Quantity: 2, Sides: 6, Modifier: -5}},
		{" 2d6 +5", dice.Request{Quantity: 2, Sides: 6, Modifier: 5}},
		{"2d6 + 5 ", dice.Request{Quantity: 2, Sides: 6, Modifier: 5}},
		{"D20", dice.Request{Quantity: 1, Sides: 20, Modifier: 0}},
		{"4D8-2", dice.Request{Quantity: 4, Sides: 8, Modifier: -2}},
		{"002d06+01", dice.Request{Quantity: 2, Sides: 6, Modifier: 1}},
		{"1000d1", dice.Request{Quantity: 1000, Sides: 1, Modifier: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := dice.Parse(tc.expr)
			require.NoError(t, err, "Parse(%q) must succeed", tc.expr)
			assert.Equal(t, tc.want, got, "Parse(%q) must yield the documented triple", tc.expr)
		})
	}
}

// TestParse_SyntacticOnly verifies that out-of-policy values still parse;
// range checks belong to Validate.
func TestParse_SyntacticOnly(t *testing.T) {
	for _, expr := range []string{"0d6", "2d0", "1001d6"} {
		_, err := dice.Parse(expr)
		assert.NoError(t, err, "Parse(%q) must not apply range policy", expr)
	}
}

// TestParse_InvalidFormat verifies that malformed expressions fail with
// ErrInvalidFormat, never a panic.
func TestParse_InvalidFormat(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"6",       // missing die marker
		"2d",      // missing sides
		"d",       // missing sides
		"2x6",     // wrong marker
		"2d6+",    // missing modifier digits
		"2d6-",    // missing modifier digits
		"2d6++5",  // doubled sign
		"2d6+5x",  // trailing content
		"2d6 5",   // bare trailing digits
		"2 d6",    // whitespace inside the token run
		"2d 6",    // whitespace inside the token run
		"two d6",  // non-numeric quantity
		"2d6+5+1", // second modifier
	}
	for _, expr := range cases {
		t.Run(fmt.Sprintf("%q", expr), func(t *testing.T) {
			_, err := dice.Parse(expr)
			require.Error(t, err, "Parse(%q) must fail", expr)
			assert.ErrorIs(t, err, dice.ErrInvalidFormat, "Parse(%q) must report a format error", expr)
		})
	}
}

// TestParse_IntegerOverflow verifies that oversized digit runs surface
// ErrParse wrapping the strconv failure.
func TestParse_IntegerOverflow(t *testing.T) {
	huge := "99999999999999999999"
	for _, expr := range []string{huge + "d6", "2d" + huge, "2d6+" + huge, "2d6-" + huge} {
		t.Run(expr, func(t *testing.T) {
			_, err := dice.Parse(expr)
			require.Error(t, err, "Parse(%q) must fail", expr)
			assert.ErrorIs(t, err, dice.ErrParse, "overflow must be a parse error")

			var numErr *strconv.NumError
			require.ErrorAs(t, err, &numErr, "the strconv failure must remain in the chain")
			assert.ErrorIs(t, numErr, strconv.ErrRange)
		})
	}
}

// TestParse_RoundTrip_Property verifies that any in-policy triple survives
// formatting and re-parsing.
func TestParse_RoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		quantity := rapid.IntRange(1, dice.MaxQuantity).Draw(rt, "quantity")
		sides := rapid.IntRange(1, 10000).Draw(rt, "sides")
		modifier := rapid.IntRange(-999, 999).Draw(rt, "modifier")

		expr := fmt.Sprintf("%dd%d", quantity, sides)
		if modifier != 0 {
			expr = fmt.Sprintf("%s%+d", expr, modifier)
		}

		got, err := dice.Parse(expr)
		require.NoError(rt, err, "Parse(%q) must succeed", expr)
		assert.Equal(rt, dice.Request{Quantity: quantity, Sides: sides, Modifier: modifier}, got)
		assert.NoError(rt, got.Validate(), "in-policy triple must validate")
	})
}

// TestValidate_QuantityBounds verifies the quantity policy boundary:
// quantity <= 0 is an invalid quantity, quantity > MaxQuantity is a limit
// violation, and both boundaries themselves are accepted.
func TestValidate_QuantityBounds(t *testing.T) {
	assert.NoError(t, dice.Request{Quantity: 1, Sides: 6}.Validate())
	assert.NoError(t, dice.Request{Quantity: dice.MaxQuantity, Sides: 6}.Validate())

	err := dice.Request{Quantity: 0, Sides: 6}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, dice.ErrInvalidQuantity, "quantity 0 must be an invalid quantity")

	err = dice.Request{Quantity: -3, Sides: 6}.Validate()
	assert.ErrorIs(t, err, dice.ErrInvalidQuantity)

	err = dice.Request{Quantity: dice.MaxQuantity + 1, Sides: 6}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, dice.ErrQuantityLimitExceeded, "quantity 1001 must be a limit violation")
	assert.NotErrorIs(t, err, dice.ErrInvalidQuantity, "the two quantity failures stay distinct")
}

// TestValidate_DieSize verifies that non-positive sides are rejected.
func TestValidate_DieSize(t *testing.T) {
	err := dice.Request{Quantity: 2, Sides: 0}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, dice.ErrInvalidDieSize)

	assert.ErrorIs(t, dice.Request{Quantity: 2, Sides: -6}.Validate(), dice.ErrInvalidDieSize)
	assert.NoError(t, dice.Request{Quantity: 2, Sides: 1}.Validate(), "a one-sided die is legal")
}

// TestValidate_ErrorMessages verifies the user-facing messages carry the
// offending value and the bound.
func TestValidate_ErrorMessages(t *testing.T) {
	err := dice.Request{Quantity: 0, Sides: 6}.Validate()
	assert.EqualError(t, err, "invalid quantity: 0 (must be 1-1000)")

	err = dice.Request{Quantity: 1001, Sides: 6}.Validate()
	assert.EqualError(t, err, "quantity limit exceeded: 1001 (maximum is 1000)")

	err = dice.Request{Quantity: 2, Sides: 0}.Validate()
	assert.EqualError(t, err, "invalid die size: d0 (must be positive)")
}

// TestMustParse_PanicsOnInvalid verifies the MustParse contract.
func TestMustParse_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("not dice") })
	assert.Equal(t, dice.Request{Quantity: 3, Sides: 8, Modifier: -1}, dice.MustParse("3d8-1"))
}
