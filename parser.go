package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxQuantity is the largest number of dice a single request may roll.
const MaxQuantity = 1000

// Request represents a parsed dice notation, not yet validated.
//
// Quantity defaults to 1 when omitted from the notation; Modifier defaults
// to 0. Call Validate before evaluating.
type Request struct {
	Quantity int // number of dice
	Sides    int // faces per die
	Modifier int // flat modifier (may be negative)
}

// Validate checks the request against roll policy: quantity must be in
// [1, MaxQuantity] and sides must be positive.
//
// Postcondition: Returns nil iff Evaluate may be called with this request.
func (r Request) Validate() error {
	if r.Quantity <= 0 {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidQuantity, r.Quantity, MaxQuantity)
	}
	if r.Quantity > MaxQuantity {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrQuantityLimitExceeded, r.Quantity, MaxQuantity)
	}
	if r.Sides <= 0 {
		return fmt.Errorf("%w: d%d (must be positive)", ErrInvalidDieSize, r.Sides)
	}
	return nil
}

// Parse parses a dice notation string into a Request.
//
// The grammar is `<quantity>? ('d'|'D') <sides> <modifier>?` where quantity
// is a digit run defaulting to 1 when omitted, sides is a required digit
// run, and the modifier is a sign character followed by digits. Whitespace
// is tolerated around the whole expression and around the modifier sign.
//
// Parse is purely syntactic; range policy lives in Request.Validate.
//
// Postcondition: Returns a Request, or an error matching ErrInvalidFormat
// or ErrParse. Same input always yields the same result.
func Parse(expr string) (Request, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return Request{}, fmt.Errorf("%w: empty expression", ErrInvalidFormat)
	}

	quantity, rest, err := parseQuantity(s)
	if err != nil {
		return Request{}, err
	}

	rest, err = parseDieMarker(rest, expr)
	if err != nil {
		return Request{}, err
	}

	sides, rest, err := parseSides(rest, expr)
	if err != nil {
		return Request{}, err
	}

	modifier, rest, err := parseModifier(rest, expr)
	if err != nil {
		return Request{}, err
	}

	if rest != "" {
		return Request{}, fmt.Errorf("%w: unexpected trailing content %q in %q", ErrInvalidFormat, rest, expr)
	}

	return Request{
		Quantity: quantity,
		Sides:    sides,
		Modifier: modifier,
	}, nil
}

// MustParse parses expr and panics on error. Useful for fixed expressions.
//
// Precondition: expr must be a valid dice notation string.
func MustParse(expr string) Request {
	r, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return r
}

// scanDigits splits s into its leading decimal digit run and the remainder.
func scanDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// parseQuantity consumes the optional leading digit run. An empty run means
// one die.
func parseQuantity(s string) (int, string, error) {
	digits, rest := scanDigits(s)
	if digits == "" {
		return 1, rest, nil
	}
	n, err := parseInt(digits, "quantity")
	if err != nil {
		return 0, "", err
	}
	return n, rest, nil
}

// parseDieMarker consumes the mandatory 'd' or 'D'.
func parseDieMarker(s, expr string) (string, error) {
	if s == "" || (s[0] != 'd' && s[0] != 'D') {
		return "", fmt.Errorf("%w: missing die marker in %q", ErrInvalidFormat, expr)
	}
	return s[1:], nil
}

// parseSides consumes the mandatory digit run following the die marker.
func parseSides(s, expr string) (int, string, error) {
	digits, rest := scanDigits(s)
	if digits == "" {
		return 0, "", fmt.Errorf("%w: missing die sides in %q", ErrInvalidFormat, expr)
	}
	n, err := parseInt(digits, "sides")
	if err != nil {
		return 0, "", err
	}
	return n, rest, nil
}

// parseModifier consumes the optional signed modifier, tolerating whitespace
// before the sign and between the sign and its digits.
func parseModifier(s, expr string) (int, string, error) {
	rest := strings.TrimLeft(s, " \t")
	if rest == "" {
		return 0, "", nil
	}

	sign := rest[0]
	if sign != '+' && sign != '-' {
		// Not a modifier; hand back the unconsumed content for the
		// trailing-garbage check.
		return 0, rest, nil
	}

	digits, rest := scanDigits(strings.TrimLeft(rest[1:], " \t"))
	if digits == "" {
		return 0, "", fmt.Errorf("%w: missing modifier digits in %q", ErrInvalidFormat, expr)
	}

	n, err := parseInt(string(sign)+digits, "modifier")
	if err != nil {
		return 0, "", err
	}
	return n, rest, nil
}

// parseInt converts a scanned digit run (optionally signed) to an int,
// mapping range failures to ErrParse.
func parseInt(digits, field string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %w", ErrParse, field, digits, err)
	}
	return n, nil
}
