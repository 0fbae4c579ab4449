package dice

import "errors"

// ErrInvalidFormat indicates the expression does not match the notation
// grammar: missing die marker, missing sides digits, or trailing content.
var ErrInvalidFormat = errors.New("invalid dice notation format")

// ErrInvalidQuantity indicates the parsed quantity is below the minimum of 1.
var ErrInvalidQuantity = errors.New("invalid quantity")

// ErrInvalidDieSize indicates the parsed die size is not positive.
var ErrInvalidDieSize = errors.New("invalid die size")

// ErrQuantityLimitExceeded indicates the parsed quantity exceeds MaxQuantity.
var ErrQuantityLimitExceeded = errors.New("quantity limit exceeded")

// ErrParse indicates an integer literal in the expression exceeds the
// representable range. The wrapped error chain includes the underlying
// *strconv.NumError.
var ErrParse = errors.New("parse error")
