package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged dice rolling. Every
// roll is logged at debug level with the quantity, sides, individual dice,
// modifier, and total.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll
// to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll validates req, evaluates it, and logs the result at debug level.
//
// Postcondition: result logged; returns a RollResult or a validation error.
func (r *Roller) Roll(req Request) (RollResult, error) {
	if err := req.Validate(); err != nil {
		return RollResult{}, err
	}
	result := Evaluate(req, r.src)
	r.logger.Debug("dice roll",
		zap.Int("quantity", req.Quantity),
		zap.Int("sides", req.Sides),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total),
	)
	return result, nil
}

// RollExpr parses expr and rolls it, logging the result.
//
// Postcondition: Returns a RollResult or a parse/validation error.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	req, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll(req)
}
