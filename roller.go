package dice

// Evaluate rolls a validated Request using the given Source.
//
// Precondition: req must satisfy req.Validate(); src must be non-nil.
// Postcondition: len(result.Dice) == req.Quantity, each die in [1, req.Sides],
// dice appear in generation order, and result.Total == sum(result.Dice) +
// result.Modifier.
func Evaluate(req Request, src Source) RollResult {
	rolled := make([]int, req.Quantity)
	total := req.Modifier
	for i := range rolled {
		rolled[i] = src.Intn(req.Sides) + 1
		total += rolled[i]
	}
	return RollResult{
		Total:    total,
		Dice:     rolled,
		Modifier: req.Modifier,
	}
}

// Roll parses, validates, and evaluates expr with the process-wide
// crypto/rand source.
//
// Postcondition: Returns a RollResult, or the first parse/validation error
// encountered; evaluation never runs on a request that failed validation.
func Roll(expr string) (RollResult, error) {
	req, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	if err := req.Validate(); err != nil {
		return RollResult{}, err
	}
	return Evaluate(req, ambient), nil
}

// RollWithSeed parses, validates, and evaluates expr with a fresh
// seed-derived source, so the result is fully reproducible from seed.
//
// Each call constructs its own generator; concurrent calls never share
// generator state.
//
// Postcondition: Identical (expr, seed) pairs yield identical RollResults
// across calls, process restarts, and platforms.
func RollWithSeed(expr string, seed [SeedSize]byte) (RollResult, error) {
	req, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	if err := req.Validate(); err != nil {
		return RollResult{}, err
	}
	return Evaluate(req, NewSeededSource(seed)), nil
}
