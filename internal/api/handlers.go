package api

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/cory-johannsen/dice"
)

// rollRequest is the request body for POST /roll. Seed, when present, must
// be 64 hexadecimal characters (32 bytes) and makes the roll reproducible.
type rollRequest struct {
	Expression string `json:"expression"`
	Seed       string `json:"seed,omitempty"`
}

// rollResponse is the response body for POST /roll.
type rollResponse struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Dice       []int  `json:"dice"`
	Modifier   int    `json:"modifier"`
	Total      int    `json:"total"`
	Rendered   string `json:"rendered"`
}

// handleRoll parses, validates, and evaluates the submitted expression.
// Grammar and seed failures map to 400; roll policy failures map to 422.
func (s *Server) handleRoll(w http.ResponseWriter, r *http.Request) {
	var req rollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Expression == "" {
		s.writeError(w, http.StatusBadRequest, "expression is required")
		return
	}

	var (
		result dice.RollResult
		err    error
	)
	if req.Seed != "" {
		var seed [dice.SeedSize]byte
		seed, err = decodeSeed(req.Seed)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		result, err = dice.RollWithSeed(req.Expression, seed)
	} else {
		result, err = dice.Roll(req.Expression)
	}
	if err != nil {
		s.writeError(w, rollErrorStatus(err), err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, rollResponse{
		ID:         uuid.NewString(),
		Expression: req.Expression,
		Dice:       result.Dice,
		Modifier:   result.Modifier,
		Total:      result.Total,
		Rendered:   result.String(),
	})
}

// rollErrorStatus maps roll failures to HTTP statuses: malformed notation is
// a bad request, an in-grammar expression that violates roll policy is
// unprocessable.
func rollErrorStatus(err error) int {
	switch {
	case errors.Is(err, dice.ErrInvalidQuantity),
		errors.Is(err, dice.ErrInvalidDieSize),
		errors.Is(err, dice.ErrQuantityLimitExceeded):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// decodeSeed decodes a 64-character hex string into a 32-byte seed.
func decodeSeed(s string) ([dice.SeedSize]byte, error) {
	var seed [dice.SeedSize]byte
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != dice.SeedSize {
		return seed, fmt.Errorf("seed must be %d hexadecimal characters", dice.SeedSize*2)
	}
	copy(seed[:], raw)
	return seed, nil
}
