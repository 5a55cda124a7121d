package cards

import (
	"errors"
)

// Sentinel error kinds for hand validation. These allow errors.Is/As from callers.
var (
	ErrInvalidCardCount  = errors.New("hand must contain exactly five cards")
	ErrInvalidRankSymbol = errors.New("unrecognized rank symbol")
	ErrInvalidSuitSymbol = errors.New("unrecognized suit symbol")
	ErrMultipleWildcards = errors.New("hand may contain at most one wildcard")
)
