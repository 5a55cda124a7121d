package hands

import (
	"fmt"

	"github.com/lazharichir/showdown/cards"
)

// Outcome is the result of comparing two hands.
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

// String returns the short name of the outcome
func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first"
	case SecondWins:
		return "second"
	case Tie:
		return "tie"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Compare compares two hand evaluations under the total hand ordering:
// rank first, then the tie-break kickers element-wise.
func Compare(first, second HandEvaluation) Outcome {
	switch comp := compareHandEvaluations(first, second); {
	case comp > 0:
		return FirstWins
	case comp < 0:
		return SecondWins
	default:
		return Tie
	}
}

// EvaluateAndCompare parses, evaluates and compares two hand strings. It is
// the one entry point callers need: a validation failure on either hand is
// returned with the offending hand named, preserving the cards package
// sentinel error kinds for errors.Is.
func EvaluateAndCompare(handA, handB string) (Outcome, error) {
	first, err := cards.ParseHand(handA)
	if err != nil {
		return Tie, fmt.Errorf("hand A: %w", err)
	}

	second, err := cards.ParseHand(handB)
	if err != nil {
		return Tie, fmt.Errorf("hand B: %w", err)
	}

	return Compare(Evaluate(first), Evaluate(second)), nil
}

// EvaluateString parses and evaluates a single hand string.
func EvaluateString(hand string) (HandEvaluation, error) {
	h, err := cards.ParseHand(hand)
	if err != nil {
		return HandEvaluation{}, err
	}

	return Evaluate(h), nil
}

// compareHandEvaluations compares two hand evaluations and returns:
// -1 if hand1 is worse than hand2
// 0 if hands are equal
// 1 if hand1 is better than hand2
func compareHandEvaluations(hand1, hand2 HandEvaluation) int {
	// First compare by rank
	if hand1.Rank < hand2.Rank {
		return -1
	}
	if hand1.Rank > hand2.Rank {
		return 1
	}

	// Same rank: kickers are ordered most significant first, and hands of
	// equal rank always carry tie-break keys of the same length
	for i := 0; i < len(hand1.Kickers) && i < len(hand2.Kickers); i++ {
		if comp := compareInt(hand1.Kickers[i], hand2.Kickers[i]); comp != 0 {
			return comp
		}
	}

	return 0
}

// compareInt is a helper function to compare two integers
func compareInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
