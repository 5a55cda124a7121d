package hands

import (
	"testing"

	"github.com/lazharichir/showdown/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAndCompare_FourOfAKindBeatsFullHouse(t *testing.T) {
	// Four aces with a three kicker against aces full of queens.
	outcome, err := EvaluateAndCompare("AsAhAdAc3s", "AsAhQsQhQd")
	require.NoError(t, err)
	assert.Equal(t, FirstWins, outcome)
}

func TestEvaluateAndCompare_FiveAcesBeatFiveKings(t *testing.T) {
	// The wildcard substitutes a fifth ace; five kings from duplicated
	// codes are five of a kind as well, so the tie-break decides it.
	outcome, err := EvaluateAndCompare("AsAhAdAc*", "KsKhKdKcKs")
	require.NoError(t, err)
	assert.Equal(t, FirstWins, outcome)
}

func TestEvaluateAndCompare_StraightBeatsHighCard(t *testing.T) {
	outcome, err := EvaluateAndCompare("2s3h4d5c6s", "2h3d4s5h7d")
	require.NoError(t, err)
	assert.Equal(t, FirstWins, outcome)
}

func TestEvaluateAndCompare_IdenticalStraightsTie(t *testing.T) {
	// Same ranks in different suits, neither a flush.
	outcome, err := EvaluateAndCompare("10hJsQdKcAh", "10sJdQhKsAd")
	require.NoError(t, err)
	assert.Equal(t, Tie, outcome)
}

func TestEvaluateAndCompare_SecondWins(t *testing.T) {
	outcome, err := EvaluateAndCompare("2h3d4s5h7d", "2s3h4d5c6s")
	require.NoError(t, err)
	assert.Equal(t, SecondWins, outcome)
}

func TestEvaluateAndCompare_KickerDecides(t *testing.T) {
	// Both pairs of tens; the second hand's nine kicker loses to the ace.
	outcome, err := EvaluateAndCompare("10s10hAd6c2h", "10d10c9d6s2d")
	require.NoError(t, err)
	assert.Equal(t, FirstWins, outcome)
}

func TestEvaluateAndCompare_WildcardAgainstConcrete(t *testing.T) {
	// The wildcard turns two pair into a full house, beating trips.
	outcome, err := EvaluateAndCompare("QsQhJdJc*", "AcAdAh9s2c")
	require.NoError(t, err)
	assert.Equal(t, FirstWins, outcome)
}

func TestEvaluateAndCompare_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		handA string
		handB string
		errIs error
		inMsg string
	}{
		{"short first hand", "AhKdQsJc", "AhKdQsJcTh", cards.ErrInvalidCardCount, "hand A"},
		{"short second hand", "AhKdQsJcTh", "AhKdQsJc", cards.ErrInvalidCardCount, "hand B"},
		{"long second hand", "AhKdQsJcTh", "AhKdQsJcTh9d", cards.ErrInvalidCardCount, "hand B"},
		{"bad rank", "AhKdQsJcXh", "AhKdQsJcTh", cards.ErrInvalidRankSymbol, "hand A"},
		{"bad suit", "AhKdQsJcT#", "AhKdQsJcTh", cards.ErrInvalidSuitSymbol, "hand A"},
		{"two wildcards", "AhKdQs**", "AhKdQsJcTh", cards.ErrMultipleWildcards, "hand A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateAndCompare(tt.handA, tt.handB)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.errIs)
			assert.Contains(t, err.Error(), tt.inMsg)
		})
	}
}

func TestEvaluateAndCompare_FirstHandErrorReportedFirst(t *testing.T) {
	// Both hands malformed: the first hand's failure is the one returned.
	_, err := EvaluateAndCompare("AhKdQsJc", "AhKdQsJcTh9d")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hand A")
}

func TestEvaluateString(t *testing.T) {
	evaluation, err := EvaluateString("AsAhAdAc*")
	require.NoError(t, err)
	assert.Equal(t, FiveOfAKind, evaluation.Rank)

	_, err = EvaluateString("AsAhAdAc")
	assert.ErrorIs(t, err, cards.ErrInvalidCardCount)
}

func TestCompare_Properties(t *testing.T) {
	pool := []string{
		"AhQs9d5c3h",
		"10s10h8d6c2h",
		"JsJh4d4cAh",
		"QsQhQd9c2h",
		"6s5h4d3c2h",
		"Ah2s3d4c5h",
		"AhKhQhJh9h",
		"AsAhAdQsQh",
		"AsAhAdAc3s",
		"9h8h7h6h5h",
		"KhKsKdKcKh",
		"AsAhAdAc*",
	}

	evaluations := make([]HandEvaluation, len(pool))
	for i, s := range pool {
		evaluations[i] = Evaluate(mustHand(t, s))
	}

	for i, a := range evaluations {
		// Comparing a hand with itself is always a tie.
		assert.Equal(t, Tie, Compare(a, a), "%q against itself", pool[i])

		for j, b := range evaluations {
			forward := Compare(a, b)
			backward := Compare(b, a)

			// The ordering is antisymmetric.
			switch forward {
			case FirstWins:
				assert.Equal(t, SecondWins, backward, "%q vs %q", pool[i], pool[j])
			case SecondWins:
				assert.Equal(t, FirstWins, backward, "%q vs %q", pool[i], pool[j])
			case Tie:
				assert.Equal(t, Tie, backward, "%q vs %q", pool[i], pool[j])
			}
		}
	}
}

func TestCompare_RankOrderBeatsKickers(t *testing.T) {
	// The weakest straight still beats the strongest high card.
	wheel := Evaluate(mustHand(t, "Ah2s3d4c5h"))
	aceHigh := Evaluate(mustHand(t, "AhKsQd9c8h"))

	assert.Equal(t, FirstWins, Compare(wheel, aceHigh))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "first", FirstWins.String())
	assert.Equal(t, "second", SecondWins.String())
	assert.Equal(t, "tie", Tie.String())
}
