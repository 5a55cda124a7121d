package hands

import (
	"fmt"
	"sort"

	"github.com/lazharichir/showdown/cards"
)

// HandRank represents the strength of a poker hand
type HandRank int

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
)

// String returns the plain-English name of the hand rank
func (r HandRank) String() string {
	switch r {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case FiveOfAKind:
		return "Five of a Kind"
	default:
		return fmt.Sprintf("HandRank(%d)", int(r))
	}
}

// HandEvaluation represents the evaluation of a poker hand
type HandEvaluation struct {
	Rank      HandRank    // The hand rank (pair, flush, etc.)
	HandCards cards.Stack // The 5 cards that make up the hand
	Kickers   []int       // Kicker values for breaking ties, highest first
}

// valueToRank converts card values to numerical ranks (2=2, A=14)
func valueToRank(value cards.Value) int {
	valueMap := map[cards.Value]int{
		cards.Two:   2,
		cards.Three: 3,
		cards.Four:  4,
		cards.Five:  5,
		cards.Six:   6,
		cards.Seven: 7,
		cards.Eight: 8,
		cards.Nine:  9,
		cards.Ten:   10,
		cards.Jack:  11,
		cards.Queen: 12,
		cards.King:  13,
		cards.Ace:   14,
	}
	return valueMap[value]
}

// Evaluate returns the strongest evaluation a hand can make. A hand without
// a wildcard is classified directly. A hand with one is classified once per
// possible wildcard value and the best result wins; the substitute keeps an
// empty suit, which flush detection treats as matching any suit.
func Evaluate(hand cards.Hand) HandEvaluation {
	if !hand.HasWildcard() {
		return evaluateHand(hand.Stack())
	}

	var best HandEvaluation
	for i, value := range cards.Values() {
		candidate := hand.Stack()
		for j, card := range candidate {
			if card.IsWildcard() {
				candidate[j] = cards.Card{Value: value}
			}
		}

		evaluation := evaluateHand(candidate)
		if i == 0 || compareHandEvaluations(evaluation, best) > 0 {
			best = evaluation
		}
	}

	return best
}

// sortCardsByRank sorts cards by rank in descending order
func sortCardsByRank(hand cards.Stack) cards.Stack {
	result := make(cards.Stack, len(hand))
	copy(result, hand)

	sort.Slice(result, func(i, j int) bool {
		return valueToRank(result[i].Value) > valueToRank(result[j].Value)
	})

	return result
}

// evaluateHand evaluates a 5-card poker hand and returns its ranking. Every
// card must carry a value; a card without a suit is a substituted wildcard.
func evaluateHand(hand cards.Stack) HandEvaluation {
	if len(hand) != 5 {
		panic("Hand must contain exactly 5 cards")
	}

	// Sort cards by rank (highest first)
	sortedHand := sortCardsByRank(hand)

	// Check for five of a kind
	if fiveKind := isFiveOfAKind(sortedHand); fiveKind > 0 {
		return HandEvaluation{
			Rank:      FiveOfAKind,
			HandCards: sortedHand,
			Kickers:   []int{fiveKind},
		}
	}

	// Check for straight flush
	if isStraightFlush(sortedHand) {
		// The highest card determines the straight flush strength
		highCard := valueToRank(sortedHand[0].Value)

		// Special case for A-5 straight flush (Ace counts as 1)
		if isA5Straight(sortedHand) {
			highCard = 5 // A-5 straight is ranked by the 5, not the A
		}

		return HandEvaluation{
			Rank:      StraightFlush,
			HandCards: sortedHand,
			Kickers:   []int{highCard},
		}
	}

	// Check for four of a kind
	if fourKind, kicker := isFourOfAKind(sortedHand); fourKind > 0 {
		return HandEvaluation{
			Rank:      FourOfAKind,
			HandCards: sortedHand,
			Kickers:   []int{fourKind, kicker},
		}
	}

	// Check for full house
	if three, pair := isFullHouse(sortedHand); three > 0 {
		return HandEvaluation{
			Rank:      FullHouse,
			HandCards: sortedHand,
			Kickers:   []int{three, pair},
		}
	}

	// Check for flush
	if isFlush(sortedHand) {
		// For a flush, the kickers are all cards in descending order
		kickers := make([]int, 5)
		for i, card := range sortedHand {
			kickers[i] = valueToRank(card.Value)
		}

		return HandEvaluation{
			Rank:      Flush,
			HandCards: sortedHand,
			Kickers:   kickers,
		}
	}

	// Check for straight
	if isStraight(sortedHand) || isA5Straight(sortedHand) {
		// The highest card determines the straight strength
		highCard := valueToRank(sortedHand[0].Value)

		// Special case for A-5 straight (Ace counts as 1)
		if isA5Straight(sortedHand) {
			highCard = 5 // A-5 straight is ranked by the 5, not the A
		}

		return HandEvaluation{
			Rank:      Straight,
			HandCards: sortedHand,
			Kickers:   []int{highCard},
		}
	}

	// Check for three of a kind
	if threeVal, kickers := isThreeOfAKind(sortedHand); threeVal > 0 {
		return HandEvaluation{
			Rank:      ThreeOfAKind,
			HandCards: sortedHand,
			Kickers:   append([]int{threeVal}, kickers...),
		}
	}

	// Check for two pair
	if pair1, pair2, kicker := isTwoPair(sortedHand); pair1 > 0 {
		return HandEvaluation{
			Rank:      TwoPair,
			HandCards: sortedHand,
			Kickers:   []int{pair1, pair2, kicker},
		}
	}

	// Check for one pair
	if pairVal, kickers := isOnePair(sortedHand); pairVal > 0 {
		return HandEvaluation{
			Rank:      OnePair,
			HandCards: sortedHand,
			Kickers:   append([]int{pairVal}, kickers...),
		}
	}

	// High card
	kickers := make([]int, 5)
	for i, card := range sortedHand {
		kickers[i] = valueToRank(card.Value)
	}

	return HandEvaluation{
		Rank:      HighCard,
		HandCards: sortedHand,
		Kickers:   kickers,
	}
}

// isFiveOfAKind checks if all five cards share one value and returns it
func isFiveOfAKind(hand cards.Stack) int {
	value := hand[0].Value
	for _, card := range hand[1:] {
		if card.Value != value {
			return 0
		}
	}

	return valueToRank(value)
}

// isStraightFlush checks if a hand is a straight flush
func isStraightFlush(hand cards.Stack) bool {
	return isFlush(hand) && (isStraight(hand) || isA5Straight(hand))
}

// isFourOfAKind checks for four of a kind and returns the quad value and kicker
func isFourOfAKind(hand cards.Stack) (int, int) {
	// Count the occurrences of each value
	valueCounts := make(map[cards.Value]int)
	for _, card := range hand {
		valueCounts[card.Value]++
	}

	var fourKindValue cards.Value
	var kickerValue cards.Value

	for value, count := range valueCounts {
		if count == 4 {
			fourKindValue = value
		} else {
			kickerValue = value // There can only be one kicker in 5 cards
		}
	}

	if fourKindValue != "" {
		return valueToRank(fourKindValue), valueToRank(kickerValue)
	}

	return 0, 0
}

// isFullHouse checks for a full house and returns the trips value and pair value
func isFullHouse(hand cards.Stack) (int, int) {
	// Count the occurrences of each value
	valueCounts := make(map[cards.Value]int)
	for _, card := range hand {
		valueCounts[card.Value]++
	}

	var threeKindValue cards.Value
	var pairValue cards.Value

	for value, count := range valueCounts {
		if count == 3 {
			threeKindValue = value
		} else if count == 2 {
			pairValue = value
		}
	}

	if threeKindValue != "" && pairValue != "" {
		return valueToRank(threeKindValue), valueToRank(pairValue)
	}

	return 0, 0
}

// isFlush checks if all suited cards share a single suit. A card without a
// suit is a substituted wildcard and matches any suit.
func isFlush(hand cards.Stack) bool {
	var suit cards.Suit
	for _, card := range hand {
		if card.Suit == "" {
			continue
		}
		if suit == "" {
			suit = card.Suit
			continue
		}
		if card.Suit != suit {
			return false
		}
	}

	return true
}

// isStraight checks if the hand is a straight (consecutive values)
func isStraight(hand cards.Stack) bool {
	// For regular straights, sort by rank
	cardCopy := make(cards.Stack, len(hand))
	copy(cardCopy, hand)

	// Sort by rank ascending
	sort.Slice(cardCopy, func(i, j int) bool {
		return valueToRank(cardCopy[i].Value) < valueToRank(cardCopy[j].Value)
	})

	// Check for consecutive values
	for i := 1; i < len(cardCopy); i++ {
		if valueToRank(cardCopy[i].Value) != valueToRank(cardCopy[i-1].Value)+1 {
			// Not consecutive
			return false
		}
	}

	return true
}

// isA5Straight checks for A-5-4-3-2 straight (where Ace is low)
func isA5Straight(hand cards.Stack) bool {
	// Look for A, 5, 4, 3, 2
	hasAce, has2, has3, has4, has5 := false, false, false, false, false

	for _, card := range hand {
		switch card.Value {
		case cards.Ace:
			hasAce = true
		case cards.Two:
			has2 = true
		case cards.Three:
			has3 = true
		case cards.Four:
			has4 = true
		case cards.Five:
			has5 = true
		}
	}

	return hasAce && has2 && has3 && has4 && has5
}

// isThreeOfAKind checks for three of a kind and returns the trips value and kickers
func isThreeOfAKind(hand cards.Stack) (int, []int) {
	// Count the occurrences of each value
	valueCounts := make(map[cards.Value]int)
	for _, card := range hand {
		valueCounts[card.Value]++
	}

	var threeKindValue cards.Value
	var kickers []cards.Value

	for value, count := range valueCounts {
		if count == 3 {
			threeKindValue = value
		} else {
			kickers = append(kickers, value)
		}
	}

	if threeKindValue == "" {
		return 0, nil
	}

	// Sort kickers by rank descending
	sort.Slice(kickers, func(i, j int) bool {
		return valueToRank(kickers[i]) > valueToRank(kickers[j])
	})

	// Convert kicker values to ints
	kickerRanks := make([]int, len(kickers))
	for i, value := range kickers {
		kickerRanks[i] = valueToRank(value)
	}

	return valueToRank(threeKindValue), kickerRanks
}

// isTwoPair checks for two pair and returns the pair values and kicker
func isTwoPair(hand cards.Stack) (int, int, int) {
	// Count the occurrences of each value
	valueCounts := make(map[cards.Value]int)
	for _, card := range hand {
		valueCounts[card.Value]++
	}

	var pairs []cards.Value
	var kicker cards.Value

	for value, count := range valueCounts {
		if count == 2 {
			pairs = append(pairs, value)
		} else if count == 1 {
			kicker = value
		}
	}

	if len(pairs) != 2 {
		return 0, 0, 0
	}

	// Sort pairs by rank descending
	sort.Slice(pairs, func(i, j int) bool {
		return valueToRank(pairs[i]) > valueToRank(pairs[j])
	})

	return valueToRank(pairs[0]), valueToRank(pairs[1]), valueToRank(kicker)
}

// isOnePair checks for one pair and returns the pair value and kickers
func isOnePair(hand cards.Stack) (int, []int) {
	// Count the occurrences of each value
	valueCounts := make(map[cards.Value]int)
	for _, card := range hand {
		valueCounts[card.Value]++
	}

	var pairValue cards.Value
	var kickers []cards.Value

	for value, count := range valueCounts {
		if count == 2 {
			pairValue = value
		} else {
			kickers = append(kickers, value)
		}
	}

	if pairValue == "" {
		return 0, nil
	}

	// Sort kickers by rank descending
	sort.Slice(kickers, func(i, j int) bool {
		return valueToRank(kickers[i]) > valueToRank(kickers[j])
	})

	// Convert kicker values to ints
	kickerRanks := make([]int, len(kickers))
	for i, value := range kickers {
		kickerRanks[i] = valueToRank(value)
	}

	return valueToRank(pairValue), kickerRanks
}
