package cards

import (
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()

	if len(deck) != 52 {
		t.Errorf("Expected deck to have 52 cards, got %d", len(deck))
	}

	seen := make(map[Card]bool)
	for _, c := range deck {
		if c.IsWildcard() {
			t.Error("Deck should not contain a wildcard")
		}
		if seen[c] {
			t.Errorf("Deck contains %s twice", c)
		}
		seen[c] = true
	}
}

func TestShuffleDeck(t *testing.T) {
	originalDeck := NewDeck()
	shuffledDeck := ShuffleDeck(originalDeck)

	// Check same length
	if len(shuffledDeck) != len(originalDeck) {
		t.Errorf("Shuffled deck length %d does not match original deck length %d",
			len(shuffledDeck), len(originalDeck))
	}

	// Check that cards are shuffled (this is probabilistic but very likely)
	differences := 0
	for i := 0; i < len(originalDeck); i++ {
		if shuffledDeck[i] != originalDeck[i] {
			differences++
		}
	}

	if differences == 0 {
		t.Error("Shuffled deck is identical to original deck")
	}
}

func TestDealCards(t *testing.T) {
	deck := NewDeck()
	initialLength := len(deck)
	count := 5

	dealtCards, remainingDeck := DealCards(deck, count)

	if len(dealtCards) != count {
		t.Errorf("Expected to deal %d cards, got %d", count, len(dealtCards))
	}

	if len(remainingDeck) != initialLength-count {
		t.Errorf("Expected remaining deck length to be %d, got %d",
			initialLength-count, len(remainingDeck))
	}
}

func TestDealCardsExhaustsDeck(t *testing.T) {
	deck := NewDeck()

	dealtCards, remainingDeck := DealCards(deck, 60)

	if len(dealtCards) != 52 {
		t.Errorf("Expected to deal at most 52 cards, got %d", len(dealtCards))
	}

	if len(remainingDeck) != 0 {
		t.Errorf("Expected empty remaining deck, got %d cards", len(remainingDeck))
	}
}
