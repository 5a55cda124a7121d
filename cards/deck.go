package cards

import (
	"math/rand"
	"time"
)

// NewDeck creates a standard deck of 52 cards
func NewDeck() Stack {
	var deck Stack
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}

	for _, suit := range suits {
		for _, value := range Values() {
			deck = append(deck, Card{Suit: suit, Value: value})
		}
	}

	return deck
}

// ShuffleDeck shuffles a deck of cards randomly
func ShuffleDeck(deck []Card) []Card {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)

	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

// DealCards deals count cards and returns them with the remaining deck
func DealCards(deck []Card, count int) ([]Card, []Card) {
	if count > len(deck) {
		count = len(deck)
	}

	dealtCards := make([]Card, count)
	copy(dealtCards, deck[:count])

	return dealtCards, deck[count:]
}
