package cards

import "strings"

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack with a given number of cards
func NewStack(cards ...Card) []Card {
	return cards
}

// String returns the cards joined by spaces
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
