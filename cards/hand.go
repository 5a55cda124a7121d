package cards

import (
	"fmt"
	"strings"
	"unicode"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// Hand represents a five-card hand. At most one of its cards may be the
// wildcard; a Hand is built once by ParseHand or HandFromCards and not
// modified afterwards.
type Hand [HandSize]Card

// ParseHand parses a hand string into a Hand.
//
// Card codes may be concatenated ("A♠K♠Q♠J♠10♠") or separated by spaces,
// commas or hyphens ("Ah, Kd, Qs, Jc, 10h"). Each code is a rank symbol
// followed by a suit symbol; the wildcard symbol stands alone as a whole
// card. The returned error wraps one of ErrInvalidCardCount,
// ErrInvalidRankSymbol, ErrInvalidSuitSymbol or ErrMultipleWildcards.
func ParseHand(input string) (Hand, error) {
	var hand Hand
	count := 0
	wildcards := 0

	rs := []rune(input)
	for i := 0; i < len(rs); {
		if isSeparator(rs[i]) {
			i++
			continue
		}

		if rs[i] == wildcardRune {
			if count < HandSize {
				hand[count] = Wildcard()
			}
			count++
			wildcards++
			i++
			continue
		}

		value, n, err := scanValue(rs[i:])
		if err != nil {
			return Hand{}, fmt.Errorf("card %d: %w", count+1, err)
		}
		i += n

		if i >= len(rs) || isSeparator(rs[i]) {
			return Hand{}, fmt.Errorf("card %d: %w: no suit after rank %q", count+1, ErrInvalidSuitSymbol, string(value))
		}

		suit, err := suitFromRune(rs[i])
		if err != nil {
			return Hand{}, fmt.Errorf("card %d: %w", count+1, err)
		}
		i++

		if count < HandSize {
			hand[count] = Card{Suit: suit, Value: value}
		}
		count++
	}

	if count != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d", ErrInvalidCardCount, count)
	}

	if wildcards > 1 {
		return Hand{}, fmt.Errorf("%w: got %d", ErrMultipleWildcards, wildcards)
	}

	return hand, nil
}

// HandFromCards builds a Hand from already-parsed cards, enforcing the same
// count and wildcard invariants as ParseHand.
func HandFromCards(cs ...Card) (Hand, error) {
	if len(cs) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d", ErrInvalidCardCount, len(cs))
	}

	var hand Hand
	wildcards := 0
	for i, c := range cs {
		if c.IsWildcard() {
			wildcards++
		}
		hand[i] = c
	}

	if wildcards > 1 {
		return Hand{}, fmt.Errorf("%w: got %d", ErrMultipleWildcards, wildcards)
	}

	return hand, nil
}

// isSeparator reports whether r may separate card codes in a hand string.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == '-'
}

// HasWildcard checks if any card in the hand is the wildcard.
func (h Hand) HasWildcard() bool {
	for _, c := range h {
		if c.IsWildcard() {
			return true
		}
	}
	return false
}

// Stack returns the hand's cards as a fresh Stack.
func (h Hand) Stack() Stack {
	s := make(Stack, HandSize)
	copy(s, h[:])
	return s
}

// String returns the string representation of a hand
func (h Hand) String() string {
	parts := make([]string, HandSize)
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
