package cards

import (
	"fmt"
	"unicode"
)

// CardFromString creates a card from a single card code
// e.g., "10♠" or "10s" or "10S" -> Card{Suit: Spades, Value: Ten}
// e.g., "*" -> the wildcard
func CardFromString(s string) (Card, error) {
	rs := []rune(s)

	if len(rs) == 1 && rs[0] == wildcardRune {
		return Wildcard(), nil
	}

	value, n, err := scanValue(rs)
	if err != nil {
		return Card{}, err
	}

	if n >= len(rs) {
		return Card{}, fmt.Errorf("%w: input ends after rank %q", ErrInvalidSuitSymbol, string(value))
	}

	suit, err := suitFromRune(rs[n])
	if err != nil {
		return Card{}, err
	}

	if n+1 != len(rs) {
		return Card{}, fmt.Errorf("invalid card code %q: trailing input after suit", s)
	}

	return Card{Suit: suit, Value: value}, nil
}

// scanValue reads one rank symbol from the front of rs and returns the Value
// and how many runes it consumed. "10" is the only two-rune rank; "T" and "t"
// are accepted as aliases for it.
func scanValue(rs []rune) (Value, int, error) {
	if len(rs) == 0 {
		return "", 0, fmt.Errorf("%w: empty input", ErrInvalidRankSymbol)
	}

	switch rs[0] {
	case 'A', 'a':
		return Ace, 1, nil
	case 'K', 'k':
		return King, 1, nil
	case 'Q', 'q':
		return Queen, 1, nil
	case 'J', 'j':
		return Jack, 1, nil
	case 'T', 't':
		return Ten, 1, nil
	case '1':
		if len(rs) >= 2 && rs[1] == '0' {
			return Ten, 2, nil
		}
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidRankSymbol, string(rs[:1]))
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Value(rs[0:1]), 1, nil
	default:
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidRankSymbol, string(rs[:1]))
	}
}

// suitFromRune maps one suit symbol to a Suit. The four standard suits are
// recognized as glyphs or letters in either case; any other letter is kept as
// a suit of its own (lowercased), since suits only ever matter for equality.
func suitFromRune(r rune) (Suit, error) {
	switch r {
	case '♠', 's', 'S':
		return Spades, nil
	case '♥', 'h', 'H':
		return Hearts, nil
	case '♦', 'd', 'D':
		return Diamonds, nil
	case '♣', 'c', 'C':
		return Clubs, nil
	}

	if unicode.IsLetter(r) {
		return Suit(string(unicode.ToLower(r))), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidSuitSymbol, string(r))
}

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Value represents a card value
type Value string

const (
	Ace   Value = "A"
	King  Value = "K"
	Queen Value = "Q"
	Jack  Value = "J"
	Ten   Value = "10"
	Nine  Value = "9"
	Eight Value = "8"
	Seven Value = "7"
	Six   Value = "6"
	Five  Value = "5"
	Four  Value = "4"
	Three Value = "3"
	Two   Value = "2"
)

// Values lists every card value, highest rank first.
func Values() []Value {
	return []Value{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}
}

// wildcardRune is the token that stands alone as a whole card.
const wildcardRune = '*'

// Card represents a playing card
type Card struct {
	Suit  Suit
	Value Value
}

// String returns the string representation of a card
func (c Card) String() string {
	if c.IsWildcard() {
		return string(wildcardRune)
	}
	return fmt.Sprintf("%s%s", c.Value, c.Suit)
}

// IsWildcard checks if the card is a wildcard
func (c Card) IsWildcard() bool {
	return c.Suit == "" && c.Value == ""
}

// Wildcard creates a wildcard card
func Wildcard() Card {
	return Card{}
}
