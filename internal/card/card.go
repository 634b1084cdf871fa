// Package card holds playing card values and the deck they are drawn from.
package card

import (
	"fmt"
	"strings"
)

// Card is an immutable suit and rank pair.
type Card struct {
	suit Suit
	rank Rank
}

// New builds a card from the Suit and Rank constants. It panics on any other
// value, so a Card is always one of the 52.
func New(suit Suit, rank Rank) Card {
	if !suit.Valid() {
		panic(fmt.Sprintf("card: invalid suit %d", suit))
	}
	if !rank.Valid() {
		panic(fmt.Sprintf("card: invalid rank %d", rank))
	}
	return Card{suit: suit, rank: rank}
}

func (c Card) Suit() Suit { return c.suit }

func (c Card) Rank() Rank { return c.rank }

// Value returns the card's contribution before ace demotion.
func (c Card) Value() int { return c.rank.Value() }

func (c Card) IsAce() bool { return c.rank == Ace }

func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Parse converts strings such as "As", "Td" or "10h" into a Card.
// The last character is the suit, the rest the rank.
func Parse(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	var suit Suit
	switch s[len(s)-1] {
	case 's', 'S':
		suit = Spade
	case 'h', 'H':
		suit = Heart
	case 'c', 'C':
		suit = Club
	case 'd', 'D':
		suit = Diamond
	default:
		return Card{}, fmt.Errorf("invalid suit in %q", s)
	}

	var rank Rank
	switch strings.ToUpper(s[:len(s)-1]) {
	case "A":
		rank = Ace
	case "2":
		rank = Two
	case "3":
		rank = Three
	case "4":
		rank = Four
	case "5":
		rank = Five
	case "6":
		rank = Six
	case "7":
		rank = Seven
	case "8":
		rank = Eight
	case "9":
		rank = Nine
	case "T", "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		return Card{}, fmt.Errorf("invalid rank in %q", s)
	}

	return New(suit, rank), nil
}

// MustParse is Parse for fixtures; it panics on bad input.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseAll parses space separated cards, e.g. "As Kd 5c".
func MustParseAll(s string) []Card {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		cards = append(cards, MustParse(f))
	}
	return cards
}
