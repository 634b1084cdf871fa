package card

type Suit byte

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

var Suits = []Suit{Spade, Heart, Club, Diamond}

func (s Suit) Valid() bool { return s <= Diamond }

func (s Suit) String() string {
	switch s {
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	}
	return "?"
}
