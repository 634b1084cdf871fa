package card

import "math/rand"

type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck returns a shuffled 52 card deck. The same rng seed yields the
// same order, which keeps rounds reproducible.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.reset()
	return d
}

func (d *Deck) reset() {
	d.cards = make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			d.cards = append(d.cards, New(s, r))
		}
	}
	d.Shuffle()
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw takes the top card. An empty deck is rebuilt and reshuffled first.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		d.reset()
	}

	c := d.cards[0]
	d.cards = d.cards[1:]
	return c
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
