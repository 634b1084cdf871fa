package game

import "blackjack/internal/card"

const (
	BlackjackScore = 21
	aceDemotion    = 10
)

// Hand is the set of cards one participant holds in a round.
// Scores are recomputed from the cards on every query.
type Hand struct {
	cards []card.Card
}

func (h *Hand) AddCard(c card.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy in draw order.
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Score sums card values with every ace at 11, then demotes aces to 1
// one at a time while the total is over 21.
func (h *Hand) Score() int {
	score := 0
	aces := 0

	for _, c := range h.cards {
		score += c.Value()
		if c.IsAce() {
			aces++
		}
	}

	for score > BlackjackScore && aces > 0 {
		score -= aceDemotion
		aces--
	}

	return score
}

func (h *Hand) IsBust() bool {
	return h.Score() > BlackjackScore
}

func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Score() == BlackjackScore
}

// CanDrawMore reports draw eligibility only; whether to draw is up to the caller.
func (h *Hand) CanDrawMore() bool {
	return h.Score() <= BlackjackScore
}
