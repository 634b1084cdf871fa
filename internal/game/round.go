package game

import (
	"fmt"

	"blackjack/internal/card"
)

const initialCards = 2

// Source supplies cards to a round. *card.Deck satisfies it.
type Source interface {
	Draw() card.Card
}

// Decider asks a player whether to take another card.
type Decider interface {
	Decide(p *Player) (Decision, error)
}

// Round is a single deal between one dealer and players taking turns in order.
type Round struct {
	Dealer  *Dealer
	Players []*Player
	src     Source

	// OnDraw, when set, is called after every card a player takes by choice.
	OnDraw func(p *Player, c card.Card)
}

func NewRound(src Source, dealer *Dealer, players ...*Player) *Round {
	return &Round{
		Dealer:  dealer,
		Players: players,
		src:     src,
	}
}

// Deal gives two cards to the dealer, then two to each player.
func (r *Round) Deal() {
	for i := 0; i < initialCards; i++ {
		r.Dealer.Draw(r.src.Draw())
	}
	for _, p := range r.Players {
		for i := 0; i < initialCards; i++ {
			p.Draw(r.src.Draw())
		}
	}
}

// PlayerTurn keeps drawing for p while the hand is eligible and the decider
// answers continue.
func (r *Round) PlayerTurn(p *Player, decider Decider) error {
	for p.CanDraw() {
		d, err := decider.Decide(p)
		if err != nil {
			return fmt.Errorf("decide for %s: %w", p.Name(), err)
		}
		if !p.IsDrawContinue(d) {
			return nil
		}

		c := r.src.Draw()
		p.Draw(c)
		if r.OnDraw != nil {
			r.OnDraw(p, c)
		}
	}
	return nil
}

// DealerTurn draws under the house policy and returns how many extra cards
// the dealer took.
func (r *Round) DealerTurn() int {
	drawn := 0
	for r.Dealer.MustHit() {
		r.Dealer.Draw(r.src.Draw())
		drawn++
	}
	return drawn
}

// Play runs every player's turn and then the dealer's.
func (r *Round) Play(decider Decider) (int, error) {
	for _, p := range r.Players {
		if err := r.PlayerTurn(p, decider); err != nil {
			return 0, err
		}
	}
	return r.DealerTurn(), nil
}

func (r *Round) Settle() []Settlement {
	out := make([]Settlement, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, p.Settle(r.Dealer))
	}
	return out
}

// DealerProfit mirrors the players: the house gains what they lose.
func (r *Round) DealerProfit() int {
	total := 0
	for _, p := range r.Players {
		total -= p.Profit(r.Dealer)
	}
	return total
}
