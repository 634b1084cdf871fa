package game

import (
	"fmt"
	"strings"

	"blackjack/internal/card"
)

const (
	MinBet = 1_000
	MaxBet = 100_000_000

	dealerName  = "Dealer"
	dealerStand = 17
)

// Name is a non-blank display name.
type Name string

// NewName validates raw. A nil name is a null reference; an empty or
// whitespace-only one is an invalid argument. Nil is checked first.
func NewName(raw *string) (Name, error) {
	if raw == nil {
		return "", fmt.Errorf("%w: name is nil", ErrNullReference)
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: name is blank", ErrInvalidArgument)
	}
	return Name(trimmed), nil
}

func (n Name) String() string { return string(n) }

type Bet int

func NewBet(amount int) (Bet, error) {
	if amount < MinBet {
		return 0, fmt.Errorf("%w: bet %d is below minimum %d", ErrInvalidArgument, amount, MinBet)
	}
	if amount > MaxBet {
		return 0, fmt.Errorf("%w: bet %d is above maximum %d", ErrInvalidArgument, amount, MaxBet)
	}
	return Bet(amount), nil
}

// Participant is either a *Dealer or a *Player. It exposes the hand read-only;
// only Draw on the concrete type adds cards.
type Participant interface {
	Name() Name
	Cards() []card.Card
	Score() int
	IsBust() bool
	IsBlackjack() bool
	participant()
}

type Dealer struct {
	hand Hand
}

func NewDealer() *Dealer {
	return &Dealer{}
}

func (d *Dealer) participant() {}

func (d *Dealer) Name() Name         { return dealerName }
func (d *Dealer) Cards() []card.Card { return d.hand.Cards() }

func (d *Dealer) Draw(c card.Card)  { d.hand.AddCard(c) }
func (d *Dealer) Score() int        { return d.hand.Score() }
func (d *Dealer) IsBust() bool      { return d.hand.IsBust() }
func (d *Dealer) IsBlackjack() bool { return d.hand.IsBlackjack() }
func (d *Dealer) CanDraw() bool     { return d.hand.CanDrawMore() }

// MustHit is the house policy: draw on 16 or less, stand on every 17.
func (d *Dealer) MustHit() bool {
	return d.hand.Score() < dealerStand
}

type Player struct {
	name     Name
	bet      Bet
	hasBet   bool
	hand     Hand
	decision Decision
}

type PlayerOption func(*playerOptions)

type playerOptions struct {
	bet    int
	hasBet bool
}

func WithBet(amount int) PlayerOption {
	return func(o *playerOptions) {
		o.bet = amount
		o.hasBet = true
	}
}

// NewPlayer builds a player with an empty hand. Without WithBet the player
// is name-only and every profit is zero.
func NewPlayer(name *string, opts ...PlayerOption) (*Player, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	var o playerOptions
	for _, opt := range opts {
		opt(&o)
	}

	p := &Player{name: n}
	if o.hasBet {
		bet, err := NewBet(o.bet)
		if err != nil {
			return nil, err
		}
		p.bet = bet
		p.hasBet = true
	}
	return p, nil
}

func (p *Player) participant() {}

func (p *Player) Name() Name         { return p.name }
func (p *Player) Cards() []card.Card { return p.hand.Cards() }

func (p *Player) HasBet() bool { return p.hasBet }
func (p *Player) Bet() Bet     { return p.bet }

func (p *Player) Draw(c card.Card)  { p.hand.AddCard(c) }
func (p *Player) Score() int        { return p.hand.Score() }
func (p *Player) IsBust() bool      { return p.hand.IsBust() }
func (p *Player) IsBlackjack() bool { return p.hand.IsBlackjack() }
func (p *Player) CanDraw() bool     { return p.hand.CanDrawMore() }

// IsDrawContinue records d as the player's latest decision.
func (p *Player) IsDrawContinue(d Decision) bool {
	p.decision = d
	return d == DecisionContinue
}

func (p *Player) IsDrawStop() bool {
	return p.decision == DecisionStop
}

// Result must only be asked once both sides have stopped drawing.
func (p *Player) Result(dealer *Dealer) ResultType {
	return Resolve(&p.hand, &dealer.hand)
}

func (p *Player) Profit(dealer *Dealer) int {
	return Profit(p.Result(dealer), p.IsBlackjack(), int(p.bet))
}

func (p *Player) Settle(dealer *Dealer) Settlement {
	result := p.Result(dealer)
	return Settlement{
		Name:      p.name.String(),
		Result:    result,
		Blackjack: p.IsBlackjack(),
		Score:     p.Score(),
		Bet:       int(p.bet),
		Profit:    Profit(result, p.IsBlackjack(), int(p.bet)),
	}
}
