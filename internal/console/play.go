package console

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"blackjack/internal/card"
	"blackjack/internal/game"
	"blackjack/internal/ledger"
)

// Play runs one round: read players, deal, take turns, settle and record.
// Ledger failures are logged and do not fail the round.
func (c *Console) Play(src game.Source, repo ledger.Repository, standingsLimit int) error {
	players, err := c.ReadPlayers()
	if err != nil {
		return err
	}

	r := game.NewRound(src, game.NewDealer(), players...)
	r.OnDraw = func(p *game.Player, _ card.Card) {
		fmt.Fprintln(c.out, renderHand(p))
	}

	r.Deal()
	fmt.Fprint(c.out, renderDeal(r))

	drawn, err := r.Play(c)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, renderDealerDraws(drawn))
	fmt.Fprint(c.out, renderScores(r))

	settlements := r.Settle()
	table, err := renderProfits(settlements, r.DealerProfit())
	if err != nil {
		return fmt.Errorf("render profits: %w", err)
	}
	fmt.Fprint(c.out, table)

	roundID := uuid.NewString()
	for _, s := range settlements {
		if err := repo.Record(roundID, s); err != nil {
			log.Printf("Failed to record settlement for %s: %v", s.Name, err)
		}
	}

	standings, err := repo.Standings(standingsLimit)
	if err != nil {
		log.Printf("Failed to load standings: %v", err)
		return nil
	}
	if len(standings) == 0 {
		return nil
	}

	board, err := renderStandings(standings)
	if err != nil {
		return fmt.Errorf("render standings: %w", err)
	}
	fmt.Fprint(c.out, board)
	return nil
}
