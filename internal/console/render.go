package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"blackjack/internal/card"
	"blackjack/internal/game"
	"blackjack/internal/ledger"
)

func joinCards(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

func renderError(err error) string {
	return pterm.LightRed("✗ " + err.Error())
}

func renderHand(p game.Participant) string {
	return fmt.Sprintf("%s: %s", pterm.LightCyan(p.Name().String()), joinCards(p.Cards()))
}

func renderDeal(r *game.Round) string {
	names := make([]string, len(r.Players))
	for i, p := range r.Players {
		names[i] = p.Name().String()
	}

	var sb strings.Builder
	sb.WriteString(pterm.Sprintfln("Dealt 2 cards to the dealer and %s.", strings.Join(names, ", ")))

	// one dealer card stays face down until the end
	up := r.Dealer.Cards()[0]
	sb.WriteString(pterm.Sprintfln("%s: %s", pterm.LightCyan(r.Dealer.Name().String()), up))
	for _, p := range r.Players {
		sb.WriteString(renderHand(p) + "\n")
	}
	return sb.String()
}

func renderDealerDraws(n int) string {
	if n == 0 {
		return "Dealer stands.\n"
	}
	return pterm.Sprintfln("Dealer has 16 or less and drew %d more card(s).", n)
}

func renderScore(p game.Participant) string {
	label := strconv.Itoa(p.Score())
	switch {
	case p.IsBlackjack():
		label += " (blackjack)"
	case p.IsBust():
		label += " (bust)"
	}
	return fmt.Sprintf("%s - score: %s", renderHand(p), label)
}

func renderScores(r *game.Round) string {
	var sb strings.Builder
	sb.WriteString(renderScore(r.Dealer) + "\n")
	for _, p := range r.Players {
		sb.WriteString(renderScore(p) + "\n")
	}
	return sb.String()
}

func renderProfits(settlements []game.Settlement, dealerProfit int) (string, error) {
	data := pterm.TableData{{"Name", "Result", "Bet", "Profit"}}
	data = append(data, []string{"Dealer", "", "", strconv.Itoa(dealerProfit)})
	for _, s := range settlements {
		data = append(data, []string{s.Name, s.Result.String(), strconv.Itoa(s.Bet), strconv.Itoa(s.Profit)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func renderStandings(standings []ledger.Standing) (string, error) {
	data := pterm.TableData{{"#", "Name", "Games", "W/L/D", "Win %", "Profit"}}
	for i, s := range standings {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			s.Name,
			strconv.Itoa(s.Games),
			fmt.Sprintf("%d/%d/%d", s.Wins, s.Losses, s.Draws),
			fmt.Sprintf("%.0f", s.WinRate()),
			strconv.Itoa(s.Profit),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
