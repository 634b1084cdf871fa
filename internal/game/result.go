package game

type ResultType int

const (
	ResultWin ResultType = iota + 1
	ResultLoss
	ResultDraw
)

func (r ResultType) String() string {
	switch r {
	case ResultWin:
		return "WIN"
	case ResultLoss:
		return "LOSS"
	case ResultDraw:
		return "DRAW"
	}
	return "UNKNOWN"
}

const blackjackPays = 1.5

// Resolve compares two fully drawn hands from the player's side.
// Order matters: a busted player loses even against a busted dealer.
func Resolve(player, dealer *Hand) ResultType {
	switch {
	case player.IsBust():
		return ResultLoss
	case dealer.IsBust():
		return ResultWin
	case player.IsBlackjack() && dealer.IsBlackjack():
		return ResultDraw
	case player.IsBlackjack():
		return ResultWin
	case dealer.IsBlackjack():
		return ResultLoss
	}

	playerScore, dealerScore := player.Score(), dealer.Score()
	switch {
	case playerScore > dealerScore:
		return ResultWin
	case playerScore < dealerScore:
		return ResultLoss
	default:
		return ResultDraw
	}
}

// Profit is the signed amount a player gains for a result. A blackjack win
// pays 1.5x, truncated toward zero.
func Profit(result ResultType, playerBlackjack bool, bet int) int {
	switch result {
	case ResultWin:
		if playerBlackjack {
			return int(blackjackPays * float64(bet))
		}
		return bet
	case ResultLoss:
		return -bet
	}
	return 0
}

// Settlement is one player's outcome at the end of a round.
type Settlement struct {
	Name      string
	Result    ResultType
	Blackjack bool
	Score     int
	Bet       int
	Profit    int
}
