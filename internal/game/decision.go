package game

import "fmt"

// Decision is a player's answer to "draw another card?".
type Decision int

const (
	decisionNone Decision = iota
	DecisionContinue
	DecisionStop
)

// ParseDecision accepts exactly "y" to continue and "n" to stop. Any other
// spelling, including "Y" or " y ", is rejected.
func ParseDecision(token string) (Decision, error) {
	switch token {
	case "y":
		return DecisionContinue, nil
	case "n":
		return DecisionStop, nil
	}
	return decisionNone, fmt.Errorf("%w: draw decision must be y or n, got %q", ErrInvalidArgument, token)
}

func (d Decision) String() string {
	switch d {
	case DecisionContinue:
		return "y"
	case DecisionStop:
		return "n"
	}
	return ""
}
