// Package console drives a round from a line-oriented terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"blackjack/internal/game"
)

var ErrInputClosed = errors.New("input closed")

type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) prompt(msg string) (string, error) {
	fmt.Fprintln(c.out, msg)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return c.in.Text(), nil
}

func (c *Console) warn(err error) {
	fmt.Fprintln(c.out, renderError(err))
}

// ReadNames asks for comma separated player names until every one is valid.
func (c *Console) ReadNames() ([]string, error) {
	for {
		line, err := c.prompt("Enter player names, separated by commas:")
		if err != nil {
			return nil, err
		}

		names, err := splitNames(line)
		if err != nil {
			c.warn(err)
			continue
		}
		return names, nil
	}
}

func splitNames(line string) ([]string, error) {
	parts := strings.Split(line, ",")
	names := make([]string, 0, len(parts))
	for _, raw := range parts {
		n, err := game.NewName(&raw)
		if err != nil {
			return nil, err
		}
		names = append(names, n.String())
	}
	return names, nil
}

// ReadPlayer asks for name's bet until it parses and is within bounds.
func (c *Console) ReadPlayer(name string) (*game.Player, error) {
	for {
		line, err := c.prompt(fmt.Sprintf("Bet for %s (%d-%d):", name, game.MinBet, game.MaxBet))
		if err != nil {
			return nil, err
		}

		amount, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.warn(fmt.Errorf("%w: bet must be a whole number, got %q", game.ErrInvalidArgument, line))
			continue
		}

		p, err := game.NewPlayer(&name, game.WithBet(amount))
		if err != nil {
			c.warn(err)
			continue
		}
		return p, nil
	}
}

func (c *Console) ReadPlayers() ([]*game.Player, error) {
	names, err := c.ReadNames()
	if err != nil {
		return nil, err
	}

	players := make([]*game.Player, 0, len(names))
	for _, name := range names {
		p, err := c.ReadPlayer(name)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

// Decide implements game.Decider by asking for y or n.
func (c *Console) Decide(p *game.Player) (game.Decision, error) {
	for {
		line, err := c.prompt(fmt.Sprintf("%s, draw another card? (y/n)", p.Name()))
		if err != nil {
			return 0, err
		}

		d, err := game.ParseDecision(line)
		if err != nil {
			c.warn(err)
			continue
		}
		return d, nil
	}
}
