package game

import (
	"errors"
	"testing"

	"blackjack/internal/card"
)

const pobi = "pobi"

func strPtr(s string) *string { return &s }

func TestNewPlayerNameOnly(t *testing.T) {
	p, err := NewPlayer(strPtr(pobi))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if p.HasBet() {
		t.Fatal("name-only player has a bet")
	}
	if n := len(p.Cards()); n != 0 {
		t.Fatalf("new player holds %d cards", n)
	}
}

func TestNewPlayerBetBounds(t *testing.T) {
	tests := []struct {
		bet     int
		wantErr bool
	}{
		{MinBet - 1, true},
		{MinBet, false},
		{50_000, false},
		{MaxBet, false},
		{MaxBet + 1, true},
		{0, true},
		{-5_000, true},
	}

	for _, tt := range tests {
		p, err := NewPlayer(strPtr(pobi), WithBet(tt.bet))
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("bet %d: err = %v, want ErrInvalidArgument", tt.bet, err)
			}
			if p != nil {
				t.Errorf("bet %d: got player on error", tt.bet)
			}
			continue
		}
		if err != nil {
			t.Errorf("bet %d: unexpected error %v", tt.bet, err)
			continue
		}
		if int(p.Bet()) != tt.bet || !p.HasBet() {
			t.Errorf("bet %d: player bet = %d", tt.bet, p.Bet())
		}
	}
}

func TestNewPlayerNames(t *testing.T) {
	for _, raw := range []string{"딜러", " jason ", " pobi"} {
		p, err := NewPlayer(strPtr(raw))
		if err != nil {
			t.Errorf("NewPlayer(%q): %v", raw, err)
			continue
		}
		want, _ := NewName(strPtr(raw))
		if p.Name() != want {
			t.Errorf("Name() = %q, want %q", p.Name(), want)
		}
	}

	for _, raw := range []string{"", "  ", "\t"} {
		if _, err := NewPlayer(strPtr(raw)); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewPlayer(%q): err = %v, want ErrInvalidArgument", raw, err)
		}
	}
}

func TestNewPlayerNilName(t *testing.T) {
	_, err := NewPlayer(nil, WithBet(MinBet-1))
	if !errors.Is(err, ErrNullReference) {
		t.Fatalf("err = %v, want ErrNullReference", err)
	}
}

func TestNewPlayerNameCheckedBeforeBet(t *testing.T) {
	_, err := NewPlayer(strPtr(" "), WithBet(MaxBet+1))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if err.Error() != "invalid argument: name is blank" {
		t.Fatalf("err = %q, want the name error", err)
	}
}

func TestPlayerCanDraw(t *testing.T) {
	tests := []struct {
		cards string
		want  bool
	}{
		{"2d", true},
		{"7d 7d 7d", true},
		{"7d 7d 8d", false},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			p, _ := NewPlayer(strPtr(pobi))
			for _, c := range handOf(tt.cards).Cards() {
				p.Draw(c)
			}
			if got := p.CanDraw(); got != tt.want {
				t.Errorf("CanDraw() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayerDrawDecision(t *testing.T) {
	p, _ := NewPlayer(strPtr(pobi))

	yes, err := ParseDecision("y")
	if err != nil {
		t.Fatalf("ParseDecision(y): %v", err)
	}
	no, err := ParseDecision("n")
	if err != nil {
		t.Fatalf("ParseDecision(n): %v", err)
	}

	if !p.IsDrawContinue(yes) {
		t.Error("y: IsDrawContinue = false")
	}
	if p.IsDrawStop() {
		t.Error("y: IsDrawStop = true")
	}

	if p.IsDrawContinue(no) {
		t.Error("n: IsDrawContinue = true")
	}
	if !p.IsDrawStop() {
		t.Error("n: IsDrawStop = false")
	}
}

func TestParseDecision(t *testing.T) {
	tests := []struct {
		token   string
		want    Decision
		wantErr bool
	}{
		{"y", DecisionContinue, false},
		{"n", DecisionStop, false},
		{"Y", 0, true},
		{" y ", 0, true},
		{"N", 0, true},
		{"", 0, true},
		{"yes", 0, true},
		{"x", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDecision(tt.token)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseDecision(%q): err = %v, want ErrInvalidArgument", tt.token, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseDecision(%q) = %v, %v; want %v", tt.token, got, err, tt.want)
		}
	}
}

func TestDealerMustHit(t *testing.T) {
	tests := []struct {
		cards string
		want  bool
	}{
		{"", true},
		{"Th 6d", true},
		{"Th 7d", false},
		{"Ah 6d", false},
		{"Ah 5d", true},
	}

	for _, tt := range tests {
		d := NewDealer()
		for _, c := range handOf(tt.cards).Cards() {
			d.Draw(c)
		}
		if got := d.MustHit(); got != tt.want {
			t.Errorf("%q: MustHit() = %v, want %v", tt.cards, got, tt.want)
		}
	}
}

func TestParticipantVariants(t *testing.T) {
	p, _ := NewPlayer(strPtr(pobi), WithBet(MinBet))
	parts := []Participant{NewDealer(), p}

	for _, part := range parts {
		switch v := part.(type) {
		case *Dealer:
			if v.Name() != "Dealer" {
				t.Errorf("dealer name = %q", v.Name())
			}
		case *Player:
			if v.Name() != pobi {
				t.Errorf("player name = %q", v.Name())
			}
		default:
			t.Fatalf("unexpected participant %T", part)
		}
	}
}

func TestUppercaseTokenNeverContinues(t *testing.T) {
	p, _ := NewPlayer(strPtr(pobi))

	d, err := ParseDecision("Y")
	if err == nil {
		t.Fatalf("ParseDecision(Y) = %v, want error", d)
	}
	if p.IsDrawContinue(d) {
		t.Fatal("Y was treated as continue")
	}
}

func TestParticipantCardsIsReadOnly(t *testing.T) {
	p, _ := NewPlayer(strPtr(pobi))
	p.Draw(card.MustParse("Ts"))
	p.Draw(card.MustParse("9h"))

	var part Participant = p
	cards := part.Cards()
	cards[0] = card.MustParse("As")
	cards = append(cards, card.MustParse("Kd"))

	if got := part.Score(); got != 19 {
		t.Fatalf("Score() = %d after editing the returned cards, want 19", got)
	}
	if got := len(part.Cards()); got != 2 {
		t.Fatalf("hand holds %d cards, want 2", got)
	}
}
