package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"blackjack/internal/card"
	"blackjack/internal/config"
	"blackjack/internal/console"
	"blackjack/internal/database"
	"blackjack/internal/ledger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	deck := card.NewDeck(rand.New(rand.NewSource(seed)))

	repo := ledger.NewRepository(db.DB)
	c := console.New(os.Stdin, os.Stdout)

	if err := c.Play(deck, repo, cfg.StandingsLimit); err != nil {
		log.Printf("Round aborted: %v", err)
		db.Close()
		os.Exit(1)
	}
}
