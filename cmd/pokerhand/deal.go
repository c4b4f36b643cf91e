package main

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerhand/internal/randutil"
	"github.com/lox/pokerhand/poker"
)

type DealCmd struct {
	Hands int    `default:"1" help:"Number of hands to deal from the deck"`
	Seed  *int64 `help:"Random seed for a reproducible shuffle"`
}

func (c *DealCmd) Run(logger *log.Logger) error {
	var rng *rand.Rand
	if c.Seed != nil {
		rng = randutil.New(*c.Seed)
	}

	deck := poker.NewDeck(rng)
	deck.Shuffle()
	logger.Debug("deck shuffled", "cards", deck.Remaining())

	for i := 0; i < c.Hands; i++ {
		cards := deck.Deal(poker.HandSize)
		if len(cards) < poker.HandSize {
			logger.Info("deck exhausted", "cards_left", len(cards))
			break
		}

		hand, err := poker.Evaluate(cards)
		if err != nil {
			return err
		}
		printHand(hand)
	}

	return nil
}
