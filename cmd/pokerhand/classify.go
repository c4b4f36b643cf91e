package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerhand/poker"
)

type ClassifyCmd struct {
	Cards string `arg:"" help:"Five cards in two-character notation, e.g. 'KhKdKcKs2h'"`
}

func (c *ClassifyCmd) Run(logger *log.Logger) error {
	cards, err := poker.ParseCards(c.Cards)
	if err != nil {
		return fmt.Errorf("parsing cards: %w", err)
	}

	logger.Debug("parsed cards", "count", len(cards))

	hand, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}

	printHand(hand)
	return nil
}
