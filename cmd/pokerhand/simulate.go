package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerhand/internal/config"
	"github.com/lox/pokerhand/internal/simulator"
	"github.com/lox/pokerhand/poker"
)

type SimulateCmd struct {
	Config  string `short:"c" default:"pokerhand.hcl" help:"Path to HCL config file"`
	Hands   int    `help:"Number of hands to simulate (overrides config)"`
	Workers int    `help:"Number of worker goroutines (overrides config)"`
	Seed    int64  `help:"RNG seed (overrides config, 0 seeds from time)"`
}

// Exact five-card draw probabilities, for comparison against observed
// frequencies.
var theoretical = map[poker.HandCategory]float64{
	poker.RoyalFlush:    0.00000154,
	poker.StraightFlush: 0.0000139,
	poker.FourOfAKind:   0.000240,
	poker.FullHouse:     0.001441,
	poker.Flush:         0.001965,
	poker.Straight:      0.003925,
	poker.ThreeOfAKind:  0.021128,
	poker.TwoPair:       0.047539,
	poker.OnePair:       0.422569,
	poker.HighCard:      0.501177,
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if c.Hands > 0 {
		cfg.Simulation.Hands = c.Hands
	}
	if c.Workers > 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if c.Seed != 0 {
		cfg.Simulation.Seed = c.Seed
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = time.Now().UnixNano()
	}

	sim := simulator.New(simulator.Config{
		Hands:   cfg.Simulation.Hands,
		Workers: cfg.Simulation.Workers,
		Seed:    cfg.Simulation.Seed,
		Logger:  logger,
	})

	results, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Simulated %d hands in %s (%.0f hands/sec)",
		results.Hands, results.Elapsed.Round(time.Millisecond),
		float64(results.Hands)/results.Elapsed.Seconds())))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tCOUNT\tOBSERVED\tEXPECTED")
	for cat := poker.RoyalFlush; cat >= poker.HighCard; cat-- {
		fmt.Fprintf(w, "%s\t%d\t%.4f%%\t%.4f%%\n",
			cat, results.Counts[cat],
			results.Frequency(cat)*100, theoretical[cat]*100)
	}
	return w.Flush()
}
