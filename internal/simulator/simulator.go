// Package simulator deals and classifies large batches of five-card
// hands, tallying how often each category shows up. Work is sharded
// across goroutines; each worker owns its own deck and RNG so runs with
// the same seed and worker count are reproducible.
package simulator

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhand/internal/randutil"
	"github.com/lox/pokerhand/poker"
)

// Config holds configuration for running simulations.
type Config struct {
	Hands   int
	Workers int
	Seed    int64
	Logger  *log.Logger
}

// Results accumulates category tallies across all workers.
type Results struct {
	Hands   int
	Counts  map[poker.HandCategory]int
	Elapsed time.Duration
}

// Frequency returns the observed frequency of a category as a fraction
// of all hands dealt.
func (r *Results) Frequency(cat poker.HandCategory) float64 {
	if r.Hands == 0 {
		return 0
	}
	return float64(r.Counts[cat]) / float64(r.Hands)
}

// Simulator runs deal-and-classify simulations.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregated results. Each
// worker deals hands from a freshly shuffled deck until its share is
// exhausted or the context is cancelled.
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	if s.config.Hands <= 0 {
		return nil, fmt.Errorf("simulator: hands must be positive, got %d", s.config.Hands)
	}

	workers := s.config.Workers
	if workers > s.config.Hands {
		workers = s.config.Hands
	}

	s.config.Logger.Debug("starting simulation",
		"hands", s.config.Hands, "workers", workers, "seed", s.config.Seed)

	start := time.Now()

	var mu sync.Mutex
	totals := make(map[poker.HandCategory]int)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		share := s.config.Hands / workers
		if w < s.config.Hands%workers {
			share++
		}
		workerSeed := s.config.Seed + int64(w)

		g.Go(func() error {
			counts, err := dealAndClassify(ctx, workerSeed, share)
			if err != nil {
				return err
			}
			mu.Lock()
			for cat, n := range counts {
				totals[cat] += n
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := &Results{
		Hands:   s.config.Hands,
		Counts:  totals,
		Elapsed: time.Since(start),
	}

	s.config.Logger.Debug("simulation complete",
		"hands", results.Hands, "elapsed", results.Elapsed)

	return results, nil
}

func dealAndClassify(ctx context.Context, seed int64, hands int) (map[poker.HandCategory]int, error) {
	counts := make(map[poker.HandCategory]int)
	deck := poker.NewDeck(randutil.New(seed))

	for i := 0; i < hands; i++ {
		// Check for cancellation periodically rather than per hand.
		if i%1024 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		if deck.Remaining() < poker.HandSize {
			deck.Reset()
		}
		deck.Shuffle()

		hand, err := poker.Evaluate(deck.Deal(poker.HandSize))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		counts[hand.Category]++
	}

	return counts, nil
}
