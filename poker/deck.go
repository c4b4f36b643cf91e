package poker

import (
	rand "math/rand/v2"
	"time"

	"github.com/lox/pokerhand/internal/randutil"
)

// Deck represents a standard 52-card deck. A deck is created full, may
// be shuffled any number of times and is consumed from the front by
// dealing. Decks are not safe for concurrent use.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new ordered deck with all 52 distinct (rank, suit)
// combinations, generated rank-major, suit-minor. Pass a rng for
// deterministic shuffles; nil seeds one from the current time.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = randutil.New(time.Now().UnixNano())
	}

	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	d.fill()
	return d
}

// Shuffle randomizes the order of the remaining cards in place using a
// Fisher-Yates permutation. Index selection goes through
// randutil.UniformN so the permutation is uniform over all orderings.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := randutil.UniformN(d.rng, uint64(i+1))
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes up to n cards from the front of the deck and returns
// them in order. If fewer than n remain, only those are dealt; running
// out of cards is a normal terminal condition, not an error. The
// returned slice is a copy owned by the caller.
func (d *Deck) Deal(n int) []Card {
	if n < 0 {
		n = 0
	}
	if n > len(d.cards) {
		n = len(d.cards)
	}

	dealt := make([]Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt
}

// DealOne deals a single card, reporting false when the deck is empty.
func (d *Deck) DealOne() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Reset restores the deck to the full 52 cards in generation order.
func (d *Deck) Reset() {
	d.cards = make([]Card, 0, DeckSize)
	d.fill()
}

func (d *Deck) fill() {
	for rank := Two; rank <= Ace; rank++ {
		for suit := Hearts; suit <= Spades; suit++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
}
