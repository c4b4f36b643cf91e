package poker

import (
	"testing"

	"github.com/lox/pokerhand/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(42))
	if deck.Remaining() != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, deck.Remaining())
	}

	// Every (rank, suit) pair exactly once, in rank-major suit-minor
	// generation order.
	cards := deck.Deal(DeckSize)
	i := 0
	for rank := Two; rank <= Ace; rank++ {
		for suit := Hearts; suit <= Spades; suit++ {
			if cards[i] != NewCard(rank, suit) {
				t.Fatalf("card %d = %v, want %v", i, cards[i], NewCard(rank, suit))
			}
			i++
		}
	}

	if !deck.IsEmpty() {
		t.Error("deck should be empty after dealing all cards")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(42))
	deck.Shuffle()

	if deck.Remaining() != DeckSize {
		t.Fatalf("shuffle changed deck size: %d", deck.Remaining())
	}

	seen := make(map[Card]int)
	for _, c := range deck.Deal(DeckSize) {
		seen[c]++
	}
	if len(seen) != DeckSize {
		t.Errorf("expected %d distinct cards after shuffle, got %d", DeckSize, len(seen))
	}
	for c, n := range seen {
		if n != 1 {
			t.Errorf("card %v appeared %d times", c, n)
		}
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	deck1 := NewDeck(randutil.New(7))
	deck2 := NewDeck(randutil.New(7))
	deck1.Shuffle()
	deck2.Shuffle()

	cards1 := deck1.Deal(DeckSize)
	cards2 := deck2.Deal(DeckSize)
	for i := range cards1 {
		if cards1[i] != cards2[i] {
			t.Fatalf("same seed produced different orders at index %d: %v vs %v",
				i, cards1[i], cards2[i])
		}
	}
}

func TestShuffleChangesOrder(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(42))
	before := NewDeck(randutil.New(42)).Deal(DeckSize)
	deck.Shuffle()
	after := deck.Deal(DeckSize)

	same := 0
	for i := range before {
		if before[i] == after[i] {
			same++
		}
	}
	// A uniform permutation of 52 cards fixing more than half the
	// positions is astronomically unlikely.
	if same > DeckSize/2 {
		t.Errorf("shuffle left %d of %d cards in place", same, DeckSize)
	}
}

func TestDealConsumesFromFront(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(42))
	first := deck.Deal(5)
	second := deck.Deal(5)

	if deck.Remaining() != DeckSize-10 {
		t.Errorf("expected %d remaining, got %d", DeckSize-10, deck.Remaining())
	}
	for _, a := range first {
		for _, b := range second {
			if a == b {
				t.Errorf("card %v dealt twice", a)
			}
		}
	}
}

func TestDealTruncatesWhenShort(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(42))
	deck.Deal(47)

	dealt := deck.Deal(10)
	if len(dealt) != 5 {
		t.Errorf("expected 5 cards from a 5-card deck, got %d", len(dealt))
	}
	if deck.Remaining() != 0 {
		t.Errorf("expected empty deck, got %d remaining", deck.Remaining())
	}

	// Dealing from an empty deck is not an error, just zero cards.
	if got := deck.Deal(1); len(got) != 0 {
		t.Errorf("expected no cards from empty deck, got %d", len(got))
	}
}

func TestDealOne(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(42))
	for i := 0; i < DeckSize; i++ {
		if _, ok := deck.DealOne(); !ok {
			t.Fatalf("DealOne failed at card %d", i+1)
		}
	}
	if _, ok := deck.DealOne(); ok {
		t.Error("DealOne should report false on an empty deck")
	}
}

func TestDeckReset(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(42))
	deck.Shuffle()
	deck.Deal(30)

	deck.Reset()
	if deck.Remaining() != DeckSize {
		t.Fatalf("reset deck has %d cards, want %d", deck.Remaining(), DeckSize)
	}

	// Reset restores generation order.
	card, _ := deck.DealOne()
	if card != NewCard(Two, Hearts) {
		t.Errorf("first card after reset = %v, want 2h", card)
	}
}
