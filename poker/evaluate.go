package poker

import "fmt"

// Evaluate classifies a five-card hand into its category, trying the
// detectors from strongest to weakest and taking the first match. High
// card always matches, so evaluation never fails on a valid five-card
// input; the only error is a wrong card count.
func Evaluate(cards []Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("evaluate: hand must have %d cards, got %d", HandSize, len(cards))
	}

	var hand Hand
	copy(hand.Cards[:], cards)

	counts := RankCounts(cards)

	if DetectRoyalFlush(cards) {
		hand.Category = RoyalFlush
		return hand, nil
	}
	if high, ok := DetectStraightFlush(cards); ok {
		hand.Category = StraightFlush
		hand.Tiebreaks = []Rank{high}
		return hand, nil
	}
	if tb, ok := DetectFourOfAKind(cards, &counts); ok {
		hand.Category = FourOfAKind
		hand.Tiebreaks = tb
		return hand, nil
	}
	if tb, ok := DetectFullHouse(cards, &counts); ok {
		hand.Category = FullHouse
		hand.Tiebreaks = tb
		return hand, nil
	}
	if tb, ok := DetectFlush(cards); ok {
		hand.Category = Flush
		hand.Tiebreaks = tb
		return hand, nil
	}
	if tb, ok := DetectStraight(cards); ok {
		hand.Category = Straight
		hand.Tiebreaks = tb
		return hand, nil
	}
	if tb, ok := DetectThreeOfAKind(cards, &counts); ok {
		hand.Category = ThreeOfAKind
		hand.Tiebreaks = tb
		return hand, nil
	}
	if tb, ok := DetectTwoPair(cards, &counts); ok {
		hand.Category = TwoPair
		hand.Tiebreaks = tb
		return hand, nil
	}
	if tb, ok := DetectOnePair(cards, &counts); ok {
		hand.Category = OnePair
		hand.Tiebreaks = tb
		return hand, nil
	}

	tb, _ := DetectHighCard(cards)
	hand.Category = HighCard
	hand.Tiebreaks = tb
	return hand, nil
}
