package poker

import (
	"slices"
)

// RankCounts tabulates how many cards of each rank appear in cards. The
// result is indexed directly by rank value (Two through Ace); ranks
// outside that range are skipped rather than counted, since cards are
// plain value types with no intrinsic validation.
func RankCounts(cards []Card) [rankArraySize]int {
	var counts [rankArraySize]int
	for _, c := range cards {
		if c.Rank >= Two && c.Rank <= Ace {
			counts[c.Rank]++
		}
	}
	return counts
}

// IsFlush reports whether the hand is exactly five cards all sharing one
// suit. Any other length returns false.
func IsFlush(cards []Card) bool {
	if len(cards) != HandSize {
		return false
	}

	first := cards[0].Suit
	for _, c := range cards[1:] {
		if c.Suit != first {
			return false
		}
	}
	return true
}

// IsStraight reports whether five cards form a consecutive run and, if
// so, the rank of the high card. The wheel (A-2-3-4-5) counts as a
// straight with high card Five, the only case where Ace plays low.
func IsStraight(cards []Card) (Rank, bool) {
	if len(cards) != HandSize {
		return 0, false
	}

	ranks := ranksDescending(cards)

	// Wheel: A-5-4-3-2 once sorted descending.
	if ranks[0] == Ace && ranks[1] == Five && ranks[2] == Four &&
		ranks[3] == Three && ranks[4] == Two {
		return Five, true
	}

	for i := 1; i < HandSize; i++ {
		if ranks[i] != ranks[i-1]-1 {
			return 0, false
		}
	}
	return ranks[0], true
}

// ranksDescending extracts the ranks of the cards sorted high to low.
func ranksDescending(cards []Card) []Rank {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	slices.SortFunc(ranks, func(a, b Rank) int { return int(b - a) })
	return ranks
}
