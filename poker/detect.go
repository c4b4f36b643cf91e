package poker

// The ten category detectors below follow one contract: each takes a
// five-card hand and reports whether the hand matches its category,
// along with the tiebreak ranks for comparing against another hand of
// the same category (most significant first). Any input that is not
// exactly five cards yields a no-match; detectors never panic.
//
// Detectors that work from rank frequencies accept an optional
// precomputed count array (pass nil to have the detector compute its
// own). Each detector is independently correct: mutual exclusivity
// between overlapping categories (a full house is not three of a kind,
// a straight flush is neither a straight nor a flush) is enforced by
// each detector's own exclusion checks. Callers building a full
// evaluator must still try detectors strongest-first; several detectors
// can legitimately match the same hand otherwise (high card matches
// everything).

// DetectRoyalFlush reports whether the hand is T-J-Q-K-A of one suit.
// The strongest hand needs no tiebreaks.
func DetectRoyalFlush(cards []Card) bool {
	if !IsFlush(cards) {
		return false
	}

	var seen [rankArraySize]bool
	for _, c := range cards {
		if c.Rank < Ten || c.Rank > Ace {
			return false
		}
		seen[c.Rank] = true
	}
	return seen[Ten] && seen[Jack] && seen[Queen] && seen[King] && seen[Ace]
}

// DetectStraightFlush reports whether the hand is five sequential suited
// cards and returns the high card (Five for the wheel).
func DetectStraightFlush(cards []Card) (Rank, bool) {
	if !IsFlush(cards) {
		return 0, false
	}
	return IsStraight(cards)
}

// DetectFourOfAKind reports four cards of one rank.
// Tiebreaks: [quad rank, kicker].
func DetectFourOfAKind(cards []Card, counts *[rankArraySize]int) ([]Rank, bool) {
	rc, ok := resolveCounts(cards, counts)
	if !ok {
		return nil, false
	}

	quad := findRankWithCount(rc, 4)
	if quad == 0 {
		return nil, false
	}
	kicker := findRankWithCount(rc, 1)

	return []Rank{quad, kicker}, true
}

// DetectFullHouse reports three cards of one rank plus a pair of another.
// Tiebreaks: [trip rank, pair rank].
func DetectFullHouse(cards []Card, counts *[rankArraySize]int) ([]Rank, bool) {
	rc, ok := resolveCounts(cards, counts)
	if !ok {
		return nil, false
	}

	trip := findRankWithCount(rc, 3)
	if trip == 0 {
		return nil, false
	}
	pair := findRankWithCount(rc, 2)
	if pair == 0 {
		return nil, false
	}

	return []Rank{trip, pair}, true
}

// DetectFlush reports five suited cards that do not form a straight
// (straight flushes are excluded). Tiebreaks: all five ranks descending.
func DetectFlush(cards []Card) ([]Rank, bool) {
	if !IsFlush(cards) {
		return nil, false
	}
	if _, straight := IsStraight(cards); straight {
		return nil, false
	}
	return ranksDescending(cards), true
}

// DetectStraight reports five sequential cards that are not suited
// (straight flushes are excluded). Tiebreaks: [high card], Five for the
// wheel.
func DetectStraight(cards []Card) ([]Rank, bool) {
	if IsFlush(cards) {
		return nil, false
	}
	high, ok := IsStraight(cards)
	if !ok {
		return nil, false
	}
	return []Rank{high}, true
}

// DetectThreeOfAKind reports three cards of one rank with no pair beside
// them (full houses are excluded). Tiebreaks: [trip rank, high kicker,
// low kicker].
func DetectThreeOfAKind(cards []Card, counts *[rankArraySize]int) ([]Rank, bool) {
	rc, ok := resolveCounts(cards, counts)
	if !ok {
		return nil, false
	}

	trip := findRankWithCount(rc, 3)
	if trip == 0 {
		return nil, false
	}
	if findRankWithCount(rc, 2) != 0 {
		// A pair beside the trips makes it a full house.
		return nil, false
	}

	kickers := ranksWithCountDesc(rc, 1, 2)
	if len(kickers) != 2 {
		return nil, false
	}

	return []Rank{trip, kickers[0], kickers[1]}, true
}

// DetectTwoPair reports exactly two pairs of different ranks with no
// trips or quads. Tiebreaks: [high pair, low pair, kicker].
func DetectTwoPair(cards []Card, counts *[rankArraySize]int) ([]Rank, bool) {
	rc, ok := resolveCounts(cards, counts)
	if !ok {
		return nil, false
	}

	if hasCountAtLeast(rc, 3) {
		return nil, false
	}

	pairs := ranksWithCountDesc(rc, 2, 2)
	if len(pairs) != 2 {
		return nil, false
	}
	kicker := findRankWithCount(rc, 1)

	return []Rank{pairs[0], pairs[1], kicker}, true
}

// DetectOnePair reports exactly one pair with no trips or quads.
// Tiebreaks: [pair rank, high kicker, mid kicker, low kicker].
func DetectOnePair(cards []Card, counts *[rankArraySize]int) ([]Rank, bool) {
	rc, ok := resolveCounts(cards, counts)
	if !ok {
		return nil, false
	}

	if hasCountAtLeast(rc, 3) {
		return nil, false
	}

	pairs := ranksWithCountDesc(rc, 2, 2)
	if len(pairs) != 1 {
		return nil, false
	}

	kickers := ranksWithCountDesc(rc, 1, 3)
	if len(kickers) != 3 {
		return nil, false
	}

	return []Rank{pairs[0], kickers[0], kickers[1], kickers[2]}, true
}

// DetectHighCard matches any valid five-card hand.
// Tiebreaks: all five ranks descending.
func DetectHighCard(cards []Card) ([]Rank, bool) {
	if len(cards) != HandSize {
		return nil, false
	}
	return ranksDescending(cards), true
}

// resolveCounts validates the hand size and returns the rank counts to
// use, computing them when the caller did not supply a precomputed set.
func resolveCounts(cards []Card, counts *[rankArraySize]int) ([rankArraySize]int, bool) {
	if len(cards) != HandSize {
		return [rankArraySize]int{}, false
	}
	if counts != nil {
		return *counts, true
	}
	return RankCounts(cards), true
}

// findRankWithCount returns the lowest rank appearing exactly n times,
// or 0 when none does. In a five-card hand at most one rank can appear
// three or more times, so for those counts the answer is unique.
func findRankWithCount(counts [rankArraySize]int, n int) Rank {
	for r := Two; r <= Ace; r++ {
		if counts[r] == n {
			return r
		}
	}
	return 0
}

// ranksWithCountDesc returns up to max ranks appearing exactly n times,
// highest first.
func ranksWithCountDesc(counts [rankArraySize]int, n, max int) []Rank {
	ranks := make([]Rank, 0, max)
	for r := Ace; r >= Two; r-- {
		if counts[r] == n {
			ranks = append(ranks, r)
			if len(ranks) == max {
				break
			}
		}
	}
	return ranks
}

// hasCountAtLeast reports whether any rank appears n or more times.
func hasCountAtLeast(counts [rankArraySize]int, n int) bool {
	for r := Two; r <= Ace; r++ {
		if counts[r] >= n {
			return true
		}
	}
	return false
}
