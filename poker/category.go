package poker

// HandCategory represents the ranking category of a five-card poker hand.
// Values run from HighCard (1) through RoyalFlush (10) so categories
// compare directly as integers: a > b means a outranks b before any
// tiebreaks are considered.
type HandCategory int

const (
	HighCard HandCategory = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name.
func (hc HandCategory) String() string {
	switch hc {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Hand is an evaluated five-card poker hand: the cards themselves, the
// category they fall into and the tiebreak ranks used to compare against
// another hand of the same category, most significant first.
type Hand struct {
	Cards     [HandSize]Card
	Category  HandCategory
	Tiebreaks []Rank
}

// Compare returns 1 if h beats other, -1 if other beats h and 0 for a
// perfect tie. Categories are compared first, then tiebreaks in order.
func (h Hand) Compare(other Hand) int {
	if h.Category != other.Category {
		if h.Category > other.Category {
			return 1
		}
		return -1
	}

	for i := 0; i < len(h.Tiebreaks) && i < len(other.Tiebreaks); i++ {
		if h.Tiebreaks[i] != other.Tiebreaks[i] {
			if h.Tiebreaks[i] > other.Tiebreaks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}
