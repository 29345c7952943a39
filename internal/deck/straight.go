package deck

import "sort"

// IsWrappedStraight reports whether the two hands together form a run of
// consecutive ranks within a single suit. The run may wrap past the highest
// rank back to rank 0. Duplicate ranks break the run.
func IsWrappedStraight(hand1, hand2 []Card) bool {
	all := make([]Card, 0, len(hand1)+len(hand2))
	all = append(all, hand1...)
	all = append(all, hand2...)
	if len(all) == 0 {
		return false
	}

	suit := all[0].Suit()
	for _, c := range all[1:] {
		if c.Suit() != suit {
			return false
		}
	}

	ranks := make([]int, len(all))
	for i, c := range all {
		ranks[i] = c.Rank()
	}
	sort.Ints(ranks)

	breaks := 0
	hasLow := ranks[0] == 0
	hasHigh := ranks[len(ranks)-1] == CardsPerSuit-1
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			breaks++
		}
		if breaks > 1 {
			return false
		}
	}
	if breaks == 1 {
		// A single gap is a straight only if it wraps through the ends.
		return hasLow && hasHigh
	}
	return true
}
