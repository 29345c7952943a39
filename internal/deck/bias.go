package deck

import "math/rand/v2"

// LeastCommonSuit returns the suit with the fewest occurrences among cards.
// Ties break toward the lowest suit index.
func LeastCommonSuit(cards []Card) int {
	var counts [NumSuits]int
	for _, c := range cards {
		counts[c.Suit()]++
	}
	least := 0
	for s := 1; s < NumSuits; s++ {
		if counts[s] < counts[least] {
			least = s
		}
	}
	return least
}

// BiasedReturn is Reshuffle with a suit-dependent per-card probability and
// no trailing shuffle: a card returns to the deck with probability
// returnProb if its suit is biasSuit, otherwise 1-returnProb. Returned
// cards are appended in encounter order.
func BiasedReturn(biasSuit int, returnProb float64, table, cards []Card) (newDeck []Card, moved int) {
	newDeck = make([]Card, len(cards), len(cards)+len(table))
	copy(newDeck, cards)
	for _, c := range table {
		p := 1 - returnProb
		if c.Suit() == biasSuit {
			p = returnProb
		}
		if rand.Float64() < p {
			newDeck = append(newDeck, c)
			moved++
		}
	}
	return newDeck, moved
}

// RigShuffle shuffles uniformly, then makes a single front-to-back pass
// over the result: each card is pulled to the front of the deck with
// probability frontProb if its suit is biasSuit, otherwise 1-frontProb.
// Later promotions land ahead of earlier ones. frontProb=1 packs the bias
// suit into the deck's prefix, frontProb=0 pushes it out of the prefix, and
// frontProb=0.5 degenerates to a plain shuffle.
func RigShuffle(biasSuit int, frontProb float64, cards []Card) []Card {
	out := Shuffle(cards)
	for i := 0; i < len(out); i++ {
		p := 1 - frontProb
		if out[i].Suit() == biasSuit {
			p = frontProb
		}
		if rand.Float64() < p {
			c := out[i]
			copy(out[1:i+1], out[:i])
			out[0] = c
		}
	}
	return out
}

// BiasedReshuffle composes BiasedReturn and RigShuffle: table cards rejoin
// the deck with suit-dependent probability, then the combined deck is
// rig-shuffled toward biasSuit.
func BiasedReshuffle(biasSuit int, returnProb, frontProb float64, table, cards []Card) (newDeck []Card, moved int) {
	newDeck, moved = BiasedReturn(biasSuit, returnProb, table, cards)
	return RigShuffle(biasSuit, frontProb, newDeck), moved
}
