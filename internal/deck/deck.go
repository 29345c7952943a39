package deck

import "math/rand/v2"

// Shuffle returns a uniform random permutation of cards. The input slice is
// not modified.
func Shuffle(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Deal removes the first n cards from the front of the deck. The front of
// the deck is the next card dealt, so this is a FIFO draw. Returns fewer
// than n if the deck is short.
func Deal(cards []Card, n int) (dealt, rest []Card) {
	if n > len(cards) {
		n = len(cards)
	}
	dealt = make([]Card, n)
	copy(dealt, cards[:n])
	rest = make([]Card, len(cards)-n)
	copy(rest, cards[n:])
	return dealt, rest
}

// Reshuffle returns each table card to the deck independently with
// probability p; cards that fail the trial leave play. The resulting deck is
// uniformly shuffled. Returns the new deck and how many cards came back.
func Reshuffle(p float64, table, cards []Card) (newDeck []Card, moved int) {
	newDeck = make([]Card, len(cards), len(cards)+len(table))
	copy(newDeck, cards)
	for _, c := range table {
		if rand.Float64() < p {
			newDeck = append(newDeck, c)
			moved++
		}
	}
	return Shuffle(newDeck), moved
}
