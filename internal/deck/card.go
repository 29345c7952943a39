package deck

import "fmt"

// Card is a single card in a 52-card deck, encoded as an integer in [0, 52).
// Suit and rank are derived from the value; two cards are the same card iff
// their values are equal.
type Card int

const (
	CardsPerSuit = 13
	NumSuits     = 4
	DeckSize     = CardsPerSuit * NumSuits
)

// Suit returns the card's suit index in [0, NumSuits).
func (c Card) Suit() int {
	return int(c) / CardsPerSuit
}

// Rank returns the card's rank within its suit, in [0, CardsPerSuit).
func (c Card) Rank() int {
	return int(c) % CardsPerSuit
}

// Valid reports whether the card value is inside the deck universe.
func (c Card) Valid() bool {
	return c >= 0 && c < DeckSize
}

var suitGlyphs = [NumSuits]string{"♠", "♥", "♦", "♣"}

var rankNames = [CardsPerSuit]string{
	"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K",
}

// String renders the card as rank+suit glyph, e.g. "10♥".
func (c Card) String() string {
	if !c.Valid() {
		return fmt.Sprintf("?%d", int(c))
	}
	return rankNames[c.Rank()] + suitGlyphs[c.Suit()]
}

// Format renders a collection as display strings, one per card. Pure
// presentation helper; game logic never depends on it.
func Format(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

// Universe returns all 52 card values in ascending order.
func Universe() []Card {
	cards := make([]Card, DeckSize)
	for i := range cards {
		cards[i] = Card(i)
	}
	return cards
}
