package game

import (
	"fmt"

	"straightsix/internal/deck"
)

// Rules holds the per-session deal and rigging parameters. Validated once at
// session creation, before any cards are dealt.
type Rules struct {
	CardsPerHand int
	CardsOnTable int

	// ReturnProb is the probability a table card returns to the deck at the
	// end of a turn. Under rigging it applies to the bias suit and its
	// complement applies to everything else.
	ReturnProb float64

	// FrontProb is the rig-shuffle front-promotion probability for bias-suit
	// cards. 0.5 makes the rig shuffle a plain shuffle.
	FrontProb float64

	// Rigged selects the suit-biased reshuffle over the uniform one.
	Rigged bool
}

func DefaultRules() Rules {
	return Rules{
		CardsPerHand: 3,
		CardsOnTable: 4,
		ReturnProb:   0.5,
		FrontProb:    0.5,
		Rigged:       true,
	}
}

// Validate rejects probabilities outside [0,1] and deal sizes that cannot be
// cut from a 52-card deck.
func (r Rules) Validate() error {
	if r.ReturnProb < 0 || r.ReturnProb > 1 {
		return fmt.Errorf("return probability %v outside [0,1]", r.ReturnProb)
	}
	if r.FrontProb < 0 || r.FrontProb > 1 {
		return fmt.Errorf("front probability %v outside [0,1]", r.FrontProb)
	}
	if r.CardsPerHand <= 0 || r.CardsOnTable <= 0 {
		return fmt.Errorf("deal sizes must be positive (hand %d, table %d)", r.CardsPerHand, r.CardsOnTable)
	}
	if 2*r.CardsPerHand+r.CardsOnTable > deck.DeckSize {
		return fmt.Errorf("deal sizes exceed the deck (hand %d, table %d)", r.CardsPerHand, r.CardsOnTable)
	}
	return nil
}
