package deck_test

import (
	"testing"

	"straightsix/internal/deck"
)

func TestLeastCommonSuit(t *testing.T) {
	tests := []struct {
		name  string
		cards []deck.Card
		want  int
	}{
		{"absent suit wins", []deck.Card{0, 13, 27}, 3},
		{"absent suit wins among uneven counts", []deck.Card{0, 1, 13, 14, 27, 28, 42}, 3},
		{"tie breaks to lowest suit", []deck.Card{0, 13, 26, 39}, 0},
		{"single minimum", []deck.Card{0, 1, 2, 13, 26, 27, 39, 40}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deck.LeastCommonSuit(tt.cards); got != tt.want {
				t.Errorf("LeastCommonSuit(%v) = %d, want %d", tt.cards, got, tt.want)
			}
		})
	}
}

// Two cards of each suit, in suit order.
var flatDeck = []deck.Card{0, 1, 13, 14, 26, 27, 39, 40}

func biasCount(cards []deck.Card, suit int) int {
	n := 0
	for _, c := range cards {
		if c.Suit() == suit {
			n++
		}
	}
	return n
}

func TestRigShuffleFullBias(t *testing.T) {
	for suit := 0; suit < deck.NumSuits; suit++ {
		out := deck.RigShuffle(suit, 1, flatDeck)
		if len(out) != len(flatDeck) {
			t.Fatalf("rig shuffle changed length: %d", len(out))
		}
		k := biasCount(flatDeck, suit)
		for i := 0; i < k; i++ {
			if out[i].Suit() != suit {
				t.Errorf("suit %d, frontProb=1: prefix card %v is not bias suit (deck %v)", suit, out[i], out)
			}
		}
	}
}

func TestRigShuffleZeroBias(t *testing.T) {
	for suit := 0; suit < deck.NumSuits; suit++ {
		out := deck.RigShuffle(suit, 0, flatDeck)
		k := biasCount(flatDeck, suit)
		for i := len(out) - k; i < len(out); i++ {
			if out[i].Suit() != suit {
				t.Errorf("suit %d, frontProb=0: suffix card %v is not bias suit (deck %v)", suit, out[i], out)
			}
		}
	}
}

func TestRigShuffleIsPermutation(t *testing.T) {
	out := deck.RigShuffle(2, 0.5, flatDeck)
	if len(out) != len(flatDeck) {
		t.Fatalf("length changed: %d", len(out))
	}
	set := cardSet(out)
	for _, c := range flatDeck {
		if !set[c] {
			t.Errorf("card %v lost by rig shuffle", c)
		}
	}
}

func TestBiasedReturnExtremes(t *testing.T) {
	table := []deck.Card{26, 27, 0, 13} // two bias-suit cards (suit 2), two others
	rest := []deck.Card{50}

	// returnProb=1: bias-suit cards always return, others never.
	newDeck, moved := deck.BiasedReturn(2, 1, table, rest)
	if moved != 2 {
		t.Fatalf("returnProb=1: moved = %d, want 2", moved)
	}
	// Appended in encounter order after the existing deck.
	if newDeck[0] != 50 || newDeck[1] != 26 || newDeck[2] != 27 {
		t.Fatalf("returnProb=1: deck = %v, want [50 26 27]", newDeck)
	}

	// returnProb=0: only the non-bias cards return.
	newDeck, moved = deck.BiasedReturn(2, 0, table, rest)
	if moved != 2 {
		t.Fatalf("returnProb=0: moved = %d, want 2", moved)
	}
	if newDeck[1] != 0 || newDeck[2] != 13 {
		t.Fatalf("returnProb=0: deck = %v, want non-bias cards in encounter order", newDeck)
	}
}

func TestBiasedReshuffle(t *testing.T) {
	table := []deck.Card{26, 27, 0, 13}
	rest := []deck.Card{28, 50}
	newDeck, moved := deck.BiasedReshuffle(2, 1, 1, table, rest)
	if moved != 2 {
		t.Fatalf("moved = %d, want 2", moved)
	}
	if len(newDeck) != 4 {
		t.Fatalf("deck size = %d, want 4", len(newDeck))
	}
	// All three suit-2 cards must sit at the front.
	for i := 0; i < 3; i++ {
		if newDeck[i].Suit() != 2 {
			t.Errorf("prefix card %v is not bias suit (deck %v)", newDeck[i], newDeck)
		}
	}
}
