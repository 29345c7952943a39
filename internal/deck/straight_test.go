package deck_test

import (
	"testing"

	"straightsix/internal/deck"
)

func TestIsWrappedStraight(t *testing.T) {
	tests := []struct {
		name  string
		hand1 []deck.Card
		hand2 []deck.Card
		want  bool
	}{
		{"consecutive same suit", []deck.Card{0, 1, 2}, []deck.Card{3, 4, 5}, true},
		{"consecutive shuffled", []deck.Card{5, 1, 2}, []deck.Card{3, 0, 4}, true},
		{"overlapping rank", []deck.Card{0, 1, 2}, []deck.Card{2, 3, 4}, false},
		{"wraps around suit end", []deck.Card{9, 10, 11}, []deck.Card{12, 0, 1}, true},
		{"wraps shuffled", []deck.Card{11, 0, 9}, []deck.Card{10, 1, 12}, true},
		{"wraps in higher suit", []deck.Card{13, 14, 25}, []deck.Card{23, 24, 15}, true},
		{"higher suit run", []deck.Card{13, 14, 15}, []deck.Card{16, 17, 18}, true},
		{"mixed suits", []deck.Card{0, 1, 2}, []deck.Card{16, 17, 18}, false},
		{"two gaps", []deck.Card{0, 1, 2}, []deck.Card{4, 6, 7}, false},
		{"gap without wrap endpoints", []deck.Card{1, 2, 3}, []deck.Card{5, 6, 7}, false},
		{"empty hands", nil, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deck.IsWrappedStraight(tt.hand1, tt.hand2); got != tt.want {
				t.Errorf("IsWrappedStraight(%v, %v) = %v, want %v", tt.hand1, tt.hand2, got, tt.want)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card deck.Card
		want string
	}{
		{0, "A♠"},
		{9, "10♠"},
		{12, "K♠"},
		{13, "A♥"},
		{51, "K♣"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("Card(%d).String() = %q, want %q", tt.card, got, tt.want)
		}
	}
}
