package game

import "straightsix/internal/deck"

// View is a role's projection of the canonical session state. Hands are
// stored once per role on the session; this mapping to my/their perspective
// happens only here, at the protocol boundary.
type View struct {
	Deck      []deck.Card
	OnTable   []deck.Card
	MyHand    []deck.Card
	TheirHand []deck.Card
	IsMyTurn  bool
	Turn      int
	Phase     Phase
}

// ViewFor projects the session for one role. Pure read; collections are
// copied so the caller cannot alias session state.
func (s *Session) ViewFor(r Role) View {
	return View{
		Deck:      copyCards(s.Deck),
		OnTable:   copyCards(s.Table),
		MyHand:    copyCards(s.Hands[r]),
		TheirHand: copyCards(s.Hands[r.Other()]),
		IsMyTurn:  s.TurnOwner == r && s.Phase != PhaseEnded,
		Turn:      s.Turn,
		Phase:     s.Phase,
	}
}

func copyCards(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards))
	copy(out, cards)
	return out
}
