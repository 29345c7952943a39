package game

import (
	"errors"

	"straightsix/internal/deck"
)

var (
	ErrNotYourTurn    = errors.New("not your turn")
	ErrWrongPhase     = errors.New("wrong phase for this action")
	ErrInvalidAction  = errors.New("invalid action")
	ErrCardNotHeld    = errors.New("card not in a collection you may touch")
	ErrTableUnchanged = errors.New("table unchanged since turn start")
	ErrStateCorrupt   = errors.New("card partition invariant violated")
)

// Seat binds a connected player identity to a role.
type Seat struct {
	ID   string
	Name string
}

// Session is the authoritative record of one two-player game. All mutation
// goes through Apply (and Start/Disconnect); callers must serialize access —
// the hub's run loop is the single writer.
type Session struct {
	ID    string
	Rules Rules
	Seats [2]Seat

	Phase     Phase
	Outcome   Outcome
	Turn      int
	TurnOwner Role
	BiasSuit  int

	// The card collections. Deck, Table and the two Hands are the visible
	// collections; Removed holds cards a reshuffle dropped from live play.
	// Together the five partition the 52-card universe at all times.
	Deck    []deck.Card
	Table   []deck.Card
	Hands   [2][]deck.Card
	Removed []deck.Card

	turnStart    []deck.Card // table snapshot at turn start
	tableChanged bool
}

// NewSession validates the rules and creates a session in the waiting phase.
func NewSession(id string, seats [2]Seat, rules Rules) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		ID:    id,
		Rules: rules,
		Seats: seats,
		Phase: PhaseWaiting,
	}, nil
}

// Start shuffles the universe, deals the table and both hands from the front
// of the deck, fixes the bias suit as the least common suit among all dealt
// cards, and opens player one's first turn.
func (s *Session) Start() ([]Event, error) {
	if s.Phase != PhaseWaiting {
		return nil, ErrWrongPhase
	}

	s.Deck = deck.Shuffle(deck.Universe())
	s.Table, s.Deck = deck.Deal(s.Deck, s.Rules.CardsOnTable)
	s.Hands[RolePlayerOne], s.Deck = deck.Deal(s.Deck, s.Rules.CardsPerHand)
	s.Hands[RolePlayerTwo], s.Deck = deck.Deal(s.Deck, s.Rules.CardsPerHand)

	dealt := make([]deck.Card, 0, s.Rules.CardsOnTable+2*s.Rules.CardsPerHand)
	dealt = append(dealt, s.Table...)
	dealt = append(dealt, s.Hands[RolePlayerOne]...)
	dealt = append(dealt, s.Hands[RolePlayerTwo]...)
	s.BiasSuit = deck.LeastCommonSuit(dealt)

	s.Turn = 1
	s.TurnOwner = RolePlayerOne
	s.Phase = PhaseSwapping
	s.snapshotTable()

	if ev, err := s.verify(); err != nil {
		return ev, err
	}
	return []Event{
		toRole(RolePlayerOne, Initialized{View: s.ViewFor(RolePlayerOne)}),
		toRole(RolePlayerTwo, Initialized{View: s.ViewFor(RolePlayerTwo)}),
	}, nil
}

// Apply is the single entry point for player actions. Rejected actions
// mutate nothing.
func (s *Session) Apply(r Role, action Action) ([]Event, error) {
	switch action.Type {
	case ActionSwap:
		return s.applySwap(r, action.C1, action.C2)
	case ActionEndTurn:
		return s.applyEndTurn(r)
	case ActionNextTurn:
		return s.applyNextTurn(r)
	default:
		return nil, ErrInvalidAction
	}
}

// collection identifies where a card was found, relative to the acting role.
type collection int

const (
	inNone collection = iota
	inHand
	inTable
)

func (s *Session) locate(r Role, c deck.Card) (collection, int) {
	for i, h := range s.Hands[r] {
		if h == c {
			return inHand, i
		}
	}
	for i, t := range s.Table {
		if t == c {
			return inTable, i
		}
	}
	return inNone, -1
}

func (s *Session) applySwap(r Role, c1, c2 deck.Card) ([]Event, error) {
	if s.Phase != PhaseSwapping {
		return nil, ErrWrongPhase
	}
	if !c1.Valid() || !c2.Valid() || c1 == c2 {
		return nil, ErrInvalidAction
	}

	loc1, i1 := s.locate(r, c1)
	loc2, i2 := s.locate(r, c2)
	if loc1 == inNone || loc2 == inNone {
		return nil, ErrCardNotHeld
	}
	// Hand<->hand and hand<->table are open to both players at any time;
	// rearranging the table alone needs the turn.
	if loc1 == inTable && loc2 == inTable && r != s.TurnOwner {
		return nil, ErrNotYourTurn
	}

	s.slot(r, loc1, i1, c2)
	s.slot(r, loc2, i2, c1)
	if ev, err := s.verify(); err != nil {
		return ev, err
	}

	s.tableChanged = !sameSet(s.Table, s.turnStart)
	return []Event{
		toRole(r.Other(), SwapApplied{C1: c1, C2: c2}),
		toRole(r, EndTurnAllowed{Allowed: s.tableChanged}),
	}, nil
}

func (s *Session) slot(r Role, loc collection, i int, c deck.Card) {
	switch loc {
	case inHand:
		s.Hands[r][i] = c
	case inTable:
		s.Table[i] = c
	}
}

func (s *Session) applyEndTurn(r Role) ([]Event, error) {
	if s.Phase != PhaseSwapping {
		return nil, ErrWrongPhase
	}
	if r != s.TurnOwner {
		return nil, ErrNotYourTurn
	}
	if !s.tableChanged {
		return nil, ErrTableUnchanged
	}

	if deck.IsWrappedStraight(s.Hands[RolePlayerOne], s.Hands[RolePlayerTwo]) {
		return s.end(OutcomeWon), nil
	}
	if len(s.Deck) < s.Rules.CardsOnTable {
		return s.end(OutcomeLost), nil
	}

	var newDeck []deck.Card
	var moved int
	if s.Rules.Rigged {
		newDeck, moved = deck.BiasedReshuffle(s.BiasSuit, s.Rules.ReturnProb, s.Rules.FrontProb, s.Table, s.Deck)
	} else {
		newDeck, moved = deck.Reshuffle(s.Rules.ReturnProb, s.Table, s.Deck)
	}

	// Table cards that did not return leave live play for good.
	returned := make(map[deck.Card]bool, len(newDeck))
	for _, c := range newDeck {
		returned[c] = true
	}
	for _, c := range s.Table {
		if !returned[c] {
			s.Removed = append(s.Removed, c)
		}
	}

	s.Deck = newDeck
	s.Table = nil
	s.TurnOwner = s.TurnOwner.Other()
	s.Turn++
	s.Phase = PhaseReshuffled
	s.tableChanged = false
	if ev, err := s.verify(); err != nil {
		return ev, err
	}

	return []Event{toBoth(TurnEnded{Deck: newDeck, Moved: moved})}, nil
}

func (s *Session) applyNextTurn(r Role) ([]Event, error) {
	if s.Phase != PhaseReshuffled {
		return nil, ErrWrongPhase
	}
	if r != s.TurnOwner {
		return nil, ErrNotYourTurn
	}

	s.Table, s.Deck = deck.Deal(s.Deck, s.Rules.CardsOnTable)
	s.Phase = PhaseSwapping
	s.snapshotTable()
	if ev, err := s.verify(); err != nil {
		return ev, err
	}

	return []Event{toRole(r, TurnStarted{Deck: s.Deck, Table: s.Table})}, nil
}

// Disconnect aborts a live session. Safe to call twice; the second call is a
// no-op.
func (s *Session) Disconnect(r Role) []Event {
	if s.Phase == PhaseEnded {
		return nil
	}
	s.Phase = PhaseEnded
	s.Outcome = OutcomeAborted
	return []Event{toRole(r.Other(), GameEnded{Won: false, Outcome: OutcomeAborted})}
}

func (s *Session) end(o Outcome) []Event {
	s.Phase = PhaseEnded
	s.Outcome = o
	return []Event{toBoth(GameEnded{Won: o == OutcomeWon, Outcome: o})}
}

func (s *Session) snapshotTable() {
	s.turnStart = make([]deck.Card, len(s.Table))
	copy(s.turnStart, s.Table)
	s.tableChanged = false
}

// verify checks the 52-card partition invariant. A violation means session
// state cannot be trusted; the session is forced to an internal-error end.
func (s *Session) verify() ([]Event, error) {
	seen := make(map[deck.Card]bool, deck.DeckSize)
	total := 0
	ok := true
	for _, coll := range [][]deck.Card{s.Deck, s.Table, s.Hands[0], s.Hands[1], s.Removed} {
		for _, c := range coll {
			if !c.Valid() || seen[c] {
				ok = false
			}
			seen[c] = true
			total++
		}
	}
	if !ok || total != deck.DeckSize {
		return s.end(OutcomeInternalError), ErrStateCorrupt
	}
	return nil, nil
}

func sameSet(a, b []deck.Card) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[deck.Card]bool, len(a))
	for _, c := range a {
		set[c] = true
	}
	for _, c := range b {
		if !set[c] {
			return false
		}
	}
	return true
}
