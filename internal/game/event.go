package game

import "straightsix/internal/deck"

// Event pairs a typed payload with the roles it must be delivered to. The
// hub switches on the concrete payload type to pick the wire message.
type Event struct {
	To      []Role
	Payload any
}

func toBoth(payload any) Event {
	return Event{To: []Role{RolePlayerOne, RolePlayerTwo}, Payload: payload}
}

func toRole(r Role, payload any) Event {
	return Event{To: []Role{r}, Payload: payload}
}

// Initialized carries a role's first projection of the dealt session.
type Initialized struct {
	View View
}

// SwapApplied notifies the non-acting player of an accepted swap.
type SwapApplied struct {
	C1 deck.Card
	C2 deck.Card
}

// EndTurnAllowed tells the acting player whether the table has diverged from
// its turn-start configuration, i.e. whether ending the turn is permitted.
type EndTurnAllowed struct {
	Allowed bool
}

// TurnEnded reports the reshuffle outcome to both players.
type TurnEnded struct {
	Deck  []deck.Card
	Moved int
}

// TurnStarted carries the freshly dealt table to the new turn owner.
type TurnStarted struct {
	Deck  []deck.Card
	Table []deck.Card
}

// GameEnded is terminal for the session.
type GameEnded struct {
	Won     bool
	Outcome Outcome
}
