package game

import "straightsix/internal/deck"

// ActionType tags the inbound player actions the session accepts.
type ActionType int

const (
	ActionSwap     ActionType = iota // exchange two cards between collections
	ActionEndTurn                    // end the current turn
	ActionNextTurn                   // deal the table for the requester's new turn
)

var actionNames = map[ActionType]string{
	ActionSwap:     "swap",
	ActionEndTurn:  "endTurn",
	ActionNextTurn: "nextTurnRequest",
}

func (a ActionType) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Action is one inbound player action. C1 and C2 are only meaningful for
// ActionSwap.
type Action struct {
	Type ActionType
	C1   deck.Card
	C2   deck.Card
}
