package protocol

import "straightsix/internal/deck"

// Message types: Server → Client
const (
	MsgInitialized    = "initialized"
	MsgEndTurnAllowed = "endTurnAllowed"
	MsgNewTurn        = "newTurn"
	MsgGameEnd        = "gameEnd"
	MsgError          = "error"
)

// Message types: Client → Server (swapUpdate, endTurn, playerTyping and
// chatMessage also travel server → client as relays/responses)
const (
	MsgJoin            = "join"
	MsgSwapUpdate      = "swapUpdate"
	MsgEndTurn         = "endTurn"
	MsgNextTurnRequest = "nextTurnRequest"
	MsgPlayerTyping    = "playerTyping"
	MsgChatMessage     = "chatMessage"
)

// JoinMsg binds a connection to a seat in the session.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// InitializedMsg is each player's first sight of the dealt game. Hands are
// already projected into the receiver's perspective.
type InitializedMsg struct {
	Deck      []deck.Card `json:"deck"`
	OnTable   []deck.Card `json:"onTable"`
	MyHand    []deck.Card `json:"myHand"`
	TheirHand []deck.Card `json:"theirHand"`
	IsMyTurn  bool        `json:"isMyTurn"`
	Turn      int         `json:"turn"`
}

// SwapUpdateMsg names the two cards exchanged by a drag-drop swap. Card
// values are plain integers in [0,52).
type SwapUpdateMsg struct {
	C1 deck.Card `json:"c1"`
	C2 deck.Card `json:"c2"`
}

// EndTurnAllowedMsg tells the acting player whether their turn may end yet.
type EndTurnAllowedMsg struct {
	Allowed bool `json:"allowed"`
}

// EndTurnMsg is the server's reshuffle broadcast: the new deck and how many
// table cards returned to it.
type EndTurnMsg struct {
	NewDeck []deck.Card `json:"newDeck"`
	N       int         `json:"n"`
}

// NewTurnMsg carries the freshly dealt table to the new turn owner.
type NewTurnMsg struct {
	Deck    []deck.Card `json:"deck"`
	OnTable []deck.Card `json:"onTable"`
}

// GameEndMsg is terminal for both clients.
type GameEndMsg struct {
	Won bool `json:"won"`
}

// PlayerTypingMsg is relayed verbatim to the other participant.
type PlayerTypingMsg struct {
	Typing bool `json:"typing"`
}

// ChatMessageMsg is relayed verbatim to the other participant.
type ChatMessageMsg struct {
	User string `json:"user"`
	Msg  string `json:"msg"`
}

// ErrorMsg is sent to a client on a rejected or malformed message.
type ErrorMsg struct {
	Message string `json:"message"`
}
