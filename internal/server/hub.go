package server

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"straightsix/internal/game"
	"straightsix/internal/lobby"
	"straightsix/internal/protocol"
	"straightsix/internal/record"
)

// Hub owns one game session and all its connections. Its Run loop is the
// session's single writer: every inbound event is handled to completion —
// including outbound broadcasts — before the next one is taken, which gives
// both clients the same relative order of endTurn/swapUpdate/newTurn
// messages.
type Hub struct {
	mu         sync.Mutex
	gameID     string
	lobby      *lobby.Lobby
	rules      game.Rules
	session    *game.Session
	store      record.Store // nil disables recording
	log        *zap.SugaredLogger
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
	onEnd      func() // invoked once, when the hub shuts down
}

func NewHub(gameID string, lob *lobby.Lobby, rules game.Rules, store record.Store, log *zap.SugaredLogger) *Hub {
	return &Hub{
		gameID:     gameID,
		lobby:      lob,
		rules:      rules,
		store:      store,
		log:        log.With("game", gameID),
		clients:    make(map[*Client]bool),
		// Unbuffered: registration completes before the client's pumps
		// start, so no message of theirs can be handled first.
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
	}
}

// Done closes when the session has ended and the hub stopped.
func (h *Hub) Done() <-chan struct{} {
	return h.quit
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.handleDisconnect(client)

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.quit:
			return
		}
	}
}

// handleRegister adds the connection and, when a session is already live,
// resends the seat's current projection so a client arriving after the deal
// is never left without state.
func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	if h.session == nil || client.PlayerID == "" {
		return
	}
	role, ok := h.lobby.RoleOf(client.PlayerID)
	if !ok {
		return
	}
	env, ok := h.encode(game.Initialized{View: h.session.ViewFor(role)})
	if ok {
		client.SendEnvelope(env)
	}
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		h.handleJoin(msg)
	case protocol.MsgSwapUpdate:
		h.handleSwap(msg)
	case protocol.MsgEndTurn:
		h.handleAction(msg, game.Action{Type: game.ActionEndTurn})
	case protocol.MsgNextTurnRequest:
		h.handleAction(msg, game.Action{Type: game.ActionNextTurn})
	case protocol.MsgPlayerTyping, protocol.MsgChatMessage:
		h.handleRelay(msg)
	default:
		h.log.Warnw("unknown message type", "type", msg.Envelope.Type, "player", msg.Client.PlayerID)
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) {
	var join protocol.JoinMsg
	if err := msg.Envelope.Decode(&join); err != nil {
		h.sendError(msg.Client, "invalid join message")
		return
	}
	role, err := h.lobby.Join(join.PlayerID, join.Name)
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	msg.Client.PlayerID = join.PlayerID
	h.log.Infow("player joined", "player", join.PlayerID, "role", role.String())

	// The session comes to life the moment the second seat fills.
	if h.lobby.Full() && h.session == nil {
		h.startSession()
	}
}

func (h *Hub) startSession() {
	session, err := game.NewSession(h.gameID, h.lobby.Seats(), h.rules)
	if err != nil {
		// Rules were validated at startup; this is a programming error.
		h.log.Errorw("session create failed", "err", err)
		return
	}
	events, err := session.Start()
	if err != nil {
		h.log.Errorw("session start failed", "err", err)
		return
	}
	h.session = session
	h.log.Infow("session started", "biasSuit", session.BiasSuit, "rigged", h.rules.Rigged)
	h.dispatch(events)
}

func (h *Hub) handleSwap(msg IncomingMessage) {
	var swap protocol.SwapUpdateMsg
	if err := msg.Envelope.Decode(&swap); err != nil {
		h.log.Warnw("malformed swap", "player", msg.Client.PlayerID, "err", err)
		return
	}
	h.handleAction(msg, game.Action{Type: game.ActionSwap, C1: swap.C1, C2: swap.C2})
}

// handleAction routes a player action into the session. Rejections are
// logged and otherwise silent to the sender; accepted actions may still
// carry an error when the partition invariant broke, in which case the
// session has already forced itself to an internal-error end and the
// terminal events must go out.
func (h *Hub) handleAction(msg IncomingMessage, action game.Action) {
	if h.session == nil {
		h.log.Warnw("action before session start", "player", msg.Client.PlayerID)
		return
	}
	role, ok := h.lobby.RoleOf(msg.Client.PlayerID)
	if !ok {
		h.log.Warnw("action from unseated player", "player", msg.Client.PlayerID)
		return
	}

	events, err := h.session.Apply(role, action)
	if err != nil {
		h.log.Warnw("action rejected", "player", msg.Client.PlayerID,
			"action", action.Type.String(), "err", err)
	}
	h.dispatch(events)
	h.recordAction(role, events)
}

// handleRelay passes typing and chat events verbatim to the other
// participant, but only while the session has both players connected.
func (h *Hub) handleRelay(msg IncomingMessage) {
	role, ok := h.lobby.RoleOf(msg.Client.PlayerID)
	if !ok {
		return
	}
	h.mu.Lock()
	active := len(h.clients)
	h.mu.Unlock()
	if active != lobby.NumSeats {
		return
	}

	if msg.Envelope.Type == protocol.MsgChatMessage && h.store != nil {
		var chat protocol.ChatMessageMsg
		if err := msg.Envelope.Decode(&chat); err == nil {
			if err := h.store.SaveChat(record.ChatRecord{
				GameID:   h.gameID,
				PlayerID: msg.Client.PlayerID,
				Text:     chat.Msg,
				At:       time.Now(),
			}); err != nil {
				h.log.Warnw("chat record failed", "err", err)
			}
		}
	}

	if other := h.clientFor(role.Other()); other != nil {
		other.SendEnvelope(msg.Envelope)
	}
}

func (h *Hub) handleDisconnect(client *Client) {
	if client.PlayerID == "" {
		return
	}
	if h.session == nil {
		// The seat frees up so another player can still pair the game.
		h.lobby.Leave(client.PlayerID)
		return
	}
	role, ok := h.lobby.RoleOf(client.PlayerID)
	if !ok {
		return
	}
	events := h.session.Disconnect(role)
	if events == nil {
		return
	}
	h.log.Infow("player disconnected mid-session", "player", client.PlayerID)
	h.dispatch(events)
	h.recordOutcome()
	h.shutdown()
}

// dispatch converts session events to wire messages and delivers them to
// their audiences. Terminal events also tear the session's connections down.
func (h *Hub) dispatch(events []game.Event) {
	ended := false
	for _, ev := range events {
		env, ok := h.encode(ev.Payload)
		if !ok {
			continue
		}
		for _, role := range ev.To {
			if c := h.clientFor(role); c != nil {
				c.SendEnvelope(env)
			}
		}
		if _, terminal := ev.Payload.(game.GameEnded); terminal {
			ended = true
		}
	}
	if ended {
		h.recordOutcome()
		h.shutdown()
	}
}

func (h *Hub) encode(payload any) (protocol.Envelope, bool) {
	switch p := payload.(type) {
	case game.Initialized:
		return protocol.MustEnvelope(protocol.MsgInitialized, protocol.InitializedMsg{
			Deck:      p.View.Deck,
			OnTable:   p.View.OnTable,
			MyHand:    p.View.MyHand,
			TheirHand: p.View.TheirHand,
			IsMyTurn:  p.View.IsMyTurn,
			Turn:      p.View.Turn,
		}), true
	case game.SwapApplied:
		return protocol.MustEnvelope(protocol.MsgSwapUpdate, protocol.SwapUpdateMsg{C1: p.C1, C2: p.C2}), true
	case game.EndTurnAllowed:
		return protocol.MustEnvelope(protocol.MsgEndTurnAllowed, protocol.EndTurnAllowedMsg{Allowed: p.Allowed}), true
	case game.TurnEnded:
		return protocol.MustEnvelope(protocol.MsgEndTurn, protocol.EndTurnMsg{NewDeck: p.Deck, N: p.Moved}), true
	case game.TurnStarted:
		return protocol.MustEnvelope(protocol.MsgNewTurn, protocol.NewTurnMsg{Deck: p.Deck, OnTable: p.Table}), true
	case game.GameEnded:
		return protocol.MustEnvelope(protocol.MsgGameEnd, protocol.GameEndMsg{Won: p.Won}), true
	default:
		h.log.Errorw("unroutable event payload", "payload", payload)
		return protocol.Envelope{}, false
	}
}

// recordAction writes a turn row when a turn just ended.
func (h *Hub) recordAction(role game.Role, events []game.Event) {
	if h.store == nil {
		return
	}
	for _, ev := range events {
		p, ok := ev.Payload.(game.TurnEnded)
		if !ok {
			continue
		}
		seat := h.lobby.Seats()[role]
		if err := h.store.SaveTurn(record.TurnRecord{
			GameID:   h.gameID,
			Turn:     h.session.Turn - 1, // the turn that just ended
			PlayerID: seat.ID,
			Returned: p.Moved,
			DeckSize: len(p.Deck),
			At:       time.Now(),
		}); err != nil {
			h.log.Warnw("turn record failed", "err", err)
		}
	}
}

func (h *Hub) recordOutcome() {
	if h.store == nil || h.session == nil {
		return
	}
	if err := h.store.SaveOutcome(h.gameID, h.session.Outcome.String()); err != nil {
		h.log.Warnw("outcome record failed", "err", err)
	}
}

// shutdown disconnects both clients and stops the run loop. The session is
// terminal; nothing further will be accepted.
func (h *Hub) shutdown() {
	h.mu.Lock()
	for client := range h.clients {
		client.conn.Close()
	}
	h.mu.Unlock()
	select {
	case <-h.quit:
	default:
		close(h.quit)
		if h.onEnd != nil {
			h.onEnd()
		}
	}
	h.log.Infow("session ended", "outcome", h.outcomeString())
}

func (h *Hub) outcomeString() string {
	if h.session == nil {
		return game.OutcomeNone.String()
	}
	return h.session.Outcome.String()
}

func (h *Hub) clientFor(role game.Role) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if r, ok := h.lobby.RoleOf(c.PlayerID); ok && r == role {
			return c
		}
	}
	return nil
}

func (h *Hub) sendError(client *Client, message string) {
	env := protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message})
	client.SendEnvelope(env)
}
