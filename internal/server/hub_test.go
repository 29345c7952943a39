package server

import (
	"encoding/json"
	"testing"

	"go.uber.org/zap"

	"straightsix/internal/game"
	"straightsix/internal/lobby"
	"straightsix/internal/protocol"
)

func newTestHub() *Hub {
	return NewHub("g1", lobby.NewLobby("g1"), game.DefaultRules(), nil, zap.NewNop().Sugar())
}

func join(t *testing.T, h *Hub, c *Client, id, name string) {
	t.Helper()
	env := protocol.MustEnvelope(protocol.MsgJoin, protocol.JoinMsg{PlayerID: id, Name: name})
	h.handleMessage(IncomingMessage{Client: c, Envelope: env})
}

func recvEnvelope(t *testing.T, c *Client) protocol.Envelope {
	t.Helper()
	select {
	case data := <-c.send:
		var env protocol.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		return env
	default:
		t.Fatalf("no message queued for client %s", c.PlayerID)
		return protocol.Envelope{}
	}
}

func TestSecondJoinStartsSession(t *testing.T) {
	h := newTestHub()
	a := NewClient(h, nil, "a")
	b := NewClient(h, nil, "b")
	h.handleRegister(a)
	h.handleRegister(b)

	join(t, h, a, "a", "Alice")
	if h.session != nil {
		t.Fatal("session started with one seat filled")
	}
	join(t, h, b, "b", "Bob")
	if h.session == nil {
		t.Fatal("session did not start when the lobby filled")
	}

	for _, c := range []*Client{a, b} {
		env := recvEnvelope(t, c)
		if env.Type != protocol.MsgInitialized {
			t.Fatalf("client %s got %q, want %q", c.PlayerID, env.Type, protocol.MsgInitialized)
		}
	}
}

func TestRegisterAfterDealResendsState(t *testing.T) {
	h := newTestHub()
	a := NewClient(h, nil, "a")
	b := NewClient(h, nil, "b")
	h.handleRegister(a)
	h.handleRegister(b)
	join(t, h, a, "a", "Alice")
	join(t, h, b, "b", "Bob")
	recvEnvelope(t, a)
	recvEnvelope(t, b)

	// A connection registering after the deal (a reconnect) must get its
	// seat's current projection, not silence.
	h.mu.Lock()
	delete(h.clients, b)
	h.mu.Unlock()
	b2 := NewClient(h, nil, "b")
	h.handleRegister(b2)

	env := recvEnvelope(t, b2)
	if env.Type != protocol.MsgInitialized {
		t.Fatalf("late register got %q, want %q", env.Type, protocol.MsgInitialized)
	}
	var init protocol.InitializedMsg
	if err := env.Decode(&init); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(init.MyHand) != h.rules.CardsPerHand {
		t.Errorf("resent hand has %d cards, want %d", len(init.MyHand), h.rules.CardsPerHand)
	}
}

func TestDisconnectBeforeStartFreesSeat(t *testing.T) {
	h := newTestHub()
	a := NewClient(h, nil, "a")
	h.handleRegister(a)
	join(t, h, a, "a", "Alice")

	h.mu.Lock()
	delete(h.clients, a)
	h.mu.Unlock()
	h.handleDisconnect(a)

	if _, ok := h.lobby.RoleOf("a"); ok {
		t.Fatal("departed player still holds a seat")
	}

	b := NewClient(h, nil, "b")
	c := NewClient(h, nil, "c")
	h.handleRegister(b)
	h.handleRegister(c)
	join(t, h, b, "b", "Bob")
	join(t, h, c, "c", "Carol")
	if h.session == nil {
		t.Fatal("fresh pair could not start a session")
	}
	for _, cl := range []*Client{b, c} {
		if env := recvEnvelope(t, cl); env.Type != protocol.MsgInitialized {
			t.Fatalf("client %s got %q, want %q", cl.PlayerID, env.Type, protocol.MsgInitialized)
		}
	}
}
