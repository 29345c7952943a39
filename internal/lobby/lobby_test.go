package lobby_test

import (
	"testing"

	"straightsix/internal/game"
	"straightsix/internal/lobby"
)

func TestJoinAssignsRolesInOrder(t *testing.T) {
	l := lobby.NewLobby("g1")

	r1, err := l.Join("a", "Alice")
	if err != nil {
		t.Fatalf("first join: %v", err)
	}
	if r1 != game.RolePlayerOne {
		t.Errorf("first joiner role = %s, want player1", r1)
	}
	if l.Full() {
		t.Error("lobby should not be full with one seat taken")
	}

	r2, err := l.Join("b", "Bob")
	if err != nil {
		t.Fatalf("second join: %v", err)
	}
	if r2 != game.RolePlayerTwo {
		t.Errorf("second joiner role = %s, want player2", r2)
	}
	if !l.Full() {
		t.Error("lobby should be full with both seats taken")
	}

	if _, err := l.Join("c", "Carol"); err == nil {
		t.Error("third join should be rejected")
	}

	seats := l.Seats()
	if seats[0].ID != "a" || seats[1].ID != "b" {
		t.Errorf("seats = %v, want join order preserved", seats)
	}
}

func TestRejoinKeepsSeat(t *testing.T) {
	l := lobby.NewLobby("g1")
	l.Join("a", "Alice")
	l.Join("b", "Bob")

	r, err := l.Join("a", "Alicia")
	if err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if r != game.RolePlayerOne {
		t.Errorf("rejoin role = %s, want player1", r)
	}
	if seats := l.Seats(); seats[0].Name != "Alicia" {
		t.Errorf("rejoin should update the name, got %q", seats[0].Name)
	}
}

func TestManager(t *testing.T) {
	m := lobby.NewManager()
	id := m.Create()
	if m.Get(id) == nil {
		t.Fatal("created lobby not found")
	}
	if m.Get("nope") != nil {
		t.Error("unknown ID should return nil")
	}
	m.Remove(id)
	if m.Get(id) != nil {
		t.Error("removed lobby still present")
	}
}
