package lobby

import (
	"fmt"
	"sync"

	"straightsix/internal/game"
)

// Seats in a two-player lobby, in join order. The first player to join is
// player one and owns the first turn.
const NumSeats = 2

// Lobby is a waiting game: one seat filled, hoping for a second. Once both
// seats fill the lobby is complete and the session can start.
type Lobby struct {
	mu    sync.Mutex
	ID    string
	seats []game.Seat
}

// NewLobby creates an empty lobby.
func NewLobby(id string) *Lobby {
	return &Lobby{ID: id}
}

// Join claims the next free seat and returns the joined player's role.
// Rejoining with a known ID updates the name and keeps the seat.
func (l *Lobby) Join(id, name string) (game.Role, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, s := range l.seats {
		if s.ID == id {
			l.seats[i].Name = name
			return game.Role(i), nil
		}
	}
	if len(l.seats) >= NumSeats {
		return 0, fmt.Errorf("game is full")
	}
	l.seats = append(l.seats, game.Seat{ID: id, Name: name})
	return game.Role(len(l.seats) - 1), nil
}

// Leave frees a seat. Only meaningful before the session starts.
func (l *Lobby) Leave(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, s := range l.seats {
		if s.ID == id {
			l.seats = append(l.seats[:i], l.seats[i+1:]...)
			return
		}
	}
}

// Full reports whether both seats are taken.
func (l *Lobby) Full() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seats) == NumSeats
}

// RoleOf looks up the seat a player holds.
func (l *Lobby) RoleOf(id string) (game.Role, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, s := range l.seats {
		if s.ID == id {
			return game.Role(i), true
		}
	}
	return 0, false
}

// Seats returns the two seats in role order. Call only when Full.
func (l *Lobby) Seats() [NumSeats]game.Seat {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out [NumSeats]game.Seat
	copy(out[:], l.seats)
	return out
}
