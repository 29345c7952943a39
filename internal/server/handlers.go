package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"straightsix/internal/game"
	"straightsix/internal/lobby"
	qr "straightsix/internal/qrcode"
	"straightsix/internal/record"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	mu       sync.Mutex
	lobbyMgr *lobby.Manager
	hubs     map[string]*Hub
	rules    game.Rules
	store    record.Store
	log      *zap.SugaredLogger
}

func NewHandlers(rules game.Rules, store record.Store, log *zap.SugaredLogger) *Handlers {
	return &Handlers{
		lobbyMgr: lobby.NewManager(),
		hubs:     make(map[string]*Hub),
		rules:    rules,
		store:    store,
		log:      log,
	}
}

// HandleCreateGame creates a new waiting game and returns its ID and join
// link.
func (h *Handlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	gameID := h.lobbyMgr.Create()
	lob := h.lobbyMgr.Get(gameID)
	hub := NewHub(gameID, lob, h.rules, h.store, h.log)
	hub.onEnd = func() {
		h.mu.Lock()
		delete(h.hubs, gameID)
		h.mu.Unlock()
		h.lobbyMgr.Remove(gameID)
	}

	h.mu.Lock()
	h.hubs[gameID] = hub
	h.mu.Unlock()
	go hub.Run()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"game_id":  gameID,
		"join_url": fmt.Sprintf("ws://%s/ws?game=%s", r.Host, gameID),
	})
}

// HandleQR generates a QR code PNG of the join link, for the second player
// to scan.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	url := fmt.Sprintf("http://%s/join?game=%s", r.Host, gameID)
	png, err := qr.Generate(url)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	playerID := r.URL.Query().Get("player")

	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	hub, ok := h.hubs[gameID]
	h.mu.Unlock()
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	select {
	case <-hub.Done():
		http.Error(w, "game is over", http.StatusGone)
		return
	default:
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnw("ws upgrade error", "err", err)
		return
	}

	client := NewClient(hub, conn, playerID)
	select {
	case hub.register <- client:
	case <-hub.Done():
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

// HandlePlayerID returns a new player ID.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	id := GeneratePlayerID()
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(id))
}
