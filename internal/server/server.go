package server

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"straightsix/internal/game"
	"straightsix/internal/record"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers *Handlers
	port     int
	log      *zap.SugaredLogger
}

func New(port int, rules game.Rules, store record.Store, log *zap.SugaredLogger) *Server {
	return &Server{
		handlers: NewHandlers(rules, store, log),
		port:     port,
		log:      log,
	}
}

func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/create", s.handlers.HandleCreateGame)
	mux.HandleFunc("/api/qr", s.handlers.HandleQR)
	mux.HandleFunc("/api/player-id", s.handlers.HandlePlayerID)
	mux.HandleFunc("/ws", s.handlers.HandleWS)

	addr := fmt.Sprintf(":%d", s.port)
	s.log.Infow("server starting", "addr", addr)
	s.log.Infof("POST to http://localhost%s/api/create to open a new game", addr)
	return http.ListenAndServe(addr, mux)
}
