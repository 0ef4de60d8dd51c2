// File: server/handlers.go
package server

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/lguibr/duopong/game"
	"golang.org/x/net/websocket"
)

// HandleGetState returns the current snapshot by asking the GameActor.
func (s *Server) HandleGetState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer s.recoverHandler(w, "state")

		reply, err := s.engine.Ask(s.gameActorPID, game.GetSnapshotRequest{}, askTimeout)
		if err != nil {
			s.logger.Warn("snapshot request failed", "error", err)
			http.Error(w, "game unavailable", http.StatusServiceUnavailable)
			return
		}
		resp, ok := reply.(game.SnapshotResponse)
		if !ok {
			http.Error(w, "unexpected reply", http.StatusInternalServerError)
			return
		}
		writeJSON(w, resp.Snapshot)
	}
}

// HandleGetConfig returns the effective configuration.
func (s *Server) HandleGetConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer s.recoverHandler(w, "config")
		writeJSON(w, s.cfg)
	}
}

// HandleSubscribe upgrades to a websocket that receives every snapshot.
// Spectators cannot send input; the read loop only waits for the close.
func (s *Server) HandleSubscribe() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		format := r.URL.Query().Get("format")
		codec, err := codecFor(format)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ws := websocket.Server{
			// Any origin may watch.
			Handshake: func(*websocket.Config, *http.Request) error { return nil },
			Handler:   func(conn *websocket.Conn) { s.serveSpectator(conn, codec, format) },
		}
		ws.ServeHTTP(w, r)
	})
}

func (s *Server) serveSpectator(conn *websocket.Conn, codec websocket.Codec, format string) {
	sink := newWSSink(conn, codec)
	logger := s.logger.With("sink", sink.ID(), "remote", conn.Request().RemoteAddr, "format", format)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic recovered in spectator handler", "panic", r, "stack", string(debug.Stack()))
		}
		s.engine.Send(s.broadcasterPID, game.RemoveSink{ID: sink.ID()}, nil)
		_ = sink.Close()
		logger.Info("spectator disconnected")
	}()

	if _, err := s.engine.Ask(s.broadcasterPID, game.AddSink{Sink: sink}, askTimeout); err != nil {
		logger.Warn("could not register spectator", "error", err)
		return
	}
	logger.Info("spectator connected")

	readErr := make(chan error, 1)
	go func() {
		for {
			var discard []byte
			if err := websocket.Message.Receive(conn, &discard); err != nil {
				readErr <- err
				return
			}
		}
	}()

	select {
	case <-sink.Done():
		logger.Debug("sink dropped by broadcaster")
	case err := <-readErr:
		logger.Debug("spectator read ended", "error", err)
	}
}

func (s *Server) recoverHandler(w http.ResponseWriter, name string) {
	if rec := recover(); rec != nil {
		s.logger.Error("panic recovered in handler", "handler", name, "panic", rec, "stack", string(debug.Stack()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
