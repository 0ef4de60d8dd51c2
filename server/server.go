// File: server/server.go
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/utils"
)

const (
	askTimeout      = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server exposes the running game over HTTP: the current snapshot, the
// effective config and a read-only websocket spectator stream.
type Server struct {
	engine         *bollywood.Engine
	gameActorPID   *bollywood.PID
	broadcasterPID *bollywood.PID
	cfg            utils.Config
	logger         *slog.Logger
}

func New(engine *bollywood.Engine, gameActorPID, broadcasterPID *bollywood.PID, cfg utils.Config) *Server {
	return &Server{
		engine:         engine,
		gameActorPID:   gameActorPID,
		broadcasterPID: broadcasterPID,
		cfg:            cfg,
		logger:         utils.NewLogger("server"),
	}
}

// Router wires the HTTP endpoints.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/state", s.HandleGetState()).Methods(http.MethodGet)
	r.HandleFunc("/config", s.HandleGetConfig()).Methods(http.MethodGet)
	r.Handle("/subscribe", s.HandleSubscribe())
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
		if err := httpServer.Close(); err != nil {
			s.logger.Error("forced close failed", "error", err)
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}
