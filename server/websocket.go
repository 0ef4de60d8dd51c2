// File: server/websocket.go
package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/duopong/game"
	"golang.org/x/net/websocket"
)

const writeTimeout = 2 * time.Second

// wsSink streams snapshots to one spectator connection.
type wsSink struct {
	id        string
	conn      *websocket.Conn
	codec     websocket.Codec
	closeOnce sync.Once
	done      chan struct{}
}

func newWSSink(conn *websocket.Conn, codec websocket.Codec) *wsSink {
	return &wsSink{
		id:    "ws-" + uuid.NewString(),
		conn:  conn,
		codec: codec,
		done:  make(chan struct{}),
	}
}

func (s *wsSink) ID() string { return s.id }

func (s *wsSink) Deliver(snapshot game.Snapshot) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return s.codec.Send(s.conn, snapshot)
}

func (s *wsSink) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.conn.Close()
	})
	return err
}

// Done is closed once the sink is closed.
func (s *wsSink) Done() <-chan struct{} { return s.done }
