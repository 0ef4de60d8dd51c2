// File: game/broadcaster_actor.go
package game

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/utils"
)

// BroadcasterActor fans snapshots out to the registered sinks. A sink whose
// Deliver fails is removed and closed.
type BroadcasterActor struct {
	sinks   map[string]SnapshotSink
	order   []string
	last    *Snapshot
	selfPID *bollywood.PID
	logger  *slog.Logger
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer() bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			sinks:  make(map[string]SnapshotSink),
			logger: utils.NewLogger("broadcaster"),
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("panic recovered in Receive", "pid", a.selfPID.String(), "panic", r, "stack", string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:

	case AddSink:
		if msg.Sink == nil {
			return
		}
		if _, exists := a.sinks[msg.Sink.ID()]; !exists {
			a.order = append(a.order, msg.Sink.ID())
		}
		a.sinks[msg.Sink.ID()] = msg.Sink
		a.logger.Debug("sink added", "sink", msg.Sink.ID(), "sinks", len(a.sinks))
		if a.last != nil {
			a.deliver(msg.Sink, *a.last)
		}
		ctx.Reply(SinkCountResponse{Count: len(a.sinks)})

	case RemoveSink:
		a.remove(msg.ID)
		ctx.Reply(SinkCountResponse{Count: len(a.sinks)})

	case BroadcastSnapshotCommand:
		snap := msg.Snapshot
		a.last = &snap
		for _, id := range append([]string(nil), a.order...) {
			if sink, ok := a.sinks[id]; ok {
				a.deliver(sink, snap)
			}
		}

	case GetSinkCountRequest:
		ctx.Reply(SinkCountResponse{Count: len(a.sinks)})

	case bollywood.Stopping:
		for _, id := range append([]string(nil), a.order...) {
			a.remove(id)
		}

	case bollywood.Stopped:

	default:
		a.logger.Warn("unknown message type", "type", fmt.Sprintf("%T", msg))
	}
}

func (a *BroadcasterActor) deliver(sink SnapshotSink, snap Snapshot) {
	if err := sink.Deliver(snap); err != nil {
		a.logger.Info("dropping sink after failed delivery", "sink", sink.ID(), "error", err)
		a.remove(sink.ID())
	}
}

func (a *BroadcasterActor) remove(id string) {
	sink, ok := a.sinks[id]
	if !ok {
		return
	}
	delete(a.sinks, id)
	for i, existing := range a.order {
		if existing == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	if err := sink.Close(); err != nil {
		a.logger.Debug("sink close failed", "sink", id, "error", err)
	}
}
