// File: game/game_actor.go
package game

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/utils"
)

// GameActor owns the Simulation. Every tick and command goes through its
// mailbox, so the simulation has a single writer.
type GameActor struct {
	sim            *Simulation
	engine         *bollywood.Engine
	broadcasterPID *bollywood.PID
	selfPID        *bollywood.PID
	dt             float64
	tickPeriod     time.Duration
	ticker         *time.Ticker
	stopTickerCh   chan struct{}
	stopOnce       sync.Once
	onQuit         func()
	quitOnce       sync.Once
	logger         *slog.Logger
}

// NewGameActorProducer creates a producer for the GameActor. A zero tickPeriod
// disables the internal ticker; GameTick messages must then come from outside.
func NewGameActorProducer(engine *bollywood.Engine, sim *Simulation, broadcasterPID *bollywood.PID, tickPeriod time.Duration, onQuit func()) bollywood.Producer {
	return func() bollywood.Actor {
		return &GameActor{
			sim:            sim,
			engine:         engine,
			broadcasterPID: broadcasterPID,
			dt:             sim.Config().TickPeriod.Seconds(),
			tickPeriod:     tickPeriod,
			stopTickerCh:   make(chan struct{}),
			onQuit:         onQuit,
			logger:         utils.NewLogger("game-actor"),
		}
	}
}

// Receive is the main message handler for the GameActor.
func (a *GameActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("panic recovered in Receive", "pid", a.selfPID.String(), "panic", r, "stack", string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
		a.logger = a.logger.With("pid", a.selfPID.String())
	}

	switch m := ctx.Message().(type) {
	case bollywood.Started:
		a.logger.Info("started", "tickPeriod", a.tickPeriod, "dt", a.dt)
		if a.tickPeriod > 0 {
			a.ticker = time.NewTicker(a.tickPeriod)
			go a.runTickerLoop(a.ticker, a.selfPID)
		}
		a.broadcast(nil)

	case GameTick:
		events := a.sim.Step(a.dt)
		snap := a.broadcast(events)
		ctx.Reply(SnapshotResponse{Snapshot: snap})

	case SetIntentCommand:
		a.sim.SetIntent(m.Side, m.Direction)
		ctx.Reply(CommandResult{})

	case PressIntentCommand:
		a.sim.PressIntent(m.Side, m.Direction)
		ctx.Reply(CommandResult{})

	case PlayCommand:
		a.command(ctx, "play", a.sim.Play)

	case TogglePauseCommand:
		a.command(ctx, "toggle pause", a.sim.TogglePause)

	case ResetCommand:
		a.command(ctx, "reset", a.sim.Reset)

	case QuitCommand:
		a.logger.Info("quit requested", "state", a.sim.State())
		a.sim.Quit()
		a.broadcast(nil)
		ctx.Reply(CommandResult{})
		a.quitOnce.Do(func() {
			if a.onQuit != nil {
				a.onQuit()
			}
		})

	case GetSnapshotRequest:
		ctx.Reply(SnapshotResponse{Snapshot: a.sim.Snapshot(nil)})

	case bollywood.Stopping:
		a.logger.Info("stopping")
		a.stopTicker()

	case bollywood.Stopped:
		a.logger.Debug("stopped")

	default:
		a.logger.Warn("unknown message type", "type", fmt.Sprintf("%T", m))
	}
}

// command runs a state changing command and answers with its result.
func (a *GameActor) command(ctx bollywood.Context, name string, run func() ([]Event, error)) {
	events, err := run()
	if err != nil {
		a.logger.Debug("command rejected", "command", name, "state", a.sim.State(), "error", err)
	} else {
		a.broadcast(events)
	}
	ctx.Reply(CommandResult{Events: events, Err: err})
}

func (a *GameActor) broadcast(events []Event) Snapshot {
	snap := a.sim.Snapshot(events)
	if a.broadcasterPID != nil {
		a.engine.Send(a.broadcasterPID, BroadcastSnapshotCommand{Snapshot: snap}, a.selfPID)
	}
	return snap
}

// runTickerLoop sends GameTick messages to the actor's own mailbox at regular intervals.
func (a *GameActor) runTickerLoop(ticker *time.Ticker, self *bollywood.PID) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("panic recovered in ticker loop", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	for {
		select {
		case <-a.stopTickerCh:
			return
		case <-ticker.C:
			a.engine.Send(self, GameTick{}, nil)
		}
	}
}

func (a *GameActor) stopTicker() {
	a.stopOnce.Do(func() {
		if a.ticker != nil {
			a.ticker.Stop()
		}
		close(a.stopTickerCh)
	})
}
