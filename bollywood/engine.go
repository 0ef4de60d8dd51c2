// File: bollywood/engine.go
package bollywood

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Engine owns the running actors and routes messages between them.
type Engine struct {
	pidCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex
	stopping   atomic.Bool
	logger     *slog.Logger
}

// NewEngine creates an engine logging through slog's default logger.
func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
		logger: slog.Default().With("component", "bollywood"),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn starts a new actor. It returns nil once the engine is stopping.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		e.logger.Warn("engine is stopping, spawn refused")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()
	return pid
}

func (e *Engine) lookup(pid *PID) (*process, bool) {
	if pid == nil {
		return nil, false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	proc, ok := e.actors[pid.ID]
	return proc, ok
}

// Send delivers a message asynchronously. sender may be nil.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if e.stopping.Load() {
		return
	}
	proc, ok := e.lookup(pid)
	if !ok {
		e.logger.Debug("dropping message for unknown actor", "pid", pid.String(), "type", fmt.Sprintf("%T", message))
		return
	}
	proc.deliver(&envelope{sender: sender, message: message})
}

// Ask sends a message and waits for the actor to call Context.Reply.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	if e.stopping.Load() {
		return nil, ErrEngineStopping
	}
	proc, ok := e.lookup(pid)
	if !ok {
		return nil, fmt.Errorf("ask %s: %w", pid.String(), ErrActorNotFound)
	}

	reply := make(chan interface{}, 1)
	if !proc.deliver(&envelope{message: message, reply: reply}) {
		return nil, fmt.Errorf("ask %s: %w", pid.String(), ErrActorNotFound)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case answer := <-reply:
		return answer, nil
	case <-timer.C:
		return nil, fmt.Errorf("ask %s (%T): %w", pid.String(), message, ErrTimeout)
	}
}

// Stop asks an actor to shut down. It receives Stopping, then Stopped.
func (e *Engine) Stop(pid *PID) {
	if proc, ok := e.lookup(pid); ok {
		proc.stop()
	}
}

// Running reports whether the actor is still registered.
func (e *Engine) Running(pid *PID) bool {
	_, ok := e.lookup(pid)
	return ok
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops every actor and waits up to timeout for them to exit.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}

	e.mu.RLock()
	procs := make([]*process, 0, len(e.actors))
	for _, proc := range e.actors {
		procs = append(procs, proc)
	}
	e.mu.RUnlock()

	e.logger.Info("engine shutdown initiated", "actors", len(procs))
	for _, proc := range procs {
		proc.stop()
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		e.mu.RLock()
		remaining := len(e.actors)
		e.mu.RUnlock()
		if remaining == 0 {
			e.logger.Info("engine shutdown complete")
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	e.mu.Lock()
	e.logger.Warn("engine shutdown timed out", "remaining", len(e.actors))
	e.actors = make(map[string]*process)
	e.mu.Unlock()
}
