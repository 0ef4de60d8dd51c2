// File: bollywood/process.go
package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

type process struct {
	engine   *Engine
	pid      *PID
	props    *Props
	actor    Actor
	mailbox  chan *envelope
	stopCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *envelope, props.mailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// deliver enqueues without blocking. A full mailbox drops the message.
func (p *process) deliver(env *envelope) bool {
	if p.stopped.Load() {
		return false
	}
	select {
	case p.mailbox <- env:
		return true
	default:
		p.engine.logger.Warn("mailbox full, dropping message", "pid", p.pid.ID, "type", fmt.Sprintf("%T", env.message))
		return false
	}
}

func (p *process) stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

func (p *process) run() {
	defer p.engine.remove(p.pid)

	p.actor = p.props.produce()
	if p.actor == nil {
		p.engine.logger.Error("producer returned nil actor", "pid", p.pid.ID)
		p.stopped.Store(true)
		return
	}

	defer func() {
		p.stopped.Store(true)
		p.invoke(&envelope{message: Stopping{}})
		p.invoke(&envelope{message: Stopped{}})
	}()

	if !p.invoke(&envelope{message: Started{}}) {
		return
	}

	for {
		select {
		case <-p.stopCh:
			return
		case env := <-p.mailbox:
			if !p.invoke(env) {
				return
			}
		}
	}
}

// invoke runs Receive and reports false when the actor panicked.
func (p *process) invoke(env *envelope) (ok bool) {
	ctx := &actorContext{
		engine:  p.engine,
		self:    p.pid,
		sender:  env.sender,
		message: env.message,
		reply:   env.reply,
	}
	defer func() {
		if r := recover(); r != nil {
			p.engine.logger.Error("actor panicked",
				"pid", p.pid.ID,
				"message", fmt.Sprintf("%T", env.message),
				"panic", r,
				"stack", string(debug.Stack()))
			ok = false
		}
	}()
	p.actor.Receive(ctx)
	return true
}
