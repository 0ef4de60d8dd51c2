package bollywood

import "errors"

var (
	// ErrTimeout is returned by Ask when no reply arrives in time.
	ErrTimeout = errors.New("bollywood: ask timed out")
	// ErrActorNotFound is returned when the target PID is not running.
	ErrActorNotFound = errors.New("bollywood: actor not found")
	// ErrEngineStopping is returned once Shutdown has started.
	ErrEngineStopping = errors.New("bollywood: engine is stopping")
)

// --- System Messages ---

// Started is the first message an actor receives.
type Started struct{}

// Stopping asks the actor to release its resources. No user message follows it.
type Stopping struct{}

// Stopped is the last message an actor receives before its goroutine exits.
type Stopped struct{}

type envelope struct {
	sender  *PID
	message interface{}
	reply   chan interface{}
}
