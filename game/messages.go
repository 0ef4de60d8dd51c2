// File: game/messages.go
package game

// --- GameActor Messages ---

// GameTick advances the simulation by one fixed step.
type GameTick struct{}

// SetIntentCommand reports a held direction for a side (key down / key up known).
type SetIntentCommand struct {
	Side      Side
	Direction Direction
}

// PressIntentCommand reports a key press for a side, held for the key hold window.
type PressIntentCommand struct {
	Side      Side
	Direction Direction
}

// PlayCommand starts a new match from the menu.
type PlayCommand struct{}

// TogglePauseCommand suspends or resumes the running match.
type TogglePauseCommand struct{}

// ResetCommand returns from the game over screen to the menu.
type ResetCommand struct{}

// QuitCommand ends the session from any state.
type QuitCommand struct{}

// CommandResult answers a command sent with Ask.
type CommandResult struct {
	Events []Event
	Err    error
}

// GetSnapshotRequest asks the GameActor for its current snapshot.
type GetSnapshotRequest struct{}

// SnapshotResponse answers GetSnapshotRequest and an asked GameTick.
type SnapshotResponse struct {
	Snapshot Snapshot
}

// --- BroadcasterActor Messages ---

// BroadcastSnapshotCommand fans a snapshot out to every sink.
type BroadcastSnapshotCommand struct {
	Snapshot Snapshot
}

// AddSink registers a sink. It immediately receives the last snapshot seen.
type AddSink struct {
	Sink SnapshotSink
}

// RemoveSink unregisters and closes a sink.
type RemoveSink struct {
	ID string
}

// GetSinkCountRequest asks the broadcaster how many sinks are registered.
type GetSinkCountRequest struct{}

type SinkCountResponse struct {
	Count int
}
