// File: game/events.go
package game

// EventKind names something that happened during a step or a command.
type EventKind string

const (
	EventStateChanged     EventKind = "stateChanged"
	EventPaddleHit        EventKind = "paddleHit"
	EventWallBounce       EventKind = "wallBounce"
	EventGoal             EventKind = "goal"
	EventPowerUpSpawned   EventKind = "powerUpSpawned"
	EventPowerUpCollected EventKind = "powerUpCollected"
	EventMatchOver        EventKind = "matchOver"
	EventServe            EventKind = "serve"
)

// Event is a flat record so it encodes the same way in JSON and msgpack.
// Side is the paddle hit, the scorer, the winner or the serve target,
// depending on Kind.
type Event struct {
	Kind        EventKind   `json:"kind" msgpack:"kind"`
	From        State       `json:"from" msgpack:"from"`
	To          State       `json:"to" msgpack:"to"`
	Side        Side        `json:"side" msgpack:"side"`
	PowerUpID   string      `json:"powerUpId,omitempty" msgpack:"powerUpId,omitempty"`
	PowerUpType PowerUpType `json:"powerUpType" msgpack:"powerUpType"`
}

func stateChanged(from, to State) Event {
	return Event{Kind: EventStateChanged, From: from, To: to}
}

// HasEvent reports whether events contains one of the given kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
