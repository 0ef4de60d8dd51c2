// File: game/sink.go
package game

//go:generate go tool mockgen -destination=mocks/snapshot_sink_mock.go -package=mocks github.com/lguibr/duopong/game SnapshotSink

// SnapshotSink consumes snapshots produced by the game loop. Spectator
// connections, the terminal UI and the audio cues are all sinks.
type SnapshotSink interface {
	ID() string
	// Deliver must not hold on to the snapshot's slices after returning.
	Deliver(snapshot Snapshot) error
	Close() error
}
