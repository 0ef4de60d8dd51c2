// File: game/collision_tracker.go
package game

// ContactKey identifies a ball touching a paddle.
type ContactKey struct {
	Ball   int
	Paddle Side
}

// ContactTracker remembers which contacts are ongoing so that a hit is
// reported once when it starts, not on every tick the boxes overlap.
// It is owned by the simulation and needs no locking.
type ContactTracker struct {
	active map[ContactKey]struct{}
}

func NewContactTracker() *ContactTracker {
	return &ContactTracker{active: make(map[ContactKey]struct{})}
}

// Begin registers a contact and returns true only if it was not already active.
func (ct *ContactTracker) Begin(key ContactKey) bool {
	if _, exists := ct.active[key]; exists {
		return false
	}
	ct.active[key] = struct{}{}
	return true
}

func (ct *ContactTracker) End(key ContactKey) {
	delete(ct.active, key)
}

// Clear drops every contact, used when the ball is recentred or a match starts.
func (ct *ContactTracker) Clear() {
	clear(ct.active)
}
