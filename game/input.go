// File: game/input.go
package game

// InputState turns reported key activity into one Direction per side.
// When both directions are reported, the last report wins.
//
// Set is for sources that know when a key goes up. Press is for sources that
// only see key presses and repeats, such as a terminal: the intent is held for
// the hold window of simulation time and then decays to None.
type InputState struct {
	holdWindow float64
	intents    [2]Direction
	hold       [2]float64
	pressed    [2]bool
}

func NewInputState(holdWindow float64) *InputState {
	return &InputState{holdWindow: holdWindow}
}

// Set holds dir until the next report for that side.
func (in *InputState) Set(side Side, dir Direction) {
	if !side.Valid() {
		return
	}
	in.intents[side] = dir
	in.pressed[side] = false
	in.hold[side] = 0
}

// Press holds dir for the hold window.
func (in *InputState) Press(side Side, dir Direction) {
	if !side.Valid() {
		return
	}
	in.intents[side] = dir
	in.pressed[side] = dir != DirectionNone
	in.hold[side] = in.holdWindow
}

func (in *InputState) Intent(side Side) Direction {
	if !side.Valid() {
		return DirectionNone
	}
	return in.intents[side]
}

// Advance decays pressed intents. Call it after the intents were consumed.
func (in *InputState) Advance(dt float64) {
	for i := range in.intents {
		if !in.pressed[i] {
			continue
		}
		in.hold[i] -= dt
		if in.hold[i] <= timerEpsilon {
			in.intents[i] = DirectionNone
			in.pressed[i] = false
			in.hold[i] = 0
		}
	}
}

func (in *InputState) Clear() {
	*in = InputState{holdWindow: in.holdWindow}
}
