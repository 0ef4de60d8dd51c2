// File: game/types.go
package game

import "fmt"

// Side identifies a paddle and the half of the field it defends.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Sides lists both sides in a fixed order.
var Sides = [2]Side{SideLeft, SideRight}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Valid reports whether s is Left or Right.
func (s Side) Valid() bool { return s == SideLeft || s == SideRight }

func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Left":
		*s = SideLeft
	case "Right":
		*s = SideRight
	default:
		return fmt.Errorf("unknown side %q", text)
	}
	return nil
}

// Direction is a per-tick paddle intent. Its value is the sign applied to y.
type Direction int

const (
	DirectionDown Direction = -1
	DirectionNone Direction = 0
	DirectionUp   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	}
	return "None"
}

// State is the top level game state.
type State int

const (
	StateMenu State = iota
	StateInGame
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateInGame:
		return "InGame"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(text []byte) error {
	for _, candidate := range []State{StateMenu, StateInGame, StatePaused, StateGameOver} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", text)
}

// PowerUpType selects the effect applied on pickup.
type PowerUpType int

const (
	PowerUpSpeedup PowerUpType = iota
	PowerUpSlowdown
)

// PowerUpTypes is the set the spawner draws from.
var PowerUpTypes = [2]PowerUpType{PowerUpSpeedup, PowerUpSlowdown}

func (t PowerUpType) String() string {
	switch t {
	case PowerUpSpeedup:
		return "Speedup"
	case PowerUpSlowdown:
		return "Slowdown"
	}
	return fmt.Sprintf("PowerUpType(%d)", int(t))
}

// Color is the display colour for the power-up type.
func (t PowerUpType) Color() string {
	if t == PowerUpSlowdown {
		return ColorSlowdown
	}
	return ColorSpeedup
}

func (t PowerUpType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *PowerUpType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Speedup":
		*t = PowerUpSpeedup
	case "Slowdown":
		*t = PowerUpSlowdown
	default:
		return fmt.Errorf("unknown power-up type %q", text)
	}
	return nil
}

// Display colours carried by snapshots.
const (
	ColorPaddle   = "#ffffff"
	ColorBall     = "#ffffff"
	ColorSpeedup  = "#00ff00"
	ColorSlowdown = "#ff0000"
)
