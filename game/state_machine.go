// File: game/state_machine.go
package game

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for a move the state machine does not allow.
var ErrInvalidTransition = errors.New("invalid state transition")

var allowedTransitions = map[State][]State{
	StateMenu:     {StateInGame},
	StateInGame:   {StatePaused, StateGameOver},
	StatePaused:   {StateInGame},
	StateGameOver: {StateMenu},
}

// StateMachine tracks Menu, InGame, Paused and GameOver. Quit is a flag, not
// a state: it is accepted from anywhere and read by whoever drives the loop.
type StateMachine struct {
	state State
	quit  bool
}

func NewStateMachine() *StateMachine {
	return &StateMachine{state: StateMenu}
}

func (m *StateMachine) State() State { return m.state }

func (m *StateMachine) CanTransition(to State) bool {
	for _, allowed := range allowedTransitions[m.state] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition moves to the target state, leaving the state untouched on error.
func (m *StateMachine) Transition(to State) (Event, error) {
	if !m.CanTransition(to) {
		return Event{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.state, to)
	}
	from := m.state
	m.state = to
	return stateChanged(from, to), nil
}

// TogglePause flips between InGame and Paused.
func (m *StateMachine) TogglePause() (Event, error) {
	switch m.state {
	case StateInGame:
		return m.Transition(StatePaused)
	case StatePaused:
		return m.Transition(StateInGame)
	}
	return Event{}, fmt.Errorf("%w: cannot pause from %s", ErrInvalidTransition, m.state)
}

func (m *StateMachine) Quit() { m.quit = true }

func (m *StateMachine) QuitRequested() bool { return m.quit }
