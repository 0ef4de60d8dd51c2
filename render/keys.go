// File: render/keys.go
package render

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/duopong/game"
)

// Dispatcher forwards a command message to the game loop.
type Dispatcher func(msg interface{})

// IsQuitKey reports the keys that end the session from any screen.
func IsQuitKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return unicode.ToLower(r) == 'q'
	}
	return false
}

// FieldKeyAction maps a key on the playing field to a command. Terminals only
// report key presses, so paddle keys become PressIntentCommand and decay after
// the key hold window.
func FieldKeyAction(key tcell.Key, r rune) (interface{}, bool) {
	if IsQuitKey(key, r) {
		return game.QuitCommand{}, true
	}
	switch key {
	case tcell.KeyUp:
		return game.PressIntentCommand{Side: game.SideRight, Direction: game.DirectionUp}, true
	case tcell.KeyDown:
		return game.PressIntentCommand{Side: game.SideRight, Direction: game.DirectionDown}, true
	case tcell.KeyEnter:
		return game.PlayCommand{}, true
	case tcell.KeyRune:
	default:
		return nil, false
	}

	switch unicode.ToLower(r) {
	case 'a', 'w':
		return game.PressIntentCommand{Side: game.SideLeft, Direction: game.DirectionUp}, true
	case 'd', 's':
		return game.PressIntentCommand{Side: game.SideLeft, Direction: game.DirectionDown}, true
	case 'p', ' ':
		return game.TogglePauseCommand{}, true
	}
	return nil, false
}
