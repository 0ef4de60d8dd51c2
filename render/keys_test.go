package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/duopong/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldKeyAction(t *testing.T) {
	leftUp := game.PressIntentCommand{Side: game.SideLeft, Direction: game.DirectionUp}
	leftDown := game.PressIntentCommand{Side: game.SideLeft, Direction: game.DirectionDown}

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want interface{}
	}{
		{"a moves left paddle up", tcell.KeyRune, 'a', leftUp},
		{"W moves left paddle up", tcell.KeyRune, 'W', leftUp},
		{"d moves left paddle down", tcell.KeyRune, 'd', leftDown},
		{"s moves left paddle down", tcell.KeyRune, 's', leftDown},
		{"arrow up", tcell.KeyUp, 0, game.PressIntentCommand{Side: game.SideRight, Direction: game.DirectionUp}},
		{"arrow down", tcell.KeyDown, 0, game.PressIntentCommand{Side: game.SideRight, Direction: game.DirectionDown}},
		{"p pauses", tcell.KeyRune, 'p', game.TogglePauseCommand{}},
		{"space pauses", tcell.KeyRune, ' ', game.TogglePauseCommand{}},
		{"enter plays", tcell.KeyEnter, 0, game.PlayCommand{}},
		{"q quits", tcell.KeyRune, 'q', game.QuitCommand{}},
		{"escape quits", tcell.KeyEscape, 0, game.QuitCommand{}},
		{"ctrl+c quits", tcell.KeyCtrlC, 0, game.QuitCommand{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := FieldKeyAction(tt.key, tt.r)
			assert.True(t, ok)
			assert.Equal(t, tt.want, msg)
		})
	}

	// Reset is only offered on the game over page.
	for _, r := range []rune{'x', '1', 'z', 'r', 'R'} {
		_, ok := FieldKeyAction(tcell.KeyRune, r)
		assert.False(t, ok, "rune %q", r)
	}
	_, ok := FieldKeyAction(tcell.KeyTab, 0)
	assert.False(t, ok)
}

func TestIsQuitKey(t *testing.T) {
	assert.True(t, IsQuitKey(tcell.KeyRune, 'Q'))
	assert.True(t, IsQuitKey(tcell.KeyEscape, 0))
	assert.False(t, IsQuitKey(tcell.KeyRune, 'w'))
	assert.False(t, IsQuitKey(tcell.KeyEnter, 0))
}

func TestPageFor(t *testing.T) {
	assert.Equal(t, PageMenu, PageFor(game.StateMenu))
	assert.Equal(t, PageField, PageFor(game.StateInGame))
	assert.Equal(t, PageField, PageFor(game.StatePaused))
	assert.Equal(t, PageGameOver, PageFor(game.StateGameOver))
}

func TestTUIDeliverAndClose(t *testing.T) {
	var sent []interface{}
	ui := NewTUI(func(msg interface{}) { sent = append(sent, msg) })
	assert.NotEmpty(t, ui.ID())

	assert.NoError(t, ui.Deliver(testSnapshot()))
	assert.NoError(t, ui.Close())
	assert.NoError(t, ui.Close())
	assert.Error(t, ui.Deliver(testSnapshot()))
	assert.Empty(t, sent)
}

func TestTUIDeliverAfterStopDoesNotQueue(t *testing.T) {
	ui := NewTUI(func(interface{}) {})
	ui.Stop()

	require.NoError(t, ui.Deliver(testSnapshot()))
	assert.False(t, ui.pending.Load(), "no redraw queued without an event loop")

	ui.mu.Lock()
	defer ui.mu.Unlock()
	assert.Equal(t, testSnapshot().Tick, ui.snap.Tick, "latest snapshot is still kept")
}
