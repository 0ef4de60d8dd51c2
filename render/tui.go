// File: render/tui.go
package render

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
	"github.com/rivo/tview"
)

// Page names.
const (
	PageMenu     = "menu"
	PageField    = "field"
	PageGameOver = "gameover"
)

// PageFor returns the page that presents a state.
func PageFor(state game.State) string {
	switch state {
	case game.StateInGame, game.StatePaused:
		return PageField
	case game.StateGameOver:
		return PageGameOver
	}
	return PageMenu
}

// TUI is the terminal front end. It is a SnapshotSink: Deliver stores the
// snapshot and schedules a redraw on the tview event loop.
type TUI struct {
	id       string
	app      *tview.Application
	pages    *tview.Pages
	menu     *tview.List
	field    *tview.Box
	gameOver *tview.Modal
	dispatch Dispatcher

	mu      sync.Mutex
	snap    game.Snapshot
	page    string
	pending atomic.Bool
	stopped atomic.Bool // no event loop will drain queued updates
	closed  atomic.Bool
	logger  *slog.Logger
}

// NewTUI builds the pages. dispatch receives every command produced by keys
// and menu selections.
func NewTUI(dispatch Dispatcher) *TUI {
	t := &TUI{
		id:       "tui-" + uuid.NewString(),
		app:      tview.NewApplication(),
		pages:    tview.NewPages(),
		dispatch: dispatch,
		page:     PageMenu,
		logger:   utils.NewLogger("tui"),
	}

	t.menu = tview.NewList().ShowSecondaryText(false).
		AddItem("Play", "", 'p', func() { t.dispatch(game.PlayCommand{}) }).
		AddItem("Quit", "", 'q', func() { t.dispatch(game.QuitCommand{}) })
	t.menu.SetBorder(true).SetTitle(" duopong ")

	t.field = tview.NewBox()
	t.field.SetBorder(true)
	t.field.SetDrawFunc(t.drawField)

	t.gameOver = tview.NewModal().
		AddButtons([]string{"Menu", "Quit"}).
		SetDoneFunc(func(_ int, label string) {
			if label == "Quit" {
				t.dispatch(game.QuitCommand{})
				return
			}
			t.dispatch(game.ResetCommand{})
		})

	t.pages.
		AddPage(PageMenu, center(t.menu, 30, 6), true, true).
		AddPage(PageField, t.field, true, false).
		AddPage(PageGameOver, t.gameOver, true, false)

	t.app.SetRoot(t.pages, true).SetInputCapture(t.handleKey)
	return t
}

func center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

// Run blocks until the application stops.
func (t *TUI) Run() error {
	err := t.app.Run()
	t.stopped.Store(true)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Stop ends Run. Safe before Run and more than once.
func (t *TUI) Stop() {
	t.stopped.Store(true)
	t.app.Stop()
}

func (t *TUI) ID() string { return t.id }

func (t *TUI) Deliver(snapshot game.Snapshot) error {
	if t.closed.Load() {
		return fmt.Errorf("tui %s closed", t.id)
	}
	t.mu.Lock()
	t.snap = snapshot
	t.mu.Unlock()
	// QueueUpdateDraw waits for the event loop, so it never runs on the
	// broadcaster's goroutine. At most one redraw is in flight, and none is
	// queued once the loop has stopped.
	if t.stopped.Load() {
		return nil
	}
	if t.pending.CompareAndSwap(false, true) {
		go t.app.QueueUpdateDraw(t.apply)
	}
	return nil
}

func (t *TUI) Close() error {
	if t.closed.CompareAndSwap(false, true) {
		t.Stop()
	}
	return nil
}

// apply runs on the event loop.
func (t *TUI) apply() {
	t.pending.Store(false)
	if t.stopped.Load() {
		return
	}
	t.mu.Lock()
	snap := t.snap
	t.mu.Unlock()

	if snap.Quit {
		t.Stop()
		return
	}
	page := PageFor(snap.State)
	if page == PageGameOver {
		t.gameOver.SetText(snap.GameOverText + "\n" + snap.ScoreText)
	}
	if page != t.page {
		t.logger.Debug("switching page", "from", t.page, "to", page)
		t.page = page
		t.pages.SwitchToPage(page)
		if page == PageGameOver {
			t.app.SetFocus(t.gameOver)
		}
	}
}

func (t *TUI) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if IsQuitKey(ev.Key(), ev.Rune()) {
		t.dispatch(game.QuitCommand{})
		return nil
	}
	switch t.page {
	case PageField:
		if msg, ok := FieldKeyAction(ev.Key(), ev.Rune()); ok {
			t.dispatch(msg)
			return nil
		}
	case PageGameOver:
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R') {
			t.dispatch(game.ResetCommand{})
			return nil
		}
	}
	return ev
}

// drawField paints the score line, the scaled field and the status line.
func (t *TUI) drawField(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	t.mu.Lock()
	snap := t.snap
	t.mu.Unlock()

	innerX, innerY, innerW, innerH := x+1, y+1, width-2, height-2
	if innerW < 3 || innerH < 3 {
		return x, y, width, height
	}

	header := fmt.Sprintf("%s   round %d/%d", snap.ScoreText, snap.Round, snap.MaxRounds)
	tview.Print(screen, header, innerX, innerY, innerW, tview.AlignCenter, tcell.ColorWhite)

	frame := Rasterize(snap, innerW, innerH-2)
	for r, row := range frame.Cells {
		for c, cell := range row {
			style := tcell.StyleDefault
			if cell.Color != "" {
				style = style.Foreground(tcell.GetColor(cell.Color))
			}
			screen.SetContent(innerX+c, innerY+1+r, cell.Rune, nil, style)
		}
	}

	tview.Print(screen, StatusLine(snap), innerX, innerY+innerH-1, innerW, tview.AlignCenter, tcell.ColorYellow)
	return innerX, innerY, innerW, innerH
}
