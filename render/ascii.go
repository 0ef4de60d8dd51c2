// File: render/ascii.go
package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
)

// RenderASCII draws a snapshot as plain text: a header with the score and
// round, the bordered field and a status line. Returns "" when the grid has
// no room for the field.
func RenderASCII(snap game.Snapshot, cols, rows int) string {
	if cols < 3 || rows < 3 {
		return ""
	}
	frame := Rasterize(snap, cols, rows)

	var out strings.Builder
	out.Grow((cols + 3) * (rows + 4))
	fmt.Fprintf(&out, "%s   round %d/%d   first to %d\n", snap.ScoreText, snap.Round, snap.MaxRounds, snap.WinningScore)

	border := "+" + strings.Repeat("-", cols) + "+\n"
	out.WriteString(border)
	for _, row := range frame.Cells {
		out.WriteByte('|')
		for _, cell := range row {
			out.WriteRune(cell.Rune)
		}
		out.WriteString("|\n")
	}
	out.WriteString(border)
	out.WriteString(StatusLine(snap))
	out.WriteByte('\n')
	return out.String()
}

// ASCIIRunner prints frames to a writer. Deliver only keeps the latest
// snapshot; Run draws it at its own pace so a slow terminal never stalls the
// broadcaster.
type ASCIIRunner struct {
	id       string
	out      io.Writer
	cols     int
	rows     int
	interval time.Duration
	clear    func()

	mu      sync.Mutex
	latest  *game.Snapshot
	seq     uint64
	drawn   uint64
	closed  chan struct{}
	closeMu sync.Once
	logger  *slog.Logger
}

// NewASCIIRunner creates a runner printing cols x rows frames every interval.
func NewASCIIRunner(out io.Writer, cols, rows int, interval time.Duration) *ASCIIRunner {
	return &ASCIIRunner{
		id:       "ascii-" + uuid.NewString(),
		out:      out,
		cols:     cols,
		rows:     rows,
		interval: interval,
		clear:    helpers.ClearScreen,
		closed:   make(chan struct{}),
		logger:   utils.NewLogger("ascii"),
	}
}

// WithClear replaces the screen clearing function. nil disables clearing.
func (r *ASCIIRunner) WithClear(clear func()) *ASCIIRunner {
	r.clear = clear
	return r
}

func (r *ASCIIRunner) ID() string { return r.id }

func (r *ASCIIRunner) Deliver(snapshot game.Snapshot) error {
	select {
	case <-r.closed:
		return fmt.Errorf("ascii runner %s closed", r.id)
	default:
	}
	r.mu.Lock()
	r.latest = &snapshot
	r.seq++
	r.mu.Unlock()
	return nil
}

func (r *ASCIIRunner) Close() error {
	r.closeMu.Do(func() { close(r.closed) })
	return nil
}

// Draw prints the latest snapshot if it has not been printed yet. It reports
// whether a frame was written.
func (r *ASCIIRunner) Draw() (bool, error) {
	r.mu.Lock()
	snap := r.latest
	if snap == nil || r.seq == r.drawn {
		r.mu.Unlock()
		return false, nil
	}
	r.drawn = r.seq
	r.mu.Unlock()

	if r.clear != nil {
		r.clear()
	}
	if _, err := io.WriteString(r.out, RenderASCII(*snap, r.cols, r.rows)); err != nil {
		return false, fmt.Errorf("write frame: %w", err)
	}
	return true, nil
}

// Run draws frames until done is closed or the runner is closed.
func (r *ASCIIRunner) Run(done <-chan struct{}) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return nil
		case <-r.closed:
			return nil
		case <-ticker.C:
			if _, err := r.Draw(); err != nil {
				r.logger.Error("frame dropped", "error", err)
				return err
			}
		}
	}
}
