package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() game.Snapshot {
	return game.Snapshot{
		Tick:         7,
		State:        game.StateInGame,
		Ball:         &game.BallView{Position: utils.Vec(0, 0), Radius: 10, Color: game.ColorBall},
		ScoreLeft:    2,
		ScoreRight:   1,
		ScoreText:    "2 - 1",
		Round:        4,
		MaxRounds:    3,
		WinningScore: 5,
		Field:        game.FieldView{Width: 800, Height: 600},
		Paddles: []game.PaddleView{
			{Side: game.SideLeft, Position: utils.Vec(-370, 0), Width: 10, Height: 100, Color: game.ColorPaddle},
			{Side: game.SideRight, Position: utils.Vec(370, 0), Width: 10, Height: 100, Color: game.ColorPaddle},
		},
	}
}

func TestProject(t *testing.T) {
	field := game.FieldView{Width: 800, Height: 600}
	tests := []struct {
		name string
		pos  utils.Vector2
		col  int
		row  int
	}{
		{"centre", utils.Vec(0, 0), 40, 12},
		{"top left corner", utils.Vec(-400, 300), 0, 0},
		{"bottom right clamps", utils.Vec(400, -300), 79, 23},
		{"outside clamps", utils.Vec(-1000, 1000), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := Project(field, tt.pos, 80, 24)
			assert.Equal(t, tt.col, col)
			assert.Equal(t, tt.row, row)
		})
	}
}

func TestRasterize(t *testing.T) {
	frame := Rasterize(testSnapshot(), 80, 24)
	require.Len(t, frame.Cells, 24)
	require.Len(t, frame.Cells[0], 80)

	assert.Equal(t, GlyphBall, frame.Cells[12][40].Rune)
	assert.Equal(t, game.ColorBall, frame.Cells[12][40].Color)

	// Paddles are 100 units tall on a 600 unit field of 24 rows.
	leftCol, _ := Project(game.FieldView{Width: 800, Height: 600}, utils.Vec(-370, 0), 80, 24)
	paddleRows := 0
	for _, row := range frame.Cells {
		if row[leftCol].Rune == GlyphPaddle {
			paddleRows++
		}
	}
	assert.InDelta(t, 5, paddleRows, 1)

	assert.Equal(t, GlyphNet, frame.Cells[0][40].Rune, "net drawn on even rows")
}

func TestRasterizePowerUps(t *testing.T) {
	snap := testSnapshot()
	snap.Ball = nil
	snap.PowerUps = []game.PowerUpView{
		{ID: "a", Type: game.PowerUpSpeedup, Position: utils.Vec(-200, 100), Size: 30, Color: game.ColorSpeedup},
		{ID: "b", Type: game.PowerUpSlowdown, Position: utils.Vec(200, -100), Size: 30, Color: game.ColorSlowdown},
	}
	frame := Rasterize(snap, 80, 24)
	field := snap.Field

	c, r := Project(field, utils.Vec(-200, 100), 80, 24)
	assert.Equal(t, Cell{Rune: GlyphSpeedup, Color: game.ColorSpeedup}, frame.Cells[r][c])
	c, r = Project(field, utils.Vec(200, -100), 80, 24)
	assert.Equal(t, Cell{Rune: GlyphSlow, Color: game.ColorSlowdown}, frame.Cells[r][c])
}

func TestRasterizeDegenerate(t *testing.T) {
	assert.Nil(t, Rasterize(testSnapshot(), 0, 10).Cells)

	snap := testSnapshot()
	snap.Field = game.FieldView{}
	frame := Rasterize(snap, 10, 4)
	for _, row := range frame.Cells {
		for _, cell := range row {
			assert.Equal(t, GlyphEmpty, cell.Rune)
		}
	}
}

func TestRenderASCII(t *testing.T) {
	out := RenderASCII(testSnapshot(), 40, 12)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 1+1+12+1+1)

	assert.Contains(t, lines[0], "2 - 1")
	assert.Contains(t, lines[0], "round 4/3")
	assert.Equal(t, "+"+strings.Repeat("-", 40)+"+", lines[1])
	assert.Equal(t, lines[1], lines[14])
	for _, line := range lines[2:14] {
		assert.Len(t, line, 42)
		assert.True(t, strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|"))
	}
	assert.Contains(t, out, string(GlyphBall))
	assert.Empty(t, lines[15], "no status while playing without a spawn countdown")

	assert.Empty(t, RenderASCII(testSnapshot(), 2, 12))
}

func TestStatusLine(t *testing.T) {
	snap := testSnapshot()
	tests := []struct {
		name   string
		mutate func(*game.Snapshot)
		want   string
	}{
		{"menu", func(s *game.Snapshot) { s.State = game.StateMenu }, "press Enter to play"},
		{"paused", func(s *game.Snapshot) { s.State = game.StatePaused }, "PAUSED"},
		{"frozen", func(s *game.Snapshot) {
			s.Frozen = true
			s.FreezeRemaining = 0.42
			s.NextPowerUpIn = 3
		}, "serve in 0.5s"},
		{"spawn countdown", func(s *game.Snapshot) { s.NextPowerUpIn = 2.31 }, "power-up in 2.4s"},
		{"game over", func(s *game.Snapshot) {
			s.State = game.StateGameOver
			s.GameOverText = game.GameOverText(game.SideLeft)
		}, game.GameOverText(game.SideLeft)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := snap
			tt.mutate(&s)
			assert.Contains(t, StatusLine(s), tt.want)
		})
	}
}

func TestASCIIRunnerDraw(t *testing.T) {
	var buf bytes.Buffer
	clears := 0
	runner := NewASCIIRunner(&buf, 20, 6, time.Millisecond).WithClear(func() { clears++ })

	drawn, err := runner.Draw()
	require.NoError(t, err)
	assert.False(t, drawn, "nothing delivered yet")

	require.NoError(t, runner.Deliver(testSnapshot()))
	drawn, err = runner.Draw()
	require.NoError(t, err)
	assert.True(t, drawn)
	assert.Equal(t, 1, clears)
	assert.Contains(t, buf.String(), "2 - 1")

	drawn, err = runner.Draw()
	require.NoError(t, err)
	assert.False(t, drawn, "same snapshot is printed once")

	paused := testSnapshot()
	paused.State = game.StatePaused
	require.NoError(t, runner.Deliver(paused))
	drawn, err = runner.Draw()
	require.NoError(t, err)
	assert.True(t, drawn, "a state change at the same tick is printed")
	assert.Contains(t, buf.String(), "PAUSED")
}

func TestASCIIRunnerClose(t *testing.T) {
	runner := NewASCIIRunner(&bytes.Buffer{}, 20, 6, time.Millisecond).WithClear(nil)
	assert.NotEmpty(t, runner.ID())

	done := make(chan error, 1)
	go func() { done <- runner.Run(make(chan struct{})) }()

	require.NoError(t, runner.Close())
	require.NoError(t, runner.Close())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Close")
	}
	assert.Error(t, runner.Deliver(testSnapshot()))
}
