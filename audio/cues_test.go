package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCueFor(t *testing.T) {
	for _, kind := range []game.EventKind{
		game.EventPaddleHit, game.EventWallBounce, game.EventGoal,
		game.EventPowerUpCollected, game.EventMatchOver,
	} {
		cue, ok := CueFor(kind)
		assert.True(t, ok, "kind %s", kind)
		assert.Positive(t, cue.Freq)
		assert.True(t, cue.Duration > 0)
	}

	for _, kind := range []game.EventKind{game.EventStateChanged, game.EventServe, game.EventPowerUpSpawned} {
		_, ok := CueFor(kind)
		assert.False(t, ok, "kind %s", kind)
	}

	hit, _ := CueFor(game.EventPaddleHit)
	wall, _ := CueFor(game.EventWallBounce)
	assert.NotEqual(t, hit.Freq, wall.Freq)
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	cue := Cue{Freq: 440, Duration: 50 * time.Millisecond, Volume: 0.5}
	tone := Tone(cue, rate)

	total := 0
	buf := make([][2]float64, 64)
	for {
		n, ok := tone.Stream(buf)
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, buf[i][0], 0.5)
			assert.GreaterOrEqual(t, buf[i][0], -0.5)
			assert.Equal(t, buf[i][0], buf[i][1])
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	assert.Equal(t, rate.N(cue.Duration), total)
	assert.NoError(t, tone.Err())
}

func newRecordingPlayer() (*CuePlayer, *[]beep.Streamer) {
	var played []beep.Streamer
	p := &CuePlayer{
		id:     "test",
		mixer:  &beep.Mixer{},
		logger: utils.DiscardLogger(),
	}
	p.play = func(s beep.Streamer) { played = append(played, s) }
	return p, &played
}

func TestCuePlayerDeliver(t *testing.T) {
	p, played := newRecordingPlayer()

	snap := game.Snapshot{Events: []game.Event{
		{Kind: game.EventPaddleHit, Side: game.SideLeft},
		{Kind: game.EventServe},
		{Kind: game.EventGoal, Side: game.SideRight},
	}}
	require.NoError(t, p.Deliver(snap))
	assert.Len(t, *played, 2, "serve has no tone")

	require.NoError(t, p.Deliver(game.Snapshot{}))
	assert.Len(t, *played, 2)
}

func TestCuePlayerMuted(t *testing.T) {
	p := NewCuePlayer(true)
	assert.True(t, p.Muted())
	assert.NotEmpty(t, p.ID())

	require.NoError(t, p.Deliver(game.Snapshot{Events: []game.Event{{Kind: game.EventGoal}}}))
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Error(t, p.Deliver(game.Snapshot{}))
}

func TestCuePlayerClosedDropsCues(t *testing.T) {
	p, played := newRecordingPlayer()
	p.play = nil
	require.NoError(t, p.Close())
	assert.Error(t, p.Deliver(game.Snapshot{Events: []game.Event{{Kind: game.EventGoal}}}))
	assert.Empty(t, *played)
}
