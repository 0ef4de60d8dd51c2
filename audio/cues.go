// File: audio/cues.go
package audio

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a short tone played for an event.
type Cue struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // 0..1
}

var cues = map[game.EventKind]Cue{
	game.EventPaddleHit:        {Freq: 440, Duration: 40 * time.Millisecond, Volume: 0.3},
	game.EventWallBounce:       {Freq: 220, Duration: 30 * time.Millisecond, Volume: 0.2},
	game.EventGoal:             {Freq: 150, Duration: 250 * time.Millisecond, Volume: 0.4},
	game.EventPowerUpCollected: {Freq: 880, Duration: 80 * time.Millisecond, Volume: 0.3},
	game.EventMatchOver:        {Freq: 660, Duration: 400 * time.Millisecond, Volume: 0.4},
}

// CueFor returns the tone for an event kind. Kinds without a tone return false.
func CueFor(kind game.EventKind) (Cue, bool) {
	c, ok := cues[kind]
	return c, ok
}

// CuePlayer is a SnapshotSink that plays a tone for each event in a snapshot.
type CuePlayer struct {
	id     string
	mu     sync.Mutex
	mixer  *beep.Mixer
	play   func(beep.Streamer)
	muted  bool
	closed bool
	logger *slog.Logger
}

// NewCuePlayer opens the speaker unless muted. A speaker that fails to open
// leaves the player muted; the game runs without sound.
func NewCuePlayer(muted bool) *CuePlayer {
	p := &CuePlayer{
		id:     "audio-" + uuid.NewString(),
		mixer:  &beep.Mixer{},
		muted:  muted,
		logger: utils.NewLogger("audio"),
	}
	if muted {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("speaker unavailable, audio muted", "error", err)
		p.muted = true
		return p
	}
	speaker.Play(p.mixer)
	p.play = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	return p
}

func (p *CuePlayer) ID() string { return p.id }

// Muted reports whether cues are dropped.
func (p *CuePlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *CuePlayer) Deliver(snapshot game.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return fmt.Errorf("cue player %s closed", p.id)
	}
	if p.muted || p.play == nil {
		return nil
	}
	for _, ev := range snapshot.Events {
		if cue, ok := CueFor(ev.Kind); ok {
			p.play(Tone(cue, sampleRate))
		}
	}
	return nil
}

func (p *CuePlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if p.play != nil {
		speaker.Clear()
		p.play = nil
	}
	return nil
}

// Tone renders a cue as a sine wave with a linear fade out.
func Tone(cue Cue, rate beep.SampleRate) beep.Streamer {
	return beep.Take(rate.N(cue.Duration), &sine{freq: cue.Freq, volume: cue.Volume, rate: rate, total: rate.N(cue.Duration)})
}

type sine struct {
	freq   float64
	volume float64
	rate   beep.SampleRate
	phase  float64
	pos    int
	total  int
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		fade := 1.0
		if s.total > 0 {
			fade = 1 - float64(s.pos)/float64(s.total)
		}
		v := s.volume * fade * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }
