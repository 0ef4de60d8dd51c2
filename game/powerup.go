// File: game/powerup.go
package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/lguibr/duopong/utils"
)

// timerEpsilon absorbs float drift when many small steps add up to a period.
const timerEpsilon = 1e-9

type PowerUp struct {
	ID       string        `json:"id"`
	Type     PowerUpType   `json:"type"`
	Position utils.Vector2 `json:"position"`
	Size     float64       `json:"size"`
}

func (p PowerUp) Bounds() AABB {
	return NewAABB(p.Position, utils.Vec(p.Size/2, p.Size/2))
}

// Timer is a repeating countdown advanced by simulation time.
type Timer struct {
	Period  float64
	elapsed float64
}

func NewTimer(period float64) Timer {
	return Timer{Period: period}
}

// Tick advances the timer and returns how many periods were crossed.
func (t *Timer) Tick(dt float64) int {
	if t.Period <= 0 {
		return 0
	}
	t.elapsed += dt
	fired := 0
	for t.elapsed+timerEpsilon >= t.Period {
		t.elapsed -= t.Period
		fired++
	}
	if t.elapsed < 0 {
		t.elapsed = 0
	}
	return fired
}

func (t *Timer) Reset() { t.elapsed = 0 }

// Remaining is the time left until the next fire.
func (t *Timer) Remaining() float64 { return t.Period - t.elapsed }

// PowerUpSpawner periodically resets paddle multipliers and drops a random power-up.
// Effects therefore last until the next spawn, not for a fixed time after pickup.
type PowerUpSpawner struct {
	timer  Timer
	region utils.Vector2 // Half extents of the spawn area
	size   float64
	max    int
}

func NewPowerUpSpawner(cfg utils.Config) *PowerUpSpawner {
	return &PowerUpSpawner{
		timer: NewTimer(cfg.PowerUpSpawnInterval.Seconds()),
		region: utils.Vec(
			cfg.ScreenWidth/2*cfg.PowerUpSpawnRegion,
			cfg.ScreenHeight/2*cfg.PowerUpSpawnRegion,
		),
		size: cfg.PowerUpSize,
		max:  cfg.MaxPowerUps,
	}
}

func (s *PowerUpSpawner) Reset() { s.timer.Reset() }

// NextSpawnIn reports the simulation time until the next spawn.
func (s *PowerUpSpawner) NextSpawnIn() float64 { return s.timer.Remaining() }

// Tick advances the timer and spawns once per period crossed.
func (s *PowerUpSpawner) Tick(w *World, dt float64) ([]Event, error) {
	var events []Event
	for i := s.timer.Tick(dt); i > 0; i-- {
		for _, p := range w.Paddles {
			if p != nil {
				p.SpeedMultiplier = 1
			}
		}
		pu, err := s.Spawn(w.rng)
		if err != nil {
			return events, err
		}
		if s.max > 0 && len(w.PowerUps) >= s.max {
			w.PowerUps = w.PowerUps[1:]
		}
		w.PowerUps = append(w.PowerUps, pu)
		events = append(events, Event{Kind: EventPowerUpSpawned, PowerUpID: pu.ID, PowerUpType: pu.Type})
	}
	return events, nil
}

// Spawn draws a type and a position from rng.
func (s *PowerUpSpawner) Spawn(rng *rand.Rand) (PowerUp, error) {
	if rng == nil {
		return PowerUp{}, utils.ErrNoRandomSource
	}
	kind := PowerUpTypes[rng.Intn(len(PowerUpTypes))]
	pos := utils.Vec(
		utils.RandomBetween(rng, -s.region.X, s.region.X),
		utils.RandomBetween(rng, -s.region.Y, s.region.Y),
	)
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return PowerUp{}, fmt.Errorf("power-up id: %w", err)
	}
	return PowerUp{ID: id.String(), Type: kind, Position: pos, Size: s.size}, nil
}

// ResolvePowerUps applies and removes every power-up the ball overlaps.
func ResolvePowerUps(w *World) []Event {
	if w.Ball == nil || len(w.PowerUps) == 0 {
		return nil
	}
	cfg := w.Config
	ballBox := w.Ball.Bounds()

	var events []Event
	live := w.PowerUps[:0]
	for _, pu := range w.PowerUps {
		if !ballBox.Intersects(pu.Bounds()) {
			live = append(live, pu)
			continue
		}
		switch pu.Type {
		case PowerUpSpeedup:
			w.Ball.AddSpeed(cfg.PowerUpSpeedupDelta, cfg.MinBallSpeed, cfg.MaxBallSpeed)
		case PowerUpSlowdown:
			w.Ball.AddSpeed(-cfg.PowerUpSlowdownDelta, cfg.MinBallSpeed, cfg.MaxBallSpeed)
			for _, p := range w.Paddles {
				if p != nil {
					p.SpeedMultiplier = cfg.SlowdownPaddleMultiplier
				}
			}
		}
		events = append(events, Event{Kind: EventPowerUpCollected, PowerUpID: pu.ID, PowerUpType: pu.Type})
	}
	w.PowerUps = live
	return events
}
