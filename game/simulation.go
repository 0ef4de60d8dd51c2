// File: game/simulation.go
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/lguibr/duopong/utils"
)

var (
	// ErrBallMissing means a ball system ran while InGame without a ball.
	ErrBallMissing = errors.New("ball missing")
	// ErrPaddleMissing means a paddle system ran while InGame without a paddle on a side.
	ErrPaddleMissing = errors.New("paddle missing")
)

// ballContactID is the contact tracker id of the single ball.
const ballContactID = 0

// World is the mutable state the systems operate on. Paddles are indexed by
// side, the ball is optional and power-ups are kept in spawn order.
type World struct {
	Config   utils.Config
	Paddles  [2]*Paddle
	Ball     *Ball
	PowerUps []PowerUp
	Score    ScoreBoard
	Round    int
	Winner   *Side
	rng      *rand.Rand
}

func (w *World) Paddle(side Side) (*Paddle, error) {
	if !side.Valid() || w.Paddles[side] == nil {
		return nil, fmt.Errorf("%w: %s", ErrPaddleMissing, side)
	}
	return w.Paddles[side], nil
}

func (w *World) RequireBall() (*Ball, error) {
	if w.Ball == nil {
		return nil, ErrBallMissing
	}
	return w.Ball, nil
}

// system is one stage of the fixed per-tick order.
type system struct {
	name string
	run  func(s *Simulation, dt float64) error
}

// systems run in this order on every InGame tick.
var systems = []system{
	{"paddles", (*Simulation).movePaddles},
	{"ball", (*Simulation).integrateBall},
	{"collisions", (*Simulation).resolveCollisions},
	{"boundaries", (*Simulation).checkBoundaries},
	{"round-end", (*Simulation).endRound},
	{"power-up-spawner", (*Simulation).spawnPowerUps},
	{"power-up-effects", (*Simulation).resolvePowerUps},
	{"win-check", (*Simulation).checkWinner},
}

// Simulation is the deterministic game core. It is not safe for concurrent
// use; the game actor is its only owner.
type Simulation struct {
	world    *World
	machine  *StateMachine
	input    *InputState
	spawner  *PowerUpSpawner
	roundEnd *RoundEndHandler
	contacts *ContactTracker
	logger   *slog.Logger

	tick        uint64
	events      []Event
	pendingGoal *Side
}

// NewSimulation validates the config and builds a simulation in the Menu state.
func NewSimulation(cfg utils.Config, rng *rand.Rand, logger *slog.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, utils.ErrNoRandomSource
	}
	if logger == nil {
		logger = utils.NewLogger("simulation")
	}
	return &Simulation{
		world:    &World{Config: cfg, rng: rng},
		machine:  NewStateMachine(),
		input:    NewInputState(cfg.KeyHoldWindow.Seconds()),
		spawner:  NewPowerUpSpawner(cfg),
		roundEnd: NewRoundEndHandler(cfg.GoalCooldown.Seconds()),
		contacts: NewContactTracker(),
		logger:   logger,
	}, nil
}

func (s *Simulation) World() *World            { return s.world }
func (s *Simulation) State() State             { return s.machine.State() }
func (s *Simulation) Config() utils.Config     { return s.world.Config }
func (s *Simulation) QuitRequested() bool      { return s.machine.QuitRequested() }
func (s *Simulation) Tick() uint64             { return s.tick }
func (s *Simulation) Frozen() bool             { return s.roundEnd.Frozen() }
func (s *Simulation) Input() *InputState       { return s.input }
func (s *Simulation) Spawner() *PowerUpSpawner { return s.spawner }

// Step advances the match by dt seconds and returns the events it produced.
// Outside InGame it does nothing.
func (s *Simulation) Step(dt float64) []Event {
	if s.machine.State() != StateInGame || dt <= 0 {
		return nil
	}
	s.tick++
	s.events = nil
	s.pendingGoal = nil

	for _, sys := range systems {
		if s.machine.State() != StateInGame {
			break
		}
		if err := sys.run(s, dt); err != nil {
			s.logger.Warn("system skipped", "system", sys.name, "tick", s.tick, "error", err)
		}
	}

	events := s.events
	s.events = nil
	return events
}

func (s *Simulation) emit(events ...Event) {
	s.events = append(s.events, events...)
}

func (s *Simulation) movePaddles(dt float64) error {
	var errs []error
	for _, side := range Sides {
		paddle, err := s.world.Paddle(side)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		paddle.Move(s.input.Intent(side), s.world.Config, dt)
	}
	s.input.Advance(dt)
	return errors.Join(errs...)
}

func (s *Simulation) integrateBall(dt float64) error {
	ball, err := s.world.RequireBall()
	if err != nil {
		return err
	}
	if s.roundEnd.Frozen() {
		s.emit(s.roundEnd.Advance(s.world, dt)...)
		return nil
	}
	// Each sub-step moves less than the ball/paddle overlap width. The
	// collision system handles the final position.
	steps := ballSubSteps(ball, s.world.Config, dt)
	for i := 0; i < steps; i++ {
		ball.Integrate(dt / float64(steps))
		if i < steps-1 {
			// Missing paddles are reported by the collision system.
			_ = s.collidePaddles(ball)
		}
	}
	return nil
}

// ballSubSteps is the number of integration steps needed so that one step
// moves the ball at most a quarter of the width over which it overlaps a
// paddle. The first overlapping sample then always lies on the near face.
func ballSubSteps(b *Ball, cfg utils.Config, dt float64) int {
	maxStep := (b.HalfExtent() + cfg.PaddleHalfWidth) / 2
	travel := b.Speed * dt
	if maxStep <= 0 || travel <= maxStep {
		return 1
	}
	return int(math.Ceil(travel / maxStep))
}

// ballLive is false while the ball is frozen, when the ball systems are skipped.
func (s *Simulation) ballLive() (*Ball, bool, error) {
	ball, err := s.world.RequireBall()
	if err != nil {
		return nil, false, err
	}
	return ball, !s.roundEnd.Frozen(), nil
}

func (s *Simulation) resolveCollisions(dt float64) error {
	ball, live, err := s.ballLive()
	if err != nil || !live {
		return err
	}
	return s.collidePaddles(ball)
}

// collidePaddles resolves the ball against both paddles and reports each new
// contact once.
func (s *Simulation) collidePaddles(ball *Ball) error {
	cfg := s.world.Config
	var errs []error
	for _, side := range Sides {
		paddle, err := s.world.Paddle(side)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		key := ContactKey{Ball: ballContactID, Paddle: side}
		hit, _ := ResolvePaddleCollision(ball, paddle, cfg.CollisionSpeedIncrement, cfg.MaxBallSpeed)
		if hit == CollisionNone {
			s.contacts.End(key)
			continue
		}
		if s.contacts.Begin(key) {
			s.emit(Event{Kind: EventPaddleHit, Side: side})
		}
	}
	return errors.Join(errs...)
}

func (s *Simulation) checkBoundaries(dt float64) error {
	ball, live, err := s.ballLive()
	if err != nil || !live {
		return err
	}
	if BounceWalls(ball, s.world.Config.ScreenHeight) {
		s.emit(Event{Kind: EventWallBounce})
	}
	if scorer, scored := DetectGoal(ball, s.world.Config.ScreenWidth); scored {
		s.pendingGoal = &scorer
	}
	return nil
}

func (s *Simulation) endRound(dt float64) error {
	if s.pendingGoal == nil {
		return nil
	}
	scorer := *s.pendingGoal
	s.pendingGoal = nil
	s.contacts.Clear()
	s.emit(s.roundEnd.HandleGoal(s.world, scorer)...)
	s.logger.Debug("goal", "scorer", scorer, "score", s.world.Score.Text(), "round", s.world.Round)
	return nil
}

func (s *Simulation) spawnPowerUps(dt float64) error {
	events, err := s.spawner.Tick(s.world, dt)
	s.emit(events...)
	return err
}

func (s *Simulation) resolvePowerUps(dt float64) error {
	_, live, err := s.ballLive()
	if err != nil || !live {
		return err
	}
	s.emit(ResolvePowerUps(s.world)...)
	return nil
}

func (s *Simulation) checkWinner(dt float64) error {
	winner, won := s.world.Score.Leader(s.world.Config.WinningScore)
	if !won {
		return nil
	}
	change, err := s.machine.Transition(StateGameOver)
	if err != nil {
		return err
	}
	s.world.Winner = &winner
	s.emit(Event{Kind: EventMatchOver, Side: winner}, change)
	s.logger.Info("match over", "winner", winner, "score", s.world.Score.Text())
	return nil
}

// --- Commands ---

// Play starts a new match from the Menu.
func (s *Simulation) Play() ([]Event, error) {
	change, err := s.machine.Transition(StateInGame)
	if err != nil {
		return nil, err
	}
	events := []Event{change, s.startMatch()}
	s.logger.Info("match started", "winningScore", s.world.Config.WinningScore)
	return events, nil
}

// TogglePause suspends or resumes a match.
func (s *Simulation) TogglePause() ([]Event, error) {
	change, err := s.machine.TogglePause()
	if err != nil {
		return nil, err
	}
	return []Event{change}, nil
}

// Reset returns from GameOver to the Menu and clears the field.
func (s *Simulation) Reset() ([]Event, error) {
	change, err := s.machine.Transition(StateMenu)
	if err != nil {
		return nil, err
	}
	s.clearField()
	return []Event{change}, nil
}

// Quit marks the simulation as finished. It is accepted from every state.
func (s *Simulation) Quit() {
	s.machine.Quit()
}

// SetIntent reports a held direction for a side.
func (s *Simulation) SetIntent(side Side, dir Direction) { s.input.Set(side, dir) }

// PressIntent reports a key press for a side, held for the key hold window.
func (s *Simulation) PressIntent(side Side, dir Direction) { s.input.Press(side, dir) }

func (s *Simulation) startMatch() Event {
	cfg := s.world.Config
	s.world.Score.Reset()
	s.world.Round = 1
	s.world.Winner = nil
	s.world.PowerUps = nil
	s.world.Paddles = [2]*Paddle{NewPaddle(SideLeft, cfg), NewPaddle(SideRight, cfg)}
	s.world.Ball = NewBall(cfg)
	s.spawner.Reset()
	s.roundEnd.Reset()
	s.contacts.Clear()
	s.input.Clear()
	return s.roundEnd.ServeFirst(s.world, s.world.rng)
}

func (s *Simulation) clearField() {
	s.world.Paddles = [2]*Paddle{}
	s.world.Ball = nil
	s.world.PowerUps = nil
	s.world.Winner = nil
	s.world.Score.Reset()
	s.world.Round = 0
	s.roundEnd.Reset()
	s.contacts.Clear()
	s.input.Clear()
}
