// File: game/ball.go
package game

import (
	"math"
	"math/rand"

	"github.com/lguibr/duopong/utils"
)

// Ball keeps its direction as a unit vector and its speed as a separate
// scalar, so reflections only flip a component of Direction.
type Ball struct {
	Position  utils.Vector2 `json:"position"`
	Direction utils.Vector2 `json:"direction"`
	Speed     float64       `json:"speed"`
	Radius    float64       `json:"radius"`
	Margin    float64       `json:"margin"` // Added to the radius for the collision box side
}

// NewBall creates a resting ball at the field centre with the base speed.
func NewBall(cfg utils.Config) *Ball {
	return &Ball{
		Speed:  cfg.BallBaseSpeed,
		Radius: cfg.BallRadius,
		Margin: cfg.CollisionMargin,
	}
}

// Integrate moves the ball along its direction. Speed is never touched here.
func (b *Ball) Integrate(dt float64) {
	b.Position = b.Position.Add(b.Direction.Scale(b.Speed * dt))
}

// HalfExtent is half the side of the collision box. The paddle, power-up and
// goal tests all use it.
func (b *Ball) HalfExtent() float64 {
	return (b.Radius + b.Margin) / 2
}

func (b *Ball) Bounds() AABB {
	h := b.HalfExtent()
	return NewAABB(b.Position, utils.Vec(h, h))
}

func (b *Ball) Velocity() utils.Vector2 {
	return b.Direction.Scale(b.Speed)
}

// AddSpeed changes the speed by delta, capped by max when max > 0 and floored by min.
func (b *Ball) AddSpeed(delta, min, max float64) {
	speed := b.Speed + delta
	if max > 0 && speed > max {
		speed = max
	}
	b.Speed = math.Max(speed, min)
}

// Recenter puts the ball back in the middle at rest with the given speed.
func (b *Ball) Recenter(speed float64) {
	b.Position = utils.Vector2{}
	b.Direction = utils.Vector2{}
	b.Speed = speed
}

// Serve launches the ball toward a side at a random angle within maxAngle of horizontal.
func (b *Ball) Serve(toward Side, maxAngle float64, rng *rand.Rand) {
	angle := 0.0
	if maxAngle > 0 {
		angle = utils.RandomBetween(rng, -maxAngle, maxAngle)
	}
	dir := utils.FromAngle(angle)
	if toward == SideLeft {
		dir.X = -dir.X
	}
	b.Direction = dir
}
