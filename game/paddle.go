// File: game/paddle.go
package game

import (
	"github.com/lguibr/duopong/utils"
)

type Paddle struct {
	Side            Side          `json:"side"`
	Position        utils.Vector2 `json:"position"` // x is fixed for the whole match
	HalfWidth       float64       `json:"halfWidth"`
	HalfHeight      float64       `json:"halfHeight"`
	SpeedMultiplier float64       `json:"speedMultiplier"`
}

// NewPaddle places a paddle vertically centred, PaddleInset away from its own edge.
func NewPaddle(side Side, cfg utils.Config) *Paddle {
	x := cfg.ScreenWidth/2 - cfg.PaddleInset
	if side == SideLeft {
		x = -x
	}
	return &Paddle{
		Side:            side,
		Position:        utils.Vec(x, 0),
		HalfWidth:       cfg.PaddleHalfWidth,
		HalfHeight:      cfg.PaddleHalfHeight,
		SpeedMultiplier: 1,
	}
}

// PaddleYLimit is the largest centre y that keeps the paddle inside the field.
func PaddleYLimit(fieldHeight, halfHeight float64) float64 {
	return fieldHeight/2 - halfHeight
}

// MovePaddle applies one tick of intent to a y coordinate and clamps it to [-yMax, yMax].
func MovePaddle(y float64, dir Direction, rate, multiplier, dt, yMax float64) float64 {
	return utils.Clamp(y+float64(dir)*rate*multiplier*dt, -yMax, yMax)
}

// Move advances the paddle by one tick of intent.
func (p *Paddle) Move(dir Direction, cfg utils.Config, dt float64) {
	yMax := PaddleYLimit(cfg.ScreenHeight, p.HalfHeight)
	p.Position.Y = MovePaddle(p.Position.Y, dir, cfg.PaddleSpeed, p.SpeedMultiplier, dt, yMax)
}

func (p *Paddle) Bounds() AABB {
	return NewAABB(p.Position, utils.Vec(p.HalfWidth, p.HalfHeight))
}
