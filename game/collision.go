// File: game/collision.go
package game

import (
	"math"

	"github.com/lguibr/duopong/utils"
)

// AABB is an axis aligned box given by its corners.
type AABB struct {
	Min utils.Vector2
	Max utils.Vector2
}

func NewAABB(center, half utils.Vector2) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

func (a AABB) Center() utils.Vector2 {
	return a.Min.Add(a.Max).Scale(0.5)
}

// Intersects is strict: boxes that only touch do not overlap.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X && a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y
}

// CollisionSide names the face of the target box that was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionLeft
	CollisionRight
	CollisionTop
	CollisionBottom
)

func (c CollisionSide) String() string {
	return [...]string{"None", "Left", "Right", "Top", "Bottom"}[c]
}

// Classify returns the face of target penetrated by body, using the axis of
// least overlap. Ties go to the horizontal axis.
func Classify(body, target AABB) CollisionSide {
	if !body.Intersects(target) {
		return CollisionNone
	}
	overlapX := math.Min(body.Max.X-target.Min.X, target.Max.X-body.Min.X)
	overlapY := math.Min(body.Max.Y-target.Min.Y, target.Max.Y-body.Min.Y)

	bc, tc := body.Center(), target.Center()
	if overlapX <= overlapY {
		if bc.X < tc.X {
			return CollisionLeft
		}
		return CollisionRight
	}
	if bc.Y > tc.Y {
		return CollisionTop
	}
	return CollisionBottom
}

// Reflect flips the direction component facing into the hit face. It only
// flips when the direction points into the target on that axis, and reports
// how many axes were reflected.
func Reflect(dir utils.Vector2, side CollisionSide) (utils.Vector2, int) {
	switch side {
	case CollisionLeft:
		if dir.X > 0 {
			dir.X = -dir.X
			return dir, 1
		}
	case CollisionRight:
		if dir.X < 0 {
			dir.X = -dir.X
			return dir, 1
		}
	case CollisionTop:
		if dir.Y < 0 {
			dir.Y = -dir.Y
			return dir, 1
		}
	case CollisionBottom:
		if dir.Y > 0 {
			dir.Y = -dir.Y
			return dir, 1
		}
	}
	return dir, 0
}

// ResolvePaddleCollision tests the ball against one paddle and applies the
// reflection. Each reflected axis adds increment to the speed, capped by
// maxSpeed when positive.
func ResolvePaddleCollision(b *Ball, p *Paddle, increment, maxSpeed float64) (CollisionSide, int) {
	side := Classify(b.Bounds(), p.Bounds())
	if side == CollisionNone {
		return side, 0
	}
	dir, reflected := Reflect(b.Direction, side)
	b.Direction = dir
	if reflected > 0 {
		b.AddSpeed(float64(reflected)*increment, 0, maxSpeed)
	}
	return side, reflected
}
