// File: game/boundary.go
package game

import "github.com/lguibr/duopong/utils"

// BounceWalls reflects the ball off the top and bottom walls and clamps it
// back to the wall. The reflection forces the sign, so a ball already heading
// back into the field is only clamped. It reports whether the ball was outside.
func BounceWalls(b *Ball, fieldHeight float64) bool {
	yMax := fieldHeight/2 - b.Radius
	switch {
	case b.Position.Y > yMax:
		b.Direction.Y = -utils.Abs(b.Direction.Y)
		b.Position.Y = yMax
		return true
	case b.Position.Y < -yMax:
		b.Direction.Y = utils.Abs(b.Direction.Y)
		b.Position.Y = -yMax
		return true
	}
	return false
}

// DetectGoal tests the ball's leading edge against the goal lines. Crossing
// the right line scores for Left, crossing the left line scores for Right.
func DetectGoal(b *Ball, fieldWidth float64) (Side, bool) {
	xMax := fieldWidth/2 - b.Radius
	h := b.HalfExtent()
	switch {
	case b.Position.X+h > xMax:
		return SideLeft, true
	case b.Position.X-h < -xMax:
		return SideRight, true
	}
	return SideLeft, false
}
