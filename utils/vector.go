// File: utils/vector.go
package utils

import "math"

// Vector2 is a position or direction in field space (origin at the centre, y up).
type Vector2 struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// Vec builds a Vector2.
func Vec(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

func (v Vector2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector pointing along v. The zero vector has no
// direction and is returned unchanged.
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vector2{v.X / length, v.Y / length}
}

// IsUnit reports whether v has length 1 within tolerance.
func (v Vector2) IsUnit(tolerance float64) bool {
	return math.Abs(v.Length()-1) <= tolerance
}

// FromAngle returns the unit vector at the given angle (radians, counter-clockwise from +x).
func FromAngle(angle float64) Vector2 {
	return Vector2{math.Cos(angle), math.Sin(angle)}
}
