// File: game/boundary_test.go
package game

import (
	"testing"

	"github.com/lguibr/duopong/utils"
	"github.com/stretchr/testify/assert"
)

func TestBounceWalls(t *testing.T) {
	testCases := []struct {
		name        string
		pos         utils.Vector2
		dir         utils.Vector2
		expectedPos utils.Vector2
		expectedDir utils.Vector2
		bounced     bool
	}{
		{"above top moving up", utils.Vec(0, 291), utils.Vec(0, 1), utils.Vec(0, 290), utils.Vec(0, -1), true},
		{"above top already moving down", utils.Vec(0, 291), utils.Vec(0, -1), utils.Vec(0, 290), utils.Vec(0, -1), true},
		{"below bottom", utils.Vec(10, -300), utils.Vec(0.6, -0.8), utils.Vec(10, -290), utils.Vec(0.6, 0.8), true},
		{"inside", utils.Vec(0, 100), utils.Vec(0, 1), utils.Vec(0, 100), utils.Vec(0, 1), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := &Ball{Position: tc.pos, Direction: tc.dir, Radius: 10}
			assert.Equal(t, tc.bounced, BounceWalls(b, 600))
			assert.Equal(t, tc.expectedPos, b.Position)
			assert.Equal(t, tc.expectedDir, b.Direction)
		})
	}
}

func TestDetectGoal(t *testing.T) {
	testCases := []struct {
		name   string
		x      float64
		scorer Side
		scored bool
	}{
		{"past right line", 395, SideLeft, true},
		{"leading edge over right line", 386, SideLeft, true},
		{"leading edge on right line", 385, SideLeft, false},
		{"past left line", -395, SideRight, true},
		{"centre", 0, SideLeft, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := &Ball{Position: utils.Vec(tc.x, 0), Radius: 10}
			scorer, scored := DetectGoal(b, 800)
			assert.Equal(t, tc.scored, scored)
			if tc.scored {
				assert.Equal(t, tc.scorer, scorer)
			}
		})
	}
}
