// File: game/collision_test.go
package game

import (
	"testing"

	"github.com/lguibr/duopong/utils"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	paddle := NewAABB(utils.Vec(0, 0), utils.Vec(5, 50))
	testCases := []struct {
		name     string
		center   utils.Vector2
		expected CollisionSide
	}{
		{"left face", utils.Vec(-8, 0), CollisionLeft},
		{"right face", utils.Vec(8, 10), CollisionRight},
		{"top face", utils.Vec(0, 53), CollisionTop},
		{"bottom face", utils.Vec(0, -53), CollisionBottom},
		{"apart", utils.Vec(20, 0), CollisionNone},
		{"touching only", utils.Vec(10, 0), CollisionNone},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ball := NewAABB(tc.center, utils.Vec(5, 5))
			assert.Equal(t, tc.expected, Classify(ball, paddle))
		})
	}
}

func TestReflectIsSignGated(t *testing.T) {
	testCases := []struct {
		side      CollisionSide
		dir       utils.Vector2
		expected  utils.Vector2
		reflected int
	}{
		{CollisionLeft, utils.Vec(1, 0), utils.Vec(-1, 0), 1},
		{CollisionLeft, utils.Vec(-1, 0), utils.Vec(-1, 0), 0},
		{CollisionRight, utils.Vec(-1, 0), utils.Vec(1, 0), 1},
		{CollisionRight, utils.Vec(1, 0), utils.Vec(1, 0), 0},
		{CollisionTop, utils.Vec(0, -1), utils.Vec(0, 1), 1},
		{CollisionTop, utils.Vec(0, 1), utils.Vec(0, 1), 0},
		{CollisionBottom, utils.Vec(0, 1), utils.Vec(0, -1), 1},
		{CollisionBottom, utils.Vec(0, -1), utils.Vec(0, -1), 0},
	}
	for _, tc := range testCases {
		t.Run(tc.side.String(), func(t *testing.T) {
			dir, n := Reflect(tc.dir, tc.side)
			assert.Equal(t, tc.expected, dir)
			assert.Equal(t, tc.reflected, n)
		})
	}
}

func TestResolvePaddleCollisionRightFace(t *testing.T) {
	cfg := utils.DefaultConfig()
	paddle := NewPaddle(SideLeft, cfg)

	t.Run("moving toward the face reflects and speeds up", func(t *testing.T) {
		ball := &Ball{Position: utils.Vec(-362, 0), Direction: utils.Vec(-1, 0), Speed: 300, Radius: 10}
		side, n := ResolvePaddleCollision(ball, paddle, cfg.CollisionSpeedIncrement, cfg.MaxBallSpeed)
		assert.Equal(t, CollisionRight, side)
		assert.Equal(t, 1, n)
		assert.Equal(t, 1.0, ball.Direction.X)
		assert.Equal(t, 400.0, ball.Speed)
	})

	t.Run("moving away is left alone", func(t *testing.T) {
		ball := &Ball{Position: utils.Vec(-362, 0), Direction: utils.Vec(1, 0), Speed: 300, Radius: 10}
		side, n := ResolvePaddleCollision(ball, paddle, cfg.CollisionSpeedIncrement, cfg.MaxBallSpeed)
		assert.Equal(t, CollisionRight, side)
		assert.Equal(t, 0, n)
		assert.Equal(t, 1.0, ball.Direction.X)
		assert.Equal(t, 300.0, ball.Speed)
	})

	t.Run("increment respects the speed cap", func(t *testing.T) {
		ball := &Ball{Position: utils.Vec(-362, 0), Direction: utils.Vec(-1, 0), Speed: 1450, Radius: 10}
		ResolvePaddleCollision(ball, paddle, cfg.CollisionSpeedIncrement, cfg.MaxBallSpeed)
		assert.Equal(t, 1500.0, ball.Speed)
	})
}

func TestBothPaddlesOverlappingApplyIndependently(t *testing.T) {
	sim := startedSimulation(t, nil)
	w := sim.World()
	// Left paddle lies flat under the ball, right paddle stands just right of it.
	w.Paddles[SideLeft] = &Paddle{Side: SideLeft, Position: utils.Vec(0, -8), HalfWidth: 20, HalfHeight: 5, SpeedMultiplier: 1}
	w.Paddles[SideRight] = &Paddle{Side: SideRight, Position: utils.Vec(8, 0), HalfWidth: 5, HalfHeight: 50, SpeedMultiplier: 1}
	placeBall(sim, utils.Vec(0, 0), utils.Vec(1, -1).Normalize(), 300)

	sim.events = nil
	err := sim.resolveCollisions(1.0 / 60)
	assert.NoError(t, err)

	assert.Less(t, w.Ball.Direction.X, 0.0, "right paddle reflected x")
	assert.Greater(t, w.Ball.Direction.Y, 0.0, "left paddle reflected y")
	assert.Equal(t, 500.0, w.Ball.Speed)
	assert.Len(t, eventsOfKind(sim.events, EventPaddleHit), 2)
}

func TestContactTracker(t *testing.T) {
	tracker := NewContactTracker()
	left := ContactKey{Ball: 0, Paddle: SideLeft}
	right := ContactKey{Ball: 0, Paddle: SideRight}
	other := ContactKey{Ball: 1, Paddle: SideLeft}

	assert.True(t, tracker.Begin(left))
	assert.False(t, tracker.Begin(left), "ongoing contact is not new")
	assert.True(t, tracker.Begin(right), "contacts are tracked per paddle")
	assert.True(t, tracker.Begin(other), "contacts are tracked per ball")

	tracker.End(left)
	assert.True(t, tracker.Begin(left), "a contact can start again after it ended")
	assert.False(t, tracker.Begin(right), "ending one contact keeps the others")

	tracker.Clear()
	assert.True(t, tracker.Begin(right))
	assert.True(t, tracker.Begin(other))
}

func TestPaddleHitReportedOncePerContact(t *testing.T) {
	sim := startedSimulation(t, nil)
	// Ball resting inside the left paddle's right face.
	placeBall(sim, utils.Vec(-362, 0), utils.Vec(0, 0), 300)

	sim.events = nil
	assert.NoError(t, sim.resolveCollisions(0))
	assert.NoError(t, sim.resolveCollisions(0))
	assert.Len(t, eventsOfKind(sim.events, EventPaddleHit), 1)

	placeBall(sim, utils.Vec(0, 0), utils.Vec(0, 0), 300)
	assert.NoError(t, sim.resolveCollisions(0))
	placeBall(sim, utils.Vec(-362, 0), utils.Vec(0, 0), 300)
	assert.NoError(t, sim.resolveCollisions(0))
	assert.Len(t, eventsOfKind(sim.events, EventPaddleHit), 2)
}
