// File: game/scoreboard.go
package game

import (
	"fmt"
	"math/rand"
)

// ScoreBoard counts goals per side. Scores only grow within a match.
type ScoreBoard struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Add credits one goal and returns the new score of that side.
func (s *ScoreBoard) Add(side Side) int {
	if side == SideLeft {
		s.Left++
		return s.Left
	}
	s.Right++
	return s.Right
}

func (s ScoreBoard) Get(side Side) int {
	if side == SideLeft {
		return s.Left
	}
	return s.Right
}

func (s *ScoreBoard) Reset() { *s = ScoreBoard{} }

// Text renders the score as "{left} : {right}".
func (s ScoreBoard) Text() string {
	return fmt.Sprintf("%d : %d", s.Left, s.Right)
}

// Leader returns the first side whose score reached target.
func (s ScoreBoard) Leader(target int) (Side, bool) {
	for _, side := range Sides {
		if s.Get(side) >= target {
			return side, true
		}
	}
	return SideLeft, false
}

// GameOverText renders the banner shown once a side has won.
func GameOverText(winner Side) string {
	return fmt.Sprintf("%s player won!", winner)
}

// RoundEndHandler recentres the ball after a goal and keeps it frozen for a
// cooldown counted down in simulation time. The ball is then served toward
// the side that conceded.
type RoundEndHandler struct {
	cooldown  float64
	remaining float64
	frozen    bool
	serveTo   Side
}

func NewRoundEndHandler(cooldown float64) *RoundEndHandler {
	return &RoundEndHandler{cooldown: cooldown}
}

func (h *RoundEndHandler) Frozen() bool { return h.frozen }

// Remaining is the cooldown left, zero when the ball is live.
func (h *RoundEndHandler) Remaining() float64 {
	if !h.frozen {
		return 0
	}
	return h.remaining
}

func (h *RoundEndHandler) Reset() {
	h.frozen = false
	h.remaining = 0
}

// HandleGoal credits the scorer, advances the round and freezes the ball at
// the centre with its base speed.
func (h *RoundEndHandler) HandleGoal(w *World, scorer Side) []Event {
	w.Score.Add(scorer)
	w.Round++
	if w.Ball != nil {
		w.Ball.Recenter(w.Config.BallBaseSpeed)
	}
	h.frozen = true
	h.remaining = h.cooldown
	h.serveTo = scorer.Opponent()

	events := []Event{{Kind: EventGoal, Side: scorer}}
	if h.remaining <= 0 {
		events = append(events, h.serve(w))
	}
	return events
}

// Advance counts the cooldown down and serves once it runs out.
func (h *RoundEndHandler) Advance(w *World, dt float64) []Event {
	if !h.frozen {
		return nil
	}
	h.remaining -= dt
	if h.remaining > timerEpsilon {
		return nil
	}
	return []Event{h.serve(w)}
}

func (h *RoundEndHandler) serve(w *World) Event {
	h.frozen = false
	h.remaining = 0
	if w.Ball != nil {
		w.Ball.Serve(h.serveTo, w.Config.ServeAngle, w.rng)
	}
	return Event{Kind: EventServe, Side: h.serveTo}
}

// ServeFirst launches the ball at match start toward a random side.
func (h *RoundEndHandler) ServeFirst(w *World, rng *rand.Rand) Event {
	h.serveTo = Sides[rng.Intn(len(Sides))]
	return h.serve(w)
}
