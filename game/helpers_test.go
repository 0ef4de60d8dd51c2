package game

import (
	"testing"

	"github.com/lguibr/duopong/utils"
	"github.com/stretchr/testify/require"
)

// newTestSimulation builds a simulation with a fixed seed and a silent logger.
func newTestSimulation(t *testing.T, mutate func(cfg *utils.Config)) *Simulation {
	t.Helper()
	cfg := utils.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	sim, err := NewSimulation(cfg, utils.NewRandomSource(42), utils.DiscardLogger())
	require.NoError(t, err)
	return sim
}

// startedSimulation is newTestSimulation already moved to InGame.
func startedSimulation(t *testing.T, mutate func(cfg *utils.Config)) *Simulation {
	t.Helper()
	sim := newTestSimulation(t, mutate)
	_, err := sim.Play()
	require.NoError(t, err)
	return sim
}

// placeBall puts the ball somewhere with a given direction and speed.
func placeBall(sim *Simulation, pos, dir utils.Vector2, speed float64) {
	b := sim.World().Ball
	b.Position = pos
	b.Direction = dir
	b.Speed = speed
}

func eventsOfKind(events []Event, kind EventKind) []Event {
	var out []Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
