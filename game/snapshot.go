// File: game/snapshot.go
package game

import "github.com/lguibr/duopong/utils"

// PaddleView is the renderable part of a paddle.
type PaddleView struct {
	Side            Side          `json:"side" msgpack:"side"`
	Position        utils.Vector2 `json:"position" msgpack:"position"`
	Width           float64       `json:"width" msgpack:"width"`
	Height          float64       `json:"height" msgpack:"height"`
	SpeedMultiplier float64       `json:"speedMultiplier" msgpack:"speedMultiplier"`
	Color           string        `json:"color" msgpack:"color"`
}

type BallView struct {
	Position  utils.Vector2 `json:"position" msgpack:"position"`
	Direction utils.Vector2 `json:"direction" msgpack:"direction"`
	Speed     float64       `json:"speed" msgpack:"speed"`
	Velocity  utils.Vector2 `json:"velocity" msgpack:"velocity"`
	Radius    float64       `json:"radius" msgpack:"radius"`
	Color     string        `json:"color" msgpack:"color"`
}

type PowerUpView struct {
	ID       string        `json:"id" msgpack:"id"`
	Type     PowerUpType   `json:"type" msgpack:"type"`
	Position utils.Vector2 `json:"position" msgpack:"position"`
	Size     float64       `json:"size" msgpack:"size"`
	Color    string        `json:"color" msgpack:"color"`
}

type FieldView struct {
	Width  float64 `json:"width" msgpack:"width"`
	Height float64 `json:"height" msgpack:"height"`
}

// Snapshot is a value copy of everything a presentation layer draws.
type Snapshot struct {
	Tick            uint64        `json:"tick" msgpack:"tick"`
	State           State         `json:"state" msgpack:"state"`
	Ball            *BallView     `json:"ball,omitempty" msgpack:"ball,omitempty"`
	Paddles         []PaddleView  `json:"paddles" msgpack:"paddles"`
	PowerUps        []PowerUpView `json:"powerUps" msgpack:"powerUps"`
	ScoreLeft       int           `json:"scoreLeft" msgpack:"scoreLeft"`
	ScoreRight      int           `json:"scoreRight" msgpack:"scoreRight"`
	ScoreText       string        `json:"scoreText" msgpack:"scoreText"`
	GameOverText    string        `json:"gameOverText" msgpack:"gameOverText"`
	Round           int           `json:"round" msgpack:"round"`
	MaxRounds       int           `json:"maxRounds" msgpack:"maxRounds"`
	WinningScore    int           `json:"winningScore" msgpack:"winningScore"`
	Winner          string        `json:"winner,omitempty" msgpack:"winner,omitempty"`
	Frozen          bool          `json:"frozen" msgpack:"frozen"`
	FreezeRemaining float64       `json:"freezeRemaining" msgpack:"freezeRemaining"`
	NextPowerUpIn   float64       `json:"nextPowerUpIn" msgpack:"nextPowerUpIn"`
	Quit            bool          `json:"quit" msgpack:"quit"`
	Field           FieldView     `json:"field" msgpack:"field"`
	Events          []Event       `json:"events,omitempty" msgpack:"events,omitempty"`
}

// Snapshot copies the current state. events are attached as-is.
func (s *Simulation) Snapshot(events []Event) Snapshot {
	w := s.world
	snap := Snapshot{
		Tick:            s.tick,
		State:           s.machine.State(),
		Paddles:         make([]PaddleView, 0, len(w.Paddles)),
		PowerUps:        make([]PowerUpView, 0, len(w.PowerUps)),
		ScoreLeft:       w.Score.Left,
		ScoreRight:      w.Score.Right,
		ScoreText:       w.Score.Text(),
		Round:           w.Round,
		MaxRounds:       w.Config.MaxRounds,
		WinningScore:    w.Config.WinningScore,
		Frozen:          s.roundEnd.Frozen(),
		FreezeRemaining: s.roundEnd.Remaining(),
		NextPowerUpIn:   s.spawner.NextSpawnIn(),
		Quit:            s.machine.QuitRequested(),
		Field:           FieldView{Width: w.Config.ScreenWidth, Height: w.Config.ScreenHeight},
		Events:          append([]Event(nil), events...),
	}
	if w.Winner != nil {
		snap.Winner = w.Winner.String()
		if snap.State == StateGameOver {
			snap.GameOverText = GameOverText(*w.Winner)
		}
	}
	if b := w.Ball; b != nil {
		snap.Ball = &BallView{
			Position:  b.Position,
			Direction: b.Direction,
			Speed:     b.Speed,
			Velocity:  b.Velocity(),
			Radius:    b.Radius,
			Color:     ColorBall,
		}
	}
	for _, p := range w.Paddles {
		if p == nil {
			continue
		}
		snap.Paddles = append(snap.Paddles, PaddleView{
			Side:            p.Side,
			Position:        p.Position,
			Width:           p.HalfWidth * 2,
			Height:          p.HalfHeight * 2,
			SpeedMultiplier: p.SpeedMultiplier,
			Color:           ColorPaddle,
		})
	}
	for _, pu := range w.PowerUps {
		snap.PowerUps = append(snap.PowerUps, PowerUpView{
			ID:       pu.ID,
			Type:     pu.Type,
			Position: pu.Position,
			Size:     pu.Size,
			Color:    pu.Type.Color(),
		})
	}
	return snap
}

// Paddle returns the view of one side, if present.
func (s Snapshot) Paddle(side Side) (PaddleView, bool) {
	for _, p := range s.Paddles {
		if p.Side == side {
			return p, true
		}
	}
	return PaddleView{}, false
}
