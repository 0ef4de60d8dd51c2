// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configurable game parameters.
type Config struct {
	// Timing
	TickPeriod    time.Duration `json:"tickPeriod" yaml:"tickPeriod"`       // Fixed simulation step
	GoalCooldown  time.Duration `json:"goalCooldown" yaml:"goalCooldown"`   // Ball stays frozen this long after a goal
	KeyHoldWindow time.Duration `json:"keyHoldWindow" yaml:"keyHoldWindow"` // How long a pressed (edge) intent is held

	// Field
	ScreenWidth  float64 `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight float64 `json:"screenHeight" yaml:"screenHeight"`

	// Paddle Properties
	PaddleHalfWidth  float64 `json:"paddleHalfWidth" yaml:"paddleHalfWidth"`
	PaddleHalfHeight float64 `json:"paddleHalfHeight" yaml:"paddleHalfHeight"`
	PaddleInset      float64 `json:"paddleInset" yaml:"paddleInset"` // Distance from the side edge to the paddle centre
	PaddleSpeed      float64 `json:"paddleSpeed" yaml:"paddleSpeed"` // Base move rate in units per second

	// Ball Physics & Properties
	BallBaseSpeed           float64 `json:"ballBaseSpeed" yaml:"ballBaseSpeed"`
	BallRadius              float64 `json:"ballRadius" yaml:"ballRadius"`
	CollisionMargin         float64 `json:"collisionMargin" yaml:"collisionMargin"`                 // Added to the radius to get the ball box side
	CollisionSpeedIncrement float64 `json:"collisionSpeedIncrement" yaml:"collisionSpeedIncrement"` // Speed added per reflected axis
	MinBallSpeed            float64 `json:"minBallSpeed" yaml:"minBallSpeed"`                       // Floor applied after a slowdown
	MaxBallSpeed            float64 `json:"maxBallSpeed" yaml:"maxBallSpeed"`                       // 0 disables the cap
	ServeAngle              float64 `json:"serveAngle" yaml:"serveAngle"`                           // Max vertical serve angle in radians

	// Power-ups
	PowerUpSpawnInterval     time.Duration `json:"powerUpSpawnInterval" yaml:"powerUpSpawnInterval"`
	PowerUpSpeedupDelta      float64       `json:"powerUpSpeedupDelta" yaml:"powerUpSpeedupDelta"`
	PowerUpSlowdownDelta     float64       `json:"powerUpSlowdownDelta" yaml:"powerUpSlowdownDelta"`
	SlowdownPaddleMultiplier float64       `json:"slowdownPaddleMultiplier" yaml:"slowdownPaddleMultiplier"`
	PowerUpSize              float64       `json:"powerUpSize" yaml:"powerUpSize"`
	PowerUpSpawnRegion       float64       `json:"powerUpSpawnRegion" yaml:"powerUpSpawnRegion"` // Fraction of the half field used for spawning
	MaxPowerUps              int           `json:"maxPowerUps" yaml:"maxPowerUps"`               // 0 means unlimited

	// Match rules
	WinningScore int `json:"winningScore" yaml:"winningScore"`
	MaxRounds    int `json:"maxRounds" yaml:"maxRounds"` // Reported only, never ends a match

	// Runtime
	Seed     int64  `json:"seed" yaml:"seed"` // 0 derives a seed at startup
	LogLevel string `json:"logLevel" yaml:"logLevel"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	screenWidth := 800.0
	screenHeight := 600.0

	return Config{
		// Timing
		TickPeriod:    time.Second / 60,
		GoalCooldown:  1 * time.Second,
		KeyHoldWindow: 150 * time.Millisecond,

		// Field
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,

		// Paddle Properties
		PaddleHalfWidth:  5,
		PaddleHalfHeight: 50,
		PaddleInset:      30,
		PaddleSpeed:      400,

		// Ball Physics & Properties
		BallBaseSpeed:           300,
		BallRadius:              10,
		CollisionMargin:         0,
		CollisionSpeedIncrement: 100,
		MinBallSpeed:            100,
		MaxBallSpeed:            1500,
		ServeAngle:              math.Pi / 6,

		// Power-ups
		PowerUpSpawnInterval:     5 * time.Second,
		PowerUpSpeedupDelta:      100,
		PowerUpSlowdownDelta:     100,
		SlowdownPaddleMultiplier: 0.5,
		PowerUpSize:              30,
		PowerUpSpawnRegion:       0.6,
		MaxPowerUps:              4,

		// Match rules
		WinningScore: 5,
		MaxRounds:    3,

		Seed:     0,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.ScreenWidth > 0, "screenWidth must be positive, got %v", c.ScreenWidth)
	check(c.ScreenHeight > 0, "screenHeight must be positive, got %v", c.ScreenHeight)
	check(c.PaddleHalfWidth > 0, "paddleHalfWidth must be positive, got %v", c.PaddleHalfWidth)
	check(c.PaddleHalfHeight > 0, "paddleHalfHeight must be positive, got %v", c.PaddleHalfHeight)
	check(c.PaddleHalfHeight*2 < c.ScreenHeight, "paddle (%v tall) does not fit the field (%v)", c.PaddleHalfHeight*2, c.ScreenHeight)
	check(c.PaddleInset > c.PaddleHalfWidth && c.PaddleInset < c.ScreenWidth/2, "paddleInset %v must lie inside the half field", c.PaddleInset)
	check(c.PaddleSpeed > 0, "paddleSpeed must be positive, got %v", c.PaddleSpeed)
	check(c.BallBaseSpeed > 0, "ballBaseSpeed must be positive, got %v", c.BallBaseSpeed)
	check(c.BallRadius > 0, "ballRadius must be positive, got %v", c.BallRadius)
	check(c.BallRadius*2 < c.ScreenHeight && c.BallRadius*2 < c.ScreenWidth, "ballRadius %v does not fit the field", c.BallRadius)
	check(c.CollisionMargin >= 0, "collisionMargin must not be negative, got %v", c.CollisionMargin)
	check(c.CollisionSpeedIncrement >= 0, "collisionSpeedIncrement must not be negative, got %v", c.CollisionSpeedIncrement)
	check(c.MinBallSpeed > 0, "minBallSpeed must be positive, got %v", c.MinBallSpeed)
	check(c.MinBallSpeed <= c.BallBaseSpeed, "minBallSpeed %v is above ballBaseSpeed %v", c.MinBallSpeed, c.BallBaseSpeed)
	check(c.MaxBallSpeed == 0 || c.MaxBallSpeed >= c.BallBaseSpeed, "maxBallSpeed %v is below ballBaseSpeed %v", c.MaxBallSpeed, c.BallBaseSpeed)
	check(c.ServeAngle >= 0 && c.ServeAngle < math.Pi/2, "serveAngle must be in [0, pi/2), got %v", c.ServeAngle)
	check(c.TickPeriod > 0, "tickPeriod must be positive, got %v", c.TickPeriod)
	check(c.GoalCooldown >= 0, "goalCooldown must not be negative, got %v", c.GoalCooldown)
	check(c.KeyHoldWindow > 0, "keyHoldWindow must be positive, got %v", c.KeyHoldWindow)
	check(c.PowerUpSpawnInterval > 0, "powerUpSpawnInterval must be positive, got %v", c.PowerUpSpawnInterval)
	check(c.PowerUpSpeedupDelta >= 0, "powerUpSpeedupDelta must not be negative, got %v", c.PowerUpSpeedupDelta)
	check(c.PowerUpSlowdownDelta >= 0, "powerUpSlowdownDelta must not be negative, got %v", c.PowerUpSlowdownDelta)
	check(c.SlowdownPaddleMultiplier > 0 && c.SlowdownPaddleMultiplier <= 1, "slowdownPaddleMultiplier must be in (0, 1], got %v", c.SlowdownPaddleMultiplier)
	check(c.PowerUpSize > 0, "powerUpSize must be positive, got %v", c.PowerUpSize)
	check(c.PowerUpSpawnRegion > 0 && c.PowerUpSpawnRegion <= 1, "powerUpSpawnRegion must be in (0, 1], got %v", c.PowerUpSpawnRegion)
	check(c.MaxPowerUps >= 0, "maxPowerUps must not be negative, got %v", c.MaxPowerUps)
	check(c.WinningScore > 0, "winningScore must be positive, got %v", c.WinningScore)
	check(c.MaxRounds >= 0, "maxRounds must not be negative, got %v", c.MaxRounds)
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
	}

	return errors.Join(errs...)
}
