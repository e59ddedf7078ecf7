package session

import (
	"fmt"
	"image"
	"math"

	"github.com/golangdaddy/gatedrive/pkg/assets"
	"github.com/golangdaddy/gatedrive/pkg/config"
	"github.com/golangdaddy/gatedrive/pkg/silhouette"
	"github.com/golangdaddy/gatedrive/pkg/track"
	"github.com/golangdaddy/gatedrive/pkg/vehicle"
	"github.com/rs/zerolog"
)

// Frame reports what happened during one Step
type Frame struct {
	Colliding  bool // car silhouette touches the track boundary
	GateHit    bool // the active gate was passed and the next one is now active
	ActiveGate int
}

// Session owns all mutable state of one drive. It has no rendering
// dependencies, so it can be stepped headless.
type Session struct {
	log zerolog.Logger

	car       *vehicle.Car
	boundary  *silhouette.Silhouette
	trackRect image.Rectangle
	gates     *track.Sequencer

	colliding bool
	frames    uint64
}

// New builds a session from the configuration and the loaded sprites
func New(cfg *config.Config, sprites *assets.Sprites, log zerolog.Logger) (*Session, error) {
	table, err := cfg.Track.Table()
	if err != nil {
		return nil, fmt.Errorf("failed to load gate table: %w", err)
	}

	threshold := cfg.Collision.Threshold
	gateSprite := silhouette.NewSprite(sprites.Gate, threshold)
	gates, err := track.NewSequencer(table, gateSprite)
	if err != nil {
		return nil, fmt.Errorf("failed to create gate sequence: %w", err)
	}

	boundary := silhouette.NewSprite(sprites.Track, threshold).At(0)
	car := vehicle.NewCar(
		cfg.Vehicle.StartX,
		cfg.Vehicle.StartY,
		cfg.Vehicle.Heading,
		cfg.Vehicle.Specs(),
		silhouette.NewSprite(sprites.Car, threshold),
	)

	log.Info().
		Int("gates", gates.Len()).
		Float64("x", cfg.Vehicle.StartX).
		Float64("y", cfg.Vehicle.StartY).
		Float64("heading", cfg.Vehicle.Heading).
		Msg("session ready")

	return &Session{
		log:       log,
		car:       car,
		boundary:  boundary,
		trackRect: boundary.Mask.Bounds(),
		gates:     gates,
	}, nil
}

// Car returns the player's car
func (s *Session) Car() *vehicle.Car {
	return s.car
}

// Gate returns the active gate
func (s *Session) Gate() *track.Gate {
	return s.gates.Gate()
}

// Gates returns the number of gates in a lap
func (s *Session) Gates() int {
	return s.gates.Len()
}

// Colliding reports whether the car touched the boundary in the last Step
func (s *Session) Colliding() bool {
	return s.colliding
}

// Step advances the session by dt seconds using the held keys
func (s *Session) Step(keys vehicle.KeyState, dt float64) Frame {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	s.frames++

	s.car.ApplyControls(keys, dt)
	s.car.Update(dt)

	body, rect := s.car.Silhouette(), s.car.Rect()

	colliding := false
	if body != nil {
		colliding = silhouette.Overlaps(body.Mask, rect, s.boundary.Mask, s.trackRect)
	}
	if colliding != s.colliding {
		s.log.Debug().
			Bool("colliding", colliding).
			Uint64("frame", s.frames).
			Float64("x", s.car.Position().X).
			Float64("y", s.car.Position().Y).
			Msg("boundary contact changed")
	}
	s.colliding = colliding

	hit := s.gates.Check(body, rect)
	if hit {
		s.log.Info().
			Int("next", s.gates.Active()).
			Uint64("frame", s.frames).
			Msg("gate passed")
	}

	return Frame{
		Colliding:  colliding,
		GateHit:    hit,
		ActiveGate: s.gates.Active(),
	}
}
