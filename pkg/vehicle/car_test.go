package vehicle

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/golangdaddy/gatedrive/pkg/silhouette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

const frame = 1.0 / 60

func carSprite() *silhouette.Sprite {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	return silhouette.NewSprite(img, silhouette.DefaultThreshold)
}

func TestNewCar_AtRest(t *testing.T) {
	car := NewCar(850, 700, 180, DefaultSpecs(), carSprite())

	assert.Equal(t, r2.Vec{X: 850, Y: 700}, car.Position())
	assert.Equal(t, r2.Vec{}, car.Velocity())
	assert.Equal(t, 180.0, car.Heading())
	require.NotNil(t, car.Silhouette())
	assert.Equal(t, image.Rect(830, 690, 870, 710), car.Rect())
}

func TestNewCar_WithoutSprite(t *testing.T) {
	car := NewCar(0, 0, 0, DefaultSpecs(), nil)
	car.SetControls(10, 0)
	car.Update(frame)

	assert.Nil(t, car.Silhouette())
	assert.Equal(t, image.Rectangle{}, car.Rect())
}

func TestUpdate_AccelerationIntegratesForwardVelocity(t *testing.T) {
	car := NewCar(0, 0, 0, DefaultSpecs(), nil)
	car.SetControls(6, 0)

	car.Update(0.5)

	assert.InDelta(t, 3.0, car.Velocity().X, 1e-12)
	assert.Equal(t, 0.0, car.Velocity().Y)
	assert.Equal(t, 6.0, car.Acceleration(), "the model never changes acceleration")
}

func TestUpdate_MovesAlongPreviousHeading(t *testing.T) {
	car := NewCar(850, 700, 180, DefaultSpecs(), nil)
	car.SetVelocity(r2.Vec{X: 10})
	car.SetControls(0, 30)

	car.Update(0.5)

	// facing 180° the car drives toward -x even though the heading changes this step
	assert.InDelta(t, 845.0, car.Position().X, 1e-9)
	assert.InDelta(t, 700.0, car.Position().Y, 1e-9)
	assert.NotEqual(t, 180.0, car.Heading())
}

func TestUpdate_Heading90MovesUpScreen(t *testing.T) {
	car := NewCar(100, 100, 90, DefaultSpecs(), nil)
	car.SetVelocity(r2.Vec{X: 10})

	car.Update(1)

	assert.InDelta(t, 100.0, car.Position().X, 1e-9)
	assert.InDelta(t, 90.0, car.Position().Y, 1e-9)
}

func TestUpdate_YawRateMultiplier(t *testing.T) {
	single := DefaultSpecs()
	single.YawRateMultiplier = 1

	doubled := NewCar(0, 0, 0, DefaultSpecs(), nil)
	once := NewCar(0, 0, 0, single, nil)
	for _, car := range []*Car{doubled, once} {
		car.SetVelocity(r2.Vec{X: 10})
		car.SetControls(0, 10)
		car.Update(0.1)
	}

	// angular = 10 * 0.01 * 0.1 * 10 = 0.1 rad
	perIntegration := 0.1 * 180 / math.Pi * 0.1
	assert.InDelta(t, 2*perIntegration, doubled.Heading(), 1e-9)
	assert.InDelta(t, perIntegration, once.Heading(), 1e-9)
}

func TestUpdate_ZeroDtIsNoop(t *testing.T) {
	car := NewCar(10, 20, 45, DefaultSpecs(), carSprite())
	car.SetVelocity(r2.Vec{X: 3})
	car.SetControls(50, 20)

	car.Update(0)

	assert.Equal(t, r2.Vec{X: 10, Y: 20}, car.Position())
	assert.Equal(t, 3.0, car.Velocity().X)
	assert.Equal(t, 45.0, car.Heading())
}

func TestUpdate_SilhouetteFollowsHeading(t *testing.T) {
	car := NewCar(200, 200, 0, DefaultSpecs(), carSprite())
	before := car.Silhouette()
	w, h := before.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 20, h)

	car.SetVelocity(r2.Vec{X: 20})
	car.SetControls(0, 30)
	for i := 0; i < 30; i++ {
		car.Update(frame)
	}

	after := car.Silhouette()
	assert.NotSame(t, before, after)
	assert.Equal(t, silhouette.CenteredRect(car.Position().X, car.Position().Y, after.Mask.Width(), after.Mask.Height()), car.Rect())
}

func TestScenario_AccelerateFromRest(t *testing.T) {
	car := NewCar(850, 700, 180, DefaultSpecs(), nil)
	keys := KeyState{Accelerate: true}

	prev := car.Speed()
	elapsed := 0.0
	for i := 0; i < 60; i++ {
		car.ApplyControls(keys, frame)
		car.Update(frame)
		elapsed += frame

		require.Greater(t, car.Speed(), prev, "step %d", i)
		require.LessOrEqual(t, car.Speed(), car.MaxAcceleration*elapsed+1e-9, "step %d", i)
		prev = car.Speed()
	}
}

func TestScenario_BrakeWhileMovingForward(t *testing.T) {
	car := NewCar(0, 0, 0, DefaultSpecs(), nil)
	car.SetVelocity(r2.Vec{X: 5})
	car.SetControls(3, 0)
	keys := KeyState{Brake: true}

	assert.Equal(t, -car.BrakeDeceleration*BrakeSnap, car.throttle(keys, frame))

	car.ApplyControls(keys, frame)
	assert.Equal(t, -car.MaxAcceleration, car.Acceleration())
}

func TestBrake_FromRestDecays(t *testing.T) {
	car := NewCar(0, 0, 0, DefaultSpecs(), nil)
	car.SetControls(1, 0)

	car.ApplyControls(KeyState{Brake: true}, 0.5)

	assert.InDelta(t, 0.25, car.Acceleration(), 1e-12)
}

func TestScenario_HandbrakeExactStop(t *testing.T) {
	car := NewCar(0, 0, 0, DefaultSpecs(), nil)
	dt := 0.0625
	car.SetVelocity(r2.Vec{X: 0.5})
	require.LessOrEqual(t, math.Abs(car.Speed()), dt*car.BrakeDeceleration)

	car.ApplyControls(KeyState{Handbrake: true}, dt)
	car.Update(dt)

	assert.Equal(t, 0.0, car.Speed())
}

func TestHandbrake_AboveThresholdOpposesMotion(t *testing.T) {
	car := NewCar(0, 0, 0, DefaultSpecs(), nil)

	car.SetVelocity(r2.Vec{X: 8})
	car.ApplyControls(KeyState{Handbrake: true}, frame)
	assert.Equal(t, -car.BrakeDeceleration, car.Acceleration())

	car.SetVelocity(r2.Vec{X: -8})
	car.ApplyControls(KeyState{Handbrake: true}, frame)
	assert.Equal(t, car.BrakeDeceleration, car.Acceleration())
}

func TestHandbrake_ZeroDtAtRest(t *testing.T) {
	car := NewCar(0, 0, 0, DefaultSpecs(), nil)
	car.SetControls(2, 0)

	car.ApplyControls(KeyState{Handbrake: true}, 0)

	assert.Equal(t, 2.0, car.Acceleration())
	assert.False(t, math.IsNaN(car.Acceleration()))
}

func TestCoast(t *testing.T) {
	car := NewCar(0, 0, 0, DefaultSpecs(), nil)

	car.SetVelocity(r2.Vec{X: 5})
	assert.Equal(t, -car.FreeDeceleration*CoastSnap, car.throttle(KeyState{}, frame))

	car.SetVelocity(r2.Vec{X: -5})
	assert.Equal(t, car.FreeDeceleration*CoastSnap, car.throttle(KeyState{}, frame))

	car.SetVelocity(r2.Vec{X: 0.01})
	assert.InDelta(t, -0.6, car.throttle(KeyState{}, frame), 1e-9)
}

func TestCoast_ZeroDt(t *testing.T) {
	car := NewCar(0, 0, 0, DefaultSpecs(), nil)
	car.SetControls(4, 0)

	car.ApplyControls(KeyState{}, 0)

	assert.Equal(t, 4.0, car.Acceleration())
}

func TestSteering(t *testing.T) {
	car := NewCar(0, 0, 0, DefaultSpecs(), nil)

	car.ApplyControls(KeyState{Left: true}, 0.1)
	assert.InDelta(t, 3.0, car.Steering(), 1e-12)

	car.ApplyControls(KeyState{Right: true}, 0.1)
	assert.InDelta(t, 0.0, car.Steering(), 1e-12)

	car.ApplyControls(KeyState{Left: true, Right: true}, 0.1)
	assert.InDelta(t, -3.0, car.Steering(), 1e-12, "right wins when both are held")

	car.ApplyControls(KeyState{}, 0.1)
	assert.Equal(t, 0.0, car.Steering(), "steering recentres immediately")

	for i := 0; i < 100; i++ {
		car.ApplyControls(KeyState{Left: true}, 0.1)
	}
	assert.Equal(t, car.MaxSteering, car.Steering())
}

func TestControls_StayWithinLimits(t *testing.T) {
	velocities := []float64{-30, -5, -0.01, 0, 0.01, 5, 30}
	steps := []float64{0, frame, 0.25, 2}

	for combo := 0; combo < 32; combo++ {
		keys := KeyState{
			Accelerate: combo&1 != 0,
			Brake:      combo&2 != 0,
			Handbrake:  combo&4 != 0,
			Left:       combo&8 != 0,
			Right:      combo&16 != 0,
		}
		for _, vx := range velocities {
			for _, dt := range steps {
				car := NewCar(0, 0, 0, DefaultSpecs(), nil)
				car.SetVelocity(r2.Vec{X: vx})
				for i := 0; i < 5; i++ {
					car.ApplyControls(keys, dt)
					require.LessOrEqual(t, math.Abs(car.Acceleration()), car.MaxAcceleration, "keys=%+v vx=%v dt=%v", keys, vx, dt)
					require.LessOrEqual(t, math.Abs(car.Steering()), car.MaxSteering, "keys=%+v vx=%v dt=%v", keys, vx, dt)
					require.False(t, math.IsNaN(car.Acceleration()))
					car.Update(dt)
				}
			}
		}
	}
}
