package vehicle

import (
	"image"
	"math"

	"github.com/golangdaddy/gatedrive/pkg/silhouette"
	"gonum.org/v1/gonum/spatial/r2"
)

// Specs holds the static limits of a car
type Specs struct {
	Length            float64 // wheelbase, nominal only
	MaxAcceleration   float64
	MaxSteering       float64 // degrees
	MaxVelocity       float64 // not enforced by the model
	BrakeDeceleration float64
	FreeDeceleration  float64
	// YawRateMultiplier scales the heading integration. The stock tuning of 2
	// matches the handling the track was laid out for.
	YawRateMultiplier float64
}

// DefaultSpecs returns the stock tuning
func DefaultSpecs() Specs {
	return Specs{
		Length:            4,
		MaxAcceleration:   70,
		MaxSteering:       30,
		MaxVelocity:       20,
		BrakeDeceleration: 10,
		FreeDeceleration:  2,
		YawRateMultiplier: 2,
	}
}

var _ Vehicle = (*Car)(nil)

// Car is a kinematic vehicle. Velocity is expressed in the car's own frame,
// x pointing forward.
type Car struct {
	Specs

	position     r2.Vec
	velocity     r2.Vec
	heading      float64 // degrees, accumulates unbounded
	acceleration float64
	steering     float64

	sprite *silhouette.Sprite
	body   *silhouette.Silhouette
	rect   image.Rectangle
}

// NewCar creates a car at rest at (x, y) facing heading degrees. The sprite
// may be nil, in which case the car has no silhouette.
func NewCar(x, y, heading float64, specs Specs, sprite *silhouette.Sprite) *Car {
	car := &Car{
		Specs:    specs,
		position: r2.Vec{X: x, Y: y},
		heading:  heading,
		sprite:   sprite,
	}
	car.refresh()
	return car
}

func (car *Car) Position() r2.Vec { return car.position }

func (car *Car) Velocity() r2.Vec { return car.velocity }

func (car *Car) Heading() float64 { return car.heading }

func (car *Car) Acceleration() float64 { return car.acceleration }

func (car *Car) Steering() float64 { return car.steering }

// Speed is the forward speed
func (car *Car) Speed() float64 { return car.velocity.X }

func (car *Car) Silhouette() *silhouette.Silhouette { return car.body }

func (car *Car) Rect() image.Rectangle { return car.rect }

// SetControls stores the acceleration and steering used by the next Update.
// Callers clamp both values to the car's limits.
func (car *Car) SetControls(acceleration, steering float64) {
	car.acceleration = acceleration
	car.steering = steering
}

// SetVelocity overrides the car-frame velocity
func (car *Car) SetVelocity(v r2.Vec) {
	car.velocity = v
}

// Update advances the car by dt seconds
func (car *Car) Update(dt float64) {
	car.velocity.X += car.acceleration * dt

	// steering bites harder the faster the car goes
	angular := car.steering * 0.01 * dt * car.velocity.X

	// position moves along the heading from before this step
	world := r2.Rotate(car.velocity, radians(-car.heading), r2.Vec{})
	car.position = r2.Add(car.position, r2.Scale(dt, world))

	car.heading += car.YawRateMultiplier * degrees(angular) * dt

	car.refresh()
}

// refresh rebuilds the silhouette and bounding rect for the current pose
func (car *Car) refresh() {
	if car.sprite == nil {
		car.body = nil
		car.rect = image.Rectangle{}
		return
	}
	car.body = car.sprite.At(car.heading)
	car.rect = car.body.RectAt(car.position.X, car.position.Y)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
