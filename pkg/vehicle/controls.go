package vehicle

import "math"

// KeyState is a snapshot of the driving keys held this frame
type KeyState struct {
	Accelerate bool // up
	Brake      bool // down
	Handbrake  bool // space
	Left       bool
	Right      bool
}

// Tuning of the keyboard policy
const (
	ThrottleRate = 100.0 // acceleration gained per second with the accelerator held
	ReverseRate  = 1.5   // acceleration lost per second braking from rest
	BrakeSnap    = 40.0  // multiplier on brake deceleration when braking forward
	CoastSnap    = 40.0  // multiplier on free deceleration when coasting
	SteeringRate = 30.0  // degrees of steering per second
)

// ApplyControls translates the held keys into clamped acceleration and
// steering for the next Update.
func (car *Car) ApplyControls(keys KeyState, dt float64) {
	acc := car.throttle(keys, dt)
	acc = clamp(acc, -car.MaxAcceleration, car.MaxAcceleration)

	steer := car.steer(keys, dt)
	steer = clamp(steer, -car.MaxSteering, car.MaxSteering)

	car.SetControls(acc, steer)
}

// throttle picks the first matching branch and returns the unclamped acceleration
func (car *Car) throttle(keys KeyState, dt float64) float64 {
	acc := car.acceleration
	vx := car.velocity.X

	switch {
	case keys.Accelerate:
		acc += ThrottleRate * dt
	case keys.Brake:
		if vx > 0 {
			acc = -car.BrakeDeceleration * BrakeSnap
		} else {
			acc -= ReverseRate * dt
		}
	case keys.Handbrake:
		if math.Abs(vx) > dt*car.BrakeDeceleration {
			acc = -math.Copysign(car.BrakeDeceleration, vx)
		} else if dt != 0 {
			// stop exactly this frame
			acc = -vx / dt
		}
	default:
		if math.Abs(vx) > dt*car.FreeDeceleration {
			acc = -math.Copysign(car.FreeDeceleration, vx) * CoastSnap
		} else if dt != 0 {
			acc = -vx / dt
		}
	}
	return acc
}

func (car *Car) steer(keys KeyState, dt float64) float64 {
	switch {
	case keys.Right:
		return car.steering - SteeringRate*dt
	case keys.Left:
		return car.steering + SteeringRate*dt
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
