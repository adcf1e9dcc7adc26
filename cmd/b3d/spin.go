package main

import (
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/b3d/pkg/math3d"
	"github.com/taigrr/b3d/pkg/render"
)

// SpinAxis is one rotation angle whose velocity springs back to zero.
type SpinAxis struct {
	Angle    float64
	Velocity float64
	spring   harmonica.Spring
	accel    float64 // spring's own velocity while easing Velocity to 0
}

// NewSpinAxis creates a critically damped axis stepped fps times a second.
// Rates below one frame a second step once a second.
func NewSpinAxis(fps float64) SpinAxis {
	frames := 1
	if fps >= 1 && fps < math.MaxInt32 {
		frames = int(fps)
	}
	return SpinAxis{spring: harmonica.NewSpring(harmonica.FPS(frames), 4.0, 1.0)}
}

// Step advances the angle by one frame and eases the velocity.
func (a *SpinAxis) Step() {
	a.Angle += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// Spin is the viewer's orbit around the scene origin.
type Spin struct {
	Pitch, Yaw, Roll SpinAxis
	fps              float64
}

// NewSpin creates a spin at rest.
func NewSpin(fps float64) *Spin {
	s := &Spin{fps: fps}
	s.Reset()
	return s
}

// Step advances every axis by one frame.
func (s *Spin) Step() {
	s.Pitch.Step()
	s.Yaw.Step()
	s.Roll.Step()
}

// Impulse adds to each axis velocity.
func (s *Spin) Impulse(pitch, yaw, roll float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
	s.Roll.Velocity += roll
}

// Kick adds a random impulse of up to strength/2 per axis.
func (s *Spin) Kick(rng *rand.Rand, strength float64) {
	s.Impulse(
		(rng.Float64()-0.5)*strength,
		(rng.Float64()-0.5)*strength,
		(rng.Float64()-0.5)*strength,
	)
}

// Reset stops and re-centers every axis.
func (s *Spin) Reset() {
	s.Pitch = NewSpinAxis(s.fps)
	s.Yaw = NewSpinAxis(s.fps)
	s.Roll = NewSpinAxis(s.fps)
}

// Camera orbits base around the origin by the current angles, so the
// scene appears to turn in front of it.
func (s *Spin) Camera(base render.Camera) render.Camera {
	return orbit(base, s.Pitch.Angle, s.Yaw.Angle, s.Roll.Angle)
}

// orbitPitch keeps the orbit off the poles, where yaw degenerates.
const orbitPitch = 1.5

func orbit(base render.Camera, pitch, yaw, roll float64) render.Camera {
	pitch = min(max(pitch, -orbitPitch), orbitPitch)
	q := math3d.RotateX(pitch).Mul(math3d.RotateY(yaw))
	cam := base
	cam.Position = q.MulVec4(base.Position.Point()).Vec3()
	cam.Rotate(pitch, yaw, roll)
	return cam
}
