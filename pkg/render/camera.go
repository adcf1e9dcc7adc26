package render

import (
	"math"

	"github.com/taigrr/b3d/pkg/math3d"
)

// Camera is an eye position plus Euler orientation in radians. The zero
// Camera sits at the origin looking down +Z with +Y up.
type Camera struct {
	Position math3d.Vec3

	Yaw   float64 // Rotation around Y (look left/right)
	Pitch float64 // Rotation around X (look up/down)
	Roll  float64 // Rotation around Z (tilt)
}

// sinCosFunc returns the sine and cosine of an angle in radians.
type sinCosFunc func(angle float64) (sin, cos float64)

// Forward returns the unit view direction.
func (c Camera) Forward() math3d.Vec3 {
	return c.forward(math.Sincos)
}

// Up returns the camera's up vector before orthogonalization.
func (c Camera) Up() math3d.Vec3 {
	return c.up(math.Sincos)
}

// ViewMatrix returns the world-to-camera matrix.
func (c Camera) ViewMatrix() math3d.Mat4 {
	return c.view(math.Sincos)
}

func (c Camera) forward(sc sinCosFunc) math3d.Vec3 {
	dir := math3d.RotationX(sc(c.Pitch)).MulVec4(math3d.V4(0, 0, 1, 1))
	dir = math3d.RotationY(sc(c.Yaw)).MulVec4(dir)
	return dir.Vec3()
}

func (c Camera) up(sc sinCosFunc) math3d.Vec3 {
	return math3d.RotationZ(sc(c.Roll)).MulVec4(math3d.V4(0, 1, 0, 1)).Vec3()
}

// view inverts the point-at matrix. The basis is orthonormal so the cheap
// inverse is exact.
func (c Camera) view(sc sinCosFunc) math3d.Mat4 {
	target := c.Position.Add(c.forward(sc))
	return math3d.PointAt(c.Position, target, c.up(sc)).QuickInverse()
}

// maxPitch keeps the forward axis away from the up axis.
const maxPitch = math.Pi/2 - 0.01

// Rotate adds the given angles. Pitch is clamped short of straight up or
// down.
func (c *Camera) Rotate(deltaPitch, deltaYaw, deltaRoll float64) {
	c.Pitch = min(max(c.Pitch+deltaPitch, -maxPitch), maxPitch)
	c.Yaw += deltaYaw
	c.Roll += deltaRoll
}

// MoveForward moves the camera along its view direction (backward if
// negative).
func (c *Camera) MoveForward(distance float64) {
	c.Position = c.Position.Add(c.Forward().Scale(distance))
}
