package orientation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// GetEuler decomposes the current orientation into ZYX Euler angles, in radians.
//
// The output ranges are:
//
//	yaw   in (-pi, pi]
//	pitch in [-pi/2, pi/2]
//	roll  in (-pi, pi]
//
// The decomposition assumes a unit quaternion.
func (s *State) GetEuler() (yaw, pitch, roll float64) {
	w, x, y, z := s.rotation.W, s.rotation.V.X(), s.rotation.V.Y(), s.rotation.V.Z()

	// Coerce to [-1,1], rounding pushes it past the bounds at gimbal lock
	sinPitch := mgl64.Clamp(2.0*(w*y-z*x), -1, 1)
	pitch = math.Asin(sinPitch)

	ysq := y * y
	yaw = math.Atan2(w*z+x*y, 0.5-(ysq+z*z))
	roll = math.Atan2(w*x+y*z, 0.5-(ysq+x*x))

	return yaw, pitch, roll
}

// GetEulerDegrees is GetEuler in degrees
func (s *State) GetEulerDegrees() (yaw, pitch, roll float64) {
	yaw, pitch, roll = s.GetEuler()
	return mgl64.RadToDeg(yaw), mgl64.RadToDeg(pitch), mgl64.RadToDeg(roll)
}
