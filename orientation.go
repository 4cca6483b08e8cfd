package orientation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// QuaternionNormTolerance is the smallest norm SetFromQuaternionNormalized
// will divide by. Below it the state falls back to identity.
const QuaternionNormTolerance = 1e-12

// State holds a single orientation as a quaternion.
// It is not safe for concurrent use: callers sharing a State must serialize access.
type State struct {
	rotation mgl64.Quat
}

// NewState creates a State at the identity orientation (0, 0, 0, 1)
func NewState() *State {
	return &State{
		rotation: mgl64.QuatIdent(),
	}
}

// Reset puts the state back to identity
func (s *State) Reset() {
	s.rotation = mgl64.QuatIdent()
}

// SetFromEuler sets the orientation from yaw (alpha, about Z), pitch (beta, about Y)
// and roll (gamma, about X), in radians, composed as yaw * pitch * roll (intrinsic ZYX).
// The result is unit-norm for any finite input; non-finite input is stored as is.
func (s *State) SetFromEuler(alpha, beta, gamma float64) {
	sy, cy := math.Sincos(alpha * 0.5)
	sp, cp := math.Sincos(beta * 0.5)
	sr, cr := math.Sincos(gamma * 0.5)

	s.rotation = mgl64.Quat{
		W: cr*cp*cy + sr*sp*sy,
		V: mgl64.Vec3{
			sr*cp*cy - cr*sp*sy,
			cr*sp*cy + sr*cp*sy,
			cr*cp*sy - sr*sp*cy,
		},
	}
}

// SetFromEulerDegrees is SetFromEuler with angles in degrees, as reported by
// device orientation events.
func (s *State) SetFromEulerDegrees(alpha, beta, gamma float64) {
	s.SetFromEuler(mgl64.DegToRad(alpha), mgl64.DegToRad(beta), mgl64.DegToRad(gamma))
}

// SetFromQuaternion stores the components verbatim.
// No normalization is applied: a non-unit quaternion yields a scaled matrix.
func (s *State) SetFromQuaternion(x, y, z, w float64) {
	s.rotation = mgl64.Quat{W: w, V: mgl64.Vec3{x, y, z}}
}

// SetFromQuaternionNormalized stores the components scaled to unit norm.
// A quaternion whose norm is below QuaternionNormTolerance resets the state to identity.
func (s *State) SetFromQuaternionNormalized(x, y, z, w float64) {
	q := mgl64.Quat{W: w, V: mgl64.Vec3{x, y, z}}
	length := q.Len()
	if length < QuaternionNormTolerance {
		s.rotation = mgl64.QuatIdent()
		return
	}

	s.rotation = q.Scale(1.0 / length)
}

// GetQuaternion returns the stored components in (x, y, z, w) order
func (s *State) GetQuaternion() [4]float64 {
	return [4]float64{s.rotation.V.X(), s.rotation.V.Y(), s.rotation.V.Z(), s.rotation.W}
}

// GetRotationMatrix returns the 4x4 homogeneous rotation matrix, flattened column-major.
// It is derived from the current quaternion on every call.
func (s *State) GetRotationMatrix() [16]float64 {
	return [16]float64(s.Mat4())
}

// Quat returns the stored quaternion
func (s *State) Quat() mgl64.Quat {
	return s.rotation
}

// Mat4 returns the rotation matrix as an mgl64.Mat4.
// mgl64 matrices are column-major, matching GetRotationMatrix.
func (s *State) Mat4() mgl64.Mat4 {
	return s.rotation.Mat4()
}

// Norm returns the length of the stored quaternion
func (s *State) Norm() float64 {
	return s.rotation.Len()
}
