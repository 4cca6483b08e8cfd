package orientation

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// Number returns the stored quaternion as a gonum quaternion (Real = w, Imag/Jmag/Kmag = x/y/z)
func (s *State) Number() quat.Number {
	return quat.Number{
		Real: s.rotation.W,
		Imag: s.rotation.V.X(),
		Jmag: s.rotation.V.Y(),
		Kmag: s.rotation.V.Z(),
	}
}

// SetFromNumber stores a gonum quaternion verbatim, like SetFromQuaternion.
func (s *State) SetFromNumber(n quat.Number) {
	s.rotation = mgl64.Quat{W: n.Real, V: mgl64.Vec3{n.Imag, n.Jmag, n.Kmag}}
}
