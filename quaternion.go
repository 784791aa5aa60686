package bevel

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quat is a quaternion used to represent a rotation in 3D space.
// Only quaternions of unit modulus represent rotations.
type Quat quat.Number

// FromAxisAngle returns the unit quaternion rotating by angle radians
// about axis following the right hand rule.
//
// axis must be of unit length. It is not normalized: a non-unit axis yields a
// quaternion that is not a rotation and every vector rotated with it is wrong.
func FromAxisAngle(axis r3.Vec, angle float64) Quat {
	s, c := math.Sincos(angle / 2)
	return Quat{Real: c, Imag: s * axis.X, Jmag: s * axis.Y, Kmag: s * axis.Z}
}

// MulQuat returns the Hamilton product a·b. Rotating a vector by the result
// applies rotation b first and then rotation a. MulQuat is not commutative.
func MulQuat(a, b Quat) Quat {
	return Quat(quat.Mul(quat.Number(a), quat.Number(b)))
}

// Rotate returns v rotated by q, that is the vector part of q·v·conj(q)
// where v is taken as a pure quaternion.
func Rotate(q Quat, v r3.Vec) r3.Vec {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	n := quat.Number(q)
	p = quat.Mul(quat.Mul(n, p), quat.Conj(n))
	return r3.Vec{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}

// Conj returns the conjugate of q. For unit quaternions this is the inverse rotation.
func (q Quat) Conj() Quat { return Quat(quat.Conj(quat.Number(q))) }

// Abs returns the modulus of q.
func (q Quat) Abs() float64 { return quat.Abs(quat.Number(q)) }

// IsUnit reports whether the modulus of q is within tol of 1.
func (q Quat) IsUnit(tol float64) bool { return math.Abs(q.Abs()-1) <= tol }
