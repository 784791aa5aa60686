package bevel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var zAxis = r3.Vec{Z: 1}

// InvolutePoint returns the point of the spherical involute of cone c
// started at slant length generatrix after the disk rolled theta radians.
// The point lies on the sphere of radius generatrix centered at the apex.
func InvolutePoint(c Cone, generatrix, theta float64) r3.Vec {
	return involute(c, generatrix, theta, 0)
}

// involute rotates the cone surface point at slant length gen.
// The disk rolls first by -sin(phi)*theta about the rolling axis and
// the result is then swept theta+phase about the cone axis.
func involute(c Cone, gen, theta, phase float64) r3.Vec {
	roll := math.Sin(c.Phi) * theta
	qz := FromAxisAngle(zAxis, theta+phase)
	qc := FromAxisAngle(c.rollingAxis(), -roll)
	return Rotate(MulQuat(qz, qc), c.anchor(gen))
}

// Involute is the plain spherical involute tooth surface. Its sweep
// parameter is the slant length of the involute's starting point.
type Involute struct {
	Cone Cone
}

var _ Surface = Involute{}

// Point returns InvolutePoint(s.Cone, generatrix, theta). It never fails.
func (s Involute) Point(generatrix, theta float64) (r3.Vec, error) {
	return involute(s.Cone, generatrix, theta, 0), nil
}
