// Package bevel generates point clouds of spherical involute tooth surfaces
// such as those found on straight and spiral bevel gears.
//
// A spherical involute is the curve traced by a point of a disk rolling without
// slip on a base cone. All involute points lie on a sphere centered at the cone
// apex, which is placed at the origin with the cone opening towards -z.
//
// Points are computed by composing two quaternion rotations: the disk's
// rolling about its tilted axis followed by a sweep about the cone axis.
package bevel

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Surface is a tooth surface parametrized by a sweep parameter u and
// a rolling angle theta.
type Surface interface {
	// Point returns the surface point at sweep parameter u and rolling angle theta.
	Point(u, theta float64) (r3.Vec, error)
}

// Cone is the base cone on which the generating disk rolls.
// The zero value is not valid, use NewCone.
type Cone struct {
	// Phi is the base cone half angle in radians.
	Phi float64
	// Generatrix is the slant length from apex to base circle.
	Generatrix float64
}

// NewCone returns a base cone of half angle phi (radians) and slant length generatrix.
func NewCone(phi, generatrix float64) (Cone, error) {
	c := Cone{Phi: phi, Generatrix: generatrix}
	if err := c.Validate(); err != nil {
		return Cone{}, err
	}
	return c, nil
}

// Validate returns a non-nil error if the cone has no valid geometry.
func (c Cone) Validate() error {
	switch {
	case !isFinite(c.Phi) || !isFinite(c.Generatrix):
		return errors.New("cone parameters must be finite")
	case c.Phi <= 0 || c.Phi >= pi/2:
		return errors.New("cone angle phi must be in (0, pi/2)")
	case c.Generatrix <= 0:
		return errors.New("cone generatrix must be positive")
	}
	return nil
}

// Psi returns the half angle of the complementary cone, π/2 - Phi.
func (c Cone) Psi() float64 { return pi/2 - c.Phi }

// Height returns the distance from apex to base circle plane.
func (c Cone) Height() float64 { return c.Generatrix * math.Cos(c.Phi) }

// Radius returns the base circle radius.
func (c Cone) Radius() float64 { return c.Generatrix * math.Sin(c.Phi) }

// rollingAxis is the unit axis about which the generating disk spins.
func (c Cone) rollingAxis() r3.Vec {
	s, co := math.Sincos(c.Psi())
	return r3.Vec{X: s, Y: 0, Z: co}
}

// anchor returns the point of the cone surface at slant length gen
// in its unrotated position on the xz plane.
func (c Cone) anchor(gen float64) r3.Vec {
	s, co := math.Sincos(c.Phi)
	return r3.Vec{X: gen * s, Y: 0, Z: -gen * co}
}
