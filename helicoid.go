package bevel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDomain is matched by errors returned when a helicoid width offset
// has no defined twist correction.
var ErrDomain = errors.New("width offset outside helicoid domain")

// DomainError reports a width offset for which the twist correction
// arcsine argument leaves [-1, 1].
type DomainError struct {
	Width      float64 // offending width offset b
	Generatrix float64
	Beta       float64
	// Bound is the largest valid width offset.
	Bound float64
}

func (e *DomainError) Error() string {
	if e.Width >= e.Generatrix {
		return fmt.Sprintf("helicoid width offset b=%g reaches the cone apex (generatrix=%g)", e.Width, e.Generatrix)
	}
	return fmt.Sprintf("helicoid width offset b=%g exceeds bound %g (generatrix=%g, beta=%.6g°)",
		e.Width, e.Bound, e.Generatrix, RtoD(e.Beta))
}

// Is makes DomainError match ErrDomain.
func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// Helicoid is a spherical involute helicoid: a stack of involutes, one per
// tooth width offset b, each phase shifted so the tooth twists with
// helix angle Beta at the base (b=0). Its sweep parameter is b, measured
// from the cone base towards the apex.
type Helicoid struct {
	Cone Cone
	// Beta is the helix angle in radians.
	Beta float64
}

var _ Surface = Helicoid{}

// NewHelicoid returns a helicoid over cone c with helix angle beta (radians).
func NewHelicoid(c Cone, beta float64) (Helicoid, error) {
	if err := c.Validate(); err != nil {
		return Helicoid{}, err
	}
	if !isFinite(beta) || math.Abs(beta) >= pi/2 {
		return Helicoid{}, errors.New("helix angle beta must be in (-pi/2, pi/2)")
	}
	return Helicoid{Cone: c, Beta: beta}, nil
}

// MaxWidth returns the largest width offset b with a defined twist
// correction, generatrix*(1 - sin|beta|). With beta=0 this is the
// generatrix itself, which collapses the involute onto the apex, so b
// must also stay strictly below the generatrix.
func (h Helicoid) MaxWidth() float64 {
	return h.Cone.Generatrix * (1 - math.Abs(math.Sin(h.Beta)))
}

// ThetaOffset returns the rolling angle phase added to the involute at
// width offset b:
//  (asin(G*sin(beta)/(G-b)) - beta) / sin(phi)
// A *DomainError is returned when b exceeds MaxWidth or b >= generatrix.
func (h Helicoid) ThetaOffset(b float64) (float64, error) {
	g := h.Cone.Generatrix
	rem := g - b
	arg := g * math.Sin(h.Beta) / rem
	if rem <= 0 || math.IsNaN(arg) || math.Abs(arg) > 1+asinTolerance {
		return 0, &DomainError{Width: b, Generatrix: g, Beta: h.Beta, Bound: h.MaxWidth()}
	}
	gamma := math.Asin(Clamp(arg, -1, 1)) - h.Beta
	return gamma / math.Sin(h.Cone.Phi), nil
}

// Point returns the helicoid point at width offset b and rolling angle theta.
func (h Helicoid) Point(b, theta float64) (r3.Vec, error) {
	offset, err := h.ThetaOffset(b)
	if err != nil {
		return r3.Vec{}, err
	}
	return involute(h.Cone, h.Cone.Generatrix-b, theta, offset), nil
}
