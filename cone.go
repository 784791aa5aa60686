package bevel

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// SamplePoint returns the base cone surface point at generatrix division i
// and angular division j out of gdiv and adiv divisions. Both indices run
// over their end points inclusively: i=gdiv is the base circle and
// j=adiv closes the loop at 2π.
func (c Cone) SamplePoint(i, j, gdiv, adiv int) r3.Vec {
	gen := (c.Generatrix / float64(gdiv)) * float64(i)
	theta := (tau / float64(adiv)) * float64(j)
	return Rotate(FromAxisAngle(zAxis, theta), c.anchor(gen))
}

// Sample returns the (gdiv+1)*(adiv+1) base cone points in generatrix major
// order. Points repeat at 0 and 2π and all points at i=0 are the apex.
// Sample panics if gdiv or adiv are not positive.
func (c Cone) Sample(gdiv, adiv int) []r3.Vec {
	if gdiv <= 0 || adiv <= 0 {
		panic("cone sample divisions must be positive")
	}
	pts := make([]r3.Vec, 0, (gdiv+1)*(adiv+1))
	for i := 0; i <= gdiv; i++ {
		for j := 0; j <= adiv; j++ {
			pts = append(pts, c.SamplePoint(i, j, gdiv, adiv))
		}
	}
	return pts
}
