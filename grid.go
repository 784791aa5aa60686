package bevel

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Axis is one dimension of a sampling Grid.
type Axis struct {
	Count int
	Start float64
	Step  float64
}

// Value returns the parameter at index i, Start + Step*i.
func (a Axis) Value(i int) float64 {
	return a.Start + a.Step*float64(i)
}

// Grid is a rectangular lattice of (sweep, theta) surface parameters
// visited sweep major, theta minor.
type Grid struct {
	Sweep Axis
	Theta Axis
}

// PlainGrid returns the sampling grid of an Involute over cone c. The sweep
// runs over slant lengths c.Generatrix*(deltaGen*i + 0.5) so sampling starts
// halfway between apex and base.
func PlainGrid(c Cone, nGen int, deltaGen float64, nTheta int, deltaTheta float64) Grid {
	return Grid{
		Sweep: Axis{Count: nGen, Start: 0.5 * c.Generatrix, Step: deltaGen * c.Generatrix},
		Theta: Axis{Count: nTheta, Step: deltaTheta},
	}
}

// HelicoidGrid returns the sampling grid of a Helicoid with nWidth width
// offsets deltaWidth apart starting at the cone base.
func HelicoidGrid(nWidth int, deltaWidth float64, nTheta int, deltaTheta float64) Grid {
	return Grid{
		Sweep: Axis{Count: nWidth, Step: deltaWidth},
		Theta: Axis{Count: nTheta, Step: deltaTheta},
	}
}

// Len returns the number of points in the grid.
func (g Grid) Len() int { return g.Sweep.Count * g.Theta.Count }

// At returns the parameters of the n'th grid point in row major order.
// It panics if n is outside [0, Len()).
func (g Grid) At(n int) (u, theta float64) {
	if n < 0 || n >= g.Len() {
		panic("grid index out of range")
	}
	i, j := n/g.Theta.Count, n%g.Theta.Count
	return g.Sweep.Value(i), g.Theta.Value(j)
}

// Validate returns an error if the grid has negative counts or non-finite parameters.
func (g Grid) Validate() error {
	if g.Sweep.Count < 0 || g.Theta.Count < 0 {
		return errors.New("grid counts must not be negative")
	}
	for _, v := range [...]float64{g.Sweep.Start, g.Sweep.Step, g.Theta.Start, g.Theta.Step} {
		if !isFinite(v) {
			return errors.New("grid start and step must be finite")
		}
	}
	return nil
}

// SampleRow appends the Theta.Count points of sweep row i of s to dst.
// On failure the points of the row computed so far are returned with the error.
func SampleRow(dst []r3.Vec, s Surface, g Grid, i int) ([]r3.Vec, error) {
	u := g.Sweep.Value(i)
	for j := 0; j < g.Theta.Count; j++ {
		p, err := s.Point(u, g.Theta.Value(j))
		if err != nil {
			return dst, fmt.Errorf("sweep %d theta %d: %w", i, j, err)
		}
		dst = append(dst, p)
	}
	return dst, nil
}
