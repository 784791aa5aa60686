// Package render samples bevel surfaces into point sequences and writes
// them out as CSV or binary PLY point clouds.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// PointReader is implemented by point generators. ReadPoints writes
// up to len(dst) points into dst and returns the number written. io.EOF is
// returned once all points have been read.
type PointReader interface {
	ReadPoints(dst []r3.Vec) (int, error)
}

const (
	// ToothPrecision is the number of decimals tooth surface points are written with.
	ToothPrecision = 4
	// ConePrecision is the number of decimals base cone points are written with.
	ConePrecision = 7
)
