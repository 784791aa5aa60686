package render

import (
	"errors"
	"io"
	"sync"

	"github.com/soypat/bevel"
	"gonum.org/v1/gonum/spatial/r3"
)

// surfaceRenderer streams the points of a Surface over a Grid one sweep row at a time.
type surfaceRenderer struct {
	s         bevel.Surface
	g         bevel.Grid
	row       int // next sweep row to generate
	rowbuf    []r3.Vec
	unwritten pointBuffer
	err       error
}

// NewSurfaceRenderer returns a PointReader yielding the points of s over grid g in
// sweep major, theta minor order. A point generation error stops the reader: the
// points of the failing row computed before the error are read first and the error
// is then returned on every subsequent call.
func NewSurfaceRenderer(s bevel.Surface, g bevel.Grid) (*surfaceRenderer, error) {
	if s == nil {
		return nil, errors.New("nil surface")
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &surfaceRenderer{
		s:      s,
		g:      g,
		rowbuf: make([]r3.Vec, 0, g.Theta.Count),
	}, nil
}

// ReadPoints writes generated points into the argument buffer.
// returns number of points written and an error if present.
func (sr *surfaceRenderer) ReadPoints(dst []r3.Vec) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty point slice")
	}
	for {
		if sr.unwritten.Len() > 0 {
			n += sr.unwritten.Read(dst[n:])
			if n == len(dst) {
				return n, nil
			}
		}
		if sr.err != nil {
			return n, sr.err
		}
		if sr.row >= sr.g.Sweep.Count {
			// Done sampling surface.
			return n, io.EOF
		}
		sr.rowbuf, sr.err = bevel.SampleRow(sr.rowbuf[:0], sr.s, sr.g, sr.row)
		sr.unwritten.Write(sr.rowbuf)
		sr.row++
	}
}

// SampleSurface returns all points of s over grid g in sweep major, theta minor
// order. Sweep rows are distributed over workers goroutines when workers > 1;
// the result is identical to sequential generation. If any point fails
// SampleSurface returns nil and the error of the lowest failing row.
func SampleSurface(s bevel.Surface, g bevel.Grid, workers int) ([]r3.Vec, error) {
	sr, err := NewSurfaceRenderer(s, g)
	if err != nil {
		return nil, err
	}
	if workers <= 1 || g.Sweep.Count < 2 {
		pts, err := ReadAll(sr)
		if err != nil {
			return nil, err
		}
		return pts, nil
	}
	if workers > g.Sweep.Count {
		workers = g.Sweep.Count
	}
	var (
		nt   = g.Theta.Count
		pts  = make([]r3.Vec, g.Len())
		errs = make([]error, g.Sweep.Count)
		rows = make(chan int)
		wg   sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range rows {
				// Each row writes only to its own window of pts.
				off := i * nt
				_, errs[i] = bevel.SampleRow(pts[off:off:off+nt], s, g, i)
			}
		}()
	}
	for i := 0; i < g.Sweep.Count; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return pts, nil
}

// coneRenderer streams base cone sample points.
type coneRenderer struct {
	c          bevel.Cone
	gdiv, adiv int
	next       int
}

// NewConeRenderer returns a PointReader over the (gdiv+1)*(adiv+1) points of
// the base cone sampled with gdiv generatrix and adiv angular divisions.
func NewConeRenderer(c bevel.Cone, gdiv, adiv int) (*coneRenderer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if gdiv <= 0 || adiv <= 0 {
		return nil, errors.New("cone divisions must be positive")
	}
	return &coneRenderer{c: c, gdiv: gdiv, adiv: adiv}, nil
}

// ReadPoints implements PointReader.
func (cr *coneRenderer) ReadPoints(dst []r3.Vec) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty point slice")
	}
	per := cr.adiv + 1
	total := (cr.gdiv + 1) * per
	for n < len(dst) && cr.next < total {
		dst[n] = cr.c.SamplePoint(cr.next/per, cr.next%per, cr.gdiv, cr.adiv)
		n++
		cr.next++
	}
	if cr.next == total {
		return n, io.EOF
	}
	return n, nil
}
