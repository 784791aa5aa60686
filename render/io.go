package render

import (
	"io"

	"gonum.org/v1/gonum/spatial/r3"
)

// ReadAll reads the full contents of a PointReader and returns the slice read.
// It does not return error on io.EOF, like the io.ReadAll implementation.
// Points read before an error are returned alongside it.
func ReadAll(r PointReader) ([]r3.Vec, error) {
	var err error
	var n int
	result := make([]r3.Vec, 0, 1<<10)
	buf := make([]r3.Vec, 256)
	for {
		n, err = r.ReadPoints(buf)
		result = append(result, buf[:n]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

// SliceReader returns a PointReader over an existing point slice.
func SliceReader(pts []r3.Vec) PointReader {
	return &pointBuffer{buf: pts}
}

type pointBuffer struct {
	buf []r3.Vec
}

// Read reads from this buffer.
func (b *pointBuffer) Read(p []r3.Vec) int {
	n := copy(p, b.buf)
	b.buf = b.buf[n:]
	return n
}

// Write appends points to this buffer.
func (b *pointBuffer) Write(p []r3.Vec) int {
	b.buf = append(b.buf, p...)
	return len(p)
}

func (b *pointBuffer) Len() int { return len(b.buf) }

// ReadPoints implements PointReader.
func (b *pointBuffer) ReadPoints(dst []r3.Vec) (int, error) {
	if b.Len() == 0 {
		return 0, io.EOF
	}
	return b.Read(dst), nil
}
