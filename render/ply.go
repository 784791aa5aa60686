package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/soypat/bevel/internal/d3"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"
)

const plyVertexSize = 12 // three float32 coordinates.

var errEmptyPLY = errors.New("empty point slice")

// CreatePLY writes all points of r to a binary little endian PLY file at path.
// The vertex count precedes the data in PLY so r is read to completion first;
// no file is created if r fails.
func CreatePLY(path string, r PointReader) error {
	points, err := ReadAll(r)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return errEmptyPLY
	}
	return createPLY(path, points)
}

func createPLY(path string, points []r3.Vec) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(file)
	err = WritePLY(bw, points)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return err
}

// WritePLY writes points to a writer as a binary little endian PLY vertex list
// with float32 x, y, z properties. Points that are not representable as finite
// float32 values are rejected.
func WritePLY(w io.Writer, points []r3.Vec) error {
	if len(points) == 0 {
		return errEmptyPLY
	}
	if _, err := io.WriteString(w, plyHeader(len(points))); err != nil {
		return err
	}
	var b [plyVertexSize]byte
	for i, p := range points {
		if !d3.IsFinite(p) {
			return fmt.Errorf("point %d: inf/NaN PLY vertex %v", i, p)
		}
		v := ms3.Vec{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
		if badVec32(v) {
			return fmt.Errorf("point %d: %v overflows float32 PLY vertex", i, p)
		}
		putVec32(b[:], v)
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

func plyHeader(n int) string {
	return "ply\n" +
		"format binary_little_endian 1.0\n" +
		"element vertex " + strconv.Itoa(n) + "\n" +
		"property float x\n" +
		"property float y\n" +
		"property float z\n" +
		"end_header\n"
}

func readBinaryPLY(r io.Reader) ([]r3.Vec, error) {
	br := bufio.NewReader(r)
	var n int
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, errors.New("PLY header read failed: " + err.Error())
		}
		line = line[:len(line)-1]
		if line == "end_header" {
			break
		}
		if rest, ok := strings.CutPrefix(line, "element vertex "); ok {
			n, err = strconv.Atoi(rest)
			if err != nil {
				return nil, err
			}
		}
	}
	if n == 0 {
		return nil, errors.New("PLY header indicates 0 vertices present")
	}
	var (
		buf [plyVertexSize]byte
		v   ms3.Vec
	)
	out := make([]r3.Vec, 0, n)
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			return out, fmt.Errorf("%d/%d PLY vertices read: %w", i, n, err)
		}
		getVec32(buf[:], &v)
		if badVec32(v) {
			return out, errors.New("inf/NaN PLY vertex")
		}
		out = append(out, r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)})
	}
	return out, nil
}

func putVec32(b []byte, v ms3.Vec) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Z))
}

func getVec32(b []byte, v *ms3.Vec) {
	_ = b[11] // early bounds check
	v.X = math.Float32frombits(binary.LittleEndian.Uint32(b))
	v.Y = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	v.Z = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func badVec32(v ms3.Vec) bool {
	return math32.IsNaN(v.X) || math32.IsInf(v.X, 0) ||
		math32.IsNaN(v.Y) || math32.IsInf(v.Y, 0) ||
		math32.IsNaN(v.Z) || math32.IsInf(v.Z, 0)
}
