package render

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

var csvHeader = []string{"x", "y", "z"}

// CreateCSV writes all points of r to a new CSV file at path, truncating any
// existing file. Coordinates are written with prec decimals.
// The file is flushed and closed even if r fails midway, in which case
// the points read before the failure remain in the file.
func CreateCSV(path string, r PointReader, prec int) (err error) {
	if prec < 0 {
		return errors.New("negative CSV precision")
	}
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
	_, err = copyCSV(bw, r, prec)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return err
}

// WriteCSV writes points to a writer as x,y,z records with a header
// record and prec decimals per coordinate.
func WriteCSV(w io.Writer, points []r3.Vec, prec int) error {
	if prec < 0 {
		return errors.New("negative CSV precision")
	}
	_, err := copyCSV(w, SliceReader(points), prec)
	return err
}

// copyCSV writes header and records until r is exhausted and returns the number of points written.
func copyCSV(w io.Writer, r PointReader, prec int) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, err
	}
	var (
		buf    [256]r3.Vec
		record = make([]string, 3)
		total  int
	)
	for {
		n, err := r.ReadPoints(buf[:])
		for _, p := range buf[:n] {
			record[0] = strconv.FormatFloat(p.X, 'f', prec, 64)
			record[1] = strconv.FormatFloat(p.Y, 'f', prec, 64)
			record[2] = strconv.FormatFloat(p.Z, 'f', prec, 64)
			if werr := cw.Write(record); werr != nil {
				return total, werr
			}
			total++
		}
		if err != nil {
			cw.Flush()
			if err == io.EOF {
				return total, cw.Error()
			}
			return total, err
		}
	}
}

// ReadCSV reads points written by WriteCSV. The first record must be the x,y,z header.
func ReadCSV(r io.Reader) ([]r3.Vec, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("missing CSV header")
		}
		return nil, err
	}
	for i := range csvHeader {
		if header[i] != csvHeader[i] {
			return nil, fmt.Errorf("unexpected CSV header %q", header)
		}
	}
	var points []r3.Vec
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			return points, nil
		}
		if err != nil {
			return points, err
		}
		var v [3]float64
		for i, field := range record {
			v[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return points, fmt.Errorf("CSV line %d: %w", line, err)
			}
		}
		points = append(points, r3.Vec{X: v[0], Y: v[1], Z: v[2]})
	}
}
