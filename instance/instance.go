package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/mwinters-dev/latinsquare/bitdomain"
)

// Assignment fixes cell (Row, Col) to Color.
type Assignment struct {
	Row   int
	Col   int
	Color int
}

// Instance is a parsed Latin-square completion problem: a grid size and the
// set of pre-fixed cells.
type Instance struct {
	N           int
	Assignments []Assignment
}

// Parse reads an Instance from r: n, then (row, col, color) triples to EOF.
func Parse(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	nextInt := func() (int, bool) {
		if !sc.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, false
		}
		return v, true
	}

	n, ok := nextInt()
	if !ok {
		return nil, ErrMalformedInput
	}
	if n <= 0 || n > bitdomain.MaxBits {
		return nil, ErrInvalidSize
	}

	inst := &Instance{N: n}
	for {
		if !sc.Scan() {
			break
		}
		row, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, ErrMalformedInput
		}
		col, ok := nextInt()
		if !ok {
			return nil, ErrMalformedInput
		}
		color, ok := nextInt()
		if !ok {
			return nil, ErrMalformedInput
		}
		if row < 0 || row >= n || col < 0 || col >= n || color < 0 || color >= n {
			return nil, fmt.Errorf("instance: assignment (%d,%d,%d): %w", row, col, color, ErrOutOfRange)
		}
		inst.Assignments = append(inst.Assignments, Assignment{Row: row, Col: col, Color: color})
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: scanning input: %w", err)
	}
	return inst, nil
}

// WriteGrid writes an n x n grid, one row per line, space-separated, to w.
func WriteGrid(w io.Writer, grid [][]int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16)
	for _, row := range grid {
		for j, v := range row {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			buf = strconv.AppendInt(buf[:0], int64(v), 10)
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
