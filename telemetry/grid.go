package telemetry

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// WriteForceGrid writes m as comma-delimited rows with no header and no
// index column. Row i of the output is row i of the matrix.
func WriteForceGrid(w io.Writer, m mat.Matrix) error {
	rows, cols := m.Dims()
	cw := csv.NewWriter(w)

	record := make([]string, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			record[c] = strconv.FormatFloat(m.At(r, c), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing grid row %d: %w", r, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing grid: %w", err)
	}
	return nil
}

// SaveForceGrid writes m to the file at path.
func SaveForceGrid(path string, m mat.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteForceGrid(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadForceGrid parses a matrix written by WriteForceGrid.
func ReadForceGrid(r io.Reader) (*mat.Dense, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("reading grid: empty matrix")
	}

	rows, cols := len(records), len(records[0])
	data := make([]float64, 0, rows*cols)
	for i, rec := range records {
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("reading grid cell (%d,%d): %w", i, j, err)
			}
			data = append(data, v)
		}
	}
	return mat.NewDense(rows, cols, data), nil
}
