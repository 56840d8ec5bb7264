package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// ErrNoHeader is returned when a CSV source has no header row.
var ErrNoHeader = errors.New("data: missing CSV header")

// ReadCSV reads a table whose first record holds the column names and whose
// remaining records hold numeric values. Unparseable or missing values are
// errors; the generator does not impute.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("data: read header: %w", err)
	}
	names := append([]string(nil), header...)
	cols := make([][]float64, len(names))

	for line := 2; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("data: read line %d: %w", line, err)
		}
		for j, s := range rec {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil || math.IsNaN(v) {
				return nil, fmt.Errorf("data: line %d column %q: invalid value %q", line, names[j], s)
			}
			cols[j] = append(cols[j], v)
		}
	}
	return New(names, cols)
}

// LoadCSV reads a table from the CSV file at path.
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadCSV(file)
}

// WriteCSV writes the table with a header row, one record per row.
func WriteCSV(w io.Writer, d *Dataset) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(d.names); err != nil {
		return err
	}
	rec := make([]string, len(d.names))
	for i := range d.rows {
		for j, col := range d.cols {
			rec[j] = strconv.FormatFloat(col[i], 'g', -1, 64)
		}
		if err := writer.Write(rec); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveCSV writes the table to the CSV file at path, replacing it.
func SaveCSV(path string, d *Dataset) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteCSV(file, d)
}
