// Package data holds the column-oriented tables that the generator reads and
// writes, along with CSV codecs and the binary/continuous column rule.
package data

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hgubler/BNForest/pkg/core"
)

var (
	// ErrUnknownColumn is returned when a lookup names a column the table does not have.
	ErrUnknownColumn = errors.New("data: unknown column")
	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("data: duplicate column")
	// ErrRaggedColumns is returned when columns differ in length.
	ErrRaggedColumns = errors.New("data: columns have different lengths")
	// ErrColumnUnset is returned when a builder column is read or built before it was written.
	ErrColumnUnset = errors.New("data: column not written yet")
	// ErrColumnWritten is returned when a builder column is written twice.
	ErrColumnWritten = errors.New("data: column already written")
)

// Dataset is an immutable table of named float64 columns of equal length.
// Binary variables are stored as their numeric codes.
type Dataset struct {
	names []string
	index map[string]int
	cols  [][]float64
	rows  int
}

// New builds a Dataset from column names and column values. The values are
// copied so later changes to the caller's slices do not leak in.
func New(names []string, cols [][]float64) (*Dataset, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("data: %d names for %d columns", len(names), len(cols))
	}
	index, err := indexNames(names)
	if err != nil {
		return nil, err
	}
	d := &Dataset{names: slices.Clone(names), index: index, cols: make([][]float64, len(cols))}
	for j, col := range cols {
		if j > 0 && len(col) != d.rows {
			return nil, fmt.Errorf("%w: %q has %d rows, want %d", ErrRaggedColumns, names[j], len(col), d.rows)
		}
		d.rows = len(col)
		d.cols[j] = slices.Clone(col)
	}
	return d, nil
}

func indexNames(names []string) (map[string]int, error) {
	index := make(map[string]int, len(names))
	for i, n := range names {
		if _, ok := index[n]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, n)
		}
		index[n] = i
	}
	return index, nil
}

// Names returns the column names in table order.
func (d *Dataset) Names() []string { return slices.Clone(d.names) }

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.rows }

// Width returns the number of columns.
func (d *Dataset) Width() int { return len(d.names) }

// Has reports whether the table has a column called name.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Column returns the values of the named column. The slice is shared with the
// table and must not be modified.
func (d *Dataset) Column(name string) ([]float64, error) {
	j, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return d.cols[j], nil
}

// Select gathers the named columns, in the given order, into a row-major matrix.
func (d *Dataset) Select(names []string) (*core.Matrix, error) {
	cols := make([][]float64, len(names))
	for j, n := range names {
		col, err := d.Column(n)
		if err != nil {
			return nil, err
		}
		cols[j] = col
	}
	return core.FromColumns(d.rows, cols...)
}

// Schema describes the kind of every column.
func (d *Dataset) Schema() Schema {
	s := Schema{FeatureNames: d.Names(), Kinds: make([]Kind, len(d.names))}
	for j, col := range d.cols {
		s.Kinds[j] = KindOf(col)
	}
	return s
}

// Builder assembles a Dataset one column at a time. Each column can be
// written exactly once; once written it can be read back as a predictor.
type Builder struct {
	d       *Dataset
	written []bool
}

// NewBuilder starts an empty table with the given columns and row count.
func NewBuilder(names []string, rows int) (*Builder, error) {
	index, err := indexNames(names)
	if err != nil {
		return nil, err
	}
	return &Builder{
		d:       &Dataset{names: slices.Clone(names), index: index, cols: make([][]float64, len(names)), rows: rows},
		written: make([]bool, len(names)),
	}, nil
}

// Set writes the values of the named column.
func (b *Builder) Set(name string, values []float64) error {
	j, ok := b.d.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if b.written[j] {
		return fmt.Errorf("%w: %q", ErrColumnWritten, name)
	}
	if len(values) != b.d.rows {
		return fmt.Errorf("%w: %q has %d rows, want %d", ErrRaggedColumns, name, len(values), b.d.rows)
	}
	b.d.cols[j] = slices.Clone(values)
	b.written[j] = true
	return nil
}

// Select gathers already written columns into a row-major matrix.
func (b *Builder) Select(names []string) (*core.Matrix, error) {
	for _, n := range names {
		if j, ok := b.d.index[n]; ok && !b.written[j] {
			return nil, fmt.Errorf("%w: %q", ErrColumnUnset, n)
		}
	}
	return b.d.Select(names)
}

// Build returns the finished table. Every column must have been written.
func (b *Builder) Build() (*Dataset, error) {
	for j, ok := range b.written {
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrColumnUnset, b.d.names[j])
		}
	}
	d := b.d
	b.d = &Dataset{}
	b.written = nil
	return d, nil
}
