package data

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	d, err := ReadCSV(strings.NewReader("a,b\n0,1.5\n1,2.25\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, d.Names())
	b, err := d.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.25}, b)
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = ReadCSV(strings.NewReader("a,b\n1,x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "b"`)

	_, err = ReadCSV(strings.NewReader("a\nNaN\n"))
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("a,b\n1,2\n3\n"))
	assert.Error(t, err)
}

func TestReadCSVHeaderOnly(t *testing.T) {
	d, err := ReadCSV(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 2, d.Width())
}

func TestWriteCSVRoundTrip(t *testing.T) {
	d, err := New([]string{"a", "b"}, [][]float64{{0, 1}, {0.1, 1e6}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, d))
	assert.Equal(t, "a,b\n0,0.1\n1,1e+06\n", buf.String())

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, SaveCSV(path, d))
	back, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, d.Names(), back.Names())
	col, _ := back.Column("b")
	assert.Equal(t, []float64{0.1, 1e6}, col)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
