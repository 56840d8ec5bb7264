package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramsWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bp.png")
	err := Histograms(path, "bp", 5,
		Series{Label: "real", Values: []float64{1, 2, 2, 3, 4}},
		Series{Label: "synthetic", Values: []float64{1, 1, 2, 3, 5}},
	)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestHistogramsBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "bp.png")
	err := Histograms(path, "bp", 5, Series{Label: "real", Values: []float64{1, 2, 3}})
	assert.Error(t, err)
}
