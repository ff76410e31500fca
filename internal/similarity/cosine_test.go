package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine_IdenticalVectors(t *testing.T) {
	v := []float32{0.3, -0.5, 0.8, 0.1}
	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_OppositeVectors(t *testing.T) {
	u := []float32{1, 2, 3}
	v := []float32{-1, -2, -3}
	assert.InDelta(t, -1.0, Cosine(u, v), 1e-9)
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	u := []float32{1, 0}
	v := []float32{0, 1}
	assert.InDelta(t, 0.0, Cosine(u, v), 1e-9)
}

func TestCosine_ZeroVector(t *testing.T) {
	u := []float32{0, 0, 0}
	v := []float32{0.5, 0.5, 0.5}

	// Undefined cosine collapses to 0 instead of NaN.
	assert.Equal(t, 0.0, Cosine(u, v))
	assert.Equal(t, 0.0, Cosine(v, u))
	assert.Equal(t, 0.0, Cosine(u, u))
}

func TestCosine_ScaleInvariant(t *testing.T) {
	u := []float32{1, 2, 3}
	v := []float32{10, 20, 30}
	assert.InDelta(t, 1.0, Cosine(u, v), 1e-6)
}

func TestMatrix_Dimensions(t *testing.T) {
	a := [][]float32{{1, 0}, {0, 1}, {1, 1}}
	b := [][]float32{{1, 0}, {0, 1}}

	m := Matrix(a, b)
	require.Len(t, m, 3)
	for _, row := range m {
		require.Len(t, row, 2)
	}

	assert.InDelta(t, 1.0, m[0][0], 1e-9)
	assert.InDelta(t, 0.0, m[0][1], 1e-9)
	assert.InDelta(t, 0.0, m[1][0], 1e-9)
	assert.InDelta(t, 1.0, m[1][1], 1e-9)
}

func TestMatrix_EmptyInputs(t *testing.T) {
	assert.Empty(t, Matrix(nil, [][]float32{{1}}))

	m := Matrix([][]float32{{1}}, nil)
	require.Len(t, m, 1)
	assert.Empty(t, m[0])
}

func TestArgMax(t *testing.T) {
	tests := []struct {
		name      string
		row       []float64
		wantIdx   int
		wantValue float64
	}{
		{"single element", []float64{0.4}, 0, 0.4},
		{"max in middle", []float64{0.1, 0.9, 0.5}, 1, 0.9},
		{"tie broken by first index", []float64{0.7, 0.7, 0.2}, 0, 0.7},
		{"all negative", []float64{-0.5, -0.1, -0.9}, 1, -0.1},
		{"empty row", nil, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, val := ArgMax(tt.row)
			assert.Equal(t, tt.wantIdx, idx)
			assert.Equal(t, tt.wantValue, val)
		})
	}
}
