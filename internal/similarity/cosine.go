// Package similarity provides pure cosine-similarity computations over
// embedding vectors.
package similarity

import "math"

// Cosine returns the cosine similarity between u and v:
// dot(u,v) / (|u| * |v|), in [-1, 1]. A zero vector on either side yields 0
// rather than NaN, since the cosine is undefined there. Vectors of unequal
// length are compared over the shorter prefix.
func Cosine(u, v []float32) float64 {
	n := len(u)
	if len(v) < n {
		n = len(v)
	}

	var dot, normU, normV float64
	for i := 0; i < n; i++ {
		dot += float64(u[i]) * float64(v[i])
		normU += float64(u[i]) * float64(u[i])
		normV += float64(v[i]) * float64(v[i])
	}

	if normU == 0 || normV == 0 {
		return 0
	}

	return dot / (math.Sqrt(normU) * math.Sqrt(normV))
}

// Matrix computes the pairwise cosine similarity between two vector sets,
// returning a len(a) x len(b) matrix where cell [i][j] is Cosine(a[i], b[j]).
func Matrix(a, b [][]float32) [][]float64 {
	m := make([][]float64, len(a))
	for i, u := range a {
		row := make([]float64, len(b))
		for j, v := range b {
			row[j] = Cosine(u, v)
		}
		m[i] = row
	}
	return m
}

// ArgMax returns the index and value of the maximum entry in row. Ties are
// broken by the lowest index so results are deterministic. An empty row
// returns (-1, 0).
func ArgMax(row []float64) (int, float64) {
	if len(row) == 0 {
		return -1, 0
	}
	best := 0
	for j := 1; j < len(row); j++ {
		if row[j] > row[best] {
			best = j
		}
	}
	return best, row[best]
}
