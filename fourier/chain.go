// SPDX-License-Identifier: MIT

package fourier

// CumulativeChain turns one table row into the vertex chain of the epicycle
// drawing:
//
//	X[0] = 0, X[k] = X[k-1] + real(row[k-1])   k = 1..len(row)
//	Y[0] = 0, Y[k] = Y[k-1] + imag(row[k-1])
//
// Both slices have len(row)+1 elements; an empty row yields X = Y = [0].
// Sums run strictly left to right, so X[len(row)] equals the sequential sum of
// the real parts.
//
// Complexity: O(len(row)) time and memory.
func CumulativeChain(row []complex128) Chain {
	xs := make([]float64, len(row)+1)
	ys := make([]float64, len(row)+1)
	for k, z := range row {
		xs[k+1] = xs[k] + real(z)
		ys[k+1] = ys[k] + imag(z)
	}

	return Chain{X: xs, Y: ys}
}

// Chains derives the chain of every row of table, independently and in row
// order. Rows differ, so nothing is shared between them.
//
// Complexity: O(steps·totalTerms).
func Chains(table Table) []Chain {
	out := make([]Chain, len(table))
	for j, row := range table {
		out[j] = CumulativeChain(row)
	}
	return out
}
