// SPDX-License-Identifier: MIT

package fourier

import "fmt"

// FormatCoefficients renders each coefficient as "(re + imi)" with two
// decimals, one string per coefficient.
func FormatCoefficients(coefficients []complex128) []string {
	out := make([]string, len(coefficients))
	for n, c := range coefficients {
		out[n] = fmt.Sprintf("(%.2f + %.2fi)", real(c), imag(c))
	}
	return out
}

// FormatTable renders every term of every row as "(re, im)" with two
// decimals, preserving the table shape.
func FormatTable(table Table) [][]string {
	out := make([][]string, len(table))
	for j, row := range table {
		line := make([]string, len(row))
		for n, term := range row {
			line[n] = fmt.Sprintf("(%.2f, %.2f)", real(term), imag(term))
		}
		out[j] = line
	}
	return out
}
