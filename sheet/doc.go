// SPDX-License-Identifier: MIT

// Package sheet exports a decomposed series to an XLSX workbook, so the
// coefficients and the epicycle table can be inspected in a spreadsheet.
//
// Sheets:
//   - coefficients — n, re, im, |c_n|, arg c_n.
//   - terms        — one row per sample time: t_j, then re/im of every term.
//   - chain        — one row per sample time: j, t_j and the chain tip x, y.
//
// The terms sheet holds steps × 2N numbers and can be skipped with
// WithoutTerms. Rows are streamed, so memory stays flat for large tables.
package sheet
