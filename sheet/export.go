// SPDX-License-Identifier: MIT

package sheet

import (
	"fmt"
	"io"
	"math/cmplx"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/epicycle/fourier"
)

// Sheet names, in workbook order.
const (
	SheetCoefficients = "coefficients"
	SheetTerms        = "terms"
	SheetChain        = "chain"
)

// defaultSheet is the sheet every new excelize workbook starts with.
const defaultSheet = "Sheet1"

// Export writes the workbook for s to w.
func Export(w io.Writer, s *fourier.Series, opts ...Option) (err error) {
	f, err := build(s, gatherOptions(opts...))
	if err != nil {
		return fmt.Errorf("Export: %w", err)
	}
	defer closeFile(f, &err)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("Export: %w", err)
	}
	return nil
}

// SaveAs writes the workbook for s to path.
func SaveAs(path string, s *fourier.Series, opts ...Option) (err error) {
	f, err := build(s, gatherOptions(opts...))
	if err != nil {
		return fmt.Errorf("SaveAs: %w", err)
	}
	defer closeFile(f, &err)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("SaveAs: %w", err)
	}
	return nil
}

func closeFile(f *excelize.File, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

// build assembles the workbook in memory.
func build(s *fourier.Series, o options) (*excelize.File, error) {
	if s == nil {
		return nil, ErrNilSeries
	}
	f := excelize.NewFile()
	ok := false
	defer func() {
		if !ok {
			_ = f.Close()
		}
	}()

	if err := f.SetSheetName(defaultSheet, SheetCoefficients); err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := writeSheet(f, SheetCoefficients, header, coefficientRows(s)); err != nil {
		return nil, err
	}
	if o.terms {
		if _, err := f.NewSheet(SheetTerms); err != nil {
			return nil, err
		}
		if err := writeSheet(f, SheetTerms, header, termRows(s)); err != nil {
			return nil, err
		}
	}
	if _, err := f.NewSheet(SheetChain); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetChain, header, chainRows(s)); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	ok = true
	return f, nil
}

// rows yields a header followed by data rows.
type rows struct {
	header []string
	count  int
	row    func(i int) []interface{}
}

// writeSheet streams r into sheet with a bold, frozen header.
func writeSheet(f *excelize.File, sheet string, headerStyle int, r rows) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	if err := sw.SetPanes(&excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	head := make([]interface{}, len(r.header))
	for i, h := range r.header {
		head[i] = excelize.Cell{StyleID: headerStyle, Value: h}
	}
	if err := sw.SetRow("A1", head); err != nil {
		return err
	}
	for i := 0; i < r.count; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, r.row(i)); err != nil {
			return err
		}
	}
	return sw.Flush()
}

func coefficientRows(s *fourier.Series) rows {
	return rows{
		header: []string{"n", "re", "im", "abs", "arg"},
		count:  len(s.Coefficients),
		row: func(n int) []interface{} {
			c := s.Coefficients[n]
			return []interface{}{n, real(c), imag(c), cmplx.Abs(c), cmplx.Phase(c)}
		},
	}
}

func termRows(s *fourier.Series) rows {
	terms := s.Terms()
	header := make([]string, 0, 1+2*terms)
	header = append(header, "t")
	for n := 0; n < terms; n++ {
		header = append(header, fmt.Sprintf("re_%d", n), fmt.Sprintf("im_%d", n))
	}
	times := fourier.SampleTimes(s.Period, s.Steps())
	return rows{
		header: header,
		count:  s.Steps(),
		row: func(j int) []interface{} {
			out := make([]interface{}, 0, 1+2*len(s.Table[j]))
			out = append(out, times[j])
			for _, z := range s.Table[j] {
				out = append(out, real(z), imag(z))
			}
			return out
		},
	}
}

func chainRows(s *fourier.Series) rows {
	chains := s.Chains()
	times := fourier.SampleTimes(s.Period, s.Steps())
	return rows{
		header: []string{"j", "t", "x", "y"},
		count:  len(chains),
		row: func(j int) []interface{} {
			tip := chains[j].Tip()
			return []interface{}{j, times[j], real(tip), imag(tip)}
		},
	}
}
