// SPDX-License-Identifier: MIT

package svgpath

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/curve"

	"github.com/katalvlaran/epicycle/fourier"
)

// svgNamespace is the XML namespace of SVG elements.
const svgNamespace = "http://www.w3.org/2000/svg"

// Document is the part of an SVG file the epicycle drawing needs.
type Document struct {
	// Width and Height are the 3rd and 4th viewBox numbers, truncated.
	Width, Height int
	// Data is every <path d> in document order, concatenated.
	Data string
}

// ParseDocument reads an SVG document. The root element must carry a
// viewBox; path elements must be in the SVG namespace or in no namespace.
func ParseDocument(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}
	var (
		root  = true
		parts []string
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ParseDocument: %w", err)
		}
		el, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if root {
			root = false
			if doc.Width, doc.Height, err = viewBoxSize(el); err != nil {
				return nil, fmt.Errorf("ParseDocument: %w", err)
			}
			continue
		}
		if el.Name.Local != "path" || (el.Name.Space != svgNamespace && el.Name.Space != "") {
			continue
		}
		if d, ok := attr(el, "d"); ok {
			parts = append(parts, d)
		}
	}
	if root {
		return nil, fmt.Errorf("ParseDocument: %w", ErrNoViewBox)
	}
	doc.Data = strings.Join(parts, "")
	if strings.TrimSpace(doc.Data) == "" {
		return nil, fmt.Errorf("ParseDocument: %w", ErrNoPath)
	}
	return doc, nil
}

// viewBoxSize reads "min-x min-y width height" from the root element.
func viewBoxSize(el xml.StartElement) (int, int, error) {
	vb, ok := attr(el, "viewBox")
	if !ok {
		return 0, 0, ErrNoViewBox
	}
	fields := strings.FieldsFunc(vb, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) < 4 {
		return 0, 0, fmt.Errorf("%w: %q", ErrNoViewBox, vb)
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrNoViewBox, vb)
	}
	h, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrNoViewBox, vb)
	}
	return int(w), int(h), nil
}

func attr(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}

// Offset is width + height·i, the shift added by Func.
func (d *Document) Offset() complex128 {
	return complex(float64(d.Width), float64(d.Height))
}

// Path parses the concatenated path data.
func (d *Document) Path() (curve.BezPath, error) {
	return ParsePathData(d.Data)
}

// Sampler builds a sampler over the document path, shifted by Offset.
// Later options override the offset.
func (d *Document) Sampler(opts ...Option) (*Sampler, error) {
	path, err := d.Path()
	if err != nil {
		return nil, err
	}
	return NewSampler(path, append([]Option{WithOffset(d.Offset())}, opts...)...)
}

// Func is Sampler followed by Sampler.Func.
func (d *Document) Func(period float64, opts ...Option) (fourier.SamplingFunc, error) {
	s, err := d.Sampler(opts...)
	if err != nil {
		return nil, err
	}
	return s.Func(period)
}
