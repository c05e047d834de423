// SPDX-License-Identifier: MIT

package svgpath

import (
	"fmt"

	"honnef.co/go/curve"
)

// arcTolerance is the maximum distance between an elliptical arc and the
// cubics that replace it, in user units.
const arcTolerance = 1e-4

// parser holds the drawing state of one ParsePathData call.
type parser struct {
	lex  lexer
	path curve.BezPath

	cur   curve.Point // current point
	start curve.Point // start of the current subpath
	ctrl  curve.Point // last control point, for S and T reflection
	prev  byte        // previous command, upper-case

	begun  bool // a MoveTo has been seen
	closed bool // the last command was Z; the next draw reopens at start
}

// ParsePathData parses the d attribute of an SVG <path>. Relative commands
// are resolved to absolute coordinates; H and V become lines; S and T become
// cubics and quadratics with reflected control points; arcs are approximated
// by cubics. An empty string yields an empty path.
func ParsePathData(d string) (curve.BezPath, error) {
	p := parser{lex: lexer{src: d}}
	if err := p.run(); err != nil {
		return nil, fmt.Errorf("ParsePathData: %w", err)
	}
	return p.path, nil
}

func (p *parser) run() error {
	var cmd byte
	for !p.lex.done() {
		if c, ok := p.lex.peekCommand(); ok {
			cmd = c
			p.lex.pos++
		} else {
			if cmd == 0 || cmd == 'Z' || cmd == 'z' || !p.lex.peekNumber() {
				return syntaxError(p.lex.pos, "expected command, got %s", p.lex.describe())
			}
			// Implicit repeat: extra coordinates after M are line-tos.
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			}
		}
		if !p.begun && cmd != 'M' && cmd != 'm' {
			return syntaxError(p.lex.pos-1, "path must start with a move-to")
		}
		if err := p.command(cmd); err != nil {
			return err
		}
	}
	return nil
}

// command parses the arguments of one command and appends its elements.
func (p *parser) command(cmd byte) error {
	rel := cmd >= 'a'
	upper := cmd &^ 0x20

	var a [7]float64
	if upper == 'A' {
		if err := p.arcArgs(a[:]); err != nil {
			return err
		}
	} else if err := p.lex.numbers(a[:argCount(upper)]); err != nil {
		return err
	}

	// abs resolves the i-th coordinate pair.
	abs := func(i int) curve.Point {
		if rel {
			return curve.Pt(p.cur.X+a[i], p.cur.Y+a[i+1])
		}
		return curve.Pt(a[i], a[i+1])
	}

	if upper != 'M' && upper != 'Z' {
		p.reopen()
	}

	switch upper {
	case 'M':
		pt := abs(0)
		p.path.MoveTo(pt)
		p.cur, p.start, p.ctrl = pt, pt, pt
		p.begun, p.closed = true, false
	case 'L':
		p.lineTo(abs(0))
	case 'H':
		x := a[0]
		if rel {
			x += p.cur.X
		}
		p.lineTo(curve.Pt(x, p.cur.Y))
	case 'V':
		y := a[0]
		if rel {
			y += p.cur.Y
		}
		p.lineTo(curve.Pt(p.cur.X, y))
	case 'C':
		p.cubicTo(abs(0), abs(2), abs(4))
	case 'S':
		c1 := p.cur
		if p.prev == 'C' || p.prev == 'S' {
			c1 = reflect(p.ctrl, p.cur)
		}
		p.cubicTo(c1, abs(0), abs(2))
	case 'Q':
		p.quadTo(abs(0), abs(2))
	case 'T':
		c := p.cur
		if p.prev == 'Q' || p.prev == 'T' {
			c = reflect(p.ctrl, p.cur)
		}
		p.quadTo(c, abs(0))
	case 'A':
		p.arcTo(a[0], a[1], a[2], a[3] != 0, a[4] != 0, abs(5))
	case 'Z':
		p.path.ClosePath()
		p.cur, p.ctrl = p.start, p.start
		p.closed = true
	}
	p.prev = upper
	return nil
}

// argCount is the number of plain numbers taken by an upper-case command.
func argCount(upper byte) int {
	switch upper {
	case 'H', 'V':
		return 1
	case 'M', 'L', 'T':
		return 2
	case 'S', 'Q':
		return 4
	case 'C':
		return 6
	}
	return 0
}

// arcArgs scans rx ry x-axis-rotation large-arc-flag sweep-flag x y.
func (p *parser) arcArgs(a []float64) error {
	if err := p.lex.numbers(a[:3]); err != nil {
		return err
	}
	for i := 3; i < 5; i++ {
		f, err := p.lex.flag()
		if err != nil {
			return err
		}
		if f {
			a[i] = 1
		}
	}
	return p.lex.numbers(a[5:7])
}

// reopen starts a new subpath at the last start point after Z.
func (p *parser) reopen() {
	if p.closed {
		p.path.MoveTo(p.start)
		p.closed = false
	}
}

func (p *parser) lineTo(pt curve.Point) {
	p.path.LineTo(pt)
	p.cur, p.ctrl = pt, pt
}

func (p *parser) cubicTo(c1, c2, end curve.Point) {
	p.path.CubicTo(c1, c2, end)
	p.cur, p.ctrl = end, c2
}

func (p *parser) quadTo(c, end curve.Point) {
	p.path.QuadTo(c, end)
	p.cur, p.ctrl = end, c
}

// reflect mirrors ctrl through pivot.
func reflect(ctrl, pivot curve.Point) curve.Point {
	return curve.Pt(2*pivot.X-ctrl.X, 2*pivot.Y-ctrl.Y)
}
