// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"slices"

	"github.com/katalvlaran/epicycle/fourier"
	"github.com/katalvlaran/epicycle/render"
)

// Built-in shapes accepted by -shape.
var shapes = []string{"circle", "line", "square", "ellipse", "pulse"}

// config is the parsed command line.
type config struct {
	input      string
	shape      string
	terms      int
	steps      int
	cycles     int
	render     bool
	renderType string
	format     render.Format
	outputDir  string
	xlsx       string
	print      bool
	workers    int
	width      int
	height     int
	fps        float64
	label      bool
	verbose    bool
}

var errUsage = errors.New("usage")

// parseFlags reads args into a config. Usage and flag errors go to stderr.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("epicycles", flag.ContinueOnError)
	fs.SetOutput(stderr)

	both := func(p *string, short, long, value, usage string) {
		fs.StringVar(p, short, value, usage)
		fs.StringVar(p, long, value, usage)
	}
	bothInt := func(p *int, short, long string, value int, usage string) {
		fs.IntVar(p, short, value, usage)
		fs.IntVar(p, long, value, usage)
	}
	bothBool := func(p *bool, short, long, usage string) {
		fs.BoolVar(p, short, false, usage)
		fs.BoolVar(p, long, false, usage)
	}

	both(&c.input, "i", "input-file-path", "", "the path to the input svg")
	fs.StringVar(&c.shape, "shape", "", fmt.Sprintf("built-in curve when no svg is given %v", shapes))
	bothInt(&c.terms, "n", "num-terms", fourier.DefaultTerms, "the number of Fourier coefficient terms to compute")
	bothInt(&c.steps, "s", "steps", fourier.DefaultSteps, "the number of steps to render")
	bothInt(&c.cycles, "c", "cycles", fourier.DefaultCycles, "the number of animation cycles")
	bothBool(&c.render, "r", "render", "render the animation to the output directory")
	both(&c.renderType, "t", "render-type", string(render.FormatGIF), "the output type: gif or png")
	both(&c.outputDir, "o", "output-dir", "output", "the output directory")
	both(&c.xlsx, "x", "xlsx", "", "also export the series to this xlsx file")
	bothBool(&c.print, "p", "print", "print the coefficients and the term table")
	bothInt(&c.workers, "w", "workers", runtime.NumCPU(), "goroutines used for computing and rendering")
	fs.IntVar(&c.width, "width", render.DefaultWidth, "frame width in pixels")
	fs.IntVar(&c.height, "height", render.DefaultHeight, "frame height in pixels")
	fs.Float64Var(&c.fps, "fps", 60, "animation frames per second")
	fs.BoolVar(&c.label, "label", false, "print the frame number on every frame")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		return c, fmt.Errorf("%w: unexpected arguments %q", errUsage, fs.Args())
	}
	if err := c.validate(); err != nil {
		return c, err
	}
	return c, nil
}

// validate rejects inconsistent settings before any work starts.
func (c *config) validate() error {
	switch {
	case c.input == "" && c.shape == "":
		return fmt.Errorf("%w: -i or -shape is required", errUsage)
	case c.input != "" && c.shape != "":
		return fmt.Errorf("%w: -i and -shape are exclusive", errUsage)
	case c.shape != "" && !slices.Contains(shapes, c.shape):
		return fmt.Errorf("%w: unknown shape %q, want one of %v", errUsage, c.shape, shapes)
	case c.terms < 0:
		return fmt.Errorf("%w: -n must be ≥ 0", errUsage)
	case c.steps < 1:
		return fmt.Errorf("%w: -s must be ≥ 1", errUsage)
	case c.cycles < 1:
		return fmt.Errorf("%w: -c must be ≥ 1", errUsage)
	case c.workers < 1:
		return fmt.Errorf("%w: -w must be ≥ 1", errUsage)
	case c.width < 1 || c.height < 1:
		return fmt.Errorf("%w: -width and -height must be ≥ 1", errUsage)
	case !(c.fps > 0):
		return fmt.Errorf("%w: -fps must be > 0", errUsage)
	}

	if !c.render {
		return nil
	}
	f, err := render.ParseFormat(c.renderType)
	if err != nil {
		return err
	}
	c.format = f
	return nil
}
