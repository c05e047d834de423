// SPDX-License-Identifier: MIT

// epicycles decomposes a closed curve into rotating arms and optionally
// renders the drawing as an animated GIF or a PNG sequence.
//
// Usage:
//
//	epicycles -i drawing.svg [options]
//	epicycles -shape square [options]
//
// Options:
//
//	-i, -input-file-path string  SVG file to trace
//	-shape string                built-in curve when no SVG is given:
//	                             circle, line, square, ellipse, pulse
//	-n, -num-terms int           number of Fourier terms (default 1000)
//	-s, -steps int               samples per period (default 1000)
//	-c, -cycles int              animation cycles (default 1)
//	-r, -render                  render the animation
//	-t, -render-type string      gif or png (default "gif")
//	-o, -output-dir string       output directory (default "output")
//	-x, -xlsx string             also export coefficients to this XLSX file
//	-p, -print                   print coefficients and the term table
//	-w, -workers int             goroutines (default: number of CPUs)
//	-width, -height int          frame size in pixels (default 640x480)
//	-fps float                   animation speed (default 60)
//	-label                       print the frame number on every frame
//	-v                           debug logging
//
// Examples:
//
//	# Render output/cat.gif from cat.svg with 200 terms
//	epicycles -i cat.svg -n 200 -r
//
//	# Inspect the spectrum of a square in a spreadsheet
//	epicycles -shape square -n 64 -s 512 -x square.xlsx
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	ossignal "os/signal"
)

func main() {
	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "epicycles: %v\n", err)
		os.Exit(1)
	}
}
