// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/cmplx"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/katalvlaran/epicycle/fourier"
	"github.com/katalvlaran/epicycle/render"
	"github.com/katalvlaran/epicycle/sheet"
	"github.com/katalvlaran/epicycle/signal"
	"github.com/katalvlaran/epicycle/svgpath"
)

// period is the parameter range of every curve.
const period = fourier.DefaultPeriod

// run is main without the process exit, for tests.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log := newLogger(stderr, cfg.verbose)

	name, f, err := source(cfg, log)
	if err != nil {
		return err
	}

	start := time.Now()
	s, err := fourier.Decompose(f, period, cfg.terms, cfg.steps,
		fourier.WithWorkers(cfg.workers), fourier.WithContext(ctx))
	if err != nil {
		return err
	}
	log.Info("coefficients computed",
		"terms", s.Terms(), "steps", s.Steps(), "workers", cfg.workers, "elapsed", time.Since(start))

	if cfg.print {
		printSeries(stdout, s)
	}

	if cfg.xlsx != "" {
		if err := sheet.SaveAs(cfg.xlsx, s); err != nil {
			return err
		}
		log.Info("spreadsheet written", "path", cfg.xlsx)
	}

	if !cfg.render {
		summarize(stdout, name, s)
		return nil
	}
	return renderSeries(ctx, cfg, log, name, s)
}

// newLogger logs text to terminals and JSON elsewhere.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// source returns the output base name and the curve to decompose.
func source(cfg config, log *slog.Logger) (string, fourier.SamplingFunc, error) {
	if cfg.input == "" {
		f, err := shape(cfg.shape)
		if err != nil {
			return "", nil, err
		}
		log.Debug("built-in shape", "shape", cfg.shape)
		return cfg.shape, f, nil
	}

	file, err := os.Open(cfg.input)
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	doc, err := svgpath.ParseDocument(file)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", cfg.input, err)
	}
	sampler, err := doc.Sampler()
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", cfg.input, err)
	}
	f, err := sampler.Func(period)
	if err != nil {
		return "", nil, err
	}
	log.Info("input parsed",
		"path", cfg.input, "width", doc.Width, "height", doc.Height,
		"segments", sampler.Segments(), "length", sampler.Length())

	// The base name ends at the first dot: "cat.min.svg" renders "cat".
	name, _, _ := strings.Cut(filepath.Base(cfg.input), ".")
	return name, f, nil
}

// shape builds a built-in curve.
func shape(name string) (fourier.SamplingFunc, error) {
	switch name {
	case "circle":
		return signal.Circle(period)
	case "line":
		return signal.Line(period)
	case "square":
		return signal.Square(period)
	case "ellipse":
		return signal.Ellipse(2, 1, period)
	case "pulse":
		return signal.Pulse(period)
	}
	return nil, fmt.Errorf("%w: unknown shape %q", errUsage, name)
}

// printSeries prints every coefficient, then every table row.
func printSeries(w io.Writer, s *fourier.Series) {
	for _, line := range fourier.FormatCoefficients(s.Coefficients) {
		fmt.Fprintln(w, line)
	}
	for _, row := range fourier.FormatTable(s.Table) {
		fmt.Fprintf(w, "[%s]\n", strings.Join(row, ", "))
	}
}

// summarize prints a one-line description and the strongest arms.
func summarize(w io.Writer, name string, s *fourier.Series) {
	fmt.Fprintf(w, "%s: %d terms, %d steps, period %.4f\n", name, s.Terms(), s.Steps(), s.Period)
	for n, c := range s.Coefficients {
		if n >= 5 {
			break
		}
		fmt.Fprintf(w, "  c_%d = %s  |c_%d| = %.4f\n", n, fourier.FormatCoefficients([]complex128{c})[0], n, cmplx.Abs(c))
	}
}

// renderSeries draws steps·cycles frames and writes them in cfg.format.
func renderSeries(ctx context.Context, cfg config, log *slog.Logger, name string, s *fourier.Series) error {
	opts := []render.Option{
		render.WithSize(cfg.width, cfg.height),
		render.WithWorkers(cfg.workers),
		render.WithContext(ctx),
	}
	if cfg.label {
		opts = append(opts, render.WithLabel())
	}

	start := time.Now()
	frames, err := render.New(opts...).Frames(s, cfg.cycles)
	if err != nil {
		return err
	}
	log.Debug("frames rendered", "frames", len(frames), "elapsed", time.Since(start))

	switch cfg.format {
	case render.FormatPNG:
		paths, err := render.WritePNGs(cfg.outputDir, name, frames)
		if err != nil {
			return err
		}
		log.Info("frames written", "dir", cfg.outputDir, "files", len(paths))
	default:
		path := filepath.Join(cfg.outputDir, name+".gif")
		if err := render.SaveGIF(path, frames, render.DelayForFPS(cfg.fps)); err != nil {
			return err
		}
		log.Info("animation written", "path", path, "frames", len(frames))
	}
	return nil
}
