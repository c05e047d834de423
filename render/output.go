// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// Format is an output container.
type Format string

// Supported formats.
const (
	FormatGIF Format = "gif"
	FormatPNG Format = "png"
)

// ParseFormat accepts "gif" and "png", case-insensitively. Anything else,
// mp4 included, yields ErrUnsupportedFormat.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatGIF, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnsupportedFormat)
}

// DelayForFPS converts frames per second into a GIF delay in 1/100 s,
// never below 1.
func DelayForFPS(fps float64) int {
	if !(fps > 0) {
		return 0
	}
	return max(1, int(math.Round(100/fps)))
}

// WriteGIF encodes frames as a looping GIF with a fixed per-frame delay.
func WriteGIF(w io.Writer, frames []*image.Paletted, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("WriteGIF: %w", ErrNoFrames)
	}
	if delay < 0 {
		return fmt.Errorf("WriteGIF: %w", ErrBadDelay)
	}
	delays := make([]int, len(frames))
	for i := range delays {
		delays[i] = delay
	}
	if err := gif.EncodeAll(w, &gif.GIF{Image: frames, Delay: delays}); err != nil {
		return fmt.Errorf("WriteGIF: %w", err)
	}
	return nil
}

// SaveGIF creates path and writes the GIF into it.
func SaveGIF(path string, frames []*image.Paletted, delay int) (err error) {
	if len(frames) == 0 {
		return fmt.Errorf("SaveGIF: %w", ErrNoFrames)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("SaveGIF: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveGIF: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("SaveGIF: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := WriteGIF(bw, frames, delay); err != nil {
		return err
	}
	return bw.Flush()
}

// PNGName is the file name of frame i: base_00042.png.
func PNGName(base string, i int) string {
	return fmt.Sprintf("%s_%05d.png", base, i)
}

// WritePNGs writes every frame to dir as PNGName(base, i) and returns the
// paths written, in frame order.
func WritePNGs(dir, base string, frames []*image.Paletted) ([]string, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("WritePNGs: %w", ErrNoFrames)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("WritePNGs: %w", err)
	}
	paths := make([]string, 0, len(frames))
	for i, fr := range frames {
		p := filepath.Join(dir, PNGName(base, i))
		if err := writePNG(p, fr); err != nil {
			return paths, fmt.Errorf("WritePNGs: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
