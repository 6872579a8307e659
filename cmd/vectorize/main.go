// seehuhn.de/go/vectorize - trace raster images into vector outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command vectorize converts a raster image into an SVG outline drawing.
//
// Usage:
//
//	vectorize [flags] input.png
//
// The SVG is written to standard output unless -o is given. PNG, JPEG, GIF,
// BMP, TIFF and WebP input is supported.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/vectorize"
)

// config holds the command line settings.
type config struct {
	threshold int
	invert    bool
	conn      int
	chain     string
	output    string
	pdfOut    string
	pngOut    string
	verify    bool
	verbose   bool
	input     string
}

var errLostPixels = errors.New("outlines do not cover all foreground pixels")

func main() {
	var cfg config
	flag.IntVar(&cfg.threshold, "threshold", vectorize.DefaultThreshold, "luminance cut point (0-255)")
	flag.BoolVar(&cfg.invert, "invert", false, "treat dark pixels as foreground")
	flag.IntVar(&cfg.conn, "conn", 8, "pixel connectivity, 4 or 8")
	flag.StringVar(&cfg.chain, "chain", "simple", "contour points: simple or none")
	flag.StringVar(&cfg.output, "o", "", "SVG output file (default stdout)")
	flag.StringVar(&cfg.pdfOut, "pdf", "", "also write a PDF file")
	flag.StringVar(&cfg.pngOut, "png", "", "also write a PNG preview")
	flag.BoolVar(&cfg.verify, "verify", false, "check that the outlines cover every foreground pixel")
	flag.BoolVar(&cfg.verbose, "v", false, "log progress to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] input\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.input = flag.Arg(0)

	if cfg.verbose {
		vectorize.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("vectorize: %v", err)
	}
}

func run(cfg config, stdout io.Writer) error {
	v := vectorize.NewVectorizer()
	v.Threshold = cfg.threshold
	v.Invert = cfg.invert
	v.Connectivity = vectorize.Connectivity(cfg.conn)
	switch cfg.chain {
	case "simple":
		v.Chain = vectorize.ChainSimple
	case "none":
		v.Chain = vectorize.ChainNone
	default:
		return fmt.Errorf("%w: %q", vectorize.ErrChain, cfg.chain)
	}

	img, err := decode(cfg.input)
	if err != nil {
		return err
	}
	g, err := vectorize.GridFromImage(img)
	if err != nil {
		return err
	}
	m, err := vectorize.Binarize(g, v.Threshold, v.Invert)
	if err != nil {
		return err
	}
	doc, err := v.VectorizeMask(m)
	if err != nil {
		return err
	}

	if cfg.verify {
		filled := doc.Rasterize()
		if !filled.Covers(m) {
			return errLostPixels
		}
		vectorize.Logger().Info("verified outlines",
			slog.Int("foreground", m.Count()),
			slog.Int("filled", filled.Count()))
	}

	if cfg.output == "" {
		if err := vectorize.WriteSVG(stdout, doc); err != nil {
			return err
		}
	} else if err := writeFile(cfg.output, func(w io.Writer) error {
		return vectorize.WriteSVG(w, doc)
	}); err != nil {
		return err
	}

	if cfg.pdfOut != "" {
		if err := vectorize.WritePDF(cfg.pdfOut, doc); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.pdfOut, err)
		}
	}
	if cfg.pngOut != "" {
		if err := writeFile(cfg.pngOut, func(w io.Writer) error {
			return png.Encode(w, doc.Preview())
		}); err != nil {
			return err
		}
	}
	return nil
}

func decode(fname string) (image.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", fname, err)
	}
	return img, nil
}

func writeFile(fname string, write func(io.Writer) error) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return nil
}
