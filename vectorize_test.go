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

package vectorize

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func TestVectorizeImage(t *testing.T) {
	// dark background with a bright 2x2 square and a bright dot
	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := range 4 {
		for x := range 6 {
			img.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	for _, p := range []image.Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {5, 3}} {
		img.SetNRGBA(p.X, p.Y, color.NRGBA{R: 250, G: 240, B: 230, A: 255})
	}

	doc, err := NewVectorizer().Vectorize(img)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Width() != 6 || doc.Height() != 4 {
		t.Errorf("canvas %dx%d, want 6x4", doc.Width(), doc.Height())
	}
	want := []Contour{
		{{1, 1}, {1, 2}, {2, 2}, {2, 1}},
		{{5, 3}},
	}
	got := doc.Contours()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("contour %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if doc.Points() != 5 {
		t.Errorf("got %d points, want 5", doc.Points())
	}

	// with inversion the background becomes a single region covering
	// everything but the bright pixels
	v := NewVectorizer()
	v.Invert = true
	doc, err = v.Vectorize(img)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 1 || doc.Contours()[0].Bounds() != image.Rect(0, 0, 6, 4) {
		t.Errorf("inverted: got %v", doc.Contours())
	}
}

func TestVectorizeDiagonalCorners(t *testing.T) {
	g, _ := NewGrid(3, 3, []uint8{
		255, 0, 0,
		0, 0, 0,
		0, 0, 255,
	})
	doc, err := NewVectorizer().VectorizeGrid(g)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 2 {
		t.Fatalf("got %d contours, want 2", doc.Len())
	}
	for i, want := range []image.Point{{0, 0}, {2, 2}} {
		c := doc.Contours()[i]
		if len(c) != 1 || c[0] != want {
			t.Errorf("contour %d: got %v, want [%v]", i, c, want)
		}
	}
}

func TestVectorizeEmpty(t *testing.T) {
	g, _ := NewGrid(4, 3, make([]uint8, 12))
	doc, err := NewVectorizer().VectorizeGrid(g)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 0 {
		t.Errorf("got %d contours, want 0", doc.Len())
	}
	if doc.Rasterize().Count() != 0 {
		t.Error("empty document fills pixels")
	}
}

func TestVectorizeInvalid(t *testing.T) {
	m, _ := ParseMask("#")

	v := NewVectorizer()
	v.Connectivity = 6
	if _, err := v.VectorizeMask(m); !errors.Is(err, ErrConnectivity) {
		t.Errorf("got %v, want ErrConnectivity", err)
	}

	v = NewVectorizer()
	v.Chain = Chain(5)
	if _, err := v.VectorizeMask(m); !errors.Is(err, ErrChain) {
		t.Errorf("got %v, want ErrChain", err)
	}

	v = NewVectorizer()
	if _, err := v.VectorizeMask(nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("got %v, want ErrInvalidDimensions", err)
	}
	if _, err := v.Vectorize(image.NewGray(image.Rectangle{})); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("got %v, want ErrInvalidDimensions", err)
	}
}

func TestVectorizeLogs(t *testing.T) {
	var buf bytes.Buffer
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	m, _ := ParseMask("##.", "...", "..#")
	if _, err := NewVectorizer().VectorizeMask(m); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"traced mask", "foreground=3", "contours=2", "points=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger is enabled for %v", level)
		}
	}
}
