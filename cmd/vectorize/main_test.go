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

package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/vectorize"
)

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8, 6))
	for y := 1; y < 5; y++ {
		for x := 2; x < 6; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	fname := filepath.Join(dir, "in.png")
	f, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		threshold: 128,
		conn:      8,
		chain:     "simple",
		verify:    true,
		pdfOut:    filepath.Join(dir, "out.pdf"),
		pngOut:    filepath.Join(dir, "out.png"),
		input:     writeTestPNG(t, dir),
	}

	var buf bytes.Buffer
	if err := run(cfg, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `viewBox="0 0 8 6"`) {
		t.Errorf("missing viewBox in %q", out)
	}
	if !strings.Contains(out, `d="M 2,1 L 2,4 L 5,4 L 5,1 Z"`) {
		t.Errorf("unexpected path data in %q", out)
	}

	for _, fname := range []string{cfg.pdfOut, cfg.pngOut} {
		if _, err := os.Stat(fname); err != nil {
			t.Error(err)
		}
	}
}

func TestRunOutputFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		threshold: 128,
		invert:    true,
		conn:      4,
		chain:     "none",
		output:    filepath.Join(dir, "out.svg"),
		input:     writeTestPNG(t, dir),
	}

	var buf bytes.Buffer
	if err := run(cfg, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output on stdout: %q", buf.String())
	}
	data, err := os.ReadFile(cfg.output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("<svg ")) {
		t.Errorf("output is not SVG: %q", data)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir)

	cfg := config{threshold: 128, conn: 8, chain: "fancy", input: input}
	if err := run(cfg, &bytes.Buffer{}); !errors.Is(err, vectorize.ErrChain) {
		t.Errorf("bad chain: got %v", err)
	}

	cfg = config{threshold: 128, conn: 6, chain: "simple", input: input}
	if err := run(cfg, &bytes.Buffer{}); !errors.Is(err, vectorize.ErrConnectivity) {
		t.Errorf("bad connectivity: got %v", err)
	}

	cfg = config{threshold: 128, conn: 8, chain: "simple", input: filepath.Join(dir, "missing.png")}
	if err := run(cfg, &bytes.Buffer{}); err == nil {
		t.Error("missing input: no error")
	}
}
