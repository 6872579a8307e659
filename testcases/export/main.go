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

// Command export writes the vectorized test cases as SVG files, together
// with PNG images of the input masks, for visual inspection.
// Run from the module root directory.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/vectorize"
	"seehuhn.de/go/vectorize/testcases"
)

const outDir = "testdata"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(tc testcases.TestCase, name string) error {
	m, err := vectorize.ParseMask(tc.Rows...)
	if err != nil {
		return err
	}

	v := vectorize.NewVectorizer()
	v.Connectivity = vectorize.Connectivity(tc.Connectivity())
	doc, err := v.VectorizeMask(m)
	if err != nil {
		return err
	}

	if err := writeFile(filepath.Join(outDir, name+".svg"), func(f *os.File) error {
		return vectorize.WriteSVG(f, doc)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(outDir, name+".png"), func(f *os.File) error {
		return png.Encode(f, m.Image())
	})
}

func writeFile(fname string, write func(*os.File) error) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
