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

// Package vectorize converts raster images into filled vector outlines.
//
// The pipeline has three steps, each available on its own:
//
//   - [GridFromImage] reduces an image to 8-bit luminance.
//   - [Binarize] turns the luminance grid into a foreground [Mask].
//   - [Tracer] follows the outer boundary of every connected foreground
//     region and returns one closed [Contour] per region.
//
// The contours are collected in a [Document], which can be written as SVG
// ([WriteSVG]) or PDF ([WritePDF]), rendered for preview, or filled back into
// a mask ([Document.Rasterize]) to check that no pixel was lost.
//
// Holes inside regions are not represented; a region is always drawn as
// the full area enclosed by its outer boundary.
package vectorize

//go:generate go run ./testcases/export
