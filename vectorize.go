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
	"context"
	"image"
	"log/slog"
)

// DefaultThreshold is the default binarization cut point.
const DefaultThreshold = 128

// Vectorizer runs the complete pipeline: luminance conversion,
// binarization, contour tracing. Create one instance and reuse it for
// multiple images.
//
// A Vectorizer is not safe for concurrent use. Use one per goroutine.
type Vectorizer struct {
	// Threshold is the luminance at and above which a pixel is foreground.
	Threshold int

	// Invert makes pixels below Threshold the foreground.
	Invert bool

	// Connectivity is Conn8 or Conn4.
	Connectivity Connectivity

	// Chain selects the contour point reduction.
	Chain Chain

	tracer Tracer
}

// NewVectorizer returns a Vectorizer with threshold 128, bright foreground,
// 8-connectivity and simple chain approximation.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		Threshold:    DefaultThreshold,
		Connectivity: Conn8,
		Chain:        ChainSimple,
	}
}

// Vectorize converts img into a vector document of the same size.
func (v *Vectorizer) Vectorize(img image.Image) (*Document, error) {
	g, err := GridFromImage(img)
	if err != nil {
		return nil, err
	}
	return v.VectorizeGrid(g)
}

// VectorizeGrid converts a luminance grid into a vector document.
func (v *Vectorizer) VectorizeGrid(g *Grid) (*Document, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	m, err := Binarize(g, v.Threshold, v.Invert)
	if err != nil {
		return nil, err
	}
	return v.VectorizeMask(m)
}

// VectorizeMask traces a binary mask into a vector document.
func (v *Vectorizer) VectorizeMask(m *Mask) (*Document, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	if m == nil || m.width <= 0 || m.height <= 0 {
		return nil, ErrInvalidDimensions
	}

	v.tracer.Connectivity = v.Connectivity
	v.tracer.Chain = v.Chain
	contours := v.tracer.Trace(m)
	doc := NewDocument(m.width, m.height, contours)

	log := Logger()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("traced mask",
			slog.Int("width", m.width),
			slog.Int("height", m.height),
			slog.Int("foreground", m.Count()),
			slog.Int("contours", doc.Len()),
			slog.Int("points", doc.Points()))
	}
	return doc, nil
}

func (v *Vectorizer) check() error {
	if !v.Connectivity.valid() {
		return ErrConnectivity
	}
	if v.Chain != ChainSimple && v.Chain != ChainNone {
		return ErrChain
	}
	return nil
}
