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
	"fmt"
	"image"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/vectorize/testcases"
)

// forAllCases runs fn as a subtest for every test case.
func forAllCases(t *testing.T, fn func(t *testing.T, tc testcases.TestCase, m *Mask)) {
	t.Helper()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				m, err := ParseMask(tc.Rows...)
				if err != nil {
					t.Fatalf("parsing mask: %v", err)
				}
				fn(t, tc, m)
			})
		}
	}
}

func TestTraceExpected(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.TestCase, m *Mask) {
		if tc.Want == nil {
			t.Skip("no expected contours")
		}
		got := Trace(m, Connectivity(tc.Connectivity()))
		if len(got) != len(tc.Want) {
			t.Fatalf("got %d contours, want %d: %v", len(got), len(tc.Want), got)
		}
		for i, want := range tc.Want {
			if !slices.Equal(got[i], Contour(want)) {
				t.Errorf("contour %d: got %v, want %v", i, got[i], want)
			}
		}
	})
}

func TestTraceOrdering(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.TestCase, m *Mask) {
		contours := Trace(m, Connectivity(tc.Connectivity()))
		prev := -1
		for i, c := range contours {
			if len(c) == 0 {
				t.Fatalf("contour %d is empty", i)
			}
			s := c.Start()
			idx := s.Y*m.Width() + s.X
			if idx <= prev {
				t.Errorf("contour %d starts at %v, not after previous start", i, s)
			}
			if !m.At(s.X, s.Y) {
				t.Errorf("contour %d starts on background pixel %v", i, s)
			}
			prev = idx
		}
	})
}

// TestTraceWinding checks that every contour runs counter-clockwise on
// screen, which in y-down coordinates means a non-positive shoelace sum.
func TestTraceWinding(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.TestCase, m *Mask) {
		for i, c := range Trace(m, Connectivity(tc.Connectivity())) {
			if a := signedArea2(c); a > 0 {
				t.Errorf("contour %d has signed area %d/2, want <= 0", i, a)
			}
		}
	})
}

// TestTracePointsOnForeground checks that contours only visit foreground
// pixels and take single steps when no chain reduction is applied.
func TestTracePointsOnForeground(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.TestCase, m *Mask) {
		tr := NewTracer()
		tr.Connectivity = Connectivity(tc.Connectivity())
		tr.Chain = ChainNone
		for i, c := range tr.Trace(m) {
			for j, p := range c {
				if !m.At(p.X, p.Y) {
					t.Fatalf("contour %d point %d: %v is background", i, j, p)
				}
				if len(c) == 1 {
					continue
				}
				d := c[(j+1)%len(c)].Sub(p)
				if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 || d == (image.Point{}) {
					t.Fatalf("contour %d: step %v at point %d", i, d, j)
				}
				if tr.Connectivity == Conn4 && d.X != 0 && d.Y != 0 {
					t.Fatalf("contour %d: diagonal step %v with 4-connectivity", i, d)
				}
			}
		}
	})
}

func TestTraceDeterministic(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.TestCase, m *Mask) {
		conn := Connectivity(tc.Connectivity())
		a := Trace(m, conn)

		// a reused tracer must give the same result as a fresh one
		tr := NewTracer()
		tr.Connectivity = conn
		tr.Trace(m)
		b := tr.Trace(m)

		if fmt.Sprint(a) != fmt.Sprint(b) {
			t.Errorf("results differ:\n%v\n%v", a, b)
		}
	})
}

func TestTraceSimpleIsSubset(t *testing.T) {
	forAllCases(t, func(t *testing.T, tc testcases.TestCase, m *Mask) {
		tr := NewTracer()
		tr.Connectivity = Connectivity(tc.Connectivity())
		tr.Chain = ChainNone
		full := tr.Trace(m)
		tr.Chain = ChainSimple
		short := tr.Trace(m)

		if len(full) != len(short) {
			t.Fatalf("%d contours without reduction, %d with", len(full), len(short))
		}
		for i := range full {
			// the reduced contour is a subsequence of the full one
			k := 0
			for _, p := range full[i] {
				if k < len(short[i]) && short[i][k] == p {
					k++
				}
			}
			if k != len(short[i]) {
				t.Errorf("contour %d: %v is not a subsequence of %v", i, short[i], full[i])
			}
		}
	})
}

func TestTraceEmpty(t *testing.T) {
	m, err := NewMask(7, 5)
	if err != nil {
		t.Fatal(err)
	}
	for _, conn := range []Connectivity{Conn4, Conn8} {
		if got := Trace(m, conn); len(got) != 0 {
			t.Errorf("conn %d: got %d contours for an empty mask", conn, len(got))
		}
	}
}

func TestTraceInvalidConnectivity(t *testing.T) {
	m, _ := ParseMask("#")
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Trace(m, Connectivity(6))
}

func TestSimplify(t *testing.T) {
	cases := []struct {
		in, want []image.Point
	}{
		{nil, nil},
		{[]image.Point{{3, 4}}, []image.Point{{3, 4}}},
		{[]image.Point{{0, 0}, {1, 0}}, []image.Point{{0, 0}, {1, 0}}},
		{
			// square ring of a 3x3 block
			[]image.Point{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}, {1, 0}},
			[]image.Point{{0, 0}, {0, 2}, {2, 2}, {2, 0}},
		},
		{
			// spikes keep their tip
			[]image.Point{{0, 0}, {1, 1}, {2, 2}, {1, 1}},
			[]image.Point{{0, 0}, {2, 2}},
		},
	}
	for _, c := range cases {
		got := simplify(c.in)
		if !slices.Equal(got, c.want) {
			t.Errorf("simplify(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

// signedArea2 returns twice the signed area of the polygon c.
func signedArea2(c Contour) int {
	a := 0
	for i, p := range c {
		q := c[(i+1)%len(c)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}
