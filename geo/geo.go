// Package geo provides value types for Pdfium's coordinate space: 2D affine
// matrices, points, rectangles and quadrilaterals, all in the float32 widths
// the native library uses. Conversions to and from the ffi struct mirrors are
// field copies and round-trip exactly.
package geo

import (
	"errors"
	"math"

	"github.com/wudi/pdfium/ffi"
)

// Matrix is a row-major 2D affine transform [a b c d e f]:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Matrix struct {
	A, B, C, D, E, F float32
}

// Identity returns the identity transform.
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float32) Matrix { return Matrix{A: 1, D: 1, E: tx, F: ty} }

// Scale returns a scale by (sx, sy).
func Scale(sx, sy float32) Matrix { return Matrix{A: sx, D: sy} }

// Rotate returns a counter-clockwise rotation by angle radians.
func Rotate(angle float32) Matrix {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Multiply returns m applied first, then o.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.B*o.C,
		B: m.A*o.B + m.B*o.D,
		C: m.C*o.A + m.D*o.C,
		D: m.C*o.B + m.D*o.D,
		E: m.E*o.A + m.F*o.C + o.E,
		F: m.E*o.B + m.F*o.D + o.F,
	}
}

// ErrSingular reports a non-invertible matrix.
var ErrSingular = errors.New("geo: matrix singular")

// Inverse returns the inverse transform.
func (m Matrix) Inverse() (Matrix, error) {
	det := float64(m.A)*float64(m.D) - float64(m.B)*float64(m.C)
	if math.Abs(det) < 1e-10 {
		return Matrix{}, ErrSingular
	}
	d := float32(det)
	return Matrix{
		A: m.D / d,
		B: -m.B / d,
		C: -m.C / d,
		D: m.A / d,
		E: (m.C*m.F - m.D*m.E) / d,
		F: (m.B*m.E - m.A*m.F) / d,
	}, nil
}

// Transform applies m to a point.
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// FFI returns the ffi mirror of m.
func (m Matrix) FFI() ffi.Matrix {
	return ffi.Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

// MatrixFromFFI converts an ffi matrix.
func MatrixFromFFI(m ffi.Matrix) Matrix {
	return Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

// Point is a position in page space.
type Point struct {
	X, Y float32
}

// FFI returns the ffi mirror of p.
func (p Point) FFI() ffi.PointF { return ffi.PointF{X: p.X, Y: p.Y} }

// PointFromFFI converts an ffi point.
func PointFromFFI(p ffi.PointF) Point { return Point{X: p.X, Y: p.Y} }

// Rect is an axis-aligned rectangle. Pdfium's page space has the origin at
// the bottom left, so Bottom <= Top for a normalized rectangle.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.Top - r.Bottom }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Bottom && p.Y <= r.Top
}

// FFI returns the ffi mirror of r.
func (r Rect) FFI() ffi.RectF {
	return ffi.RectF{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

// RectFromFFI converts an ffi rectangle.
func RectFromFFI(r ffi.RectF) Rect {
	return Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

// Quad is a quadrilateral given by its four corners in the order Pdfium uses
// for attachment points: (X1,Y1) top left, (X2,Y2) top right, (X3,Y3) bottom
// left, (X4,Y4) bottom right.
type Quad struct {
	P1, P2, P3, P4 Point
}

// QuadFromRect returns the axis-aligned quad covering r.
func QuadFromRect(r Rect) Quad {
	return Quad{
		P1: Point{X: r.Left, Y: r.Top},
		P2: Point{X: r.Right, Y: r.Top},
		P3: Point{X: r.Left, Y: r.Bottom},
		P4: Point{X: r.Right, Y: r.Bottom},
	}
}

// Bounds returns the axis-aligned bounding rectangle of q.
func (q Quad) Bounds() Rect {
	r := Rect{Left: q.P1.X, Right: q.P1.X, Top: q.P1.Y, Bottom: q.P1.Y}
	for _, p := range [3]Point{q.P2, q.P3, q.P4} {
		if p.X < r.Left {
			r.Left = p.X
		}
		if p.X > r.Right {
			r.Right = p.X
		}
		if p.Y > r.Top {
			r.Top = p.Y
		}
		if p.Y < r.Bottom {
			r.Bottom = p.Y
		}
	}
	return r
}

// FFI returns the ffi mirror of q.
func (q Quad) FFI() ffi.QuadPointsF {
	return ffi.QuadPointsF{
		X1: q.P1.X, Y1: q.P1.Y,
		X2: q.P2.X, Y2: q.P2.Y,
		X3: q.P3.X, Y3: q.P3.Y,
		X4: q.P4.X, Y4: q.P4.Y,
	}
}

// QuadFromFFI converts an ffi quad.
func QuadFromFFI(q ffi.QuadPointsF) Quad {
	return Quad{
		P1: Point{X: q.X1, Y: q.Y1},
		P2: Point{X: q.X2, Y: q.Y2},
		P3: Point{X: q.X3, Y: q.Y3},
		P4: Point{X: q.X4, Y: q.Y4},
	}
}
