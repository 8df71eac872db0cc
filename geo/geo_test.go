package geo

import (
	"math"
	"testing"
)

func TestIdentityTransform(t *testing.T) {
	p := Point{X: 3.5, Y: -2.25}
	got := Identity().Transform(p)
	if got != p {
		t.Fatalf("identity moved point: got %+v, want %+v", got, p)
	}
}

func TestTranslateScaleCompose(t *testing.T) {
	m := Scale(2, 3).Multiply(Translate(10, 20))
	got := m.Transform(Point{X: 1, Y: 1})
	want := Point{X: 12, Y: 23}
	if got != want {
		t.Fatalf("transform: got %+v, want %+v", got, want)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	m := Rotate(math.Pi / 2)
	got := m.Transform(Point{X: 1, Y: 0})
	if math.Abs(float64(got.X)) > 1e-6 || math.Abs(float64(got.Y)-1) > 1e-6 {
		t.Fatalf("quarter turn of (1,0): got %+v, want (0,1)", got)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := Translate(5, -7).Multiply(Scale(2, 4))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("inverse: %v", err)
	}
	p := Point{X: 13, Y: 42}
	got := inv.Transform(m.Transform(p))
	if math.Abs(float64(got.X-p.X)) > 1e-4 || math.Abs(float64(got.Y-p.Y)) > 1e-4 {
		t.Fatalf("round trip: got %+v, want %+v", got, p)
	}
}

func TestInverseSingular(t *testing.T) {
	if _, err := Scale(0, 1).Inverse(); err != ErrSingular {
		t.Fatalf("singular inverse: got %v, want ErrSingular", err)
	}
}

func TestMatrixFFIRoundTrip(t *testing.T) {
	m := Matrix{A: 1.5, B: -0.25, C: 0.125, D: 2, E: 100.5, F: -3}
	if got := MatrixFromFFI(m.FFI()); got != m {
		t.Fatalf("ffi round trip: got %+v, want %+v", got, m)
	}
}

func TestRectFFIRoundTrip(t *testing.T) {
	r := Rect{Left: 1.25, Top: 10, Right: 8.5, Bottom: 2}
	if got := RectFromFFI(r.FFI()); got != r {
		t.Fatalf("ffi round trip: got %+v, want %+v", got, r)
	}
}

func TestRectExtents(t *testing.T) {
	r := Rect{Left: 10, Top: 30, Right: 50, Bottom: 20}
	if r.Width() != 40 || r.Height() != 10 {
		t.Fatalf("extents: got %v x %v, want 40 x 10", r.Width(), r.Height())
	}
	if !r.Contains(Point{X: 10, Y: 20}) {
		t.Fatal("corner should be inside")
	}
	if r.Contains(Point{X: 9.99, Y: 25}) {
		t.Fatal("point left of rect should be outside")
	}
}

func TestQuadRectRoundTrip(t *testing.T) {
	r := Rect{Left: 1, Top: 4, Right: 3, Bottom: 2}
	q := QuadFromRect(r)
	if got := q.Bounds(); got != r {
		t.Fatalf("bounds: got %+v, want %+v", got, r)
	}
	if got := QuadFromFFI(q.FFI()); got != q {
		t.Fatalf("ffi round trip: got %+v, want %+v", got, q)
	}
}
