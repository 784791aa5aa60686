package bevel

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func newTestHelicoid(t *testing.T, phiDeg, gen, betaDeg float64) Helicoid {
	t.Helper()
	c, err := NewCone(DtoR(phiDeg), gen)
	if err != nil {
		t.Fatal(err)
	}
	h, err := NewHelicoid(c, DtoR(betaDeg))
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestThetaOffsetBound(t *testing.T) {
	h := newTestHelicoid(t, 60, 20, 20)
	bound := h.MaxWidth()
	if !scalar.EqualWithinAbs(bound, 20*(1-math.Sin(DtoR(20))), 1e-12) || math.Abs(bound-13.159) > 1e-3 {
		t.Fatalf("bad bound %g", bound)
	}
	for _, b := range []float64{0, 1, 6.5, 13, 13.159, bound - 1e-9, bound} {
		off, err := h.ThetaOffset(b)
		if err != nil {
			t.Errorf("b=%g: unexpected error %v", b, err)
		}
		if math.IsNaN(off) || math.IsInf(off, 0) {
			t.Errorf("b=%g: offset not finite: %g", b, off)
		}
	}
	for _, b := range []float64{bound + 1e-6, 13.16, 15, 20, 25} {
		_, err := h.ThetaOffset(b)
		if !errors.Is(err, ErrDomain) {
			t.Errorf("b=%g: expected domain error, got %v", b, err)
		}
		var derr *DomainError
		if !errors.As(err, &derr) {
			t.Fatalf("b=%g: error is not *DomainError", b)
		}
		if derr.Width != b || derr.Bound != bound {
			t.Errorf("b=%g: error names width %g bound %g", b, derr.Width, derr.Bound)
		}
	}
}

func TestThetaOffsetZeroAtBase(t *testing.T) {
	for _, phi := range []float64{20, 45, 60, 80} {
		for _, beta := range []float64{-30, 0, 10, 20, 35} {
			h := newTestHelicoid(t, phi, 20, beta)
			off, err := h.ThetaOffset(0)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(off) > 1e-14 {
				t.Errorf("phi=%g beta=%g: offset at base %g, want 0", phi, beta, off)
			}
		}
	}
}

func TestThetaOffsetValue(t *testing.T) {
	h := newTestHelicoid(t, 60, 20, 20)
	const b = 5.0
	got, err := h.ThetaOffset(b)
	if err != nil {
		t.Fatal(err)
	}
	want := (math.Asin(20*math.Sin(h.Beta)/15) - h.Beta) / math.Sin(h.Cone.Phi)
	if !scalar.EqualWithinAbsOrRel(got, want, 1e-15, 1e-15) {
		t.Errorf("got offset %g, want %g", got, want)
	}
	if got <= 0 {
		t.Errorf("offset should grow towards the apex, got %g", got)
	}
}

func TestHelicoidPoint(t *testing.T) {
	h := newTestHelicoid(t, 60, 20, 20)
	// The base slice is the plain involute.
	for _, theta := range []float64{0, 0.3, 1.2} {
		got, err := h.Point(0, theta)
		if err != nil {
			t.Fatal(err)
		}
		want := InvolutePoint(h.Cone, 20, theta)
		if !scalar.EqualWithinAbs(r3.Norm(r3.Sub(got, want)), 0, 1e-12) {
			t.Errorf("theta=%g: got %v, want %v", theta, got, want)
		}
	}
	// Slices lie on spheres of radius G-b.
	for _, b := range []float64{1, 5, 10, 13} {
		p, err := h.Point(b, 0.7)
		if err != nil {
			t.Fatal(err)
		}
		if got := r3.Norm(p); math.Abs(got-(20-b)) > 1e-12 {
			t.Errorf("b=%g: distance from apex %g, want %g", b, got, 20-b)
		}
	}
	_, err := h.Point(14, 0)
	if !errors.Is(err, ErrDomain) {
		t.Errorf("expected domain error, got %v", err)
	}
}

func TestNewHelicoidValidation(t *testing.T) {
	c, _ := NewCone(DtoR(60), 20)
	for _, beta := range []float64{pi / 2, -pi / 2, 2, math.NaN()} {
		if _, err := NewHelicoid(c, beta); err == nil {
			t.Errorf("beta=%g: expected error", beta)
		}
	}
	if _, err := NewHelicoid(Cone{}, 0.3); err == nil {
		t.Error("expected error for zero cone")
	}
}

func TestThetaOffsetApex(t *testing.T) {
	h := newTestHelicoid(t, 60, 20, 0)
	if h.MaxWidth() != 20 {
		t.Fatalf("bound %g, want generatrix", h.MaxWidth())
	}
	if off, err := h.ThetaOffset(20 - 1e-9); err != nil || off != 0 {
		t.Errorf("below apex: got offset %g, err %v", off, err)
	}
	for _, b := range []float64{20, 21} {
		_, err := h.ThetaOffset(b)
		if !errors.Is(err, ErrDomain) {
			t.Fatalf("b=%g: expected domain error, got %v", b, err)
		}
		if !strings.Contains(err.Error(), "apex") {
			t.Errorf("b=%g: error does not name the apex: %v", b, err)
		}
	}
	// Beyond the bound but short of the apex the bound is reported.
	h = newTestHelicoid(t, 60, 20, 20)
	_, err := h.ThetaOffset(15)
	if err == nil || !strings.Contains(err.Error(), "exceeds bound") || !strings.Contains(err.Error(), "beta=20°") {
		t.Errorf("unexpected error message %v", err)
	}
}
