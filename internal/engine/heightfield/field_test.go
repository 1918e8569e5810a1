package heightfield

import (
	gomath "math"
	"testing"
)

func TestDefaultDirectionsNormalized(t *testing.T) {
	f := Default()
	if len(f.Waves) != 2 {
		t.Fatalf("got %d waves, want 2", len(f.Waves))
	}
	for i, w := range f.Waves {
		l := w.Dir.Length()
		if gomath.Abs(float64(l)-1) > 1e-6 {
			t.Errorf("wave %d: |dir| = %g, want 1", i, l)
		}
	}
}

func TestHeightClosedForm(t *testing.T) {
	f := Default()

	tests := []struct {
		x, z, t float32
	}{
		{0, 0, 0},
		{10, -5, 0},
		{-150, 100, 3.2},
		{42.5, 13.7, -8},
	}

	for _, tt := range tests {
		var want float64
		for _, w := range f.Waves {
			shift := float64(w.Speed * tt.t)
			dot := float64(w.Dir.X)*(float64(tt.x)-shift) + float64(w.Dir.Y)*(float64(tt.z)-shift)
			want += float64(w.Amplitude) * gomath.Sin(float64(w.Frequency)*dot)
		}

		got := float64(f.Height(tt.x, tt.z, tt.t))
		// float32 phase arithmetic vs float64 expectation
		if gomath.Abs(got-want) > 1e-4 {
			t.Errorf("Height(%g, %g, %g) = %g, want %g", tt.x, tt.z, tt.t, got, want)
		}
	}
}

func TestHeightBounded(t *testing.T) {
	f := Default()

	// Sum of amplitudes bounds the surface.
	var bound float32
	for _, w := range f.Waves {
		bound += w.Amplitude
	}
	bound *= 1.0001 // rounding headroom

	for x := float32(-150); x <= 150; x += 7.5 {
		for z := float32(-100); z <= 100; z += 7.5 {
			y := f.Height(x, z, 11.3)
			if y > bound || y < -bound {
				t.Fatalf("Height(%g, %g) = %g exceeds bound %g", x, z, y, bound)
			}
		}
	}
}

func TestFlatFieldZeroHeight(t *testing.T) {
	var f Field
	if y := f.Height(12, 34, 56); y != 0 {
		t.Errorf("empty field Height = %g, want 0", y)
	}
	n := f.Normal(12, 34, 56, 0.5)
	if n.X != 0 || n.Y != 1 || n.Z != 0 {
		t.Errorf("empty field Normal = %v, want (0,1,0)", n)
	}
}

func TestNormalUnitLength(t *testing.T) {
	f := Default()

	for _, tt := range []struct{ x, z, t float32 }{
		{0, 0, 0},
		{25, -40, 2.5},
		{-3, 3, 100},
	} {
		n := f.Normal(tt.x, tt.z, tt.t, 0.75)
		l := n.Length()
		if gomath.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("Normal(%g, %g, %g): |n| = %g", tt.x, tt.z, tt.t, l)
		}
		if n.Y <= 0 {
			t.Errorf("Normal(%g, %g, %g): y = %g, want > 0", tt.x, tt.z, tt.t, n.Y)
		}
	}
}
