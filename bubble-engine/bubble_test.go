package engine

import (
	"math"
	"math/rand"
	"testing"
)

func TestResetRadiusBounds(t *testing.T) {
	// The spawn formula (rnd·(size−6)+7)/2 bounds the radius to
	// [3.5, (size+1)/2) for any seed.
	const size = 60.0
	for seed := int64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := new(Bubble)
		b.Reset(rng, size, 800, 600)
		if b.Radius < 3.5 || b.Radius >= (size+1)/2 {
			t.Fatalf("seed %d: radius %v outside [3.5, %v)", seed, b.Radius, (size+1)/2)
		}
	}
}

func TestResetSpawnBand(t *testing.T) {
	// Fresh bubbles must never sit on a recycle bound.
	const (
		size   = 60.0
		width  = 800.0
		height = 600.0
	)
	for seed := int64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := new(Bubble)
		b.Reset(rng, size, width, height)
		if b.Y+b.Radius <= 0 || b.Y+b.Radius >= height {
			t.Fatalf("seed %d: spawned on a recycle bound, y=%v r=%v", seed, b.Y, b.Radius)
		}
		if b.X < -width/2 || b.X > width/2 {
			t.Errorf("seed %d: x=%v outside ±width/2", seed, b.X)
		}
		if b.Z < 0 || b.Z > width {
			t.Errorf("seed %d: z=%v outside [0, width]", seed, b.Z)
		}
	}
}

func TestResetVolumeFromRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := new(Bubble)
	b.Reset(rng, 60, 800, 600)

	rm := ToMeters(b.Radius)
	want := 4.0 / 3.0 * math.Pi * rm * rm * rm
	if math.Abs(b.Volume-want) > 1e-18 {
		t.Errorf("Volume = %v, want %v", b.Volume, want)
	}
}

func TestProjectScenario(t *testing.T) {
	// Particle at z=0 on a 300px wide surface: full scale, full opacity.
	b := &Bubble{X: 10, Y: 100, Z: 0, Radius: 5}
	b.Volume = sphereVolume(ToMeters(b.Radius))
	b.Project(300, 300)

	if b.Scale != 1 {
		t.Errorf("Scale = %v, want 1", b.Scale)
	}
	if b.XProj != 10+150 {
		t.Errorf("XProj = %v, want 160", b.XProj)
	}
	if b.YProj != 100 {
		t.Errorf("YProj = %v, want 100", b.YProj)
	}
	if got := b.Opacity(300); got != 1 {
		t.Errorf("Opacity = %v, want 1", got)
	}

	rm := 5 / PixelsPerMeter
	want := 4.0 / 3.0 * math.Pi * rm * rm * rm
	if math.Abs(b.Volume-want) > 1e-18 {
		t.Errorf("Volume = %v, want %v", b.Volume, want)
	}
}

func TestProjectDepthScaling(t *testing.T) {
	tests := []struct {
		name  string
		z     float64
		scale float64
	}{
		{"Front", 0, 1},
		{"Mid", 400, 0.5},
		{"Deep", 1200, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Bubble{Z: tt.z}
			b.Project(400, 300)
			if math.Abs(b.Scale-tt.scale) > 1e-12 {
				t.Errorf("Scale = %v, want %v", b.Scale, tt.scale)
			}
		})
	}
}

func TestOpacityClamped(t *testing.T) {
	tests := []struct {
		name string
		z    float64
		want float64
	}{
		{"Front plane", 0, 1},
		{"Mid depth", 150, 0.5},
		{"Perspective distance", 300, 0},
		{"Past the distance", 450, 0.5},
		{"Beyond twice the distance", 900, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Bubble{Z: tt.z}
			got := b.Opacity(300)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Opacity(z=%v) = %v, want %v", tt.z, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Opacity(z=%v) = %v outside [0,1]", tt.z, got)
			}
		})
	}
}

func TestRimWidth(t *testing.T) {
	// Below the knee the rim is a quarter of the radius.
	for _, r := range []float64{1, 4, 11.9} {
		if got, want := RimWidth(r), r*0.25; math.Abs(got-want) > 1e-12 {
			t.Errorf("RimWidth(%v) = %v, want %v", r, got, want)
		}
	}

	// Past the knee the taper takes over; it keeps growing with the radius
	// and never reaches half of it.
	prev := RimWidth(rimKnee)
	for _, r := range []float64{16, 24, 48, 96} {
		got := RimWidth(r)
		if got <= prev {
			t.Errorf("RimWidth(%v) = %v, want > RimWidth at smaller radius %v", r, got, prev)
		}
		if got >= r*0.5 {
			t.Errorf("RimWidth(%v) = %v, want < %v", r, got, r*0.5)
		}
		prev = got
	}

	// Pinned value at r=20: 20·0.05 + 5·(0.8 + (1 − 1/(√20+√20))).
	if got, want := RimWidth(20), 9.4410; math.Abs(got-want) > 1e-3 {
		t.Errorf("RimWidth(20) = %v, want %v", got, want)
	}
}

func TestRescaleExactRatios(t *testing.T) {
	b := &Bubble{X: 128, Y: 256, Z: 64}
	b.Rescale(800, 600, 400, 300)

	if b.X != 64 || b.Y != 128 || b.Z != 32 {
		t.Errorf("Rescale halved dims: got (%v, %v, %v), want (64, 128, 32)", b.X, b.Y, b.Z)
	}

	// Growing back restores the exact position for power-of-two ratios.
	b.Rescale(400, 300, 800, 600)
	if b.X != 128 || b.Y != 256 || b.Z != 64 {
		t.Errorf("Round trip: got (%v, %v, %v), want (128, 256, 64)", b.X, b.Y, b.Z)
	}
}

func TestResetReproducible(t *testing.T) {
	a, b := new(Bubble), new(Bubble)
	a.Reset(rand.New(rand.NewSource(42)), 60, 800, 600)
	b.Reset(rand.New(rand.NewSource(42)), 60, 800, 600)

	if *a != *b {
		t.Errorf("Same seed produced different bubbles:\n%+v\n%+v", a, b)
	}
}
