package engine

import (
	"math"
	"math/rand"
)

// highlightSpan is the angular length of the specular highlight arc.
const highlightSpan = 1.5 * math.Pi

// rimKnee is the projected radius below which the rim is a quarter of it.
const rimKnee = 12.0

// Bubble is a single buoyant particle. X and Z are center-relative, Y runs
// down from the top of the surface so the recycle bounds read directly
// against [0, height). Radius is the source of truth; Volume is always
// derived from it.
type Bubble struct {
	X, Y, Z float64 // px; Z is depth into the scene
	Radius  float64 // px
	Volume  float64 // m³
	Phase   float64 // fixed highlight angle, set once at spawn

	// Projection state, recomputed every frame. Not authoritative.
	Scale float64
	XProj float64
	YProj float64
}

// Reset respawns the bubble in place with a fresh randomized state. The y
// spawn band is the middle half of the surface so a fresh bubble never sits
// on a recycle bound.
func (b *Bubble) Reset(rng *rand.Rand, size, width, height float64) {
	b.Radius = (rng.Float64()*(size-6) + 7) / 2
	b.X = (rng.Float64() - 0.5) * width
	b.Y = height/4 + rng.Float64()*height/2
	b.Z = rng.Float64() * width
	b.Volume = sphereVolume(ToMeters(b.Radius))
	b.Phase = rng.Float64() * 2 * math.Pi
}

func sphereVolume(r float64) float64 {
	return 4.0 / 3.0 * math.Pi * r * r * r
}

// Rescale adapts the bubble to a resized surface, preserving its relative
// position. Depth follows the width ratio, like the perspective distance.
func (b *Bubble) Rescale(oldW, oldH, newW, newH float64) {
	b.X *= newW / oldW
	b.Y *= newH / oldH
	b.Z *= newW / oldW
}

// Project maps the bubble onto the surface. The perspective distance is the
// surface width; y is recentered around the middle of the surface before
// scaling since it is stored top-relative.
func (b *Bubble) Project(width, height float64) {
	b.Scale = width / (width + b.Z)
	b.XProj = b.X*b.Scale + width/2
	b.YProj = (b.Y-height/2)*b.Scale + height/2
}

// Opacity fades bubbles toward the depth extremes. The raw ratio leaves
// [0, 1] once z passes twice the perspective distance, so it is clamped.
func (b *Bubble) Opacity(width float64) float64 {
	o := math.Abs(1 - b.Z/width)
	if o > 1 {
		o = 1
	}
	return o
}

// RimWidth is the stroke width of the silhouette for a projected radius.
// Small circles keep a visible quarter-radius rim; past the knee the rim
// tapers nonlinearly. The taper is a visual tuning contract, kept verbatim.
func RimWidth(radius float64) float64 {
	arc := radius * 0.25
	if radius < rimKnee {
		return arc
	}
	return radius*0.05 + arc*(0.8+(1-1/(math.Sqrt(radius)+math.Sqrt(4*arc))))
}

// Draw strokes the silhouette circle and the specular highlight arc. It
// re-projects first so the drawn position always matches the current state.
func (b *Bubble) Draw(s Surface, width, height float64) {
	b.Project(width, height)

	r := b.Radius * b.Scale
	arc := RimWidth(r)

	s.SetGlobalAlpha(b.Opacity(width))
	s.SetStrokeStyle("#ffffff")

	s.SetLineWidth(arc)
	s.BeginPath()
	s.Arc(b.XProj, b.YProj, r, 0, 2*math.Pi, false)
	s.Stroke()

	// The highlight sits just inside the rim.
	s.SetLineWidth(arc * 0.5)
	s.BeginPath()
	s.Arc(b.XProj, b.YProj, math.Max(r-arc, 0), b.Phase, b.Phase+highlightSpan, false)
	s.Stroke()
}
