package engine

import (
	"math/rand"
	"sort"
	"time"
)

// bubbleAirPart and bubbleWaterPart model the bubble contents as a mix of
// mostly air with a thin water film.
const (
	bubbleAirPart   = 0.999
	bubbleWaterPart = 0.001
)

// Engine owns the bubble collection and the ambient medium and drives the
// per-frame pipeline. It is single-threaded: one StepFrame runs to completion
// per tick and resizes are delivered between frames, never during one.
type Engine struct {
	width, height float64
	medium        Medium
	air           Medium
	water         Medium

	bubbles []*Bubble
	size    float64 // bubble size budget, px
	rng     *rand.Rand
}

// NewEngine builds an engine for the given ambient medium and surface
// dimensions. Seed 0 draws one from the clock; any other value makes the
// simulation reproducible.
func NewEngine(medium Medium, width, height float64, seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		width:  width,
		height: height,
		medium: medium,
		air:    NewMedium(Air, 0, 0),
		water:  NewMedium(Water, 0, 0),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// CreateBubbles appends count freshly randomized bubbles drawn from the given
// size budget. The budget also applies to later recycles.
func (e *Engine) CreateBubbles(count int, size float64) {
	e.size = size
	for i := 0; i < count; i++ {
		b := new(Bubble)
		b.Reset(e.rng, size, e.width, e.height)
		e.bubbles = append(e.bubbles, b)
	}
}

// Bubbles exposes the collection for frontends and tests. The order is
// mutated by the depth sort every frame.
func (e *Engine) Bubbles() []*Bubble {
	return e.bubbles
}

// Dimensions returns the current surface size in pixels.
func (e *Engine) Dimensions() (width, height float64) {
	return e.width, e.height
}

// StepFrame runs one tick: clear the surface, project every bubble, sort them
// back to front, then per bubble apply buoyancy, draw and recycle on boundary
// exit. A degenerate surface skips the frame entirely.
func (e *Engine) StepFrame(s Surface) {
	if e.width <= 0 || e.height <= 0 {
		return
	}
	s.ClearRect(0, 0, e.width, e.height)

	for _, b := range e.bubbles {
		b.Project(e.width, e.height)
	}

	// Smaller scale means further away; those draw first so nearer bubbles
	// composite on top.
	sort.Slice(e.bubbles, func(i, j int) bool {
		return e.bubbles[i].Scale < e.bubbles[j].Scale
	})

	for _, b := range e.bubbles {
		e.applyBuoyancy(b)
		b.Draw(s, e.width, e.height)
		if b.Y+b.Radius <= 0 || b.Y+b.Radius >= e.height {
			b.Reset(e.rng, e.size, e.width, e.height)
		}
	}
}

// applyBuoyancy displaces the bubble by the density differential between its
// contents and the ambient fluid. Positive force moves the bubble toward the
// top of the surface. Contents are evaluated at the media defaults, ambient
// at the configured medium, all at the surface datum.
func (e *Engine) applyBuoyancy(b *Bubble) {
	bubbleDensity := bubbleAirPart*e.air.Density() + bubbleWaterPart*e.water.Density()
	force := (bubbleDensity - e.medium.Density()) * b.Volume * Gravity
	b.Y -= ToPixels(force) / 1000
}

// HandleResize updates the surface dimensions and rescales every live bubble
// proportionally instead of recreating it. Callers deliver it on the frame
// goroutine so it never interleaves with StepFrame.
func (e *Engine) HandleResize(width, height float64) {
	if e.width > 0 && e.height > 0 && width > 0 && height > 0 {
		for _, b := range e.bubbles {
			b.Rescale(e.width, e.height, width, height)
		}
	}
	e.width, e.height = width, height
}
