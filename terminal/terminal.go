package terminal

import (
	"math"
	"time"

	"github.com/nsf/termbox-go"

	engine "github.com/Skario37/bubbles/bubble-engine"
)

// cellAspect compensates for terminal cells being roughly twice as tall as
// wide: one cell covers one pixel horizontally and cellAspect vertically.
const cellAspect = 2.0

// frameInterval approximates a 60 Hz display refresh.
const frameInterval = time.Second / 60

// shades is the alpha ramp, faintest first.
var shades = []rune{'·', ':', 'o', 'O', '@', '█'}

type point struct {
	x, y float64
}

// Terminal renders engine frames into a termbox cell back buffer. It
// implements the engine surface contract by rasterizing stroked arcs into
// cells.
type Terminal struct {
	backbuf  []termbox.Cell
	bbw, bbh int

	alpha float64
	path  []point
}

func New() *Terminal {
	return new(Terminal)
}

// Run owns the termbox lifecycle. Frames tick at the frame interval; resize
// events reallocate the back buffer and rescale the engine between frames.
// Esc quits.
func (t *Terminal) Run(e *engine.Engine) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)

	w, h := termbox.Size()
	t.reallocBackBuffer(w, h)
	e.HandleResize(float64(w), float64(h)*cellAspect)

	events := make(chan termbox.Event)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev.Type {
			case termbox.EventKey:
				if ev.Key == termbox.KeyEsc {
					return nil
				}
			case termbox.EventResize:
				t.reallocBackBuffer(ev.Width, ev.Height)
				e.HandleResize(float64(ev.Width), float64(ev.Height)*cellAspect)
			}
		case <-ticker.C:
			e.StepFrame(t)
			t.flush()
		}
	}
}

func (t *Terminal) reallocBackBuffer(w, h int) {
	t.bbw, t.bbh = w, h
	t.backbuf = make([]termbox.Cell, w*h)
}

func (t *Terminal) flush() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	copy(termbox.CellBuffer(), t.backbuf)
	termbox.Flush()
}

// ClearRect resets the whole back buffer; the engine always clears the full
// surface, partial rects are not needed here.
func (t *Terminal) ClearRect(x, y, w, h float64) {
	for i := range t.backbuf {
		t.backbuf[i] = termbox.Cell{Ch: ' '}
	}
}

func (t *Terminal) BeginPath() {
	t.path = t.path[:0]
}

// Arc samples the arc finely enough that adjacent samples land on
// neighboring cells.
func (t *Terminal) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	if anticlockwise {
		startAngle, endAngle = endAngle, startAngle
	}
	steps := int(math.Max(8, radius*4))
	for i := 0; i <= steps; i++ {
		a := startAngle + (endAngle-startAngle)*float64(i)/float64(steps)
		t.path = append(t.path, point{x + radius*math.Cos(a), y + radius*math.Sin(a)})
	}
}

// Stroke plots the sampled path, choosing the cell rune from the current
// alpha.
func (t *Terminal) Stroke() {
	shade := shades[shadeIndex(t.alpha)]
	for _, p := range t.path {
		cx, cy := int(p.x), int(p.y/cellAspect)
		if cx < 0 || cy < 0 || cx >= t.bbw || cy >= t.bbh {
			continue
		}
		t.backbuf[cy*t.bbw+cx] = termbox.Cell{Ch: shade, Fg: termbox.ColorWhite}
	}
	t.path = t.path[:0]
}

// SetStrokeStyle is a no-op: the terminal draws monochrome.
func (t *Terminal) SetStrokeStyle(value ...interface{}) {}

// SetLineWidth is a no-op: a cell is the thinnest stroke there is.
func (t *Terminal) SetLineWidth(width float64) {}

func (t *Terminal) SetGlobalAlpha(alpha float64) {
	t.alpha = alpha
}

func shadeIndex(alpha float64) int {
	i := int(alpha * float64(len(shades)-1))
	if i < 0 {
		i = 0
	}
	if i >= len(shades) {
		i = len(shades) - 1
	}
	return i
}
