package window

import (
	"github.com/tfriedel6/canvas/sdlcanvas"

	engine "github.com/Skario37/bubbles/bubble-engine"
)

// Run hosts the simulation in a desktop SDL window. The window's main loop
// is the frame scheduler and the canvas is the drawing surface; size changes
// are delivered on the loop goroutine, between frames. Run returns when the
// window is closed.
func Run(e *engine.Engine, title string) error {
	w, h := e.Dimensions()
	wnd, cv, err := sdlcanvas.CreateWindow(int(w), int(h), title)
	if err != nil {
		return err
	}
	defer wnd.Destroy()

	wnd.SizeChange = func(w, h int) {
		e.HandleResize(float64(w), float64(h))
	}

	wnd.MainLoop(func() {
		e.StepFrame(cv)
	})
	return nil
}
