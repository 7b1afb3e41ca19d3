//go:build js && wasm

package canvas

import (
	"syscall/js"

	engine "github.com/Skario37/bubbles/bubble-engine"
)

const (
	bubbleCount = 25
	bubbleSize  = 60
)

// Canvas adapts an HTML canvas 2d context to the engine surface contract and
// hooks the engine frame loop onto requestAnimationFrame.
type Canvas struct {
	window js.Value
	el     js.Value
	ctx    js.Value

	engine *engine.Engine
}

// New looks up the page canvas, sizes it to the window and builds the engine
// behind it.
func New() *Canvas {
	c := new(Canvas)
	c.window = js.Global()
	doc := c.window.Get("document")
	c.el = doc.Call("getElementById", "canvas")
	c.ctx = c.el.Call("getContext", "2d")

	w := c.window.Get("innerWidth").Float()
	h := c.window.Get("innerHeight").Float()
	c.el.Set("width", w)
	c.el.Set("height", h)

	medium, _ := engine.ParseMedium("air")
	c.engine = engine.NewEngine(medium, w, h, 0)
	c.engine.CreateBubbles(bubbleCount, bubbleSize)

	return c
}

// Render starts the frame loop and keeps the canvas in step with window
// resizes. Both run on the JS main thread, so a resize never lands inside a
// frame.
func (c *Canvas) Render() {
	c.window.Call("addEventListener", "resize", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		w := c.window.Get("innerWidth").Float()
		h := c.window.Get("innerHeight").Float()
		c.el.Set("width", w)
		c.el.Set("height", h)
		c.engine.HandleResize(w, h)
		return nil
	}))

	c.engine.Render(c, func(tick func()) {
		var cb js.Func
		cb = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			cb.Release()
			tick()
			return nil
		})
		c.window.Call("requestAnimationFrame", cb)
	})

	// Frames arrive as JS callbacks; keep the Go side alive.
	select {}
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.ctx.Call("clearRect", x, y, w, h)
}

func (c *Canvas) BeginPath() {
	c.ctx.Call("beginPath")
}

func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	c.ctx.Call("arc", x, y, radius, startAngle, endAngle, anticlockwise)
}

func (c *Canvas) Stroke() {
	c.ctx.Call("stroke")
}

func (c *Canvas) SetStrokeStyle(value ...interface{}) {
	if len(value) == 1 {
		c.ctx.Set("strokeStyle", js.ValueOf(value[0]))
	}
}

func (c *Canvas) SetLineWidth(width float64) {
	c.ctx.Set("lineWidth", width)
}

func (c *Canvas) SetGlobalAlpha(alpha float64) {
	c.ctx.Set("globalAlpha", alpha)
}
