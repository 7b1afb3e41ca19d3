package engine

// Surface is the immediate-mode drawing contract the engine renders through.
// It is the stroke subset of the HTML canvas API; *canvas.Canvas from
// github.com/tfriedel6/canvas satisfies it without an adapter, and the
// terminal, websocket and wasm frontends each provide their own
// implementation.
type Surface interface {
	ClearRect(x, y, w, h float64)
	BeginPath()
	Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool)
	Stroke()
	SetStrokeStyle(value ...interface{})
	SetLineWidth(width float64)
	SetGlobalAlpha(alpha float64)
}
