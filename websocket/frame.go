package websocket

// ArcOp is one stroked arc of a frame, in draw order.
type ArcOp struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"r"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Width  float64 `json:"width"`
	Alpha  float64 `json:"alpha"`
	Style  string  `json:"style"`
}

// Frame is the draw-op list broadcast to clients after each engine step.
// Clients replay it verbatim on a canvas 2d context.
type Frame struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Arcs   []ArcOp `json:"arcs"`
}

// Recorder implements the engine surface contract by recording draw ops for
// replay on a remote canvas. ClearRect starts a new frame.
type Recorder struct {
	frame Frame

	style string
	width float64
	alpha float64

	pending []ArcOp
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.frame = Frame{Width: w, Height: h}
	r.pending = r.pending[:0]
}

func (r *Recorder) BeginPath() {
	r.pending = r.pending[:0]
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	if anticlockwise {
		startAngle, endAngle = endAngle, startAngle
	}
	r.pending = append(r.pending, ArcOp{
		X:      x,
		Y:      y,
		Radius: radius,
		Start:  startAngle,
		End:    endAngle,
	})
}

// Stroke commits the pending path with the current stroke attributes.
func (r *Recorder) Stroke() {
	for _, op := range r.pending {
		op.Style = r.style
		op.Width = r.width
		op.Alpha = r.alpha
		r.frame.Arcs = append(r.frame.Arcs, op)
	}
	r.pending = r.pending[:0]
}

func (r *Recorder) SetStrokeStyle(value ...interface{}) {
	if len(value) == 1 {
		if s, ok := value[0].(string); ok {
			r.style = s
		}
	}
}

func (r *Recorder) SetLineWidth(width float64) {
	r.width = width
}

func (r *Recorder) SetGlobalAlpha(alpha float64) {
	r.alpha = alpha
}

// Snapshot returns the frame recorded since the last ClearRect.
func (r *Recorder) Snapshot() Frame {
	return r.frame
}
