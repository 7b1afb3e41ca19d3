package engine

// FrameScheduler requests one invocation of callback at the host's next
// frame tick. requestAnimationFrame in a browser, a ticker for headless
// hosts.
type FrameScheduler func(callback func())

// Render drives StepFrame through the scheduler, re-requesting itself after
// every tick. The sequence is infinite from the engine's side; stopping the
// simulation means the host stops granting frames, there is no in-flight
// work to cancel.
func (e *Engine) Render(s Surface, requestFrame FrameScheduler) {
	var tick func()
	tick = func() {
		e.StepFrame(s)
		requestFrame(tick)
	}
	requestFrame(tick)
}
