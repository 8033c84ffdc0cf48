package shadertest

// Window supplies the presentation surface and its input events.
type Window interface {
	// PollEvents processes pending platform events and queues the ones the
	// app cares about.
	PollEvents()
	// DrainEvents returns the queued events and empties the queue.
	DrainEvents() []Event
	ShouldClose() bool
	SwapBuffers()
	FramebufferSize() (width, height int)
}

// Event is a window input event.
type Event interface {
	isEvent()
}

// ResizeEvent reports a new window size.
type ResizeEvent struct {
	Width, Height int
}

// CursorMoveEvent reports a cursor position with a top-left origin.
type CursorMoveEvent struct {
	X, Y float64
}

func (ResizeEvent) isEvent()     {}
func (CursorMoveEvent) isEvent() {}
