package glimpse

// Event is a single record taken from the platform event queue. The set of
// event types is closed, only the types in this package implement Event.
type Event interface {
	isEvent()
}

// QuitEvent is emitted when the user asks the application to close,
// e.g. by clicking the close button of the window.
type QuitEvent struct{}

// KeyDownEvent is emitted when a key is pressed. Key repeats are not reported.
type KeyDownEvent struct {
	Key Key
}

// KeyUpEvent is emitted when a key is released.
type KeyUpEvent struct {
	Key Key
}

// PointerMovedEvent carries the new cursor position in window coordinates.
type PointerMovedEvent struct {
	X, Y float32
}

type MouseButtonDownEvent struct {
	Button MouseButton
}

type MouseButtonUpEvent struct {
	Button MouseButton
}

// ResizeEvent is emitted when the framebuffer of the window changed its size.
type ResizeEvent struct {
	Width, Height uint32
}

func (QuitEvent) isEvent()            {}
func (KeyDownEvent) isEvent()         {}
func (KeyUpEvent) isEvent()           {}
func (PointerMovedEvent) isEvent()    {}
func (MouseButtonDownEvent) isEvent() {}
func (MouseButtonUpEvent) isEvent()   {}
func (ResizeEvent) isEvent()          {}
