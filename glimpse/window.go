package glimpse

import (
	"errors"
	"iter"
)

var ErrWindowClosed = errors.New("window is closed")
var ErrEventsClaimed = errors.New("event source already claimed")

type WindowOptions struct {
	Title string

	// size of the window in screen coordinates
	Width  int
	Height int

	Resizable bool
}

// EventSource gives access to the platform event queue.
type EventSource interface {
	// PollEvents processes everything the platform has pending and returns
	// the resulting events in the order they were received. The sequence is
	// finite, events that arrive while it is consumed are returned by the
	// next call.
	PollEvents() iter.Seq[Event]
}

type Window interface {
	GetSize() (uint32, uint32)

	// Events hands out the event source of this window. There can only be
	// one consumer, a second call fails with ErrEventsClaimed.
	Events() (EventSource, error)

	Terminate()
}
