package orion

import (
	"github.com/oliverbestmann/tempo/glimpse"
)

// pumpEvents drains the event source once and applies every event to the
// context. Events arriving while draining are handled in the next iteration.
func (ctx *Context) pumpEvents(source glimpse.EventSource) {
	for event := range source.PollEvents() {
		ctx.handleEvent(event)
	}
}

func (ctx *Context) handleEvent(event glimpse.Event) {
	switch event := event.(type) {
	case glimpse.QuitEvent:
		ctx.quitRequested()

	case glimpse.KeyDownEvent:
		if ctx.quitOnEscape && event.Key == ctx.escapeKey {
			ctx.running = false
		}

		ctx.input.setKey(event.Key, true)

	case glimpse.KeyUpEvent:
		// A key pressed and released between two ticks is never seen as
		// down by Update. Releases are not buffered.
		ctx.input.setKey(event.Key, false)

	case glimpse.PointerMovedEvent:
		ctx.input.setPointerPosition(event.X, event.Y)

	case glimpse.MouseButtonDownEvent:
		ctx.input.setMouseButton(event.Button, true)

	case glimpse.MouseButtonUpEvent:
		ctx.input.setMouseButton(event.Button, false)

	case glimpse.ResizeEvent:
		if ctx.graphics != nil {
			ctx.graphics.Resize(event.Width, event.Height)
		}
	}
}
