package orion

import (
	"log/slog"
	"time"

	"github.com/oliverbestmann/tempo/glimpse"
	"github.com/oliverbestmann/tempo/glm"
)

// Context holds everything the runner and the user callbacks share: the
// window and graphics handles, the input snapshot, frame timing and the
// policy flags controlling the loop. It is passed to every callback and
// must not be retained after the callback returns.
type Context struct {
	window   glimpse.Window
	graphics Graphics
	clock    Clock

	// releases window and graphics, set by the Builder
	release func()

	// claimed from the window on the first Run, reused by later runs
	events glimpse.EventSource

	// true while Run executes the loop, even after a quit request
	looping bool

	// Close was called during the loop, resources are released when Run returns
	closePending bool
	closed       bool

	input InputState
	stats FrameStats

	running      bool
	quitOnEscape bool
	escapeKey    KeyCode

	tickRate             time.Duration
	maxTicksPerIteration int

	width, height int
	scale         int
}

// NewContext wires a Context from an already opened window and graphics
// service. Most applications use a Builder instead.
func NewContext(window glimpse.Window, graphics Graphics, config Config) *Context {
	config = config.withDefaults()

	return &Context{
		window:               window,
		graphics:             graphics,
		clock:                SystemClock{},
		quitOnEscape:         config.QuitOnEscape,
		escapeKey:            glimpse.KeyEscape,
		tickRate:             config.TickRate,
		maxTicksPerIteration: config.MaxTicksPerIteration,
		width:                config.Width,
		height:               config.Height,
		scale:                config.Scale,
	}
}

// Running reports whether the loop is currently running.
func (ctx *Context) Running() bool {
	return ctx.running
}

// Quit asks the runner to stop. The current iteration is completed,
// no further iteration is started.
func (ctx *Context) Quit() {
	ctx.running = false
}

// quitRequested handles a quit request from the platform, e.g. a click on
// the close button of the window. The default policy is to stop the loop.
// This is the place to hook in a different policy.
func (ctx *Context) quitRequested() {
	slog.Info("Quit requested by platform")
	ctx.running = false
}

// TickRate returns the duration of one simulation tick.
func (ctx *Context) TickRate() time.Duration {
	return ctx.tickRate
}

// SetTickRate changes the duration of one simulation tick. A running loop
// picks up the new value at the start of the next iteration.
func (ctx *Context) SetTickRate(tickRate time.Duration) {
	if tickRate <= 0 {
		panic("tick rate must be positive")
	}

	ctx.tickRate = tickRate
}

// MaxTicksPerIteration returns the limit of simulation ticks per loop
// iteration. Zero means no limit.
func (ctx *Context) MaxTicksPerIteration() int {
	return ctx.maxTicksPerIteration
}

// SetMaxTicksPerIteration limits how many ticks the runner catches up in one
// iteration. Ticks above the limit are dropped. Zero removes the limit.
func (ctx *Context) SetMaxTicksPerIteration(n int) {
	ctx.maxTicksPerIteration = max(0, n)
}

func (ctx *Context) QuitOnEscape() bool {
	return ctx.quitOnEscape
}

func (ctx *Context) SetQuitOnEscape(quitOnEscape bool) {
	ctx.quitOnEscape = quitOnEscape
}

// SetEscapeKey changes the key that quits the application
// if QuitOnEscape is enabled.
func (ctx *Context) SetEscapeKey(key KeyCode) {
	ctx.escapeKey = key
}

// SetClock replaces the clock used by the runner. It must be
// called before Run.
func (ctx *Context) SetClock(clock Clock) {
	ctx.clock = clock
}

// Input returns the input snapshot of the current frame.
func (ctx *Context) Input() *InputState {
	return &ctx.input
}

func (ctx *Context) Graphics() Graphics {
	return ctx.graphics
}

func (ctx *Context) Window() glimpse.Window {
	return ctx.window
}

// Stats returns the frame statistics collected by the runner.
func (ctx *Context) Stats() FrameStats {
	return ctx.stats
}

// LogicalSize returns the size of the render target in logical pixels.
func (ctx *Context) LogicalSize() (width, height int) {
	return ctx.width, ctx.height
}

// Scale returns the integer factor between logical pixels and window pixels.
func (ctx *Context) Scale() int {
	return ctx.scale
}

// PointerPosition returns the cursor position in logical pixels.
func (ctx *Context) PointerPosition() glm.Vec2f {
	return ctx.input.PointerPosition().DivScalar(float32(ctx.scale))
}

// Close releases the window and graphics resources acquired by the Builder.
// Called from within a callback, Close stops the loop and the resources
// are released once Run returns. A closed Context can not be run again.
func (ctx *Context) Close() {
	ctx.running = false

	if ctx.looping {
		ctx.closePending = true
		return
	}

	ctx.closed = true
	ctx.events = nil

	if ctx.release != nil {
		ctx.release()
		ctx.release = nil
	}
}
