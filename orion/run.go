package orion

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/oliverbestmann/tempo/glimpse"
)

var ErrAlreadyRunning = errors.New("context is already running")
var ErrNoWindow = errors.New("context has no window")
var ErrClosed = errors.New("context is closed")

// State is implemented by the application.
type State interface {
	// Update advances the simulation by exactly one tick of Context.TickRate.
	Update(ctx *Context)

	// Draw renders the current state. The interpolation factor in [0, 1)
	// tells how far the simulation time has progressed towards the next,
	// not yet simulated tick.
	Draw(ctx *Context, interpolation float64)
}

// Initializer can be implemented by a State that needs to
// set itself up once before the first frame.
type Initializer interface {
	Initialize(ctx *Context) error
}

// Run drives the fixed timestep loop until the context stops running.
//
// Every iteration samples the clock, drains the platform events into the
// input state, calls Update once per whole tick of accumulated time, calls
// Draw with the fraction of a tick that is left over and presents the frame.
// A quit request is honored after the iteration it was received in
// completes. Run can be called again on the same Context after it returned,
// the event source of the window is claimed once and reused.
// Callbacks are called synchronously, a callback that
// never returns blocks the loop. Panics are not recovered.
func Run(ctx *Context, state State) error {
	if ctx.running || ctx.looping {
		return ErrAlreadyRunning
	}

	if ctx.closed {
		return ErrClosed
	}

	if ctx.window == nil {
		return ErrNoWindow
	}

	events, err := ctx.eventSource()
	if err != nil {
		return fmt.Errorf("acquire event source: %w", err)
	}

	if initializer, ok := state.(Initializer); ok {
		if err := initializer.Initialize(ctx); err != nil {
			return fmt.Errorf("initialize state: %w", err)
		}

		if ctx.closed {
			return ErrClosed
		}
	}

	r := newRunner(ctx, events)

	slog.Info("Start loop",
		slog.Float64("tps", TPS(ctx.tickRate)),
		slog.Int("maxTicksPerIteration", ctx.maxTicksPerIteration),
	)

	ctx.running = true
	ctx.looping = true
	defer ctx.stopLoop()

	for ctx.running {
		r.iterate(state)

		// give other goroutines a chance in case there
		// is no vsync to throttle the loop
		runtime.Gosched()
	}

	slog.Info("Loop stopped",
		slog.Uint64("frames", ctx.stats.FrameCount),
		slog.Uint64("ticks", ctx.stats.TickCount),
	)

	return nil
}

func (ctx *Context) eventSource() (glimpse.EventSource, error) {
	if ctx.events == nil {
		events, err := ctx.window.Events()
		if err != nil {
			return nil, err
		}

		ctx.events = events
	}

	return ctx.events, nil
}

func (ctx *Context) stopLoop() {
	ctx.running = false
	ctx.looping = false

	if ctx.closePending {
		ctx.closePending = false
		ctx.Close()
	}
}

// runner holds the accumulator of the fixed timestep loop.
type runner struct {
	ctx    *Context
	events glimpse.EventSource

	lastTime time.Time

	// simulation time not yet consumed by Update
	lag time.Duration
}

func newRunner(ctx *Context, events glimpse.EventSource) *runner {
	return &runner{
		ctx:      ctx,
		events:   events,
		lastTime: ctx.clock.Now(),
	}
}

func (r *runner) iterate(state State) {
	ctx := r.ctx

	r.advanceTime()

	ctx.input.beginFrame()
	ctx.pumpEvents(r.events)

	tickRate := ctx.tickRate
	r.simulate(state, tickRate)

	state.Draw(ctx, r.interpolation(tickRate))

	if ctx.graphics != nil {
		ctx.graphics.Present()
	}
}

func (r *runner) advanceTime() {
	now := r.ctx.clock.Now()

	elapsed := elapsedSince(now, r.lastTime)
	r.lastTime = now
	r.lag += elapsed

	stats := &r.ctx.stats
	if stats.frame(elapsed) {
		slog.Debug("Frame stats",
			slog.Uint64("frames", stats.FrameCount),
			slog.Uint64("ticks", stats.TickCount),
			slog.Uint64("droppedTicks", stats.DroppedTicks),
			slog.Float64("fps", stats.FPS()),
			slog.Duration("maxFrameTime", stats.MaxDuration),
		)
	}
}

// simulate calls Update once for every whole tick in lag.
func (r *runner) simulate(state State, tickRate time.Duration) {
	ctx := r.ctx

	var ticks int
	for r.lag >= tickRate {
		if limit := ctx.maxTicksPerIteration; limit > 0 && ticks >= limit {
			r.dropTicks(tickRate)
			return
		}

		state.Update(ctx)

		r.lag -= tickRate
		ctx.stats.TickCount += 1
		ticks += 1
	}
}

// dropTicks discards all whole ticks left in lag. The fraction of a tick
// remains, so the interpolation stays in [0, 1).
func (r *runner) dropTicks(tickRate time.Duration) {
	count := r.lag / tickRate
	r.lag -= count * tickRate

	r.ctx.stats.DroppedTicks += uint64(count)

	slog.Warn("Simulation is falling behind, dropping ticks",
		slog.Int64("dropped", int64(count)),
		slog.Int("limit", r.ctx.maxTicksPerIteration),
	)
}

// interpolation returns how far lag has progressed towards the next tick.
func (r *runner) interpolation(tickRate time.Duration) float64 {
	return float64(r.lag) / float64(tickRate)
}
