package orion

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/oliverbestmann/tempo/glimpse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = time.Second / 60

func newTestRunner(ctx *Context, steps ...time.Duration) *runner {
	ctx.SetClock(&stepClock{now: time.Unix(1000, 0), steps: steps})

	source, err := ctx.window.Events()
	if err != nil {
		panic(err)
	}

	return newRunner(ctx, source)
}

func TestRunnerAccumulator(t *testing.T) {
	t.Run("slow frame followed by idle frames", func(t *testing.T) {
		ctx, _, _ := newTestContext()
		r := newTestRunner(ctx, 33*time.Millisecond, 0, 0)

		state := &recordingState{}

		var updates []int
		for range 3 {
			before := state.updates
			r.iterate(state)
			updates = append(updates, state.updates-before)
		}

		assert.Equal(t, []int{1, 0, 0}, updates)
		assert.Equal(t, 33*time.Millisecond-tick, r.lag)

		require.Len(t, state.draws, 3)
		for _, dt := range state.draws {
			assert.Greater(t, dt, 0.0)
			assert.Less(t, dt, 1.0)
		}

		// idle iterations do not move the interpolation
		assert.Equal(t, state.draws[0], state.draws[1])
		assert.Equal(t, state.draws[1], state.draws[2])
	})

	t.Run("no time is gained or lost", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))

		var steps []time.Duration
		for range 500 {
			steps = append(steps, time.Duration(rng.Int64N(int64(50*time.Millisecond))))
		}

		ctx, _, _ := newTestContext()
		r := newTestRunner(ctx, steps...)
		state := &recordingState{}

		var total time.Duration
		for _, step := range steps {
			r.iterate(state)
			total += step

			assert.Equal(t, int(total/tick), state.updates)
			assert.Equal(t, total-time.Duration(state.updates)*tick, r.lag)
			assert.GreaterOrEqual(t, r.lag, time.Duration(0))
			assert.Less(t, r.lag, tick)
		}

		for _, dt := range state.draws {
			assert.GreaterOrEqual(t, dt, 0.0)
			assert.Less(t, dt, 1.0)
		}

		assert.Equal(t, uint64(state.updates), ctx.Stats().TickCount)
		assert.Equal(t, uint64(len(steps)), ctx.Stats().FrameCount)
	})

	t.Run("interpolation is zero after exact ticks", func(t *testing.T) {
		ctx, _, _ := newTestContext()
		r := newTestRunner(ctx, 2*tick)
		state := &recordingState{}

		r.iterate(state)

		assert.Equal(t, 2, state.updates)
		assert.Equal(t, []float64{0}, state.draws)
	})

	t.Run("catch up is unbounded by default", func(t *testing.T) {
		ctx, _, _ := newTestContext()
		r := newTestRunner(ctx, 100*tick)
		state := &recordingState{}

		r.iterate(state)

		assert.Equal(t, 100, state.updates)
		assert.Zero(t, ctx.Stats().DroppedTicks)
	})

	t.Run("tick limit drops whole ticks", func(t *testing.T) {
		ctx, _, _ := newTestContext()
		ctx.SetMaxTicksPerIteration(2)

		r := newTestRunner(ctx, 5*tick+tick/2)
		state := &recordingState{}

		r.iterate(state)

		assert.Equal(t, 2, state.updates)
		assert.Equal(t, uint64(3), ctx.Stats().DroppedTicks)
		assert.Equal(t, tick/2, r.lag)
		require.Len(t, state.draws, 1)
		assert.InDelta(t, 0.5, state.draws[0], 1e-9)
	})

	t.Run("tick rate change applies to the next iteration", func(t *testing.T) {
		ctx, _, _ := newTestContext()
		r := newTestRunner(ctx, 10*time.Millisecond, 10*time.Millisecond)

		state := &recordingState{}

		ctx.SetTickRate(20 * time.Millisecond)
		r.iterate(state)
		assert.Equal(t, 0, state.updates)

		ctx.SetTickRate(5 * time.Millisecond)
		r.iterate(state)
		assert.Equal(t, 4, state.updates)
		assert.Zero(t, r.lag)
	})

	t.Run("input is snapshotted before events", func(t *testing.T) {
		ctx, _, _ := newTestContext(
			[]glimpse.Event{glimpse.KeyDownEvent{Key: glimpse.KeySpace}},
			nil,
		)

		r := newTestRunner(ctx, tick, tick)

		var justPressed []bool
		state := &recordingState{}
		state.onUpdate = func(ctx *Context) {
			justPressed = append(justPressed, ctx.Input().IsKeyJustPressed(glimpse.KeySpace))
		}

		r.iterate(state)
		r.iterate(state)

		assert.Equal(t, []bool{true, false}, justPressed)
		assert.True(t, ctx.Input().IsKeyDown(glimpse.KeySpace))
	})
}

func TestRun(t *testing.T) {
	t.Run("quit event ends the loop after the current iteration", func(t *testing.T) {
		ctx, _, graphics := newTestContext(nil, []glimpse.Event{glimpse.QuitEvent{}})
		ctx.SetClock(&stepClock{now: time.Unix(0, 0), steps: []time.Duration{tick, tick, tick, tick}})

		state := &recordingState{}

		err := Run(ctx, state)
		require.NoError(t, err)

		assert.False(t, ctx.Running())
		assert.Equal(t, 2, state.updates)
		assert.Len(t, state.draws, 2)
		assert.Equal(t, 2, graphics.presents)
	})

	t.Run("escape ends the loop if enabled", func(t *testing.T) {
		ctx, _, _ := newTestContext([]glimpse.Event{glimpse.KeyDownEvent{Key: glimpse.KeyEscape}})
		ctx.SetQuitOnEscape(true)
		ctx.SetClock(&stepClock{now: time.Unix(0, 0), steps: []time.Duration{tick}})

		state := &recordingState{}
		require.NoError(t, Run(ctx, state))

		assert.Equal(t, 1, state.updates)
		assert.Len(t, state.draws, 1)
		assert.True(t, ctx.Input().IsKeyDown(glimpse.KeyEscape))
	})

	t.Run("quit from update completes the iteration", func(t *testing.T) {
		ctx, _, graphics := newTestContext()
		ctx.SetClock(&stepClock{now: time.Unix(0, 0), steps: []time.Duration{3 * tick, 3 * tick}})

		state := &recordingState{}
		state.onUpdate = func(ctx *Context) {
			ctx.Quit()
		}

		require.NoError(t, Run(ctx, state))

		// the simulation phase is not aborted half way
		assert.Equal(t, 3, state.updates)
		assert.Len(t, state.draws, 1)
		assert.Equal(t, 1, graphics.presents)
	})

	t.Run("runs without graphics", func(t *testing.T) {
		window := &fakeWindow{source: &fakeSource{batches: [][]glimpse.Event{nil, {glimpse.QuitEvent{}}}}}
		ctx := NewContext(window, nil, DefaultConfig())
		ctx.SetClock(&stepClock{now: time.Unix(0, 0), steps: []time.Duration{tick, tick}})

		state := &recordingState{}
		require.NoError(t, Run(ctx, state))

		assert.Equal(t, 2, state.updates)
	})

	t.Run("event source unavailable", func(t *testing.T) {
		ctx, window, _ := newTestContext()
		window.eventsErr = glimpse.ErrEventsClaimed

		state := &recordingState{}

		err := Run(ctx, state)
		assert.ErrorIs(t, err, glimpse.ErrEventsClaimed)
		assert.False(t, ctx.Running())
		assert.Zero(t, state.updates)
		assert.Empty(t, state.draws)
	})

	t.Run("initializer failure aborts before the loop", func(t *testing.T) {
		ctx, _, _ := newTestContext()

		errSetup := errors.New("setup failed")
		state := &initState{err: errSetup}

		err := Run(ctx, state)
		assert.ErrorIs(t, err, errSetup)
		assert.False(t, ctx.Running())
		assert.Zero(t, state.updates)
	})

	t.Run("initializer runs once before the first update", func(t *testing.T) {
		ctx, _, _ := newTestContext([]glimpse.Event{glimpse.QuitEvent{}})
		ctx.SetClock(&stepClock{now: time.Unix(0, 0), steps: []time.Duration{tick}})

		state := &initState{}
		state.onUpdate = func(ctx *Context) {
			assert.Equal(t, 1, state.initialized)
		}

		require.NoError(t, Run(ctx, state))
		assert.Equal(t, 1, state.initialized)
		assert.Equal(t, 1, state.updates)
	})

	t.Run("context can not run twice at the same time", func(t *testing.T) {
		ctx, _, _ := newTestContext()
		ctx.running = true

		err := Run(ctx, &recordingState{})
		assert.ErrorIs(t, err, ErrAlreadyRunning)
	})

	t.Run("close from update releases after the iteration", func(t *testing.T) {
		backend := &fakeBackend{}

		ctx, err := NewBuilder(backend).Build()
		require.NoError(t, err)

		ctx.SetClock(&stepClock{now: time.Unix(0, 0), steps: []time.Duration{tick, tick}})

		state := &recordingState{}
		state.onUpdate = func(ctx *Context) {
			ctx.Close()

			assert.False(t, ctx.Running())
			assert.False(t, backend.graphics.released)
			assert.False(t, backend.window.terminated)
		}

		require.NoError(t, Run(ctx, state))

		assert.Equal(t, 1, state.updates)
		assert.Len(t, state.draws, 1)
		assert.Equal(t, 1, backend.graphics.presents)
		assert.Zero(t, backend.graphics.presentsReleased)

		assert.True(t, backend.graphics.released)
		assert.True(t, backend.window.terminated)
		assert.True(t, backend.terminated)

		err = Run(ctx, &recordingState{})
		assert.ErrorIs(t, err, ErrClosed)
	})

	t.Run("close from initialize does not start the loop", func(t *testing.T) {
		backend := &fakeBackend{}

		ctx, err := NewBuilder(backend).Build()
		require.NoError(t, err)

		state := &closingInitState{}

		err = Run(ctx, state)
		assert.ErrorIs(t, err, ErrClosed)
		assert.Zero(t, state.updates)
		assert.Zero(t, backend.graphics.presents)
		assert.True(t, backend.graphics.released)
	})

	t.Run("runs again after initializer failure", func(t *testing.T) {
		ctx, _, _ := newTestContext([]glimpse.Event{glimpse.QuitEvent{}})
		ctx.SetClock(&stepClock{now: time.Unix(0, 0), steps: []time.Duration{tick}})

		err := Run(ctx, &initState{err: errors.New("setup failed")})
		require.Error(t, err)

		state := &initState{}
		require.NoError(t, Run(ctx, state))
		assert.Equal(t, 1, state.initialized)
		assert.Equal(t, 1, state.updates)
	})

	t.Run("runs again after a clean stop", func(t *testing.T) {
		ctx, _, graphics := newTestContext(
			[]glimpse.Event{glimpse.QuitEvent{}},
			[]glimpse.Event{glimpse.QuitEvent{}},
		)

		ctx.SetClock(NewManualClock(time.Unix(0, 0)))

		require.NoError(t, Run(ctx, &recordingState{}))
		require.NoError(t, Run(ctx, &recordingState{}))

		assert.False(t, ctx.Running())
		assert.Equal(t, 2, graphics.presents)
	})

	t.Run("context without window", func(t *testing.T) {
		ctx := NewContext(nil, nil, DefaultConfig())

		err := Run(ctx, &recordingState{})
		assert.ErrorIs(t, err, ErrNoWindow)
	})
}

type initState struct {
	recordingState
	err         error
	initialized int
}

func (s *initState) Initialize(ctx *Context) error {
	s.initialized++
	return s.err
}

type closingInitState struct {
	recordingState
}

func (s *closingInitState) Initialize(ctx *Context) error {
	ctx.Close()
	return nil
}
