package orion

import (
	"iter"
	"slices"
	"time"

	"github.com/oliverbestmann/tempo/glimpse"
)

// fakeSource returns one batch of events per call to PollEvents.
type fakeSource struct {
	batches [][]glimpse.Event
	polls   int
}

func (s *fakeSource) PollEvents() iter.Seq[glimpse.Event] {
	var batch []glimpse.Event
	if s.polls < len(s.batches) {
		batch = s.batches[s.polls]
	}

	s.polls++
	return slices.Values(batch)
}

type fakeWindow struct {
	source    glimpse.EventSource
	eventsErr error

	width, height uint32

	claimed    bool
	terminated bool
}

func (w *fakeWindow) GetSize() (uint32, uint32) {
	return w.width, w.height
}

func (w *fakeWindow) Events() (glimpse.EventSource, error) {
	if w.eventsErr != nil {
		return nil, w.eventsErr
	}

	// like a platform window, the source is handed out once
	if w.claimed {
		return nil, glimpse.ErrEventsClaimed
	}

	w.claimed = true
	return w.source, nil
}

func (w *fakeWindow) Terminate() {
	w.terminated = true
}

type fakeGraphics struct {
	presents int

	// presents after Release was called
	presentsReleased int

	cleared  []Color
	resized  [][2]uint32
	released bool
}

func (g *fakeGraphics) Clear(color Color) {
	g.cleared = append(g.cleared, color)
}

func (g *fakeGraphics) Resize(width, height uint32) {
	g.resized = append(g.resized, [2]uint32{width, height})
}

func (g *fakeGraphics) Present() {
	g.presents++

	if g.released {
		g.presentsReleased++
	}
}

func (g *fakeGraphics) Release() {
	g.released = true
}

type fakeBackend struct {
	initErr     error
	windowErr   error
	graphicsErr error

	window   *fakeWindow
	graphics *fakeGraphics

	windowOpts   glimpse.WindowOptions
	graphicsOpts GraphicsOptions

	terminated bool
}

func (b *fakeBackend) Init() error {
	return b.initErr
}

func (b *fakeBackend) OpenWindow(opts glimpse.WindowOptions) (glimpse.Window, error) {
	if b.windowErr != nil {
		return nil, b.windowErr
	}

	b.windowOpts = opts
	b.window = &fakeWindow{
		source: &fakeSource{},
		width:  uint32(opts.Width),
		height: uint32(opts.Height),
	}

	return b.window, nil
}

func (b *fakeBackend) OpenGraphics(window glimpse.Window, opts GraphicsOptions) (Graphics, error) {
	if b.graphicsErr != nil {
		return nil, b.graphicsErr
	}

	b.graphicsOpts = opts
	b.graphics = &fakeGraphics{}
	return b.graphics, nil
}

func (b *fakeBackend) Terminate() {
	b.terminated = true
}

// stepClock advances by the next step on every call to Now, except the first one.
type stepClock struct {
	now   time.Time
	steps []time.Duration
	calls int
}

func (c *stepClock) Now() time.Time {
	if c.calls > 0 && c.calls-1 < len(c.steps) {
		c.now = c.now.Add(c.steps[c.calls-1])
	}

	c.calls++
	return c.now
}

type recordingState struct {
	updates int
	draws   []float64

	onUpdate func(ctx *Context)
}

func (s *recordingState) Update(ctx *Context) {
	s.updates++

	if s.onUpdate != nil {
		s.onUpdate(ctx)
	}
}

func (s *recordingState) Draw(ctx *Context, interpolation float64) {
	s.draws = append(s.draws, interpolation)
}

func newTestContext(batches ...[]glimpse.Event) (*Context, *fakeWindow, *fakeGraphics) {
	window := &fakeWindow{
		source: &fakeSource{batches: batches},
		width:  1280,
		height: 720,
	}

	graphics := &fakeGraphics{}

	ctx := NewContext(window, graphics, DefaultConfig())
	return ctx, window, graphics
}
