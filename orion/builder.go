package orion

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/tempo/glimpse"
)

var ErrNoBackend = errors.New("no backend configured")

type GraphicsOptions struct {
	// size of the framebuffer in pixels
	Width  uint32
	Height uint32

	VSync bool
}

// Backend opens the platform services a Context runs on.
type Backend interface {
	// Init initializes the windowing system.
	Init() error

	OpenWindow(opts glimpse.WindowOptions) (glimpse.Window, error)

	// OpenGraphics initializes rendering to the given window. If the returned
	// Graphics has a Release method, it is called when the Context is closed.
	OpenGraphics(window glimpse.Window, opts GraphicsOptions) (Graphics, error)

	// Terminate shuts down the windowing system.
	Terminate()
}

type releaser interface{ Release() }

// Builder configures and creates a Context.
type Builder struct {
	backend Backend
	config  Config
}

func NewBuilder(backend Backend) *Builder {
	return &Builder{
		backend: backend,
		config:  DefaultConfig(),
	}
}

// Config replaces all settings of the builder.
func (b *Builder) Config(config Config) *Builder {
	b.config = config
	return b
}

func (b *Builder) Title(title string) *Builder {
	b.config.Title = title
	return b
}

// Size sets the logical size of the render target.
func (b *Builder) Size(width, height int) *Builder {
	b.config.Width = width
	b.config.Height = height
	return b
}

// Scale sets the factor the window is larger than the logical size.
func (b *Builder) Scale(scale int) *Builder {
	b.config.Scale = scale
	return b
}

func (b *Builder) VSync(vsync bool) *Builder {
	b.config.VSync = vsync
	return b
}

func (b *Builder) QuitOnEscape(quitOnEscape bool) *Builder {
	b.config.QuitOnEscape = quitOnEscape
	return b
}

func (b *Builder) TickRate(tickRate time.Duration) *Builder {
	b.config.TickRate = tickRate
	return b
}

func (b *Builder) MaxTicksPerIteration(n int) *Builder {
	b.config.MaxTicksPerIteration = n
	return b
}

// Build opens the window and graphics and returns a Context that is ready
// to be passed to Run. Resources acquired before a failure are released.
func (b *Builder) Build() (*Context, error) {
	if err := b.config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	config := b.config.withDefaults()

	if b.backend == nil {
		return nil, &PlatformInitError{Err: ErrNoBackend}
	}

	if err := b.backend.Init(); err != nil {
		return nil, &PlatformInitError{Err: err}
	}

	window, err := b.backend.OpenWindow(glimpse.WindowOptions{
		Title:  config.Title,
		Width:  config.Width * config.Scale,
		Height: config.Height * config.Scale,
	})

	if err != nil {
		b.backend.Terminate()
		return nil, &WindowCreationError{Err: err}
	}

	surfaceWidth, surfaceHeight := window.GetSize()

	graphics, err := b.backend.OpenGraphics(window, GraphicsOptions{
		Width:  surfaceWidth,
		Height: surfaceHeight,
		VSync:  config.VSync,
	})

	if err != nil {
		window.Terminate()
		b.backend.Terminate()
		return nil, &PlatformInitError{Err: fmt.Errorf("initialize graphics: %w", err)}
	}

	slog.Info("Context created",
		slog.String("title", config.Title),
		slog.Int("width", config.Width),
		slog.Int("height", config.Height),
		slog.Int("scale", config.Scale),
		slog.Bool("vsync", config.VSync),
	)

	ctx := NewContext(window, graphics, config)

	ctx.release = func() {
		if r, ok := graphics.(releaser); ok {
			r.Release()
		}

		window.Terminate()
		b.backend.Terminate()
	}

	return ctx, nil
}
