package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/tempo/glimpse"
	"github.com/oliverbestmann/tempo/orion"
	"github.com/oliverbestmann/tempo/pulse"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/pkg/profile"
)

// Backend runs a Context in a glfw window and renders using webgpu.
type Backend struct {
	// Profile, if set, enables profiling from Init until Terminate,
	// e.g. []func(*profile.Profile){profile.CPUProfile}.
	Profile []func(*profile.Profile)

	prof interface{ Stop() }
}

// NewBuilder returns a Builder using the desktop Backend.
func NewBuilder() *orion.Builder {
	return orion.NewBuilder(&Backend{})
}

func (b *Backend) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}

	if len(b.Profile) > 0 {
		options := append([]func(*profile.Profile){profile.NoShutdownHook}, b.Profile...)
		b.prof = profile.Start(options...)
	}

	return nil
}

func (b *Backend) OpenWindow(opts glimpse.WindowOptions) (glimpse.Window, error) {
	return NewWindow(opts)
}

func (b *Backend) OpenGraphics(window glimpse.Window, opts orion.GraphicsOptions) (orion.Graphics, error) {
	win, ok := window.(*glfwWindow)
	if !ok {
		return nil, fmt.Errorf("unsupported window type %T", window)
	}

	device, err := pulse.NewDevice(wgpuglfw.GetSurfaceDescriptor(win.win))
	if err != nil {
		return nil, fmt.Errorf("create device: %w", err)
	}

	screen := pulse.NewScreen(device, pulse.ScreenOptions{
		Width:  opts.Width,
		Height: opts.Height,
		VSync:  opts.VSync,
	})

	return &graphics{Screen: screen, device: device}, nil
}

func (b *Backend) Terminate() {
	glfw.Terminate()

	if b.prof != nil {
		b.prof.Stop()
		b.prof = nil
	}
}

type graphics struct {
	*pulse.Screen
	device *pulse.Device
}

func (g *graphics) Release() {
	g.Screen.Release()
	g.device.Release()
}
