package pulse

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/oliverbestmann/tempo/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

type ScreenOptions struct {
	// size of the surface in pixels
	Width  uint32
	Height uint32

	// wait for the vertical blank before presenting a frame
	VSync bool
}

// Screen renders into the surface of a window. A frame is acquired on the
// first draw call and handed to the window on Present.
type Screen struct {
	device *Device
	config wgpu.SurfaceConfiguration

	// true if the surface has a non zero size and was configured
	configured bool

	frame     *wgpu.Texture
	frameView *wgpu.TextureView
}

func NewScreen(device *Device, opts ScreenOptions) *Screen {
	caps := device.Surface.GetCapabilities(device.Adapter)

	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	format := wgpu.TextureFormatBGRA8Unorm
	if !slices.Contains(caps.Formats, format) && len(caps.Formats) > 0 {
		format = caps.Formats[0]
	}

	s := &Screen{
		device: device,
		config: wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      format,
			PresentMode: presentMode(caps.PresentModes, opts.VSync),
			AlphaMode:   caps.AlphaModes[0],

			// try to reduce input latency
			DesiredMaximumFrameLatency: 1,
		},
	}

	s.Resize(opts.Width, opts.Height)

	return s
}

func presentMode(available []wgpu.PresentMode, vsync bool) wgpu.PresentMode {
	if vsync {
		// fifo is always supported
		return wgpu.PresentModeFifo
	}

	for _, mode := range []wgpu.PresentMode{wgpu.PresentModeImmediate, wgpu.PresentModeMailbox} {
		if slices.Contains(available, mode) {
			return mode
		}
	}

	slog.Warn("Surface does not support presenting without vsync")
	return wgpu.PresentModeFifo
}

// Resize reconfigures the surface. A size of zero, e.g. for a minimized
// window, disables rendering until the next resize.
func (s *Screen) Resize(width, height uint32) {
	if s.configured && s.config.Width == width && s.config.Height == height {
		return
	}

	s.releaseFrame()

	s.config.Width = width
	s.config.Height = height
	s.configured = width > 0 && height > 0

	if !s.configured {
		slog.Debug("Surface has no size, rendering is paused")
		return
	}

	slog.Debug("Resize surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	s.device.Surface.Configure(s.device.Device, &s.config)
}

// Clear fills the current frame with the given linear rgba color.
func (s *Screen) Clear(color glm.Vec4f) {
	if err := s.acquireFrame(); err != nil {
		slog.Warn("Acquire frame failed", slog.String("err", err.Error()))
		return
	}

	if err := s.clear(color); err != nil {
		slog.Warn("Clear frame failed", slog.String("err", err.Error()))
	}
}

func (s *Screen) clear(color glm.Vec4f) error {
	enc, err := s.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "ClearScreen"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	r, g, b, a := color.XYZW()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ClearScreen",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    s.frameView,
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: float64(r),
					G: float64(g),
					B: float64(b),
					A: float64(a),
				},
			},
		},
	})

	err = pass.End()
	pass.Release()

	if err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ClearScreen"})
	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}

	defer buf.Release()

	s.device.Submit(buf)

	return nil
}

// Present hands the current frame to the window. If nothing was drawn
// this frame, an empty black frame is presented.
func (s *Screen) Present() {
	if !s.configured {
		return
	}

	if s.frame == nil {
		s.Clear(glm.Vec4f{0, 0, 0, 1})

		if s.frame == nil {
			return
		}
	}

	s.device.Surface.Present()

	// the surface owns the texture after a successful present
	s.frameView.Release()
	s.frameView = nil
	s.frame = nil
}

func (s *Screen) acquireFrame() error {
	if s.frame != nil {
		return nil
	}

	if !s.configured {
		return fmt.Errorf("surface not configured")
	}

	frame, err := s.device.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("get current texture: %w", err)
	}

	view, err := frame.CreateView(nil)
	if err != nil {
		frame.Release()
		return fmt.Errorf("create view: %w", err)
	}

	s.frame = frame
	s.frameView = view

	return nil
}

func (s *Screen) releaseFrame() {
	if s.frameView != nil {
		s.frameView.Release()
		s.frameView = nil
	}

	if s.frame != nil {
		s.frame.Release()
		s.frame = nil
	}
}

func (s *Screen) Release() {
	s.releaseFrame()
}
