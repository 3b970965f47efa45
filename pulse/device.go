package pulse

import (
	"log/slog"
	"os"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Device bundles the webgpu objects needed to render into a window surface.
type Device struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

// NewDevice creates a surface for the given descriptor and requests
// an adapter and device that can render to it.
func NewDevice(sd *wgpu.SurfaceDescriptor) (dev *Device, err error) {
	dev = &Device{}

	defer func() {
		if err != nil {
			dev.Release()
			dev = nil
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	dev.Surface = instance.CreateSurface(sd)

	dev.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    dev.Surface,
	})

	if err != nil {
		return
	}

	dev.Device, err = dev.Adapter.RequestDevice(nil)
	if err != nil {
		return
	}

	dev.Queue = dev.Device.GetQueue()

	slog.Debug("Graphics device ready",
		slog.Bool("fallbackAdapter", forceFallbackAdapter),
	)

	return dev, nil
}

func (d *Device) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
