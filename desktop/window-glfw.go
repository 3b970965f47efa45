package desktop

import (
	"fmt"
	"iter"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/tempo/glimpse"
)

func init() {
	// glfw must only be used from the main thread
	runtime.LockOSThread()
}

type glfwWindow struct {
	win   *glfw.Window
	queue glimpse.EventQueue

	claimed bool
	closed  bool

	// glfw key codes already reported as unknown
	unknownKeys *lru.Cache[glfw.Key, struct{}]
}

// NewWindow opens a window. glfw must be initialized.
func NewWindow(opts glimpse.WindowOptions) (glimpse.Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create glfw window: %w", err)
	}

	unknownKeys, err := lru.New[glfw.Key, struct{}](64)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create key cache: %w", err)
	}

	w := &glfwWindow{
		win:         window,
		unknownKeys: unknownKeys,
	}

	w.configureCallbacks()

	return w, nil
}

// GetSize returns the size of the framebuffer in pixels.
func (w *glfwWindow) GetSize() (uint32, uint32) {
	width, height := w.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (w *glfwWindow) Events() (glimpse.EventSource, error) {
	if w.closed {
		return nil, glimpse.ErrWindowClosed
	}

	if w.claimed {
		return nil, glimpse.ErrEventsClaimed
	}

	w.claimed = true
	return w, nil
}

// PollEvents lets glfw process its pending events. The callbacks
// push them to the queue, which is then drained.
func (w *glfwWindow) PollEvents() iter.Seq[glimpse.Event] {
	if !w.closed {
		glfw.PollEvents()
	}

	return w.queue.Drain()
}

func (w *glfwWindow) Terminate() {
	if w.closed {
		return
	}

	w.closed = true
	w.win.Destroy()
}

func (w *glfwWindow) configureCallbacks() {
	w.win.SetCloseCallback(func(_win *glfw.Window) {
		w.queue.Push(glimpse.QuitEvent{})
	})

	w.win.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		w.queue.Push(glimpse.ResizeEvent{Width: uint32(width), Height: uint32(height)})
	})

	w.win.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := w.keyOf(glfwKey, scancode)
		if !ok {
			return
		}

		switch action {
		case glfw.Press:
			w.queue.Push(glimpse.KeyDownEvent{Key: key})

		case glfw.Release:
			w.queue.Push(glimpse.KeyUpEvent{Key: key})
		}
	})

	w.win.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button := glimpse.MouseButton(btn)

		switch action {
		case glfw.Press:
			w.queue.Push(glimpse.MouseButtonDownEvent{Button: button})
		case glfw.Release:
			w.queue.Push(glimpse.MouseButtonUpEvent{Button: button})
		}
	})

	w.win.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		w.queue.Push(glimpse.PointerMovedEvent{X: float32(xpos), Y: float32(ypos)})
	})
}

func (w *glfwWindow) keyOf(glfwKey glfw.Key, scancode int) (glimpse.Key, bool) {
	key, ok := glfwToKey[glfwKey]
	if !ok && !w.unknownKeys.Contains(glfwKey) {
		w.unknownKeys.Add(glfwKey, struct{}{})

		slog.Warn(
			"Unknown key code",
			slog.String("key", glfw.GetKeyName(glfwKey, scancode)),
			slog.Int("code", int(glfwKey)),
		)
	}

	return key, ok
}

func glfwBool(value bool) int {
	if value {
		return glfw.True
	}

	return glfw.False
}
