package glimpse

// MouseButton identifies a mouse button. Buttons are numbered the same way
// glfw numbers them: 0 is the left, 1 the right and 2 the middle button.
type MouseButton uint32

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// MouseButtonCount is the number of mouse buttons that are tracked.
const MouseButtonCount = 8

// Valid reports whether the button is tracked.
func (b MouseButton) Valid() bool {
	return int(b) < MouseButtonCount
}
