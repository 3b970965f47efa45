package orion

import "github.com/oliverbestmann/tempo/glm"

// Color is a straight rgba color in linear color space.
type Color = glm.Vec4f

var ColorBlack = Color{0, 0, 0, 1}
var ColorWhite = Color{1, 1, 1, 1}

// Graphics is the part of the graphics backend the runner depends on.
type Graphics interface {
	// Clear fills the frame that is currently being rendered with a color.
	Clear(color Color)

	// Resize adapts the render surface to a new framebuffer size.
	Resize(width, height uint32)

	// Present shows the completed frame. Errors are handled and
	// reported by the graphics backend itself.
	Present()
}
