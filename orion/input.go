package orion

import (
	"log/slog"

	"github.com/oliverbestmann/tempo/glimpse"
	"github.com/oliverbestmann/tempo/glm"
)

type KeyCode = glimpse.Key
type MouseButton = glimpse.MouseButton

type keyStates [glimpse.KeyCount]bool
type buttonStates [glimpse.MouseButtonCount]bool

// InputState is a double buffered snapshot of the keyboard and mouse.
// It is written by the event pump only, user code reads it through the
// query methods.
type InputState struct {
	previousKeys keyStates
	currentKeys  keyStates

	previousButtons buttonStates
	currentButtons  buttonStates

	pointer glm.Vec2f
}

// beginFrame remembers the current state as the previous one.
// Both are arrays, so this is a copy and later writes to the
// current state do not leak into the previous one.
func (s *InputState) beginFrame() {
	s.previousKeys = s.currentKeys
	s.previousButtons = s.currentButtons
}

// setKey records the state of a key. Unknown keys are ignored.
func (s *InputState) setKey(key KeyCode, pressed bool) {
	if !key.Valid() {
		slog.Debug("Ignore unknown key", slog.Int("key", int(key)))
		return
	}

	s.currentKeys[key] = pressed
}

// setMouseButton records the state of a mouse button. Untracked buttons are ignored.
func (s *InputState) setMouseButton(button MouseButton, pressed bool) {
	if !button.Valid() {
		slog.Debug("Ignore unknown mouse button", slog.Int("button", int(button)))
		return
	}

	s.currentButtons[button] = pressed
}

func (s *InputState) setPointerPosition(x, y float32) {
	s.pointer = glm.Vec2f{x, y}
}

// IsKeyDown reports whether the key is currently held down.
func (s *InputState) IsKeyDown(key KeyCode) bool {
	return key.Valid() && s.currentKeys[key]
}

func (s *InputState) IsKeyUp(key KeyCode) bool {
	return !s.IsKeyDown(key)
}

// IsKeyJustPressed reports whether the key went down during this frame.
func (s *InputState) IsKeyJustPressed(key KeyCode) bool {
	return key.Valid() && s.currentKeys[key] && !s.previousKeys[key]
}

// IsKeyJustReleased reports whether the key went up during this frame.
func (s *InputState) IsKeyJustReleased(key KeyCode) bool {
	return key.Valid() && !s.currentKeys[key] && s.previousKeys[key]
}

func (s *InputState) IsMouseButtonDown(button MouseButton) bool {
	return button.Valid() && s.currentButtons[button]
}

func (s *InputState) IsMouseButtonJustPressed(button MouseButton) bool {
	return button.Valid() && s.currentButtons[button] && !s.previousButtons[button]
}

func (s *InputState) IsMouseButtonJustReleased(button MouseButton) bool {
	return button.Valid() && !s.currentButtons[button] && s.previousButtons[button]
}

// PointerPosition returns the last reported cursor position in window coordinates.
func (s *InputState) PointerPosition() glm.Vec2f {
	return s.pointer
}
