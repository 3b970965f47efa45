package orion

import "fmt"

// PlatformInitError is returned by Builder.Build if the windowing
// or graphics subsystem could not be initialized.
type PlatformInitError struct {
	Err error
}

func (e *PlatformInitError) Error() string {
	return "initialize platform: " + e.Err.Error()
}

func (e *PlatformInitError) Unwrap() error {
	return e.Err
}

// WindowCreationError is returned by Builder.Build if the window
// could not be created.
type WindowCreationError struct {
	Err error
}

func (e *WindowCreationError) Error() string {
	return "create window: " + e.Err.Error()
}

func (e *WindowCreationError) Unwrap() error {
	return e.Err
}

// Handle panics with a description if err is not nil.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
