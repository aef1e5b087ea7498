package gamevar

import (
	"errors"
	"fmt"
)

var (
	// ErrUnhooked is returned when the backend is no longer attached to the
	// target process. It is discovered lazily on the first access that
	// observes the detach; callers recover by hooking again.
	ErrUnhooked = errors.New("interface unhooked")

	// ErrHookingFailed is returned by a provider when discovery or attach
	// does not succeed.
	ErrHookingFailed = errors.New("hooking failed")

	// ErrInvalidValue is returned when decoded bytes do not correspond to
	// any valid value of the target type.
	ErrInvalidValue = errors.New("invalid value for target type")

	// ErrBackendIO is returned when a backend read or write failed for a
	// reason other than detachment.
	ErrBackendIO = errors.New("backend i/o failed")
)

// ErrInvalidPointer is returned when resolving a pointer path reads a null
// or unusable pointer. It wraps ErrBackendIO so callers classifying by the
// coarse taxonomy see a backend failure, not a detach.
var ErrInvalidPointer = fmt.Errorf("%w: invalid pointer read", ErrBackendIO)
