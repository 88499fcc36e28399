package hotkey

import "errors"

// ErrBackendUnavailable is returned when no backend can claim global
// shortcuts on the current system.
var ErrBackendUnavailable = errors.New("no hotkey backend available on this system")

// Backend abstracts the OS facility that turns a key chord into events.
// One implementation grabs keys exclusively (Windows, macOS, X11), another
// observes the input hook stream for sessions where grabs are unavailable.
type Backend interface {
	// Register claims the chord and returns a handle delivering keydown events.
	Register(c Chord) (Registration, error)

	// Name returns a short backend identifier for logging.
	Name() string

	// Available reports whether this backend can work on the current system.
	Available() bool
}

// Registration is an active chord binding.
type Registration interface {
	// Keydown returns a channel receiving one value per chord press.
	// The channel is closed by Close.
	Keydown() <-chan struct{}

	// Close releases the binding. The Keydown channel is closed and must
	// not be received from after Close returns.
	Close() error
}
