// Package hotkey binds global keyboard shortcuts to callbacks.
//
// A Registrar parses platform-neutral chord strings ("CmdOrCtrl+Space",
// "ctrl+shift+p") and registers them with the OS through a Backend. Each
// registration gets a dispatch goroutine that invokes the callback once per
// press; invocations for one chord are serialized by that goroutine.
package hotkey

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrAlreadyRegistered is returned when a chord is registered a second time
// within the same process before being unregistered.
var ErrAlreadyRegistered = errors.New("chord already registered")

// Registrar manages the lifecycle of global shortcut registrations.
type Registrar struct {
	backend Backend

	mu     sync.Mutex
	active map[string]Registration
}

// New creates a Registrar using the first backend usable on this system.
func New() (*Registrar, error) {
	backends := []Backend{newGrabBackend(), newHookBackend()}
	for _, b := range backends {
		if !b.Available() {
			continue
		}
		slog.Info("hotkey backend selected", "backend", b.Name())
		return NewWithBackend(b), nil
	}
	return nil, ErrBackendUnavailable
}

// NewWithBackend creates a Registrar on an explicit backend.
func NewWithBackend(b Backend) *Registrar {
	return &Registrar{
		backend: b,
		active:  make(map[string]Registration),
	}
}

// Register binds chord to fn. The binding stays active until Unregister or
// Close; fn runs on a dispatch goroutine owned by the Registrar, one
// invocation per press, never concurrently with itself.
//
// Registering a chord that is already bound in this process fails with
// ErrAlreadyRegistered. A chord claimed by another application fails with
// the backend's registration error.
func (r *Registrar) Register(chord string, fn func()) error {
	c, err := ParseChord(chord)
	if err != nil {
		return fmt.Errorf("parse chord %q: %w", chord, err)
	}
	canonical := c.String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.active[canonical]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, canonical)
	}

	reg, err := r.backend.Register(c)
	if err != nil {
		return fmt.Errorf("register %q: %w", canonical, err)
	}
	r.active[canonical] = reg

	go func() {
		for range reg.Keydown() {
			fn()
		}
	}()

	slog.Info("global shortcut registered", "chord", canonical, "backend", r.backend.Name())
	return nil
}

// Unregister releases a previously registered chord.
func (r *Registrar) Unregister(chord string) error {
	c, err := ParseChord(chord)
	if err != nil {
		return fmt.Errorf("parse chord %q: %w", chord, err)
	}
	canonical := c.String()

	r.mu.Lock()
	defer r.mu.Unlock()

	reg, exists := r.active[canonical]
	if !exists {
		return fmt.Errorf("chord not registered: %s", canonical)
	}
	delete(r.active, canonical)
	return reg.Close()
}

// Close releases every active registration.
func (r *Registrar) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for chord, reg := range r.active {
		if err := reg.Close(); err != nil {
			slog.Error("close hotkey registration", "chord", chord, "error", err)
		}
		delete(r.active, chord)
	}
}
