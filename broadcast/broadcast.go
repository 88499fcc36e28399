// Package broadcast delivers named, payload-less events to every window of
// the running application through the shell's event system.
package broadcast

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrClosed is returned by Emit after the bus has been closed, which only
// happens while the application is shutting down.
var ErrClosed = errors.New("event bus closed")

// Emitter is the shell capability the bus fans out through. The Wails
// application event API satisfies it via WailsEmitter.
type Emitter interface {
	Emit(name string, data any)
}

// Bus broadcasts events to all attached listeners. Fan-out is synchronous
// and best-effort: zero listeners is a successful no-op, and no delivery
// acknowledgement exists.
type Bus struct {
	emitter Emitter
	closed  atomic.Bool
}

func New(e Emitter) *Bus {
	return &Bus{emitter: e}
}

// Emit broadcasts the named event with an empty payload. It is safe to call
// from any goroutine, including host-managed input callbacks.
func (b *Bus) Emit(name string) error {
	if b.closed.Load() {
		return fmt.Errorf("emit %q: %w", name, ErrClosed)
	}
	b.emitter.Emit(name, nil)
	return nil
}

// Close marks the bus as shut down. Subsequent Emit calls fail with
// ErrClosed instead of reaching a dying application handle.
func (b *Bus) Close() {
	b.closed.Store(true)
}
