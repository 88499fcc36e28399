package hotkey

import (
	"sync"

	hook "github.com/robotn/gohook"
)

// hookBackend observes the session's input hook stream via robotn/gohook
// instead of grabbing keys. It is the fallback for display servers that do
// not allow exclusive grabs (Wayland). The chord is not claimed from other
// applications, so in-process duplicate tracking is the only exclusivity.
type hookBackend struct {
	ds DisplayServer

	mu      sync.Mutex
	started bool
	active  int
}

func newHookBackend() *hookBackend {
	return &hookBackend{ds: DetectDisplayServer()}
}

func (b *hookBackend) Name() string { return "hook" }

// Available is false only when no display server was detected at all; an
// input hook needs a session to attach to.
func (b *hookBackend) Available() bool {
	return b.ds != DisplayServerUnknown
}

func (b *hookBackend) Register(c Chord) (Registration, error) {
	r := &hookRegistration{
		backend: b,
		ch:      make(chan struct{}, 1),
	}

	hook.Register(hook.KeyDown, c.hookSpec(), func(e hook.Event) {
		r.deliver()
	})

	b.mu.Lock()
	b.active++
	if !b.started {
		events := hook.Start()
		go func() {
			<-hook.Process(events)
		}()
		b.started = true
	}
	b.mu.Unlock()

	return r, nil
}

// hookSpec renders the chord as gohook's key-name slice, key first.
func (c Chord) hookSpec() []string {
	names := map[Modifier]string{
		ModCtrl:  "ctrl",
		ModShift: "shift",
		ModAlt:   "alt",
		ModSuper: "cmd",
	}
	keys := []string{c.Key}
	for _, m := range c.Mods {
		keys = append(keys, names[m])
	}
	return keys
}

type hookRegistration struct {
	backend *hookBackend
	mu      sync.Mutex
	ch      chan struct{}
	closed  bool
}

func (r *hookRegistration) deliver() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	select {
	case r.ch <- struct{}{}:
	default:
		// Press already pending, coalesce.
	}
}

func (r *hookRegistration) Keydown() <-chan struct{} { return r.ch }

// Close stops delivery. gohook has no per-binding unhook, so the stream
// keeps running until the last registration is closed.
func (r *hookRegistration) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.ch)
	r.mu.Unlock()

	b := r.backend
	b.mu.Lock()
	b.active--
	if b.active == 0 && b.started {
		hook.End()
		b.started = false
	}
	b.mu.Unlock()
	return nil
}
