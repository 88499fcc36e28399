package hotkey

import "sync"

// FakeBackend is an in-memory Backend for tests. Presses are simulated
// with Press and delivered only to a registration matching the chord.
type FakeBackend struct {
	// RegisterErr, when set, is returned by the next Register call.
	RegisterErr error

	mu   sync.Mutex
	regs map[string]*fakeRegistration
}

func NewFakeBackend() *FakeBackend {
	return &FakeBackend{regs: make(map[string]*fakeRegistration)}
}

func (f *FakeBackend) Name() string    { return "fake" }
func (f *FakeBackend) Available() bool { return true }

func (f *FakeBackend) Register(c Chord) (Registration, error) {
	if f.RegisterErr != nil {
		err := f.RegisterErr
		f.RegisterErr = nil
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	r := &fakeRegistration{ch: make(chan struct{}, 8)}
	f.regs[c.String()] = r
	return r, nil
}

// Press simulates an OS-level key event for the given chord. Events for
// chords without a registration are dropped, as the OS would drop them.
func (f *FakeBackend) Press(chord string) {
	c, err := ParseChord(chord)
	if err != nil {
		return
	}

	f.mu.Lock()
	r, ok := f.regs[c.String()]
	f.mu.Unlock()
	if !ok {
		return
	}
	r.deliver()
}

type fakeRegistration struct {
	mu     sync.Mutex
	ch     chan struct{}
	closed bool
}

func (r *fakeRegistration) deliver() {
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

func (r *fakeRegistration) Keydown() <-chan struct{} { return r.ch }

func (r *fakeRegistration) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	close(r.ch)
	return nil
}
