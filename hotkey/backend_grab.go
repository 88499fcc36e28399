package hotkey

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"
)

// grabBackend registers chords exclusively with the OS via
// golang.design/x/hotkey. Works on Windows, macOS, and X11; Wayland
// compositors do not allow key grabs.
type grabBackend struct {
	ds DisplayServer
}

func newGrabBackend() *grabBackend {
	return &grabBackend{ds: DetectDisplayServer()}
}

func (b *grabBackend) Name() string { return "grab" }

func (b *grabBackend) Available() bool {
	switch b.ds {
	case DisplayServerWindows, DisplayServerQuartz, DisplayServerX11:
		return true
	default:
		return false
	}
}

func (b *grabBackend) Register(c Chord) (Registration, error) {
	mods, key, err := c.grabSpec()
	if err != nil {
		return nil, err
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("os registration: %w", err)
	}

	r := &grabRegistration{
		hk:   hk,
		ch:   make(chan struct{}, 1),
		stop: make(chan struct{}),
	}
	go r.forward()
	return r, nil
}

// grabSpec translates a Chord into the library's platform types.
func (c Chord) grabSpec() ([]hotkey.Modifier, hotkey.Key, error) {
	key, ok := keyMap[c.Key]
	if !ok {
		return nil, 0, fmt.Errorf("unsupported key: %s", c.Key)
	}

	mods := make([]hotkey.Modifier, 0, len(c.Mods))
	for _, m := range c.Mods {
		pm, ok := modifierMap[m]
		if !ok {
			return nil, 0, fmt.Errorf("unsupported modifier: %s", m)
		}
		mods = append(mods, pm)
	}
	return mods, key, nil
}

type grabRegistration struct {
	hk   *hotkey.Hotkey
	ch   chan struct{}
	stop chan struct{}
	once sync.Once
}

func (r *grabRegistration) forward() {
	for {
		select {
		case <-r.stop:
			close(r.ch)
			return
		case <-r.hk.Keydown():
			select {
			case r.ch <- struct{}{}:
			case <-r.stop:
				close(r.ch)
				return
			}
		}
	}
}

func (r *grabRegistration) Keydown() <-chan struct{} { return r.ch }

func (r *grabRegistration) Close() error {
	r.once.Do(func() {
		close(r.stop)
		r.hk.Unregister()
	})
	return nil
}
