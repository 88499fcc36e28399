package hotkey

import (
	"errors"
	"testing"
	"time"
)

func waitPress(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for callback")
	}
}

func expectNoPress(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
		t.Fatal("unexpected callback invocation")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRegisterDuplicateChordFails(t *testing.T) {
	r := NewWithBackend(NewFakeBackend())

	if err := r.Register("ctrl+shift+p", func() {}); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	// Same chord, different spelling: still one combination.
	err := r.Register("shift+control+p", func() {})
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("second Register error = %v, want ErrAlreadyRegistered", err)
	}
}

func TestCallbackFiresPerMatchingPress(t *testing.T) {
	fb := NewFakeBackend()
	r := NewWithBackend(fb)

	fired := make(chan struct{}, 8)
	if err := r.Register("ctrl+space", func() { fired <- struct{}{} }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	fb.Press("ctrl+space")
	waitPress(t, fired)

	fb.Press("ctrl+space")
	fb.Press("ctrl+space")
	waitPress(t, fired)
	waitPress(t, fired)

	expectNoPress(t, fired)
}

func TestCallbackIgnoresOtherChords(t *testing.T) {
	fb := NewFakeBackend()
	r := NewWithBackend(fb)

	fired := make(chan struct{}, 1)
	if err := r.Register("ctrl+space", func() { fired <- struct{}{} }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	fb.Press("ctrl+shift+space")
	fb.Press("alt+space")
	fb.Press("ctrl+b")
	expectNoPress(t, fired)
}

func TestRegisterBackendFailure(t *testing.T) {
	fb := NewFakeBackend()
	fb.RegisterErr = errors.New("hotkey already claimed by another application")
	r := NewWithBackend(fb)

	err := r.Register("ctrl+space", func() {})
	if err == nil {
		t.Fatal("Register succeeded, want error")
	}

	// The failed attempt must not leave residual state behind.
	if err := r.Register("ctrl+space", func() {}); err != nil {
		t.Fatalf("Register after failure: %v", err)
	}
}

func TestRegisterInvalidChord(t *testing.T) {
	r := NewWithBackend(NewFakeBackend())
	if err := r.Register("ctrl+nosuchkey", func() {}); err == nil {
		t.Fatal("Register accepted an invalid chord")
	}
}

func TestUnregisterStopsDelivery(t *testing.T) {
	fb := NewFakeBackend()
	r := NewWithBackend(fb)

	fired := make(chan struct{}, 1)
	if err := r.Register("ctrl+g", func() { fired <- struct{}{} }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := r.Unregister("ctrl+g"); err != nil {
		t.Fatalf("Unregister: %v", err)
	}

	fb.Press("ctrl+g")
	expectNoPress(t, fired)

	// Chord is free again after unregistering.
	if err := r.Register("ctrl+g", func() {}); err != nil {
		t.Fatalf("re-Register: %v", err)
	}
}

func TestUnregisterUnknownChord(t *testing.T) {
	r := NewWithBackend(NewFakeBackend())
	if err := r.Unregister("ctrl+g"); err == nil {
		t.Fatal("Unregister of unknown chord succeeded")
	}
}

func TestBackendAvailability(t *testing.T) {
	tests := []struct {
		ds   DisplayServer
		grab bool
		hook bool
	}{
		{DisplayServerWindows, true, true},
		{DisplayServerQuartz, true, true},
		{DisplayServerX11, true, true},
		{DisplayServerWayland, false, true},
		{DisplayServerUnknown, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.ds.String(), func(t *testing.T) {
			if got := (&grabBackend{ds: tt.ds}).Available(); got != tt.grab {
				t.Errorf("grab Available() = %v, want %v", got, tt.grab)
			}
			// With no display server at all, neither backend can work and
			// registrar construction must fail.
			if got := (&hookBackend{ds: tt.ds}).Available(); got != tt.hook {
				t.Errorf("hook Available() = %v, want %v", got, tt.hook)
			}
		})
	}
}

func TestPressConcurrentWithClose(t *testing.T) {
	fb := NewFakeBackend()
	r := NewWithBackend(fb)

	if err := r.Register("ctrl+space", func() {}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Presses racing the unregistration must be delivered or dropped,
	// never panic on a closed channel.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			fb.Press("ctrl+space")
		}
	}()

	r.Close()
	<-done
}

func TestCloseReleasesAll(t *testing.T) {
	fb := NewFakeBackend()
	r := NewWithBackend(fb)

	fired := make(chan struct{}, 2)
	for _, chord := range []string{"ctrl+1", "ctrl+2"} {
		if err := r.Register(chord, func() { fired <- struct{}{} }); err != nil {
			t.Fatalf("Register %s: %v", chord, err)
		}
	}

	r.Close()

	fb.Press("ctrl+1")
	fb.Press("ctrl+2")
	expectNoPress(t, fired)
}
