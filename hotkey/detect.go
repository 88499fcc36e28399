package hotkey

import (
	"os"
	"runtime"
)

// DisplayServer identifies the windowing system delivering global input.
type DisplayServer int

const (
	DisplayServerUnknown DisplayServer = iota
	DisplayServerWindows
	DisplayServerQuartz
	DisplayServerX11
	DisplayServerWayland
)

func (ds DisplayServer) String() string {
	switch ds {
	case DisplayServerWindows:
		return "windows"
	case DisplayServerQuartz:
		return "quartz"
	case DisplayServerX11:
		return "x11"
	case DisplayServerWayland:
		return "wayland"
	default:
		return "unknown"
	}
}

// DetectDisplayServer determines which display server is currently in use.
// Safe to call on any platform.
func DetectDisplayServer() DisplayServer {
	switch runtime.GOOS {
	case "windows":
		return DisplayServerWindows
	case "darwin":
		return DisplayServerQuartz
	}

	// Check Wayland first, it is the more specific signal.
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return DisplayServerWayland
	}
	if os.Getenv("DISPLAY") != "" {
		return DisplayServerX11
	}
	return DisplayServerUnknown
}
