package broadcast

import "github.com/wailsapp/wails/v3/pkg/application"

// WailsEmitter adapts the Wails application event API to Emitter. Events
// emitted through it reach every open window's listeners.
type WailsEmitter struct {
	App *application.App
}

func (w WailsEmitter) Emit(name string, data any) {
	w.App.Event.Emit(name, data)
}
