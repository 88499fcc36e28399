package app

// Event names for frontend communication.
const (
	// EventToggleOverlay is broadcast to every window when the global
	// shortcut fires. It carries no payload; listeners toggle the overlay's
	// visibility on receipt.
	EventToggleOverlay = "toggle-overlay"
)
