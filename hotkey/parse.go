package hotkey

import (
	"fmt"
	"slices"
	"strings"
)

// Modifier is a platform-neutral modifier key.
type Modifier uint8

const (
	ModCtrl Modifier = iota
	ModShift
	ModAlt
	ModSuper
)

func (m Modifier) String() string {
	switch m {
	case ModCtrl:
		return "ctrl"
	case ModShift:
		return "shift"
	case ModAlt:
		return "alt"
	case ModSuper:
		return "super"
	default:
		return "unknown"
	}
}

// Chord is a parsed key combination. Key is a normalized lowercase key name
// from keyMap; Mods are deduplicated and in canonical order.
type Chord struct {
	Mods []Modifier
	Key  string
}

// ParseChord parses a textual chord like "ctrl+shift+p" or "CmdOrCtrl+Space"
// into a Chord. "CmdOrCtrl" and "primary" resolve to Cmd on macOS and Ctrl
// everywhere else.
func ParseChord(s string) (Chord, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")

	keyStr := strings.TrimSpace(parts[len(parts)-1])
	if keyStr == "" {
		return Chord{}, fmt.Errorf("empty key in chord %q", s)
	}
	if _, ok := keyMap[keyStr]; !ok {
		return Chord{}, fmt.Errorf("unsupported key: %s", keyStr)
	}

	var mods []Modifier
	for _, part := range parts[:len(parts)-1] {
		switch strings.TrimSpace(part) {
		case "ctrl", "control":
			mods = append(mods, ModCtrl)
		case "shift":
			mods = append(mods, ModShift)
		case "alt", "option":
			mods = append(mods, ModAlt)
		case "super", "win", "cmd", "meta":
			mods = append(mods, ModSuper)
		case "cmdorctrl", "primary":
			mods = append(mods, primaryModifier)
		default:
			return Chord{}, fmt.Errorf("unsupported modifier: %s", part)
		}
	}

	slices.Sort(mods)
	mods = slices.Compact(mods)

	return Chord{Mods: mods, Key: keyStr}, nil
}

// String returns the canonical textual form of the chord. Two chord strings
// that resolve to the same combination produce the same canonical form.
func (c Chord) String() string {
	parts := make([]string, 0, len(c.Mods)+1)
	for _, m := range c.Mods {
		parts = append(parts, m.String())
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}
