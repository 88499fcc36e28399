//go:build linux

package hotkey

import "golang.design/x/hotkey"

// primaryModifier is what "CmdOrCtrl"/"primary" resolves to on Linux.
const primaryModifier = ModCtrl

var modifierMap = map[Modifier]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.Mod1, // Alt is Mod1 on X11
	ModSuper: hotkey.Mod4, // Super/Win is Mod4 on X11
}
