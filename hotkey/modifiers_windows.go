//go:build windows

package hotkey

import "golang.design/x/hotkey"

// primaryModifier is what "CmdOrCtrl"/"primary" resolves to on Windows.
const primaryModifier = ModCtrl

var modifierMap = map[Modifier]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.ModAlt,
	ModSuper: hotkey.ModWin,
}
