//go:build darwin

package hotkey

import "golang.design/x/hotkey"

// primaryModifier is what "CmdOrCtrl"/"primary" resolves to on macOS.
const primaryModifier = ModSuper

var modifierMap = map[Modifier]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.ModOption,
	ModSuper: hotkey.ModCmd,
}
