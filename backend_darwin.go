package main

import (
	"golang.design/x/hotkey"

	"evshortcut/shortcut"
)

var hotkeyMods = map[shortcut.Modifier]hotkey.Modifier{
	shortcut.Ctrl: hotkey.ModCtrl, shortcut.LeftCtrl: hotkey.ModCtrl, shortcut.RightCtrl: hotkey.ModCtrl,
	shortcut.Shift: hotkey.ModShift, shortcut.LeftShift: hotkey.ModShift, shortcut.RightShift: hotkey.ModShift,
	shortcut.Alt: hotkey.ModOption, shortcut.LeftAlt: hotkey.ModOption, shortcut.RightAlt: hotkey.ModOption,
	shortcut.Meta: hotkey.ModCmd, shortcut.LeftMeta: hotkey.ModCmd, shortcut.RightMeta: hotkey.ModCmd,
}
