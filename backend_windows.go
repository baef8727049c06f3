package main

import (
	"golang.design/x/hotkey"

	"evshortcut/shortcut"
)

var hotkeyMods = map[shortcut.Modifier]hotkey.Modifier{
	shortcut.Ctrl: hotkey.ModCtrl, shortcut.LeftCtrl: hotkey.ModCtrl, shortcut.RightCtrl: hotkey.ModCtrl,
	shortcut.Shift: hotkey.ModShift, shortcut.LeftShift: hotkey.ModShift, shortcut.RightShift: hotkey.ModShift,
	shortcut.Alt: hotkey.ModAlt, shortcut.LeftAlt: hotkey.ModAlt, shortcut.RightAlt: hotkey.ModAlt,
	shortcut.Meta: hotkey.ModWin, shortcut.LeftMeta: hotkey.ModWin, shortcut.RightMeta: hotkey.ModWin,
}
