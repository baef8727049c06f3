package shortcut

import (
	"fmt"
	"slices"
)

// Key is a physical key, identified by its kernel key code.
type Key uint16

var keyNames = map[Key]string{
	KeyA:            "KeyA",
	KeyB:            "KeyB",
	KeyC:            "KeyC",
	KeyD:            "KeyD",
	KeyE:            "KeyE",
	KeyF:            "KeyF",
	KeyG:            "KeyG",
	KeyH:            "KeyH",
	KeyI:            "KeyI",
	KeyJ:            "KeyJ",
	KeyK:            "KeyK",
	KeyL:            "KeyL",
	KeyM:            "KeyM",
	KeyN:            "KeyN",
	KeyO:            "KeyO",
	KeyP:            "KeyP",
	KeyQ:            "KeyQ",
	KeyR:            "KeyR",
	KeyS:            "KeyS",
	KeyT:            "KeyT",
	KeyU:            "KeyU",
	KeyV:            "KeyV",
	KeyW:            "KeyW",
	KeyX:            "KeyX",
	KeyY:            "KeyY",
	KeyZ:            "KeyZ",
	Key0:            "Key0",
	Key1:            "Key1",
	Key2:            "Key2",
	Key3:            "Key3",
	Key4:            "Key4",
	Key5:            "Key5",
	Key6:            "Key6",
	Key7:            "Key7",
	Key8:            "Key8",
	Key9:            "Key9",
	KeyF1:           "KeyF1",
	KeyF2:           "KeyF2",
	KeyF3:           "KeyF3",
	KeyF4:           "KeyF4",
	KeyF5:           "KeyF5",
	KeyF6:           "KeyF6",
	KeyF7:           "KeyF7",
	KeyF8:           "KeyF8",
	KeyF9:           "KeyF9",
	KeyF10:          "KeyF10",
	KeyF11:          "KeyF11",
	KeyF12:          "KeyF12",
	KeyF13:          "KeyF13",
	KeyF14:          "KeyF14",
	KeyF15:          "KeyF15",
	KeyF16:          "KeyF16",
	KeyF17:          "KeyF17",
	KeyF18:          "KeyF18",
	KeyF19:          "KeyF19",
	KeyF20:          "KeyF20",
	KeyF21:          "KeyF21",
	KeyF22:          "KeyF22",
	KeyF23:          "KeyF23",
	KeyF24:          "KeyF24",
	KeyEsc:          "KeyEsc",
	KeyMinus:        "KeyMinus",
	KeyEqual:        "KeyEqual",
	KeyBackspace:    "KeyBackspace",
	KeyTab:          "KeyTab",
	KeyLeftBrace:    "KeyLeftBrace",
	KeyRightBrace:   "KeyRightBrace",
	KeyEnter:        "KeyEnter",
	KeySemicolon:    "KeySemicolon",
	KeyApostrophe:   "KeyApostrophe",
	KeyGrave:        "KeyGrave",
	KeyBackslash:    "KeyBackslash",
	KeyComma:        "KeyComma",
	KeyDot:          "KeyDot",
	KeySlash:        "KeySlash",
	KeySpace:        "KeySpace",
	KeyCapsLock:     "KeyCapsLock",
	KeyNumLock:      "KeyNumLock",
	KeyScrollLock:   "KeyScrollLock",
	KeyLeftCtrl:     "KeyLeftCtrl",
	KeyRightCtrl:    "KeyRightCtrl",
	KeyLeftShift:    "KeyLeftShift",
	KeyRightShift:   "KeyRightShift",
	KeyLeftAlt:      "KeyLeftAlt",
	KeyRightAlt:     "KeyRightAlt",
	KeyLeftMeta:     "KeyLeftMeta",
	KeyRightMeta:    "KeyRightMeta",
	KeyCompose:      "KeyCompose",
	KeySysRq:        "KeySysRq",
	KeyPause:        "KeyPause",
	KeyPrint:        "KeyPrint",
	KeyHome:         "KeyHome",
	KeyEnd:          "KeyEnd",
	KeyPageUp:       "KeyPageUp",
	KeyPageDown:     "KeyPageDown",
	KeyInsert:       "KeyInsert",
	KeyDelete:       "KeyDelete",
	KeyUp:           "KeyUp",
	KeyDown:         "KeyDown",
	KeyLeft:         "KeyLeft",
	KeyRight:        "KeyRight",
	KeyKp0:          "KeyKp0",
	KeyKp1:          "KeyKp1",
	KeyKp2:          "KeyKp2",
	KeyKp3:          "KeyKp3",
	KeyKp4:          "KeyKp4",
	KeyKp5:          "KeyKp5",
	KeyKp6:          "KeyKp6",
	KeyKp7:          "KeyKp7",
	KeyKp8:          "KeyKp8",
	KeyKp9:          "KeyKp9",
	KeyKpAsterisk:   "KeyKpAsterisk",
	KeyKpMinus:      "KeyKpMinus",
	KeyKpPlus:       "KeyKpPlus",
	KeyKpDot:        "KeyKpDot",
	KeyKpEnter:      "KeyKpEnter",
	KeyKpSlash:      "KeyKpSlash",
	KeyMute:         "KeyMute",
	KeyVolumeDown:   "KeyVolumeDown",
	KeyVolumeUp:     "KeyVolumeUp",
	KeyPlayPause:    "KeyPlayPause",
	KeyNextSong:     "KeyNextSong",
	KeyPreviousSong: "KeyPreviousSong",
	KeyStopCD:       "KeyStopCD",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

// lookupKey maps a raw EV_KEY code to a Key.
func lookupKey(code uint16) (Key, bool) {
	k := Key(code)
	_, ok := keyNames[k]
	return k, ok
}

// ParseKey returns the key with the given name, e.g. "KeyN" or "KeyLeftCtrl".
func ParseKey(name string) (Key, error) {
	if k, ok := keysByName[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// Keys returns every known key ordered by code.
func Keys() []Key {
	keys := make([]Key, 0, len(keyNames))
	for k := range keyNames {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}
