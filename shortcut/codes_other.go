//go:build !linux

package shortcut

// Kernel input event codes, for builds without the evdev bindings.
const evKey = 0x01

// Keys known to the decoder. Codes outside this set are ignored.
const (
	KeyA            Key = 30
	KeyB            Key = 48
	KeyC            Key = 46
	KeyD            Key = 32
	KeyE            Key = 18
	KeyF            Key = 33
	KeyG            Key = 34
	KeyH            Key = 35
	KeyI            Key = 23
	KeyJ            Key = 36
	KeyK            Key = 37
	KeyL            Key = 38
	KeyM            Key = 50
	KeyN            Key = 49
	KeyO            Key = 24
	KeyP            Key = 25
	KeyQ            Key = 16
	KeyR            Key = 19
	KeyS            Key = 31
	KeyT            Key = 20
	KeyU            Key = 22
	KeyV            Key = 47
	KeyW            Key = 17
	KeyX            Key = 45
	KeyY            Key = 21
	KeyZ            Key = 44
	Key0            Key = 11
	Key1            Key = 2
	Key2            Key = 3
	Key3            Key = 4
	Key4            Key = 5
	Key5            Key = 6
	Key6            Key = 7
	Key7            Key = 8
	Key8            Key = 9
	Key9            Key = 10
	KeyF1           Key = 59
	KeyF2           Key = 60
	KeyF3           Key = 61
	KeyF4           Key = 62
	KeyF5           Key = 63
	KeyF6           Key = 64
	KeyF7           Key = 65
	KeyF8           Key = 66
	KeyF9           Key = 67
	KeyF10          Key = 68
	KeyF11          Key = 87
	KeyF12          Key = 88
	KeyF13          Key = 183
	KeyF14          Key = 184
	KeyF15          Key = 185
	KeyF16          Key = 186
	KeyF17          Key = 187
	KeyF18          Key = 188
	KeyF19          Key = 189
	KeyF20          Key = 190
	KeyF21          Key = 191
	KeyF22          Key = 192
	KeyF23          Key = 193
	KeyF24          Key = 194
	KeyEsc          Key = 1
	KeyMinus        Key = 12
	KeyEqual        Key = 13
	KeyBackspace    Key = 14
	KeyTab          Key = 15
	KeyLeftBrace    Key = 26
	KeyRightBrace   Key = 27
	KeyEnter        Key = 28
	KeySemicolon    Key = 39
	KeyApostrophe   Key = 40
	KeyGrave        Key = 41
	KeyBackslash    Key = 43
	KeyComma        Key = 51
	KeyDot          Key = 52
	KeySlash        Key = 53
	KeySpace        Key = 57
	KeyCapsLock     Key = 58
	KeyNumLock      Key = 69
	KeyScrollLock   Key = 70
	KeyLeftCtrl     Key = 29
	KeyRightCtrl    Key = 97
	KeyLeftShift    Key = 42
	KeyRightShift   Key = 54
	KeyLeftAlt      Key = 56
	KeyRightAlt     Key = 100
	KeyLeftMeta     Key = 125
	KeyRightMeta    Key = 126
	KeyCompose      Key = 127
	KeySysRq        Key = 99
	KeyPause        Key = 119
	KeyPrint        Key = 210
	KeyHome         Key = 102
	KeyEnd          Key = 107
	KeyPageUp       Key = 104
	KeyPageDown     Key = 109
	KeyInsert       Key = 110
	KeyDelete       Key = 111
	KeyUp           Key = 103
	KeyDown         Key = 108
	KeyLeft         Key = 105
	KeyRight        Key = 106
	KeyKp0          Key = 82
	KeyKp1          Key = 79
	KeyKp2          Key = 80
	KeyKp3          Key = 81
	KeyKp4          Key = 75
	KeyKp5          Key = 76
	KeyKp6          Key = 77
	KeyKp7          Key = 71
	KeyKp8          Key = 72
	KeyKp9          Key = 73
	KeyKpAsterisk   Key = 55
	KeyKpMinus      Key = 74
	KeyKpPlus       Key = 78
	KeyKpDot        Key = 83
	KeyKpEnter      Key = 96
	KeyKpSlash      Key = 98
	KeyMute         Key = 113
	KeyVolumeDown   Key = 114
	KeyVolumeUp     Key = 115
	KeyPlayPause    Key = 164
	KeyNextSong     Key = 163
	KeyPreviousSong Key = 165
	KeyStopCD       Key = 166
)
