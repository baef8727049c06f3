//go:build linux

package shortcut

import evdev "github.com/holoplot/go-evdev"

const evKey = uint16(evdev.EV_KEY)

// Keys known to the decoder. Codes outside this set are ignored.
const (
	KeyA            Key = Key(evdev.KEY_A)
	KeyB            Key = Key(evdev.KEY_B)
	KeyC            Key = Key(evdev.KEY_C)
	KeyD            Key = Key(evdev.KEY_D)
	KeyE            Key = Key(evdev.KEY_E)
	KeyF            Key = Key(evdev.KEY_F)
	KeyG            Key = Key(evdev.KEY_G)
	KeyH            Key = Key(evdev.KEY_H)
	KeyI            Key = Key(evdev.KEY_I)
	KeyJ            Key = Key(evdev.KEY_J)
	KeyK            Key = Key(evdev.KEY_K)
	KeyL            Key = Key(evdev.KEY_L)
	KeyM            Key = Key(evdev.KEY_M)
	KeyN            Key = Key(evdev.KEY_N)
	KeyO            Key = Key(evdev.KEY_O)
	KeyP            Key = Key(evdev.KEY_P)
	KeyQ            Key = Key(evdev.KEY_Q)
	KeyR            Key = Key(evdev.KEY_R)
	KeyS            Key = Key(evdev.KEY_S)
	KeyT            Key = Key(evdev.KEY_T)
	KeyU            Key = Key(evdev.KEY_U)
	KeyV            Key = Key(evdev.KEY_V)
	KeyW            Key = Key(evdev.KEY_W)
	KeyX            Key = Key(evdev.KEY_X)
	KeyY            Key = Key(evdev.KEY_Y)
	KeyZ            Key = Key(evdev.KEY_Z)
	Key0            Key = Key(evdev.KEY_0)
	Key1            Key = Key(evdev.KEY_1)
	Key2            Key = Key(evdev.KEY_2)
	Key3            Key = Key(evdev.KEY_3)
	Key4            Key = Key(evdev.KEY_4)
	Key5            Key = Key(evdev.KEY_5)
	Key6            Key = Key(evdev.KEY_6)
	Key7            Key = Key(evdev.KEY_7)
	Key8            Key = Key(evdev.KEY_8)
	Key9            Key = Key(evdev.KEY_9)
	KeyF1           Key = Key(evdev.KEY_F1)
	KeyF2           Key = Key(evdev.KEY_F2)
	KeyF3           Key = Key(evdev.KEY_F3)
	KeyF4           Key = Key(evdev.KEY_F4)
	KeyF5           Key = Key(evdev.KEY_F5)
	KeyF6           Key = Key(evdev.KEY_F6)
	KeyF7           Key = Key(evdev.KEY_F7)
	KeyF8           Key = Key(evdev.KEY_F8)
	KeyF9           Key = Key(evdev.KEY_F9)
	KeyF10          Key = Key(evdev.KEY_F10)
	KeyF11          Key = Key(evdev.KEY_F11)
	KeyF12          Key = Key(evdev.KEY_F12)
	KeyF13          Key = Key(evdev.KEY_F13)
	KeyF14          Key = Key(evdev.KEY_F14)
	KeyF15          Key = Key(evdev.KEY_F15)
	KeyF16          Key = Key(evdev.KEY_F16)
	KeyF17          Key = Key(evdev.KEY_F17)
	KeyF18          Key = Key(evdev.KEY_F18)
	KeyF19          Key = Key(evdev.KEY_F19)
	KeyF20          Key = Key(evdev.KEY_F20)
	KeyF21          Key = Key(evdev.KEY_F21)
	KeyF22          Key = Key(evdev.KEY_F22)
	KeyF23          Key = Key(evdev.KEY_F23)
	KeyF24          Key = Key(evdev.KEY_F24)
	KeyEsc          Key = Key(evdev.KEY_ESC)
	KeyMinus        Key = Key(evdev.KEY_MINUS)
	KeyEqual        Key = Key(evdev.KEY_EQUAL)
	KeyBackspace    Key = Key(evdev.KEY_BACKSPACE)
	KeyTab          Key = Key(evdev.KEY_TAB)
	KeyLeftBrace    Key = Key(evdev.KEY_LEFTBRACE)
	KeyRightBrace   Key = Key(evdev.KEY_RIGHTBRACE)
	KeyEnter        Key = Key(evdev.KEY_ENTER)
	KeySemicolon    Key = Key(evdev.KEY_SEMICOLON)
	KeyApostrophe   Key = Key(evdev.KEY_APOSTROPHE)
	KeyGrave        Key = Key(evdev.KEY_GRAVE)
	KeyBackslash    Key = Key(evdev.KEY_BACKSLASH)
	KeyComma        Key = Key(evdev.KEY_COMMA)
	KeyDot          Key = Key(evdev.KEY_DOT)
	KeySlash        Key = Key(evdev.KEY_SLASH)
	KeySpace        Key = Key(evdev.KEY_SPACE)
	KeyCapsLock     Key = Key(evdev.KEY_CAPSLOCK)
	KeyNumLock      Key = Key(evdev.KEY_NUMLOCK)
	KeyScrollLock   Key = Key(evdev.KEY_SCROLLLOCK)
	KeyLeftCtrl     Key = Key(evdev.KEY_LEFTCTRL)
	KeyRightCtrl    Key = Key(evdev.KEY_RIGHTCTRL)
	KeyLeftShift    Key = Key(evdev.KEY_LEFTSHIFT)
	KeyRightShift   Key = Key(evdev.KEY_RIGHTSHIFT)
	KeyLeftAlt      Key = Key(evdev.KEY_LEFTALT)
	KeyRightAlt     Key = Key(evdev.KEY_RIGHTALT)
	KeyLeftMeta     Key = Key(evdev.KEY_LEFTMETA)
	KeyRightMeta    Key = Key(evdev.KEY_RIGHTMETA)
	KeyCompose      Key = Key(evdev.KEY_COMPOSE)
	KeySysRq        Key = Key(evdev.KEY_SYSRQ)
	KeyPause        Key = Key(evdev.KEY_PAUSE)
	KeyPrint        Key = Key(evdev.KEY_PRINT)
	KeyHome         Key = Key(evdev.KEY_HOME)
	KeyEnd          Key = Key(evdev.KEY_END)
	KeyPageUp       Key = Key(evdev.KEY_PAGEUP)
	KeyPageDown     Key = Key(evdev.KEY_PAGEDOWN)
	KeyInsert       Key = Key(evdev.KEY_INSERT)
	KeyDelete       Key = Key(evdev.KEY_DELETE)
	KeyUp           Key = Key(evdev.KEY_UP)
	KeyDown         Key = Key(evdev.KEY_DOWN)
	KeyLeft         Key = Key(evdev.KEY_LEFT)
	KeyRight        Key = Key(evdev.KEY_RIGHT)
	KeyKp0          Key = Key(evdev.KEY_KP0)
	KeyKp1          Key = Key(evdev.KEY_KP1)
	KeyKp2          Key = Key(evdev.KEY_KP2)
	KeyKp3          Key = Key(evdev.KEY_KP3)
	KeyKp4          Key = Key(evdev.KEY_KP4)
	KeyKp5          Key = Key(evdev.KEY_KP5)
	KeyKp6          Key = Key(evdev.KEY_KP6)
	KeyKp7          Key = Key(evdev.KEY_KP7)
	KeyKp8          Key = Key(evdev.KEY_KP8)
	KeyKp9          Key = Key(evdev.KEY_KP9)
	KeyKpAsterisk   Key = Key(evdev.KEY_KPASTERISK)
	KeyKpMinus      Key = Key(evdev.KEY_KPMINUS)
	KeyKpPlus       Key = Key(evdev.KEY_KPPLUS)
	KeyKpDot        Key = Key(evdev.KEY_KPDOT)
	KeyKpEnter      Key = Key(evdev.KEY_KPENTER)
	KeyKpSlash      Key = Key(evdev.KEY_KPSLASH)
	KeyMute         Key = Key(evdev.KEY_MUTE)
	KeyVolumeDown   Key = Key(evdev.KEY_VOLUMEDOWN)
	KeyVolumeUp     Key = Key(evdev.KEY_VOLUMEUP)
	KeyPlayPause    Key = Key(evdev.KEY_PLAYPAUSE)
	KeyNextSong     Key = Key(evdev.KEY_NEXTSONG)
	KeyPreviousSong Key = Key(evdev.KEY_PREVIOUSSONG)
	KeyStopCD       Key = Key(evdev.KEY_STOPCD)
)
