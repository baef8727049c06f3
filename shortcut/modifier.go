package shortcut

import (
	"fmt"
	"strings"
)

// Modifier is a modifier requirement of a shortcut. The combined modifiers
// (Ctrl, Shift, Alt, Meta) are satisfied by either physical key, the sided
// ones only by their own key.
type Modifier uint8

const (
	Alt Modifier = iota
	LeftAlt
	RightAlt
	Ctrl
	LeftCtrl
	RightCtrl
	Shift
	LeftShift
	RightShift
	Meta
	LeftMeta
	RightMeta

	numModifiers
)

var modifierNames = [numModifiers]string{
	Alt:        "Alt",
	LeftAlt:    "LeftAlt",
	RightAlt:   "RightAlt",
	Ctrl:       "Ctrl",
	LeftCtrl:   "LeftCtrl",
	RightCtrl:  "RightCtrl",
	Shift:      "Shift",
	LeftShift:  "LeftShift",
	RightShift: "RightShift",
	Meta:       "Meta",
	LeftMeta:   "LeftMeta",
	RightMeta:  "RightMeta",
}

// modifierKeys is the fixed mapping from a modifier to the physical keys
// that satisfy it.
var modifierKeys = [numModifiers][]Key{
	Alt:        {KeyLeftAlt, KeyRightAlt},
	LeftAlt:    {KeyLeftAlt},
	RightAlt:   {KeyRightAlt},
	Ctrl:       {KeyLeftCtrl, KeyRightCtrl},
	LeftCtrl:   {KeyLeftCtrl},
	RightCtrl:  {KeyRightCtrl},
	Shift:      {KeyLeftShift, KeyRightShift},
	LeftShift:  {KeyLeftShift},
	RightShift: {KeyRightShift},
	Meta:       {KeyLeftMeta, KeyRightMeta},
	LeftMeta:   {KeyLeftMeta},
	RightMeta:  {KeyRightMeta},
}

// modifierKeyList holds every physical modifier key.
var modifierKeyList = []Key{
	KeyLeftAlt, KeyRightAlt,
	KeyLeftCtrl, KeyRightCtrl,
	KeyLeftShift, KeyRightShift,
	KeyLeftMeta, KeyRightMeta,
}

// Keys returns the physical keys that satisfy m.
func (m Modifier) Keys() []Key {
	if m >= numModifiers {
		return nil
	}
	return modifierKeys[m]
}

// combined reports the combined modifier a sided modifier belongs to.
func (m Modifier) combined() (Modifier, bool) {
	switch m {
	case LeftAlt, RightAlt:
		return Alt, true
	case LeftCtrl, RightCtrl:
		return Ctrl, true
	case LeftShift, RightShift:
		return Shift, true
	case LeftMeta, RightMeta:
		return Meta, true
	}
	return 0, false
}

func (m Modifier) String() string {
	if m >= numModifiers {
		return fmt.Sprintf("Modifier(%d)", uint8(m))
	}
	return modifierNames[m]
}

// ParseModifier returns the modifier with the given name, e.g. "Ctrl".
func ParseModifier(name string) (Modifier, error) {
	for m, n := range modifierNames {
		if strings.EqualFold(n, name) {
			return Modifier(m), nil
		}
	}
	return 0, fmt.Errorf("unknown modifier %q", name)
}

// Modifiers is a set of Modifier. The zero value is the empty set.
type Modifiers uint16

// NewModifiers builds a set from mods. Sided modifiers are dropped when their
// combined modifier is also present, since the combined one already accepts
// both sides.
func NewModifiers(mods ...Modifier) Modifiers {
	var s Modifiers
	for _, m := range mods {
		if m < numModifiers {
			s |= 1 << m
		}
	}
	for m := range numModifiers {
		if c, ok := m.combined(); ok && s.Has(c) {
			s &^= 1 << m
		}
	}
	return s
}

// Has reports whether m is in the set.
func (s Modifiers) Has(m Modifier) bool {
	return m < numModifiers && s&(1<<m) != 0
}

// List returns the members in canonical order.
func (s Modifiers) List() []Modifier {
	var out []Modifier
	for m := range numModifiers {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

func (s Modifiers) Len() int {
	return len(s.List())
}

func (s Modifiers) IsEmpty() bool {
	return s == 0
}

// covers reports whether the physical key k is accepted by any member.
func (s Modifiers) covers(k Key) bool {
	for _, m := range s.List() {
		for _, mk := range modifierKeys[m] {
			if mk == k {
				return true
			}
		}
	}
	return false
}

// String renders the set as "<Ctrl><Alt>".
func (s Modifiers) String() string {
	var b strings.Builder
	for _, m := range s.List() {
		b.WriteByte('<')
		b.WriteString(m.String())
		b.WriteByte('>')
	}
	return b.String()
}

// ParseModifiers parses the "<Ctrl><Alt>" form.
func ParseModifiers(s string) (Modifiers, error) {
	if s != "" && !strings.HasSuffix(s, ">") {
		return 0, fmt.Errorf("unclosed modifier in %q", s)
	}
	var mods []Modifier
	for _, part := range strings.Split(s, ">") {
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, "<") {
			return 0, fmt.Errorf("invalid modifier %q", part)
		}
		m, err := ParseModifier(part[1:])
		if err != nil {
			return 0, err
		}
		mods = append(mods, m)
	}
	return NewModifiers(mods...), nil
}
