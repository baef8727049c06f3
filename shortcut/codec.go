package shortcut

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// struct input_event {
//     struct timeval time;  // two C longs
//     __u16 type;
//     __u16 code;
//     __s32 value;
// };
const (
	longSize = strconv.IntSize / 8

	// RecordSize is the size of one input_event: 24 bytes on 64-bit
	// platforms, 16 on 32-bit ones.
	RecordSize = 2*longSize + 8

	typeOffset  = 2 * longSize
	codeOffset  = typeOffset + 2
	valueOffset = codeOffset + 2
)

const (
	valueUp   = 0
	valueDown = 1
	valueHeld = 2
)

// ErrMalformedRecord is matched by every *MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed input record")

// MalformedRecordError reports a record that could not be decoded. It is
// local to that record; the device keeps being read.
type MalformedRecordError struct {
	Source string
	Len    int
	Value  int32
}

func (e *MalformedRecordError) Error() string {
	if e.Len != RecordSize {
		return fmt.Sprintf("%s: truncated input record (%d of %d bytes)", e.Source, e.Len, RecordSize)
	}
	return fmt.Sprintf("%s: invalid key value %d", e.Source, e.Value)
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

type transition uint8

const (
	transitionUp transition = iota
	transitionDown
	transitionHeld
)

func (t transition) String() string {
	switch t {
	case transitionUp:
		return "up"
	case transitionDown:
		return "down"
	case transitionHeld:
		return "held"
	}
	return "transition(" + strconv.Itoa(int(t)) + ")"
}

// keyEvent is one decoded key report from one device.
type keyEvent struct {
	Key        Key
	Transition transition
	Time       time.Time
	Source     string
}

// decodeRecord decodes one raw input_event. ok is false for records that
// are not key events or carry a key code outside the key table.
func decodeRecord(b []byte, source string) (ev keyEvent, ok bool, err error) {
	if len(b) != RecordSize {
		return keyEvent{}, false, &MalformedRecordError{Source: source, Len: len(b)}
	}

	evType := binary.NativeEndian.Uint16(b[typeOffset:])
	if evType != evKey {
		return keyEvent{}, false, nil
	}
	code := binary.NativeEndian.Uint16(b[codeOffset:])
	value := int32(binary.NativeEndian.Uint32(b[valueOffset:]))

	var t transition
	switch value {
	case valueUp:
		t = transitionUp
	case valueDown:
		t = transitionDown
	case valueHeld:
		t = transitionHeld
	default:
		return keyEvent{}, false, &MalformedRecordError{Source: source, Len: len(b), Value: value}
	}

	key, known := lookupKey(code)
	if !known {
		return keyEvent{}, false, nil
	}

	return keyEvent{
		Key:        key,
		Transition: t,
		Time:       decodeTime(b),
		Source:     source,
	}, true, nil
}

func decodeTime(b []byte) time.Time {
	var sec, usec int64
	if longSize == 8 {
		sec = int64(binary.NativeEndian.Uint64(b[0:]))
		usec = int64(binary.NativeEndian.Uint64(b[8:]))
	} else {
		sec = int64(int32(binary.NativeEndian.Uint32(b[0:])))
		usec = int64(int32(binary.NativeEndian.Uint32(b[4:])))
	}
	return time.Unix(sec, usec*int64(time.Microsecond))
}
