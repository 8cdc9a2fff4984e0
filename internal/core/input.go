package core

import "strings"

// Key is a physical control the game reads, abstracted from the platform's
// scancodes and terminal key names.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// AllKeys lists every key in declaration order.
var AllKeys = []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyFire}

// KeySet is the set of keys held down at the moment it was sampled.
// The zero value is the empty set.
type KeySet uint8

// NewKeySet creates a set holding the given keys.
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns a copy of the set with k added.
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// String lists the held keys, e.g. "Left+Fire".
func (s KeySet) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	for _, k := range AllKeys {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, "+")
}

// InputFrame is everything the game reads from the platform for one frame:
// the pressed-key set and the monotonic clock reading in milliseconds.
type InputFrame struct {
	Keys KeySet
	Now  int64
}
