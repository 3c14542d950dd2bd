package core

import "fmt"

// KeyCode is the wire format between an input source and the command intake.
//
// Negative values are special keys (arrows and the like), encoded as the negated
// virtual key code. Non-negative values are ordinary characters, encoded as
// their rune value. The sign alone tells the two apart.
type KeyCode int

// Virtual key codes for the special keys the game understands.
const (
	VKLeft  = 37
	VKUp    = 38
	VKRight = 39
	VKDown  = 40
)

// Special keys in wire form.
const (
	KeyLeft  KeyCode = -VKLeft
	KeyUp    KeyCode = -VKUp
	KeyRight KeyCode = -VKRight
	KeyDown  KeyCode = -VKDown
)

// SpecialKey encodes a virtual key code as a special KeyCode.
func SpecialKey(vk int) KeyCode {
	if vk < 0 {
		vk = -vk
	}
	return KeyCode(-vk)
}

// CharKey encodes a character as a KeyCode.
func CharKey(r rune) KeyCode {
	return KeyCode(r)
}

// IsSpecial reports whether the code denotes a special (non-character) key.
func (k KeyCode) IsSpecial() bool {
	return k < 0
}

// VirtualKey returns the virtual key code of a special key, or 0.
func (k KeyCode) VirtualKey() int {
	if k < 0 {
		return int(-k)
	}
	return 0
}

// Rune returns the character of a non-special key, or 0.
func (k KeyCode) Rune() rune {
	if k < 0 {
		return 0
	}
	return rune(k)
}

// String returns a human-readable name for the key.
func (k KeyCode) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyUp:
		return "Up"
	case KeyRight:
		return "Right"
	case KeyDown:
		return "Down"
	}
	if k.IsSpecial() {
		return fmt.Sprintf("VK(%d)", k.VirtualKey())
	}
	return fmt.Sprintf("%q", k.Rune())
}
