package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
)

// keycodeOffset is the X server's minimum keycode; scancodes are reported
// relative to it.
const keycodeOffset = 8

// Scancode converts an X keycode to a hardware scancode.
func Scancode(code xproto.Keycode) uint32 {
	if code < keycodeOffset {
		return 0
	}
	return uint32(code) - keycodeOffset
}

// LookupKeysym returns the unshifted keysym for code (used for key identity)
// and the keysym selected by the modifier state (used for text).
func (c *Connection) LookupKeysym(code xproto.Keycode, state uint16) (base, text xproto.Keysym) {
	base = keybind.KeysymGet(c.XUtil, code, 0)
	text = base
	if state&xproto.ModMaskShift != 0 {
		if shifted := keybind.KeysymGet(c.XUtil, code, 1); shifted != 0 {
			text = shifted
		}
	} else if state&xproto.ModMaskLock != 0 && base >= 'a' && base <= 'z' {
		text = base - ('a' - 'A')
	}
	return base, text
}

// KeysymToRune maps a keysym to the character it types. ok is false for
// keysyms that produce no text (modifiers, function keys, arrows).
func KeysymToRune(sym xproto.Keysym) (r rune, ok bool) {
	switch {
	// Latin-1 maps directly onto Unicode.
	case sym >= 0x20 && sym <= 0x7e, sym >= 0xa0 && sym <= 0xff:
		return rune(sym), true
	// Directly encoded Unicode keysyms.
	case sym >= 0x01000100 && sym <= 0x0110ffff:
		return rune(sym - 0x01000000), true
	case sym >= 0xffb0 && sym <= 0xffb9: // KP_0 .. KP_9
		return rune('0' + (sym - 0xffb0)), true
	}
	switch sym {
	case 0xff08: // BackSpace
		return '\b', true
	case 0xff09: // Tab
		return '\t', true
	case 0xff0d, 0xff8d: // Return, KP_Enter
		return '\r', true
	case 0xff1b: // Escape
		return 0x1b, true
	case 0xffff: // Delete
		return 0x7f, true
	case 0xff80: // KP_Space
		return ' ', true
	case 0xffaa: // KP_Multiply
		return '*', true
	case 0xffab: // KP_Add
		return '+', true
	case 0xffac: // KP_Separator
		return ',', true
	case 0xffad: // KP_Subtract
		return '-', true
	case 0xffae: // KP_Decimal
		return '.', true
	case 0xffaf: // KP_Divide
		return '/', true
	case 0xffbd: // KP_Equal
		return '=', true
	}
	return 0, false
}
