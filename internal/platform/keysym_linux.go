//go:build linux

package platform

import "github.com/BurntSushi/xgb/xproto"

// keysymCodes maps unshifted X keysyms to virtual key codes. Keypad
// navigation keysyms (NumLock off) share codes with the main block.
var keysymCodes = map[xproto.Keysym]VirtualKeyCode{
	0x0030:     Key0,             // XK_0
	0x0031:     Key1,             // XK_1
	0x0032:     Key2,             // XK_2
	0x0033:     Key3,             // XK_3
	0x0034:     Key4,             // XK_4
	0x0035:     Key5,             // XK_5
	0x0036:     Key6,             // XK_6
	0x0037:     Key7,             // XK_7
	0x0038:     Key8,             // XK_8
	0x0039:     Key9,             // XK_9
	0x0061:     KeyA,             // XK_a
	0x0062:     KeyB,             // XK_b
	0x0063:     KeyC,             // XK_c
	0x0064:     KeyD,             // XK_d
	0x0065:     KeyE,             // XK_e
	0x0066:     KeyF,             // XK_f
	0x0067:     KeyG,             // XK_g
	0x0068:     KeyH,             // XK_h
	0x0069:     KeyI,             // XK_i
	0x006a:     KeyJ,             // XK_j
	0x006b:     KeyK,             // XK_k
	0x006c:     KeyL,             // XK_l
	0x006d:     KeyM,             // XK_m
	0x006e:     KeyN,             // XK_n
	0x006f:     KeyO,             // XK_o
	0x0070:     KeyP,             // XK_p
	0x0071:     KeyQ,             // XK_q
	0x0072:     KeyR,             // XK_r
	0x0073:     KeyS,             // XK_s
	0x0074:     KeyT,             // XK_t
	0x0075:     KeyU,             // XK_u
	0x0076:     KeyV,             // XK_v
	0x0077:     KeyW,             // XK_w
	0x0078:     KeyX,             // XK_x
	0x0079:     KeyY,             // XK_y
	0x007a:     KeyZ,             // XK_z
	0xff1b:     KeyEscape,        // Escape
	0xffbe:     KeyF1,            // F1
	0xffbf:     KeyF2,            // F2
	0xffc0:     KeyF3,            // F3
	0xffc1:     KeyF4,            // F4
	0xffc2:     KeyF5,            // F5
	0xffc3:     KeyF6,            // F6
	0xffc4:     KeyF7,            // F7
	0xffc5:     KeyF8,            // F8
	0xffc6:     KeyF9,            // F9
	0xffc7:     KeyF10,           // F10
	0xffc8:     KeyF11,           // F11
	0xffc9:     KeyF12,           // F12
	0xffca:     KeyF13,           // F13
	0xffcb:     KeyF14,           // F14
	0xffcc:     KeyF15,           // F15
	0xffcd:     KeyF16,           // F16
	0xffce:     KeyF17,           // F17
	0xffcf:     KeyF18,           // F18
	0xffd0:     KeyF19,           // F19
	0xffd1:     KeyF20,           // F20
	0xffd2:     KeyF21,           // F21
	0xffd3:     KeyF22,           // F22
	0xffd4:     KeyF23,           // F23
	0xffd5:     KeyF24,           // F24
	0xff61:     KeySnapshot,      // Print
	0xff14:     KeyScroll,        // Scroll_Lock
	0xff13:     KeyPause,         // Pause
	0xff63:     KeyInsert,        // Insert
	0xff50:     KeyHome,          // Home
	0xffff:     KeyDelete,        // Delete
	0xff57:     KeyEnd,           // End
	0xff56:     KeyPageDown,      // Next
	0xff55:     KeyPageUp,        // Prior
	0xff51:     KeyLeft,          // Left
	0xff52:     KeyUp,            // Up
	0xff53:     KeyRight,         // Right
	0xff54:     KeyDown,          // Down
	0xff08:     KeyBack,          // BackSpace
	0xff0d:     KeyReturn,        // Return
	0x0020:     KeySpace,         // space
	0xff20:     KeyCompose,       // Multi_key
	0xff7f:     KeyNumlock,       // Num_Lock
	0xffb0:     KeyNumpad0,       // KP_0
	0xffb1:     KeyNumpad1,       // KP_1
	0xffb2:     KeyNumpad2,       // KP_2
	0xffb3:     KeyNumpad3,       // KP_3
	0xffb4:     KeyNumpad4,       // KP_4
	0xffb5:     KeyNumpad5,       // KP_5
	0xffb6:     KeyNumpad6,       // KP_6
	0xffb7:     KeyNumpad7,       // KP_7
	0xffb8:     KeyNumpad8,       // KP_8
	0xffb9:     KeyNumpad9,       // KP_9
	0xffab:     KeyAdd,           // KP_Add
	0xffaf:     KeyDivide,        // KP_Divide
	0xffae:     KeyNumpadDecimal, // KP_Decimal
	0xffac:     KeyNumpadComma,   // KP_Separator
	0xff8d:     KeyNumpadEnter,   // KP_Enter
	0xffbd:     KeyNumpadEquals,  // KP_Equal
	0xffaa:     KeyMultiply,      // KP_Multiply
	0xffad:     KeySubtract,      // KP_Subtract
	0xff95:     KeyHome,          // KP_Home
	0xff96:     KeyLeft,          // KP_Left
	0xff97:     KeyUp,            // KP_Up
	0xff98:     KeyRight,         // KP_Right
	0xff99:     KeyDown,          // KP_Down
	0xff9a:     KeyPageUp,        // KP_Prior
	0xff9b:     KeyPageDown,      // KP_Next
	0xff9c:     KeyEnd,           // KP_End
	0xff9e:     KeyInsert,        // KP_Insert
	0xff9f:     KeyDelete,        // KP_Delete
	0x0027:     KeyApostrophe,    // apostrophe
	0xff67:     KeyApps,          // Menu
	0x002a:     KeyAsterisk,      // asterisk
	0x0040:     KeyAt,            // at
	0x005c:     KeyBackslash,     // backslash
	0xffe5:     KeyCapital,       // Caps_Lock
	0x003a:     KeyColon,         // colon
	0x002c:     KeyComma,         // comma
	0x003d:     KeyEquals,        // equal
	0x0060:     KeyGrave,         // grave
	0xff2d:     KeyKana,          // Kana_Lock
	0xff21:     KeyKanji,         // Kanji
	0xffe9:     KeyLAlt,          // Alt_L
	0x005b:     KeyLBracket,      // bracketleft
	0xffe3:     KeyLControl,      // Control_L
	0xffe1:     KeyLShift,        // Shift_L
	0xffeb:     KeyLWin,          // Super_L
	0x002d:     KeyMinus,         // minus
	0x002e:     KeyPeriod,        // period
	0x002b:     KeyPlus,          // plus
	0xffea:     KeyRAlt,          // Alt_R
	0xfe03:     KeyRAlt,          // ISO_Level3_Shift
	0x005d:     KeyRBracket,      // bracketright
	0xffe4:     KeyRControl,      // Control_R
	0xffe2:     KeyRShift,        // Shift_R
	0xffec:     KeyRWin,          // Super_R
	0x003b:     KeySemicolon,     // semicolon
	0x002f:     KeySlash,         // slash
	0xff15:     KeySysrq,         // Sys_Req
	0xff09:     KeyTab,           // Tab
	0xfe20:     KeyTab,           // ISO_Left_Tab
	0x005f:     KeyUnderline,     // underscore
	0x005e:     KeyCaret,         // asciicircum
	0x00a5:     KeyYen,           // yen
	0xff23:     KeyConvert,       // Henkan
	0xff22:     KeyNoConvert,     // Muhenkan
	0x1008ff12: KeyMute,          // XF86AudioMute
	0x1008ff11: KeyVolumeDown,    // XF86AudioLowerVolume
	0x1008ff13: KeyVolumeUp,      // XF86AudioRaiseVolume
	0x1008ff14: KeyPlayPause,     // XF86AudioPlay
	0x1008ff15: KeyMediaStop,     // XF86AudioStop
	0x1008ff16: KeyPrevTrack,     // XF86AudioPrev
	0x1008ff17: KeyNextTrack,     // XF86AudioNext
	0x1008ff19: KeyMail,          // XF86Mail
	0x1008ff1d: KeyCalculator,    // XF86Calculator
	0x1008ff33: KeyMyComputer,    // XF86MyComputer
	0x1008ff26: KeyWebBack,       // XF86Back
	0x1008ff27: KeyWebForward,    // XF86Forward
	0x1008ff18: KeyWebHome,       // XF86HomePage
	0x1008ff29: KeyWebRefresh,    // XF86Refresh
	0x1008ff1b: KeyWebSearch,     // XF86Search
	0x1008ff28: KeyWebStop,       // XF86Stop
	0x1008ff30: KeyWebFavorites,  // XF86Favorites
	0x1008ff2f: KeySleep,         // XF86Sleep
	0x1008ff2b: KeyWake,          // XF86WakeUp
	0x1008ff2a: KeyPower,         // XF86PowerOff
	0x1008ff57: KeyCopy,          // XF86Copy
	0x1008ff6d: KeyPaste,         // XF86Paste
	0x1008ff58: KeyCut,           // XF86Cut
}

// KeysymToKeyCode returns the virtual key for an unshifted keysym, or
// KeyNone when the keysym has no virtual key.
func KeysymToKeyCode(sym xproto.Keysym) VirtualKeyCode {
	return keysymCodes[sym]
}
