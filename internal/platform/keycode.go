package platform

import "strings"

// VirtualKeyCode identifies a key by its layout-independent meaning as
// reported by the native backend. The zero value is KeyNone.
type VirtualKeyCode uint16

const (
	KeyNone VirtualKeyCode = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeySnapshot
	KeyScroll
	KeyPause
	KeyInsert
	KeyHome
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyPageUp
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyBack
	KeyReturn
	KeySpace
	KeyCompose
	KeyCaret
	KeyNumlock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadDivide
	KeyNumpadDecimal
	KeyNumpadComma
	KeyNumpadEnter
	KeyNumpadEquals
	KeyNumpadMultiply
	KeyNumpadSubtract
	KeyAbntC1
	KeyAbntC2
	KeyAdd
	KeyApostrophe
	KeyApps
	KeyAsterisk
	KeyAt
	KeyAx
	KeyBackslash
	KeyCalculator
	KeyCapital
	KeyColon
	KeyComma
	KeyConvert
	KeyDivide
	KeyEquals
	KeyGrave
	KeyKana
	KeyKanji
	KeyLAlt
	KeyLBracket
	KeyLControl
	KeyLShift
	KeyLWin
	KeyMail
	KeyMediaSelect
	KeyMediaStop
	KeyMinus
	KeyMultiply
	KeyMute
	KeyMyComputer
	KeyNavigateForward
	KeyNavigateBackward
	KeyNextTrack
	KeyNoConvert
	KeyOEM102
	KeyPeriod
	KeyPlayPause
	KeyPlus
	KeyPower
	KeyPrevTrack
	KeyRAlt
	KeyRBracket
	KeyRControl
	KeyRShift
	KeyRWin
	KeySemicolon
	KeySlash
	KeySleep
	KeyStop
	KeySubtract
	KeySysrq
	KeyTab
	KeyUnderline
	KeyUnlabeled
	KeyVolumeDown
	KeyVolumeUp
	KeyWake
	KeyWebBack
	KeyWebFavorites
	KeyWebForward
	KeyWebHome
	KeyWebRefresh
	KeyWebSearch
	KeyWebStop
	KeyYen
	KeyCopy
	KeyPaste
	KeyCut

	// keyCodeCount is one past the last valid code.
	keyCodeCount
)

var keyCodeNames = [...]string{
	KeyNone:             "None",
	Key1:                "Key1",
	Key2:                "Key2",
	Key3:                "Key3",
	Key4:                "Key4",
	Key5:                "Key5",
	Key6:                "Key6",
	Key7:                "Key7",
	Key8:                "Key8",
	Key9:                "Key9",
	Key0:                "Key0",
	KeyA:                "A",
	KeyB:                "B",
	KeyC:                "C",
	KeyD:                "D",
	KeyE:                "E",
	KeyF:                "F",
	KeyG:                "G",
	KeyH:                "H",
	KeyI:                "I",
	KeyJ:                "J",
	KeyK:                "K",
	KeyL:                "L",
	KeyM:                "M",
	KeyN:                "N",
	KeyO:                "O",
	KeyP:                "P",
	KeyQ:                "Q",
	KeyR:                "R",
	KeyS:                "S",
	KeyT:                "T",
	KeyU:                "U",
	KeyV:                "V",
	KeyW:                "W",
	KeyX:                "X",
	KeyY:                "Y",
	KeyZ:                "Z",
	KeyEscape:           "Escape",
	KeyF1:               "F1",
	KeyF2:               "F2",
	KeyF3:               "F3",
	KeyF4:               "F4",
	KeyF5:               "F5",
	KeyF6:               "F6",
	KeyF7:               "F7",
	KeyF8:               "F8",
	KeyF9:               "F9",
	KeyF10:              "F10",
	KeyF11:              "F11",
	KeyF12:              "F12",
	KeyF13:              "F13",
	KeyF14:              "F14",
	KeyF15:              "F15",
	KeyF16:              "F16",
	KeyF17:              "F17",
	KeyF18:              "F18",
	KeyF19:              "F19",
	KeyF20:              "F20",
	KeyF21:              "F21",
	KeyF22:              "F22",
	KeyF23:              "F23",
	KeyF24:              "F24",
	KeySnapshot:         "Snapshot",
	KeyScroll:           "Scroll",
	KeyPause:            "Pause",
	KeyInsert:           "Insert",
	KeyHome:             "Home",
	KeyDelete:           "Delete",
	KeyEnd:              "End",
	KeyPageDown:         "PageDown",
	KeyPageUp:           "PageUp",
	KeyLeft:             "Left",
	KeyUp:               "Up",
	KeyRight:            "Right",
	KeyDown:             "Down",
	KeyBack:             "Back",
	KeyReturn:           "Return",
	KeySpace:            "Space",
	KeyCompose:          "Compose",
	KeyCaret:            "Caret",
	KeyNumlock:          "Numlock",
	KeyNumpad0:          "Numpad0",
	KeyNumpad1:          "Numpad1",
	KeyNumpad2:          "Numpad2",
	KeyNumpad3:          "Numpad3",
	KeyNumpad4:          "Numpad4",
	KeyNumpad5:          "Numpad5",
	KeyNumpad6:          "Numpad6",
	KeyNumpad7:          "Numpad7",
	KeyNumpad8:          "Numpad8",
	KeyNumpad9:          "Numpad9",
	KeyNumpadAdd:        "NumpadAdd",
	KeyNumpadDivide:     "NumpadDivide",
	KeyNumpadDecimal:    "NumpadDecimal",
	KeyNumpadComma:      "NumpadComma",
	KeyNumpadEnter:      "NumpadEnter",
	KeyNumpadEquals:     "NumpadEquals",
	KeyNumpadMultiply:   "NumpadMultiply",
	KeyNumpadSubtract:   "NumpadSubtract",
	KeyAbntC1:           "AbntC1",
	KeyAbntC2:           "AbntC2",
	KeyAdd:              "Add",
	KeyApostrophe:       "Apostrophe",
	KeyApps:             "Apps",
	KeyAsterisk:         "Asterisk",
	KeyAt:               "At",
	KeyAx:               "Ax",
	KeyBackslash:        "Backslash",
	KeyCalculator:       "Calculator",
	KeyCapital:          "Capital",
	KeyColon:            "Colon",
	KeyComma:            "Comma",
	KeyConvert:          "Convert",
	KeyDivide:           "Divide",
	KeyEquals:           "Equals",
	KeyGrave:            "Grave",
	KeyKana:             "Kana",
	KeyKanji:            "Kanji",
	KeyLAlt:             "LAlt",
	KeyLBracket:         "LBracket",
	KeyLControl:         "LControl",
	KeyLShift:           "LShift",
	KeyLWin:             "LWin",
	KeyMail:             "Mail",
	KeyMediaSelect:      "MediaSelect",
	KeyMediaStop:        "MediaStop",
	KeyMinus:            "Minus",
	KeyMultiply:         "Multiply",
	KeyMute:             "Mute",
	KeyMyComputer:       "MyComputer",
	KeyNavigateForward:  "NavigateForward",
	KeyNavigateBackward: "NavigateBackward",
	KeyNextTrack:        "NextTrack",
	KeyNoConvert:        "NoConvert",
	KeyOEM102:           "OEM102",
	KeyPeriod:           "Period",
	KeyPlayPause:        "PlayPause",
	KeyPlus:             "Plus",
	KeyPower:            "Power",
	KeyPrevTrack:        "PrevTrack",
	KeyRAlt:             "RAlt",
	KeyRBracket:         "RBracket",
	KeyRControl:         "RControl",
	KeyRShift:           "RShift",
	KeyRWin:             "RWin",
	KeySemicolon:        "Semicolon",
	KeySlash:            "Slash",
	KeySleep:            "Sleep",
	KeyStop:             "Stop",
	KeySubtract:         "Subtract",
	KeySysrq:            "Sysrq",
	KeyTab:              "Tab",
	KeyUnderline:        "Underline",
	KeyUnlabeled:        "Unlabeled",
	KeyVolumeDown:       "VolumeDown",
	KeyVolumeUp:         "VolumeUp",
	KeyWake:             "Wake",
	KeyWebBack:          "WebBack",
	KeyWebFavorites:     "WebFavorites",
	KeyWebForward:       "WebForward",
	KeyWebHome:          "WebHome",
	KeyWebRefresh:       "WebRefresh",
	KeyWebSearch:        "WebSearch",
	KeyWebStop:          "WebStop",
	KeyYen:              "Yen",
	KeyCopy:             "Copy",
	KeyPaste:            "Paste",
	KeyCut:              "Cut",
}

func (k VirtualKeyCode) String() string {
	if k >= keyCodeCount {
		return "Invalid"
	}
	return keyCodeNames[k]
}

// AllKeyCodes returns every valid VirtualKeyCode except KeyNone, in
// declaration order.
func AllKeyCodes() []VirtualKeyCode {
	codes := make([]VirtualKeyCode, 0, keyCodeCount-1)
	for k := KeyNone + 1; k < keyCodeCount; k++ {
		codes = append(codes, k)
	}
	return codes
}

// ParseKeyCode looks a key code up by its String name, ignoring case.
func ParseKeyCode(name string) (VirtualKeyCode, bool) {
	for _, k := range AllKeyCodes() {
		if strings.EqualFold(keyCodeNames[k], name) {
			return k, true
		}
	}
	return KeyNone, false
}

// MouseButtonKind distinguishes the named buttons from backend-specific
// extra buttons.
type MouseButtonKind uint8

const (
	ButtonLeft MouseButtonKind = iota
	ButtonRight
	ButtonMiddle
	ButtonOther
)

// MouseButton is a native mouse button. Index is meaningful only for
// ButtonOther and counts extra buttons from zero.
type MouseButton struct {
	Kind  MouseButtonKind
	Index uint16
}

// OtherButton returns the extra button with the given index.
func OtherButton(index uint16) MouseButton {
	return MouseButton{Kind: ButtonOther, Index: index}
}
