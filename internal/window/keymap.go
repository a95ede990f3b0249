package window

import (
	"github.com/1broseidon/xwin/internal/input"
	"github.com/1broseidon/xwin/internal/platform"
)

// MapKey maps a native virtual key to a normalized key. Every native code
// is listed; codes without a normalized equivalent map to KeyUnknown.
func MapKey(code platform.VirtualKeyCode) input.Key {
	switch code {
	case platform.Key0:
		return input.KeyD0
	case platform.Key1:
		return input.KeyD1
	case platform.Key2:
		return input.KeyD2
	case platform.Key3:
		return input.KeyD3
	case platform.Key4:
		return input.KeyD4
	case platform.Key5:
		return input.KeyD5
	case platform.Key6:
		return input.KeyD6
	case platform.Key7:
		return input.KeyD7
	case platform.Key8:
		return input.KeyD8
	case platform.Key9:
		return input.KeyD9
	case platform.KeyA:
		return input.KeyA
	case platform.KeyB:
		return input.KeyB
	case platform.KeyC:
		return input.KeyC
	case platform.KeyD:
		return input.KeyD
	case platform.KeyE:
		return input.KeyE
	case platform.KeyF:
		return input.KeyF
	case platform.KeyG:
		return input.KeyG
	case platform.KeyH:
		return input.KeyH
	case platform.KeyI:
		return input.KeyI
	case platform.KeyJ:
		return input.KeyJ
	case platform.KeyK:
		return input.KeyK
	case platform.KeyL:
		return input.KeyL
	case platform.KeyM:
		return input.KeyM
	case platform.KeyN:
		return input.KeyN
	case platform.KeyO:
		return input.KeyO
	case platform.KeyP:
		return input.KeyP
	case platform.KeyQ:
		return input.KeyQ
	case platform.KeyR:
		return input.KeyR
	case platform.KeyS:
		return input.KeyS
	case platform.KeyT:
		return input.KeyT
	case platform.KeyU:
		return input.KeyU
	case platform.KeyV:
		return input.KeyV
	case platform.KeyW:
		return input.KeyW
	case platform.KeyX:
		return input.KeyX
	case platform.KeyY:
		return input.KeyY
	case platform.KeyZ:
		return input.KeyZ
	case platform.KeyBackslash:
		return input.KeyBackslash
	case platform.KeyBack:
		return input.KeyBackspace
	case platform.KeyDelete:
		return input.KeyDelete
	case platform.KeyComma:
		return input.KeyComma
	case platform.KeyDown:
		return input.KeyDown
	case platform.KeyEnd:
		return input.KeyEnd
	case platform.KeyReturn:
		return input.KeyReturn
	case platform.KeyEquals:
		return input.KeyEquals
	case platform.KeyEscape:
		return input.KeyEscape
	case platform.KeyF1:
		return input.KeyF1
	case platform.KeyF2:
		return input.KeyF2
	case platform.KeyF3:
		return input.KeyF3
	case platform.KeyF4:
		return input.KeyF4
	case platform.KeyF5:
		return input.KeyF5
	case platform.KeyF6:
		return input.KeyF6
	case platform.KeyF7:
		return input.KeyF7
	case platform.KeyF8:
		return input.KeyF8
	case platform.KeyF9:
		return input.KeyF9
	case platform.KeyF10:
		return input.KeyF10
	case platform.KeyF11:
		return input.KeyF11
	case platform.KeyF12:
		return input.KeyF12
	case platform.KeyF13:
		return input.KeyF13
	case platform.KeyF14:
		return input.KeyF14
	case platform.KeyF15:
		return input.KeyF15
	case platform.KeyF16:
		return input.KeyF16
	case platform.KeyF17:
		return input.KeyF17
	case platform.KeyF18:
		return input.KeyF18
	case platform.KeyF19:
		return input.KeyF19
	case platform.KeyF20:
		return input.KeyF20
	case platform.KeyF21:
		return input.KeyF21
	case platform.KeyF22:
		return input.KeyF22
	case platform.KeyF23:
		return input.KeyF23
	case platform.KeyF24:
		return input.KeyF24
	case platform.KeyNumpad0:
		return input.KeyNumPad0
	case platform.KeyNumpad1:
		return input.KeyNumPad1
	case platform.KeyNumpad2:
		return input.KeyNumPad2
	case platform.KeyNumpad3:
		return input.KeyNumPad3
	case platform.KeyNumpad4:
		return input.KeyNumPad4
	case platform.KeyNumpad5:
		return input.KeyNumPad5
	case platform.KeyNumpad6:
		return input.KeyNumPad6
	case platform.KeyNumpad7:
		return input.KeyNumPad7
	case platform.KeyNumpad8:
		return input.KeyNumPad8
	case platform.KeyNumpad9:
		return input.KeyNumPad9
	case platform.KeyNumpadComma:
		return input.KeyNumPadDecimal
	case platform.KeyDivide:
		return input.KeyNumPadDivide
	case platform.KeyMultiply:
		return input.KeyNumPadMultiply
	case platform.KeySubtract:
		return input.KeyNumPadMinus
	case platform.KeyAdd:
		return input.KeyNumPadPlus
	case platform.KeyNumpadEnter:
		return input.KeyNumPadEnter
	case platform.KeyNumpadEquals:
		return input.KeyNumPadEquals
	case platform.KeyLShift:
		return input.KeyLShift
	case platform.KeyLControl:
		return input.KeyLCtrl
	case platform.KeyLAlt:
		return input.KeyLAlt
	case platform.KeyRShift:
		return input.KeyRShift
	case platform.KeyRControl:
		return input.KeyRCtrl
	case platform.KeyRAlt:
		return input.KeyRAlt
	case platform.KeyHome:
		return input.KeyHome
	case platform.KeyInsert:
		return input.KeyInsert
	case platform.KeyLeft:
		return input.KeyLeft
	case platform.KeyLBracket:
		return input.KeyLeftBracket
	case platform.KeyMinus:
		return input.KeyMinus
	case platform.KeyNumlock:
		return input.KeyNumLockClear
	case platform.KeyPageDown:
		return input.KeyPageDown
	case platform.KeyPageUp:
		return input.KeyPageUp
	case platform.KeyPause:
		return input.KeyPause
	case platform.KeyPeriod:
		return input.KeyPeriod
	case platform.KeySnapshot:
		return input.KeyPrintScreen
	case platform.KeyRight:
		return input.KeyRight
	case platform.KeyRBracket:
		return input.KeyRightBracket
	case platform.KeyScroll:
		return input.KeyScrollLock
	case platform.KeySemicolon:
		return input.KeySemicolon
	case platform.KeySlash:
		return input.KeySlash
	case platform.KeySpace:
		return input.KeySpace
	case platform.KeyTab:
		return input.KeyTab
	case platform.KeyUp:
		return input.KeyUp

	// No normalized equivalent.
	case platform.KeyNone,
		platform.KeyApostrophe,
		platform.KeyCapital,
		platform.KeyGrave,
		platform.KeyApps,
		platform.KeyCompose,
		platform.KeyCaret,
		platform.KeyNumpadAdd,
		platform.KeyNumpadDivide,
		platform.KeyNumpadDecimal,
		platform.KeyNumpadMultiply,
		platform.KeyNumpadSubtract,
		platform.KeyAbntC1,
		platform.KeyAbntC2,
		platform.KeyAsterisk,
		platform.KeyAt,
		platform.KeyAx,
		platform.KeyCalculator,
		platform.KeyColon,
		platform.KeyConvert,
		platform.KeyKana,
		platform.KeyKanji,
		platform.KeyLWin,
		platform.KeyMail,
		platform.KeyMediaSelect,
		platform.KeyMediaStop,
		platform.KeyMute,
		platform.KeyMyComputer,
		platform.KeyNavigateForward,
		platform.KeyNavigateBackward,
		platform.KeyNextTrack,
		platform.KeyNoConvert,
		platform.KeyOEM102,
		platform.KeyPlayPause,
		platform.KeyPlus,
		platform.KeyPower,
		platform.KeyPrevTrack,
		platform.KeyRWin,
		platform.KeySleep,
		platform.KeyStop,
		platform.KeySysrq,
		platform.KeyUnderline,
		platform.KeyUnlabeled,
		platform.KeyVolumeDown,
		platform.KeyVolumeUp,
		platform.KeyWake,
		platform.KeyWebBack,
		platform.KeyWebFavorites,
		platform.KeyWebForward,
		platform.KeyWebHome,
		platform.KeyWebRefresh,
		platform.KeyWebSearch,
		platform.KeyWebStop,
		platform.KeyYen,
		platform.KeyCopy,
		platform.KeyPaste,
		platform.KeyCut:
		return input.KeyUnknown
	}
	return input.KeyUnknown
}

// extraButtons maps backend extra-button indices to normalized buttons.
var extraButtons = [...]input.MouseButton{
	input.MouseX1,
	input.MouseX2,
	input.MouseButton6,
	input.MouseButton7,
	input.MouseButton8,
}

// MapMouse maps a native mouse button to a normalized button.
func MapMouse(b platform.MouseButton) input.MouseButton {
	switch b.Kind {
	case platform.ButtonLeft:
		return input.MouseLeft
	case platform.ButtonRight:
		return input.MouseRight
	case platform.ButtonMiddle:
		return input.MouseMiddle
	case platform.ButtonOther:
		if int(b.Index) < len(extraButtons) {
			return extraButtons[b.Index]
		}
	}
	return input.MouseUnknown
}
