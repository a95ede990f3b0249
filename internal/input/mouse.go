package input

// MouseButton is a normalized mouse button.
type MouseButton int

const (
	MouseUnknown MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
	MouseX1
	MouseX2
	MouseButton6
	MouseButton7
	MouseButton8
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	case MouseX1:
		return "X1"
	case MouseX2:
		return "X2"
	case MouseButton6:
		return "Button6"
	case MouseButton7:
		return "Button7"
	case MouseButton8:
		return "Button8"
	default:
		return "Unknown"
	}
}
