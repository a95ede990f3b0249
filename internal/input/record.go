package input

// Record is a flat, JSON-friendly description of an Event used by the CLI,
// the IPC socket and the MCP tools.
type Record struct {
	Kind     string     `json:"kind"`
	Detail   string     `json:"detail,omitempty"`
	State    string     `json:"state,omitempty"`
	Scancode *int32     `json:"scancode,omitempty"`
	X        *float64   `json:"x,omitempty"`
	Y        *float64   `json:"y,omitempty"`
	Size     []float64  `json:"size,omitempty"`
	DrawSize []float64  `json:"draw_size,omitempty"`
	Flag     *bool      `json:"flag,omitempty"`
	Text     *string    `json:"text,omitempty"`
	Path     string     `json:"path,omitempty"`
	Touch    *TouchArgs `json:"touch,omitempty"`
}

// Describe flattens ev into a Record.
func Describe(ev Event) Record {
	switch e := ev.(type) {
	case Resize:
		return Record{
			Kind:     "resize",
			Size:     []float64{e.WindowSize[0], e.WindowSize[1]},
			DrawSize: []float64{e.DrawSize[0], e.DrawSize[1]},
		}
	case Text:
		s := string(e)
		return Record{Kind: "text", Text: &s}
	case Focus:
		b := bool(e)
		return Record{Kind: "focus", Flag: &b}
	case Cursor:
		b := bool(e)
		return Record{Kind: "cursor", Flag: &b}
	case Close:
		return Record{Kind: "close"}
	case ButtonArgs:
		r := Record{Kind: "button", State: e.State.String(), Scancode: e.Scancode}
		if e.Button.IsMouse {
			r.Detail = "mouse:" + e.Button.Mouse.String()
		} else {
			r.Detail = "key:" + e.Button.Keyboard.String()
		}
		return r
	case Move:
		if e.Kind == MotionTouch {
			t := e.Touch
			return Record{Kind: "move", Detail: e.Kind.String(), State: t.Phase.String(), Touch: &t}
		}
		x, y := e.XY[0], e.XY[1]
		return Record{Kind: "move", Detail: e.Kind.String(), X: &x, Y: &y}
	case FileDrag:
		return Record{Kind: "file_drag", Detail: e.Kind.String(), Path: e.Path}
	default:
		return Record{Kind: "unknown"}
	}
}
