package x11

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xprop"
)

const (
	dndVersion = 5
	// dndProperty is where the selection owner writes the dropped URI list.
	dndProperty = "XWIN_DND_SELECTION"
	uriListType = "text/uri-list"
)

// DndKind classifies an XDND client message.
type DndKind int

const (
	DndNone DndKind = iota
	DndEnter
	DndPosition
	DndLeave
	DndDrop
)

// DndMessage is a decoded XDND client message.
type DndMessage struct {
	Kind   DndKind
	Source xproto.Window
	Time   xproto.Timestamp
}

// AdvertiseDnd marks the window as an XDND target.
func (c *Connection) AdvertiseDnd(wid xproto.Window) error {
	return xprop.ChangeProp32(c.XUtil, wid, "XdndAware", "ATOM", dndVersion)
}

// Atom interns name; results are cached by xgbutil.
func (c *Connection) Atom(name string) (xproto.Atom, error) {
	return xprop.Atm(c.XUtil, name)
}

// IsDeleteWindow reports whether ev is a WM_PROTOCOLS/WM_DELETE_WINDOW request.
func (c *Connection) IsDeleteWindow(ev xproto.ClientMessageEvent) bool {
	protocols, err := c.Atom("WM_PROTOCOLS")
	if err != nil || ev.Type != protocols || ev.Format != 32 {
		return false
	}
	del, err := c.Atom("WM_DELETE_WINDOW")
	if err != nil {
		return false
	}
	data := ev.Data.Data32
	return len(data) > 0 && xproto.Atom(data[0]) == del
}

// DecodeDnd decodes an XDND client message. Kind is DndNone for anything else.
func (c *Connection) DecodeDnd(ev xproto.ClientMessageEvent) DndMessage {
	if ev.Format != 32 || len(ev.Data.Data32) < 5 {
		return DndMessage{}
	}
	name, err := xprop.AtomName(c.XUtil, ev.Type)
	if err != nil {
		return DndMessage{}
	}
	data := ev.Data.Data32
	msg := DndMessage{Source: xproto.Window(data[0])}
	switch name {
	case "XdndEnter":
		msg.Kind = DndEnter
	case "XdndPosition":
		msg.Kind = DndPosition
		msg.Time = xproto.Timestamp(data[3])
	case "XdndLeave":
		msg.Kind = DndLeave
	case "XdndDrop":
		msg.Kind = DndDrop
		msg.Time = xproto.Timestamp(data[2])
	}
	return msg
}

// RequestDndData asks the drag source to convert the XdndSelection to a URI
// list on wid. The answer arrives as a SelectionNotify event.
func (c *Connection) RequestDndData(wid xproto.Window, t xproto.Timestamp) error {
	selection, err := c.Atom("XdndSelection")
	if err != nil {
		return err
	}
	target, err := c.Atom(uriListType)
	if err != nil {
		return err
	}
	prop, err := c.Atom(dndProperty)
	if err != nil {
		return err
	}
	return xproto.ConvertSelectionChecked(c.XUtil.Conn(), wid, selection, target, prop, t).Check()
}

// IsDndData reports whether ev answers RequestDndData.
func (c *Connection) IsDndData(ev xproto.SelectionNotifyEvent) bool {
	prop, err := c.Atom(dndProperty)
	return err == nil && ev.Property == prop
}

// ReadDndData reads and parses the URI list written by the drag source.
func (c *Connection) ReadDndData(wid xproto.Window) ([]string, error) {
	reply, err := xprop.GetProperty(c.XUtil, wid, dndProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to read drop data: %w", err)
	}
	return ParseURIList(string(reply.Value)), nil
}

// SendDndStatus tells the source whether wid accepts the drop.
func (c *Connection) SendDndStatus(wid, source xproto.Window, accept bool) error {
	var flags uint32
	var action xproto.Atom
	if accept {
		flags = 1
		var err error
		if action, err = c.Atom("XdndActionCopy"); err != nil {
			return err
		}
	}
	return c.sendDnd(source, "XdndStatus", []uint32{uint32(wid), flags, 0, 0, uint32(action)})
}

// SendDndFinished completes a drop.
func (c *Connection) SendDndFinished(wid, source xproto.Window, accepted bool) error {
	var flags uint32
	var action xproto.Atom
	if accepted {
		flags = 1
		var err error
		if action, err = c.Atom("XdndActionCopy"); err != nil {
			return err
		}
	}
	return c.sendDnd(source, "XdndFinished", []uint32{uint32(wid), flags, uint32(action), 0, 0})
}

func (c *Connection) sendDnd(source xproto.Window, msgType string, data []uint32) error {
	typ, err := c.Atom(msgType)
	if err != nil {
		return err
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: source,
		Type:   typ,
		Data:   xproto.ClientMessageDataUnionData32New(data),
	}
	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		source,
		xproto.EventMaskNoEvent,
		string(ev.Bytes()),
	).Check()
}

// ParseURIList converts a text/uri-list payload to local file paths.
// Comments, blank lines and non-file URIs are skipped.
func ParseURIList(data string) []string {
	var paths []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r\x00"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		u, err := url.Parse(line)
		if err != nil || u.Scheme != "file" || u.Path == "" {
			continue
		}
		paths = append(paths, u.Path)
	}
	return paths
}
