package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// HideCursor replaces the window's cursor with an invisible one. The blank
// cursor is created on first use and cached on the connection.
func (c *Connection) HideCursor(wid xproto.Window) error {
	cursor, err := c.blankCursor(wid)
	if err != nil {
		return err
	}
	return xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(), wid, xproto.CwCursor, []uint32{uint32(cursor)},
	).Check()
}

// ShowCursor restores the parent's (default) cursor.
func (c *Connection) ShowCursor(wid xproto.Window) error {
	return xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(), wid, xproto.CwCursor, []uint32{0},
	).Check()
}

// WarpPointer moves the pointer to x, y relative to the window origin.
func (c *Connection) WarpPointer(wid xproto.Window, x, y int) error {
	return xproto.WarpPointerChecked(
		c.XUtil.Conn(),
		0, // src_window: None
		wid,
		0, 0, 0, 0,
		int16(x), int16(y),
	).Check()
}

func (c *Connection) blankCursor(wid xproto.Window) (xproto.Cursor, error) {
	if c.blank != 0 {
		return c.blank, nil
	}
	conn := c.XUtil.Conn()

	pix, err := xproto.NewPixmapId(conn)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate pixmap id: %w", err)
	}
	if err := xproto.CreatePixmapChecked(conn, 1, pix, xproto.Drawable(wid), 1, 1).Check(); err != nil {
		return 0, fmt.Errorf("failed to create cursor pixmap: %w", err)
	}
	defer xproto.FreePixmap(conn, pix)

	cid, err := xproto.NewCursorId(conn)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate cursor id: %w", err)
	}
	// A depth-1 pixmap with an all-zero mask draws nothing.
	err = xproto.CreateCursorChecked(conn, cid, pix, pix, 0, 0, 0, 0, 0, 0, 0, 0).Check()
	if err != nil {
		return 0, fmt.Errorf("failed to create blank cursor: %w", err)
	}
	c.blank = cid
	return cid, nil
}
