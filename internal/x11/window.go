package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// windowEventMask is every event the adapter translates.
const windowEventMask = xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskFocusChange |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskPropertyChange

// CreateWindow creates a top-level input/output window with the given
// physical inner size and registers for WM_DELETE_WINDOW. The window is
// mapped before returning.
func (c *Connection) CreateWindow(title string, width, height int) (xproto.Window, error) {
	conn := c.XUtil.Conn()
	screen := c.XUtil.Screen()

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate window id: %w", err)
	}

	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		wid,
		c.Root,
		0, 0,
		uint16(width), uint16(height),
		0, // border_width
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		// Value list order follows the bit positions of the mask.
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{screen.BlackPixel, uint32(windowEventMask)},
	).Check()
	if err != nil {
		return 0, fmt.Errorf("failed to create window: %w", err)
	}

	if err := icccm.WmProtocolsSet(c.XUtil, wid, []string{"WM_DELETE_WINDOW"}); err != nil {
		xwindow.New(c.XUtil, wid).Destroy()
		return 0, fmt.Errorf("failed to set WM_PROTOCOLS: %w", err)
	}
	if err := c.SetTitle(wid, title); err != nil {
		xwindow.New(c.XUtil, wid).Destroy()
		return 0, err
	}
	// Drag and drop is optional; a window without XdndAware still works.
	_ = c.AdvertiseDnd(wid)

	if err := xproto.MapWindowChecked(conn, wid).Check(); err != nil {
		xwindow.New(c.XUtil, wid).Destroy()
		return 0, fmt.Errorf("failed to map window: %w", err)
	}
	return wid, nil
}

// DestroyWindow destroys a window created by CreateWindow.
func (c *Connection) DestroyWindow(wid xproto.Window) {
	xwindow.New(c.XUtil, wid).Destroy()
}

// SetTitle sets both the EWMH (UTF-8) and ICCCM window names.
func (c *Connection) SetTitle(wid xproto.Window, title string) error {
	if err := ewmh.WmNameSet(c.XUtil, wid, title); err != nil {
		return fmt.Errorf("failed to set _NET_WM_NAME: %w", err)
	}
	if err := icccm.WmNameSet(c.XUtil, wid, title); err != nil {
		return fmt.Errorf("failed to set WM_NAME: %w", err)
	}
	return nil
}

// SetMapped maps or unmaps the window.
func (c *Connection) SetMapped(wid xproto.Window, mapped bool) error {
	if mapped {
		return xproto.MapWindowChecked(c.XUtil.Conn(), wid).Check()
	}
	return xproto.UnmapWindowChecked(c.XUtil.Conn(), wid).Check()
}

// MoveWindow moves the window frame to x, y in root coordinates.
func (c *Connection) MoveWindow(wid xproto.Window, x, y int) error {
	return xproto.ConfigureWindowChecked(
		c.XUtil.Conn(),
		wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(int32(x)), uint32(int32(y))},
	).Check()
}

// ResizeWindow sets the inner size in physical pixels.
func (c *Connection) ResizeWindow(wid xproto.Window, width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}
	return xproto.ConfigureWindowChecked(
		c.XUtil.Conn(),
		wid,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(width), uint32(height)},
	).Check()
}

// InnerSize returns the window's inner size in physical pixels.
func (c *Connection) InnerSize(wid xproto.Window) (width, height int, err error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(wid)).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int(geom.Width), int(geom.Height), nil
}

// OuterPosition returns the top-left corner of the window frame in root
// coordinates. Frame extents are subtracted when the WM publishes them.
func (c *Connection) OuterPosition(wid xproto.Window) (x, y int, err error) {
	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), wid, c.Root, 0, 0).Reply()
	if err != nil {
		return 0, 0, err
	}
	left, _, top, _ := c.GetFrameExtents(wid)
	return int(translate.DstX) - left, int(translate.DstY) - top, nil
}

// GetFrameExtents returns the window decoration sizes (zeros if unknown).
func (c *Connection) GetFrameExtents(wid xproto.Window) (left, right, top, bottom int) {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, wid)
	if err != nil {
		return 0, 0, 0, 0
	}
	return int(extents.Left), int(extents.Right), int(extents.Top), int(extents.Bottom)
}
