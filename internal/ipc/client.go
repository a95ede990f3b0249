package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/1broseidon/xwin/internal/runtimepath"
)

// Client handles IPC communication with a running window
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a client for the default window socket.
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep constructor non-failing; sendRequest surfaces connection errors.
		socketPath = ""
	}
	return NewClientWithSocket(socketPath)
}

// SocketFor returns the socket of a window instance. configured, the
// ipc.socket config value, only applies to the default (unnamed) window.
func SocketFor(instance, configured string) (string, error) {
	if strings.TrimSpace(instance) == "" && configured != "" {
		return configured, nil
	}
	return runtimepath.InstanceSocketPath(instance)
}

// NewClientWithSocket creates a client for an explicit socket path.
func NewClientWithSocket(socketPath string) *Client {
	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

// sendRequest sends a request and waits for a response
func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to window: %w (is `xwin run` running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("window error: %s", resp.Error)
	}

	return &resp, nil
}

func (c *Client) send(cmd CommandType, payload any) (*Response, error) {
	req := &Request{Command: cmd}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", cmd, err)
		}
		req.Payload = data
	}
	return c.sendRequest(req)
}

// GetStatus retrieves the window status
func (c *Client) GetStatus() (*StatusData, error) {
	resp, err := c.send(CommandGetStatus, nil)
	if err != nil {
		return nil, err
	}

	var status StatusData
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status data: %w", err)
	}
	return &status, nil
}

func (c *Client) SetTitle(title string) error {
	_, err := c.send(CommandSetTitle, TitlePayload{Title: title})
	return err
}

// SetSize resizes the window to a logical size.
func (c *Client) SetSize(width, height float64) error {
	_, err := c.send(CommandSetSize, SizePayload{Width: width, Height: height})
	return err
}

// SetPosition moves the window frame to a physical position.
func (c *Client) SetPosition(x, y int) error {
	_, err := c.send(CommandSetPosition, PositionPayload{X: x, Y: y})
	return err
}

func (c *Client) SetVisible(visible bool) error {
	_, err := c.send(CommandSetVisible, TogglePayload{Enabled: visible})
	return err
}

func (c *Client) SetCapture(capture bool) error {
	_, err := c.send(CommandSetCapture, TogglePayload{Enabled: capture})
	return err
}

func (c *Client) SetExitOnEsc(exit bool) error {
	_, err := c.send(CommandSetExitOnEsc, TogglePayload{Enabled: exit})
	return err
}

// Close asks the window to close.
func (c *Client) Close() error {
	_, err := c.send(CommandClose, nil)
	return err
}

// RecentEvents returns recorded events. since > 0 returns everything after
// that sequence number; otherwise up to limit of the newest events.
func (c *Client) RecentEvents(limit int, since uint64) (*EventsData, error) {
	resp, err := c.send(CommandRecentEvents, RecentEventsPayload{Limit: limit, Since: since})
	if err != nil {
		return nil, err
	}

	var data EventsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse events data: %w", err)
	}
	return &data, nil
}

// InjectKey simulates pressing (and by default releasing) a key.
func (c *Client) InjectKey(key string, scancode uint32, noRelease bool) error {
	_, err := c.send(CommandInjectKey, InjectKeyPayload{Key: key, Scancode: scancode, NoRelease: noRelease})
	return err
}

// Ping checks if the window is responding
func (c *Client) Ping() error {
	_, err := c.GetStatus()
	return err
}
