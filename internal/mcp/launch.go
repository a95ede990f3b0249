package mcp

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/xwin/internal/displayenv"
)

const defaultLaunchTimeout = 10 * time.Second

func (s *Server) handleLaunchWindow(ctx context.Context, _ *mcpsdk.CallToolRequest, args LaunchWindowInput) (*mcpsdk.CallToolResult, LaunchWindowOutput, error) {
	if args.Width < 0 || args.Height < 0 {
		return nil, LaunchWindowOutput{}, fmt.Errorf("width and height must be positive")
	}
	socket, err := s.socketPath(args.Instance)
	if err != nil {
		return nil, LaunchWindowOutput{}, err
	}

	c, err := s.controller(args.Instance)
	if err != nil {
		return nil, LaunchWindowOutput{}, err
	}
	if _, err := c.GetStatus(); err == nil {
		return nil, LaunchWindowOutput{}, fmt.Errorf("window %q is already running", displayName(args.Instance))
	}

	pid, err := s.launchFn(launchArgs(args))
	if err != nil {
		return nil, LaunchWindowOutput{}, err
	}
	s.logger.Info("window launched", "instance", displayName(args.Instance), "pid", pid)

	timeout := time.Duration(args.Timeout) * time.Second
	if timeout <= 0 {
		timeout = defaultLaunchTimeout
	}
	deadline := time.Now().Add(timeout)
	for {
		status, err := c.GetStatus()
		if err == nil {
			return nil, LaunchWindowOutput{
				Instance: displayName(args.Instance),
				PID:      pid,
				Socket:   socket,
				Status:   *status,
			}, nil
		}
		if time.Now().After(deadline) {
			return nil, LaunchWindowOutput{}, fmt.Errorf("timeout waiting for window %q to answer: %w", displayName(args.Instance), err)
		}
		select {
		case <-ctx.Done():
			return nil, LaunchWindowOutput{}, ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}
}

// launchArgs builds the xwin run command line for a launch request.
func launchArgs(args LaunchWindowInput) []string {
	out := []string{"run"}
	if args.Instance != "" {
		out = append(out, "--name", args.Instance)
	}
	if args.Title != "" {
		out = append(out, "--title", args.Title)
	}
	if args.Width > 0 {
		out = append(out, "--width", strconv.FormatFloat(args.Width, 'f', -1, 64))
	}
	if args.Height > 0 {
		out = append(out, "--height", strconv.FormatFloat(args.Height, 'f', -1, 64))
	}
	if args.CaptureCursor {
		out = append(out, "--capture")
	}
	if args.ExitOnEsc {
		out = append(out, "--exit-on-esc")
	}
	return out
}

// startProcess runs this executable detached in its own session so the
// window outlives the MCP server.
func (s *Server) startProcess(args []string) (int, error) {
	exe, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("failed to locate xwin executable: %w", err)
	}

	cmd := exec.Command(exe, args...)
	if err := displayenv.PrepareCommand(cmd, displayenv.Env{
		Display:    s.config.Display,
		XAuthority: s.config.XAuthority,
	}); err != nil {
		return 0, err
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start window: %w", err)
	}
	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}
