package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/xwin/internal/config"
	"github.com/1broseidon/xwin/internal/instances"
	"github.com/1broseidon/xwin/internal/ipc"
	"github.com/1broseidon/xwin/internal/runtimepath"
)

const (
	ServerName    = "xwin"
	ServerVersion = "0.1.0"
)

// Controller is the control surface of one running window. *ipc.Client
// implements it.
type Controller interface {
	GetStatus() (*ipc.StatusData, error)
	SetTitle(title string) error
	SetSize(width, height float64) error
	SetPosition(x, y int) error
	SetVisible(visible bool) error
	SetCapture(capture bool) error
	SetExitOnEsc(exit bool) error
	Close() error
	RecentEvents(limit int, since uint64) (*ipc.EventsData, error)
	InjectKey(key string, scancode uint32, noRelease bool) error
}

var _ Controller = (*ipc.Client)(nil)

// Server is the MCP server exposing window control tools.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	logger    *slog.Logger

	// dialFn, launchFn and scanFn are replaced in tests.
	dialFn       func(instance string) (Controller, error)
	launchFn     func(args []string) (int, error)
	scanFn       func() ([]instances.Instance, error)
	pollInterval time.Duration
}

// NewServer creates an MCP server that reaches windows over their control
// sockets.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		config:       cfg,
		logger:       logger,
		pollInterval: 100 * time.Millisecond,
	}
	s.dialFn = s.dialInstance
	s.launchFn = s.startProcess
	s.scanFn = scanRuntimeDir

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done. While
// it runs, sockets of crashed windows are swept from the runtime directory.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if dir, err := runtimepath.Dir(); err == nil {
		reconciler := instances.NewReconciler(instances.ReconcilerConfig{
			Dir:    dir,
			Logger: s.logger,
		})
		reconciler.ReconcileNow()
		go reconciler.Run(ctx)
	}
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func scanRuntimeDir() ([]instances.Instance, error) {
	dir, err := runtimepath.Dir()
	if err != nil {
		return nil, err
	}
	return instances.Scan(dir, instances.ProbeSocket)
}

func (s *Server) dialInstance(instance string) (Controller, error) {
	socket, err := s.socketPath(instance)
	if err != nil {
		return nil, err
	}
	return ipc.NewClientWithSocket(socket), nil
}

func (s *Server) socketPath(instance string) (string, error) {
	return ipc.SocketFor(instance, s.config.IPC.Socket)
}

func (s *Server) controller(instance string) (Controller, error) {
	c, err := s.dialFn(instance)
	if err != nil {
		return nil, fmt.Errorf("window %q: %w", displayName(instance), err)
	}
	return c, nil
}

func displayName(instance string) string {
	if instance == "" {
		return "default"
	}
	return instance
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the xwin windows running for this user, with their instance names and status. Dead entries are windows that exited without removing their socket.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "window_status",
		Description: "Report the state of a running xwin window: title, logical size, physical draw size, DPI scale factor, outer position, cursor capture, exit-on-escape and how many input events it has seen.",
	}, s.handleWindowStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_window",
		Description: "Change a running window. Only the fields you pass are applied: title, logical size (width+height), physical position (x+y), visibility, relative mouse capture and exit-on-escape. Returns the status after the change.",
	}, s.handleSetWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_window",
		Description: "Ask a running window to close. Its event loop exits once it observes the request.",
	}, s.handleCloseWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "recent_events",
		Description: "Return recently recorded normalized input events (key and mouse buttons, text, motion, scroll, focus, resize, file drag, close) with sequence numbers, oldest first.",
	}, s.handleRecentEvents)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "wait_for_event",
		Description: "Wait until a window records an input event of the given kind (and optional detail such as key:Escape). Polls the window's event history until the timeout (default 30s).",
	}, s.handleWaitForEvent)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "inject_key",
		Description: "Simulate a key press (and release unless no_release is set) in a running window, as if the keyboard produced it. Injected Escape closes windows that have exit-on-escape enabled.",
	}, s.handleInjectKey)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "launch_window",
		Description: "Start a new xwin window process on the user's X display and wait until it answers on its control socket. DISPLAY and XAUTHORITY are detected when the MCP server runs without them.",
	}, s.handleLaunchWindow)
}
