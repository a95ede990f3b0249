package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/1broseidon/xwin/internal/config"
	"github.com/1broseidon/xwin/internal/displayenv"
	"github.com/1broseidon/xwin/internal/input"
	"github.com/1broseidon/xwin/internal/ipc"
	"github.com/1broseidon/xwin/internal/logfile"
	"github.com/1broseidon/xwin/internal/platform"
	"github.com/1broseidon/xwin/internal/session"
	"github.com/1broseidon/xwin/internal/window"
)

// runOptions holds the run flags that override config values.
type runOptions struct {
	name       string
	configPath string
	headless   bool
	quiet      bool
	jsonOut    bool

	title     string
	width     float64
	height    float64
	display   string
	scale     float64
	capture   bool
	exitOnEsc bool
	noIPC     bool
}

func runWindow(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xwin run [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open a window and print its normalized input events until it closes.")
		fmt.Fprintln(os.Stderr, "Other xwin commands control the window over its IPC socket.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}

	var opts runOptions
	fs.StringVar(&opts.name, "name", "", "Instance name; selects the control socket")
	fs.StringVar(&opts.configPath, "config", "", "Config file path (default: ~/.config/xwin/config.yaml)")
	fs.BoolVar(&opts.headless, "headless", false, "Run without an X server (events only arrive via inject-key)")
	fs.BoolVar(&opts.quiet, "quiet", false, "Do not print events")
	fs.BoolVar(&opts.jsonOut, "json", false, "Print events as JSON lines even on a terminal")
	fs.StringVar(&opts.title, "title", "", "Window title")
	fs.Float64Var(&opts.width, "width", 0, "Logical inner width")
	fs.Float64Var(&opts.height, "height", 0, "Logical inner height")
	fs.StringVar(&opts.display, "display", "", "X display, e.g. :0")
	fs.Float64Var(&opts.scale, "scale", 0, "Override the DPI scale factor")
	fs.BoolVar(&opts.capture, "capture", false, "Start with relative mouse capture")
	fs.BoolVar(&opts.exitOnEsc, "exit-on-esc", false, "Close the window when Escape is pressed")
	fs.BoolVar(&opts.noIPC, "no-ipc", false, "Do not serve the control socket")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "run takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, err := loadRunConfig(opts.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if err := applyRunFlags(cfg, opts, set); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	factory, err := backendFactory(cfg, opts.headless, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	win, err := window.Open(windowSettings(cfg), factory, window.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer win.Close()
	if cfg.CaptureCursor {
		win.SetCaptureCursor(true)
	}

	var printer *eventPrinter
	if !opts.quiet {
		printer = newEventPrinter(os.Stdout, opts.jsonOut)
	}
	sess := session.New(win, session.Options{
		RecentEvents: cfg.RecentEvents,
		Logger:       logger,
		OnEvent: func(seq uint64, ev input.Event) {
			if printer == nil {
				return
			}
			_ = printer.Print(session.Entry{Seq: seq, Record: input.Describe(ev), Time: time.Now()})
		},
	})

	if cfg.IPC.Enabled {
		server, err := startIPC(cfg, opts.name, sess, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer server.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sess.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func loadRunConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	res, err := config.LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// applyRunFlags copies explicitly set flags over cfg and revalidates.
func applyRunFlags(cfg *config.Config, opts runOptions, set map[string]bool) error {
	if set["title"] {
		cfg.Title = opts.title
	}
	if set["width"] {
		cfg.Width = opts.width
	}
	if set["height"] {
		cfg.Height = opts.height
	}
	if set["display"] {
		cfg.Display = opts.display
	}
	if set["scale"] {
		cfg.ScaleFactor = opts.scale
	}
	if set["capture"] {
		cfg.CaptureCursor = opts.capture
	}
	if set["exit-on-esc"] {
		cfg.ExitOnEsc = opts.exitOnEsc
	}
	if set["no-ipc"] {
		cfg.IPC.Enabled = !opts.noIPC
	}
	return cfg.Validate()
}

func windowSettings(cfg *config.Config) window.Settings {
	return window.Settings{
		Title:          cfg.Title,
		Size:           input.Size{Width: cfg.Width, Height: cfg.Height},
		ExitOnEsc:      cfg.ExitOnEsc,
		AutomaticClose: cfg.AutomaticClose,
	}
}

// newLogger builds the slog logger described by cfg.Logging. The returned
// func closes the log file, if any.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	if cfg.Logging.File != "" {
		f, err := logfile.Open(cfg.Logging.File, cfg.Logging.MaxSizeMB, cfg.Logging.MaxFiles)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler
	if strings.EqualFold(cfg.Logging.Format, "json") {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler), closeFn, nil
}

// backendFactory returns the X11 backend factory, or an in-memory one when
// headless.
func backendFactory(cfg *config.Config, headless bool, logger *slog.Logger) (window.BackendFactory, error) {
	if headless {
		return func(wc platform.WindowConfig) (platform.Backend, error) {
			return platform.NewMemoryBackend(wc, cfg.ScaleFactor), nil
		}, nil
	}

	env, err := displayenv.Resolve(os.Environ(), displayenv.Env{
		Display:    cfg.Display,
		XAuthority: cfg.XAuthority,
	})
	if err != nil {
		return nil, err
	}
	// The X client library reads the cookie location from the environment.
	if env.XAuthority != "" && os.Getenv("XAUTHORITY") == "" {
		_ = os.Setenv("XAUTHORITY", env.XAuthority)
	}
	logger.Debug("using X display", "display", env.Display, "xauthority", env.XAuthority)

	return func(wc platform.WindowConfig) (platform.Backend, error) {
		return platform.NewLinuxBackend(wc, platform.LinuxOptions{
			Display:     env.Display,
			ScaleFactor: cfg.ScaleFactor,
		})
	}, nil
}

// startIPC serves the control socket. It refuses to take over a socket a
// live window still answers on.
func startIPC(cfg *config.Config, name string, sess *session.Session, logger *slog.Logger) (*ipc.Server, error) {
	socket, err := ipc.SocketFor(name, cfg.IPC.Socket)
	if err != nil {
		return nil, err
	}
	if ipc.NewClientWithSocket(socket).Ping() == nil {
		return nil, fmt.Errorf("another window is already serving %s; pick a different --name", socket)
	}
	server, err := ipc.NewServer(socket, sess, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create IPC server: %w", err)
	}
	if err := server.Start(); err != nil {
		return nil, fmt.Errorf("failed to start IPC server: %w", err)
	}
	logger.Info("control socket ready", "socket", socket)
	return server, nil
}
