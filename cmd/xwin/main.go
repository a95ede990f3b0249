package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/1broseidon/xwin/internal/config"
	"github.com/1broseidon/xwin/internal/ipc"
	"github.com/1broseidon/xwin/internal/platform"
	"github.com/1broseidon/xwin/internal/window"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runWindow(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "list":
		os.Exit(runList(os.Args[2:]))
	case "title":
		os.Exit(runTitle(os.Args[2:]))
	case "size":
		os.Exit(runSize(os.Args[2:]))
	case "position":
		os.Exit(runPosition(os.Args[2:]))
	case "show":
		os.Exit(runVisibility("show", true, os.Args[2:]))
	case "hide":
		os.Exit(runVisibility("hide", false, os.Args[2:]))
	case "capture":
		os.Exit(runToggle("capture", "Enable or disable relative mouse capture.", os.Args[2:],
			func(c *ipc.Client, on bool) error { return c.SetCapture(on) }))
	case "exit-on-esc":
		os.Exit(runToggle("exit-on-esc", "Enable or disable closing the window on Escape.", os.Args[2:],
			func(c *ipc.Client, on bool) error { return c.SetExitOnEsc(on) }))
	case "close":
		os.Exit(runClose(os.Args[2:]))
	case "events":
		os.Exit(runEvents(os.Args[2:]))
	case "inject-key":
		os.Exit(runInjectKey(os.Args[2:]))
	case "keys":
		os.Exit(runKeys(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: xwin <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Open a window and print its input events (foreground)")
	fmt.Fprintln(w, "  status              Show window status")
	fmt.Fprintln(w, "  list                List running windows")
	fmt.Fprintln(w, "  events              Show recent input events (--follow to stream)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  title <text>        Set the window title")
	fmt.Fprintln(w, "  size <w> <h>        Set the logical inner size")
	fmt.Fprintln(w, "  position <x> <y>    Move the window (physical pixels)")
	fmt.Fprintln(w, "  show | hide         Map or unmap the window")
	fmt.Fprintln(w, "  capture on|off      Toggle relative mouse capture")
	fmt.Fprintln(w, "  exit-on-esc on|off  Toggle closing on Escape")
	fmt.Fprintln(w, "  close               Ask the window to close")
	fmt.Fprintln(w, "  inject-key <key>    Simulate a key press and release")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  keys                List key names")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config explain      Explain a config value")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Window commands accept --name to address a named instance.")
	fmt.Fprintln(w, "Run 'xwin <command> --help' for command-specific options.")
}

// clientFlags adds the --name flag shared by every window command.
func clientFlags(fs *flag.FlagSet) *string {
	return fs.String("name", "", "Window instance name (default: the unnamed window)")
}

// newClient connects to the named window. The config is only consulted for
// an ipc.socket override, so a broken config file does not block control.
func newClient(name string) (*ipc.Client, error) {
	configured := ""
	if cfg, err := config.Load(); err == nil {
		configured = cfg.IPC.Socket
	} else {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	socket, err := ipc.SocketFor(name, configured)
	if err != nil {
		return nil, err
	}
	return ipc.NewClientWithSocket(socket), nil
}

// parseFlags parses args and reports the exit code to use when parsing
// stopped the command.
func parseFlags(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, false
		}
		return 2, false
	}
	return 0, true
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xwin status [--name NAME] [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show window status via IPC.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	name := clientFlags(fs)
	jsonOut := fs.Bool("json", false, "Output status as JSON")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "status takes no arguments")
		fs.Usage()
		return 2
	}

	client, err := newClient(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	status, err := client.GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *jsonOut {
		return writeJSON(os.Stdout, status)
	}
	printStatus(os.Stdout, status)
	return 0
}

func printStatus(w io.Writer, status *ipc.StatusData) {
	fmt.Fprintf(w, "title:          %s\n", status.Title)
	fmt.Fprintf(w, "size:           %gx%g\n", status.Size.Width, status.Size.Height)
	fmt.Fprintf(w, "draw_size:      %gx%g\n", status.DrawSize.Width, status.DrawSize.Height)
	fmt.Fprintf(w, "scale_factor:   %g\n", status.ScaleFactor)
	if status.Position != nil {
		fmt.Fprintf(w, "position:       %d,%d\n", status.Position.X, status.Position.Y)
	} else {
		fmt.Fprintln(w, "position:       unknown")
	}
	fmt.Fprintf(w, "capture_cursor: %v\n", status.CaptureCursor)
	fmt.Fprintf(w, "exit_on_esc:    %v\n", status.ExitOnEsc)
	fmt.Fprintf(w, "should_close:   %v\n", status.ShouldClose)
	fmt.Fprintf(w, "events_seen:    %d\n", status.EventsSeen)
	fmt.Fprintf(w, "uptime_seconds: %d\n", status.UptimeSeconds)
}

func runTitle(args []string) int {
	fs := flag.NewFlagSet("title", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xwin title [--name NAME] <text>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Set the window title.")
	}
	name := clientFlags(fs)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "title requires <text>")
		fs.Usage()
		return 2
	}

	client, err := newClient(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := client.SetTitle(strings.Join(fs.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runSize(args []string) int {
	fs := flag.NewFlagSet("size", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xwin size [--name NAME] <width> <height>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Set the logical inner size. The native size is scaled by the DPI factor.")
	}
	name := clientFlags(fs)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "size requires <width> <height>")
		fs.Usage()
		return 2
	}
	width, err1 := strconv.ParseFloat(fs.Arg(0), 64)
	height, err2 := strconv.ParseFloat(fs.Arg(1), 64)
	if err1 != nil || err2 != nil || width <= 0 || height <= 0 {
		fmt.Fprintf(os.Stderr, "invalid size %q x %q: width and height must be positive numbers\n", fs.Arg(0), fs.Arg(1))
		return 2
	}

	client, err := newClient(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := client.SetSize(width, height); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runPosition(args []string) int {
	fs := flag.NewFlagSet("position", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xwin position [--name NAME] <x> <y>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Move the window frame to x,y in physical screen pixels.")
	}
	name := clientFlags(fs)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "position requires <x> <y>")
		fs.Usage()
		return 2
	}
	x, err1 := strconv.Atoi(fs.Arg(0))
	y, err2 := strconv.Atoi(fs.Arg(1))
	if err1 != nil || err2 != nil {
		fmt.Fprintf(os.Stderr, "invalid position %q,%q: x and y must be integers\n", fs.Arg(0), fs.Arg(1))
		return 2
	}

	client, err := newClient(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := client.SetPosition(x, y); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runVisibility(cmd string, visible bool, args []string) int {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: xwin %s [--name NAME]\n", cmd)
	}
	name := clientFlags(fs)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "%s takes no arguments\n", cmd)
		fs.Usage()
		return 2
	}

	client, err := newClient(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := client.SetVisible(visible); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// parseOnOff accepts the spellings a shell user is likely to type.
func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1", "enable":
		return true, nil
	case "off", "false", "no", "0", "disable":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func runToggle(cmd, summary string, args []string, apply func(*ipc.Client, bool) error) int {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: xwin %s [--name NAME] on|off\n", cmd)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, summary)
	}
	name := clientFlags(fs)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "%s requires on|off\n", cmd)
		fs.Usage()
		return 2
	}
	on, err := parseOnOff(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	client, err := newClient(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := apply(client, on); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runClose(args []string) int {
	fs := flag.NewFlagSet("close", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xwin close [--name NAME]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Ask the window to close. Its event loop exits once it observes the request.")
	}
	name := clientFlags(fs)
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "close takes no arguments")
		fs.Usage()
		return 2
	}

	client, err := newClient(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := client.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runInjectKey(args []string) int {
	fs := flag.NewFlagSet("inject-key", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xwin inject-key [--name NAME] [--scancode N] [--no-release] <key>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Simulate a key as if the keyboard produced it. See 'xwin keys' for names.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	name := clientFlags(fs)
	scancode := fs.Uint("scancode", 0, "Scancode reported with the key")
	noRelease := fs.Bool("no-release", false, "Only press the key")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "inject-key requires <key>")
		fs.Usage()
		return 2
	}
	if _, ok := platform.ParseKeyCode(fs.Arg(0)); !ok {
		fmt.Fprintf(os.Stderr, "Unknown key: %s\n", fs.Arg(0))
		return 2
	}

	client, err := newClient(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := client.InjectKey(fs.Arg(0), uint32(*scancode), *noRelease); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runKeys(args []string) int {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xwin keys [--mapped]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List native key names accepted by inject-key.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	mapped := fs.Bool("mapped", false, "Also show the normalized key each native key maps to")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	writeKeys(os.Stdout, *mapped)
	return 0
}

func writeKeys(w io.Writer, mapped bool) {
	for _, code := range platform.AllKeyCodes() {
		if mapped {
			fmt.Fprintf(w, "%-16s %s\n", code, window.MapKey(code))
			continue
		}
		fmt.Fprintln(w, code)
	}
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  xwin config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  xwin config print [--path PATH] [--effective|--defaults]")
		fmt.Fprintln(os.Stderr, "  xwin config explain [--path PATH] <yaml.path>")
		return 2
	}

	loadResult := func(path string) (*config.LoadResult, error) {
		if path == "" {
			return config.LoadWithSources()
		}
		return config.LoadFromPath(path)
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/xwin/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if _, err := loadResult(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/xwin/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		_ = fs.Bool("effective", false, "Print effective config (default)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		cfg := config.DefaultConfig()
		if !*printDefaults {
			res, err := loadResult(*path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			cfg = res.Config
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	case "explain":
		fs := flag.NewFlagSet("explain", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/xwin/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if fs.NArg() < 1 {
			fmt.Fprintln(os.Stderr, "explain requires <yaml.path>")
			fmt.Fprintf(os.Stderr, "known paths: %s\n", strings.Join(config.ExplainPaths(), ", "))
			return 2
		}
		queryPath := fs.Arg(0)

		res, err := loadResult(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		value, src, err := config.Explain(res, queryPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		out, err := yaml.Marshal(value)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		fmt.Printf("path: %s\n", queryPath)
		fmt.Printf("source: %s\n", formatSource(src))
		fmt.Printf("value:\n%s", string(out))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}

func formatSource(src config.Source) string {
	switch src.Kind {
	case config.SourceFile:
		if src.File == "" {
			return "file"
		}
		if src.Line > 0 {
			return fmt.Sprintf("file:%s:%d:%d", src.File, src.Line, src.Column)
		}
		return "file:" + src.File
	case config.SourceDefault:
		if src.Name != "" {
			return "default:" + src.Name
		}
		return "default"
	default:
		return string(src.Kind)
	}
}
