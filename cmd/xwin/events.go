package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/xwin/internal/session"
)

const followInterval = 200 * time.Millisecond

// eventPrinter writes events as styled lines on a terminal and as JSON
// lines otherwise.
type eventPrinter struct {
	w      io.Writer
	styled bool

	seqStyle    lipgloss.Style
	kindStyle   lipgloss.Style
	detailStyle lipgloss.Style
	dimStyle    lipgloss.Style
}

// newEventPrinter picks the output mode for f. forceJSON wins over a TTY.
func newEventPrinter(f *os.File, forceJSON bool) *eventPrinter {
	styled := !forceJSON && term.IsTerminal(int(f.Fd()))
	return newPrinter(f, styled)
}

func newPrinter(w io.Writer, styled bool) *eventPrinter {
	return &eventPrinter{
		w:           w,
		styled:      styled,
		seqStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(6).Align(lipgloss.Right),
		kindStyle:   lipgloss.NewStyle().Bold(true).Width(10),
		detailStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		dimStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// kindColors gives each event kind its own colour in styled output.
var kindColors = map[string]lipgloss.Color{
	"button":    lipgloss.Color("39"),
	"move":      lipgloss.Color("244"),
	"text":      lipgloss.Color("78"),
	"resize":    lipgloss.Color("214"),
	"focus":     lipgloss.Color("141"),
	"cursor":    lipgloss.Color("141"),
	"file_drag": lipgloss.Color("180"),
	"close":     lipgloss.Color("203"),
}

func (p *eventPrinter) Print(e session.Entry) error {
	if !p.styled {
		return json.NewEncoder(p.w).Encode(e)
	}
	kind := p.kindStyle
	if c, ok := kindColors[e.Kind]; ok {
		kind = kind.Foreground(c)
	}
	line := p.seqStyle.Render(fmt.Sprintf("#%d", e.Seq)) + " " + kind.Render(e.Kind)
	if detail := describeEntry(e); detail != "" {
		line += p.detailStyle.Render(detail)
	}
	if e.Scancode != nil {
		line += p.dimStyle.Render(fmt.Sprintf("  scancode=%d", *e.Scancode))
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}

// describeEntry renders the payload of an event as one short line.
func describeEntry(e session.Entry) string {
	var parts []string
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	if e.State != "" {
		parts = append(parts, e.State)
	}
	if e.X != nil && e.Y != nil {
		parts = append(parts, fmt.Sprintf("(%g, %g)", *e.X, *e.Y))
	}
	if len(e.Size) == 2 {
		parts = append(parts, fmt.Sprintf("%gx%g", e.Size[0], e.Size[1]))
	}
	if len(e.DrawSize) == 2 {
		parts = append(parts, fmt.Sprintf("draw %gx%g", e.DrawSize[0], e.DrawSize[1]))
	}
	if e.Flag != nil {
		parts = append(parts, fmt.Sprintf("%t", *e.Flag))
	}
	if e.Text != nil {
		parts = append(parts, fmt.Sprintf("%q", *e.Text))
	}
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	if e.Touch != nil {
		parts = append(parts, fmt.Sprintf("id=%d (%g, %g) pressure=%g", e.Touch.ID, e.Touch.Position[0], e.Touch.Position[1], e.Touch.Pressure))
	}
	return strings.Join(parts, " ")
}

func writeJSON(w io.Writer, v any) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runEvents(args []string) int {
	fs := flag.NewFlagSet("events", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xwin events [--name NAME] [--limit N] [--since SEQ] [--follow] [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show the window's recent input events, oldest first.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	name := clientFlags(fs)
	limit := fs.Int("limit", 0, "Show at most N newest events (default: all retained)")
	since := fs.Uint64("since", 0, "Only show events after this sequence number")
	follow := fs.Bool("follow", false, "Keep printing new events until the window closes")
	jsonOut := fs.Bool("json", false, "Output JSON lines even on a terminal")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 0 || *limit < 0 {
		fmt.Fprintln(os.Stderr, "events takes no arguments and a non-negative --limit")
		fs.Usage()
		return 2
	}

	client, err := newClient(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printer := newEventPrinter(os.Stdout, *jsonOut)

	data, err := client.RecentEvents(*limit, *since)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cursor := *since
	for _, e := range data.Events {
		if err := printer.Print(e); err != nil {
			return 1
		}
		cursor = e.Seq
	}
	if !*follow {
		return 0
	}
	if cursor < data.Total {
		cursor = data.Total
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ticker := time.NewTicker(followInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return 0
		case <-ticker.C:
		}
		data, err := client.RecentEvents(0, cursor)
		if err != nil {
			// The socket goes away with the window.
			fmt.Fprintln(os.Stderr, "window closed")
			return 0
		}
		for _, e := range data.Events {
			if err := printer.Print(e); err != nil {
				return 1
			}
			cursor = e.Seq
		}
	}
}
