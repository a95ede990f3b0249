package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/xwin/internal/instances"
	"github.com/1broseidon/xwin/internal/runtimepath"
)

func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xwin list [--prune] [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List running windows found in the runtime directory.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	prune := fs.Bool("prune", false, "Remove sockets left behind by windows that exited")
	jsonOut := fs.Bool("json", false, "Output as JSON")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "list takes no arguments")
		fs.Usage()
		return 2
	}

	dir, err := runtimepath.Dir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *prune {
		removed, err := instances.Prune(dir, instances.ProbeSocket)
		for _, socket := range removed {
			fmt.Fprintf(os.Stderr, "removed stale socket %s\n", socket)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	found, err := instances.Scan(dir, instances.ProbeSocket)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *jsonOut {
		if found == nil {
			found = []instances.Instance{}
		}
		return writeJSON(os.Stdout, found)
	}
	printInstances(os.Stdout, found)
	return 0
}

func printInstances(w io.Writer, found []instances.Instance) {
	if len(found) == 0 {
		fmt.Fprintln(w, "no windows running")
		return
	}
	for _, inst := range found {
		name := inst.Name
		if name == "" {
			name = "(default)"
		}
		if !inst.Alive {
			fmt.Fprintf(w, "%-16s dead     %s\n", name, inst.Socket)
			continue
		}
		fmt.Fprintf(w, "%-16s running  %q %gx%g events=%d\n", name,
			inst.Status.Title, inst.Status.Size.Width, inst.Status.Size.Height, inst.Status.EventsSeen)
	}
}
