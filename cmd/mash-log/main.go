// Command mash-log inspects serial link capture files (.mlog).
//
// Capture files are written by mash-link when run with -protocol-log.
//
// Usage:
//
//	mash-log <command> [flags] <file.mlog>
//
// Examples:
//
//	mash-log view -layer framing -category error link.mlog
//	mash-log export -format csv -o link.csv link.mlog
//	mash-log filter -channel-id 3f1c9a2e-... -o one.mlog link.mlog
//	mash-log stats link.mlog
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mash-protocol/mash-serial/cmd/mash-log/commands"
)

const (
	viewSummary   = "Print events in human-readable form"
	exportSummary = "Convert events to JSONL or CSV"
	filterSummary = "Write matching events to a new capture file"
	statsSummary  = "Summarize frames, errors and channels"
)

type command struct {
	summary string
	run     func(args []string) error
}

var registry = map[string]command{
	"view":   {viewSummary, runView},
	"export": {exportSummary, runExport},
	"filter": {filterSummary, runFilter},
	"stats":  {statsSummary, runStats},
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	name := os.Args[1]
	switch name {
	case "-h", "-help", "--help", "help":
		printUsage(os.Stdout)
		return
	}

	cmd, ok := registry[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := cmd.run(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "mash-log - serial link capture analyzer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  mash-log <command> [flags] <file.mlog>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-8s %s\n", name, registry[name].summary)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, `Use "mash-log <command> -help" for command flags.`)
}

// newFlagSet returns a flag set whose usage text names the command and its
// single positional argument.
func newFlagSet(name, summary string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s\n\nUsage:\n  mash-log %s [flags] <file.mlog>\n\n", summary, name)
		fs.PrintDefaults()
	}
	return fs
}

// capturePath parses args and returns the capture file argument.
func capturePath(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return "", fmt.Errorf("log file path required")
	}
	return fs.Arg(0), nil
}

func selectorFlags(fs *flag.FlagSet) (layer, direction, category *string) {
	layer = fs.String("layer", "", "Only events of this layer (channel, framing)")
	direction = fs.String("direction", "", "Only events in this direction (in, out)")
	category = fs.String("category", "", "Only events of this category (frame, state, error)")
	return
}

func runView(args []string) error {
	fs := newFlagSet("view", viewSummary)
	layer, direction, category := selectorFlags(fs)

	path, err := capturePath(fs, args)
	if err != nil {
		return err
	}

	filter, err := commands.NewViewFilter(*layer, *direction, *category)
	if err != nil {
		return err
	}
	return commands.RunView(path, filter, os.Stdout)
}

func runExport(args []string) error {
	fs := newFlagSet("export", exportSummary)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	path, err := capturePath(fs, args)
	if err != nil {
		return err
	}
	return commands.RunExport(path, *format, *output)
}

func runFilter(args []string) error {
	fs := newFlagSet("filter", filterSummary)
	var opts commands.FilterOptions
	fs.StringVar(&opts.Output, "o", "", "Output file (required)")
	fs.StringVar(&opts.ChannelID, "channel-id", "", "Only events of this channel ID")
	fs.StringVar(&opts.Target, "target", "", "Only events of this target (device path or program)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Drop events before this time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Drop events after this time (RFC3339)")
	layer, direction, category := selectorFlags(fs)

	path, err := capturePath(fs, args)
	if err != nil {
		return err
	}
	if opts.Output == "" {
		fs.Usage()
		return fmt.Errorf("output file (-o) required")
	}

	opts.Layer, opts.Direction, opts.Category = *layer, *direction, *category
	return commands.RunFilter(path, opts, os.Stdout)
}

func runStats(args []string) error {
	path, err := capturePath(newFlagSet("stats", statsSummary), args)
	if err != nil {
		return err
	}
	return commands.RunStats(path, os.Stdout)
}
