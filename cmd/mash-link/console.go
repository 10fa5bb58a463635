package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// console is the interactive command loop.
type console struct {
	rl   *readline.Instance
	link *link
}

func newConsole() (*console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "link> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &console{rl: rl}, nil
}

// run reads commands until quit, EOF or ctx is done.
func (c *console) run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	go func() {
		<-ctx.Done()
		c.rl.Close()
	}()

	out := c.rl.Stdout()
	printHelp(out)

	for {
		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			cancel()
			return
		}
		if quit := execute(ctx, c.link, out, line); quit {
			cancel()
			return
		}
	}
}

// execute runs one console command. It reports whether the console should
// exit.
func execute(ctx context.Context, l *link, out io.Writer, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		printHelp(out)

	case "send", "s":
		if len(args) == 0 {
			fmt.Fprintln(out, "Usage: send <hex>")
			return false
		}
		payload, err := parseHex(strings.Join(args, ""))
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return false
		}
		if err := l.send(ctx, payload); err != nil {
			fmt.Fprintf(out, "Send failed: %v\n", err)
			return false
		}
		fmt.Fprintf(out, "> %s\n", formatHex(payload))

	case "stats":
		s, err := l.stats(ctx)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return false
		}
		printStats(out, s)

	case "quit", "exit", "q":
		return true

	default:
		fmt.Fprintf(out, "Unknown command: %s (type 'help')\n", cmd)
	}
	return false
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  send <hex>   Send a frame, e.g. send 01 7e 02")
	fmt.Fprintln(out, "  stats        Show link counters")
	fmt.Fprintln(out, "  help         Show this help")
	fmt.Fprintln(out, "  quit         Close the link and exit")
}
