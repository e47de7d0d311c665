// Copyright (c) 2025 BVK Chaitanya

package chatbot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Run drives the read-eval-print loop until a quit command, end of input,
// or ctx cancellation (the interrupt signal). Input reading happens on a
// separate goroutine so an interrupt during the blocking read still ends
// the loop with the farewell line.
func (b *Bot) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if b.opts.Interactive {
		fmt.Fprintln(out, "🚀 Welcome to Crypto Chatbot!")
		fmt.Fprintln(out, "Type 'help' for available commands or 'quit' to exit.")
		fmt.Fprintln(out, strings.Repeat("-", 50))
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		if b.opts.Interactive {
			fmt.Fprint(out, "\n💬 You: ")
		}

		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\n"+replyFarewell)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out, replyFarewell)
				return nil
			}
			// The quit verb ends the loop directly, whatever its casing or
			// trailing arguments.
			if fields := strings.Fields(line); len(fields) > 0 && strings.EqualFold(fields[0], "quit") {
				fmt.Fprintf(out, "\n🤖 Bot: %s\n", replyFarewell)
				return nil
			}
			fmt.Fprintf(out, "\n🤖 Bot: %s\n", b.Reply(ctx, line))
		}
	}
}
