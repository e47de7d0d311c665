// Copyright (c) 2025 BVK Chaitanya

// Package chatbot implements the interactive crypto chat client: a fixed
// command registry, a router that turns one line of user input into one
// reply string, and the read-eval-print loop around them.
package chatbot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/visvasity/cli"

	"github.com/vsk/coinchat/coingecko"
)

const (
	replyEmpty    = "❓ Please enter a command. Type 'help' for available commands."
	replyFarewell = "👋 Thanks for using Crypto Chatbot! Goodbye!"
)

type Command struct {
	Name    string
	Purpose string
	Handler cli.CmdFunc
}

type Options struct {
	// Interactive enables the welcome banner and the per-read prompt. Main
	// disables this when stdin is not a terminal.
	Interactive bool
}

type Bot struct {
	opts Options

	gecko *coingecko.Client

	// commandMap is fixed at construction; no commands are added or removed
	// while the loop runs.
	commandMap map[string]*Command
}

// New creates a chat bot over the given market data client.
func New(gecko *coingecko.Client, opts *Options) *Bot {
	if opts == nil {
		opts = new(Options)
	}
	b := &Bot{
		opts:  *opts,
		gecko: gecko,
	}
	b.commandMap = map[string]*Command{
		"help":     {Name: "help", Purpose: "Show this help message", Handler: cli.CmdFunc(b.helpCmd)},
		"price":    {Name: "price", Purpose: "Get current price (e.g., 'price bitcoin')", Handler: cli.CmdFunc(b.priceCmd)},
		"top":      {Name: "top", Purpose: "Show top cryptocurrencies (default: 10)", Handler: cli.CmdFunc(b.topCmd)},
		"trending": {Name: "trending", Purpose: "Show trending coins", Handler: cli.CmdFunc(b.trendingCmd)},
		"market":   {Name: "market", Purpose: "Get market cap info", Handler: cli.CmdFunc(b.marketCmd)},
		"compare":  {Name: "compare", Purpose: "Compare two cryptocurrencies", Handler: cli.CmdFunc(b.compareCmd)},
		"news":     {Name: "news", Purpose: "Get market sentiment", Handler: cli.CmdFunc(b.newsCmd)},
		"quit":     {Name: "quit", Purpose: "Exit the chatbot", Handler: cli.CmdFunc(b.quitCmd)},
	}
	return b
}

// Reply runs one line of user input through the command table and returns
// the reply text. It never fails; every handler error becomes a user-facing
// message.
func (b *Bot) Reply(ctx context.Context, input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return replyEmpty
	}

	verb := strings.ToLower(fields[0])
	cmd, ok := b.commandMap[verb]
	if !ok {
		return fmt.Sprintf("❓ Command '%s' not recognized. Type 'help' for available commands.", verb)
	}

	var sb strings.Builder
	if err := cmd.Handler(cli.WithStdout(ctx, &sb), fields[1:]); err != nil {
		slog.Error("could not handle user command", "cmd", verb, "error", err)
		return errorReply(err)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// usageError reports missing or malformed command arguments. It is raised
// before any network call and shown to the user verbatim.
type usageError string

func (e usageError) Error() string { return string(e) }

// notFoundError reports a coin the data provider has no record for.
type notFoundError string

func (e notFoundError) Error() string { return string(e) }

func notFoundf(name string) notFoundError {
	return notFoundError(fmt.Sprintf("Coin '%s' not found. Please check the spelling.", name))
}

func errorReply(err error) string {
	var uerr usageError
	if errors.As(err, &uerr) {
		return "❌ " + uerr.Error()
	}
	var nerr notFoundError
	if errors.As(err, &nerr) {
		return "❌ " + nerr.Error()
	}
	if isTransportError(err) {
		return "❌ Network error: " + err.Error()
	}
	return "❌ Error: " + err.Error()
}

func isTransportError(err error) bool {
	var serr *coingecko.StatusError
	var uerr *url.Error
	return errors.As(err, &serr) || errors.As(err, &uerr) ||
		errors.Is(err, context.DeadlineExceeded)
}
