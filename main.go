// Copyright (c) 2025 BVK Chaitanya

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/visvasity/sglog"
	"golang.org/x/term"

	"github.com/vsk/coinchat/chatbot"
	"github.com/vsk/coinchat/coingecko"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The chat owns the terminal; diagnostics go to log files.
	backend := sglog.NewBackend(&sglog.Options{})
	defer backend.Close()
	slog.SetDefault(slog.New(backend.Handler()))

	bot := chatbot.New(coingecko.New(nil), &chatbot.Options{
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	})
	return bot.Run(ctx, os.Stdin, os.Stdout)
}
