// Copyright (c) 2025 BVK Chaitanya

package chatbot

import (
	"context"
	"fmt"

	"github.com/visvasity/cli"
)

const helpText = `🚀 Crypto Chatbot Commands:

• help - Show this help message
• price <coin> - Get current price (e.g., 'price bitcoin')
• top [number] - Show top cryptocurrencies (default: 10)
• trending - Show trending coins
• market <coin> - Get market cap info
• compare <coin1> <coin2> - Compare two cryptocurrencies
• news - Get market sentiment
• quit - Exit the chatbot

Examples:
- price ethereum
- top 5
- compare bitcoin ethereum
- market dogecoin`

func (b *Bot) helpCmd(ctx context.Context, args []string) error {
	fmt.Fprintln(cli.Stdout(ctx), helpText)
	return nil
}
