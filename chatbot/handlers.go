// Copyright (c) 2025 BVK Chaitanya

package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/visvasity/cli"

	"github.com/vsk/coinchat/coingecko"
)

const (
	topDefault = 10

	// The public API caps market listing pages at this size.
	topLimit = 50
)

func (b *Bot) priceCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("Please specify a coin name. Example: 'price bitcoin'")
	}
	name := strings.Join(args, " ")
	id := coingecko.Slug(name)

	prices, err := b.gecko.SimplePrices(ctx, []string{id}, []string{"usd", "btc"})
	if err != nil {
		return err
	}
	data, ok := prices[id]
	if !ok {
		return notFoundf(name)
	}

	price, _ := data.Price("usd")
	change := data.Change24h("usd")
	arrow, sign := changeIndicator(change)

	stdout := cli.Stdout(ctx)
	fmt.Fprintf(stdout, "💰 %s Price Info:\n", displayName(name))
	fmt.Fprintf(stdout, "• Price: %s\n", usd2(price))
	fmt.Fprintf(stdout, "• 24h Change: %s %s%s%%\n", arrow, sign, change.StringFixed(2))
	fmt.Fprintf(stdout, "• Market Cap: %s\n", usd0(data.MarketCap("usd")))
	fmt.Fprintf(stdout, "• Updated: %s\n", time.Now().Format("15:04:05"))
	return nil
}

func (b *Bot) topCmd(ctx context.Context, args []string) error {
	limit := topDefault
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return usageError("Please enter a valid number. Example: 'top 5'")
		}
		limit = n
	}
	if limit > topLimit {
		limit = topLimit
	}

	coins, err := b.gecko.Markets(ctx, limit)
	if err != nil {
		return err
	}

	stdout := cli.Stdout(ctx)
	fmt.Fprintf(stdout, "🏆 Top %d Cryptocurrencies:\n\n", limit)
	for i, coin := range coins {
		arrow, sign := changeIndicator(coin.PriceChangePercentage24h)
		fmt.Fprintf(stdout, "%2d. %s (%s) - %s %s %s%s%%\n",
			i+1, coin.Name, strings.ToUpper(coin.Symbol), usd2(coin.CurrentPrice),
			arrow, sign, coin.PriceChangePercentage24h.StringFixed(2))
	}
	return nil
}

func (b *Bot) trendingCmd(ctx context.Context, args []string) error {
	coins, err := b.gecko.Trending(ctx)
	if err != nil {
		return err
	}

	stdout := cli.Stdout(ctx)
	fmt.Fprintf(stdout, "🔥 Trending Cryptocurrencies:\n\n")
	for i, coin := range coins {
		rank := "?"
		if coin.MarketCapRank != nil {
			rank = strconv.Itoa(*coin.MarketCapRank)
		}
		fmt.Fprintf(stdout, "%d. %s (%s) - Rank #%s\n", i+1, coin.Name, coin.Symbol, rank)
	}
	return nil
}

func (b *Bot) marketCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("Please specify a coin name. Example: 'market bitcoin'")
	}
	name := strings.Join(args, " ")

	coin, err := b.gecko.Coin(ctx, coingecko.Slug(name))
	if err != nil {
		if errors.Is(err, coingecko.ErrCoinNotFound) {
			return notFoundf(name)
		}
		return err
	}

	symbol := strings.ToUpper(coin.Symbol)
	stdout := cli.Stdout(ctx)
	fmt.Fprintf(stdout, "📊 %s (%s) Market Info:\n", coin.Name, symbol)
	fmt.Fprintf(stdout, "• Rank: #%d\n", coin.MarketCapRank)
	fmt.Fprintf(stdout, "• Price: %s\n", usd2(coin.MarketData.CurrentPrice["usd"]))
	fmt.Fprintf(stdout, "• Market Cap: %s\n", usd0(coin.MarketData.MarketCap["usd"]))
	fmt.Fprintf(stdout, "• 24h Volume: %s\n", usd0(coin.MarketData.TotalVolume["usd"]))
	fmt.Fprintf(stdout, "• Circulating Supply: %s %s\n", amount0(coin.MarketData.CirculatingSupply), symbol)
	return nil
}

func (b *Bot) compareCmd(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("Please specify two coins. Example: 'compare bitcoin ethereum'")
	}
	// Only the first two names are compared even when more are given.
	names := args[:2]
	ids := []string{coingecko.Slug(names[0]), coingecko.Slug(names[1])}

	prices, err := b.gecko.SimplePrices(ctx, ids, []string{"usd"})
	if err != nil {
		return err
	}
	if len(prices) < 2 {
		return notFoundError("Could not find both coins. Please check the spelling.")
	}

	stdout := cli.Stdout(ctx)
	fmt.Fprintf(stdout, "⚖️  %s vs %s:\n", displayName(names[0]), displayName(names[1]))
	for i, name := range names {
		data := prices[ids[i]]
		price, _ := data.Price("usd")
		fmt.Fprintf(stdout, "\n%s:\n", displayName(name))
		fmt.Fprintf(stdout, "• Price: %s\n", usd2(price))
		fmt.Fprintf(stdout, "• 24h Change: %s%%\n", data.Change24h("usd").StringFixed(2))
		fmt.Fprintf(stdout, "• Market Cap: %s\n", usd0(data.MarketCap("usd")))
	}
	return nil
}

func (b *Bot) newsCmd(ctx context.Context, args []string) error {
	global, err := b.gecko.Global(ctx)
	if err != nil {
		return err
	}

	stdout := cli.Stdout(ctx)
	fmt.Fprintf(stdout, "📰 Crypto Market Overview:\n")
	fmt.Fprintf(stdout, "• Total Market Cap: %s\n", usd0(global.TotalMarketCap["usd"]))
	fmt.Fprintf(stdout, "• 24h Volume: %s\n", usd0(global.TotalVolume["usd"]))
	fmt.Fprintf(stdout, "• Bitcoin Dominance: %s%%\n", global.MarketCapPercentage["btc"].StringFixed(1))
	fmt.Fprintf(stdout, "• Active Cryptocurrencies: %s\n", humanize.Comma(global.ActiveCryptocurrencies))
	fmt.Fprintf(stdout, "• Markets: %s\n", humanize.Comma(global.Markets))
	return nil
}

func (b *Bot) quitCmd(ctx context.Context, args []string) error {
	fmt.Fprintln(cli.Stdout(ctx), replyFarewell)
	return nil
}
