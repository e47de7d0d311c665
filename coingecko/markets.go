// Copyright (c) 2025 BVK Chaitanya

package coingecko

import (
	"context"
	"net/url"
	"strconv"
)

// Markets fetches the first page of the market listing ordered by
// descending market capitalization, in USD terms, without sparkline data.
func (c *Client) Markets(ctx context.Context, perPage int) ([]*MarketCoin, error) {
	values := make(url.Values)
	values.Set("vs_currency", "usd")
	values.Set("order", "market_cap_desc")
	values.Set("per_page", strconv.Itoa(perPage))
	values.Set("page", "1")
	values.Set("sparkline", "false")

	var result []*MarketCoin
	if err := c.httpGetJSON(ctx, c.restURL("coins/markets", values), &result); err != nil {
		return nil, err
	}
	return result, nil
}
