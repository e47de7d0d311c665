// Copyright (c) 2025 BVK Chaitanya

package coingecko

import (
	"context"
	"net/url"
	"strings"
)

// SimplePrices fetches current prices for the given coin ids in the given
// reference currencies, including the 24 hour change and market cap
// metrics. Ids unknown to the API are absent from the result; the call
// itself still succeeds.
func (c *Client) SimplePrices(ctx context.Context, ids, currencies []string) (map[string]SimplePrice, error) {
	values := make(url.Values)
	values.Set("ids", strings.Join(ids, ","))
	values.Set("vs_currencies", strings.Join(currencies, ","))
	values.Set("include_24hr_change", "true")
	values.Set("include_market_cap", "true")

	result := make(map[string]SimplePrice)
	if err := c.httpGetJSON(ctx, c.restURL("simple/price", values), &result); err != nil {
		return nil, err
	}
	return result, nil
}
