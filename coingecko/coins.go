// Copyright (c) 2025 BVK Chaitanya

package coingecko

import "context"

// Coin fetches the full detail record for a coin id. Returns an error
// wrapping ErrCoinNotFound when the API has no such id.
func (c *Client) Coin(ctx context.Context, id string) (*CoinDetail, error) {
	resp := new(CoinDetail)
	if err := c.httpGetJSON(ctx, c.restURL("coins/"+id, nil), resp); err != nil {
		return nil, err
	}
	return resp, nil
}
