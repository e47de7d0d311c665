// Copyright (c) 2025 BVK Chaitanya

package coingecko

import "context"

type trendingResponse struct {
	Coins []struct {
		Item *TrendingCoin `json:"item"`
	} `json:"coins"`
}

// Trending fetches the API's curated list of currently popular coins.
func (c *Client) Trending(ctx context.Context) ([]*TrendingCoin, error) {
	resp := new(trendingResponse)
	if err := c.httpGetJSON(ctx, c.restURL("search/trending", nil), resp); err != nil {
		return nil, err
	}
	var coins []*TrendingCoin
	for _, v := range resp.Coins {
		if v.Item != nil {
			coins = append(coins, v.Item)
		}
	}
	return coins, nil
}
