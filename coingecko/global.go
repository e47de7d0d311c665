// Copyright (c) 2025 BVK Chaitanya

package coingecko

import (
	"context"
	"fmt"
)

type globalResponse struct {
	Data *GlobalData `json:"data"`
}

// Global fetches aggregate statistics over all markets the API tracks.
func (c *Client) Global(ctx context.Context) (*GlobalData, error) {
	resp := new(globalResponse)
	if err := c.httpGetJSON(ctx, c.restURL("global", nil), resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("global response carries no data")
	}
	return resp.Data, nil
}
