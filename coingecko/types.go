// Copyright (c) 2025 BVK Chaitanya

package coingecko

import "github.com/shopspring/decimal"

// SimplePrice holds one coin's entry from the /simple/price endpoint. Keys
// are either a plain currency ("usd") or a currency with a metric suffix
// ("usd_24h_change", "usd_market_cap"). The API omits keys it has no data
// for; accessors below default missing metrics to zero.
type SimplePrice map[string]decimal.Decimal

// Price returns the coin price in the given currency.
func (p SimplePrice) Price(currency string) (decimal.Decimal, bool) {
	v, ok := p[currency]
	return v, ok
}

// Change24h returns the 24 hour price change percentage in the given
// currency, or zero when the API reported none.
func (p SimplePrice) Change24h(currency string) decimal.Decimal {
	return p[currency+"_24h_change"]
}

// MarketCap returns the market capitalization in the given currency, or zero
// when the API reported none.
func (p SimplePrice) MarketCap(currency string) decimal.Decimal {
	return p[currency+"_market_cap"]
}

type MarketCoin struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`

	MarketCapRank int `json:"market_cap_rank"`

	CurrentPrice decimal.Decimal `json:"current_price"`
	MarketCap    decimal.Decimal `json:"market_cap"`

	// The API returns null for assets without a day of history; decimal
	// unmarshals that as zero.
	PriceChangePercentage24h decimal.Decimal `json:"price_change_percentage_24h"`
}

type TrendingCoin struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`

	// Rank is null for coins the API hasn't ranked yet.
	MarketCapRank *int `json:"market_cap_rank"`
}

type CoinDetail struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`

	MarketCapRank int `json:"market_cap_rank"`

	MarketData MarketData `json:"market_data"`
}

type MarketData struct {
	CurrentPrice map[string]decimal.Decimal `json:"current_price"`
	MarketCap    map[string]decimal.Decimal `json:"market_cap"`
	TotalVolume  map[string]decimal.Decimal `json:"total_volume"`

	CirculatingSupply decimal.Decimal `json:"circulating_supply"`
}

type GlobalData struct {
	TotalMarketCap      map[string]decimal.Decimal `json:"total_market_cap"`
	TotalVolume         map[string]decimal.Decimal `json:"total_volume"`
	MarketCapPercentage map[string]decimal.Decimal `json:"market_cap_percentage"`

	ActiveCryptocurrencies int64 `json:"active_cryptocurrencies"`
	Markets                int64 `json:"markets"`
}
