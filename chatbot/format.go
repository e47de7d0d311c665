// Copyright (c) 2025 BVK Chaitanya

package chatbot

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// displayName renders a user-typed coin name for headings ("shiba inu" ->
// "Shiba Inu").
func displayName(name string) string {
	return titleCaser.String(strings.ToLower(name))
}

// usd2 formats a dollar amount with comma grouping and cents, e.g.
// "$117,512.34".
func usd2(v decimal.Decimal) string {
	return "$" + humanize.FormatFloat("#,###.##", v.InexactFloat64())
}

// usd0 formats a dollar amount with comma grouping and no decimals; used
// for market caps and volumes.
func usd0(v decimal.Decimal) string {
	return "$" + humanize.FormatFloat("#,###.", v.InexactFloat64())
}

// amount0 formats a plain quantity with comma grouping and no decimals.
func amount0(v decimal.Decimal) string {
	return humanize.FormatFloat("#,###.", v.InexactFloat64())
}

// changeIndicator picks the trend emoji and the explicit sign prefix for a
// 24h change percentage. Zero counts as up.
func changeIndicator(v decimal.Decimal) (arrow, sign string) {
	if v.IsNegative() {
		return "📉", ""
	}
	return "📈", "+"
}
