package menu

import (
	"github.com/shopspring/decimal"
)

// FormatPrice renders a price with exactly two fractional digits.
func FormatPrice(price decimal.Decimal) string {
	return price.StringFixed(2)
}

// FormatPriceWithSymbol prefixes FormatPrice with a currency symbol.
func FormatPriceWithSymbol(price decimal.Decimal, symbol string) string {
	return symbol + FormatPrice(price)
}
