// internal/pkg/money/money.go
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts are carried as int64 minor units (cents) everywhere; this package
// is the only place that converts them to display form.

// ParseCurrency parses an ISO 4217 currency code
func ParseCurrency(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("invalid currency code %q: %w", code, err)
	}
	return unit, nil
}

// Major converts minor units to a decimal major-unit amount
func Major(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}

// Format renders a minor-unit amount with its currency symbol, e.g. "$12.99"
func Format(amount int64, unit currency.Unit) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(Major(amount).InexactFloat64())))
}

// FormatCode renders a minor-unit amount with its ISO code, e.g. "12.99 USD"
func FormatCode(amount int64, unit currency.Unit) string {
	return fmt.Sprintf("%s %s", Major(amount).StringFixed(2), unit.String())
}
