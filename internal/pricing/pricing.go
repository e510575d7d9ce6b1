// internal/pricing/pricing.go
package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// DefaultTaxRate is the sales tax applied at checkout.
	DefaultTaxRate = 0.08
	// FlatShippingFee applies below the free-shipping threshold.
	FlatShippingFee = 5.99
	// FreeShippingThreshold is the subtotal at which shipping is free.
	FreeShippingThreshold = 50.0
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders an amount as a US-locale currency string with a
// dollar prefix, grouping separators and exactly two decimals.
func FormatPrice(amount float64) string {
	return usd.Sprintf("$%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// CalculateTax returns the tax due on a subtotal at the default rate.
func CalculateTax(subtotal float64) float64 {
	return CalculateTaxAt(subtotal, DefaultTaxRate)
}

// CalculateTaxAt returns the tax due on a subtotal at the given rate.
func CalculateTaxAt(subtotal, rate float64) float64 {
	return subtotal * rate
}

// CalculateShipping returns the shipping charge for a subtotal: zero at
// or above the free-shipping threshold, the flat fee below it.
func CalculateShipping(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// CalculateShippingWith is CalculateShipping with a configured flat
// fee and threshold.
func CalculateShippingWith(subtotal, flatFee, threshold float64) float64 {
	if subtotal >= threshold {
		return 0
	}
	return flatFee
}

// CalculateTotal returns subtotal plus tax plus shipping.
func CalculateTotal(subtotal float64) float64 {
	return subtotal + CalculateTax(subtotal) + CalculateShipping(subtotal)
}

// CalculateTotalWith is CalculateTotal over configured rates.
func CalculateTotalWith(subtotal, taxRate, flatFee, threshold float64) float64 {
	return subtotal + CalculateTaxAt(subtotal, taxRate) + CalculateShippingWith(subtotal, flatFee, threshold)
}
