// internal/pricing/pricing_test.go
package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$12.50", FormatPrice(12.5))
	assert.Equal(t, "$0.00", FormatPrice(0))
	assert.Equal(t, "$1,234.50", FormatPrice(1234.5))
	assert.Equal(t, "$19.99", FormatPrice(19.99))
}

func TestFormatPriceIsDeterministic(t *testing.T) {
	first := FormatPrice(42.42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, FormatPrice(42.42))
	}
}

func TestCalculateTax(t *testing.T) {
	assert.InDelta(t, 8.0, CalculateTax(100), 1e-9)
	assert.InDelta(t, 10.0, CalculateTaxAt(100, 0.10), 1e-9)
	assert.Equal(t, 0.0, CalculateTax(0))
}

func TestCalculateShippingBoundary(t *testing.T) {
	assert.Greater(t, CalculateShipping(49.99), 0.0)
	assert.Equal(t, 0.0, CalculateShipping(50.00))
	assert.Equal(t, 0.0, CalculateShipping(120))
	assert.Equal(t, FlatShippingFee, CalculateShipping(0))
}

func TestCalculateTotal(t *testing.T) {
	// Below the threshold: subtotal + 8% tax + flat shipping
	assert.InDelta(t, 20+1.6+5.99, CalculateTotal(20), 1e-9)
	// Above the threshold: no shipping
	assert.InDelta(t, 100+8, CalculateTotal(100), 1e-9)
}

func TestCalculateTotalWith(t *testing.T) {
	got := CalculateTotalWith(40, 0.05, 4.99, 75)
	assert.InDelta(t, 40+2+4.99, got, 1e-9)

	got = CalculateTotalWith(80, 0.05, 4.99, 75)
	assert.InDelta(t, 80+4, got, 1e-9)
}
