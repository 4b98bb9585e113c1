package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitPrice(t *testing.T) {
	cases := []struct {
		display string
		want    int
	}{
		{"₹9,500", 9500},
		{"$1,899", 1899},
		{"9,500", 9500},
		{"4800", 4800},
		{"₹ 12,000", 12000},
		{"", 0},
		{"Contact us", 0},
		{"₹1,899.50", 1899},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, UnitPrice(tc.display), "display=%q", tc.display)
	}
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 28500, TotalPrice("₹9,500", 3))
	assert.Equal(t, 1899, TotalPrice("$1,899", 1))
	assert.Equal(t, 0, TotalPrice("₹9,500", 0))
	assert.Equal(t, 0, TotalPrice("₹9,500", -2))
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "₹", CurrencySymbol("₹9,500"))
	assert.Equal(t, "$", CurrencySymbol("$1,899"))
	assert.Equal(t, "", CurrencySymbol("9,500"))
}
