package services

import "strings"

// UnitPrice parses the numeric amount out of a package's display price
// string. The catalog stores prices for display ("₹9,500", "$1,899"), so any
// monetary computation has to re-derive a number by keeping the digit runs and
// dropping currency symbols and separators. A string with no digits yields 0.
func UnitPrice(display string) int {
	total := 0
	seen := false
	for _, r := range display {
		if r >= '0' && r <= '9' {
			total = total*10 + int(r-'0')
			seen = true
			continue
		}
		// Separators inside the number ("9,500") are skipped; anything after
		// a decimal point is display noise for whole-unit prices.
		if r == '.' && seen {
			break
		}
	}
	return total
}

// CurrencySymbol extracts the symbol used by a display price for echoing in
// summaries. Empty when the string carries no known symbol.
func CurrencySymbol(display string) string {
	switch {
	case strings.Contains(display, "₹"):
		return "₹"
	case strings.Contains(display, "$"):
		return "$"
	default:
		return ""
	}
}

// TotalPrice is the payable amount for a traveler count at a display price.
func TotalPrice(display string, travelers int) int {
	if travelers < 0 {
		travelers = 0
	}
	return UnitPrice(display) * travelers
}
