package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumeric parses a free-text numeric field. Empty, malformed and
// non-finite input yields 0.
func ParseNumeric(text string) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ExtractDayCount returns the first run of decimal digits in a rental period
// such as "3 Days". Text without digits counts as a one-day rental.
func ExtractDayCount(rentalPeriod string) int {
	start := strings.IndexFunc(rentalPeriod, isDigit)
	if start < 0 {
		return 1
	}
	end := start
	for end < len(rentalPeriod) && isDigit(rune(rentalPeriod[end])) {
		end++
	}
	n, err := strconv.Atoi(rentalPeriod[start:end])
	if err != nil || n > math.MaxInt32 {
		// only overflow can fail here
		return math.MaxInt32
	}
	return n
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// ComputeSubtotal derives a line's amount from its day and distance terms.
// Extra charges are not part of the formula.
func ComputeSubtotal(item LineItem) float64 {
	days := float64(ExtractDayCount(item.RentalPeriod))
	return ParseNumeric(item.RatePerDay)*days +
		ParseNumeric(item.TotalDistance)*ParseNumeric(item.RatePerDistance)
}

// ComputeGrandTotal sums the subtotals of all items.
func ComputeGrandTotal(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += ComputeSubtotal(it)
	}
	return total
}

// FormatAmount renders an amount with two decimal places.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
