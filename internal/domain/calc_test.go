package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"12.5", 12.5},
		{"-3", -3},
		{"  42 ", 42},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1e3", 1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ParseNumeric(tt.in), "input %q", tt.in)
	}
}

func TestExtractDayCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3 Days", 3},
		{"12", 12},
		{"0 Days", 0},
		{"", 1},
		{"a week", 1},
		{"for 5 days, then 2 more", 5},
		{"Days: 007", 7},
		{"99999999999999999999 days", math.MaxInt32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ExtractDayCount(tt.in), "input %q", tt.in)
	}
}

func TestComputeSubtotal(t *testing.T) {
	item := domain.LineItem{
		RatePerDay:      "100",
		RentalPeriod:    "3 Days",
		TotalDistance:   "50",
		RatePerDistance: "2",
	}
	assert.Equal(t, 400.0, domain.ComputeSubtotal(item))
}

func TestComputeSubtotal_IgnoresExtraCharges(t *testing.T) {
	item := domain.LineItem{RatePerDay: "100", RentalPeriod: "2 Days", ExtraCharges: "500"}
	assert.Equal(t, 200.0, domain.ComputeSubtotal(item))
}

func TestComputeSubtotal_NoDayCountIsOneDay(t *testing.T) {
	item := domain.LineItem{RatePerDay: "1500"}
	assert.Equal(t, 1500.0, domain.ComputeSubtotal(item))
}

func TestComputeSubtotal_MalformedDegradesToZero(t *testing.T) {
	item := domain.LineItem{RatePerDay: "lots", RentalPeriod: "3", TotalDistance: "10", RatePerDistance: "x"}
	assert.Equal(t, 0.0, domain.ComputeSubtotal(item))
}

func TestComputeGrandTotal_Empty(t *testing.T) {
	assert.Equal(t, 0.0, domain.ComputeGrandTotal(nil))
	assert.Equal(t, 0.0, domain.ComputeGrandTotal([]domain.LineItem{}))
}

func TestComputeGrandTotal_SumsSubtotals(t *testing.T) {
	items := []domain.LineItem{
		{RatePerDay: "100", RentalPeriod: "3 Days", TotalDistance: "50", RatePerDistance: "2"},
		{RatePerDay: "2000", RentalPeriod: "1 Day"},
		{TotalDistance: "120", RatePerDistance: "12", RentalPeriod: "no days"},
	}
	var want float64
	for _, it := range items {
		want += domain.ComputeSubtotal(it)
	}
	assert.Equal(t, want, domain.ComputeGrandTotal(items))
	assert.Equal(t, 3840.0, domain.ComputeGrandTotal(items))

	reversed := []domain.LineItem{items[2], items[1], items[0]}
	assert.Equal(t, domain.ComputeGrandTotal(items), domain.ComputeGrandTotal(reversed))
}

func TestComputeGrandTotal_Idempotent(t *testing.T) {
	items := []domain.LineItem{{RatePerDay: "10.5", RentalPeriod: "2"}}
	assert.Equal(t, domain.ComputeGrandTotal(items), domain.ComputeGrandTotal(items))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "400.00", domain.FormatAmount(400))
	assert.Equal(t, "0.00", domain.FormatAmount(0))
	assert.Equal(t, "12.35", domain.FormatAmount(12.345))
	assert.Equal(t, "-3.00", domain.FormatAmount(-3))
}
