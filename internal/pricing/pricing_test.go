package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		pct    string
		want   string
	}{
		{"no discount", "1000", "0", "1000"},
		{"ten percent", "1000", "10", "900"},
		{"half rounds up", "105", "10", "95"},
		{"fraction rounds up at half", "1005", "50", "503"},
		{"below half rounds down", "1002", "40", "601"},
		{"full discount", "1000", "100", "0"},
		{"fractional percent", "2000", "7.5", "1850"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDiscount(dec(tt.amount), dec(tt.pct))
			assert.True(t, dec(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestCeilPercentOf(t *testing.T) {
	assert.Equal(t, 4, CeilPercentOf(8, dec("50")))
	assert.Equal(t, 2, CeilPercentOf(8, dec("25")))
	assert.Equal(t, 1, CeilPercentOf(8, dec("10")))
	assert.Equal(t, 3, CeilPercentOf(8, dec("33")))
	assert.Equal(t, 0, CeilPercentOf(0, dec("50")))
	assert.Equal(t, 0, CeilPercentOf(8, dec("0")))
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 5, CeilDiv(9, 2))
	assert.Equal(t, 4, CeilDiv(8, 2))
	assert.Equal(t, 0, CeilDiv(0, 2))
	assert.Equal(t, 0, CeilDiv(3, 0))
}

func TestWeightedRate(t *testing.T) {
	got := WeightedRate([]decimal.Decimal{dec("100"), dec("200")}, []int{3, 1})
	assert.True(t, dec("125").Equal(got), "got %s", got)

	got = WeightedRate([]decimal.Decimal{dec("100"), dec("200")}, []int{0, 0})
	assert.True(t, dec("150").Equal(got), "got %s", got)

	assert.True(t, WeightedRate(nil, nil).IsZero())
}

func TestValidPercent(t *testing.T) {
	assert.True(t, ValidPercent(dec("0")))
	assert.True(t, ValidPercent(dec("100")))
	assert.False(t, ValidPercent(dec("-1")))
	assert.False(t, ValidPercent(dec("100.01")))
}
