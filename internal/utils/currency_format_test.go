package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "220.00", FormatWithPrecision(decimal.NewFromInt(220), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
}

func TestRoundForDisplay(t *testing.T) {
	assert.True(t, RoundForDisplay(decimal.RequireFromString("70.7646")).Equal(decimal.RequireFromString("70.76")))
	assert.True(t, RoundForDisplay(decimal.RequireFromString("0.005")).Equal(decimal.RequireFromString("0.01")))
}
