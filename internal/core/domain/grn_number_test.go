package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodKey(t *testing.T) {
	assert.Equal(t, "202403", PeriodKey(time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "202412", PeriodKey(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)))

	// 2024-04-01 01:00 at +05:30 is still March in UTC.
	ist := time.FixedZone("IST", 5*3600+1800)
	assert.Equal(t, "202403", PeriodKey(time.Date(2024, time.April, 1, 1, 0, 0, 0, ist)))
}

func TestFormatGRNNumber(t *testing.T) {
	assert.Equal(t, "GRN-202403-001", FormatGRNNumber("202403", 1))
	assert.Equal(t, "GRN-202403-042", FormatGRNNumber("202403", 42))
	assert.Equal(t, "GRN-202403-999", FormatGRNNumber("202403", 999))
	assert.Equal(t, "GRN-202403-1000", FormatGRNNumber("202403", 1000))
}

func TestParseGRNSequence(t *testing.T) {
	seq, err := ParseGRNSequence("GRN-202403-007")
	require.NoError(t, err)
	assert.Equal(t, 7, seq)

	seq, err = ParseGRNSequence("GRN-202403-1000")
	require.NoError(t, err)
	assert.Equal(t, 1000, seq)

	for _, bad := range []string{
		"", "GRN-202403", "GRN-202403-abc", "INV-202403-001", "GRN-202403-001-x",
		"GRN-202403-1000000000", "GRN-202403-9999999999999999999",
	} {
		_, err := ParseGRNSequence(bad)
		assert.Error(t, err, bad)
	}
}

func TestNextSequence(t *testing.T) {
	assert.Equal(t, 1, NextSequence(0, 0))
	assert.Equal(t, 6, NextSequence(5, 3))
	assert.Equal(t, 8, NextSequence(2, 7))
	assert.Equal(t, 1000, NextSequence(999, 999))
}

func TestHighestSequence(t *testing.T) {
	numbers := []string{
		"GRN-202403-007",
		"GRN-202403-1000",
		"GRN-202402-5000",
		"GRN-202403-9999999999999999999",
		"GRN-202403-3000000000",
		"GRN-202403-manual",
		"PO-17",
	}
	assert.Equal(t, 1000, HighestSequence("202403", numbers))
	assert.Equal(t, 5000, HighestSequence("202402", numbers))
	assert.Equal(t, 0, HighestSequence("202404", numbers))
	assert.Equal(t, MaxGRNSequence, HighestSequence("202403", []string{FormatGRNNumber("202403", MaxGRNSequence)}))
}

func TestFormatParseRoundTripKeepsOrder(t *testing.T) {
	prev := 0
	for seq := 1; seq <= 1001; seq += 50 {
		n, err := ParseGRNSequence(FormatGRNNumber("202403", seq))
		require.NoError(t, err)
		assert.Equal(t, seq, n)
		assert.Greater(t, n, prev)
		prev = n
	}
}
