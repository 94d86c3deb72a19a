package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GRNNumberPrefix is the fixed leading segment of every generated GRN number.
const GRNNumberPrefix = "GRN"

// PeriodKey returns the YYYYMM allocation period for t, evaluated in UTC.
func PeriodKey(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%04d%02d", t.Year(), int(t.Month()))
}

// PeriodPrefix returns "GRN-<period>-", the prefix shared by all numbers of a period.
func PeriodPrefix(period string) string {
	return GRNNumberPrefix + "-" + period + "-"
}

// MaxGRNSequence is the largest sequence the allocator will issue or treat as issued.
// Caller-supplied numbers above it are stored as-is but ignored by allocation.
const MaxGRNSequence = 999_999_999

// FormatGRNNumber renders GRN-<period>-<seq>, with seq padded to at least three digits.
func FormatGRNNumber(period string, seq int) string {
	return fmt.Sprintf("%s%03d", PeriodPrefix(period), seq)
}

// ParseGRNSequence extracts the sequence from the third hyphen-delimited segment.
func ParseGRNSequence(number string) (int, error) {
	parts := strings.Split(number, "-")
	if len(parts) != 3 || parts[0] != GRNNumberPrefix {
		return 0, fmt.Errorf("malformed grn number %q", number)
	}
	seq, err := strconv.Atoi(parts[2])
	if err != nil || seq < 0 {
		return 0, fmt.Errorf("malformed grn sequence in %q", number)
	}
	if seq > MaxGRNSequence {
		return 0, fmt.Errorf("grn sequence in %q exceeds %d", number, MaxGRNSequence)
	}
	return seq, nil
}

// HighestSequence returns the greatest allocatable sequence among numbers that
// belong to period. Foreign, malformed and out-of-range numbers are skipped.
func HighestSequence(period string, numbers []string) int {
	prefix := PeriodPrefix(period)
	highest := 0
	for _, number := range numbers {
		if !strings.HasPrefix(number, prefix) {
			continue
		}
		if seq, err := ParseGRNSequence(number); err == nil && seq > highest {
			highest = seq
		}
	}
	return highest
}

// NextSequence returns the sequence following both the stored counter and the
// highest number already issued for the period. Either may be zero.
func NextSequence(counter, highestExisting int) int {
	if highestExisting > counter {
		return highestExisting + 1
	}
	return counter + 1
}
