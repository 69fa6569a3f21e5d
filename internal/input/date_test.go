package input

import (
	"fmt"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cairo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Africa/Cairo")
	require.NoError(t, err)
	return loc
}

func TestParseDate(t *testing.T) {
	loc := cairo(t)

	tests := []struct {
		name     string
		input    string
		expected string
		valid    bool
	}{
		{name: "iso", input: "2026-12-15", expected: "2026-12-15", valid: true},
		{name: "iso single digits", input: "2026-1-5", expected: "2026-01-05", valid: true},
		{name: "dots", input: "15.12.2026", expected: "2026-12-15", valid: true},
		{name: "slashes", input: "15/12/2026", expected: "2026-12-15", valid: true},
		{name: "dashes", input: "15-12-2026", expected: "2026-12-15", valid: true},
		{name: "single digit month", input: "15/1/2026", expected: "2026-01-15", valid: true},
		{name: "zero padded month", input: "15/01/2026", expected: "2026-01-15", valid: true},
		{name: "surrounding spaces", input: "  15/1/2026 ", expected: "2026-01-15", valid: true},
		{name: "spaces around separators", input: "15 / 1 / 2026", expected: "2026-01-15", valid: true},
		{name: "leap day", input: "29/2/2028", expected: "2028-02-29", valid: true},
		{name: "lower bound year", input: "1/1/2020", expected: "2020-01-01", valid: true},
		{name: "upper bound year", input: "31/12/2100", expected: "2100-12-31", valid: true},
		{name: "31 february", input: "31/2/2026", valid: false},
		{name: "29 february non leap", input: "29/2/2026", valid: false},
		{name: "31 april iso", input: "2026-4-31", valid: false},
		{name: "month 13", input: "15/13/2026", valid: false},
		{name: "month 0", input: "15/0/2026", valid: false},
		{name: "day 0", input: "0/1/2026", valid: false},
		{name: "day 32", input: "32/1/2026", valid: false},
		{name: "year too early", input: "15/1/2019", valid: false},
		{name: "year too late", input: "15/1/2101", valid: false},
		{name: "two parts", input: "15/1", valid: false},
		{name: "four parts", input: "15/1/2026/1", valid: false},
		{name: "two digit year", input: "15/1/26", valid: false},
		{name: "year first with slashes", input: "2026/1/15", valid: false},
		{name: "words", input: "بكرة", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "arabic digits", input: "١٥/١/٢٠٢٦", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := ParseDate(tt.input, loc)

			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.expected, date.String())
			} else {
				assert.True(t, date.IsZero())
			}
		})
	}
}

func TestParseDate_AllSyntaxesAgree(t *testing.T) {
	loc := cairo(t)

	for _, y := range []int{2020, 2024, 2026, 2100} {
		for m := 1; m <= 12; m++ {
			last := time.Date(y, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC).Day()
			for _, d := range []int{1, 9, 10, last} {
				if d > last {
					continue
				}
				inputs := []string{
					fmt.Sprintf("%d-%d-%d", y, m, d),
					fmt.Sprintf("%d.%d.%d", d, m, y),
					fmt.Sprintf("%02d-%02d-%d", d, m, y),
					fmt.Sprintf("%d/%02d/%d", d, m, y),
				}
				want := fmt.Sprintf("%04d-%02d-%02d", y, m, d)
				for _, in := range inputs {
					date, ok := ParseDate(in, loc)
					if assert.True(t, ok, in) {
						assert.Equal(t, want, date.String(), in)
					}
				}
			}
		}
	}
}

func TestParseDate_InvalidInEverySyntax(t *testing.T) {
	loc := cairo(t)

	for _, y := range []int{2020, 2026, 2100} {
		for _, in := range []string{
			fmt.Sprintf("%d-2-31", y),
			fmt.Sprintf("31.2.%d", y),
			fmt.Sprintf("31-2-%d", y),
			fmt.Sprintf("31/02/%d", y),
		} {
			_, ok := ParseDate(in, loc)
			assert.False(t, ok, in)
		}
	}
}

func TestParseDate_NilLocation(t *testing.T) {
	date, ok := ParseDate("15/1/2026", nil)

	assert.True(t, ok)
	assert.Equal(t, "2026-01-15", date.String())
}
