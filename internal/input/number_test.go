package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		valid    bool
	}{
		{name: "ascii", input: "500", expected: 500, valid: true},
		{name: "arabic indic", input: "٥٠٠", expected: 500, valid: true},
		{name: "mixed scripts", input: "١5٠", expected: 150, valid: true},
		{name: "currency suffix", input: "500ج", expected: 500, valid: true},
		{name: "currency word", input: "٥٠٠ جنيه", expected: 500, valid: true},
		{name: "thousands separator", input: "5,000", expected: 5000, valid: true},
		{name: "zero", input: "٠", expected: 0, valid: true},
		{name: "minus sign is stripped", input: "-200", expected: 200, valid: true},
		{name: "all arabic digits", input: "٠١٢٣٤٥٦٧٨٩", expected: 123456789, valid: true},
		{name: "no digits", input: "خمسمية", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "overflow", input: strings.Repeat("9", 30), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := ParseInt(tt.input)

			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.expected, n)
			}
		})
	}
}

func TestParseInt_NativeMatchesASCII(t *testing.T) {
	pairs := map[string]string{
		"١٢٣":          "123",
		"٧٥٠ جنيه":     "750",
		"عربون ٢٠٠٠ ج": "2000",
		"٩٨٧٦٥":        "98765",
	}

	for native, ascii := range pairs {
		got, ok := ParseInt(native)
		want, wantOK := ParseInt(ascii)

		assert.True(t, ok, native)
		assert.True(t, wantOK, ascii)
		assert.Equal(t, want, got, native)
	}
}
