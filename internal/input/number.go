package input

import (
	"strconv"
	"strings"
)

// arabicDigits is indexed by digit value
const arabicDigits = "٠١٢٣٤٥٦٧٨٩"

// ParseInt extracts a base-10 integer from free text such as "500",
// "٥٠٠ جنيه" or "5,000ج". Every character that is not an ASCII or
// Arabic-Indic digit is dropped. Returns false when no digits remain or the
// value overflows int64.
func ParseInt(raw string) (int64, bool) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= '٠' && r <= '٩':
			b.WriteByte(byte('0' + arabicDigitValue(r)))
		}
	}

	if b.Len() == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func arabicDigitValue(r rune) int {
	i := 0
	for _, d := range arabicDigits {
		if d == r {
			return i
		}
		i++
	}
	return -1
}
