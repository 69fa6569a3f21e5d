package input

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"katiba/internal/domain"
)

const (
	minYear = 2020
	maxYear = 2100
)

var (
	// 2026-12-15, 2026-1-5
	isoDate = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	// 15.12.2026, 15/1/2026, 15-01-2026
	dayFirstDate = regexp.MustCompile(`^(\d{1,2})\s*[./-]\s*(\d{1,2})\s*[./-]\s*(\d{4})$`)
)

// ParseDate parses a user-typed event date. The second result is false when
// the input is not a real calendar date in loc within the accepted years.
func ParseDate(raw string, loc *time.Location) (domain.Date, bool) {
	text := strings.TrimSpace(raw)

	var y, m, d string
	if parts := isoDate.FindStringSubmatch(text); parts != nil {
		y, m, d = parts[1], parts[2], parts[3]
	} else if parts := dayFirstDate.FindStringSubmatch(text); parts != nil {
		d, m, y = parts[1], parts[2], parts[3]
	} else {
		return domain.Date{}, false
	}

	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)

	if !validDate(year, month, day, loc) {
		return domain.Date{}, false
	}
	return domain.Date{Year: year, Month: time.Month(month), Day: day}, true
}

func validDate(year, month, day int, loc *time.Location) bool {
	if year < minYear || year > maxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	if loc == nil {
		loc = time.UTC
	}

	// time.Date normalizes overflow (31 Feb -> 3 Mar), so compare back
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
