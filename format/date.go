package format

import (
	"strconv"
	"strings"
	"time"
)

// ValidateDate reports whether input is a real calendar date written as "month/day/year".
//
// The components must be numeric. The date is built with time.Date, which normalizes
// out-of-range values (February 30 becomes March 1), and is valid only if reading it back
// yields the same year, month and day.
func ValidateDate(input string) bool {
	parts := strings.Split(input, "/")
	if len(parts) != 3 {
		return false
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return false
		}
		nums[i] = n
	}
	month, day, year := nums[0], nums[1], nums[2]

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
