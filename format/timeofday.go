package format

import (
	"strings"
	"time"
)

const (
	clockLayout    = "15:04"
	twelveHourOut  = "03:04 PM"
	twelveHourIn   = "3:04 PM"
	rangeSeparator = "-"
)

// TimeRange is a start and end time of day in 24-hour "HH:MM" form.
type TimeRange struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// TimeToAmPm converts a 24-hour "HH:MM" time into "hh:mm AM" or "hh:mm PM".
// It returns an empty string if input is not a valid time of day.
func TimeToAmPm(input string) string {
	t, err := time.Parse(clockLayout, strings.TrimSpace(input))
	if err != nil {
		return ""
	}
	return t.Format(twelveHourOut)
}

// AmPmToTime converts a range such as "02:30 PM - 03:00 PM" into 24-hour times.
// Both times are empty if input has no "-" separator or either side is not a valid 12-hour time.
func AmPmToTime(input string) TimeRange {
	start, end, ok := strings.Cut(input, rangeSeparator)
	if !ok {
		return TimeRange{}
	}

	startTime, ok := parseTwelveHour(start)
	if !ok {
		return TimeRange{}
	}
	endTime, ok := parseTwelveHour(end)
	if !ok {
		return TimeRange{}
	}
	return TimeRange{StartTime: startTime, EndTime: endTime}
}

func parseTwelveHour(s string) (string, bool) {
	t, err := time.Parse(twelveHourIn, strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return "", false
	}
	return t.Format(clockLayout), true
}
