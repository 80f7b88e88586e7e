package util

import (
	"regexp"
	"strconv"
	"strings"
)

var clockPattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?`)

// ParseTimeToHour extracts the hour of day, in [0,23], from a clock
// string like "3:30 PM" or "14:00". Unparseable input yields 0: a
// malformed upstream time only coarsens sort and bucket placement, it
// never fails the pipeline. Noon ("12 PM") maps to 12, midnight
// ("12 AM") maps to 0.
//
// Schedule decoding, aggregation sort and time-of-day bucketing all go
// through this one function so they can never disagree on ordering.
func ParseTimeToHour(timeString string) int {
	m := clockPattern.FindStringSubmatch(timeString)
	if m == nil {
		return 0
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return 0
	}

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 {
		return 0
	}
	return hour
}
