package timeutil

import (
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseTimeToMinutes converts "H:MM"/"HH:MM" into minutes of day. ok is false
// for anything else; callers treat a failed parse as "unusable", not an error.
func ParseTimeToMinutes(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// MinutesToTimeText normalizes any minute count onto a wrapped 24-hour clock,
// so negative and >1440 inputs still produce a valid "HH:MM".
func MinutesToTimeText(minutes int) string {
	m := ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	h := m / 60
	mm := m % 60
	return pad2(h) + ":" + pad2(mm)
}

// DurationHours returns the span between two clock texts in hours. Zero is
// the sentinel for an invalid range: unparsable bounds or end <= start.
func DurationHours(startText, endText string) float64 {
	start, ok := ParseTimeToMinutes(startText)
	if !ok {
		return 0
	}
	end, ok := ParseTimeToMinutes(endText)
	if !ok {
		return 0
	}
	if end <= start {
		return 0
	}
	return float64(end-start) / 60
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
