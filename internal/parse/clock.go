package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ClockMinutes parses a wall-clock "HH:MM" value into minutes of day.
func ClockMinutes(raw string) (int, error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, fmt.Errorf("invalid clock time: %q", raw)
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if h > 23 || min > 59 {
		return 0, fmt.Errorf("clock time out of range: %q", raw)
	}
	return h*60 + min, nil
}

// IntervalMinutes returns the duration in minutes between two wall-clock
// values on the same day. Intervals that cross midnight come out negative
// from the plain subtraction and get a day added.
func IntervalMinutes(start, end string) (int, error) {
	s, err := ClockMinutes(start)
	if err != nil {
		return 0, err
	}
	e, err := ClockMinutes(end)
	if err != nil {
		return 0, err
	}
	total := e - s
	if total < 0 {
		total += 24 * 60
	}
	return total, nil
}
