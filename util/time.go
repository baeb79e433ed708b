package util

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

func plural(n int, suffix string) string {
	switch n {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%d %s", n, suffix)
	default:
		return fmt.Sprintf("%d %ss", n, suffix)
	}
}

func joinpair(a, b string) string {
	if a != "" && b != "" {
		return a + " " + b
	}
	return a + b
}

// FriendlyDuration renders d to its two most significant units, eg. "1 day 2 hours".
func FriendlyDuration(d time.Duration) string {
	switch {
	case d.Hours() >= 24:
		days := int(d.Hours() / 24)
		hours := int(d.Hours()) - days*24
		return joinpair(plural(days, "day"), plural(hours, "hour"))
	case d.Hours() >= 1:
		hours := int(d.Hours())
		mins := int(d.Minutes()) - 60*hours
		return joinpair(plural(hours, "hour"), plural(mins, "minute"))
	case d.Minutes() >= 1:
		mins := int(d.Minutes())
		secs := int(d.Seconds()) - 60*mins
		return joinpair(plural(mins, "minute"), plural(secs, "second"))
	case d.Seconds() >= 1:
		return plural(int(d.Seconds()), "second")
	case d.Nanoseconds() >= 1000:
		return plural(int(d.Seconds()*1000), "millisecond")
	case d.Nanoseconds() > 0:
		return plural(int(d.Nanoseconds()), "nanosecond")
	}
	return "0 seconds"
}

var durationUnits = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
	"d": 24 * time.Hour,
	"w": 7 * 24 * time.Hour,
}

var reDuration = regexp.MustCompile(`^(\d+)([smhdw])$`)

// ParseDuration does the same as time.ParseDuration but also understands
// whole days and weeks, eg. "2d" or "1w".
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	m := reDuration.FindStringSubmatch(s)
	if m == nil {
		return 0, errors.New("invalid duration: " + s)
	}
	n, _ := strconv.Atoi(m[1])
	return time.Duration(n) * durationUnits[m[2]], nil
}
