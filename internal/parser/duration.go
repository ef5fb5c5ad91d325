package parser

import (
	"regexp"
	"strconv"
	"time"
)

var (
	durationLineRe = regexp.MustCompile(`(?i)Duration:\s*([^\n\r]+)`)
	hoursRe        = regexp.MustCompile(`(?i)(\d+)\s*hour`)
	minutesRe      = regexp.MustCompile(`(?i)(\d+)\s*minute`)
)

// ParseDuration extracts a declared outage duration from the "Duration:"
// line of a feed entry description, e.g.:
//
//	Duration: 30 minutes
//	Duration: 1 hour and 51 minutes
//	Duration: 20 hours
//
// The hour and minute phrases are searched independently, so
// "51 minutes and 1 hour" parses the same as "1 hour and 51 minutes".
// ok is false when no usable duration is present; a literal "0 hours" is
// treated as no data, not as an instant outage.
func ParseDuration(description string) (d time.Duration, ok bool) {
	m := durationLineRe.FindStringSubmatch(description)
	if m == nil {
		return 0, false
	}

	var hours, minutes int
	if hm := hoursRe.FindStringSubmatch(m[1]); hm != nil {
		hours, _ = strconv.Atoi(hm[1])
	}
	if mm := minutesRe.FindStringSubmatch(m[1]); mm != nil {
		minutes, _ = strconv.Atoi(mm[1])
	}

	if hours == 0 && minutes == 0 {
		return 0, false
	}

	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, true
}
