package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Parse reads an interaction timestamp label such as "12:34", "01:02:03",
// "1h 2m", "2m30s" or "90s". Labels that are not a position in the video
// ("around the middle") report ok=false.
func Parse(label string) (time.Duration, bool) {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.Trim(s, "[]()")
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, ":") {
		return parseClock(s)
	}
	return parseUnits(s)
}

// maxSeconds is the largest whole-second count a time.Duration can hold.
const maxSeconds = math.MaxInt64 / int64(time.Second)

func parseClock(s string) (time.Duration, bool) {
	// "12:34.5" style fractions are dropped.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	fields := strings.Split(s, ":")
	if len(fields) > 3 {
		return 0, false
	}

	var total int64
	for i, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil || n < 0 {
			return 0, false
		}
		if i > 0 && n >= 60 {
			return 0, false
		}
		if i > 0 {
			if total > (maxSeconds-n)/60 {
				return 0, false
			}
			total *= 60
		} else if n > maxSeconds {
			return 0, false
		}
		total += n
	}
	return time.Duration(total) * time.Second, true
}

func parseUnits(s string) (time.Duration, bool) {
	s = strings.ReplaceAll(s, " ", "")
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		s += "s"
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, false
	}
	return d, true
}

// Format renders a duration as m:ss, or h:mm:ss past the hour.
func Format(d time.Duration) string {
	total := int(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}

// Label normalises a timestamp for display, keeping the model's text when it
// does not parse.
func Label(label string) string {
	if d, ok := Parse(label); ok {
		return Format(d)
	}
	return strings.TrimSpace(label)
}
