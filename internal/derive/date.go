package derive

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// weekdayNames is indexed by time.Weekday (0=Sunday..6=Saturday)
var weekdayNames = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// fallbackLayouts are tried in order when a date is not plain Y/M/D
var fallbackLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/1/2 15:04:05",
	"2006/01/02 15:04",
	"2006/1/2 15:04",
	"2006年1月2日",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon Jan 2 2006",
}

// ParseDate parses a sheet date in local time.
// See ParseDateIn.
func ParseDate(s string) (time.Time, bool) {
	return ParseDateIn(s, time.Local)
}

// ParseDateIn parses "Y/M/D" (zero padding optional) to midnight in loc.
// Anything else goes through fallbackLayouts. The second return is false for
// empty or unparseable input; callers drop such records.
func ParseDateIn(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if parts := strings.Split(s, "/"); len(parts) == 3 {
		if t, ok := parseYMD(parts, loc); ok {
			return t, true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// parseYMD accepts numeric components with month 1-12 and a day that exists
// in that month. time.Date would otherwise roll 2/31 into March.
func parseYMD(parts []string, loc *time.Location) (time.Time, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders the zero-padded "YYYY/MM/DD" grouping key
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%04d/%02d/%02d", t.Year(), int(t.Month()), t.Day())
}

// FormatDateForDisplay renders a sheet date as "M/D(曜)".
// Unparseable input is returned unchanged.
func FormatDateForDisplay(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return fmt.Sprintf("%d/%d(%s)", int(t.Month()), t.Day(), WeekdayName(t.Weekday()))
}

// FormatDateHeader renders a group header such as "3月10日(火)"
func FormatDateHeader(t time.Time) string {
	return fmt.Sprintf("%d月%d日(%s)", int(t.Month()), t.Day(), WeekdayName(t.Weekday()))
}

// WeekdayName returns the one-character Japanese weekday name
func WeekdayName(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return weekdayNames[d]
}

// StartOfDay returns local midnight of t's calendar date
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable millisecond of t's calendar date
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
