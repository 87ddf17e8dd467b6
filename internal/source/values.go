package source

import (
	"strconv"
	"strings"
	"time"
)

// dateFormats are tried in order. The first match wins, so earlier
// patterns take priority for ambiguous strings like "03/04/2026".
var dateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"01/02/06",
	"02/01/2006",
	"2006/01/02",
}

var timeFormats = []string{
	"15:04:05",
	"15:04",
	"3:04 PM",
	"3:04PM",
}

// ParseDate converts a raw value into a calendar date. It never fails:
// null, non-string, or unrecognized input returns ok=false.
func ParseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a date in the canonical YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseTime converts a raw value into a time of day. Both 24-hour and
// AM/PM forms are accepted; unrecognized input returns ok=false.
func ParseTime(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTime renders a time of day in the canonical HH:MM:SS form.
func FormatTime(t time.Time) string {
	return t.Format("15:04:05")
}

// ParseFloat converts a raw value into a float, stripping currency
// symbols and thousands separators from strings. Anything that still
// fails to convert yields the caller-supplied default.
func ParseFloat(v any, def float64) float64 {
	switch val := v.(type) {
	case nil:
		return def
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		cleaned := strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(val))
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

// ParseBool converts a raw value into a bool. Strings are matched
// case-insensitively against the accepted true set; numbers are true
// when nonzero; null yields the caller-supplied default.
func ParseBool(v any, def bool) bool {
	switch val := v.(type) {
	case nil:
		return def
	case bool:
		return val
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "yes", "1", "y", "t":
			return true
		default:
			return false
		}
	case float64:
		return val != 0
	case int:
		return val != 0
	default:
		return def
	}
}
