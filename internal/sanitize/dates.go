package sanitize

import (
	"strings"
	"time"
)

// FormatDate formats a YYYY-MM resume date as "Mon YYYY" (e.g. "2020-09"
// becomes "Sep 2020"). Empty input yields "Present" for end dates and ""
// otherwise; the literal "present" (any case) always yields "Present".
// Unparseable input falls back to the raw value; the formatter never fails.
func FormatDate(raw string, isEndDate bool) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		if isEndDate {
			return "Present"
		}
		return ""
	}
	if strings.EqualFold(trimmed, "present") {
		return "Present"
	}

	t, err := time.Parse("2006-01-02", trimmed+"-01")
	if err != nil {
		return raw
	}
	return t.Format("Jan 2006")
}

// FormatDateRange renders "start - end" with FormatDate applied to both
// ends, omitting the dash when the start is missing.
func FormatDateRange(start, end string) string {
	from := FormatDate(start, false)
	to := FormatDate(end, true)
	if from == "" {
		return to
	}
	return from + " - " + to
}
