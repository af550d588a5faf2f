package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

// ParseDate turns a user-typed date into the start of that day in
// local time. Two spellings are accepted, tried in order:
//
//	2024-01-15   ISO
//	15/01/2024   day/month/year
//
// ISO wins for inputs that could be read either way. Anything else
// gets an error naming the accepted formats, with a more pointed
// message for dates that are merely incomplete.
func ParseDate(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)")
	}

	if t, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return StartOfDay(t), nil
	}
	if t, err := time.ParseInLocation("02/01/2006", input, time.Local); err == nil {
		return StartOfDay(t), nil
	}

	return time.Time{}, dateParseError(input)
}

var (
	yearOnlyRe    = regexp.MustCompile(`^\d{4}$`)
	yearMonthRe   = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
	dayMonthRe    = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)
	dayMonthSlhRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)
)

// dateParseError distinguishes truncated dates from outright garbage,
// so the hint tells the user what is missing rather than restating the
// format list.
func dateParseError(input string) error {
	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case yearMonthRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	case dayMonthRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-%s)", input, input)
	case dayMonthSlhRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format DD/MM/YYYY, e.g., %s/2024)", input, input)
	default:
		return fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)", input)
	}
}
