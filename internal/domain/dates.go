package domain

import "time"

// DatePrefix returns the YYYY-MM-DD prefix of an ISO-8601 date or timestamp
func DatePrefix(s string) string {
	if len(s) <= DatePrefixLength {
		return s
	}
	return s[:DatePrefixLength]
}

// IsISODate reports whether s begins with a valid YYYY-MM-DD calendar date
func IsISODate(s string) bool {
	if len(s) < DatePrefixLength {
		return false
	}
	_, err := time.Parse(DateLayout, s[:DatePrefixLength])
	return err == nil
}

// FormatDate renders t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
