package dialogue

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Slot extractors: pure, deterministic pattern rules over the raw message.
// Malformed input never produces an error, only a no-match outcome.

var (
	isoDateRe    = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	guestCountRe = regexp.MustCompile(`\d+`)
	phoneRe      = regexp.MustCompile(`\d{3}-\d{3}-\d{4}`)

	// Coarse date-shaped presence patterns, not a date parse.
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept?|oct|nov|dec)\s+\d{1,2}\b`),
		regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
		regexp.MustCompile(`(?i)\bfrom\s+.+\s+to\s+`),
		regexp.MustCompile(`(?i)check[\s-]?(in|out)\D{0,10}\d`),
	}
)

// DateMatch classifies the outcome of ExtractISODate.
type DateMatch int

const (
	DateNone DateMatch = iota
	// DateInvalid means the YYYY-MM-DD shape matched but the value is not a
	// real calendar date (e.g. month 13).
	DateInvalid
	DateValid
)

// HasDateSignal reports whether the message contains anything date-shaped.
func HasDateSignal(message string) bool {
	lower := strings.ToLower(message)
	for _, p := range datePatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

// ExtractISODate finds the first YYYY-MM-DD substring and validates it as a
// real calendar date.
func ExtractISODate(message string) (string, DateMatch) {
	m := isoDateRe.FindString(message)
	if m == "" {
		return "", DateNone
	}
	if _, err := time.Parse("2006-01-02", m); err != nil {
		return "", DateInvalid
	}
	return m, DateValid
}

// ExtractGuestCount parses the first run of digits as an integer.
func ExtractGuestCount(message string) (int, bool) {
	m := guestCountRe.FindString(message)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractPhone finds the first XXX-XXX-XXXX substring.
func ExtractPhone(message string) (string, bool) {
	m := phoneRe.FindString(message)
	return m, m != ""
}

// GuestName treats the trimmed message as a guest name; empty after trimming
// counts as no name supplied.
func GuestName(message string) string {
	return strings.TrimSpace(message)
}
