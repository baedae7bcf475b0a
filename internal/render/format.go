package render

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// InvalidDate is shown in place of a date that is empty or not in
// YYYY-MM-DD form.
const InvalidDate = "INVALID DATE"

// DefaultTime is shown when no boarding time was entered.
const DefaultTime = "00:00"

// parseDate reads the calendar date produced by an HTML date input.
// The day is taken as written; no time zone is applied.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// monthAbbrev returns JAN, FEB, ... for m.
func monthAbbrev(m time.Month) string {
	return strings.ToUpper(m.String()[:3])
}

// FormatDate renders a date for the ticket face: "14 JUN".
func FormatDate(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return InvalidDate
	}
	return strconv.Itoa(t.Day()) + " " + monthAbbrev(t.Month())
}

// FormatTitleDate renders a date for the page title: "14JUN".
func FormatTitleDate(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return strings.ReplaceAll(InvalidDate, " ", "")
	}
	return strconv.Itoa(t.Day()) + monthAbbrev(t.Month())
}

// FormatTime passes the boarding time through, falling back to DefaultTime.
func FormatTime(s string) string {
	if s == "" {
		return DefaultTime
	}
	return s
}

// CompactFrom splits the origin for the narrow right-hand column:
// the first word, then the remaining words joined by spaces.
func CompactFrom(from string) (first, rest string) {
	words := strings.Split(from, " ")
	first = strings.ToUpper(words[0])
	rest = strings.ToUpper(strings.Join(words[1:], " "))
	return first, rest
}

// CompactTo splits the destination for the narrow right-hand column:
// the first word cut to 7 characters, then the remaining words joined
// without spaces and cut to 6 characters.
func CompactTo(to string) (first, rest string) {
	words := strings.Split(to, " ")
	first = truncate(strings.ToUpper(words[0]), 7)
	rest = truncate(strings.ToUpper(strings.Join(words[1:], "")), 6)
	return first, rest
}

// truncate keeps at most n code points of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
