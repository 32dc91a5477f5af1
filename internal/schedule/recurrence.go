// Package schedule decides whether a recurring lecture slot meets on a
// given calendar date. Day codes come from the lecture_days lookup domain
// and are free text: a single English weekday name, or several separated
// by commas with arbitrary whitespace ("Monday", "Sunday, Tuesday",
// "monday,wednesday "). All parsing of that encoding lives here; the rest
// of the system never touches the raw text.
package schedule

import (
	"strings"
	"time"
)

// Matches reports whether the weekday of date appears among the
// comma-separated weekday tokens of code. Matching is case-insensitive
// and tolerant of empty tokens, trailing commas and repeated spaces.
// Semester date-range gating is the caller's concern.
func Matches(code string, date time.Time) bool {
	want := strings.ToLower(date.Weekday().String())
	for _, tok := range Tokens(code) {
		if tok == want {
			return true
		}
	}
	return false
}

// Tokens splits a day code into normalized (lowercased, space-free)
// weekday tokens. Empty tokens are dropped so malformed codes like
// "Monday,," or ", Tuesday" still parse.
func Tokens(code string) []string {
	parts := strings.Split(code, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		tok := strings.ToLower(strings.Join(strings.Fields(p), ""))
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// WithinSemester reports whether date falls inside [start, end] inclusive,
// comparing calendar days only. This is the Go statement of the date gate
// that lecture listing applies in SQL (the BETWEEN on semester start and
// end dates in LectureRepository.CandidatesOn); the two must agree, and
// the boundary tests here pin the contract for both.
func WithinSemester(date, start, end time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(start.Truncate(24*time.Hour)) && !d.After(end.Truncate(24*time.Hour))
}
