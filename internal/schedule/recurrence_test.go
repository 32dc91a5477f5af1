package schedule

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		code string
		date string
		want bool
	}{
		{"single day exact", "Tuesday", "2025-02-11", true},
		{"single day wrong weekday", "Tuesday", "2025-02-12", false},
		{"csv with space contains day", "Sunday, Tuesday", "2025-02-11", true},
		{"csv without space misses day", "Sunday,Tuesday", "2025-02-12", false},
		{"csv without space contains day", "Sunday,Tuesday", "2025-02-09", true},
		{"case-insensitive code", "tUeSdAy", "2025-02-11", true},
		{"leading and trailing whitespace", "  Monday ,  Wednesday  ", "2025-02-10", true},
		{"double internal spaces", "Monday,  Wednesday", "2025-02-12", true},
		{"trailing comma", "Monday,", "2025-02-10", true},
		{"only commas", ",,,", "2025-02-10", false},
		{"empty code", "", "2025-02-10", false},
		{"partial name does not match", "Mon", "2025-02-10", false},
		{"superset name does not match", "Mondays", "2025-02-10", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.code, date(tt.date)); got != tt.want {
				t.Errorf("Matches(%q, %s) = %v, want %v", tt.code, tt.date, got, tt.want)
			}
		})
	}
}

func TestMatchesEveryWeekday(t *testing.T) {
	// 2025-02-09 is a Sunday; walk one full week.
	names := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	start := date("2025-02-09")

	for i, name := range names {
		d := start.AddDate(0, 0, i)
		if !Matches(name, d) {
			t.Errorf("Matches(%q, %s) = false, want true", name, d.Format(time.DateOnly))
		}
		for j, other := range names {
			if j != i && Matches(other, d) {
				t.Errorf("Matches(%q, %s) = true, want false", other, d.Format(time.DateOnly))
			}
		}
	}
}

func TestTokens(t *testing.T) {
	got := Tokens(" Sunday,  Tuesday ,,thursday,")
	want := []string{"sunday", "tuesday", "thursday"}
	if len(got) != len(want) {
		t.Fatalf("Tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWithinSemester(t *testing.T) {
	start, end := date("2025-01-01"), date("2025-05-01")

	if !WithinSemester(date("2025-01-01"), start, end) {
		t.Error("start date should be inside the range")
	}
	if !WithinSemester(date("2025-05-01"), start, end) {
		t.Error("end date should be inside the range")
	}
	if WithinSemester(date("2025-06-02"), start, end) {
		t.Error("a Monday after the semester end must not count as occurring")
	}
	if WithinSemester(date("2024-12-31"), start, end) {
		t.Error("day before the semester start must not count")
	}
}
