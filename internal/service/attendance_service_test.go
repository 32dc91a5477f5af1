package service

import (
	"testing"
	"time"

	"github.com/registra-edu/registra-backend/internal/model"
)

func occurrence(id int, dayCode string) model.LectureCandidate {
	return model.LectureCandidate{
		LectureOccurrence: model.LectureOccurrence{LectureID: id},
		DayCode:           dayCode,
	}
}

func TestFilterOccurring(t *testing.T) {
	candidates := []model.LectureCandidate{
		occurrence(1, "Sunday, Tuesday"),
		occurrence(2, "Monday,Wednesday"),
		occurrence(3, "Tuesday"),
		occurrence(4, ""),
	}

	// 2025-02-11 is a Tuesday.
	date := time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC)
	got := FilterOccurring(candidates, date)

	if len(got) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(got))
	}
	if got[0].LectureID != 1 || got[1].LectureID != 3 {
		t.Errorf("expected lectures 1 and 3, got %d and %d", got[0].LectureID, got[1].LectureID)
	}
}

func TestFilterOccurringEmpty(t *testing.T) {
	date := time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC)
	got := FilterOccurring(nil, date)
	if len(got) != 0 {
		t.Fatalf("expected no occurrences, got %d", len(got))
	}
}

func boolPtr(b bool) *bool { return &b }

func TestValidMarks(t *testing.T) {
	marks := []model.AttendanceMark{
		{StudentID: 1, IsPresent: boolPtr(true)},
		{StudentID: 0, IsPresent: boolPtr(true)},
		{StudentID: 2, IsPresent: nil},
		{StudentID: 3, IsPresent: boolPtr(false)},
	}

	valid := ValidMarks(marks)
	if len(valid) != 2 {
		t.Fatalf("expected 2 valid marks, got %d", len(valid))
	}
	if valid[0].StudentID != 1 || valid[1].StudentID != 3 {
		t.Errorf("expected students 1 and 3, got %d and %d", valid[0].StudentID, valid[1].StudentID)
	}
}

func TestRowErrorMessage(t *testing.T) {
	err := &RowError{StudentID: 42, Message: "Student is not enrolled in this course offering"}
	want := "Student 42: Student is not enrolled in this course offering"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestAbsenceLevel(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		threshold int
		max       int
		want      int
	}{
		{"below everything", 1, 3, 5, AbsenceOK},
		{"exactly at threshold", 3, 3, 5, AbsenceWarning},
		{"past threshold, below max", 4, 3, 5, AbsenceOK},
		{"at max", 5, 3, 5, AbsenceExceeded},
		{"past max", 7, 3, 5, AbsenceExceeded},
		{"policy disabled", 10, 0, 0, AbsenceOK},
		{"only max configured", 2, 0, 2, AbsenceExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbsenceLevel(tt.count, tt.threshold, tt.max); got != tt.want {
				t.Errorf("AbsenceLevel(%d, %d, %d) = %d, want %d",
					tt.count, tt.threshold, tt.max, got, tt.want)
			}
		})
	}
}
