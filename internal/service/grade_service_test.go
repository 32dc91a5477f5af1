package service

import (
	"testing"

	"github.com/registra-edu/registra-backend/internal/model"
)

func strPtr(s string) *string { return &s }

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		name  string
		label *string
		want  *string
	}{
		{"nil stays nil", nil, nil},
		{"empty becomes nil", strPtr(""), nil},
		{"whitespace becomes nil", strPtr("   "), nil},
		{"value passes through", strPtr("Quiz 1"), strPtr("Quiz 1")},
		{"value is trimmed", strPtr("  Midterm "), strPtr("Midterm")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLabel(tt.label)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("expected nil, got %q", *got)
			case tt.want != nil && got == nil:
				t.Errorf("expected %q, got nil", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("expected %q, got %q", *tt.want, *got)
			}
		})
	}
}

func TestShortTime(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"09:30:00", "09:30"},
		{"14:05", "14:05"},
		{"8:00", "8:00"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ShortTime(tt.in); got != tt.want {
			t.Errorf("ShortTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestValidGradeItems(t *testing.T) {
	items := []model.GradeItem{
		{StudentID: 1, GradeValue: floatPtr(87.5)},
		{StudentID: 0, GradeValue: floatPtr(90)},
		{StudentID: 2, GradeValue: nil},
		{StudentID: 3, GradeValue: floatPtr(0)},
	}

	valid := ValidGradeItems(items)
	if len(valid) != 2 {
		t.Fatalf("expected 2 valid items, got %d", len(valid))
	}
	if valid[0].StudentID != 1 || valid[1].StudentID != 3 {
		t.Errorf("expected students 1 and 3, got %d and %d", valid[0].StudentID, valid[1].StudentID)
	}
	// A literal zero grade is a real grade, not a missing one.
	if *valid[1].GradeValue != 0 {
		t.Errorf("expected zero grade to survive, got %v", *valid[1].GradeValue)
	}
}

func TestGradeTypeOrDefault(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Quiz"},
		{"Quiz", "Quiz"},
		{"Final", "Final"},
		{"Midterm", "Midterm"},
	}
	for _, tt := range tests {
		if got := GradeTypeOrDefault(tt.in); got != tt.want {
			t.Errorf("GradeTypeOrDefault(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
