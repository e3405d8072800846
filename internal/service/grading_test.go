package service

import (
	"testing"

	"github.com/thakur-sujal/ERP-Portal/internal/model"
)

func TestLetterGradeBreakpoints(t *testing.T) {
	cases := []struct {
		percentage float64
		want       string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{80, "A"},
		{79.5, "B+"},
		{70, "B+"},
		{69, "B"},
		{60, "B"},
		{59.9, "C+"},
		{50, "C+"},
		{49, "C"},
		{40, "C"},
		{39.99, "D"},
		{33, "D"},
		{32.99, "F"},
		{0, "F"},
		{-5, "F"},
		{105, "A+"}, // bonus marks can exceed 100
	}
	for _, c := range cases {
		if got := LetterGrade(c.percentage); got != c.want {
			t.Errorf("LetterGrade(%v) = %q, want %q", c.percentage, got, c.want)
		}
	}
}

func TestGradePoints(t *testing.T) {
	cases := map[string]float64{
		"A+": 10, "A": 9, "B+": 8, "B": 7, "C+": 6, "C": 5, "D": 4, "F": 0,
		"X": 0, "": 0,
	}
	for letter, want := range cases {
		if got := GradePoints(letter); got != want {
			t.Errorf("GradePoints(%q) = %v, want %v", letter, got, want)
		}
	}
}

func TestComputeGPAWeightsByCredits(t *testing.T) {
	// 4 credits of A+ (10) and 2 credits of B (7): (40+14)/6 = 9.00
	grades := []model.GradeCredit{
		{Letter: "A+", Credits: 4},
		{Letter: "B", Credits: 2},
	}
	if got := ComputeGPA(grades); got != 9.00 {
		t.Errorf("ComputeGPA = %v, want 9.00", got)
	}
}

func TestComputeGPAEmpty(t *testing.T) {
	if got := ComputeGPA(nil); got != 0 {
		t.Errorf("ComputeGPA(nil) = %v, want 0", got)
	}
}

func TestComputeGPARounds(t *testing.T) {
	// 3 credits of A (9) and 3 credits of B+ (8): 8.5 exactly, then a
	// third course pushes it to a repeating decimal.
	grades := []model.GradeCredit{
		{Letter: "A", Credits: 3},
		{Letter: "B+", Credits: 3},
		{Letter: "C", Credits: 3},
	}
	// (27+24+15)/9 = 7.333... -> 7.33
	if got := ComputeGPA(grades); got != 7.33 {
		t.Errorf("ComputeGPA = %v, want 7.33", got)
	}
}

func TestAttendancePercentageCountsLateAsAttended(t *testing.T) {
	// 7 present + 1 late out of 10 -> 80.00
	if got := AttendancePercentage(7, 1, 10); got != 80.00 {
		t.Errorf("AttendancePercentage(7, 1, 10) = %v, want 80", got)
	}
}

func TestAttendancePercentageZeroTotal(t *testing.T) {
	if got := AttendancePercentage(0, 0, 0); got != 0 {
		t.Errorf("AttendancePercentage(0, 0, 0) = %v, want 0", got)
	}
}

func TestAttendancePercentageRounds(t *testing.T) {
	// 2 of 3 -> 66.666... -> 66.67
	if got := AttendancePercentage(2, 0, 3); got != 66.67 {
		t.Errorf("AttendancePercentage(2, 0, 3) = %v, want 66.67", got)
	}
}

func TestAttendanceStatusLabel(t *testing.T) {
	if got := AttendanceStatusLabel(75, 75); got != "PASS" {
		t.Errorf("exactly at threshold = %q, want PASS", got)
	}
	if got := AttendanceStatusLabel(74.99, 75); got != "DETAINED" {
		t.Errorf("below threshold = %q, want DETAINED", got)
	}
	if got := AttendanceStatusLabel(80, 75); got != "PASS" {
		t.Errorf("above threshold = %q, want PASS", got)
	}
}
