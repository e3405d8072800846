package service

import (
	"math"

	"github.com/thakur-sujal/ERP-Portal/internal/model"
)

// LetterGrade maps a percentage score to its letter. Total over all inputs:
// any percentage (including >100 from bonus marks) yields a letter.
func LetterGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C+"
	case percentage >= 40:
		return "C"
	case percentage >= 33:
		return "D"
	default:
		return "F"
	}
}

// GradePoints maps a letter grade to its 10-point scale value. Unknown
// letters count as 0, same as F.
func GradePoints(letter string) float64 {
	switch letter {
	case "A+":
		return 10
	case "A":
		return 9
	case "B+":
		return 8
	case "B":
		return 7
	case "C+":
		return 6
	case "C":
		return 5
	case "D":
		return 4
	default:
		return 0
	}
}

// ComputeGPA returns the credit-weighted grade point average over final exam
// grades, rounded to 2 decimals. An empty input yields 0, not NaN.
func ComputeGPA(grades []model.GradeCredit) float64 {
	var points, credits float64
	for _, g := range grades {
		points += GradePoints(g.Letter) * float64(g.Credits)
		credits += float64(g.Credits)
	}
	if credits == 0 {
		return 0
	}
	return Round2(points / credits)
}

// AttendancePercentage counts present and late as attended. Zero total yields
// 0, not NaN.
func AttendancePercentage(present, late, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(present+late) / float64(total) * 100)
}

// AttendanceStatusLabel reports PASS or DETAINED against the configured
// minimum percentage. Exactly at the threshold is a PASS.
func AttendanceStatusLabel(percentage, threshold float64) string {
	if percentage >= threshold {
		return "PASS"
	}
	return "DETAINED"
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
