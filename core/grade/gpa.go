package grade

import (
	"math"
	"strconv"
	"strings"
)

// fieldValue parses a raw credits/grade cell. Empty or non-numeric text
// contributes zero weight; it is never an error.
func fieldValue(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Average computes the credit-weighted grade average of an ordered list of
// courses, rounded to 2 decimal places. A list with zero total credits
// (including the empty list) averages to 0.
func Average(courses []Course) float64 {
	var points, credits float64
	for _, c := range courses {
		cr := fieldValue(c.Credits)
		points += cr * fieldValue(c.Grade)
		credits += cr
	}
	if credits == 0 {
		return 0
	}
	return round2(points / credits)
}

// CumulativeAverage pools every course of semesters 0..through (inclusive;
// the whole book when `through` is omitted) into a single weighted average.
// This is NOT the mean of the per-semester averages: credits are pooled
// before dividing, so heavier semesters dominate proportionally.
func CumulativeAverage(sems []Semester, through ...int) float64 {
	end := len(sems)
	if len(through) > 0 {
		end = through[0] + 1
		if end > len(sems) {
			end = len(sems)
		}
		if end < 0 {
			end = 0
		}
	}
	var pooled []Course
	for _, s := range sems[:end] {
		pooled = append(pooled, s.Courses...)
	}
	return Average(pooled)
}
